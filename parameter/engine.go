package parameter

import "time"

// Game Loop Timing
const (
	// FrameInterval is the frame cap of the interactive loop (~30 FPS)
	FrameInterval = 33 * time.Millisecond

	// MaxDeltaTime clamps a single step after stalls (suspend, debugger)
	MaxDeltaTime = 250 * time.Millisecond

	// InputBufferSize is the capacity of the terminal event channel
	InputBufferSize = 100
)
