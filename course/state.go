package course

import "github.com/lixenwraith/on-tour/core"

// HolePhase is the per-hole progress
type HolePhase uint8

const (
	TeeOff HolePhase = iota
	Stroke
	Holed
)

func (p HolePhase) String() string {
	switch p {
	case TeeOff:
		return "tee_off"
	case Stroke:
		return "stroke"
	case Holed:
		return "holed"
	default:
		return "unknown"
	}
}

// HoleState tracks strokes on the current hole
// Strokes only carries meaning in Stroke and Holed
type HoleState struct {
	Phase   HolePhase
	Strokes int
}

func NewHoleState() HoleState {
	return HoleState{Phase: TeeOff}
}

// Begin enters the stroke phase with zero strokes
func (s HoleState) Begin() HoleState {
	return HoleState{Phase: Stroke}
}

// Increment counts one stroke; other phases are unchanged
func (s HoleState) Increment() HoleState {
	if s.Phase != Stroke {
		return s
	}
	s.Strokes++
	return s
}

// Finish marks the hole complete, keeping the stroke count
func (s HoleState) Finish() HoleState {
	s.Phase = Holed
	return s
}

// Check evaluates the per-tick hole rule
// TeeOff advances to Stroke; Stroke completes once any ball rests on the flag tile
func (s HoleState) Check(flag core.Point, balls []core.Ball) HoleState {
	switch s.Phase {
	case TeeOff:
		return s.Begin()
	case Stroke:
		for _, b := range balls {
			if b.TilePosition() == flag {
				return s.Finish()
			}
		}
	}
	return s
}
