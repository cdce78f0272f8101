package engine

import (
	"sync"
	"time"

	"github.com/lixenwraith/on-tour/parameter"
)

// Clock is a source of monotonic time
type Clock interface {
	Now() time.Time
}

// TimeProvider reads the system clock
type TimeProvider struct{}

func NewTimeProvider() *TimeProvider {
	return &TimeProvider{}
}

func (p *TimeProvider) Now() time.Time {
	return time.Now()
}

// MockTimeProvider is a manually advanced clock for tests and headless replay
type MockTimeProvider struct {
	mu          sync.RWMutex
	currentTime time.Time
}

func NewMockTimeProvider(start time.Time) *MockTimeProvider {
	return &MockTimeProvider{currentTime: start}
}

func (m *MockTimeProvider) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.currentTime
}

func (m *MockTimeProvider) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = m.currentTime.Add(d)
}

// FrameClock measures the time between frames
// Deltas are clamped to [0, MaxDeltaTime] so a stall never launches the ball across the map
type FrameClock struct {
	clock Clock
	last  time.Time
}

func NewFrameClock(clock Clock) *FrameClock {
	return &FrameClock{clock: clock, last: clock.Now()}
}

// Tick returns the clamped time since the previous Tick
func (f *FrameClock) Tick() time.Duration {
	now := f.clock.Now()
	dt := now.Sub(f.last)
	f.last = now

	if dt < 0 {
		return 0
	}
	if dt > parameter.MaxDeltaTime {
		return parameter.MaxDeltaTime
	}
	return dt
}
