package engine

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/on-tour/camera"
	"github.com/lixenwraith/on-tour/core"
	"github.com/lixenwraith/on-tour/course"
	"github.com/lixenwraith/on-tour/turn"
)

// ErrEmptyCourse is returned when a world is built from a course with no holes
var ErrEmptyCourse = errors.New("course has no holes")

// Phase is the top-level game state
type Phase uint8

const (
	PhaseMenu Phase = iota
	PhasePlaying
	PhaseComplete
)

func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhasePlaying:
		return "playing"
	case PhaseComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// Score is one finished hole on the card
type Score struct {
	Hole    int `json:"hole"`
	Par     int `json:"par"`
	Strokes int `json:"strokes"`
}

// ToPar returns strokes relative to par, negative under
func (s Score) ToPar() int {
	return s.Strokes - s.Par
}

// Totals sums strokes and par over a scorecard
func Totals(card []Score) (strokes, par int) {
	for _, s := range card {
		strokes += s.Strokes
		par += s.Par
	}
	return strokes, par
}

// World is the complete game state
// Step consumes a World and returns a new one; slices are copied before writes
type World struct {
	Phase Phase

	// CourseName survives the queue running dry
	CourseName string
	Course     course.Course // holes not yet started
	TotalHoles int

	Hole      course.Hole
	HoleState course.HoleState
	Stage     turn.Stage
	Balls     []core.Ball

	Camera    camera.Camera
	ViewportW int
	ViewportH int

	Frame uint64

	// Carry is the distance flown by the current or last shot, in tiles
	Carry float64

	Scorecard []Score
}

// NewWorld pops the first hole and sets it up behind the menu
func NewWorld(c course.Course, viewportW, viewportH int) (World, error) {
	if viewportW <= 0 || viewportH <= 0 {
		return World{}, fmt.Errorf("invalid viewport %dx%d", viewportW, viewportH)
	}

	total := c.Remaining()
	hole, rest, ok := c.Next()
	if !ok {
		return World{}, fmt.Errorf("new world for %q: %w", c.Name(), ErrEmptyCourse)
	}

	w := World{
		Phase:      PhaseMenu,
		CourseName: c.Name(),
		Course:     rest,
		TotalHoles: total,
		ViewportW:  viewportW,
		ViewportH:  viewportH,
		Balls:      []core.Ball{core.NewBall(hole.Map.Tee())},
	}
	return w.setupHole(hole), nil
}

// setupHole moves every ball to the tee and resets per-hole state
func (w World) setupHole(h course.Hole) World {
	tee := h.Map.Tee()
	w.Hole = h
	w.HoleState = course.NewHoleState()
	w.Stage = turn.Start()

	balls := make([]core.Ball, len(w.Balls))
	for i, b := range w.Balls {
		balls[i] = b.MoveTo(tee)
	}
	w.Balls = balls
	w.Camera = camera.New(tee, h.Map.Width(), h.Map.Height(), w.ViewportW, w.ViewportH)
	w.Carry = 0
	return w
}

// Ball returns the first ball, which the camera follows
func (w World) Ball() core.Ball {
	if len(w.Balls) == 0 {
		return core.Ball{}
	}
	return w.Balls[0]
}
