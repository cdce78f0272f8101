package engine

import (
	"github.com/lixenwraith/on-tour/core"
	"github.com/lixenwraith/on-tour/status"
	"github.com/lixenwraith/on-tour/turn"
)

// Snapshot is a read-only, JSON-ready view of a World
type Snapshot struct {
	Frame     uint64       `json:"frame"`
	Phase     string       `json:"phase"`
	Course    string       `json:"course"`
	Remaining int          `json:"remaining"`
	Hole      int          `json:"hole"`
	Par       int          `json:"par"`
	HolePhase string       `json:"hole_phase"`
	Strokes   int          `json:"strokes"`
	Stage     string       `json:"stage"`
	Club      string       `json:"club,omitempty"`
	Aim       float64      `json:"aim"`
	Swing     string       `json:"swing,omitempty"`
	Power     float64      `json:"power"`
	Accuracy  float64      `json:"accuracy"`
	Velocity  float64      `json:"initial_velocity,omitempty"`
	Height    float64      `json:"height,omitempty"`
	Carry     float64      `json:"carry"`
	Balls     []core.Point `json:"balls"`
	Flag      core.Point   `json:"flag"`
	Scorecard []Score      `json:"scorecard"`
}

// Snapshot flattens the world for renderers and spectators
func (w World) Snapshot() Snapshot {
	s := Snapshot{
		Frame:     w.Frame,
		Phase:     w.Phase.String(),
		Course:    w.CourseName,
		Remaining: w.Course.Remaining(),
		Hole:      w.Hole.Number,
		Par:       w.Hole.Par,
		HolePhase: w.HoleState.Phase.String(),
		Strokes:   w.HoleState.Strokes,
		Carry:     w.Carry,
		Balls:     make([]core.Point, len(w.Balls)),
		Scorecard: append([]Score{}, w.Scorecard...),
	}
	if w.Hole.Map != nil {
		s.Flag = w.Hole.Map.Flag()
	}
	for i, b := range w.Balls {
		s.Balls[i] = b.TilePosition()
	}

	if w.Stage != nil {
		s.Stage = w.Stage.Kind().String()
	}
	switch st := w.Stage.(type) {
	case turn.ClubSelection:
		s.Club = st.Set.At(st.Selected).Name
	case turn.Aiming:
		s.Club = st.Club.Name
		s.Aim = st.Aim.Degrees
	case turn.Swinging:
		s.Club = st.Club.Name
		s.Aim = st.Aim.Degrees
		s.Swing = st.Swing.Phase.String()
		s.Power = st.Swing.Power
		s.Accuracy = st.Swing.Accuracy
	case turn.Traveling:
		s.Aim = st.Travel.Direction()
		s.Velocity = st.Travel.InitialVelocity()
		s.Height = st.Travel.Height()
	}
	return s
}

// Report publishes diagnostics into the registry
func (w World) Report(reg *status.Registry) {
	s := w.Snapshot()

	reg.Ints.Get("engine.frame").Store(int64(s.Frame))
	reg.Strings.Get("engine.phase").Store(s.Phase)
	reg.Strings.Get("course.name").Store(s.Course)
	reg.Ints.Get("course.remaining").Store(int64(s.Remaining))
	reg.Ints.Get("hole.number").Store(int64(s.Hole))
	reg.Ints.Get("hole.strokes").Store(int64(s.Strokes))
	reg.Strings.Get("turn.stage").Store(s.Stage)
	reg.Strings.Get("turn.club").Store(s.Club)
	reg.Floats.Get("turn.aim").Set(s.Aim)
	reg.Floats.Get("swing.power").Set(s.Power)
	reg.Floats.Get("shot.carry").Set(s.Carry)
	reg.Bools.Get("ball.in_flight").Store(s.Stage == turn.KindTraveling.String())

	strokes, _ := Totals(w.Scorecard)
	reg.Ints.Get("round.strokes").Store(int64(strokes))
}
