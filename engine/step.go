package engine

import (
	"slices"
	"time"

	"github.com/lixenwraith/on-tour/course"
	"github.com/lixenwraith/on-tour/event"
	"github.com/lixenwraith/on-tour/input"
	"github.com/lixenwraith/on-tour/turn"
)

// Step advances the world by one frame
// Playing order: turn advance, ball motion, hole check, camera follow
func Step(w World, intent input.Intent, dt time.Duration) (World, []event.GameEvent) {
	if w.Phase == PhaseComplete {
		return w, nil
	}
	w.Frame++

	if w.Phase == PhaseMenu {
		if intent != input.IntentStart {
			return w, nil
		}
		w.Phase = PhasePlaying
		return w, []event.GameEvent{
			{Type: event.EventPlayStarted, Frame: w.Frame, Payload: &event.PlayStartedPayload{
				Course: w.CourseName,
				Holes:  w.TotalHoles,
			}},
			w.holeStarted(),
		}
	}

	var events []event.GameEvent

	prev := w.Stage
	next, motion := turn.Advance(w.Stage, intent, dt)
	w.Stage = next

	if motion.Tiles != 0 {
		balls := slices.Clone(w.Balls)
		for i := range balls {
			balls[i] = balls[i].Advance(motion.Heading, motion.Tiles)
		}
		w.Balls = balls
		w.Carry += motion.Tiles
	}

	if motion.Committed {
		w.HoleState = w.HoleState.Increment()
		w.Carry = 0
		events = append(events, w.shotCommitted(prev, next))
	}

	if motion.Landed {
		events = append(events, event.GameEvent{
			Type:  event.EventBallLanded,
			Frame: w.Frame,
			Payload: &event.BallLandedPayload{
				Hole:  w.Hole.Number,
				Tile:  w.Ball().TilePosition(),
				Carry: w.Carry,
			},
		})
	}

	w.HoleState = w.HoleState.Check(w.Hole.Map.Flag(), w.Balls)
	if w.HoleState.Phase == course.Holed {
		var done []event.GameEvent
		w, done = w.completeHole()
		events = append(events, done...)
		if w.Phase == PhaseComplete {
			return w, events
		}
	}

	w.Camera = w.Camera.Update(w.Ball().TilePosition())
	return w, events
}

// completeHole records the score and moves to the next hole or ends the round
func (w World) completeHole() (World, []event.GameEvent) {
	score := Score{Hole: w.Hole.Number, Par: w.Hole.Par, Strokes: w.HoleState.Strokes}
	w.Scorecard = append(slices.Clone(w.Scorecard), score)

	events := []event.GameEvent{{
		Type:    event.EventHoleCompleted,
		Frame:   w.Frame,
		Payload: &event.HoleCompletedPayload{Hole: score.Hole, Par: score.Par, Strokes: score.Strokes},
	}}

	hole, rest, ok := w.Course.Next()
	if !ok {
		w.Phase = PhaseComplete
		strokes, par := Totals(w.Scorecard)
		return w, append(events, event.GameEvent{
			Type:    event.EventCourseCompleted,
			Frame:   w.Frame,
			Payload: &event.CourseCompletedPayload{Course: w.CourseName, Strokes: strokes, Par: par},
		})
	}

	w.Course = rest
	w = w.setupHole(hole)
	return w, append(events, w.holeStarted())
}

func (w World) holeStarted() event.GameEvent {
	return event.GameEvent{
		Type:  event.EventHoleStarted,
		Frame: w.Frame,
		Payload: &event.HoleStartedPayload{
			Hole: w.Hole.Number,
			Par:  w.Hole.Par,
			Tee:  w.Hole.Map.Tee(),
			Flag: w.Hole.Map.Flag(),
		},
	}
}

func (w World) shotCommitted(prev, next turn.Stage) event.GameEvent {
	p := &event.ShotCommittedPayload{
		Hole:   w.Hole.Number,
		Stroke: w.HoleState.Strokes,
	}
	if sw, ok := prev.(turn.Swinging); ok {
		p.Club = sw.Club.Name
		p.Power = sw.Swing.Power
	}
	if tr, ok := next.(turn.Traveling); ok {
		p.Direction = tr.Travel.Direction()
		p.InitialVelocity = tr.Travel.InitialVelocity()
	}
	return event.GameEvent{Type: event.EventShotCommitted, Frame: w.Frame, Payload: p}
}
