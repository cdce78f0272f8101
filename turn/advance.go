package turn

import (
	"time"

	"github.com/lixenwraith/on-tour/club"
	"github.com/lixenwraith/on-tour/input"
	"github.com/lixenwraith/on-tour/parameter"
	"github.com/lixenwraith/on-tour/physics"
)

// Motion describes what a single Advance did outside the stage itself
type Motion struct {
	// Heading and Tiles move the ball: Tiles along Heading degrees
	Heading float64
	Tiles   float64

	// Committed is set on the step a swing became a flight
	Committed bool

	// Landed is set on the step a flight finished
	Landed bool
}

// Advance applies one tick of input and elapsed time to a stage
// At most one stage transition happens per call; requests that don't apply to the
// current stage are ignored
func Advance(s Stage, intent input.Intent, dt time.Duration) (Stage, Motion) {
	switch st := s.(type) {
	case ClubSelection:
		return advanceClubSelection(st, intent), Motion{}

	case Aiming:
		return advanceAiming(st, intent), Motion{}

	case Swinging:
		return advanceSwinging(st, intent)

	case Traveling:
		return advanceTraveling(st, dt)

	case Finished:
		return Start(), Motion{}

	default:
		return Start(), Motion{}
	}
}

func advanceClubSelection(st ClubSelection, intent input.Intent) Stage {
	switch intent {
	case input.IntentNextClub:
		return ClubSelection{Set: st.Set, Selected: st.Set.Next(st.Selected)}
	case input.IntentPrevClub:
		return ClubSelection{Set: st.Set, Selected: st.Set.Previous(st.Selected)}
	case input.IntentConfirm:
		return Aiming{Aim: Aim{}, Club: st.Set.At(st.Selected)}
	default:
		return st
	}
}

func advanceAiming(st Aiming, intent input.Intent) Stage {
	switch intent {
	case input.IntentLeft, input.IntentRight:
		return Aiming{Aim: st.Aim.Adjust(intent), Club: st.Club}
	case input.IntentConfirm:
		return Swinging{Swing: StartSwing(), Aim: st.Aim, Club: st.Club}
	case input.IntentBack:
		set := club.DefaultSet()
		return ClubSelection{Set: set, Selected: set.Index(st.Club)}
	default:
		return st
	}
}

func advanceSwinging(st Swinging, intent input.Intent) (Stage, Motion) {
	switch st.Swing.Phase {
	case SwingStart:
		switch intent {
		case input.IntentConfirm:
			return Swinging{Swing: PowerSwing(0), Aim: st.Aim, Club: st.Club}, Motion{}
		case input.IntentBack:
			return Aiming{Aim: st.Aim, Club: st.Club}, Motion{}
		}
		return st, Motion{}

	case SwingPower:
		// Confirm locks the current power; otherwise the meter keeps rising
		if intent == input.IntentConfirm {
			swing := AccuracySwing(st.Swing.Power, parameter.AccuracyOnConfirm)
			return Swinging{Swing: swing, Aim: st.Aim, Club: st.Club}, Motion{}
		}
		return Swinging{Swing: st.Swing.Tick(), Aim: st.Aim, Club: st.Club}, Motion{}

	case SwingAccuracy:
		if intent == input.IntentConfirm {
			travel := physics.NewTravel(st.Swing.Power, st.Aim.Degrees, st.Club)
			return Traveling{Travel: travel}, Motion{Heading: st.Aim.Degrees, Committed: true}
		}
		return st, Motion{}
	}
	return st, Motion{}
}

// advanceTraveling moves the ball by the distance covered from the pre-tick state, then
// integrates; input is ignored until the ball lands
func advanceTraveling(st Traveling, dt time.Duration) (Stage, Motion) {
	step := dt.Seconds() * parameter.FlightTimeScale
	travel := st.Travel

	motion := Motion{
		Heading: travel.Direction(),
		Tiles:   travel.TileDistance(step),
	}
	travel.Tick(step)

	if travel.Finished() {
		motion.Landed = true
		return Finished{}, motion
	}
	return Traveling{Travel: travel}, motion
}
