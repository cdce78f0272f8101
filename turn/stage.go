// Package turn implements the per-shot stage machine
//
// A shot moves ClubSelection -> Aiming -> Swinging -> Traveling -> Finished and then
// restarts at ClubSelection. Each stage carries exactly the data later stages need,
// so the committed club and heading can't change once the swing starts.
package turn

import (
	"github.com/lixenwraith/on-tour/club"
	"github.com/lixenwraith/on-tour/physics"
)

// StageKind discriminates Stage variants for presentation and snapshots
type StageKind uint8

const (
	KindClubSelection StageKind = iota
	KindAiming
	KindSwinging
	KindTraveling
	KindFinished
)

func (k StageKind) String() string {
	switch k {
	case KindClubSelection:
		return "club_selection"
	case KindAiming:
		return "aiming"
	case KindSwinging:
		return "swinging"
	case KindTraveling:
		return "traveling"
	case KindFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// Stage is the sealed sum of turn stages
type Stage interface {
	Kind() StageKind
	sealed()
}

// ClubSelection cycles through the set until confirmed
type ClubSelection struct {
	Set      club.Set
	Selected int
}

// Aiming holds the chosen club while the heading is adjusted
type Aiming struct {
	Aim  Aim
	Club club.Club
}

// Swinging runs the power/accuracy meter against a locked aim and club
type Swinging struct {
	Swing Swing
	Aim   Aim
	Club  club.Club
}

// Traveling owns the flight; it is discarded on landing
type Traveling struct {
	Travel physics.Travel
}

// Finished is the one-tick pause between landing and the next shot
type Finished struct{}

func (ClubSelection) Kind() StageKind { return KindClubSelection }
func (Aiming) Kind() StageKind        { return KindAiming }
func (Swinging) Kind() StageKind      { return KindSwinging }
func (Traveling) Kind() StageKind     { return KindTraveling }
func (Finished) Kind() StageKind      { return KindFinished }

func (ClubSelection) sealed() {}
func (Aiming) sealed()        {}
func (Swinging) sealed()      {}
func (Traveling) sealed()     {}
func (Finished) sealed()      {}

// Start returns the opening stage of a shot
func Start() Stage {
	return ClubSelection{Set: club.DefaultSet(), Selected: 0}
}
