package turn

import (
	"testing"
	"time"

	"github.com/lixenwraith/on-tour/club"
	"github.com/lixenwraith/on-tour/input"
	"github.com/lixenwraith/on-tour/parameter"
	"github.com/lixenwraith/on-tour/physics"
)

const frame = 33 * time.Millisecond

func TestAimAdjust(t *testing.T) {
	a := Aim{}
	if got := a.Adjust(input.IntentLeft).Degrees; got != parameter.AimRate {
		t.Errorf("Expected left to add %v, got %v", parameter.AimRate, got)
	}
	if got := a.Adjust(input.IntentRight).Degrees; got != -parameter.AimRate {
		t.Errorf("Expected right to subtract %v, got %v", parameter.AimRate, got)
	}
	if got := a.Adjust(input.IntentConfirm); got != a {
		t.Errorf("Expected confirm to leave aim unchanged, got %v", got)
	}
}

// TestClubSelectionTransitions covers rotation and confirm
func TestClubSelectionTransitions(t *testing.T) {
	s := Start()

	s, _ = Advance(s, input.IntentNextClub, frame)
	cs, ok := s.(ClubSelection)
	if !ok || cs.Selected != 1 {
		t.Fatalf("Expected ClubSelection at 1, got %#v", s)
	}

	s, _ = Advance(s, input.IntentNextClub, frame)
	if cs := s.(ClubSelection); cs.Selected != 0 {
		t.Errorf("Expected wrap to 0, got %d", cs.Selected)
	}

	s, _ = Advance(s, input.IntentPrevClub, frame)
	if cs := s.(ClubSelection); cs.Selected != 1 {
		t.Errorf("Expected wrap back to 1, got %d", cs.Selected)
	}

	s, _ = Advance(s, input.IntentConfirm, frame)
	aiming, ok := s.(Aiming)
	if !ok {
		t.Fatalf("Expected Aiming after confirm, got %T", s)
	}
	if aiming.Club != club.Putter {
		t.Errorf("Expected Putter carried into Aiming, got %s", aiming.Club.Name)
	}
	if aiming.Aim.Degrees != 0 {
		t.Errorf("Expected default aim 0, got %v", aiming.Aim.Degrees)
	}
}

func TestClubSelectionIdleTicks(t *testing.T) {
	s := Start()
	for i := 0; i < 10; i++ {
		s, _ = Advance(s, input.IntentNone, frame)
	}
	if cs, ok := s.(ClubSelection); !ok || cs.Selected != 0 {
		t.Errorf("Expected idle ClubSelection to stay put, got %#v", s)
	}
}

func TestAimingTransitions(t *testing.T) {
	var s Stage = Aiming{Club: club.Driver}

	s, _ = Advance(s, input.IntentLeft, frame)
	s, _ = Advance(s, input.IntentLeft, frame)
	s, _ = Advance(s, input.IntentRight, frame)
	if a := s.(Aiming); a.Aim.Degrees != parameter.AimRate {
		t.Errorf("Expected aim %v, got %v", parameter.AimRate, a.Aim.Degrees)
	}

	// Club keys are not valid while aiming
	s, _ = Advance(s, input.IntentNextClub, frame)
	if a := s.(Aiming); a.Club != club.Driver {
		t.Errorf("Expected club to stay Driver, got %s", a.Club.Name)
	}

	s, _ = Advance(s, input.IntentConfirm, frame)
	sw, ok := s.(Swinging)
	if !ok {
		t.Fatalf("Expected Swinging, got %T", s)
	}
	if sw.Swing.Phase != SwingStart || sw.Aim.Degrees != parameter.AimRate || sw.Club != club.Driver {
		t.Errorf("Expected Swinging(Start) carrying aim and club, got %#v", sw)
	}
}

// TestBackAbandonsAim verifies back returns to selection at the same club
func TestBackAbandonsAim(t *testing.T) {
	var s Stage = Aiming{Aim: Aim{Degrees: 9}, Club: club.Putter}
	s, _ = Advance(s, input.IntentBack, frame)

	cs, ok := s.(ClubSelection)
	if !ok {
		t.Fatalf("Expected ClubSelection, got %T", s)
	}
	if cs.Set.At(cs.Selected) != club.Putter {
		t.Errorf("Expected Putter still selected, got %s", cs.Set.At(cs.Selected).Name)
	}

	s = Swinging{Swing: StartSwing(), Aim: Aim{Degrees: 6}, Club: club.Driver}
	s, _ = Advance(s, input.IntentBack, frame)
	if a, ok := s.(Aiming); !ok || a.Aim.Degrees != 6 {
		t.Errorf("Expected back from un-started swing to Aiming(6), got %#v", s)
	}

	// Once charging, back is ignored and the meter keeps rising
	s = Swinging{Swing: PowerSwing(10), Club: club.Driver}
	s, _ = Advance(s, input.IntentBack, frame)
	if sw, ok := s.(Swinging); !ok || sw.Swing.Power != 11 {
		t.Errorf("Expected charging swing to ignore back, got %#v", s)
	}
}

// TestPowerMonotonicSaturates verifies the meter rises every tick and promotes at 100
func TestPowerMonotonicSaturates(t *testing.T) {
	var s Stage = Swinging{Swing: StartSwing(), Club: club.Driver}
	s, _ = Advance(s, input.IntentConfirm, frame)

	last := -1.0
	for i := 0; i < 99; i++ {
		sw := s.(Swinging)
		if sw.Swing.Phase != SwingPower {
			t.Fatalf("Tick %d: expected Power phase, got %s", i, sw.Swing.Phase)
		}
		if sw.Swing.Power < last {
			t.Fatalf("Tick %d: power decreased from %v to %v", i, last, sw.Swing.Power)
		}
		last = sw.Swing.Power
		s, _ = Advance(s, input.IntentNone, frame)
	}

	sw := s.(Swinging)
	if sw.Swing.Phase != SwingPower || sw.Swing.Power != 99 {
		t.Fatalf("Expected Power(99), got %s(%v)", sw.Swing.Phase, sw.Swing.Power)
	}

	s, _ = Advance(s, input.IntentNone, frame)
	sw = s.(Swinging)
	if sw.Swing.Phase != SwingAccuracy || sw.Swing.Power != 100 || sw.Swing.Accuracy != 0 {
		t.Errorf("Expected Accuracy(100, 0), got %s(%v, %v)", sw.Swing.Phase, sw.Swing.Power, sw.Swing.Accuracy)
	}

	// Accuracy is not advanced by ticks
	s, _ = Advance(s, input.IntentNone, frame)
	if got := s.(Swinging).Swing; got != sw.Swing {
		t.Errorf("Expected idle Accuracy to stay %#v, got %#v", sw.Swing, got)
	}
}

func TestSwingTick(t *testing.T) {
	tests := []struct {
		name string
		in   Swing
		want Swing
	}{
		{"start untouched", StartSwing(), StartSwing()},
		{"power rises", PowerSwing(41), PowerSwing(42)},
		{"power saturates", PowerSwing(99), AccuracySwing(100, 0)},
		{"over max clamps", PowerSwing(100), AccuracySwing(100, 0)},
		{"accuracy untouched", AccuracySwing(50, 1), AccuracySwing(50, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.Tick(); got != tt.want {
				t.Errorf("Expected %#v, got %#v", tt.want, got)
			}
		})
	}
}

// TestConfirmLocksPower verifies confirm during charge deposits full accuracy at current power
func TestConfirmLocksPower(t *testing.T) {
	var s Stage = Swinging{Swing: PowerSwing(42), Aim: Aim{Degrees: 3}, Club: club.Driver}
	s, m := Advance(s, input.IntentConfirm, frame)

	sw, ok := s.(Swinging)
	if !ok {
		t.Fatalf("Expected Swinging, got %T", s)
	}
	if sw.Swing != AccuracySwing(42, 1) {
		t.Errorf("Expected Accuracy(42, 1), got %#v", sw.Swing)
	}
	if m.Committed {
		t.Error("Locking power must not commit the shot")
	}
}

// TestSaturationNoDoubleTransition verifies the tick that saturates can't also launch
func TestSaturationNoDoubleTransition(t *testing.T) {
	var s Stage = Swinging{Swing: PowerSwing(99), Club: club.Driver}

	s, m := Advance(s, input.IntentConfirm, frame)
	if _, ok := s.(Swinging); !ok || m.Committed {
		t.Fatalf("Expected to remain Swinging on confirm at 99, got %T", s)
	}

	s, _ = Advance(Swinging{Swing: PowerSwing(99), Club: club.Driver}, input.IntentNone, frame)
	if sw := s.(Swinging); sw.Swing.Phase != SwingAccuracy {
		t.Fatalf("Expected saturation to Accuracy, got %s", sw.Swing.Phase)
	}

	// Launch needs a separate confirm
	s, m = Advance(s, input.IntentConfirm, frame)
	if _, ok := s.(Traveling); !ok || !m.Committed {
		t.Errorf("Expected Traveling with commit, got %T", s)
	}
}

func TestCommitBuildsTravel(t *testing.T) {
	var s Stage = Swinging{Swing: AccuracySwing(100, 1), Aim: Aim{Degrees: 15}, Club: club.Driver}
	s, m := Advance(s, input.IntentConfirm, frame)

	tr, ok := s.(Traveling)
	if !ok {
		t.Fatalf("Expected Traveling, got %T", s)
	}
	want := physics.NewTravel(100, 15, club.Driver)
	if tr.Travel != want {
		t.Errorf("Expected travel %#v, got %#v", want, tr.Travel)
	}
	if !m.Committed || m.Heading != 15 || m.Tiles != 0 {
		t.Errorf("Expected commit motion at heading 15 with no displacement, got %#v", m)
	}
}

// TestTravelingIgnoresInput verifies discrete input can't disturb a flight
func TestTravelingIgnoresInput(t *testing.T) {
	base := Traveling{Travel: physics.NewTravel(100, 0, club.Driver)}

	a, ma := Advance(base, input.IntentNone, frame)
	b, mb := Advance(base, input.IntentConfirm, frame)
	c, _ := Advance(base, input.IntentBack, frame)

	if a != b || a != c {
		t.Errorf("Expected identical stages regardless of input")
	}
	if ma != mb {
		t.Errorf("Expected identical motion regardless of input, got %#v vs %#v", ma, mb)
	}
	if ma.Tiles <= 0 {
		t.Errorf("Expected forward motion, got %v tiles", ma.Tiles)
	}
}

// TestTravelingMotionUsesPreTickState verifies distance precedes integration
func TestTravelingMotionUsesPreTickState(t *testing.T) {
	travel := physics.NewTravel(100, 30, club.Driver)
	step := frame.Seconds() * parameter.FlightTimeScale
	want := travel.TileDistance(step)

	_, m := Advance(Traveling{Travel: travel}, input.IntentNone, frame)
	if m.Tiles != want {
		t.Errorf("Expected %v tiles, got %v", want, m.Tiles)
	}
	if m.Heading != 30 {
		t.Errorf("Expected heading 30, got %v", m.Heading)
	}
}

// TestFullShotCycle drives a shot from selection to the next selection
func TestFullShotCycle(t *testing.T) {
	s := Start()
	commits, landings := 0, 0

	script := []input.Intent{
		input.IntentConfirm, // club
		input.IntentLeft,    // aim
		input.IntentConfirm, // lock aim
		input.IntentConfirm, // start meter
	}
	for i := 0; i < 50; i++ {
		script = append(script, input.IntentNone)
	}
	script = append(script, input.IntentConfirm, input.IntentConfirm)

	for _, in := range script {
		var m Motion
		s, m = Advance(s, in, frame)
		if m.Committed {
			commits++
		}
	}
	if _, ok := s.(Traveling); !ok {
		t.Fatalf("Expected Traveling after swing, got %T", s)
	}

	for i := 0; i < 10000; i++ {
		var m Motion
		s, m = Advance(s, input.IntentNone, frame)
		if m.Landed {
			landings++
		}
		if _, ok := s.(Finished); ok {
			break
		}
	}
	if _, ok := s.(Finished); !ok {
		t.Fatalf("Expected Finished after flight, got %T", s)
	}

	s, _ = Advance(s, input.IntentNone, frame)
	if cs, ok := s.(ClubSelection); !ok || cs.Selected != 0 {
		t.Errorf("Expected a fresh ClubSelection, got %#v", s)
	}
	if commits != 1 || landings != 1 {
		t.Errorf("Expected one commit and one landing, got %d and %d", commits, landings)
	}
}

func TestStageKinds(t *testing.T) {
	tests := []struct {
		stage Stage
		want  string
	}{
		{Start(), "club_selection"},
		{Aiming{}, "aiming"},
		{Swinging{}, "swinging"},
		{Traveling{}, "traveling"},
		{Finished{}, "finished"},
	}
	for _, tt := range tests {
		if got := tt.stage.Kind().String(); got != tt.want {
			t.Errorf("Expected %s, got %s", tt.want, got)
		}
	}
}
