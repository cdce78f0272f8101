package turn

import "github.com/lixenwraith/on-tour/parameter"

// SwingPhase tags the active swing sub-stage
type SwingPhase uint8

const (
	SwingStart    SwingPhase = iota // waiting for the first confirm
	SwingPower                      // meter rising every tick
	SwingAccuracy                   // power locked, waiting for the strike
)

func (p SwingPhase) String() string {
	switch p {
	case SwingStart:
		return "start"
	case SwingPower:
		return "power"
	case SwingAccuracy:
		return "accuracy"
	default:
		return "unknown"
	}
}

// Swing is the meter sub-state
// Power is meaningful in Power and Accuracy; Accuracy only in Accuracy
// TODO: accuracy is deposited once and never advanced; needs a product decision on the timing mechanic
type Swing struct {
	Phase    SwingPhase
	Power    float64 // [0, PowerMax]
	Accuracy float64 // [0, 1]
}

func StartSwing() Swing {
	return Swing{Phase: SwingStart}
}

func PowerSwing(power float64) Swing {
	return Swing{Phase: SwingPower, Power: power}
}

func AccuracySwing(power, accuracy float64) Swing {
	return Swing{Phase: SwingAccuracy, Power: power, Accuracy: accuracy}
}

// Tick raises the meter while charging, saturating at PowerMax where it promotes to Accuracy
// Other phases are returned unchanged
func (s Swing) Tick() Swing {
	if s.Phase != SwingPower {
		return s
	}

	power := s.Power
	if power < parameter.PowerMax {
		power += parameter.PowerStep
	}
	if power >= parameter.PowerMax {
		return AccuracySwing(parameter.PowerMax, parameter.AccuracyOnSaturate)
	}
	return PowerSwing(power)
}
