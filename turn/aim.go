package turn

import (
	"github.com/lixenwraith/on-tour/input"
	"github.com/lixenwraith/on-tour/parameter"
)

// Aim is a heading in degrees, 0 = north, positive = counter-clockwise
// Values are replaced on adjustment, never mutated
type Aim struct {
	Degrees float64
}

// Adjust turns the heading by AimRate for left/right, otherwise returns the aim unchanged
func (a Aim) Adjust(intent input.Intent) Aim {
	switch intent {
	case input.IntentLeft:
		return Aim{Degrees: a.Degrees + parameter.AimRate}
	case input.IntentRight:
		return Aim{Degrees: a.Degrees - parameter.AimRate}
	default:
		return a
	}
}
