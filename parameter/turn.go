package parameter

// Aiming and swing meter
const (
	// AimRate is the heading change in degrees per left/right input
	AimRate = 3.0

	// PowerMax is the saturation point of the power meter
	PowerMax = 100.0

	// PowerStep is the power gained per tick while charging
	PowerStep = 1.0

	// AccuracyOnConfirm is the accuracy deposited when the player stops the power meter
	AccuracyOnConfirm = 1.0

	// AccuracyOnSaturate is the accuracy deposited when the meter runs out on its own
	AccuracyOnSaturate = 0.0
)
