package parameter

// Ball flight physics, SI units unless noted
const (
	// Gravity is vertical acceleration in m/s^2
	Gravity = -9.81

	// AirDensity is rho in kg/m^3
	AirDensity = 1.225

	// DragCoefficient is Cd of a dimpled ball
	DragCoefficient = 0.2

	// BallArea is the cross-sectional area in m^2
	BallArea = 0.00138

	// BallMass in kg
	BallMass = 0.045

	// BackspinRPM is the fixed spin rate applied to every shot
	BackspinRPM = 3275.0

	// SpinFactor and LiftFactor shape the constant Magnus lift magnitude:
	// LiftFactor * (1 - exp(SpinFactor * BackspinRPM))
	SpinFactor = -0.00026
	LiftFactor = 0.285

	// MetersPerTile converts carry distance into map tiles
	MetersPerTile = 8.33333
)

// Flight integration
const (
	// FlightTimeScale multiplies frame time while the ball is airborne
	FlightTimeScale = 2.0

	// MinHorizontalSpeed is the |vx| below which the flight angle is taken as vertical
	// instead of evaluating atan(vy/vx)
	MinHorizontalSpeed = 1e-6
)
