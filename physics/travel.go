package physics

import (
	"math"

	"github.com/lixenwraith/on-tour/club"
	"github.com/lixenwraith/on-tour/parameter"
)

// Travel integrates the carry of a struck ball in the vertical plane
// Horizontal motion over the map is derived from TileDistance along Direction
// Ground roll after landing is not modelled: flight ends when height drops below zero
type Travel struct {
	direction       float64 // aim heading in degrees, fixed at launch
	initialVelocity float64
	fx, fy          float64 // launch direction cosines

	vx, vy float64
	ax, ay float64
	height float64

	liftMagnitude float64
	elapsed       float64
}

// NewTravel commits a shot: power in [0,100] scales the club's maximum launch speed
func NewTravel(power, direction float64, c club.Club) Travel {
	theta := c.LoftDeg * math.Pi / 180
	fx := math.Cos(theta)
	fy := math.Sin(theta)
	vi := power / parameter.PowerMax * c.MaxInitialVelocity
	vx := vi * fx
	vy := vi * fy

	return Travel{
		direction:       direction,
		initialVelocity: vi,
		fx:              fx,
		fy:              fy,
		vx:              vx,
		vy:              vy,
		ax:              drag(vx) / parameter.BallMass,
		ay:              drag(vy)/parameter.BallMass + parameter.Gravity,
		liftMagnitude:   LiftMagnitude(),
	}
}

// LiftMagnitude is the constant Magnus force magnitude for the fixed backspin
func LiftMagnitude() float64 {
	return parameter.LiftFactor * (1 - math.Exp(parameter.SpinFactor*parameter.BackspinRPM))
}

// drag returns the signed drag force for a velocity component
// The sign is always negative regardless of the component direction
func drag(v float64) float64 {
	return -0.5 * parameter.AirDensity * v * v * parameter.DragCoefficient * parameter.BallArea
}

// flightAngle is atan(vy/vx) with vx near zero treated as a vertical flight path
func flightAngle(vx, vy float64) float64 {
	if math.Abs(vx) < parameter.MinHorizontalSpeed {
		switch {
		case vy > 0:
			return math.Pi / 2
		case vy < 0:
			return -math.Pi / 2
		default:
			return 0
		}
	}
	return math.Atan(vy / vx)
}

// Tick advances the flight by dt seconds
// Order is fixed: height from the previous state, then velocities, then accelerations
func (t *Travel) Tick(dt float64) {
	height := t.height + t.vy*dt + 0.5*t.ay*dt*dt
	vx := t.vx + t.ax*dt
	vy := t.vy + t.ay*dt

	theta := flightAngle(vx, vy)
	lx := t.liftMagnitude * math.Sin(theta)
	ly := t.liftMagnitude * math.Cos(theta)

	t.height = height
	t.vx = vx
	t.vy = vy
	t.ax = drag(vx)/parameter.BallMass + lx/parameter.BallMass
	t.ay = drag(vy)/parameter.BallMass + parameter.Gravity + ly/parameter.BallMass
	t.elapsed += dt
}

// TileDistance returns the horizontal tiles covered over the next dt from the current state
func (t Travel) TileDistance(dt float64) float64 {
	meters := t.vx*dt + 0.5*t.ax*dt*dt
	return meters / parameter.MetersPerTile
}

// Finished reports whether the ball has returned below launch height
func (t Travel) Finished() bool {
	return t.height < 0
}

func (t Travel) Direction() float64 {
	return t.direction
}

func (t Travel) InitialVelocity() float64 {
	return t.initialVelocity
}

// Launch returns the launch direction cosines (horizontal, vertical)
func (t Travel) Launch() (fx, fy float64) {
	return t.fx, t.fy
}

func (t Travel) Height() float64 {
	return t.height
}

func (t Travel) Velocity() (vx, vy float64) {
	return t.vx, t.vy
}

func (t Travel) Acceleration() (ax, ay float64) {
	return t.ax, t.ay
}

// Elapsed returns the integrated flight time in seconds
func (t Travel) Elapsed() float64 {
	return t.elapsed
}
