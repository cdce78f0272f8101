// Package club holds the static club catalog and the selectable rotation
package club

// Club is an immutable catalog entry
type Club struct {
	ID                 uint32
	Name               string
	LoftDeg            float64 // launch angle
	MaxInitialVelocity float64 // m/s at full power
}

var (
	Driver = Club{ID: 1, Name: "Driver", LoftDeg: 12, MaxInitialVelocity: 73.76}
	Putter = Club{ID: 2, Name: "Putter", LoftDeg: 0, MaxInitialVelocity: 1}
)

// Default returns the club a shot falls back to
func Default() Club {
	return Driver
}

// Set is a fixed ordered rotation of clubs
// Indices wrap in both directions, so any int selects a valid club
type Set struct {
	clubs [2]Club
}

// DefaultSet returns Driver then Putter
func DefaultSet() Set {
	return Set{clubs: [2]Club{Driver, Putter}}
}

// Len returns the number of clubs in the set
func (s Set) Len() int {
	return len(s.clubs)
}

// Next returns the index after selected, wrapping to 0
func (s Set) Next(selected int) int {
	return s.wrap(selected + 1)
}

// Previous returns the index before selected, wrapping to the last club
func (s Set) Previous(selected int) int {
	return s.wrap(selected - 1)
}

// At returns the club at selected modulo the set length
func (s Set) At(selected int) Club {
	return s.clubs[s.wrap(selected)]
}

// Index returns the position of c in the set, or 0 when absent
func (s Set) Index(c Club) int {
	for i, candidate := range s.clubs {
		if candidate.ID == c.ID {
			return i
		}
	}
	return 0
}

// Clubs returns a copy of the rotation in order
func (s Set) Clubs() []Club {
	out := make([]Club, len(s.clubs))
	copy(out, s.clubs[:])
	return out
}

func (s Set) wrap(i int) int {
	n := len(s.clubs)
	return ((i % n) + n) % n
}
