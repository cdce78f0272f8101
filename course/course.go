package course

// Hole is one map of the course with its par
// Number counts from 1 in manifest order
type Hole struct {
	Number int
	Par    int
	Map    *Map
}

// Course is a forward-only queue of holes
// Next never mutates the receiver; it returns the remainder
type Course struct {
	name  string
	holes []Hole
}

// NewCourse builds a course from holes in play order
func NewCourse(name string, holes ...Hole) Course {
	h := make([]Hole, len(holes))
	copy(h, holes)
	return Course{name: name, holes: h}
}

func (c Course) Name() string {
	return c.name
}

// Remaining returns the number of holes not yet popped
func (c Course) Remaining() int {
	return len(c.holes)
}

// Next pops the first hole; ok is false once the course is exhausted
func (c Course) Next() (Hole, Course, bool) {
	if len(c.holes) == 0 {
		return Hole{}, c, false
	}
	return c.holes[0], Course{name: c.name, holes: c.holes[1:]}, true
}
