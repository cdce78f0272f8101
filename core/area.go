package core

import "github.com/lixenwraith/on-tour/parameter"

// Area represents a rectangular window over the map, built around a center cell
// Bounds are half-open on the far side: [MinX, MaxX) x [MinY, MaxY)
type Area struct {
	MinX, MaxX int
	MinY, MaxY int
}

// NewArea spans width x height cells around center
// Odd sizes lose one cell since half extents use integer division
func NewArea(center Point, width, height int) Area {
	return Area{
		MinX: center.X - width/2,
		MaxX: center.X + width/2,
		MinY: center.Y - height/2,
		MaxY: center.Y + height/2,
	}
}

func (a Area) Width() int {
	return a.MaxX - a.MinX
}

func (a Area) Height() int {
	return a.MaxY - a.MinY
}

// RelativePoint translates a map cell into window space, shifted past the frame border
func (a Area) RelativePoint(p Point) Point {
	return p.Sub(Pt(a.MinX, a.MinY)).Add(Pt(parameter.ViewportFrame, parameter.ViewportFrame))
}

// Coordinates lists the map cells that fit inside the framed window, row-major
func (a Area) Coordinates() []Point {
	inset := 2 * parameter.ViewportFrame
	w := a.Width() - inset
	h := a.Height() - inset
	if w <= 0 || h <= 0 {
		return nil
	}

	points := make([]Point, 0, w*h)
	for y := a.MinY; y < a.MaxY-inset; y++ {
		for x := a.MinX; x < a.MaxX-inset; x++ {
			points = append(points, Point{X: x, Y: y})
		}
	}
	return points
}
