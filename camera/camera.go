// Package camera keeps a fixed-size viewport over the course map centered on the ball
// The window clamps at the map edges so it never scrolls past them
package camera

import "github.com/lixenwraith/on-tour/core"

// Camera is a value; Update returns a new camera
type Camera struct {
	area        core.Area
	mapW, mapH  int
	displayW    int
	displayH    int
	coordinates []core.Point
}

// New builds a camera over a mapW x mapH map showing displayW x displayH cells around ball
func New(ball core.Point, mapW, mapH, displayW, displayH int) Camera {
	c := Camera{
		mapW:     mapW,
		mapH:     mapH,
		displayW: displayW,
		displayH: displayH,
	}
	return c.Update(ball)
}

// Update recenters on the ball tile
func (c Camera) Update(ball core.Point) Camera {
	center := core.Pt(
		axisCenter(ball.X, c.mapW, c.displayW),
		axisCenter(ball.Y, c.mapH, c.displayH),
	)
	c.area = core.NewArea(center, c.displayW, c.displayH)
	c.coordinates = c.area.Coordinates()
	return c
}

// axisCenter picks the window center on one axis
// Far edge is checked before near edge; a map narrower than the window centers on the map
func axisCenter(pos, mapSize, display int) int {
	half := display / 2
	if mapSize < display {
		return mapSize / 2
	}
	switch {
	case mapSize-pos < half:
		return mapSize - half
	case pos < half:
		return half
	default:
		return pos
	}
}

// RenderCoordinate maps a map cell to its screen cell inside the framed viewport
func (c Camera) RenderCoordinate(p core.Point) core.Point {
	return c.area.RelativePoint(p)
}

// Bounds returns the visible map window
func (c Camera) Bounds() core.Area {
	return c.area
}

func (c Camera) Width() int {
	return c.area.Width()
}

func (c Camera) Height() int {
	return c.area.Height()
}

// Coordinates lists the visible map cells in row-major order
// The slice is shared; callers must not modify it
func (c Camera) Coordinates() []core.Point {
	return c.coordinates
}
