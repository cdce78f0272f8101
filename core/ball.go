package core

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Ball holds a sub-tile position in map units
// Tile lookups truncate toward zero
type Ball struct {
	Position mgl64.Vec2
}

// NewBall places a ball at the origin corner of a tile
func NewBall(tile Point) Ball {
	return Ball{Position: mgl64.Vec2{float64(tile.X), float64(tile.Y)}}
}

// TilePosition returns the integer cell under the ball
func (b Ball) TilePosition() Point {
	return Point{X: int(b.Position.X()), Y: int(b.Position.Y())}
}

// MoveTo relocates the ball onto a tile
func (b Ball) MoveTo(tile Point) Ball {
	return NewBall(tile)
}

// Advance moves the ball tiles units along a heading in degrees
func (b Ball) Advance(degrees, tiles float64) Ball {
	return Ball{Position: b.Position.Add(Heading(degrees).Mul(tiles))}
}

// Heading converts an aim in degrees into a unit vector in map space
// 0 points north (towards row 0); positive degrees turn counter-clockwise
func Heading(degrees float64) mgl64.Vec2 {
	rad := mgl64.DegToRad(degrees + 90)
	return mgl64.Vec2{math.Cos(rad), -math.Sin(rad)}
}

// Offset returns the cell at distance radius along a heading from origin, rounded
func Offset(origin Point, degrees, radius float64) Point {
	d := Heading(degrees).Mul(radius)
	return Point{
		X: origin.X + int(math.Round(d.X())),
		Y: origin.Y + int(math.Round(d.Y())),
	}
}
