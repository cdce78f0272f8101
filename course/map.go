package course

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/lixenwraith/on-tour/core"
	"github.com/lixenwraith/on-tour/parameter"
)

// Configuration errors, fatal at load time
var (
	ErrEmptyMap      = errors.New("map has no rows")
	ErrMissingTee    = errors.New("map has no tee")
	ErrMissingFlag   = errors.New("map has no flag")
	ErrDuplicateTee  = errors.New("map has more than one tee")
	ErrDuplicateFlag = errors.New("map has more than one flag")
	ErrMapTooLarge   = errors.New("map exceeds maximum dimension")
)

// Map is a finished tile grid with exactly one tee and one flag
// The core only reads it
type Map struct {
	width, height int
	tiles         []TileKind
	tee, flag     core.Point
}

func (m *Map) Width() int {
	return m.width
}

func (m *Map) Height() int {
	return m.height
}

func (m *Map) Tee() core.Point {
	return m.tee
}

func (m *Map) Flag() core.Point {
	return m.flag
}

// InBounds reports whether p is a cell of the map
func (m *Map) InBounds(p core.Point) bool {
	return p.X >= 0 && p.X < m.width && p.Y >= 0 && p.Y < m.height
}

// TileAt returns the terrain at p; out of bounds reads as rough
func (m *Map) TileAt(p core.Point) TileKind {
	if !m.InBounds(p) {
		return Rough
	}
	return m.tiles[p.Y*m.width+p.X]
}

// ParseMap reads one row per line
// Width comes from the first line; shorter rows pad with rough, longer rows are cut
func ParseMap(r io.Reader) (*Map, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read map: %w", err)
	}
	if len(lines) == 0 {
		return nil, ErrEmptyMap
	}

	width := len([]rune(lines[0]))
	height := len(lines)
	if width == 0 {
		return nil, ErrEmptyMap
	}
	if width > parameter.MaxMapDimension || height > parameter.MaxMapDimension {
		return nil, fmt.Errorf("%w: %dx%d", ErrMapTooLarge, width, height)
	}

	m := &Map{
		width:  width,
		height: height,
		tiles:  make([]TileKind, width*height),
	}
	var haveTee, haveFlag bool

	for y, line := range lines {
		x := 0
		for _, c := range line {
			if x >= width {
				break
			}
			tile := ParseTile(c)
			switch tile {
			case Tee:
				if haveTee {
					return nil, fmt.Errorf("%w: second tee at %d,%d", ErrDuplicateTee, x, y)
				}
				haveTee = true
				m.tee = core.Pt(x, y)
			case Flag:
				if haveFlag {
					return nil, fmt.Errorf("%w: second flag at %d,%d", ErrDuplicateFlag, x, y)
				}
				haveFlag = true
				m.flag = core.Pt(x, y)
			}
			m.tiles[y*width+x] = tile
			x++
		}
	}

	if !haveTee {
		return nil, ErrMissingTee
	}
	if !haveFlag {
		return nil, ErrMissingFlag
	}

	m.softenDeepRough()
	return m, nil
}

// softenDeepRough turns deep rough into rough where enough fairway sits nearby
// Counts read the unsoftened grid so the result doesn't depend on scan order
func (m *Map) softenDeepRough() {
	src := make([]TileKind, len(m.tiles))
	copy(src, m.tiles)

	rad := parameter.DeepRoughRadius
	for i, tile := range src {
		if tile != DeepRough {
			continue
		}
		x, y := i%m.width, i/m.width
		minX, maxX := max(x-rad, 0), min(x+rad, m.width-1)
		minY, maxY := max(y-rad, 0), min(y+rad, m.height-1)

		fairway := 0
		for ix := minX; ix < maxX; ix++ {
			for iy := minY; iy < maxY; iy++ {
				if src[iy*m.width+ix] == Fairway {
					fairway++
				}
			}
		}
		if fairway > parameter.DeepRoughFairwayThreshold {
			m.tiles[i] = Rough
		}
	}
}

// Intersection returns where the segment from -> to leaves the map
// to is expected off-map; when both axes overflow the corner is returned
func (m *Map) Intersection(from, to core.Point) core.Point {
	var x, y int
	var hasX, hasY bool

	switch {
	case to.Y > m.height:
		y, hasY = m.height, true
	case to.Y < 0:
		y, hasY = 0, true
	}
	switch {
	case to.X > m.width:
		x, hasX = m.width, true
	case to.X < 0:
		x, hasX = 0, true
	}

	switch {
	case hasX && hasY:
		return core.Pt(x, y)
	case hasX:
		dx := to.X - from.X
		if dx == 0 {
			return core.Pt(x, from.Y)
		}
		slope := float64(to.Y-from.Y) / float64(dx)
		return core.Pt(x, int(float64(from.Y)+float64(x-from.X)*slope))
	case hasY:
		if to.X == from.X {
			return core.Pt(from.X, y)
		}
		slope := float64(to.Y-from.Y) / float64(to.X-from.X)
		if slope == 0 {
			return core.Pt(to.X, y)
		}
		return core.Pt(int(float64(from.X)+float64(y-from.Y)/slope), y)
	default:
		return core.Pt(0, 0)
	}
}
