package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/on-tour/course"
)

// UI colors
var (
	RgbFrame      = tcell.ColorWhite
	RgbText       = tcell.ColorWhite
	RgbBackground = tcell.ColorBlack
	RgbPowerBar   = tcell.ColorRed
	RgbEdgeMarker = tcell.ColorRed
	RgbBall       = tcell.ColorWhite
	RgbCrosshair  = tcell.ColorWhite
	RgbUnderPar   = tcell.NewRGBColor(255, 80, 80)
	RgbOverPar    = tcell.NewRGBColor(100, 150, 255)
)

// Tile colors
var (
	RgbRough     = tcell.ColorDarkGreen
	RgbFairway   = tcell.ColorForestGreen
	RgbGreen     = tcell.ColorGreen
	RgbFlag      = tcell.ColorRed
	RgbFlagBg    = tcell.ColorLightGreen
	RgbDeepRough = tcell.NewRGBColor(0, 70, 0)
)

// TileGlyph returns the character drawn for a terrain cell
func TileGlyph(k course.TileKind) rune {
	switch k {
	case course.Tee:
		return 'T'
	case course.Flag:
		return 'F'
	case course.TeeBox, course.Fairway, course.Green:
		return '█'
	case course.DeepRough:
		return '▓'
	default:
		return '░'
	}
}

// tileColors returns foreground and background for a terrain cell
// Solid tiles use the same color on both layers
func tileColors(k course.TileKind) (fg, bg tcell.Color) {
	switch k {
	case course.Tee:
		return RgbText, RgbRough
	case course.TeeBox:
		return RgbRough, RgbRough
	case course.Fairway:
		return RgbFairway, RgbFairway
	case course.Green:
		return RgbGreen, RgbGreen
	case course.Flag:
		return RgbFlag, RgbFlagBg
	case course.DeepRough:
		return RgbDeepRough, RgbBackground
	default:
		return RgbRough, RgbBackground
	}
}

// TileStyle is the full cell style for a terrain cell
func TileStyle(k course.TileKind) tcell.Style {
	fg, bg := tileColors(k)
	return tcell.StyleDefault.Foreground(fg).Background(bg)
}

// TileBackground is the background under a terrain cell, used when overdrawing markers
func TileBackground(k course.TileKind) tcell.Color {
	_, bg := tileColors(k)
	return bg
}
