package parameter

// Screen and viewport geometry in cells
// Viewport is the screen minus the side panel and the bottom UI strip
const (
	ScreenWidth  = 80
	ScreenHeight = 60

	// ViewportMarginX is the width reserved right of the map view
	ViewportMarginX = 15

	// ViewportMarginY is the height reserved below the map view for status lines
	ViewportMarginY = 10

	// ViewportFrame is the border thickness drawn around the map view
	// RenderCoordinate shifts map cells by this amount
	ViewportFrame = 1
)
