package parameter

// HUD layout
const (
	// CrosshairRadius is the distance in tiles from the ball to the aim marker
	CrosshairRadius = 20.0

	// PowerBarWidth is the drawn width of the power meter
	PowerBarWidth = 51

	// StatusLineOffset is the distance of the stage line from the screen bottom
	StatusLineOffset = 3

	// PowerBarOffset is the distance of the power bar from the screen bottom
	PowerBarOffset = 10
)
