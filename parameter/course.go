package parameter

// Map loading
const (
	// DeepRoughRadius is the half-window scanned around a deep rough cell for fairway
	DeepRoughRadius = 8

	// DeepRoughFairwayThreshold is the fairway count above which deep rough softens to rough
	DeepRoughFairwayThreshold = 3

	// MaxMapDimension caps map width and height
	MaxMapDimension = 255
)
