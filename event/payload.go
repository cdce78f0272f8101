package event

import "github.com/lixenwraith/on-tour/core"

// PlayStartedPayload names the course being played
type PlayStartedPayload struct {
	Course string `json:"course"`
	Holes  int    `json:"holes"`
}

// HoleStartedPayload describes the hole just set up
type HoleStartedPayload struct {
	Hole int        `json:"hole"`
	Par  int        `json:"par"`
	Tee  core.Point `json:"tee"`
	Flag core.Point `json:"flag"`
}

// ShotCommittedPayload carries the launch parameters of a stroke
type ShotCommittedPayload struct {
	Hole            int     `json:"hole"`
	Stroke          int     `json:"stroke"`
	Club            string  `json:"club"`
	Power           float64 `json:"power"`
	Direction       float64 `json:"direction"`
	InitialVelocity float64 `json:"initial_velocity"`
}

// BallLandedPayload reports where the ball came to rest and how far it carried
type BallLandedPayload struct {
	Hole  int        `json:"hole"`
	Tile  core.Point `json:"tile"`
	Carry float64    `json:"carry"`
}

// HoleCompletedPayload is the score for one hole
type HoleCompletedPayload struct {
	Hole    int `json:"hole"`
	Par     int `json:"par"`
	Strokes int `json:"strokes"`
}

// CourseCompletedPayload totals the round
type CourseCompletedPayload struct {
	Course  string `json:"course"`
	Strokes int    `json:"strokes"`
	Par     int    `json:"par"`
}
