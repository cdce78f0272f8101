package event

// EventType represents the type of game event
type EventType int

const (
	// EventPlayStarted signals the player left the menu
	// Trigger: engine.Step on IntentStart in the menu
	// Consumer: driver log, spectators | Payload: *PlayStartedPayload
	EventPlayStarted EventType = iota + 1

	// EventHoleStarted signals a hole was popped and the ball placed on its tee
	// Trigger: engine.Step on play start and after each holed ball
	// Consumer: driver log, spectators | Payload: *HoleStartedPayload
	EventHoleStarted

	// EventShotCommitted signals a swing became a flight
	// Trigger: engine.Step when the accuracy meter is confirmed
	// Consumer: driver log, spectators | Payload: *ShotCommittedPayload
	EventShotCommitted

	// EventBallLanded signals the flight came to rest
	// Trigger: engine.Step when the travel integration finishes
	// Consumer: driver log, spectators | Payload: *BallLandedPayload
	EventBallLanded

	// EventHoleCompleted signals a ball reached the flag tile
	// Trigger: engine.Step on HoleState Holed
	// Consumer: driver log, spectators | Payload: *HoleCompletedPayload
	EventHoleCompleted

	// EventCourseCompleted signals the last hole was finished
	// Trigger: engine.Step when the course queue is exhausted
	// Consumer: driver (headless exit), spectators | Payload: *CourseCompletedPayload
	EventCourseCompleted
)

var typeNames = map[EventType]string{
	EventPlayStarted:     "play_started",
	EventHoleStarted:     "hole_started",
	EventShotCommitted:   "shot_committed",
	EventBallLanded:      "ball_landed",
	EventHoleCompleted:   "hole_completed",
	EventCourseCompleted: "course_completed",
}

func (t EventType) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "unknown"
}

// MarshalText encodes the event name for JSON consumers
func (t EventType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// GameEvent represents a single game event with metadata
type GameEvent struct {
	Type    EventType `json:"type"`
	Frame   uint64    `json:"frame"`
	Payload any       `json:"payload,omitempty"`
}
