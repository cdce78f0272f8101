package input

// Intent is a discrete per-tick input event
// The core consumes at most one intent per step; the zero value means no input
type Intent uint8

const (
	IntentNone Intent = iota

	// Turn intents
	IntentLeft     // aim counter-clockwise
	IntentRight    // aim clockwise
	IntentConfirm  // advance the current stage (select club, lock aim, swing meter)
	IntentNextClub // club rotation forward
	IntentPrevClub // club rotation backward
	IntentBack     // abandon aim or an un-started swing

	// Session intents
	IntentStart // leave the menu
	IntentQuit  // handled by the driver, never reaches the core
)

// String returns the canonical action name
func (i Intent) String() string {
	if name, ok := intentNames[i]; ok {
		return name
	}
	return "unknown"
}
