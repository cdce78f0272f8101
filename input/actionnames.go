package input

import "strings"

var intentNames = map[Intent]string{
	IntentNone:     "none",
	IntentLeft:     "left",
	IntentRight:    "right",
	IntentConfirm:  "confirm",
	IntentNextClub: "next_club",
	IntentPrevClub: "previous_club",
	IntentBack:     "back",
	IntentStart:    "start",
	IntentQuit:     "quit",
}

// actionRegistry maps canonical and alias action names to intents
// Used by the keymap loader and replay scripts
var actionRegistry map[string]Intent

func init() {
	actionRegistry = buildActionRegistry()
}

func buildActionRegistry() map[string]Intent {
	reg := make(map[string]Intent, len(intentNames)+4)
	for intent, name := range intentNames {
		reg[name] = intent
	}

	// Aliases
	reg["aim_left"] = IntentLeft
	reg["aim_right"] = IntentRight
	reg["prev_club"] = IntentPrevClub
	reg["wait"] = IntentNone

	return reg
}

// ActionIntent resolves an action name, case-insensitive
func ActionIntent(name string) (Intent, bool) {
	intent, ok := actionRegistry[strings.ToLower(strings.TrimSpace(name))]
	return intent, ok
}
