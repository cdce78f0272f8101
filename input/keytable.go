package input

import "github.com/gdamore/tcell/v2"

// KeyTable maps terminal keys to intents
type KeyTable struct {
	// Special keys (arrows, Enter, Ctrl+*)
	SpecialKeys map[tcell.Key]Intent

	// Printable runes, delivered by tcell as KeyRune
	Runes map[rune]Intent
}

// DefaultKeyTable returns the default bindings
// Arrows aim and rotate clubs, space drives the swing, d leaves the menu
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]Intent{
			tcell.KeyLeft:       IntentLeft,
			tcell.KeyRight:      IntentRight,
			tcell.KeyDown:       IntentNextClub,
			tcell.KeyUp:         IntentPrevClub,
			tcell.KeyEnter:      IntentStart,
			tcell.KeyBackspace:  IntentBack,
			tcell.KeyBackspace2: IntentBack,
			tcell.KeyEscape:     IntentQuit,
			tcell.KeyCtrlC:      IntentQuit,
			tcell.KeyCtrlQ:      IntentQuit,
		},
		Runes: map[rune]Intent{
			' ': IntentConfirm,
			'd': IntentStart,
			'D': IntentStart,
			'q': IntentQuit,
			'h': IntentLeft,
			'l': IntentRight,
			'j': IntentNextClub,
			'k': IntentPrevClub,
		},
	}
}

// Translate resolves a key event to an intent
// tcell reports printable characters as KeyRune with the character in r
func (kt *KeyTable) Translate(key tcell.Key, r rune) Intent {
	if key == tcell.KeyRune {
		return kt.Runes[r]
	}
	return kt.SpecialKeys[key]
}

// Clone returns a deep copy
func (kt *KeyTable) Clone() *KeyTable {
	c := &KeyTable{
		SpecialKeys: make(map[tcell.Key]Intent, len(kt.SpecialKeys)),
		Runes:       make(map[rune]Intent, len(kt.Runes)),
	}
	for k, v := range kt.SpecialKeys {
		c.SpecialKeys[k] = v
	}
	for k, v := range kt.Runes {
		c.Runes[k] = v
	}
	return c
}
