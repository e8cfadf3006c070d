package input

import "github.com/gdamore/tcell/v2"

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, arrows)
	SpecialKeys map[tcell.Key]IntentType

	// Printable rune bindings
	Runes map[rune]IntentType
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]IntentType{
			tcell.KeyCtrlC: IntentQuit,
			tcell.KeyUp:    IntentMoveUp,
			tcell.KeyDown:  IntentMoveDown,
			tcell.KeyLeft:  IntentMoveLeft,
			tcell.KeyRight: IntentMoveRight,
		},
		Runes: map[rune]IntentType{
			'q': IntentQuit,
			'Q': IntentQuit,
		},
	}
}

// Translate resolves a key event; unbound keys yield IntentNone
func (kt *KeyTable) Translate(ev *tcell.EventKey) IntentType {
	if ev.Key() == tcell.KeyRune {
		return kt.Runes[ev.Rune()]
	}
	return kt.SpecialKeys[ev.Key()]
}
