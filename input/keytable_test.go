package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/snake/engine"
)

func TestKeyTableTranslate(t *testing.T) {
	kt := DefaultKeyTable()

	tests := []struct {
		name string
		key  tcell.Key
		r    rune
		want IntentType
	}{
		{"Arrow up", tcell.KeyUp, 0, IntentMoveUp},
		{"Arrow down", tcell.KeyDown, 0, IntentMoveDown},
		{"Arrow left", tcell.KeyLeft, 0, IntentMoveLeft},
		{"Arrow right", tcell.KeyRight, 0, IntentMoveRight},
		{"Quit lower", tcell.KeyRune, 'q', IntentQuit},
		{"Quit upper", tcell.KeyRune, 'Q', IntentQuit},
		{"Ctrl-C", tcell.KeyCtrlC, 0, IntentQuit},
		{"Unbound rune", tcell.KeyRune, 'x', IntentNone},
		{"Unbound key", tcell.KeyF5, 0, IntentNone},
		{"Enter", tcell.KeyEnter, 0, IntentNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev := tcell.NewEventKey(tt.key, tt.r, tcell.ModNone)
			if got := kt.Translate(ev); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestIntentDirection(t *testing.T) {
	tests := []struct {
		intent IntentType
		want   engine.Direction
	}{
		{IntentMoveUp, engine.DirUp},
		{IntentMoveDown, engine.DirDown},
		{IntentMoveLeft, engine.DirLeft},
		{IntentMoveRight, engine.DirRight},
		{IntentQuit, engine.DirNone},
		{IntentNone, engine.DirNone},
		{IntentResize, engine.DirNone},
	}

	for _, tt := range tests {
		t.Run(tt.intent.String(), func(t *testing.T) {
			if got := tt.intent.Direction(); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}
