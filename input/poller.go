package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/snake/core"
)

// EventSource is the blocking event feed of a tcell screen
type EventSource interface {
	PollEvent() tcell.Event
}

// Poller reads terminal events on its own goroutine and hands them out one per Poll.
// Poll never blocks, so the tick loop proceeds whether or not a key is pending
type Poller struct {
	src    EventSource
	keys   *KeyTable
	events chan IntentType
	done   chan struct{}
}

// NewPoller creates a poller over src with the given bindings
func NewPoller(src EventSource, keys *KeyTable) *Poller {
	return &Poller{
		src:    src,
		keys:   keys,
		events: make(chan IntentType, 64),
		done:   make(chan struct{}),
	}
}

// Start launches the reader goroutine. It exits once the source returns nil,
// which tcell does after Fini
func (p *Poller) Start() {
	core.Go(p.readLoop)
}

// Done is closed when the reader goroutine has exited
func (p *Poller) Done() <-chan struct{} {
	return p.done
}

func (p *Poller) readLoop() {
	defer close(p.done)
	for {
		ev := p.src.PollEvent()
		if ev == nil {
			return
		}

		var intent IntentType
		switch ev := ev.(type) {
		case *tcell.EventKey:
			intent = p.keys.Translate(ev)
		case *tcell.EventResize:
			intent = IntentResize
		default:
			continue
		}

		select {
		case p.events <- intent:
		default:
			// Queue full, drop; at one move per tick a backlog this deep is stale anyway
		}
	}
}

// Poll returns the next pending intent, false when nothing is pending.
// Unbound keys come back as IntentNone and count as this tick's input
func (p *Poller) Poll() (IntentType, bool) {
	select {
	case intent := <-p.events:
		return intent, true
	default:
		return IntentNone, false
	}
}
