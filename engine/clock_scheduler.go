package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/snake/core"
)

// ClockScheduler emits ticks on a fixed interval.
// It only signals; the consumer owns the GameEngine and calls Step on its own goroutine
type ClockScheduler struct {
	clock        TimeProvider
	tickInterval time.Duration

	mu               sync.Mutex
	nextTickDeadline time.Time // Next tick deadline for drift correction

	tickCount atomic.Uint64
	ticks     chan uint64

	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool
}

// NewClockScheduler creates a scheduler and returns its tick channel.
// The channel holds at most one pending tick; a slow consumer sees ticks coalesce
func NewClockScheduler(clock TimeProvider, tickInterval time.Duration) (*ClockScheduler, <-chan uint64) {
	cs := &ClockScheduler{
		clock:        clock,
		tickInterval: tickInterval,
		ticks:        make(chan uint64, 1),
		stopChan:     make(chan struct{}),
	}
	return cs, cs.ticks
}

// Start begins the scheduler loop; the first tick is due one interval from now
func (cs *ClockScheduler) Start() {
	if cs.running.CompareAndSwap(false, true) {
		cs.mu.Lock()
		cs.nextTickDeadline = cs.clock.Now().Add(cs.tickInterval)
		cs.mu.Unlock()

		cs.wg.Add(1)
		core.Go(cs.schedulerLoop)
	}
}

// Stop halts the scheduler loop and waits for it to exit
func (cs *ClockScheduler) Stop() {
	cs.stopOnce.Do(func() {
		close(cs.stopChan)
		if cs.running.CompareAndSwap(true, false) {
			cs.wg.Wait()
		}
	})
}

// TickCount returns the number of ticks emitted, including coalesced ones
func (cs *ClockScheduler) TickCount() uint64 {
	return cs.tickCount.Load()
}

func (cs *ClockScheduler) schedulerLoop() {
	defer cs.wg.Done()

	for {
		cs.mu.Lock()
		deadline := cs.nextTickDeadline
		cs.mu.Unlock()

		if wait := deadline.Sub(cs.clock.Now()); wait > 0 {
			select {
			case <-cs.clock.After(wait):
			case <-cs.stopChan:
				return
			}
		}

		select {
		case <-cs.stopChan:
			return
		default:
		}

		n := cs.tickCount.Add(1)
		select {
		case cs.ticks <- n:
		default:
			// Consumer still holds the previous tick
		}

		cs.mu.Lock()
		cs.nextTickDeadline = cs.nextTickDeadline.Add(cs.tickInterval)
		now := cs.clock.Now()
		if now.Sub(cs.nextTickDeadline) > cs.tickInterval*2 {
			cs.nextTickDeadline = now.Add(cs.tickInterval)
		}
		cs.mu.Unlock()
	}
}
