package main

import (
	"log/slog"
	"time"

	"github.com/lixenwraith/snake/engine"
	"github.com/lixenwraith/snake/input"
)

const lingerPollInterval = 20 * time.Millisecond

// intentSource is the non-blocking input side of the loop
type intentSource interface {
	Poll() (input.IntentType, bool)
}

// soundPlayer receives game event cues; a nil player keeps the game silent
type soundPlayer interface {
	PlayEat()
	PlayCrash()
}

// frameDrawer draws snapshots; render.Renderer in production
type frameDrawer interface {
	Draw(s engine.GameState, b engine.Bounds)
	DrawGameOver(s engine.GameState, b engine.Bounds)
	Resize()
}

// session drives one game: poll input, step, draw, once per tick
type session struct {
	engine *engine.GameEngine
	drawer frameDrawer
	input  intentSource
	sound  soundPlayer
	log    *slog.Logger
}

// run consumes ticks until the game ends, the player quits, or ticks closes.
// quit reports whether the player asked to leave
func (s *session) run(ticks <-chan uint64) (final engine.GameState, quit bool) {
	state := s.engine.State()
	bounds := s.engine.Bounds()
	s.drawer.Draw(state, bounds)

	for range ticks {
		dir, leave := s.readInput()
		if leave {
			s.log.Info("player quit", "score", state.Score, "ticks", state.Tick)
			return state, true
		}

		prevScore := state.Score
		state = s.engine.Step(dir)

		if state.Score > prevScore {
			s.log.Debug("food eaten", "score", state.Score, "length", state.Len())
			if s.sound != nil {
				s.sound.PlayEat()
			}
		}

		s.drawer.Draw(state, bounds)

		if !state.Alive {
			s.log.Info("game over", "cause", state.Cause.String(), "score", state.Score, "ticks", state.Tick)
			if s.sound != nil {
				s.sound.PlayCrash()
			}
			s.drawer.DrawGameOver(state, bounds)
			return state, false
		}
	}
	return state, false
}

// readInput takes at most one steering intent for this tick.
// Resize events are handled in place and do not use up the tick's input
func (s *session) readInput() (engine.Direction, bool) {
	for {
		intent, ok := s.input.Poll()
		if !ok {
			return engine.DirNone, false
		}
		switch intent {
		case input.IntentQuit:
			return engine.DirNone, true
		case input.IntentResize:
			s.drawer.Resize()
			continue
		}
		return intent.Direction(), false
	}
}

// linger keeps the game over screen up until done fires or the player quits
func linger(src intentSource, done <-chan time.Time) {
	poll := time.NewTicker(lingerPollInterval)
	defer poll.Stop()

	for {
		select {
		case <-done:
			return
		case <-poll.C:
			if intent, ok := src.Poll(); ok && intent == input.IntentQuit {
				return
			}
		}
	}
}
