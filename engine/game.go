package engine

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/lixenwraith/snake/constants"
)

// Config configures a GameEngine
type Config struct {
	Bounds Bounds

	// Rand drives food placement; when nil a PCG source is seeded from Seed
	Rand *rand.Rand
	Seed uint64

	// FoodAttempts bounds random food probes before the free-cell scan.
	// Zero selects constants.FoodSampleAttempts, negative always scans
	FoodAttempts int
}

// GameEngine owns one game's state and applies the movement rules tick by tick.
// It never blocks and holds no timers; callers drive Step at their own rate
type GameEngine struct {
	bounds   Bounds
	state    GameState
	occupied *OccupancyGrid
	food     *FoodPlacer
}

// New creates an engine with a single-segment snake heading right
func New(cfg Config) (*GameEngine, error) {
	e, err := newEngine(cfg)
	if err != nil {
		return nil, err
	}

	start := Coordinate{Row: cfg.Bounds.Height / 2, Col: cfg.Bounds.Width / 4}
	e.state = GameState{
		Snake:     []Coordinate{start},
		Direction: DirRight,
		Alive:     true,
	}
	e.occupied.Set(start)

	food, err := e.food.Place(e.occupied)
	if err != nil {
		return nil, fmt.Errorf("initial food: %w", err)
	}
	e.state.Food = food
	e.state.HasFood = true

	return e, nil
}

// NewWithState creates an engine that continues from an explicit state.
// The state is copied and checked against the board invariants
func NewWithState(cfg Config, state GameState) (*GameEngine, error) {
	e, err := newEngine(cfg)
	if err != nil {
		return nil, err
	}

	if err := e.load(state); err != nil {
		return nil, err
	}
	return e, nil
}

func newEngine(cfg Config) (*GameEngine, error) {
	b := cfg.Bounds
	if b.Height < constants.MinBoardSize || b.Width < constants.MinBoardSize {
		return nil, fmt.Errorf("%w: %dx%d, minimum %d", ErrBoundsTooSmall, b.Height, b.Width, constants.MinBoardSize)
	}

	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15))
	}

	attempts := cfg.FoodAttempts
	if attempts == 0 {
		attempts = constants.FoodSampleAttempts
	}

	return &GameEngine{
		bounds:   b,
		occupied: NewOccupancyGrid(b),
		food:     NewFoodPlacer(b, rng, attempts),
	}, nil
}

func (e *GameEngine) load(state GameState) error {
	if len(state.Snake) == 0 {
		return fmt.Errorf("%w: empty snake", ErrInvalidState)
	}
	if !state.Direction.Valid() {
		return fmt.Errorf("%w: direction %v", ErrInvalidState, state.Direction)
	}
	if state.Score < 0 {
		return fmt.Errorf("%w: negative score %d", ErrInvalidState, state.Score)
	}

	s := state.Clone()
	if !s.Alive {
		// Finished games are kept as-is; no rule applies to them anymore
		e.state = s
		return nil
	}

	for _, seg := range s.Snake {
		if !e.bounds.Interior(seg) {
			return fmt.Errorf("%w: segment %v outside interior", ErrInvalidState, seg)
		}
		if e.occupied.Has(seg) {
			return fmt.Errorf("%w: duplicate segment %v", ErrInvalidState, seg)
		}
		e.occupied.Set(seg)
	}

	if s.HasFood {
		if !e.bounds.Interior(s.Food) || e.occupied.Has(s.Food) {
			return fmt.Errorf("%w: food %v not on a free interior cell", ErrInvalidState, s.Food)
		}
	} else {
		food, err := e.food.Place(e.occupied)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidState, err)
		}
		s.Food = food
		s.HasFood = true
	}

	s.Cause = CauseNone
	e.state = s
	return nil
}

// Step advances the game by one tick.
// input is applied before movement unless it is DirNone, invalid, or the reverse
// of the current heading. After the game ends Step returns the final state unchanged
func (e *GameEngine) Step(input Direction) GameState {
	s := &e.state
	if !s.Alive {
		return e.State()
	}
	s.Tick++

	if input.Valid() && input != s.Direction.Opposite() {
		s.Direction = input
	}

	head := s.Head().Add(s.Direction)
	tail := s.Snake[len(s.Snake)-1]
	s.Snake = slices.Insert(s.Snake, 0, head)

	if !e.bounds.Interior(head) {
		e.end(CauseWall)
		return e.State()
	}

	// The tail cell is vacated this tick unless food is eaten, and food never
	// sits on the snake, so entering the current tail is a legal move
	if e.occupied.Has(head) && head != tail {
		e.end(CauseSelf)
		return e.State()
	}

	if s.HasFood && head == s.Food {
		s.Score += constants.ScorePerFood
		e.occupied.Set(head)

		food, err := e.food.Place(e.occupied)
		if errors.Is(err, ErrBoardFull) {
			s.HasFood = false
			e.end(CauseBoardFull)
			return e.State()
		}
		s.Food = food
		return e.State()
	}

	s.Snake = s.Snake[:len(s.Snake)-1]
	e.occupied.Clear(tail)
	e.occupied.Set(head)
	return e.State()
}

func (e *GameEngine) end(cause Cause) {
	e.state.Alive = false
	e.state.Cause = cause
}

// State returns a snapshot the caller may keep or modify freely
func (e *GameEngine) State() GameState {
	return e.state.Clone()
}

// Score returns the current, or final, score
func (e *GameEngine) Score() int {
	return e.state.Score
}

// Alive reports whether the game is still running
func (e *GameEngine) Alive() bool {
	return e.state.Alive
}

// Bounds returns the play area the engine was created with
func (e *GameEngine) Bounds() Bounds {
	return e.bounds
}
