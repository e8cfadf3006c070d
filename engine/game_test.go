package engine

import (
	"errors"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/lixenwraith/snake/constants"
)

func testConfig(h, w int) Config {
	return Config{
		Bounds: Bounds{Height: h, Width: w},
		Rand:   rand.New(rand.NewPCG(1, 2)),
	}
}

func mustEngine(t *testing.T, cfg Config, state GameState) *GameEngine {
	t.Helper()
	e, err := NewWithState(cfg, state)
	if err != nil {
		t.Fatalf("NewWithState failed: %v", err)
	}
	return e
}

func snake(coords ...[2]int) []Coordinate {
	s := make([]Coordinate, len(coords))
	for i, c := range coords {
		s[i] = Coordinate{Row: c[0], Col: c[1]}
	}
	return s
}

// TestNewInitialState verifies the starting snake, heading, score and food
func TestNewInitialState(t *testing.T) {
	e, err := New(testConfig(20, 40))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	s := e.State()
	want := Coordinate{Row: 10, Col: 10}
	if s.Len() != 1 || s.Head() != want {
		t.Errorf("Expected snake [%v], got %v", want, s.Snake)
	}
	if s.Direction != DirRight {
		t.Errorf("Expected initial direction right, got %v", s.Direction)
	}
	if s.Score != 0 || !s.Alive || s.Cause != CauseNone {
		t.Errorf("Expected score 0 alive, got score=%d alive=%v cause=%v", s.Score, s.Alive, s.Cause)
	}
	if !s.HasFood || !e.Bounds().Interior(s.Food) || s.Food == s.Head() {
		t.Errorf("Expected food on a free interior cell, got %v", s.Food)
	}
}

func TestNewRejectsSmallBounds(t *testing.T) {
	tests := []struct {
		name string
		h, w int
	}{
		{"Short", constants.MinBoardSize - 1, 10},
		{"Narrow", 10, constants.MinBoardSize - 1},
		{"Zero", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(testConfig(tt.h, tt.w))
			if !errors.Is(err, ErrBoundsTooSmall) {
				t.Errorf("Expected ErrBoundsTooSmall, got %v", err)
			}
		})
	}
}

func TestNewMinimumBoard(t *testing.T) {
	e, err := New(testConfig(constants.MinBoardSize, constants.MinBoardSize))
	if err != nil {
		t.Fatalf("New failed on minimum board: %v", err)
	}
	if !e.Bounds().Interior(e.State().Head()) {
		t.Errorf("Expected start inside interior, got %v", e.State().Head())
	}
}

func TestNewWithStateValidation(t *testing.T) {
	tests := []struct {
		name  string
		state GameState
	}{
		{"Empty snake", GameState{Direction: DirRight, Alive: true}},
		{"No direction", GameState{Snake: snake([2]int{5, 5}), Alive: true}},
		{"On border", GameState{Snake: snake([2]int{0, 5}), Direction: DirUp, Alive: true}},
		{"Duplicate", GameState{Snake: snake([2]int{5, 5}, [2]int{5, 5}), Direction: DirRight, Alive: true}},
		{"Food on snake", GameState{Snake: snake([2]int{5, 5}), Direction: DirRight, Food: Coordinate{5, 5}, HasFood: true, Alive: true}},
		{"Negative score", GameState{Snake: snake([2]int{5, 5}), Direction: DirRight, Score: -10, Alive: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewWithState(testConfig(10, 10), tt.state)
			if !errors.Is(err, ErrInvalidState) {
				t.Errorf("Expected ErrInvalidState, got %v", err)
			}
		})
	}
}

func TestNewWithStatePlacesMissingFood(t *testing.T) {
	e := mustEngine(t, testConfig(10, 10), GameState{
		Snake:     snake([2]int{5, 5}, [2]int{5, 4}),
		Direction: DirRight,
		Alive:     true,
	})
	s := e.State()
	if !s.HasFood || s.CellAt(s.Food) != CellFood {
		t.Errorf("Expected food placed on a free cell, got %v (has=%v)", s.Food, s.HasFood)
	}
}

// TestStepMoveWithoutInput covers a plain move on a length-1 snake
func TestStepMoveWithoutInput(t *testing.T) {
	e := mustEngine(t, testConfig(10, 10), GameState{
		Snake:     snake([2]int{5, 5}),
		Direction: DirRight,
		Food:      Coordinate{Row: 2, Col: 2},
		HasFood:   true,
		Alive:     true,
	})

	s := e.Step(DirNone)

	if !slices.Equal(s.Snake, snake([2]int{5, 6})) {
		t.Errorf("Expected snake [[5 6]], got %v", s.Snake)
	}
	if !s.Alive {
		t.Error("Expected snake alive")
	}
	if s.Tick != 1 {
		t.Errorf("Expected tick 1, got %d", s.Tick)
	}
}

func TestStepEachDirection(t *testing.T) {
	tests := []struct {
		dir  Direction
		want Coordinate
	}{
		{DirUp, Coordinate{4, 5}},
		{DirDown, Coordinate{6, 5}},
		{DirLeft, Coordinate{5, 4}},
		{DirRight, Coordinate{5, 6}},
	}

	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			e := mustEngine(t, testConfig(10, 10), GameState{
				Snake:     snake([2]int{5, 5}),
				Direction: tt.dir,
				Food:      Coordinate{1, 1},
				HasFood:   true,
				Alive:     true,
			})
			if got := e.Step(DirNone).Head(); got != tt.want {
				t.Errorf("Expected head %v, got %v", tt.want, got)
			}
		})
	}
}

// TestStepKeepsLength verifies a non-food tick appends a head and drops the tail
func TestStepKeepsLength(t *testing.T) {
	e := mustEngine(t, testConfig(20, 20), GameState{
		Snake:     snake([2]int{5, 5}, [2]int{5, 4}, [2]int{5, 3}),
		Direction: DirRight,
		Food:      Coordinate{15, 15},
		HasFood:   true,
		Alive:     true,
	})

	for i, dir := range []Direction{DirNone, DirDown, DirNone, DirLeft, DirNone} {
		before := e.State().Len()
		s := e.Step(dir)
		if s.Len() != before {
			t.Fatalf("Step %d: expected length %d, got %d", i, before, s.Len())
		}
	}
	want := snake([2]int{7, 4}, [2]int{7, 5}, [2]int{7, 6})
	if got := e.State().Snake; !slices.Equal(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

// TestStepEatsFood covers growth, scoring and food replacement
func TestStepEatsFood(t *testing.T) {
	e := mustEngine(t, testConfig(10, 10), GameState{
		Snake:     snake([2]int{5, 5}, [2]int{5, 4}, [2]int{5, 3}),
		Direction: DirRight,
		Food:      Coordinate{5, 6},
		HasFood:   true,
		Alive:     true,
	})

	s := e.Step(DirNone)

	want := snake([2]int{5, 6}, [2]int{5, 5}, [2]int{5, 4}, [2]int{5, 3})
	if !slices.Equal(s.Snake, want) {
		t.Errorf("Expected %v, got %v", want, s.Snake)
	}
	if s.Score != constants.ScorePerFood {
		t.Errorf("Expected score %d, got %d", constants.ScorePerFood, s.Score)
	}
	if !s.HasFood || s.Food == (Coordinate{5, 6}) {
		t.Errorf("Expected new food, got %v", s.Food)
	}
	if c := s.CellAt(s.Food); c != CellFood {
		t.Errorf("Expected new food on a free cell, cell=%v", c)
	}
}

func TestStepWallCollision(t *testing.T) {
	tests := []struct {
		name string
		head [2]int
		dir  Direction
	}{
		{"Top", [2]int{1, 5}, DirUp},
		{"Bottom", [2]int{8, 5}, DirDown},
		{"Left", [2]int{5, 1}, DirLeft},
		{"Right", [2]int{5, 8}, DirRight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := mustEngine(t, testConfig(10, 10), GameState{
				Snake:     snake(tt.head),
				Direction: tt.dir,
				Food:      Coordinate{4, 4},
				HasFood:   true,
				Alive:     true,
			})
			s := e.Step(DirNone)
			if s.Alive {
				t.Fatal("Expected game over on wall hit")
			}
			if s.Cause != CauseWall {
				t.Errorf("Expected cause wall, got %v", s.Cause)
			}
			if s.Score != 0 {
				t.Errorf("Expected score unchanged, got %d", s.Score)
			}
		})
	}
}

// TestStepSelfCollision turns a looped body into its own second segment
func TestStepSelfCollision(t *testing.T) {
	e := mustEngine(t, testConfig(10, 10), GameState{
		Snake:     snake([2]int{5, 5}, [2]int{5, 4}, [2]int{4, 4}, [2]int{4, 5}),
		Direction: DirDown,
		Food:      Coordinate{1, 1},
		HasFood:   true,
		Alive:     true,
	})

	s := e.Step(DirLeft)

	if s.Alive {
		t.Fatal("Expected game over on self collision")
	}
	if s.Cause != CauseSelf {
		t.Errorf("Expected cause self, got %v", s.Cause)
	}
}

// TestStepIntoVacatedTail moves the head onto the cell the tail leaves this tick
func TestStepIntoVacatedTail(t *testing.T) {
	e := mustEngine(t, testConfig(10, 10), GameState{
		Snake:     snake([2]int{5, 5}, [2]int{5, 4}, [2]int{4, 4}, [2]int{4, 5}),
		Direction: DirRight,
		Food:      Coordinate{1, 1},
		HasFood:   true,
		Alive:     true,
	})

	s := e.Step(DirUp)

	if !s.Alive {
		t.Fatalf("Expected moving into the tail cell to be legal, cause=%v", s.Cause)
	}
	want := snake([2]int{4, 5}, [2]int{5, 5}, [2]int{5, 4}, [2]int{4, 4})
	if !slices.Equal(s.Snake, want) {
		t.Errorf("Expected %v, got %v", want, s.Snake)
	}

	// Tail clear and head set hit the same cell; it must end up occupied
	if !e.occupied.Has(Coordinate{4, 5}) {
		t.Error("Expected head cell to stay occupied")
	}
	if e.occupied.Count() != s.Len() {
		t.Errorf("Expected %d occupied cells, got %d", s.Len(), e.occupied.Count())
	}
}

func TestStepRejectsReversal(t *testing.T) {
	tests := []struct {
		current, input Direction
	}{
		{DirRight, DirLeft},
		{DirLeft, DirRight},
		{DirUp, DirDown},
		{DirDown, DirUp},
	}

	for _, tt := range tests {
		t.Run(tt.current.String(), func(t *testing.T) {
			e := mustEngine(t, testConfig(10, 10), GameState{
				Snake:     snake([2]int{5, 5}),
				Direction: tt.current,
				Food:      Coordinate{1, 1},
				HasFood:   true,
				Alive:     true,
			})
			s := e.Step(tt.input)
			if s.Direction != tt.current {
				t.Errorf("Expected direction to stay %v, got %v", tt.current, s.Direction)
			}
		})
	}
}

func TestStepIgnoresInvalidInput(t *testing.T) {
	e := mustEngine(t, testConfig(10, 10), GameState{
		Snake:     snake([2]int{5, 5}),
		Direction: DirUp,
		Food:      Coordinate{1, 1},
		HasFood:   true,
		Alive:     true,
	})

	s := e.Step(Direction(42))
	if s.Direction != DirUp || s.Head() != (Coordinate{4, 5}) {
		t.Errorf("Expected invalid input ignored, got dir=%v head=%v", s.Direction, s.Head())
	}
}

func TestStepAfterGameOverIsNoop(t *testing.T) {
	e := mustEngine(t, testConfig(10, 10), GameState{
		Snake:     snake([2]int{1, 5}),
		Direction: DirUp,
		Food:      Coordinate{4, 4},
		HasFood:   true,
		Alive:     true,
	})

	final := e.Step(DirNone)
	again := e.Step(DirRight)

	if again.Tick != final.Tick || again.Direction != final.Direction || !slices.Equal(again.Snake, final.Snake) {
		t.Errorf("Expected no mutation after game over, before=%+v after=%+v", final, again)
	}
}

// TestStepFillsBoard plays the last food on a board with one free cell
func TestStepFillsBoard(t *testing.T) {
	// 3x3 interior, snake covers 8 cells, food on the 9th
	e := mustEngine(t, testConfig(5, 5), GameState{
		Snake: snake(
			[2]int{1, 2}, [2]int{1, 3}, [2]int{2, 3}, [2]int{3, 3},
			[2]int{3, 2}, [2]int{3, 1}, [2]int{2, 1}, [2]int{2, 2},
		),
		Direction: DirLeft,
		Food:      Coordinate{1, 1},
		HasFood:   true,
		Alive:     true,
	})

	s := e.Step(DirNone)

	if s.Alive {
		t.Fatal("Expected game to end once the board is full")
	}
	if s.Cause != CauseBoardFull {
		t.Errorf("Expected cause board_full, got %v", s.Cause)
	}
	if s.HasFood {
		t.Error("Expected no food on a full board")
	}
	if s.Score != constants.ScorePerFood || s.Len() != 9 {
		t.Errorf("Expected final bite counted, got score=%d len=%d", s.Score, s.Len())
	}
}

// TestRandomPlayInvariants drives a seeded random walk and checks every tick
func TestRandomPlayInvariants(t *testing.T) {
	e, err := New(Config{Bounds: Bounds{Height: 12, Width: 16}, Seed: 7})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	rng := rand.New(rand.NewPCG(3, 4))

	for e.Alive() {
		before := e.State()
		input := Direction(rng.IntN(5))
		s := e.Step(input)

		if s.Direction == before.Direction.Opposite() {
			t.Fatalf("Tick %d: reversed from %v to %v", s.Tick, before.Direction, s.Direction)
		}
		if !s.Alive {
			break
		}

		ate := before.HasFood && s.Head() == before.Food
		switch {
		case ate && (s.Len() != before.Len()+1 || s.Score != before.Score+constants.ScorePerFood):
			t.Fatalf("Tick %d: bad growth len %d->%d score %d->%d", s.Tick, before.Len(), s.Len(), before.Score, s.Score)
		case !ate && (s.Len() != before.Len() || s.Score != before.Score):
			t.Fatalf("Tick %d: length or score changed without food", s.Tick)
		}

		seen := make(map[Coordinate]bool, s.Len())
		for _, seg := range s.Snake {
			if seen[seg] {
				t.Fatalf("Tick %d: duplicate segment %v", s.Tick, seg)
			}
			seen[seg] = true
		}
		if s.HasFood && seen[s.Food] {
			t.Fatalf("Tick %d: food %v on snake", s.Tick, s.Food)
		}
		if s.Tick > 10000 {
			t.Fatal("Random walk did not terminate")
		}
	}
}

func TestStateIsSnapshot(t *testing.T) {
	e := mustEngine(t, testConfig(10, 10), GameState{
		Snake:     snake([2]int{5, 5}),
		Direction: DirRight,
		Food:      Coordinate{1, 1},
		HasFood:   true,
		Alive:     true,
	})

	s := e.State()
	s.Snake[0] = Coordinate{1, 1}

	if e.State().Head() != (Coordinate{5, 5}) {
		t.Error("Expected engine state unaffected by snapshot mutation")
	}
}
