package constants

// Glyphs
const (
	SnakeGlyph = '#'
	FoodGlyph  = 'O'
)

// Status line text
const (
	TitleText    = "Snake Game - Use arrow keys to move. Press 'q' to quit"
	ScoreFormat  = "Score: %d - Use arrow keys to move. Press 'q' to quit"
	GameOverText = "Game Over! Your score: %d"
)

// Screen layout: the play window is inset this many cells from every screen edge
const (
	ScreenInset = 1
)
