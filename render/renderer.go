package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/snake/constants"
	"github.com/lixenwraith/snake/engine"
)

// Renderer draws game snapshots on a tcell screen.
// The play window sits constants.ScreenInset cells in from every edge; row 0 is the status line
type Renderer struct {
	screen tcell.Screen
	styles Styles
}

// NewRenderer creates a renderer over an initialized screen
func NewRenderer(screen tcell.Screen, styles Styles) *Renderer {
	return &Renderer{
		screen: screen,
		styles: styles,
	}
}

// PlayBounds returns the play window size, border included, for the current screen
func (r *Renderer) PlayBounds() engine.Bounds {
	w, h := r.screen.Size()
	return engine.Bounds{
		Height: h - 2*constants.ScreenInset,
		Width:  w - 2*constants.ScreenInset,
	}
}

// Resize resynchronizes the physical screen after a terminal resize
func (r *Renderer) Resize() {
	r.screen.Sync()
}

// Draw renders one frame: status line, border, food and snake, then shows it
func (r *Renderer) Draw(s engine.GameState, b engine.Bounds) {
	r.screen.SetStyle(r.styles.Base)
	r.screen.Clear()

	r.drawStatus(s)
	r.drawBorder(b)

	if s.HasFood {
		r.setBoardCell(s.Food, constants.FoodGlyph, r.styles.Food)
	}
	// Tail first so the head wins when a collision tick duplicates a cell
	for i := len(s.Snake) - 1; i >= 0; i-- {
		style := r.styles.Snake
		if i == 0 {
			style = r.styles.Head
		}
		r.setBoardCell(s.Snake[i], constants.SnakeGlyph, style)
	}

	r.screen.Show()
}

// DrawGameOver overlays the final score centered on the play window
func (r *Renderer) DrawGameOver(s engine.GameState, b engine.Bounds) {
	msg := fmt.Sprintf(constants.GameOverText, s.Score)
	row := b.Height / 2
	col := (b.Width - len(msg)) / 2
	if col < 0 {
		col = 0
	}
	r.drawText(col+constants.ScreenInset, row+constants.ScreenInset, msg, r.styles.Text.Bold(true))
	r.screen.Show()
}

func (r *Renderer) drawStatus(s engine.GameState) {
	text := constants.TitleText
	if s.Score > 0 {
		text = fmt.Sprintf(constants.ScoreFormat, s.Score)
	}
	r.drawText(0, 0, text, r.styles.Text)
}

func (r *Renderer) drawBorder(b engine.Bounds) {
	last := engine.Coordinate{Row: b.Height - 1, Col: b.Width - 1}
	for col := 1; col < last.Col; col++ {
		r.setBoardCell(engine.Coordinate{Row: 0, Col: col}, tcell.RuneHLine, r.styles.Border)
		r.setBoardCell(engine.Coordinate{Row: last.Row, Col: col}, tcell.RuneHLine, r.styles.Border)
	}
	for row := 1; row < last.Row; row++ {
		r.setBoardCell(engine.Coordinate{Row: row, Col: 0}, tcell.RuneVLine, r.styles.Border)
		r.setBoardCell(engine.Coordinate{Row: row, Col: last.Col}, tcell.RuneVLine, r.styles.Border)
	}
	r.setBoardCell(engine.Coordinate{Row: 0, Col: 0}, tcell.RuneULCorner, r.styles.Border)
	r.setBoardCell(engine.Coordinate{Row: 0, Col: last.Col}, tcell.RuneURCorner, r.styles.Border)
	r.setBoardCell(engine.Coordinate{Row: last.Row, Col: 0}, tcell.RuneLLCorner, r.styles.Border)
	r.setBoardCell(last, tcell.RuneLRCorner, r.styles.Border)
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	for _, ch := range text {
		r.setCell(x, y, ch, style)
		x++
	}
}

func (r *Renderer) setBoardCell(c engine.Coordinate, ch rune, style tcell.Style) {
	r.setCell(c.Col+constants.ScreenInset, c.Row+constants.ScreenInset, ch, style)
}

// setCell clips against the live screen size; a shrinking terminal must not fault a draw
func (r *Renderer) setCell(x, y int, ch rune, style tcell.Style) {
	w, h := r.screen.Size()
	if x < 0 || y < 0 || x >= w || y >= h {
		return
	}
	r.screen.SetContent(x, y, ch, nil, style)
}
