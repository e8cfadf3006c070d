package render

import "github.com/gdamore/tcell/v2"

// Palette follows the classic curses pairs: green snake, red food, yellow text
var (
	RgbSnake  = tcell.ColorGreen
	RgbHead   = tcell.NewRGBColor(50, 255, 50) // Bright green
	RgbFood   = tcell.ColorRed
	RgbText   = tcell.ColorYellow
	RgbBorder = tcell.NewRGBColor(180, 180, 180) // Brighter gray
	RgbBg     = tcell.ColorBlack
)

// Styles holds the resolved style per drawn element
type Styles struct {
	Base   tcell.Style
	Snake  tcell.Style
	Head   tcell.Style
	Food   tcell.Style
	Text   tcell.Style
	Border tcell.Style
}

// DefaultStyles returns the colored style set
func DefaultStyles() Styles {
	base := tcell.StyleDefault.Background(RgbBg)
	return Styles{
		Base:   base,
		Snake:  base.Foreground(RgbSnake),
		Head:   base.Foreground(RgbHead).Bold(true),
		Food:   base.Foreground(RgbFood),
		Text:   base.Foreground(RgbText),
		Border: base.Foreground(RgbBorder),
	}
}

// MonoStyles returns attribute-only styles for terminals without color
func MonoStyles() Styles {
	base := tcell.StyleDefault
	return Styles{
		Base:   base,
		Snake:  base,
		Head:   base.Bold(true),
		Food:   base.Reverse(true),
		Text:   base,
		Border: base.Dim(true),
	}
}
