package model

import (
	"math/rand"

	"github.com/gdamore/tcell/v2"
)

// ScreenRenderer draws frames on a full-screen tcell terminal. The status line
// takes the top row and the grid starts below it.
type ScreenRenderer struct {
	screen tcell.Screen
	rng    *rand.Rand
	color  bool
}

// NewScreenRenderer wraps an initialized screen
func NewScreenRenderer(screen tcell.Screen, rng *rand.Rand, color bool) *ScreenRenderer {
	return &ScreenRenderer{screen: screen, rng: rng, color: color}
}

// Clear blanks the screen
func (r *ScreenRenderer) Clear() error {
	r.screen.Clear()
	return nil
}

// Status draws a line of text on the top row
func (r *ScreenRenderer) Status(line string) error {
	width, _ := r.screen.Size()
	col := 0
	for _, ch := range line {
		if col >= width {
			break
		}
		r.screen.SetContent(col, 0, ch, nil, tcell.StyleDefault)
		col++
	}
	for ; col < width; col++ {
		r.screen.SetContent(col, 0, ' ', nil, tcell.StyleDefault)
	}
	return nil
}

// Display draws the grid below the status line and flushes the screen
func (r *ScreenRenderer) Display(g *Grid) error {
	for row := range g.size {
		for col := range g.size {
			glyph, style := r.cellStyle(g.cells[row][col])
			r.screen.SetContent(col*2, row+1, glyph, nil, style)
			r.screen.SetContent(col*2+1, row+1, ' ', nil, tcell.StyleDefault)
		}
	}
	r.screen.Show()
	return nil
}

func (r *ScreenRenderer) cellStyle(cell Cell) (rune, tcell.Style) {
	glyph, style := deadGlyph, tcell.StyleDefault
	if cell == Alive {
		glyph = aliveGlyph
	}
	if !r.color {
		return glyph, style
	}
	if cell == Alive {
		return glyph, style.Foreground(tcell.PaletteColor(r.rng.Intn(numColors)))
	}
	return glyph, style.Foreground(tcell.ColorDarkGray)
}

// Close restores the terminal
func (r *ScreenRenderer) Close() {
	r.screen.Fini()
}
