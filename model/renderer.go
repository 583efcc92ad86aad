package model

import (
	"io"
	"math/rand"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

const (
	aliveGlyph = 'o'
	deadGlyph  = '.'

	ansiClear     = "\x1b[H\x1b[2J"
	ansiReset     = "\x1b[0m"
	ansiDeadColor = "\x1b[90m"

	// numColors is the size of the basic terminal palette
	numColors = 16
)

// Renderer draws grids and status lines
type Renderer interface {
	Clear() error
	Status(line string) error
	Display(g *Grid) error
}

// TerminalRenderer writes frames to a stream using ANSI escape sequences
type TerminalRenderer struct {
	out   io.Writer
	rng   *rand.Rand
	color bool
}

// NewTerminalRenderer creates a renderer writing to out. rng picks the
// decorative color of each live cell when color is on.
func NewTerminalRenderer(out io.Writer, rng *rand.Rand, color bool) *TerminalRenderer {
	return &TerminalRenderer{out: out, rng: rng, color: color}
}

// Clear clears the terminal screen and moves the cursor home
func (r *TerminalRenderer) Clear() error {
	if _, err := io.WriteString(r.out, ansiClear); err != nil {
		return errors.Wrap(err, "[TerminalRenderer.Clear] failed to clear screen")
	}
	return nil
}

// Status writes a single line of text
func (r *TerminalRenderer) Status(line string) error {
	if _, err := io.WriteString(r.out, line+"\n"); err != nil {
		return errors.Wrap(err, "[TerminalRenderer.Status] failed to write status")
	}
	return nil
}

// Display renders the grid one row per line, each cell as a glyph and a space
func (r *TerminalRenderer) Display(g *Grid) error {
	var sb strings.Builder
	for row := range g.size {
		for col := range g.size {
			r.writeCell(&sb, g.cells[row][col])
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	if _, err := io.WriteString(r.out, sb.String()); err != nil {
		return errors.Wrap(err, "[TerminalRenderer.Display] failed to write grid")
	}
	return nil
}

func (r *TerminalRenderer) writeCell(sb *strings.Builder, cell Cell) {
	switch {
	case !r.color && cell == Alive:
		sb.WriteRune(aliveGlyph)
	case !r.color:
		sb.WriteRune(deadGlyph)
	case cell == Alive:
		sb.WriteString(ansiForeground(r.rng.Intn(numColors)))
		sb.WriteRune(aliveGlyph)
		sb.WriteString(ansiReset)
	default:
		sb.WriteString(ansiDeadColor)
		sb.WriteRune(deadGlyph)
		sb.WriteString(ansiReset)
	}
}

// ansiForeground returns the escape sequence for palette color n in [0, 16)
func ansiForeground(n int) string {
	code := 30 + n
	if n >= 8 {
		code = 90 + n - 8
	}
	return "\x1b[" + strconv.Itoa(code) + "m"
}
