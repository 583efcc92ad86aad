package model

import (
	"math/rand"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life-torus/utils"
)

// Seed creates a grid with liveCells random picks marked alive. Picks are made
// with replacement, so a repeated coordinate just stays alive.
func Seed(size, liveCells int, rng *rand.Rand) (*Grid, error) {
	if liveCells < 0 {
		return nil, errors.Wrapf(utils.ErrInvalidConfig, "[Seed] live cell count must not be negative, got %d", liveCells)
	}
	g, err := NewGrid(size)
	if err != nil {
		return nil, errors.Wrap(err, "[Seed] failed to create grid")
	}
	g.InjectRandomLife(liveCells, rng)
	return g, nil
}

// InjectRandomLife marks count uniformly random cells alive
func (g *Grid) InjectRandomLife(count int, rng *rand.Rand) {
	for range count {
		g.Set(rng.Intn(g.size), rng.Intn(g.size), Alive)
	}
}

// AddBlock adds a 2x2 still life with its top-left corner at (row, col)
func (g *Grid) AddBlock(row, col int) {
	g.stamp(row, col, [][]bool{
		{true, true},
		{true, true},
	})
}

// AddBlinker adds a horizontal three cell oscillator starting at (row, col)
func (g *Grid) AddBlinker(row, col int) {
	g.stamp(row, col, [][]bool{
		{true, true, true},
	})
}

// AddGlider adds a glider heading down and right with its bounding box at (row, col)
func (g *Grid) AddGlider(row, col int) {
	g.stamp(row, col, [][]bool{
		{false, true, false},
		{false, false, true},
		{true, true, true},
	})
}

// stamp writes the live cells of pattern, wrapping around the edges
func (g *Grid) stamp(row, col int, pattern [][]bool) {
	for dr, line := range pattern {
		for dc, alive := range line {
			if alive {
				g.cells[wrap(row+dr, g.size)][wrap(col+dc, g.size)] = Alive
			}
		}
	}
}
