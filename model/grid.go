package model

import (
	"crypto/md5"
	"fmt"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life-torus/utils"
)

// Cell is the state of a single grid position
type Cell uint8

const (
	Dead Cell = iota
	Alive
)

// String returns the cell state name
func (c Cell) String() string {
	if c == Alive {
		return "alive"
	}
	return "dead"
}

// Coord is a (row, column) position on the grid
type Coord struct {
	Row int
	Col int
}

// Grid is a square toroidal board. A grid is filled with Set while it is being
// built and treated as read-only once a census or renderer receives it.
type Grid struct {
	size  int
	cells [][]Cell
}

// NewGrid creates an all-dead grid with the given side length
func NewGrid(size int) (*Grid, error) {
	if size <= 0 {
		return nil, errors.Wrapf(utils.ErrInvalidConfig, "[NewGrid] grid size must be positive, got %d", size)
	}
	return newGrid(size), nil
}

func newGrid(size int) *Grid {
	cells := make([][]Cell, size)
	for i := range cells {
		cells[i] = make([]Cell, size)
	}
	return &Grid{
		size:  size,
		cells: cells,
	}
}

// Size returns the side length of the grid
func (g *Grid) Size() int {
	return g.size
}

// Reset resizes the grid and marks every cell dead
func (g *Grid) Reset(size int) {
	if len(g.cells) != size {
		g.cells = make([][]Cell, size)
	}
	for i := range g.cells {
		if len(g.cells[i]) != size {
			g.cells[i] = make([]Cell, size)
			continue
		}
		clear(g.cells[i])
	}
	g.size = size
}

// Clear marks every cell dead
func (g *Grid) Clear() {
	for row := range g.cells {
		clear(g.cells[row])
	}
}

// Set writes a cell. Out of range coordinates are ignored.
func (g *Grid) Set(row, col int, cell Cell) {
	if row >= 0 && row < g.size && col >= 0 && col < g.size {
		g.cells[row][col] = cell
	}
}

// Get returns the state of a cell. Out of range coordinates read as dead.
func (g *Grid) Get(row, col int) Cell {
	if row < 0 || row >= g.size || col < 0 || col >= g.size {
		return Dead
	}
	return g.cells[row][col]
}

// IsAlive reports whether the cell at (row, col) is alive
func (g *Grid) IsAlive(row, col int) bool {
	return g.Get(row, col) == Alive
}

// Clone returns an independent copy of the grid
func (g *Grid) Clone() *Grid {
	c := newGrid(g.size)
	for row := range g.cells {
		copy(c.cells[row], g.cells[row])
	}
	return c
}

// Equal reports whether both grids have the same size and cell states
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.size != other.size {
		return false
	}
	for row := range g.cells {
		for col := range g.cells[row] {
			if g.cells[row][col] != other.cells[row][col] {
				return false
			}
		}
	}
	return true
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for row := range g.cells {
		for _, cell := range g.cells[row] {
			if cell == Alive {
				count++
			}
		}
	}
	return
}

// AliveCells returns the coordinates of living cells in row-major order
func (g *Grid) AliveCells() []Coord {
	var alive []Coord
	for row := range g.cells {
		for col, cell := range g.cells[row] {
			if cell == Alive {
				alive = append(alive, Coord{Row: row, Col: col})
			}
		}
	}
	return alive
}

// Hash returns an MD5 digest of the grid state
func (g *Grid) Hash() string {
	h := md5.New()
	for row := range g.cells {
		buf := make([]byte, len(g.cells[row]))
		for col, cell := range g.cells[row] {
			buf[col] = byte(cell)
		}
		h.Write(buf)
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}
