package model

import (
	"testing"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life-torus/utils"
)

// gridOf builds a size x size grid with the given cells alive
func gridOf(t *testing.T, size int, alive ...Coord) *Grid {
	t.Helper()
	g, err := NewGrid(size)
	if err != nil {
		t.Fatalf("NewGrid(%d): %v", size, err)
	}
	for _, c := range alive {
		g.Set(c.Row, c.Col, Alive)
	}
	return g
}

func TestNewGridRejectsNonPositiveSize(t *testing.T) {
	t.Parallel()

	for _, size := range []int{0, -1, -50} {
		g, err := NewGrid(size)
		if g != nil {
			t.Errorf("NewGrid(%d) returned a grid", size)
		}
		if !errors.Is(err, utils.ErrInvalidConfig) {
			t.Errorf("NewGrid(%d) error = %v, want ErrInvalidConfig", size, err)
		}
	}
}

func TestNewGridIsAllDead(t *testing.T) {
	t.Parallel()

	g := gridOf(t, 7)
	if g.Size() != 7 {
		t.Fatalf("Size() = %d, want 7", g.Size())
	}
	if n := g.CountLivingCells(); n != 0 {
		t.Fatalf("CountLivingCells() = %d, want 0", n)
	}
}

func TestGetSetOutOfRange(t *testing.T) {
	t.Parallel()

	g := gridOf(t, 3)
	g.Set(-1, 0, Alive)
	g.Set(0, 3, Alive)
	if n := g.CountLivingCells(); n != 0 {
		t.Fatalf("out of range Set changed the grid: %d living cells", n)
	}
	if g.Get(5, 5) != Dead {
		t.Fatal("out of range Get should read dead")
	}

	g.Set(1, 2, Alive)
	if !g.IsAlive(1, 2) || g.Get(1, 2) != Alive {
		t.Fatal("Set(1, 2, Alive) was not stored")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	t.Parallel()

	g := gridOf(t, 4, Coord{1, 1})
	c := g.Clone()
	if !g.Equal(c) {
		t.Fatal("clone differs from original")
	}

	c.Set(2, 2, Alive)
	if g.IsAlive(2, 2) {
		t.Fatal("writing the clone changed the original")
	}
	if g.Equal(c) {
		t.Fatal("Equal ignored a differing cell")
	}
}

func TestEqualSizeMismatch(t *testing.T) {
	t.Parallel()

	if gridOf(t, 3).Equal(gridOf(t, 4)) {
		t.Fatal("grids of different sizes compared equal")
	}
	if gridOf(t, 3).Equal(nil) {
		t.Fatal("grid compared equal to nil")
	}
}

func TestAliveCellsAndHash(t *testing.T) {
	t.Parallel()

	g := gridOf(t, 5, Coord{3, 0}, Coord{0, 4}, Coord{0, 1})
	want := []Coord{{0, 1}, {0, 4}, {3, 0}}
	got := g.AliveCells()
	if len(got) != len(want) {
		t.Fatalf("AliveCells() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("AliveCells() = %v, want %v", got, want)
		}
	}

	same := gridOf(t, 5, Coord{0, 1}, Coord{0, 4}, Coord{3, 0})
	if g.Hash() != same.Hash() {
		t.Fatal("equal grids hashed differently")
	}
	same.Set(4, 4, Alive)
	if g.Hash() == same.Hash() {
		t.Fatal("different grids hashed the same")
	}
}

func TestCellString(t *testing.T) {
	t.Parallel()

	if Alive.String() != "alive" || Dead.String() != "dead" {
		t.Fatalf("unexpected names %q %q", Alive, Dead)
	}
}
