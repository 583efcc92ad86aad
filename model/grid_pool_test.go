package model

import "testing"

func TestGridPoolReturnsClearedGrids(t *testing.T) {
	t.Parallel()

	pool := NewGridPool()
	g := pool.Get(4)
	if g.Size() != 4 || g.CountLivingCells() != 0 {
		t.Fatalf("new pooled grid: size %d, %d living", g.Size(), g.CountLivingCells())
	}

	g.Set(1, 1, Alive)
	g.Set(3, 3, Alive)
	GridToPool(g, pool)

	for _, size := range []int{4, 6, 2} {
		got := pool.Get(size)
		if got.Size() != size {
			t.Fatalf("Get(%d) returned size %d", size, got.Size())
		}
		if n := got.CountLivingCells(); n != 0 {
			t.Fatalf("Get(%d) returned %d living cells", size, n)
		}
		got.Set(size-1, size-1, Alive)
		pool.Put(got)
	}
}

func TestGridToPoolNilSafe(t *testing.T) {
	t.Parallel()

	g := gridOf(t, 3, Coord{1, 1})
	GridToPool(g, nil)
	if !g.IsAlive(1, 1) {
		t.Fatal("grid was cleared without a pool")
	}
	GridToPool(nil, NewGridPool())
}
