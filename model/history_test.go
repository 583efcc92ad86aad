package model

import "testing"

func TestHistoryIsStagnant(t *testing.T) {
	t.Parallel()

	var h History
	if h.IsStagnant("a") {
		t.Fatal("empty history reported stagnation")
	}

	for _, hash := range []string{"a", "b", "c", "d"} {
		h.Record(hash)
	}
	for _, hash := range []string{"b", "c", "d"} {
		if !h.IsStagnant(hash) {
			t.Errorf("IsStagnant(%q) = false, want true", hash)
		}
	}
	if h.IsStagnant("a") {
		t.Error("a state older than three generations counted as stagnant")
	}
	if h.IsStagnant("z") {
		t.Error("unseen state counted as stagnant")
	}
}

func TestHistoryKeepsRecentEntries(t *testing.T) {
	t.Parallel()

	var h History
	for _, hash := range []string{"1", "2", "3", "4", "5", "6", "7"} {
		h.Record(hash)
	}
	if h.Len() != historySize {
		t.Fatalf("Len() = %d, want %d", h.Len(), historySize)
	}
	if h.hashes[0] != "3" {
		t.Fatalf("oldest entry = %q, want %q", h.hashes[0], "3")
	}
}

func TestHistoryDetectsBlinker(t *testing.T) {
	t.Parallel()

	var h History
	g := gridOf(t, 5, Coord{2, 1}, Coord{2, 2}, Coord{2, 3})
	h.Record(g.Hash())
	g = g.NextGeneration(nil)
	if h.IsStagnant(g.Hash()) {
		t.Fatal("first blinker phase change reported as stagnant")
	}
	h.Record(g.Hash())
	g = g.NextGeneration(nil)
	if !h.IsStagnant(g.Hash()) {
		t.Fatal("period 2 oscillator not detected")
	}
}
