package model

// wrap maps v onto [0, n) with a modulo that never goes negative
func wrap(v, n int) int {
	return ((v % n) + n) % n
}

// CountLiveNeighbors counts the living cells among the 8 cells surrounding
// (row, col). Edges wrap to the opposite side of the board. On boards smaller
// than 3 an offset can land on the cell itself or repeat a neighbor, and each
// such hit is counted.
func (g *Grid) CountLiveNeighbors(row, col int) int {
	count := 0
	for dr := -1; dr <= 1; dr++ {
		r := wrap(row+dr, g.size)
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			if g.cells[r][wrap(col+dc, g.size)] == Alive {
				count++
			}
		}
	}
	return count
}
