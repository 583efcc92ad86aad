package model

import (
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-life-torus/rules"
	"github.com/sheikhrachel/go-life-torus/utils"
)

// nextGrid hands out the grid the census writes into
func (g *Grid) nextGrid(pool *GridPool) *Grid {
	if pool != nil {
		return pool.Get(g.size)
	}
	return newGrid(g.size)
}

// censusRows applies the rules to rows [startRow, endRow) of g, writing into next
func (g *Grid) censusRows(next *Grid, startRow, endRow int) {
	for row := startRow; row < endRow; row++ {
		for col := range g.size {
			if rules.ApplyConwayRules(g.CountLiveNeighbors(row, col), g.cells[row][col] == Alive) {
				next.cells[row][col] = Alive
			}
		}
	}
}

// NextGeneration calculates the next generation into a new grid. The receiver
// is only read.
func (g *Grid) NextGeneration(pool *GridPool) *Grid {
	next := g.nextGrid(pool)
	g.censusRows(next, 0, g.size)
	return next
}

// NextGenerationParallel calculates the next generation with one band of rows per CPU
func (g *Grid) NextGenerationParallel(pool *GridPool) *Grid {
	next := g.nextGrid(pool)

	var (
		eg            errgroup.Group
		numWorkers    = runtime.NumCPU()
		rowsPerWorker = (g.size + numWorkers - 1) / numWorkers // Ceiling division
	)

	for i := range numWorkers {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, g.size)
		)
		if startRow >= g.size {
			break
		}

		eg.Go(func() error {
			g.censusRows(next, startRow, endRow)
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		fmt.Printf("Error in parallel processing: %v\n", err)
	}

	return next
}

// Step calculates the next generation based on configuration
func (g *Grid) Step(config utils.Config, pool *GridPool) *Grid {
	if config.UseParallel {
		return g.NextGenerationParallel(pool)
	}
	return g.NextGeneration(pool)
}
