// Package game drives a grid through successive generations, rendering each
// one and pacing the loop between frames.
package game

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life-torus/model"
	"github.com/sheikhrachel/go-life-torus/utils"
)

const (
	statusActive   = "Active"
	statusStagnant = "Stagnant"
	statusExtinct  = "Extinct"
)

// PaceFunc blocks for the pacing interval between frames. It returns early
// with the context error once ctx is done.
type PaceFunc func(ctx context.Context, d time.Duration) error

// Sleep waits for d or until ctx is done
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Option customizes a Game
type Option func(*Game)

// WithPace replaces the wall-clock pacing between frames
func WithPace(pace PaceFunc) Option {
	return func(g *Game) { g.pace = pace }
}

// WithPool recycles discarded generations through pool
func WithPool(pool *model.GridPool) Option {
	return func(g *Game) { g.pool = pool }
}

// Game owns the current generation and the loop that advances it
type Game struct {
	config     utils.Config
	grid       *model.Grid
	renderer   model.Renderer
	pool       *model.GridPool
	pace       PaceFunc
	stats      *utils.Stats
	history    model.History
	generation int
	lastFrame  time.Time
}

// New creates a game starting from grid
func New(config utils.Config, grid *model.Grid, renderer model.Renderer, opts ...Option) *Game {
	g := &Game{
		config:   config,
		grid:     grid,
		renderer: renderer,
		pace:     Sleep,
		stats:    utils.NewStats(),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.lastFrame = g.stats.StartTime
	return g
}

// Grid returns the current generation
func (g *Game) Grid() *model.Grid {
	return g.grid
}

// Generation returns how many steps have been taken
func (g *Game) Generation() int {
	return g.generation
}

// Stats returns the performance counters
func (g *Game) Stats() *utils.Stats {
	return g.stats
}

// Run renders the current grid, then steps and renders until ctx is done or
// the configured generation limit is reached. Cancellation is a clean stop.
func (g *Game) Run(ctx context.Context) error {
	if err := g.render(); err != nil {
		return err
	}

	for g.config.MaxGenerations == 0 || g.generation < g.config.MaxGenerations {
		if err := g.pace(ctx, g.config.FrameRate); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return errors.Wrap(err, "[Run] pacing failed")
		}

		next := g.grid.Step(g.config, g.pool)
		g.generation++
		prev := g.grid
		g.grid = next

		if err := g.render(); err != nil {
			return err
		}
		model.GridToPool(prev, g.pool)
	}
	return nil
}

// render draws the status line and the current grid
func (g *Game) render() error {
	now := time.Now()
	livingCells := g.grid.CountLivingCells()
	g.stats.Update(g.generation, livingCells, now.Sub(g.lastFrame))
	g.lastFrame = now

	if err := g.renderer.Clear(); err != nil {
		return errors.Wrap(err, "[render] failed to clear")
	}
	if err := g.renderer.Status(g.statusLine(livingCells)); err != nil {
		return errors.Wrap(err, "[render] failed to draw status")
	}
	if err := g.renderer.Display(g.grid); err != nil {
		return errors.Wrap(err, "[render] failed to draw grid")
	}
	return nil
}

// statusLine summarizes the current generation and records it in the history
func (g *Game) statusLine(livingCells int) string {
	size := g.grid.Size()
	density := float64(livingCells) / float64(size*size) * 100

	hash := g.grid.Hash()
	status := statusActive
	if g.history.IsStagnant(hash) {
		status = statusStagnant
	}
	if livingCells == 0 {
		status = statusExtinct
	}
	g.history.Record(hash)

	return fmt.Sprintf("Gen: %d | Living: %d | Density: %.1f%% | Status: %s | %.1f gen/sec",
		g.generation, livingCells, density, status, g.stats.GenerationsPerSecond)
}
