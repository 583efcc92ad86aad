package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life-torus/game"
	"github.com/sheikhrachel/go-life-torus/model"
	"github.com/sheikhrachel/go-life-torus/utils"
)

// loadConfig reads the config file, falling back to defaults if it is missing
func loadConfig(path string) utils.Config {
	config, err := utils.LoadConfig(path)
	if err != nil {
		if !os.IsNotExist(errors.Cause(err)) {
			fmt.Printf("Ignoring %s: %v\n", path, err)
		}
		return utils.DefaultConfig()
	}
	return config
}

// applyFlags overrides config values with flags that were set
func applyFlags(config *utils.Config, size, liveCells, generations int, noColor, useTcell bool) {
	if size > 0 {
		config.Size = size
	}
	if liveCells >= 0 {
		config.LiveCells = liveCells
	}
	if generations >= 0 {
		config.MaxGenerations = generations
	}
	if noColor {
		config.Color = false
	}
	if useTcell {
		config.Screen = utils.ScreenTcell
	}
}

// initializeGame seeds the first generation and builds the renderer. The
// returned func releases the terminal.
func initializeGame(ctx context.Context, cancel context.CancelFunc, config utils.Config) (*game.Game, func(), error) {
	rng := rand.New(rand.NewSource(config.RandSeed()))

	grid, err := model.Seed(config.Size, config.LiveCells, rng)
	if err != nil {
		return nil, nil, errors.Wrap(err, "[initializeGame] failed to seed grid")
	}

	renderer, closeRenderer, err := newRenderer(ctx, cancel, config, rng)
	if err != nil {
		return nil, nil, err
	}

	var opts []game.Option
	if config.UseMemoryPool {
		opts = append(opts, game.WithPool(model.NewGridPool()))
	}

	return game.New(config, grid, renderer, opts...), closeRenderer, nil
}

// newRenderer picks the stdout renderer or a full-screen tcell renderer
func newRenderer(
	ctx context.Context,
	cancel context.CancelFunc,
	config utils.Config,
	rng *rand.Rand,
) (model.Renderer, func(), error) {
	if config.Screen != utils.ScreenTcell {
		return model.NewTerminalRenderer(os.Stdout, rng, config.Color), func() {}, nil
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, nil, errors.Wrap(err, "[newRenderer] failed to create screen")
	}
	if err = screen.Init(); err != nil {
		return nil, nil, errors.Wrap(err, "[newRenderer] failed to initialize screen")
	}

	go watchQuitKeys(ctx, screen, cancel)

	renderer := model.NewScreenRenderer(screen, rng, config.Color)
	return renderer, renderer.Close, nil
}

// watchQuitKeys cancels the game on Escape, Ctrl+C or q. The screen owns the
// keyboard in raw mode, so the interrupt signal never arrives on its own.
func watchQuitKeys(ctx context.Context, screen tcell.Screen, cancel context.CancelFunc) {
	for ctx.Err() == nil {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		key, ok := ev.(*tcell.EventKey)
		if !ok {
			continue
		}
		if key.Key() == tcell.KeyEscape || key.Key() == tcell.KeyCtrlC || key.Rune() == 'q' {
			cancel()
			return
		}
	}
}

// displayFinalStats prints a summary after the loop ends
func displayFinalStats(g *game.Game) {
	stats := g.Stats()
	fmt.Printf("Final stats: %d generations in %.1f seconds\n",
		g.Generation(), stats.Runtime().Seconds())
	fmt.Printf("Average: %.1f gen/sec, %.1f avg population, %d living cells\n",
		stats.GenerationsPerSecond, stats.AveragePopulation, g.Grid().CountLivingCells())
}
