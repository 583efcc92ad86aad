package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	var (
		configPath  = flag.String("config", "config.json", "path to a JSON configuration file")
		size        = flag.Int("size", 0, "grid side length (overrides the config file)")
		liveCells   = flag.Int("cells", -1, "initial live cell picks (overrides the config file)")
		generations = flag.Int("generations", -1, "stop after this many generations, 0 runs forever")
		noColor     = flag.Bool("no-color", false, "draw live cells without color")
		useTcell    = flag.Bool("tcell", false, "draw on a full-screen terminal")
	)
	flag.Parse()

	config := loadConfig(*configPath)
	applyFlags(&config, *size, *liveCells, *generations, *noColor, *useTcell)
	if err := config.Validate(); err != nil {
		log.Fatalf("invalid configuration: %+v", err)
	}

	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, closeRenderer, err := initializeGame(ctx, stop, config)
	if err != nil {
		log.Fatalf("failed to start game: %+v", err)
	}

	runErr := g.Run(ctx)
	closeRenderer()
	if runErr != nil {
		log.Fatalf("game stopped: %+v", runErr)
	}

	fmt.Println("\nShutting down...")
	displayFinalStats(g)
}
