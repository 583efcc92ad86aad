package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"
)

// ErrInvalidConfig is the cause of every rejected grid or game setting
var ErrInvalidConfig = errors.New("invalid configuration")

const (
	ScreenANSI  = "ansi"
	ScreenTcell = "tcell"
)

// Config holds the configuration for the game
type Config struct {
	Size           int           `json:"size"`
	LiveCells      int           `json:"live_cells"`
	FrameRate      time.Duration `json:"frame_rate"`
	MaxGenerations int           `json:"max_generations"`
	Color          bool          `json:"color"`
	UseParallel    bool          `json:"use_parallel"`
	UseMemoryPool  bool          `json:"use_memory_pool"`
	Screen         string        `json:"screen"`
	Seed           int64         `json:"seed"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Size:           50,
		LiveCells:      600,
		FrameRate:      100 * time.Millisecond,
		MaxGenerations: 0, // Run until interrupted
		Color:          true,
		UseParallel:    false,
		UseMemoryPool:  true,
		Screen:         ScreenANSI,
		Seed:           0, // Seed from the clock
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// Validate rejects settings that cannot produce a playable grid
func (c Config) Validate() error {
	switch {
	case c.Size <= 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] size must be positive, got %d", c.Size)
	case c.LiveCells < 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] live_cells must not be negative, got %d", c.LiveCells)
	case c.FrameRate < 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] frame_rate must not be negative, got %v", c.FrameRate)
	case c.MaxGenerations < 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] max_generations must not be negative, got %d", c.MaxGenerations)
	case c.Screen != ScreenANSI && c.Screen != ScreenTcell:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] unknown screen %q", c.Screen)
	}
	return nil
}

// RandSeed returns the configured seed, or the current time when none is set
func (c Config) RandSeed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}
