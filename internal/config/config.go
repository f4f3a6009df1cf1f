// Package config provides YAML/TOML configuration loading and validation
// for term2048.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/term2048/internal/games/t2048"
)

// Validation errors.
var (
	ErrInvalidSize   = errors.New("config: game.size must be positive")
	ErrInvalidTarget = errors.New("config: game.target must be a power of two >= 2")
)

// Config is the top-level term2048 configuration.
type Config struct {
	Game GameConfig `yaml:"game" toml:"game"`
}

// GameConfig defines the board and win condition.
type GameConfig struct {
	Size       int `yaml:"size" toml:"size"`               // Board dimension N
	StartTiles int `yaml:"start_tiles" toml:"start_tiles"` // Tiles on a fresh board
	Target     int `yaml:"target" toml:"target"`           // Winning tile value
}

// Validate checks the configuration and returns the first problem found.
func (c Config) Validate() error {
	if c.Game.Size <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidSize, c.Game.Size)
	}
	if c.Game.Target < 2 || c.Game.Target&(c.Game.Target-1) != 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidTarget, c.Game.Target)
	}
	return nil
}

// Options converts the configuration into engine options.
// Start tiles are clamped to [0, size*size].
func (c Config) Options() t2048.Options {
	maxTiles := c.Game.Size * c.Game.Size
	startTiles := c.Game.StartTiles
	if startTiles < 0 {
		startTiles = 0
	}
	if startTiles > maxTiles {
		startTiles = maxTiles
	}

	return t2048.Options{
		Size:       c.Game.Size,
		StartTiles: startTiles,
		Target:     c.Game.Target,
	}
}
