package config

import (
	_ "embed"

	"github.com/vovakirdan/term2048/internal/games/t2048"
)

//go:embed defaults/game.yaml
var defaultGameYAML []byte

// Default returns the built-in configuration: a 4x4 board, two start tiles,
// target 2048.
func Default() Config {
	return Config{
		Game: GameConfig{
			Size:       t2048.DefaultSize,
			StartTiles: t2048.DefaultStartTiles,
			Target:     t2048.DefaultTarget,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultGameYAML
}
