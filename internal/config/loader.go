package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Sources reported by Load.
const (
	SourceEmbedded = "embedded"
	SourceBuiltin  = "builtin"
)

// localConfigPath is checked relative to the working directory.
const localConfigPath = "configs/term2048.yaml"

// Load loads the term2048 configuration and reports where it came from.
// Search order: customPath -> ~/.term2048/config.yaml -> ./configs/term2048.yaml -> embedded default.
// Fields missing from a file keep their default values.
// Files ending in .toml are decoded as TOML, everything else as YAML.
func Load(customPath string) (Config, string, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Default(), "", fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := decode(customPath, data)
		if err != nil {
			return Default(), "", fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, customPath, nil
	}

	// Try user config directory
	if userCfgPath := UserConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := decode(userCfgPath, data); err == nil {
				return cfg, userCfgPath, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(localConfigPath); err == nil {
		if cfg, err := decode(localConfigPath, data); err == nil {
			return cfg, localConfigPath, nil
		}
	}

	// Use embedded default YAML
	cfg, err := decode("default.yaml", defaultGameYAML)
	if err != nil {
		return Default(), SourceBuiltin, nil // Fallback to hardcoded if embed fails
	}
	return cfg, SourceEmbedded, nil
}

// decode parses data on top of the defaults, picking the format from path.
func decode(path string, data []byte) (Config, error) {
	cfg := Default()
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return cfg, err
		}
		return cfg, nil
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Marshal renders the configuration as YAML.
func Marshal(cfg Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// UserConfigPath returns the path to a file in the user config directory,
// or empty if home is unavailable.
func UserConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".term2048", filename)
}
