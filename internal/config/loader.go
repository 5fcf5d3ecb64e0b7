package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// SourceEmbedded and SourceDefault name configurations that did not come from a file.
const (
	SourceEmbedded = "embedded"
	SourceDefault  = "default"
)

// LoadTetris loads the game configuration.
// Search order: customPath -> ~/.tetris/configs/tetris.yaml -> ./configs/tetris.yaml -> embedded default
//
// Keys missing from a file keep their default values.
func LoadTetris(customPath string) (TetrisConfig, error) {
	cfg, _, err := LoadTetrisWithSource(customPath)
	return cfg, err
}

// LoadTetrisWithSource is LoadTetris that also reports where the
// configuration came from: a file path, SourceEmbedded or SourceDefault.
// Unreadable or invalid files in the fallback locations are skipped.
func LoadTetrisWithSource(customPath string) (TetrisConfig, string, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultTetrisConfig(), SourceDefault, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := ParseTetris(data)
		if err != nil {
			return DefaultTetrisConfig(), SourceDefault, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, customPath, nil
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath("tetris.yaml"), filepath.Join("configs", "tetris.yaml")} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := ParseTetris(data); err == nil {
			return cfg, path, nil
		}
	}

	// Use embedded default YAML
	cfg, err := ParseTetris(defaultTetrisYAML)
	if err != nil {
		return DefaultTetrisConfig(), SourceDefault, nil // Fallback to hardcoded if embed fails
	}
	return cfg, SourceEmbedded, nil
}

// ParseTetris decodes YAML on top of the defaults and normalizes the result.
func ParseTetris(data []byte) (TetrisConfig, error) {
	cfg := DefaultTetrisConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultTetrisConfig(), err
	}
	cfg.Normalize()
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tetris", "configs", filename)
}
