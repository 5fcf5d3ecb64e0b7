package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the default configuration.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Timing: TetrisTiming{
			InitialDropMS: 1000,
			MinDropMS:     100,
			SpeedUp:       0.9,
			LinesPerLevel: 10,
		},
		Rotation: TetrisRotation{
			MaxKicks: 4,
		},
		GameOver: TetrisGameOver{
			Policy: PolicyStop,
		},
		Difficulty: DifficultyConfig{
			Enabled:    true,
			StartLevel: 1,
		},
		Display: TetrisDisplay{
			CellSize:        30,
			PreviewCellSize: 20,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "tetris", "tetris_endless":
		return defaultTetrisYAML
	default:
		return nil
	}
}
