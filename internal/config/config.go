// Package config provides YAML-based game configuration loading and
// difficulty presets for the game.
package config

// TetrisConfig contains all configuration for the falling-block game.
// Scoring, the piece set and the board size are not configurable.
type TetrisConfig struct {
	Timing     TetrisTiming     `yaml:"timing"`
	Rotation   TetrisRotation   `yaml:"rotation"`
	GameOver   TetrisGameOver   `yaml:"game_over"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Display    TetrisDisplay    `yaml:"display"`
}

// TetrisTiming defines the automatic drop timer.
type TetrisTiming struct {
	InitialDropMS int     `yaml:"initial_drop_ms"`
	MinDropMS     int     `yaml:"min_drop_ms"`
	SpeedUp       float64 `yaml:"speed_up"`
	LinesPerLevel int     `yaml:"lines_per_level"`
}

// TetrisRotation defines wall-kick behavior.
type TetrisRotation struct {
	MaxKicks int `yaml:"max_kicks"`
}

// TetrisGameOver selects what happens when a new piece cannot spawn.
type TetrisGameOver struct {
	Policy string `yaml:"policy"` // "stop" or "reset"
}

// Game-over policies accepted in TetrisGameOver.Policy.
const (
	PolicyStop  = "stop"
	PolicyReset = "reset"
)

// DifficultyConfig defines the level progression.
type DifficultyConfig struct {
	Enabled    bool `yaml:"enabled"`     // whether the interval shrinks on level up
	StartLevel int  `yaml:"start_level"` // level the game starts at (1-based)
}

// TetrisDisplay holds presentation settings for the window frontend.
type TetrisDisplay struct {
	CellSize        int `yaml:"cell_size"`
	PreviewCellSize int `yaml:"preview_cell_size"`
}

// Normalize replaces missing or out-of-range values with defaults.
func (c *TetrisConfig) Normalize() {
	def := DefaultTetrisConfig()

	if c.Timing.InitialDropMS <= 0 {
		c.Timing.InitialDropMS = def.Timing.InitialDropMS
	}
	if c.Timing.MinDropMS <= 0 {
		c.Timing.MinDropMS = def.Timing.MinDropMS
	}
	if c.Timing.MinDropMS > c.Timing.InitialDropMS {
		c.Timing.MinDropMS = c.Timing.InitialDropMS
	}
	if c.Timing.SpeedUp <= 0 || c.Timing.SpeedUp > 1 {
		c.Timing.SpeedUp = def.Timing.SpeedUp
	}
	if c.Timing.LinesPerLevel <= 0 {
		c.Timing.LinesPerLevel = def.Timing.LinesPerLevel
	}
	if c.Rotation.MaxKicks < 0 {
		c.Rotation.MaxKicks = 0
	}
	if c.GameOver.Policy != PolicyReset {
		c.GameOver.Policy = PolicyStop
	}
	if c.Difficulty.StartLevel < 1 {
		c.Difficulty.StartLevel = 1
	}
	if c.Display.CellSize <= 0 {
		c.Display.CellSize = def.Display.CellSize
	}
	if c.Display.PreviewCellSize <= 0 {
		c.Display.PreviewCellSize = def.Display.PreviewCellSize
	}
}
