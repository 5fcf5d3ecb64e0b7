// Package tetris adapts the falling-block simulation to the registry.Game
// interface: it maps input actions onto session operations, converts ticks
// into elapsed time and draws the board into a core.Screen.
package tetris

import (
	"time"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/registry"
	engine "github.com/vovakirdan/tui-tetris/internal/tetris"
)

// Mode represents the game mode.
type Mode string

const (
	// ModeClassic stops at game over and waits for a restart.
	ModeClassic Mode = "classic"
	// ModeEndless wipes the board at game over and keeps falling.
	ModeEndless Mode = "endless"
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		p = ""
	}
	difficultyPreset = p
}

// Game implements registry.Game on top of an engine session.
type Game struct {
	mode    Mode
	cfg     config.TetrisConfig
	runtime core.RuntimeConfig
	session *engine.Session

	tick     uint64
	tickStep time.Duration
	paused   bool
	events   []engine.Event

	screenW int
	screenH int
}

// New creates a classic mode game.
func New() *Game {
	return &Game{mode: ModeClassic}
}

// NewEndless creates an endless mode game.
func NewEndless() *Game {
	return &Game{mode: ModeEndless}
}

func init() {
	registry.Register("tetris", func() registry.Game {
		return New()
	})
	registry.Register("tetris_endless", func() registry.Game {
		return NewEndless()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return "tetris_endless"
	}
	return "tetris"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "Tetris (Endless)"
	}
	return "Tetris"
}

// Reset loads the configuration and starts a new session.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	cfg, err := config.LoadTetris(configPath)
	if err != nil {
		cfg = config.DefaultTetrisConfig()
	}
	if difficultyPreset != "" {
		config.ApplyTetrisPreset(&cfg, difficultyPreset)
	}
	g.ResetWith(runtime, cfg)
}

// ResetWith starts a new session from an explicit configuration.
func (g *Game) ResetWith(runtime core.RuntimeConfig, cfg config.TetrisConfig) {
	cfg.Normalize()
	g.cfg = cfg
	g.runtime = runtime
	g.screenW = runtime.ScreenW
	g.screenH = runtime.ScreenH

	tickRate := runtime.TickRate
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}
	g.tickStep = time.Second / time.Duration(tickRate)

	g.tick = 0
	g.paused = false
	g.events = nil
	g.session = engine.NewSession(OptionsFromConfig(cfg, g.mode), runtime.Seed)
}

// OptionsFromConfig converts a loaded configuration into session options
// for the given mode. Endless mode always resets at game over.
func OptionsFromConfig(cfg config.TetrisConfig, mode Mode) engine.Options {
	opts := engine.DefaultOptions()
	opts.DropInterval = time.Duration(cfg.Timing.InitialDropMS) * time.Millisecond
	opts.MinDropInterval = time.Duration(cfg.Timing.MinDropMS) * time.Millisecond
	opts.SpeedUp = cfg.Timing.SpeedUp
	opts.LinesPerLevel = cfg.Timing.LinesPerLevel
	opts.MaxKicks = cfg.Rotation.MaxKicks
	opts.StartLevel = cfg.Difficulty.StartLevel

	if !cfg.Difficulty.Enabled {
		opts.SpeedUp = 1
	}

	switch {
	case mode == ModeEndless:
		opts.OnGameOver = engine.GameOverReset
	case cfg.GameOver.Policy == config.PolicyReset:
		opts.OnGameOver = engine.GameOverReset
	default:
		opts.OnGameOver = engine.GameOverStop
	}
	return opts
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	return g.StepFor(input, g.tickStep)
}

// StepFor applies the input in arrival order and then advances the drop
// timer by dt. Pause and restart take effect at their place in the sequence.
// The window frontend calls it with the measured frame time.
func (g *Game) StepFor(input core.InputFrame, dt time.Duration) core.StepResult {
	if g.session == nil {
		g.Reset(core.DefaultConfig())
	}
	g.tick++

	for _, a := range input.Sequence() {
		switch {
		case a == core.ActionRestart:
			if g.session.Over() {
				g.session.Restart()
				g.paused = false
			}
		case a == core.ActionPause:
			if !g.session.Over() {
				g.paused = !g.paused
			}
		case !g.paused && !g.session.Over():
			g.apply(a)
		}
	}

	if !g.paused && !g.session.Over() {
		g.session.Advance(dt)
	}
	g.collectEvents()

	return core.StepResult{State: g.State()}
}

// apply maps one action onto the session.
func (g *Game) apply(a core.Action) {
	switch a {
	case core.ActionLeft:
		g.session.Move(-1)
	case core.ActionRight:
		g.session.Move(1)
	case core.ActionDown:
		g.session.Drop()
	case core.ActionRotateCW:
		g.session.Rotate(engine.Clockwise)
	case core.ActionRotateCCW:
		g.session.Rotate(engine.CounterClockwise)
	}
}

func (g *Game) collectEvents() {
	g.events = append(g.events, g.session.Events()...)
}

// Events returns and clears the session events gathered since the last call.
func (g *Game) Events() []engine.Event {
	ev := g.events
	g.events = nil
	return ev
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	p := g.session.Player()
	return core.GameState{
		Score:    p.Score,
		Level:    p.Level,
		Lines:    p.Lines,
		GameOver: g.session.Over(),
		Paused:   g.paused,
	}
}

// Session exposes the running session for frontends that draw it directly.
func (g *Game) Session() *engine.Session { return g.session }

// Config returns the configuration the current session was built from.
func (g *Game) Config() config.TetrisConfig { return g.cfg }
