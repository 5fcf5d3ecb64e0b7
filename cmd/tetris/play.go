package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	gametetris "github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

const defaultMode = "tetris"

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play in the terminal",
	Long: `Start playing the given mode (default: tetris).

Controls:
  Left/Right  - Move
  Down        - Drop one row
  Up          - Rotate clockwise
  Z           - Rotate counter-clockwise
  P/Esc       - Pause
  R           - Restart (after game over)
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - Start at level 1
  normal - Start at level 3
  hard   - Start at level 6
  fixed  - Level 1 speed for the whole game

Examples:
  tetris play
  tetris play tetris_endless
  tetris play --difficulty hard
  tetris play --config ./my-tetris.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	addGameFlags(playCmd)
}

// addGameFlags registers the flags shared by commands that start a game.
func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// applyGameFlags validates --config and --difficulty and hands them to the game package.
func applyGameFlags() error {
	if _, err := config.ParsePreset(flagDifficulty); err != nil {
		return err
	}
	if flagConfig != "" {
		if _, err := config.LoadTetris(flagConfig); err != nil {
			return err
		}
	}
	gametetris.SetConfigPath(flagConfig)
	gametetris.SetDifficultyPreset(flagDifficulty)
	return nil
}

// logConfigSource records which configuration the game will load.
func logConfigSource(logger *log.Logger) {
	_, source, err := config.LoadTetrisWithSource(flagConfig)
	switch {
	case err != nil:
		logger.Warn("config unusable, using defaults", "error", err)
	case source == config.SourceDefault:
		logger.Warn("embedded config unusable, using built-in defaults")
	default:
		logger.Info("config loaded", "source", source, "difficulty", flagDifficulty)
	}
}

// modeArg returns the requested mode, checking that it is registered.
func modeArg(args []string) (string, error) {
	gameID := defaultMode
	if len(args) > 0 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return "", fmt.Errorf("unknown mode %q (run 'tetris list' to see available modes)", gameID)
	}
	return gameID, nil
}

// runtimeConfig builds the runtime config from the terminal size and global flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID, err := modeArg(args)
	if err != nil {
		return err
	}
	if err := applyGameFlags(); err != nil {
		return err
	}

	logger, closeLog, err := newLogger()
	if err != nil {
		return err
	}
	defer closeLog()
	logConfigSource(logger)

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	if err := tui.Run(game, runtimeConfig(), logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
