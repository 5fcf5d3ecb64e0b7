package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/config"
	gametetris "github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a mode and difficulty, then play",
	Long: `Start in interactive menu mode.

Use Up/Down to choose a mode and Left/Right to choose a difficulty.
The default "from config" entry keeps the difficulty settings of the
configuration file. Any other entry overrides them.
After a game ends you return to the menu.

Controls:
  Up/Down/j/k     - Choose mode
  Left/Right/h/l  - Choose difficulty
  Enter/Space     - Play
  Q/Esc           - Quit

Examples:
  tetris menu
  tetris menu --fps 30
  tetris menu --difficulty hard`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func init() {
	addGameFlags(menuCmd)
}

func runMenu(_ *cobra.Command, _ []string) error {
	if err := applyGameFlags(); err != nil {
		return err
	}
	initial, _ := config.ParsePreset(flagDifficulty)

	logger, closeLog, err := newLogger()
	if err != nil {
		return err
	}
	defer closeLog()
	logConfigSource(logger)

	cfg := runtimeConfig()

	// Menu loop
	for {
		result, err := tui.RunMenu(cfg, initial)
		if err != nil {
			return fmt.Errorf("menu: %w", err)
		}

		// Update config with any size changes
		cfg = result.Config
		if result.Quit {
			return nil
		}

		initial = result.Difficulty
		gametetris.SetDifficultyPreset(string(result.Difficulty))

		game, err := registry.Create(result.GameID)
		if err != nil {
			return err
		}
		logger.Info("mode selected", "game", result.GameID, "difficulty", result.Difficulty)

		if err := tui.Run(game, cfg, logger); err != nil {
			return fmt.Errorf("running game: %w", err)
		}
	}
}
