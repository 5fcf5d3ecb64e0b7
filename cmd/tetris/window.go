package main

import (
	"fmt"

	"github.com/spf13/cobra"

	gametetris "github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/platform/window"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

var windowCmd = &cobra.Command{
	Use:   "window [mode]",
	Short: "Play in a desktop window",
	Long: `Open a desktop window and play the given mode (default: tetris).

The window uses the same keys as the terminal. Cell sizes come from the
display section of the configuration.

Examples:
  tetris window
  tetris window tetris_endless --difficulty normal`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWindow,
}

func init() {
	addGameFlags(windowCmd)
}

func runWindow(_ *cobra.Command, args []string) error {
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

	created, err := registry.Create(gameID)
	if err != nil {
		return err
	}
	game, ok := created.(*gametetris.Game)
	if !ok {
		return fmt.Errorf("mode %q cannot run in a window", gameID)
	}

	return window.Run(game, runtimeConfig(), logger)
}
