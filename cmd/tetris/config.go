package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Prints the embedded default configuration as YAML.

Save it to ~/.tetris/configs/tetris.yaml or ./configs/tetris.yaml and edit
it, or pass a file explicitly with --config.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, _ []string) error {
	data := config.GetDefaultYAML("tetris")
	if data == nil {
		return fmt.Errorf("no default configuration embedded")
	}
	_, err := cmd.OutOrStdout().Write(data)
	return err
}
