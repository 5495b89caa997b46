package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/helix-drop/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration the game would run with, after the config file
search and the difficulty preset, as YAML. Redirect it to a file to start a
custom config.

Examples:
  helix config > ~/.helix/configs/helix.yaml
  helix config --difficulty hard`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		data, err := config.Marshal(cfg)
		if err != nil {
			return err
		}
		fmt.Print(string(data))
		return nil
	},
}
