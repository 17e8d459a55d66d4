package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-crossroads/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the resolved intersection config as YAML",
	Long: `Loads the intersection config the same way play and run do
(--config, ~/.crossroads/configs, ./configs, built-in defaults), applies
--preset and prints the result. Redirect it to a file to start a custom
config.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	preset, _ := config.ParsePreset(flagPreset)
	config.ApplyPreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return err
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), string(data))
	return err
}
