// crossroads simulates a four-way traffic-light intersection in the terminal.
//
// Usage:
//
//	crossroads list              - List available scenes
//	crossroads play [scene]      - Watch a scene (default: intersection)
//	crossroads menu              - Pick scenes interactively
//	crossroads run               - Run the simulation headless and print a report
//	crossroads serve             - Start SSH server for remote viewing
//	crossroads config            - Print the resolved config as YAML
//
// Global flags:
//
//	--fps <rate>       - Set tick rate (default: 60)
//	--seed <value>     - Set RNG seed for reproducible runs
//	--config <path>    - Use a custom intersection YAML
//	--preset <name>    - Traffic density: quiet, normal, rush, fixed
//	--log-file <path>  - Write scene logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-crossroads/internal/config"
	"github.com/vovakirdan/tui-crossroads/internal/scenes/intersection"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagConfig  string
	flagPreset  string
	flagLogFile string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "crossroads",
	Short: "Crossroads - a traffic-light intersection in your terminal",
	Long: `Crossroads simulates a four-way intersection controlled by a traffic
light. Cars spawn at random on the four approaches, stop for red and
yellow lights and keep their distance to the car ahead.

Available commands:
  list     - Show all available scenes
  play     - Watch a scene directly
  menu     - Interactive scene picker
  run      - Headless run with a statistics report
  serve    - Start SSH server for remote viewing
  config   - Print the resolved intersection config

Examples:
  crossroads play
  crossroads play intersection_rush
  crossroads play --preset quiet --seed 42
  crossroads run --ticks 36000 --runs 10
  crossroads serve --ssh :2222
  crossroads config --preset rush > intersection.yaml`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		if _, ok := config.ParsePreset(flagPreset); !ok {
			return fmt.Errorf("unknown preset %q (want one of %v)", flagPreset, config.Presets)
		}
		return nil
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (ticks per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom intersection config YAML")
	rootCmd.PersistentFlags().StringVar(&flagPreset, "preset", "", "Traffic density preset: quiet, normal, rush, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write scene logs to this file")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// configureScenes passes the global flags to the scene packages and returns
// the logger interactive commands should use. The alt screen owns the
// terminal, so logs go to --log-file or nowhere. The returned func closes
// the log file.
func configureScenes() (*log.Logger, func(), error) {
	preset, _ := config.ParsePreset(flagPreset)

	logger := log.New(io.Discard)
	closer := func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		logger = log.NewWithOptions(f, log.Options{
			ReportTimestamp: true,
			Level:           log.DebugLevel,
		})
		closer = func() { _ = f.Close() }
	}

	intersection.SetConfigPath(flagConfig)
	intersection.SetPreset(preset)
	intersection.SetLogger(logger)
	return logger, closer, nil
}
