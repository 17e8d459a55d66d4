package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-crossroads/internal/core"
	"github.com/vovakirdan/tui-crossroads/internal/platform/tui"
	"github.com/vovakirdan/tui-crossroads/internal/registry"
	"github.com/vovakirdan/tui-crossroads/internal/scenes/intersection"
)

var playCmd = &cobra.Command{
	Use:   "play [scene]",
	Short: "Watch a scene",
	Long: `Start the specified scene, or the intersection when none is given.

Controls:
  Space/P    - Pause
  N          - Advance one tick while paused
  R          - Restart with a new seed
  I          - Toggle the vehicle inspector
  ?          - Show all keys
  Ctrl+S     - Save a screenshot to ~/.crossroads/screenshots
  Q/Ctrl+C   - Quit

Presets (picked interactively when --preset is not given):
  quiet  - Up to 6 cars, rare spawns
  normal - Values from the config file
  rush   - Up to 24 cars, frequent spawns
  fixed  - No new cars

Examples:
  crossroads play
  crossroads play intersection_rush
  crossroads play --preset quiet
  crossroads play --seed 42 --fps 30
  crossroads play --config ./my-intersection.yaml --log-file crossroads.log`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	sceneID := intersection.SceneID
	if len(args) > 0 {
		sceneID = args[0]
	}

	if !registry.Exists(sceneID) {
		fmt.Fprintf(os.Stderr, "Error: unknown scene %q\n", sceneID)
		fmt.Fprintln(os.Stderr, "Run 'crossroads list' to see available scenes.")
		os.Exit(1)
	}

	logger, closeLog, err := configureScenes()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	cfg := terminalConfig()

	// Without --preset the intersection asks for a traffic density first
	if flagPreset == "" && sceneID == intersection.SceneID {
		preset, selErr := tui.RunPresetSelector(cfg)
		if selErr != nil {
			closeLog()
			fmt.Fprintf(os.Stderr, "Error: %v\n", selErr)
			os.Exit(1)
		}
		if preset == nil {
			return
		}
		intersection.SetPreset(*preset)
	}

	scene, err := registry.Create(sceneID)
	if err != nil {
		closeLog()
		fmt.Fprintf(os.Stderr, "Error creating scene: %v\n", err)
		os.Exit(1)
	}

	if runErr := tui.Run(scene, cfg, tui.WithLogger(logger)); runErr != nil {
		closeLog()
		fmt.Fprintf(os.Stderr, "Error running scene: %v\n", runErr)
		os.Exit(1)
	}
}

// terminalConfig builds the runtime config from the global flags and the
// current terminal size.
func terminalConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}
