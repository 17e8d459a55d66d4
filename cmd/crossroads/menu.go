package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-crossroads/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start crossroads with a scene picker menu",
	Long: `Start crossroads in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a scene.
Press Esc or B inside a scene to return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select scene
  Q            - Quit

Examples:
  crossroads menu
  crossroads menu --fps 30
  crossroads menu --preset rush`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	logger, closeLog, err := configureScenes()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	if runErr := tui.RunSession(terminalConfig(), logger); runErr != nil {
		closeLog()
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}
