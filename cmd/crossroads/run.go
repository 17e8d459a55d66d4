package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-crossroads/internal/config"
	"github.com/vovakirdan/tui-crossroads/internal/headless"
	"github.com/vovakirdan/tui-crossroads/internal/traffic"
)

var (
	flagTicks    int
	flagRuns     int
	flagSeedBase int64
	flagSeedStep int64
	flagLogLevel string
	flagEvery    int
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the simulation headless and print a report",
	Long: `Run the intersection without a terminal UI.

Each run reports how many cars were spawned and removed, the peak number
of active cars, stopped vehicle-ticks per reason, light phase changes and
any invariant violations. With --runs > 1 seeds are --seed-base,
--seed-base + --seed-step, ... and an aggregate is printed at the end.

Logs go to stderr, the report to stdout.

Examples:
  crossroads run
  crossroads run --ticks 36000 --preset rush
  crossroads run --runs 20 --seed-base 1 --seed-step 1
  crossroads run --log-level debug --ticks 600
  crossroads run --every 600`,
	RunE: runHeadless,
}

func init() {
	runCmd.Flags().IntVar(&flagTicks, "ticks", 3600, "Ticks per run")
	runCmd.Flags().IntVar(&flagRuns, "runs", 1, "Number of runs")
	runCmd.Flags().Int64Var(&flagSeedBase, "seed-base", 0, "Seed of the first run (0 = --seed, or time based)")
	runCmd.Flags().Int64Var(&flagSeedStep, "seed-step", 1, "Seed increment between runs")
	runCmd.Flags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	runCmd.Flags().IntVar(&flagEvery, "every", 0, "Log a snapshot line every N ticks (0 = off)")
}

func runHeadless(_ *cobra.Command, _ []string) error {
	if flagTicks <= 0 || flagRuns <= 0 {
		return fmt.Errorf("--ticks and --runs must be positive")
	}

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "crossroads",
		Level:           level,
	})

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	preset, _ := config.ParsePreset(flagPreset)
	config.ApplyPreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return err
	}

	seed := flagSeedBase
	if seed == 0 {
		seed = flagSeed
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	runner := headless.NewRunner(cfg, logger)
	reports := make([]headless.Report, 0, flagRuns)
	for i := range flagRuns {
		report := runner.Run(seed+int64(i)*flagSeedStep, headless.Options{
			Ticks: flagTicks,
			Every: flagEvery,
		})
		printReport(report)
		reports = append(reports, report)
	}

	summary := headless.Summarize(reports)
	if flagRuns > 1 {
		printSummary(summary)
	}
	if summary.Violations > 0 {
		return fmt.Errorf("%d invariant violations", summary.Violations)
	}
	return nil
}

func printReport(r headless.Report) {
	fmt.Printf("Run %s (seed %d, %d ticks)\n", r.ID, r.Seed, r.Ticks)
	fmt.Printf("  spawned        %d\n", r.Spawned)
	fmt.Printf("  removed        %d\n", r.Removed)
	fmt.Printf("  active at end  %d\n", r.FinalActive)
	fmt.Printf("  peak active    %d\n", r.PeakActive)
	fmt.Printf("  phase changes  %d\n", r.PhaseChanges)
	printStopTicks(r.StopTicks)
	fmt.Printf("  violations     %d\n", len(r.Violations))
	for _, v := range r.Violations {
		fmt.Printf("    tick %d: %s: %s\n", v.Tick, v.Kind, v.Detail)
	}
	fmt.Println()
}

func printSummary(s headless.Summary) {
	fmt.Printf("Total over %d runs (%d ticks)\n", s.Runs, s.Ticks)
	fmt.Printf("  spawned        %d\n", s.Spawned)
	fmt.Printf("  removed        %d\n", s.Removed)
	fmt.Printf("  peak active    %d\n", s.PeakActive)
	fmt.Printf("  phase changes  %d\n", s.PhaseChanges)
	printStopTicks(s.StopTicks)
	fmt.Printf("  stop ticks/car %.2f\n", s.MeanStopTicks())
	fmt.Printf("  violations     %d\n", s.Violations)
}

func printStopTicks(ticks map[traffic.StopReason]int) {
	for _, reason := range traffic.StopReasons {
		fmt.Printf("  stopped %-9s %d\n", reason.String()+":", ticks[reason])
	}
}
