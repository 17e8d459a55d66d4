// Package headless drives a traffic simulation without a terminal and
// reports run statistics and invariant checks.
package headless

import (
	"fmt"
	"io"
	"math"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/vovakirdan/tui-crossroads/internal/config"
	"github.com/vovakirdan/tui-crossroads/internal/traffic"
)

// Violation kinds.
const (
	KindLight  = "light"  // both axes non-red outside a handoff
	KindCap    = "cap"    // more active vehicles than max_vehicles
	KindBounds = "bounds" // a vehicle survived pruning outside the world
	KindRed    = "red"    // a vehicle moved inside its approach zone on red
)

// Options controls a single run.
type Options struct {
	Ticks int
	Every int // log a snapshot line every N ticks, 0 = off
}

// Violation is one failed invariant check.
type Violation struct {
	Tick   uint64
	Kind   string
	Detail string
}

// Report summarizes one run.
type Report struct {
	ID           string
	Seed         int64
	Ticks        int
	Spawned      int
	Removed      int
	PeakActive   int
	FinalActive  int
	PhaseChanges int
	StopTicks    map[traffic.StopReason]int
	Violations   []Violation
}

// Runner executes headless runs of one configuration.
type Runner struct {
	cfg    config.TrafficConfig
	logger *log.Logger
}

// NewRunner creates a runner for cfg. A nil logger discards output.
func NewRunner(cfg config.TrafficConfig, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Runner{cfg: cfg, logger: logger}
}

// Run simulates opts.Ticks ticks from seed and checks the invariants after
// every tick.
func (r *Runner) Run(seed int64, opts Options) Report {
	id := uuid.NewString()
	logger := r.logger.With("run", id[:8])

	sim := traffic.NewSimulation(r.cfg, traffic.WithLogger(logger))
	rng := traffic.NewSource(seed)

	logger.Info("run started", "seed", seed, "ticks", opts.Ticks)

	report := Report{ID: id, Seed: seed, Ticks: opts.Ticks}
	prev := sim.Snapshot()
	for range opts.Ticks {
		sim.Step(rng)
		snap := sim.Snapshot()
		report.Violations = append(report.Violations, r.check(sim, prev, snap)...)

		if opts.Every > 0 && snap.Tick%uint64(opts.Every) == 0 {
			logger.Info("snapshot",
				"tick", snap.Tick,
				"x", snap.Light.X,
				"z", snap.Light.Z,
				"timer", snap.Light.Timer,
				"active", len(snap.Vehicles),
				"stopped", lo.CountBy(snap.Vehicles, func(v traffic.VehicleSnapshot) bool { return v.Stopped }),
			)
		}
		prev = snap
	}

	stats := sim.Stats()
	report.Spawned = stats.Spawned
	report.Removed = stats.Removed
	report.PeakActive = stats.PeakActive
	report.FinalActive = len(sim.Vehicles())
	report.PhaseChanges = stats.PhaseChanges
	report.StopTicks = stats.StopTicks

	for _, v := range report.Violations {
		logger.Warn("invariant violated", "tick", v.Tick, "kind", v.Kind, "detail", v.Detail)
	}
	logger.Info("run finished",
		"spawned", report.Spawned,
		"removed", report.Removed,
		"peak", report.PeakActive,
		"violations", len(report.Violations),
	)
	return report
}

// check compares the state after a tick against the one before it.
func (r *Runner) check(sim *traffic.Simulation, prev, snap traffic.Snapshot) []Violation {
	var out []Violation

	if !sim.Light().Valid() {
		out = append(out, Violation{snap.Tick, KindLight,
			fmt.Sprintf("x=%s z=%s", snap.Light.X, snap.Light.Z)})
	}

	if limit := r.cfg.Spawn.MaxVehicles; len(snap.Vehicles) > limit {
		out = append(out, Violation{snap.Tick, KindCap,
			fmt.Sprintf("%d active, limit %d", len(snap.Vehicles), limit)})
	}

	before := lo.KeyBy(prev.Vehicles, func(v traffic.VehicleSnapshot) uint64 { return v.ID })
	for _, v := range snap.Vehicles {
		if !sim.InBounds(v.Position) {
			out = append(out, Violation{snap.Tick, KindBounds,
				fmt.Sprintf("vehicle %d at (%.2f, %.2f)", v.ID, v.Position.X, v.Position.Z)})
		}

		old, ok := before[v.ID]
		if !ok || old.Position == v.Position {
			continue
		}
		phase := snap.Light.X
		if v.Axis == traffic.AxisZ {
			phase = snap.Light.Z
		}
		if phase == traffic.PhaseRed && r.approaching(old) {
			out = append(out, Violation{snap.Tick, KindRed,
				fmt.Sprintf("vehicle %d moved %s on red", v.ID, v.Direction)})
		}
	}
	return out
}

// approaching reports whether v was in the approach zone before the center.
func (r *Runner) approaching(v traffic.VehicleSnapshot) bool {
	pos := v.Position.On(v.Axis)
	zone := r.cfg.Approach.Zone
	if v.Direction.Sign() > 0 {
		return -zone < pos && pos < 0
	}
	return 0 < pos && pos < zone
}

// Summary aggregates several reports.
type Summary struct {
	Runs         int
	Ticks        int
	Spawned      int
	Removed      int
	PeakActive   int
	PhaseChanges int
	StopTicks    map[traffic.StopReason]int
	Violations   int
}

// Summarize totals reports. PeakActive is the maximum over all runs.
func Summarize(reports []Report) Summary {
	sum := Summary{
		Runs:         len(reports),
		Ticks:        lo.SumBy(reports, func(r Report) int { return r.Ticks }),
		Spawned:      lo.SumBy(reports, func(r Report) int { return r.Spawned }),
		Removed:      lo.SumBy(reports, func(r Report) int { return r.Removed }),
		PhaseChanges: lo.SumBy(reports, func(r Report) int { return r.PhaseChanges }),
		Violations:   lo.SumBy(reports, func(r Report) int { return len(r.Violations) }),
		StopTicks:    make(map[traffic.StopReason]int),
	}
	for _, r := range reports {
		sum.PeakActive = max(sum.PeakActive, r.PeakActive)
		for reason, n := range r.StopTicks {
			sum.StopTicks[reason] += n
		}
	}
	return sum
}

// MeanStopTicks returns the average stopped vehicle-ticks per spawned vehicle.
func (s Summary) MeanStopTicks() float64 {
	if s.Spawned == 0 {
		return 0
	}
	total := lo.Sum(lo.Values(s.StopTicks))
	return math.Round(float64(total)/float64(s.Spawned)*100) / 100
}
