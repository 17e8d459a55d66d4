// Package intersection implements the four-way intersection scene.
// It drives a traffic.Simulation from platform ticks and draws a top-down
// view of the roads, the signal heads and every vehicle.
package intersection

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-crossroads/internal/config"
	"github.com/vovakirdan/tui-crossroads/internal/core"
	"github.com/vovakirdan/tui-crossroads/internal/registry"
	"github.com/vovakirdan/tui-crossroads/internal/traffic"
)

// Scene IDs as used on the command line.
const (
	SceneID     = "intersection"
	RushSceneID = "intersection_rush"
)

// configPath stores the custom config path set via CLI
var configPath string
var preset config.Preset
var logger = log.New(io.Discard)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetPreset sets the traffic density preset applied on every Reset.
func SetPreset(p config.Preset) {
	preset = p
}

// SetLogger routes scene warnings and simulation debug events to l.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// Scene implements registry.Scene for the intersection.
type Scene struct {
	id     string
	title  string
	forced config.Preset // Preset that overrides the CLI one, empty for none

	runtime core.RuntimeConfig
	cfg     config.TrafficConfig
	sim     *traffic.Simulation
	rng     traffic.Source
	last    traffic.StepResult

	paused  bool
	inspect bool
	help    bool
}

// New creates the intersection scene using the CLI preset.
func New() *Scene {
	return &Scene{id: SceneID, title: "Intersection"}
}

// NewRush creates the intersection scene with the rush preset forced.
func NewRush() *Scene {
	return &Scene{id: RushSceneID, title: "Intersection (rush hour)", forced: config.PresetRush}
}

// ID returns the unique identifier for this scene.
func (s *Scene) ID() string {
	return s.id
}

// Title returns the display name for this scene.
func (s *Scene) Title() string {
	return s.title
}

// Reset loads the configuration and starts a fresh simulation seeded
// from cfg.Seed. UI toggles survive a reset.
func (s *Scene) Reset(cfg core.RuntimeConfig) {
	s.runtime = cfg
	s.cfg = s.loadConfig()
	s.sim = traffic.NewSimulation(s.cfg, traffic.WithLogger(logger))
	s.rng = traffic.NewSource(cfg.Seed)
	s.last = traffic.StepResult{}
	s.paused = false
}

// loadConfig resolves the traffic config, falling back to defaults on error.
func (s *Scene) loadConfig() config.TrafficConfig {
	cfg, err := config.Load(configPath)
	if err != nil {
		logger.Warn("using default config", "scene", s.id, "error", err)
		cfg = config.DefaultTrafficConfig()
	}

	p := preset
	if s.forced != "" {
		p = s.forced
	}
	config.ApplyPreset(&cfg, p)

	if err := cfg.Validate(); err != nil {
		logger.Warn("using default config", "scene", s.id, "error", err)
		cfg = config.DefaultTrafficConfig()
		config.ApplyPreset(&cfg, p)
	}
	return cfg
}

// Step applies UI actions and advances the simulation unless paused.
// While paused, ActionStep advances exactly one tick.
func (s *Scene) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) {
		s.paused = !s.paused
	}
	if in.Has(core.ActionInspect) {
		s.inspect = !s.inspect
	}
	if in.Has(core.ActionHelp) {
		s.help = !s.help
	}

	if s.paused && !in.Has(core.ActionStep) {
		return core.StepResult{State: s.State()}
	}

	s.last = s.sim.Step(s.rng)
	return core.StepResult{State: s.State(), Advanced: true}
}

// State returns the current scene summary.
func (s *Scene) State() core.SceneState {
	st := core.SceneState{
		Paused:   s.paused,
		Seed:     s.runtime.Seed,
		Inspect:  s.inspect,
		HelpOpen: s.help,
	}
	if s.sim != nil {
		st.Tick = s.sim.Tick()
		st.Active = len(s.sim.Vehicles())
	}
	return st
}

// Simulation exposes the underlying simulation.
func (s *Scene) Simulation() *traffic.Simulation {
	return s.sim
}

// Config returns the traffic config the current run was built from.
func (s *Scene) Config() config.TrafficConfig {
	return s.cfg
}

// LastStep returns what happened during the most recent simulated tick.
func (s *Scene) LastStep() traffic.StepResult {
	return s.last
}

// Columns implements registry.Inspector.
func (s *Scene) Columns() []string {
	return []string{"ID", "Dir", "X", "Z", "State"}
}

// Rows implements registry.Inspector, one row per active vehicle in
// update order.
func (s *Scene) Rows() [][]string {
	if s.sim == nil {
		return nil
	}
	snap := s.sim.Snapshot()
	rows := make([][]string, 0, len(snap.Vehicles))
	for _, v := range snap.Vehicles {
		state := "moving"
		if v.Stopped {
			state = v.StopReason.String()
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", v.ID),
			v.Direction.String(),
			fmt.Sprintf("%.1f", v.Position.X),
			fmt.Sprintf("%.1f", v.Position.Z),
			state,
		})
	}
	return rows
}

// Register the scenes with the registry
func init() {
	registry.Register(SceneID, func() registry.Scene {
		return New()
	})
	registry.Register(RushSceneID, func() registry.Scene {
		return NewRush()
	})
}
