package traffic

import (
	"io"
	"math"

	"github.com/charmbracelet/log"
	"github.com/samber/lo"

	"github.com/vovakirdan/tui-crossroads/internal/config"
)

// Spawn holds the random spawn policy.
type Spawn struct {
	MaxVehicles int
	Probability float64
}

// Lanes holds the entry geometry.
type Lanes struct {
	Width         float64 // lane centers sit at ±Width/2
	SpawnDistance float64
	SpawnHeight   float64
}

// StepResult reports what happened during one tick.
type StepResult struct {
	Tick         uint64
	PhaseChanged bool
	Spawned      uint64   // ID of the vehicle spawned this tick, 0 if none
	Removed      []uint64 // IDs pruned this tick, in insertion order
}

// Stats accumulates counters over a whole run.
type Stats struct {
	Spawned      int
	Removed      int
	PeakActive   int
	PhaseChanges int
	StopTicks    map[StopReason]int // vehicle-ticks spent stopped, per reason
}

// Simulation owns the light and the active vehicles of one intersection.
//
// Each Step runs: light update, spawn decision, vehicle update pass, prune.
// Vehicles update in insertion order against the shared slice, so a vehicle
// sees the post-move positions of vehicles updated before it in the same
// tick and the pre-move positions of the rest.
type Simulation struct {
	light      *TrafficLight
	vehicles   []*Vehicle
	body       Body
	rules      Rules
	lanes      Lanes
	spawn      Spawn
	halfExtent float64

	tick   uint64
	nextID uint64
	stats  Stats
	logger *log.Logger
}

// Option configures a Simulation.
type Option func(*Simulation)

// WithLogger routes debug events (phase changes, spawns, removals) to logger.
func WithLogger(logger *log.Logger) Option {
	return func(s *Simulation) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewSimulation creates an empty intersection from cfg.
// cfg is expected to have passed Validate.
func NewSimulation(cfg config.TrafficConfig, opts ...Option) *Simulation {
	s := &Simulation{
		light: NewTrafficLight(cfg.Light.SwitchInterval, cfg.Light.YellowDuration),
		body: Body{
			Speed:        cfg.Vehicle.Speed,
			SafeDistance: cfg.Vehicle.SafeDistance,
			Length:       cfg.Vehicle.Length,
			Width:        cfg.Vehicle.Width,
			Height:       cfg.Vehicle.Height,
		},
		rules: Rules{
			ApproachZone:         cfg.Approach.Zone,
			YellowCommitDistance: cfg.Approach.YellowCommitDistance,
			LaneTolerance:        cfg.Approach.LaneTolerance,
		},
		lanes: Lanes{
			Width:         cfg.Lanes.Width,
			SpawnDistance: cfg.Lanes.SpawnDistance,
			SpawnHeight:   cfg.Lanes.SpawnHeight,
		},
		spawn: Spawn{
			MaxVehicles: cfg.Spawn.MaxVehicles,
			Probability: cfg.Spawn.Probability,
		},
		halfExtent: cfg.World.HalfExtent,
		vehicles:   make([]*Vehicle, 0, cfg.Spawn.MaxVehicles),
		nextID:     1,
		stats:      Stats{StopTicks: make(map[StopReason]int)},
		logger:     log.New(io.Discard),
	}

	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Step advances the simulation by one tick, drawing spawn decisions from rng.
func (s *Simulation) Step(rng Source) StepResult {
	s.tick++
	result := StepResult{Tick: s.tick}

	// 1. Light
	before := s.light.Stage()
	s.light.Update()
	if s.light.Stage() != before {
		result.PhaseChanged = true
		s.stats.PhaseChanges++
		s.logger.Debug("phase changed",
			"tick", s.tick,
			"x", s.light.XPhase(),
			"z", s.light.ZPhase(),
		)
	}

	// 2. Spawn
	if len(s.vehicles) < s.spawn.MaxVehicles && rng.Float64() < s.spawn.Probability {
		dir := Direction(rng.IntN(DirectionCount))
		result.Spawned = s.Spawn(dir).ID()
	}
	if len(s.vehicles) > s.stats.PeakActive {
		s.stats.PeakActive = len(s.vehicles)
	}

	// 3. Update pass, insertion order
	for _, v := range s.vehicles {
		v.Update(s.light, s.vehicles)
	}
	for _, reason := range StopReasons {
		s.stats.StopTicks[reason] += lo.CountBy(s.vehicles, func(v *Vehicle) bool {
			return v.StopReason() == reason
		})
	}

	// 4. Prune
	result.Removed = s.prune()

	return result
}

// Spawn places a new vehicle at the entry point of dir and appends it to the
// active set. It does not consult the spawn cap.
func (s *Simulation) Spawn(dir Direction) *Vehicle {
	v := NewVehicle(s.nextID, s.entryPoint(dir), dir.Movement(), s.body, s.rules)
	s.nextID++
	s.Add(v)

	s.logger.Debug("vehicle spawned", "tick", s.tick, "id", v.ID(), "dir", dir)
	return v
}

// Add appends an externally built vehicle to the active set. A vehicle whose
// ID is already active is given the next free ID instead.
func (s *Simulation) Add(v *Vehicle) {
	if lo.ContainsBy(s.vehicles, func(other *Vehicle) bool { return other.id == v.id }) {
		s.logger.Warn("vehicle id already active, reassigning", "id", v.id, "new_id", s.nextID)
		v.id = s.nextID
	}
	s.vehicles = append(s.vehicles, v)
	s.stats.Spawned++
	if v.ID() >= s.nextID {
		s.nextID = v.ID() + 1
	}
}

// entryPoint returns the spawn position for dir: SpawnDistance before the
// center on the travel axis, on the right-hand lane center.
func (s *Simulation) entryPoint(dir Direction) Vec3 {
	sign := dir.Sign()
	along := -sign * s.lanes.SpawnDistance
	offset := -sign * s.lanes.Width / 2

	if dir.Axis() == AxisX {
		return Vec3{X: along, Y: s.lanes.SpawnHeight, Z: offset}
	}
	return Vec3{X: offset, Y: s.lanes.SpawnHeight, Z: along}
}

// prune removes vehicles at or beyond the world half-extent on either axis.
func (s *Simulation) prune() []uint64 {
	var removed []uint64
	s.vehicles = lo.Filter(s.vehicles, func(v *Vehicle, _ int) bool {
		if s.InBounds(v.Position()) {
			return true
		}
		removed = append(removed, v.ID())
		s.logger.Debug("vehicle removed", "tick", s.tick, "id", v.ID(),
			"x", v.Position().X, "z", v.Position().Z)
		return false
	})
	s.stats.Removed += len(removed)
	return removed
}

// InBounds reports whether p lies strictly inside the world on both axes.
func (s *Simulation) InBounds(p Vec3) bool {
	return math.Abs(p.X) < s.halfExtent && math.Abs(p.Z) < s.halfExtent
}

// Light returns the intersection's traffic light.
func (s *Simulation) Light() *TrafficLight {
	return s.light
}

// Vehicles returns the active vehicles in insertion order.
// The slice is owned by the simulation and must not be modified.
func (s *Simulation) Vehicles() []*Vehicle {
	return s.vehicles
}

// Tick returns the number of completed steps.
func (s *Simulation) Tick() uint64 {
	return s.tick
}

// HalfExtent returns the world half-extent.
func (s *Simulation) HalfExtent() float64 {
	return s.halfExtent
}

// LaneWidth returns the lane width.
func (s *Simulation) LaneWidth() float64 {
	return s.lanes.Width
}

// SpawnPolicy returns the spawn cap and probability.
func (s *Simulation) SpawnPolicy() Spawn {
	return s.spawn
}

// Stats returns a copy of the run counters.
func (s *Simulation) Stats() Stats {
	out := s.stats
	out.StopTicks = make(map[StopReason]int, len(s.stats.StopTicks))
	for k, v := range s.stats.StopTicks {
		out.StopTicks[k] = v
	}
	return out
}
