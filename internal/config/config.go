// Package config provides YAML-based simulation configuration loading and
// traffic density presets for the intersection.
package config

// TrafficConfig contains every tunable constant of the intersection simulation.
type TrafficConfig struct {
	Light    LightConfig    `yaml:"light"`
	Vehicle  VehicleConfig  `yaml:"vehicle"`
	Approach ApproachConfig `yaml:"approach"`
	Lanes    LanesConfig    `yaml:"lanes"`
	Spawn    SpawnConfig    `yaml:"spawn"`
	World    WorldConfig    `yaml:"world"`
}

// LightConfig defines the signal timing, in ticks.
type LightConfig struct {
	SwitchInterval int `yaml:"switch_interval"` // Ticks a green phase holds
	YellowDuration int `yaml:"yellow_duration"` // Ticks a yellow phase holds
}

// VehicleConfig defines the constants shared by every spawned vehicle.
type VehicleConfig struct {
	Speed        float64 `yaml:"speed"`         // Distance per moving tick
	SafeDistance float64 `yaml:"safe_distance"` // Minimum following gap
	Length       float64 `yaml:"length"`
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
}

// ApproachConfig defines how vehicles read the light and each other.
type ApproachConfig struct {
	Zone                 float64 `yaml:"zone"`                   // Stopping band before the center
	YellowCommitDistance float64 `yaml:"yellow_commit_distance"` // Closer than this, yellow is run
	LaneTolerance        float64 `yaml:"lane_tolerance"`         // Same-lane perpendicular threshold
}

// LanesConfig defines lane geometry and entry points.
type LanesConfig struct {
	Width         float64 `yaml:"width"`          // Lane width; lane centers sit at ±width/2
	SpawnDistance float64 `yaml:"spawn_distance"` // Distance from center where vehicles enter
	SpawnHeight   float64 `yaml:"spawn_height"`   // Y of spawned vehicles (cosmetic)
}

// SpawnConfig defines the random spawn policy.
type SpawnConfig struct {
	MaxVehicles int     `yaml:"max_vehicles"`
	Probability float64 `yaml:"probability"` // Chance per tick of spawning when below the cap
}

// WorldConfig defines the simulated area.
type WorldConfig struct {
	HalfExtent float64 `yaml:"half_extent"` // Vehicles at or beyond this on either axis are removed
}

// Preset represents a named traffic density.
type Preset string

const (
	PresetQuiet  Preset = "quiet"
	PresetNormal Preset = "normal"
	PresetRush   Preset = "rush"
	PresetFixed  Preset = "fixed"
)

// Presets lists every known preset in display order.
var Presets = []Preset{PresetQuiet, PresetNormal, PresetRush, PresetFixed}

// ParsePreset maps a flag value to a preset. The empty string means
// "use the config as loaded" and is returned with ok=true.
func ParsePreset(s string) (Preset, bool) {
	switch Preset(s) {
	case "", PresetQuiet, PresetNormal, PresetRush, PresetFixed:
		return Preset(s), true
	default:
		return "", false
	}
}

// ApplyPreset modifies the spawn policy of cfg for a density preset.
// PresetNormal and the empty preset leave the config untouched.
func ApplyPreset(cfg *TrafficConfig, preset Preset) {
	switch preset {
	case PresetQuiet:
		cfg.Spawn.MaxVehicles = 6
		cfg.Spawn.Probability = 0.005
	case PresetRush:
		cfg.Spawn.MaxVehicles = 24
		cfg.Spawn.Probability = 0.04
	case PresetFixed:
		cfg.Spawn.Probability = 0
	}
}
