package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every error returned from Validate.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Validate checks that cfg describes a runnable intersection.
// All violations are reported together.
func (cfg TrafficConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(cfg.Light.SwitchInterval > 0, "light.switch_interval must be positive, got %d", cfg.Light.SwitchInterval)
	check(cfg.Light.YellowDuration > 0, "light.yellow_duration must be positive, got %d", cfg.Light.YellowDuration)

	check(cfg.Vehicle.Speed > 0, "vehicle.speed must be positive, got %g", cfg.Vehicle.Speed)
	check(cfg.Vehicle.SafeDistance > 0, "vehicle.safe_distance must be positive, got %g", cfg.Vehicle.SafeDistance)

	check(cfg.Approach.Zone > 0, "approach.zone must be positive, got %g", cfg.Approach.Zone)
	check(cfg.Approach.YellowCommitDistance >= 0 && cfg.Approach.YellowCommitDistance <= cfg.Approach.Zone,
		"approach.yellow_commit_distance must be within [0, zone], got %g", cfg.Approach.YellowCommitDistance)
	check(cfg.Approach.LaneTolerance > 0, "approach.lane_tolerance must be positive, got %g", cfg.Approach.LaneTolerance)

	check(cfg.Lanes.Width > 0, "lanes.width must be positive, got %g", cfg.Lanes.Width)
	check(cfg.World.HalfExtent > 0, "world.half_extent must be positive, got %g", cfg.World.HalfExtent)
	check(cfg.Lanes.SpawnDistance < cfg.World.HalfExtent,
		"lanes.spawn_distance (%g) must be inside world.half_extent (%g)", cfg.Lanes.SpawnDistance, cfg.World.HalfExtent)

	check(cfg.Spawn.MaxVehicles >= 0, "spawn.max_vehicles must not be negative, got %d", cfg.Spawn.MaxVehicles)
	check(cfg.Spawn.Probability >= 0 && cfg.Spawn.Probability <= 1,
		"spawn.probability must be within [0, 1], got %g", cfg.Spawn.Probability)

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
}
