package config

import (
	_ "embed"
)

//go:embed defaults/intersection.yaml
var defaultIntersectionYAML []byte

// DefaultTrafficConfig returns the reference intersection: a 60 tick/s
// light with 3 s greens and 1 s yellows, up to 12 cars.
func DefaultTrafficConfig() TrafficConfig {
	return TrafficConfig{
		Light: LightConfig{
			SwitchInterval: 180, // 3 seconds at 60 FPS
			YellowDuration: 60,  // 1 second at 60 FPS
		},
		Vehicle: VehicleConfig{
			Speed:        0.2,
			SafeDistance: 5.0,
			Length:       4.0,
			Width:        2.0,
			Height:       1.5,
		},
		Approach: ApproachConfig{
			Zone:                 12.0,
			YellowCommitDistance: 6.0,
			LaneTolerance:        1.0,
		},
		Lanes: LanesConfig{
			Width:         4.0,
			SpawnDistance: 20.0,
			SpawnHeight:   2.0,
		},
		Spawn: SpawnConfig{
			MaxVehicles: 12,
			Probability: 0.01,
		},
		World: WorldConfig{
			HalfExtent: 50.0,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultIntersectionYAML
}
