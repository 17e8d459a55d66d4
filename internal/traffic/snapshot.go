package traffic

// LightSnapshot is the read-only view of the signal for one tick.
type LightSnapshot struct {
	X             Phase
	Z             Phase
	Timer         int
	Transitioning bool
}

// VehicleSnapshot is the read-only view of one vehicle for one tick.
type VehicleSnapshot struct {
	ID         uint64
	Direction  Direction
	Axis       Axis
	Position   Vec3
	SizeX      float64 // footprint along world X
	SizeZ      float64 // footprint along world Z
	Stopped    bool
	StopReason StopReason
}

// Snapshot captures everything the presentation layer reads each tick.
// It is a plain value so determinism tests can compare two runs directly.
type Snapshot struct {
	Tick     uint64
	Light    LightSnapshot
	Vehicles []VehicleSnapshot
}

// Snapshot returns the current state.
func (s *Simulation) Snapshot() Snapshot {
	vehicles := make([]VehicleSnapshot, len(s.vehicles))
	for i, v := range s.vehicles {
		sizeX, sizeZ := v.Footprint()
		vehicles[i] = VehicleSnapshot{
			ID:         v.ID(),
			Direction:  v.Direction(),
			Axis:       v.Axis(),
			Position:   v.Position(),
			SizeX:      sizeX,
			SizeZ:      sizeZ,
			Stopped:    v.Stopped(),
			StopReason: v.StopReason(),
		}
	}

	return Snapshot{
		Tick: s.tick,
		Light: LightSnapshot{
			X:             s.light.XPhase(),
			Z:             s.light.ZPhase(),
			Timer:         s.light.Timer(),
			Transitioning: s.light.Transitioning(),
		},
		Vehicles: vehicles,
	}
}
