// Package traffic implements the intersection simulation: a two-phase traffic
// light and the vehicles that queue, follow and cross under it.
// It has no terminal or CLI dependencies so it stays pure and testable.
package traffic

// Axis is one of the two perpendicular travel directions through the intersection.
type Axis uint8

const (
	AxisX Axis = iota
	AxisZ
)

// String returns the axis name.
func (a Axis) String() string {
	switch a {
	case AxisX:
		return "X"
	case AxisZ:
		return "Z"
	default:
		return "Unknown"
	}
}

// Other returns the perpendicular axis.
func (a Axis) Other() Axis {
	if a == AxisX {
		return AxisZ
	}
	return AxisX
}

// Phase is the signal shown to one axis.
type Phase uint8

const (
	PhaseRed Phase = iota
	PhaseYellow
	PhaseGreen
)

// String returns the phase name as shown in the debug overlay.
func (p Phase) String() string {
	switch p {
	case PhaseRed:
		return "RED"
	case PhaseYellow:
		return "YELLOW"
	case PhaseGreen:
		return "GREEN"
	default:
		return "UNKNOWN"
	}
}

// StopReason explains why a vehicle did not move this tick.
// StopNone means the vehicle moved, so a stopped vehicle always carries a reason.
type StopReason uint8

const (
	StopNone StopReason = iota
	StopRed
	StopYellow
	StopCarAhead
)

// String returns the label drawn above a stopped vehicle.
func (r StopReason) String() string {
	switch r {
	case StopNone:
		return "NONE"
	case StopRed:
		return "RED"
	case StopYellow:
		return "YELLOW"
	case StopCarAhead:
		return "CAR AHEAD"
	default:
		return "UNKNOWN"
	}
}

// StopReasons lists every reason a vehicle can be stopped for.
var StopReasons = []StopReason{StopRed, StopYellow, StopCarAhead}

// Direction is one of the four lane entry points.
type Direction uint8

const (
	DirPosX Direction = iota // enters at -x, travels towards +x
	DirNegX                  // enters at +x, travels towards -x
	DirPosZ                  // enters at -z, travels towards +z
	DirNegZ                  // enters at +z, travels towards -z
)

// DirectionCount is the number of lane entry points the spawn policy picks from.
const DirectionCount = 4

// String returns a compact signed-axis name.
func (d Direction) String() string {
	switch d {
	case DirPosX:
		return "+x"
	case DirNegX:
		return "-x"
	case DirPosZ:
		return "+z"
	case DirNegZ:
		return "-z"
	default:
		return "?"
	}
}

// Axis returns the travel axis for this direction.
func (d Direction) Axis() Axis {
	if d == DirPosX || d == DirNegX {
		return AxisX
	}
	return AxisZ
}

// Sign returns +1 when travelling towards the positive end of the axis, -1 otherwise.
func (d Direction) Sign() float64 {
	if d == DirPosX || d == DirPosZ {
		return 1
	}
	return -1
}

// Movement returns the unit movement vector for this direction.
func (d Direction) Movement() Vec3 {
	if d.Axis() == AxisX {
		return Vec3{X: d.Sign()}
	}
	return Vec3{Z: d.Sign()}
}

// DirectionOf recovers the direction from a movement vector.
// The nonzero horizontal component decides the axis, its sign the direction.
func DirectionOf(movement Vec3) Direction {
	if movement.X != 0 {
		if movement.X > 0 {
			return DirPosX
		}
		return DirNegX
	}
	if movement.Z > 0 {
		return DirPosZ
	}
	return DirNegZ
}
