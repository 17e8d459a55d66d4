package traffic

import "math"

// Rules are the intersection geometry constants every vehicle decides against.
type Rules struct {
	ApproachZone         float64 // length of the stopping band before the center
	YellowCommitDistance float64 // closer than this to the center, a yellow is run
	LaneTolerance        float64 // perpendicular offset below which two vehicles share a lane
}

// DefaultRules returns the rules of the reference intersection.
func DefaultRules() Rules {
	return Rules{
		ApproachZone:         12.0,
		YellowCommitDistance: 6.0,
		LaneTolerance:        1.0,
	}
}

// Body holds the per-vehicle constants.
type Body struct {
	Speed        float64 // distance advanced per moving tick
	SafeDistance float64 // minimum gap kept to a vehicle ahead in the same lane
	Length       float64
	Width        float64
	Height       float64
}

// DefaultBody returns the reference vehicle.
func DefaultBody() Body {
	return Body{
		Speed:        0.2,
		SafeDistance: 5.0,
		Length:       4.0,
		Width:        2.0,
		Height:       1.5,
	}
}

// Vehicle is a single car travelling straight through the intersection.
// Its movement never changes after creation.
type Vehicle struct {
	id       uint64
	position Vec3
	movement Vec3
	body     Body
	rules    Rules
	reason   StopReason
}

// NewVehicle creates a vehicle at position heading along movement.
// movement must be an axis-aligned unit vector.
func NewVehicle(id uint64, position, movement Vec3, body Body, rules Rules) *Vehicle {
	return &Vehicle{
		id:       id,
		position: position,
		movement: movement,
		body:     body,
		rules:    rules,
	}
}

// ID returns the vehicle's identifier, unique within its simulation.
func (v *Vehicle) ID() uint64 {
	return v.id
}

// Position returns the current world position.
func (v *Vehicle) Position() Vec3 {
	return v.position
}

// Movement returns the unit movement vector.
func (v *Vehicle) Movement() Vec3 {
	return v.movement
}

// Direction returns the lane direction derived from the movement vector.
func (v *Vehicle) Direction() Direction {
	return DirectionOf(v.movement)
}

// Axis returns the travel axis.
func (v *Vehicle) Axis() Axis {
	if v.movement.X != 0 {
		return AxisX
	}
	return AxisZ
}

// Body returns the vehicle's constants.
func (v *Vehicle) Body() Body {
	return v.body
}

// Stopped reports whether the vehicle held its position on the last update.
func (v *Vehicle) Stopped() bool {
	return v.reason != StopNone
}

// StopReason returns why the vehicle held its position on the last update.
func (v *Vehicle) StopReason() StopReason {
	return v.reason
}

// Footprint returns the horizontal extent as (sizeX, sizeZ).
// Length lies along the travel axis and width across it.
func (v *Vehicle) Footprint() (sizeX, sizeZ float64) {
	if v.Axis() == AxisX {
		return v.body.Length, v.body.Width
	}
	return v.body.Width, v.body.Length
}

// Update decides whether the vehicle moves this tick and moves it.
// others is the full active set; the vehicle skips itself when scanning.
// The light check runs first and its reason wins over the following check.
func (v *Vehicle) Update(light *TrafficLight, others []*Vehicle) {
	reason := v.lightStop(light)
	if reason == StopNone {
		reason = v.followStop(others)
	}

	v.reason = reason
	if reason == StopNone {
		v.position = v.position.Add(v.movement.Scale(v.body.Speed))
	}
}

// lightStop applies the signal for the vehicle's axis inside the approach zone.
func (v *Vehicle) lightStop(light *TrafficLight) StopReason {
	axis := v.Axis()
	if !v.approaching(axis) {
		return StopNone
	}

	switch light.Phase(axis) {
	case PhaseRed:
		return StopRed
	case PhaseYellow:
		if math.Abs(v.position.On(axis)) > v.rules.YellowCommitDistance {
			return StopYellow
		}
	}
	return StopNone
}

// approaching reports whether the vehicle is inside the band before the
// center on the side it enters from. Both bounds are exclusive.
func (v *Vehicle) approaching(axis Axis) bool {
	pos := v.position.On(axis)
	zone := v.rules.ApproachZone
	if v.movement.On(axis) > 0 {
		return -zone < pos && pos < 0
	}
	return 0 < pos && pos < zone
}

// followStop scans the other vehicles for one ahead in the same lane that is
// closer than the safe distance. The first qualifying blocker ends the scan.
func (v *Vehicle) followStop(others []*Vehicle) StopReason {
	axis := v.Axis()
	perp := axis.Other()
	dir := v.movement.On(axis)

	for _, o := range others {
		if o == v {
			continue
		}

		sameLane := math.Abs(v.position.On(perp)-o.position.On(perp)) < v.rules.LaneTolerance
		if !sameLane {
			continue
		}

		delta := o.position.On(axis) - v.position.On(axis)
		ahead := (dir > 0 && delta > 0) || (dir < 0 && delta < 0)
		if !ahead {
			continue
		}

		if v.position.HorizontalDist(o.position) < v.body.SafeDistance {
			return StopCarAhead
		}
	}
	return StopNone
}
