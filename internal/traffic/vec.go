package traffic

import "math"

// Vec3 is a point or direction in world space. Y is height and never
// affects the simulation; X and Z are the two horizontal axes.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

// Scale returns v * s.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// On returns the component along the given horizontal axis.
func (v Vec3) On(a Axis) float64 {
	if a == AxisX {
		return v.X
	}
	return v.Z
}

// HorizontalDist returns the Euclidean distance between v and o in the XZ plane.
func (v Vec3) HorizontalDist(o Vec3) float64 {
	dx := v.X - o.X
	dz := v.Z - o.Z
	return math.Sqrt(dx*dx + dz*dz)
}
