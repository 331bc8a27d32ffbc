package physics

import "math"

// DirectionEpsilon is added to the separation before normalizing in
// Direction so coincident points never divide by zero.
const DirectionEpsilon = 1e-6

type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) Add(o Vec3) Vec3      { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3      { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3) Scale(k float64) Vec3 { return Vec3{v.X * k, v.Y * k, v.Z * k} }
func (v Vec3) Dot(o Vec3) float64   { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }
func (v Vec3) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}
func (v Vec3) Length() float64 { return math.Sqrt(v.LengthSquared()) }

// IsFinite reports whether no component is NaN or infinite.
func (v Vec3) IsFinite() bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) &&
		!math.IsNaN(v.Y) && !math.IsInf(v.Y, 0) &&
		!math.IsNaN(v.Z) && !math.IsInf(v.Z, 0)
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Vec3) float64 { return b.Sub(a).Length() }

// DistanceSquared returns the squared Euclidean distance between a and b.
func DistanceSquared(a, b Vec3) float64 { return b.Sub(a).LengthSquared() }

// Direction returns the unit vector pointing from a toward b. The length is
// guarded by DirectionEpsilon, so for a == b the result is the zero vector.
func Direction(a, b Vec3) Vec3 { return GuardedDirection(a, b, DirectionEpsilon) }

// GuardedDirection is Direction with an explicit guard added to the length.
// The engine passes its softening epsilon so both guards stay in step.
func GuardedDirection(a, b Vec3, eps float64) Vec3 {
	d := b.Sub(a)
	return d.Scale(1 / (d.Length() + eps))
}
