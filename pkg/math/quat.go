package math

import "math"

// Quat represents a quaternion for 3D rotations.
// Components are stored as X, Y, Z, W where W is the scalar part.
// The zero value is NOT a valid rotation; stroke framing uses it as the
// "no frame" marker (see IsZero).
type Quat struct {
	X, Y, Z, W float32
}

// QuatIdentity returns an identity quaternion (no rotation).
func QuatIdentity() Quat {
	return Quat{X: 0, Y: 0, Z: 0, W: 1}
}

// QuatFromAxisAngle creates a quaternion from axis-angle rotation.
// axis should be normalized, angle is in radians.
func QuatFromAxisAngle(axis Vec3, angle float32) Quat {
	halfAngle := angle / 2
	s := float32(math.Sin(float64(halfAngle)))
	return Quat{
		X: axis.X * s,
		Y: axis.Y * s,
		Z: axis.Z * s,
		W: float32(math.Cos(float64(halfAngle))),
	}
}

// QuatFromTo returns the minimal-arc rotation taking unit vector from to
// unit vector to.
func QuatFromTo(from, to Vec3) Quat {
	d := from.Dot(to)
	if d >= 1-1e-6 {
		return QuatIdentity()
	}
	if d <= -1+1e-6 {
		// Antiparallel: rotate 180 degrees about any perpendicular axis.
		axis := Vec3{X: 1}.Cross(from)
		if axis.Length() < 1e-6 {
			axis = Vec3{Y: 1}.Cross(from)
		}
		return QuatFromAxisAngle(axis.Normalize(), float32(math.Pi))
	}
	axis := from.Cross(to)
	return Quat{X: axis.X, Y: axis.Y, Z: axis.Z, W: 1 + d}.Normalize()
}

// IsZero reports whether all components are exactly zero.
func (q Quat) IsZero() bool {
	return q.X == 0 && q.Y == 0 && q.Z == 0 && q.W == 0
}

// Normalize returns a normalized quaternion.
func (q Quat) Normalize() Quat {
	length := float32(math.Sqrt(float64(q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W)))
	if length < 0.0001 {
		return QuatIdentity()
	}
	invLen := 1.0 / length
	return Quat{
		X: q.X * invLen,
		Y: q.Y * invLen,
		Z: q.Z * invLen,
		W: q.W * invLen,
	}
}

// Dot returns the dot product of two quaternions.
func (q Quat) Dot(other Quat) float32 {
	return q.X*other.X + q.Y*other.Y + q.Z*other.Z + q.W*other.W
}

// AngleTo returns the absolute rotation angle in radians between two unit
// quaternions, in [0, pi].
func (q Quat) AngleTo(other Quat) float32 {
	d := q.Dot(other)
	if d < 0 {
		d = -d
	}
	if d > 1 {
		d = 1
	}
	return 2 * float32(math.Acos(float64(d)))
}

// Mul multiplies two quaternions (combines rotations).
func (q Quat) Mul(other Quat) Quat {
	return Quat{
		X: q.W*other.X + q.X*other.W + q.Y*other.Z - q.Z*other.Y,
		Y: q.W*other.Y - q.X*other.Z + q.Y*other.W + q.Z*other.X,
		Z: q.W*other.Z + q.X*other.Y - q.Y*other.X + q.Z*other.W,
		W: q.W*other.W - q.X*other.X - q.Y*other.Y - q.Z*other.Z,
	}
}

// RotateVec3 rotates v by q. q must be normalized.
func (q Quat) RotateVec3(v Vec3) Vec3 {
	u := Vec3{X: q.X, Y: q.Y, Z: q.Z}
	t := u.Cross(v).Scale(2)
	return v.Add(t.Scale(q.W)).Add(u.Cross(t))
}

// Right returns the rotated +X axis.
func (q Quat) Right() Vec3 {
	return q.RotateVec3(Vec3{X: 1})
}

// Up returns the rotated +Y axis.
func (q Quat) Up() Vec3 {
	return q.RotateVec3(Vec3{Y: 1})
}

// Forward returns the rotated +Z axis.
func (q Quat) Forward() Vec3 {
	return q.RotateVec3(Vec3{Z: 1})
}

// Slerp performs spherical linear interpolation between two quaternions.
// t should be in range [0, 1].
func (q Quat) Slerp(other Quat, t float32) Quat {
	dot := q.Dot(other)

	// If dot is negative, negate one quaternion to take the shorter path
	if dot < 0 {
		other = Quat{X: -other.X, Y: -other.Y, Z: -other.Z, W: -other.W}
		dot = -dot
	}

	// If quaternions are very close, use linear interpolation to avoid
	// division by zero
	if dot > 0.9995 {
		return Quat{
			X: q.X + t*(other.X-q.X),
			Y: q.Y + t*(other.Y-q.Y),
			Z: q.Z + t*(other.Z-q.Z),
			W: q.W + t*(other.W-q.W),
		}.Normalize()
	}

	theta0 := float32(math.Acos(float64(dot)))
	theta := theta0 * t
	sinTheta := float32(math.Sin(float64(theta)))
	sinTheta0 := float32(math.Sin(float64(theta0)))

	s0 := float32(math.Cos(float64(theta))) - dot*sinTheta/sinTheta0
	s1 := sinTheta / sinTheta0

	return Quat{
		X: q.X*s0 + other.X*s1,
		Y: q.Y*s0 + other.Y*s1,
		Z: q.Z*s0 + other.Z*s1,
		W: q.W*s0 + other.W*s1,
	}
}
