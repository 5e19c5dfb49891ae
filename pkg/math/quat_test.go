package math

import (
	"math"
	"testing"
)

func TestQuatIdentity(t *testing.T) {
	q := QuatIdentity()
	if q.X != 0 || q.Y != 0 || q.Z != 0 || q.W != 1 {
		t.Errorf("Identity quaternion should be (0,0,0,1), got (%v,%v,%v,%v)", q.X, q.Y, q.Z, q.W)
	}
}

func TestQuatNormalize(t *testing.T) {
	q := Quat{X: 1, Y: 2, Z: 3, W: 4}
	n := q.Normalize()

	length := float32(math.Sqrt(float64(n.X*n.X + n.Y*n.Y + n.Z*n.Z + n.W*n.W)))
	if math.Abs(float64(length-1.0)) > 0.0001 {
		t.Errorf("Normalized quaternion length should be 1, got %v", length)
	}
}

func TestQuatRotateVec3(t *testing.T) {
	// 90 degrees around Y takes +Z to +X
	q := QuatFromAxisAngle(Vec3{Y: 1}, float32(math.Pi/2))
	got := q.RotateVec3(Vec3{Z: 1})
	want := Vec3{X: 1}
	if got.Distance(want) > 0.0001 {
		t.Errorf("RotateVec3(+Z) = %v, want %v", got, want)
	}
}

func TestQuatFromTo(t *testing.T) {
	from := Vec3{Z: 1}
	to := Vec3{X: 1}
	q := QuatFromTo(from, to)
	got := q.RotateVec3(from)
	if got.Distance(to) > 0.0001 {
		t.Errorf("QuatFromTo rotation takes from to %v, want %v", got, to)
	}

	// Parallel vectors produce the identity
	qi := QuatFromTo(from, from)
	if math.Abs(float64(qi.W-1)) > 0.0001 {
		t.Errorf("QuatFromTo(v, v) = %v, want identity", qi)
	}

	// Antiparallel vectors still produce a valid 180 degree rotation
	qa := QuatFromTo(from, from.Neg())
	got = qa.RotateVec3(from)
	if got.Distance(from.Neg()) > 0.0001 {
		t.Errorf("QuatFromTo(v, -v) rotation takes v to %v, want %v", got, from.Neg())
	}
}

func TestQuatAngleTo(t *testing.T) {
	q1 := QuatIdentity()
	q2 := QuatFromAxisAngle(Vec3{Y: 1}, float32(math.Pi/3))

	got := q1.AngleTo(q2)
	want := float32(math.Pi / 3)
	if math.Abs(float64(got-want)) > 0.001 {
		t.Errorf("AngleTo() = %v, want %v", got, want)
	}

	// Angle to self is zero
	if a := q2.AngleTo(q2); a > 0.001 {
		t.Errorf("AngleTo(self) = %v, want 0", a)
	}
}

func TestQuatAxes(t *testing.T) {
	// Identity frame axes are the world axes
	q := QuatIdentity()
	if q.Right().Distance(Vec3{X: 1}) > 0.0001 {
		t.Errorf("Right() = %v, want +X", q.Right())
	}
	if q.Up().Distance(Vec3{Y: 1}) > 0.0001 {
		t.Errorf("Up() = %v, want +Y", q.Up())
	}
	if q.Forward().Distance(Vec3{Z: 1}) > 0.0001 {
		t.Errorf("Forward() = %v, want +Z", q.Forward())
	}
}

func TestQuatSlerp(t *testing.T) {
	q1 := QuatIdentity()
	q2 := QuatFromAxisAngle(Vec3{X: 0, Y: 1, Z: 0}, float32(math.Pi/2))

	result0 := q1.Slerp(q2, 0)
	if math.Abs(float64(result0.W-q1.W)) > 0.001 {
		t.Errorf("Slerp at t=0 should equal q1")
	}

	result1 := q1.Slerp(q2, 1)
	if math.Abs(float64(result1.W-q2.W)) > 0.001 {
		t.Errorf("Slerp at t=1 should equal q2")
	}

	// For a 90 degree rotation, halfway should be 45 degrees
	result5 := q1.Slerp(q2, 0.5)
	expectedW := float32(math.Cos(float64(math.Pi / 8)))
	if math.Abs(float64(result5.W-expectedW)) > 0.01 {
		t.Errorf("Slerp at t=0.5: expected W ~%v, got %v", expectedW, result5.W)
	}
}
