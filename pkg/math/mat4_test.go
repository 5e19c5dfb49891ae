package math

import (
	"math"
	"testing"
)

// transformPoint applies m to a point with w = 1, column-major.
func transformPoint(m Mat4, p Vec3) Vec3 {
	return Vec3{
		X: m[0]*p.X + m[4]*p.Y + m[8]*p.Z + m[12],
		Y: m[1]*p.X + m[5]*p.Y + m[9]*p.Z + m[13],
		Z: m[2]*p.X + m[6]*p.Y + m[10]*p.Z + m[14],
	}
}

func TestIdentityMul(t *testing.T) {
	m := Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		1, 2, 3, 1,
	}
	got := Identity().Mul(m)
	for i := 0; i < 16; i++ {
		if math.Abs(float64(got[i]-m[i])) > 0.0001 {
			t.Errorf("Identity.Mul(m) element %d: got %v, want %v", i, got[i], m[i])
		}
	}
}

func TestMulApplies(t *testing.T) {
	translate := Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		1, 2, 3, 1,
	}
	// Doubling scale after translation: point maps to 2*(p + t)
	scale := Mat4{
		2, 0, 0, 0,
		0, 2, 0, 0,
		0, 0, 2, 0,
		0, 0, 0, 1,
	}
	got := transformPoint(scale.Mul(translate), Vec3{10, 20, 30})
	want := Vec3{22, 44, 66}
	if got.Distance(want) > 0.0001 {
		t.Errorf("scale.Mul(translate) applied = %v, want %v", got, want)
	}
}

func TestLookAtViewSpace(t *testing.T) {
	// Camera at +Z looking at origin: origin maps to -distance on view Z
	view := LookAt(Vec3{Z: 10}, Vec3{}, Vec3{Y: 1})
	got := transformPoint(view, Vec3{})
	if math.Abs(float64(got.Z+10)) > 0.001 {
		t.Errorf("LookAt view Z of origin = %v, want -10", got.Z)
	}
}
