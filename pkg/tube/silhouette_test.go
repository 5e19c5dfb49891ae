package tube

import (
	gomath "math"
	"testing"

	"github.com/Faultbox/strokemesh/pkg/math"
)

func TestLoftCurveShortSegment(t *testing.T) {
	for n := 0; n < minSegmentKnots; n++ {
		for j := 0; j < n; j++ {
			if got := loftCurve(j, n); got != 0 {
				t.Errorf("loftCurve(%d, %d) = %v, want 0", j, n, got)
			}
		}
	}
	if got := loftRamp(2); got != 0 {
		t.Errorf("loftRamp(2) = %v, want 0", got)
	}
}

func TestLoftCurveLongSegment(t *testing.T) {
	n := 2 * numEndKnots
	if got := loftCurve(0, n); got != 0 {
		t.Errorf("loftCurve(0, %d) = %v, want 0", n, got)
	}
	if got := loftCurve(n-1, n); got != 0 {
		t.Errorf("loftCurve(%d, %d) = %v, want 0", n-1, n, got)
	}
	mid := loftCurve(n/2, n)
	if mid < 0.99 {
		t.Errorf("loftCurve(mid, %d) = %v, want ~1", n, mid)
	}
	if got := loftRamp(n); got != 1 {
		t.Errorf("loftRamp(%d) = %v, want 1", n, got)
	}

	// Monotonic rise over the head window
	prev := float32(-1)
	for j := 0; j <= n/2; j++ {
		v := loftCurve(j, n)
		if v < prev {
			t.Errorf("loftCurve(%d, %d) = %v, decreasing", j, n, v)
		}
		prev = v
	}
}

// A double-sided-taper segment below the minimum knot count collapses every
// ring to its center: the curve is exactly zero everywhere.
func TestDoubleTaperShortSegmentCollapses(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Shape = ShapeDoubleTaper
	cfg.EndCaps = false
	g := mustGenerator(t, cfg, straightSamples(3))
	g.Update(1)

	for i := 1; i < g.KnotCount(); i++ {
		k := g.KnotAt(i)
		frontStart := k.StartVert + k.VertCount - cfg.ringSize()
		for vi := frontStart; vi < frontStart+cfg.CirclePoints; vi++ {
			if got := g.Buffers().Positions[vi]; got.Distance(k.Pos) > 1e-5 {
				t.Errorf("knot %d vertex %d at %v, want collapsed to %v", i, vi, got, k.Pos)
			}
		}
	}
}

// A long double-sided-taper segment rises from zero radius at the head to
// the full radius mid-segment and back to zero at the tail.
func TestDoubleTaperLongSegment(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Shape = ShapeDoubleTaper
	cfg.EndCaps = false
	n := 2*numEndKnots + 3
	g := mustGenerator(t, cfg, straightSamples(n+1))
	g.Update(1)

	ringRadius := func(i int) float32 {
		k := g.KnotAt(i)
		frontStart := k.StartVert + k.VertCount - cfg.ringSize()
		return g.Buffers().Positions[frontStart].Distance(k.Pos)
	}

	if r := ringRadius(1); r > 1e-4 {
		t.Errorf("head ring radius = %v, want 0", r)
	}
	if r := ringRadius(g.KnotCount() - 1); r > 1e-4 {
		t.Errorf("tail ring radius = %v, want 0", r)
	}
	mid := ringRadius(1 + n/2)
	if gomath.Abs(float64(mid-cfg.BaseRadius)) > 1e-3 {
		t.Errorf("mid ring radius = %v, want %v", mid, cfg.BaseRadius)
	}
}

// The sine profile bulges mid-segment and pinches both ends.
func TestSinProfile(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Shape = ShapeSin
	cfg.EndCaps = false
	g := mustGenerator(t, cfg, straightSamples(9))
	g.Update(1)

	ringRadius := func(i int) float32 {
		k := g.KnotAt(i)
		frontStart := k.StartVert + k.VertCount - cfg.ringSize()
		return g.Buffers().Positions[frontStart].Distance(k.Pos)
	}

	head := ringRadius(1)
	mid := ringRadius(4)
	tail := ringRadius(8)
	if mid <= head || mid <= tail {
		t.Errorf("sin profile should bulge mid-segment: head %v mid %v tail %v", head, mid, tail)
	}
}

// The taper profile shrinks monotonically toward the tail.
func TestTaperProfile(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Shape = ShapeTaper
	cfg.EndCaps = false
	g := mustGenerator(t, cfg, straightSamples(8))
	g.Update(1)

	ringRadius := func(i int) float32 {
		k := g.KnotAt(i)
		frontStart := k.StartVert + k.VertCount - cfg.ringSize()
		return g.Buffers().Positions[frontStart].Distance(k.Pos)
	}

	prev := float32(gomath.Inf(1))
	for i := 1; i < g.KnotCount(); i++ {
		r := ringRadius(i)
		if r >= prev {
			t.Errorf("knot %d radius = %v, want strictly below %v", i, r, prev)
		}
		prev = r
	}
}

// The petal profile lifts rings along the stroke surface normal on top of
// the sine silhouette.
func TestPetalLift(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Shape = ShapePetal
	cfg.EndCaps = false
	g := mustGenerator(t, cfg, straightSamples(9))
	g.Update(1)

	// Mid-segment ring center should be displaced off the stroke line
	// along +Y (the up axis of an identity-seeded frame).
	k := g.KnotAt(6)
	frontStart := k.StartVert + k.VertCount - cfg.ringSize()
	var center math.Vec3
	for vi := frontStart; vi < frontStart+cfg.CirclePoints; vi++ {
		center = center.Add(g.Buffers().Positions[vi])
	}
	center = center.Scale(1 / float32(cfg.CirclePoints))
	if center.Y <= 0 {
		t.Errorf("petal ring center Y = %v, want > 0", center.Y)
	}
}

// Cap vertices are never reshaped by the silhouette pass.
func TestSilhouetteSkipsCaps(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Shape = ShapeSin
	g := mustGenerator(t, cfg, straightSamples(6))
	g.Update(1)

	k := g.KnotAt(1)
	capStart := k.StartVert + cfg.ringSize()
	tipWant := math.Vec3{Z: -cfg.BaseRadius * cfg.CapAspect}
	for vi := capStart; vi < capStart+cfg.capVerts(); vi++ {
		if got := g.Buffers().Positions[vi]; got.Distance(tipWant) > 1e-5 {
			t.Errorf("start cap vertex %d at %v, want untouched tip %v", vi, got, tipWant)
		}
	}
}

// The comet profile is deliberately unclamped: the raw sine value is used
// as the scale, thick at the head and thinning toward the tail.
func TestCometProfile(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Shape = ShapeComet
	g := mustGenerator(t, cfg, straightSamples(2))

	head := g.curveAt(0, 0, 2, nil)
	want := float32(gomath.Sin(1.55))
	if gomath.Abs(float64(head-want)) > 1e-5 {
		t.Errorf("comet curve at t=0 = %v, want sin(1.55) = %v", head, want)
	}

	tail := g.curveAt(1, 0, 2, nil)
	want = float32(gomath.Sin(3.05))
	if gomath.Abs(float64(tail-want)) > 1e-5 {
		t.Errorf("comet curve at t=1 = %v, want sin(3.05) = %v", tail, want)
	}

	// Monotonic decrease past the near-head peak
	prev := g.curveAt(0.05, 0, 2, nil)
	for i := 1; i <= 19; i++ {
		tt := 0.05 + float32(i)*0.05
		v := g.curveAt(tt, 0, 2, nil)
		if v >= prev {
			t.Errorf("comet curve at t=%v = %v, not decreasing from %v", tt, v, prev)
		}
		prev = v
	}
}

func TestCometThinsTowardTail(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Shape = ShapeComet
	cfg.EndCaps = false
	g := mustGenerator(t, cfg, straightSamples(9))
	g.Update(1)

	ringRadius := func(i int) float32 {
		k := g.KnotAt(i)
		frontStart := k.StartVert + k.VertCount - cfg.ringSize()
		return g.Buffers().Positions[frontStart].Distance(k.Pos)
	}

	head := ringRadius(1)
	tail := ringRadius(8)
	if tail >= head {
		t.Errorf("comet tail radius %v should be below head radius %v", tail, head)
	}
}
