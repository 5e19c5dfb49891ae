package tube

import (
	gomath "math"

	"github.com/Faultbox/strokemesh/pkg/math"
)

const (
	// numEndKnots is the head/tail taper window of the double-sided taper.
	numEndKnots = 5
	// minSegmentKnots is the knot count below which the double-sided taper
	// produces no visible shape at all.
	minSegmentKnots = 3
)

// applySilhouette reshapes the tube's radius along each maximal contiguous
// geometry segment from the changed knot onward. Vertex positions are fully
// recomputed from the cached displacement directions, never from the stored
// normals, so the pass is idempotent and safely re-runnable over any suffix.
func (g *Generator) applySilhouette(start int) {
	if g.cfg.Shape == ShapeNone {
		return
	}
	if start < 1 {
		start = 1
	}
	i := start
	for i > 1 && g.knots[i].HasGeometry() && g.knots[i-1].HasGeometry() {
		i--
	}

	for ; i < len(g.knots); i++ {
		if !g.knots[i].HasGeometry() {
			continue
		}
		end := i
		for end+1 < len(g.knots) && g.knots[end+1].HasGeometry() {
			end++
		}
		g.shapeSegment(i, end)
		i = end
	}
}

// shapeSegment applies the configured profile to segment knots [s, e].
func (g *Generator) shapeSegment(s, e int) {
	cfg := &g.cfg
	ring := cfg.ringSize()
	capV := cfg.capVerts()
	n := e - s + 1

	// Total arc length includes the distance to the knot just past the
	// segment when one exists; break points have non-zero length, which
	// keeps t strictly below 1 inside the segment.
	var total float32
	for j := s; j <= e; j++ {
		total += g.knots[j].Length
	}
	if e+1 < len(g.knots) {
		total += g.knots[e+1].Length
	}

	var loft *loftProfile
	if cfg.Shape == ShapeDoubleTaper {
		loft = &loftProfile{knots: n, partial: g.spawnProgress()}
	}

	var arc float32
	for j := s; j <= e; j++ {
		k := &g.knots[j]
		up := k.Frame.Up()

		if j == s {
			// The back circle of the segment sits at the previous knot.
			prev := &g.knots[j-1]
			curve := g.curveAt(0, 0, n, loft)
			g.shapeRing(k.StartVert, prev.Pos, g.radius(prev), curve, 0, up, prev.Pressure)
		}

		arc += k.Length
		var t float32
		if total > 0 {
			t = arc / total
		}
		curve := g.curveAt(t, j-s, n, loft)

		frontStart := k.StartVert
		if j == s {
			// Skip the back ring and, when caps are enabled, the start-cap
			// vertices. Cap vertices are never reshaped.
			frontStart += ring + capV
		}
		g.shapeRing(frontStart, k.Pos, g.radius(k), curve, t, up, k.Pressure)
	}
}

// shapeRing recomputes the positions of one ring from the cached outward
// directions: pos = center + radius*dir*curve, plus the petal-only offset
// along the stroke surface normal.
func (g *Generator) shapeRing(base int, center math.Vec3, radius, curve, t float32, up math.Vec3, pressure float32) {
	cfg := &g.cfg
	ring := cfg.ringSize()

	var petal math.Vec3
	if cfg.Shape == ShapePetal {
		lift := float32(gomath.Pow(float64(t), float64(cfg.PetalExponent))) * cfg.PetalAmount * pressure
		petal = up.Scale(lift)
	}

	scaled := radius * curve
	for vi := base; vi < base+ring; vi++ {
		g.buf.Positions[vi] = center.Add(g.dirs[vi].Scale(scaled)).Add(petal)
	}
}

// curveAt evaluates the configured profile at normalized arc position t.
// knotIndex and segKnots drive the knot-count-based double-sided taper.
func (g *Generator) curveAt(t float32, knotIndex, segKnots int, loft *loftProfile) float32 {
	switch g.cfg.Shape {
	case ShapeDoubleTaper:
		return loft.value(knotIndex)
	case ShapeSin, ShapePetal:
		return abs32(float32(gomath.Sin(float64(t) * gomath.Pi)))
	case ShapeComet:
		// Thick at the head, tapering tail. Intentionally not clamped to
		// [0,1]; over-range displacement is part of the contract.
		return float32(gomath.Sin(float64(1.5*t + 1.55)))
	case ShapeTaper:
		return g.cfg.TaperScale * (1 - t)
	}
	return 1
}

// loftProfile is the short-lived per-segment state of the double-sided
// taper. The curve is computed for the current knot count and for the count
// as if one more knot had been added, then blended by the partial progress
// toward the next knot spawn. That eliminates popping as knots are discretely
// added during live drawing.
type loftProfile struct {
	knots   int
	partial float32
}

func (p *loftProfile) value(knotIndex int) float32 {
	cur := loftCurve(knotIndex, p.knots)
	next := loftCurve(knotIndex, p.knots+1)
	return (cur + (next-cur)*p.partial) * loftRamp(p.knots)
}

// loftCurve tapers both ends of an n-knot segment over a window of up to
// numEndKnots knots.
func loftCurve(knotIndex, n int) float32 {
	if n < minSegmentKnots {
		return 0
	}
	w := numEndKnots
	if half := (n - 1) / 2; half < w {
		w = half
	}
	if w == 0 {
		return 0
	}
	d := knotIndex
	if tail := n - 1 - knotIndex; tail < d {
		d = tail
	}
	v := float32(d) / float32(w)
	if v > 1 {
		v = 1
	}
	return v
}

// loftRamp attenuates short segments: exactly zero below minSegmentKnots,
// ramping to full strength by 2*numEndKnots knots.
func loftRamp(n int) float32 {
	if n < minSegmentKnots {
		return 0
	}
	hi := 2 * numEndKnots
	if n >= hi {
		return 1
	}
	return float32(n-minSegmentKnots+1) / float32(hi-minSegmentKnots+1)
}

func abs32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
