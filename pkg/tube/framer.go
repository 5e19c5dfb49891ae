package tube

import (
	gomath "math"

	"github.com/Faultbox/strokemesh/pkg/math"
)

// minMotionInput is the minimum knot-to-knot distance, in input units, below
// which a knot is classified as a strip break instead of receiving geometry.
const minMotionInput = 1e-4

// frameKnots computes the orientation frame and break classification for
// knots [start, end). Each knot also gets a provisional vertex/triangle count
// of 0 (break) or 1 (geometry); exact counts are resolved during emission.
//
// Returns true when knot start itself was classified as a break, so the
// caller can re-anchor the recomputation one knot earlier.
func (g *Generator) frameKnots(start int) (breakAtStart bool) {
	minMotion := minMotionInput * g.cfg.UnitScale

	for i := start; i < len(g.knots); i++ {
		k := &g.knots[i]
		prev := &g.knots[i-1]

		move := k.Pos.Sub(prev.Pos)
		k.Length = move.Length()

		brk := k.Length < minMotion
		if !brk {
			tangent := move.Scale(1 / k.Length)
			frame := g.propagateFrame(prev, i, tangent)

			// Adaptive hinge: thin or fast strokes tolerate less angular
			// change before breaking. Preview strokes never angle-break,
			// and there is nothing to compare against until the previous
			// knot has geometry.
			if !g.cfg.Preview && prev.HasGeometry() {
				diameter := 2 * g.radius(k)
				breakAngle := float32(gomath.Atan(float64(k.Length/diameter))) * g.cfg.BreakAngleScale
				if prev.Frame.AngleTo(frame) > breakAngle {
					brk = true
				}
			}
			if !brk {
				k.Frame = frame
			}
		}

		if brk {
			// Geometry generation treats a zero frame as "no cross-section".
			k.Frame = math.Quat{}
			k.VertCount = 0
			k.TriCount = 0
			if i == start {
				breakAtStart = true
			}
		} else {
			k.VertCount = 1
			k.TriCount = 1
		}
	}
	return breakAtStart
}

// propagateFrame derives the knot's orientation frame as the minimal
// rotation aligning the previous frame's forward axis to the new tangent.
// Carrying the previous frame forward avoids twist accumulation along the
// path; at a segment start (no previous frame) the raw orientation hint of
// the sample seeds the frame instead.
func (g *Generator) propagateFrame(prev *Knot, i int, tangent math.Vec3) math.Quat {
	base := prev.Frame
	if base.IsZero() {
		base = g.src.At(i).Orientation
		if base.IsZero() {
			base = math.QuatIdentity()
		}
	}
	delta := math.QuatFromTo(base.Forward(), tangent)
	return delta.Mul(base).Normalize()
}
