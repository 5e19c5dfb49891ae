// Package tube incrementally generates a tube-shaped triangle mesh along a
// growing polyline of stroke samples. Geometry is produced per knot into
// shared vertex/index buffers and can be extended or re-emitted in real time
// while a stroke is still being drawn.
package tube

import "github.com/Faultbox/strokemesh/pkg/math"

// Knot is one sample point along the stroke. Knots live in a contiguous
// arena inside the Generator; the "previous knot" relationship is always
// index arithmetic, never a pointer. Knot 0 is a sentinel that never owns
// geometry and serves as the previous point for the first real segment.
type Knot struct {
	Pos      math.Vec3
	Pressure float32

	// Frame is the orientation frame of the knot. The zero quaternion marks
	// a strip break: the knot owns no cross-section.
	Frame math.Quat

	// Length is the distance from the previous knot.
	Length float32

	// Buffer ranges exclusively owned by this knot. Ranges are contiguous
	// and non-overlapping across the knot sequence, in ascending order.
	StartVert, VertCount int
	StartTri, TriCount   int
}

// HasGeometry reports whether the knot owns at least one vertex.
func (k Knot) HasGeometry() bool {
	return k.VertCount > 0
}

// hasFrame reports whether the knot carries a valid orientation frame.
func (k Knot) hasFrame() bool {
	return !k.Frame.IsZero()
}
