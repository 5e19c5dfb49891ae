// Package picking converts screen positions into world-space rays for the
// stroke viewer's drawing plane.
package picking

import (
	gomath "math"

	"github.com/Faultbox/strokemesh/pkg/math"
)

// Ray is a world-space ray with a normalized direction.
type Ray struct {
	Origin    math.Vec3
	Direction math.Vec3
}

// ScreenToRay builds a ray from the camera through the given pixel.
// fovY is the vertical field of view in radians; eye and target define the
// camera the same way the view matrix does.
func ScreenToRay(screenX, screenY, viewportW, viewportH, fovY float32, eye, target math.Vec3) Ray {
	ndcX := 2.0*screenX/viewportW - 1.0
	ndcY := 1.0 - 2.0*screenY/viewportH // flip Y

	forward := target.Sub(eye).Normalize()
	right := forward.Cross(math.Vec3{Y: 1}).Normalize()
	up := right.Cross(forward)

	tanHalf := float32(gomath.Tan(float64(fovY) / 2))
	aspect := viewportW / viewportH

	dir := forward.
		Add(right.Scale(ndcX * tanHalf * aspect)).
		Add(up.Scale(ndcY * tanHalf)).
		Normalize()

	return Ray{Origin: eye, Direction: dir}
}

// IntersectPlaneY intersects the ray with the horizontal plane at planeY.
// Reports false when the ray is parallel to the plane or the hit lies
// behind the origin.
func (r Ray) IntersectPlaneY(planeY float32) (math.Vec3, bool) {
	if gomath.Abs(float64(r.Direction.Y)) < 1e-3 {
		return math.Vec3{}, false
	}

	t := (planeY - r.Origin.Y) / r.Direction.Y
	if t < 0 {
		return math.Vec3{}, false
	}

	return r.Origin.Add(r.Direction.Scale(t)), true
}
