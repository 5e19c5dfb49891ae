// Package camera provides the orbit camera used by the stroke viewer.
package camera

import (
	gomath "math"

	"github.com/Faultbox/strokemesh/pkg/math"
)

// OrbitCamera orbits around a center point.
type OrbitCamera struct {
	Center math.Vec3

	// Spherical coordinates
	Distance float32
	Pitch    float32 // vertical angle, radians
	Yaw      float32 // horizontal angle, radians

	// Constraints
	MinDistance float32
	MaxDistance float32
	MinPitch    float32
	MaxPitch    float32

	// Sensitivity
	DragSensitivity float32
	ZoomSensitivity float32
}

// NewOrbitCamera creates an orbit camera framed for a tabletop-scale scene.
func NewOrbitCamera() *OrbitCamera {
	return &OrbitCamera{
		Distance:        15.0,
		Pitch:           0.6,
		Yaw:             0.0,
		MinDistance:     0.5,
		MaxDistance:     200.0,
		MinPitch:        -1.5,
		MaxPitch:        1.5,
		DragSensitivity: 0.005,
		ZoomSensitivity: 0.1,
	}
}

// Position returns the camera position in world space.
func (c *OrbitCamera) Position() math.Vec3 {
	x := c.Distance * float32(gomath.Cos(float64(c.Pitch))*gomath.Sin(float64(c.Yaw)))
	y := c.Distance * float32(gomath.Sin(float64(c.Pitch)))
	z := c.Distance * float32(gomath.Cos(float64(c.Pitch))*gomath.Cos(float64(c.Yaw)))

	return c.Center.Add(math.Vec3{X: x, Y: y, Z: z})
}

// ViewMatrix returns the view matrix for this camera.
func (c *OrbitCamera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Position(), c.Center, math.Vec3{Y: 1})
}

// HandleDrag updates rotation based on mouse drag delta.
func (c *OrbitCamera) HandleDrag(deltaX, deltaY float32) {
	c.Yaw -= deltaX * c.DragSensitivity
	c.Pitch += deltaY * c.DragSensitivity

	if c.Pitch < c.MinPitch {
		c.Pitch = c.MinPitch
	}
	if c.Pitch > c.MaxPitch {
		c.Pitch = c.MaxPitch
	}
}

// HandleZoom updates distance based on scroll wheel delta.
func (c *OrbitCamera) HandleZoom(delta float32) {
	c.Distance -= delta * c.Distance * c.ZoomSensitivity
	if c.Distance < c.MinDistance {
		c.Distance = c.MinDistance
	}
	if c.Distance > c.MaxDistance {
		c.Distance = c.MaxDistance
	}
}

// HandlePan moves the center point in the camera's horizontal plane.
func (c *OrbitCamera) HandlePan(forward, right float32) {
	// Speed scales with distance for consistent feel
	speed := c.Distance * 0.01

	dirX := float32(gomath.Sin(float64(c.Yaw)))
	dirZ := float32(gomath.Cos(float64(c.Yaw)))

	rightX := float32(gomath.Cos(float64(c.Yaw)))
	rightZ := float32(-gomath.Sin(float64(c.Yaw)))

	c.Center.X += (-dirX*forward + rightX*right) * speed
	c.Center.Z += (-dirZ*forward + rightZ*right) * speed
}

// FitToBounds frames the camera on the given bounding box.
func (c *OrbitCamera) FitToBounds(min, max math.Vec3) {
	c.Center = min.Add(max).Scale(0.5)

	size := max.Sub(min).Length()
	if size < 1 {
		size = 1
	}
	c.Distance = size * 1.5
	if c.Distance < c.MinDistance {
		c.Distance = c.MinDistance
	}
	if c.Distance > c.MaxDistance {
		c.Distance = c.MaxDistance
	}
}
