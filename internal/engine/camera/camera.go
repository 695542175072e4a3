// Package camera provides the fixed viewing camera of the sculpting stage.
package camera

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/clay/pkg/math"
)

// Camera orbits a target point at a fixed pitch and yaw. Only the distance
// changes at runtime (mouse wheel zoom); the turntable spins the model, not
// the camera, so the reference plane stays put.
type Camera struct {
	Target math.Vec3

	Distance float32 // Distance from target
	Pitch    float32 // Elevation above the horizon (radians)
	Yaw      float32 // Rotation around Y (radians), 0 looks down -Z

	FovY   float32 // Vertical field of view (radians)
	Aspect float32 // Width / height
	Near   float32
	Far    float32

	MinDistance     float32
	MaxDistance     float32
	ZoomSensitivity float32
}

// New creates a camera framing a shape of roughly unit size at the origin.
func New() *Camera {
	return &Camera{
		Distance:        8,
		Pitch:           0.2,
		FovY:            math32.Pi / 4,
		Aspect:          16.0 / 9.0,
		Near:            0.1,
		Far:             100,
		MinDistance:     4,
		MaxDistance:     20,
		ZoomSensitivity: 0.1,
	}
}

// Position returns the camera position in world space.
func (c *Camera) Position() math.Vec3 {
	sinP, cosP := math32.Sincos(c.Pitch)
	sinY, cosY := math32.Sincos(c.Yaw)
	return math.Vec3{
		X: c.Target.X + c.Distance*cosP*sinY,
		Y: c.Target.Y + c.Distance*sinP,
		Z: c.Target.Z + c.Distance*cosP*cosY,
	}
}

// ViewMatrix returns the view matrix.
func (c *Camera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Position(), c.Target, math.Vec3{Y: 1})
}

// ProjectionMatrix returns the perspective projection.
func (c *Camera) ProjectionMatrix() math.Mat4 {
	return math.Perspective(c.FovY, c.Aspect, c.Near, c.Far)
}

// ViewProjection returns projection * view.
func (c *Camera) ViewProjection() math.Mat4 {
	return c.ProjectionMatrix().Mul(c.ViewMatrix())
}

// InverseViewProjection returns the matrix that unprojects NDC to world space.
func (c *Camera) InverseViewProjection() math.Mat4 {
	return c.ViewProjection().Inverse()
}

// SetViewport updates the aspect ratio from a drawable size.
func (c *Camera) SetViewport(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.Aspect = float32(width) / float32(height)
}

// HandleZoom updates distance based on scroll wheel delta.
func (c *Camera) HandleZoom(delta float32) {
	c.Distance -= delta * c.Distance * c.ZoomSensitivity
	c.Distance = math.Clamp(c.Distance, c.MinDistance, c.MaxDistance)
}
