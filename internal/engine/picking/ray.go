// Package picking maps pointer positions onto the sculpting reference plane.
package picking

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/clay/pkg/math"
)

// parallelEpsilon rejects rays that graze the plane.
const parallelEpsilon = 0.001

// Ray represents a ray in 3D space with origin and normalized direction.
type Ray struct {
	Origin    math.Vec3
	Direction math.Vec3
}

// Plane is an infinite plane through Point with unit Normal.
type Plane struct {
	Point  math.Vec3
	Normal math.Vec3
}

// ScreenToNDC converts pixel coordinates to normalized device coordinates
// (-1 to 1, Y up).
func ScreenToNDC(screenX, screenY, viewportW, viewportH float32) math.Vec2 {
	if viewportW <= 0 || viewportH <= 0 {
		return math.Vec2{}
	}
	return math.Vec2{
		X: 2*screenX/viewportW - 1,
		Y: 1 - 2*screenY/viewportH, // Flip Y
	}
}

// NDCToRay unprojects a normalized device coordinate into a world-space ray.
// invViewProj is the inverse of the view-projection matrix.
func NDCToRay(ndc math.Vec2, invViewProj math.Mat4) Ray {
	near := unproject(invViewProj, math.Vec4{ndc.X, ndc.Y, -1, 1})
	far := unproject(invViewProj, math.Vec4{ndc.X, ndc.Y, 1, 1})
	return Ray{Origin: near, Direction: far.Sub(near).Normalize()}
}

func unproject(inv math.Mat4, p math.Vec4) math.Vec3 {
	w := inv.MulVec4(p)
	if w[3] != 0 {
		w[0] /= w[3]
		w[1] /= w[3]
		w[2] /= w[3]
	}
	return math.Vec3{X: w[0], Y: w[1], Z: w[2]}
}

// At returns the point at parameter t along the ray.
func (r Ray) At(t float32) math.Vec3 {
	return r.Origin.Add(r.Direction.Scale(t))
}

// IntersectPlane returns the hit point with p. It fails when the ray is
// (nearly) parallel to the plane or the plane lies behind the origin.
func (r Ray) IntersectPlane(p Plane) (math.Vec3, bool) {
	denom := r.Direction.Dot(p.Normal)
	if math32.Abs(denom) < parallelEpsilon {
		return math.Vec3{}, false
	}

	t := p.Point.Sub(r.Origin).Dot(p.Normal) / denom
	if t < 0 {
		return math.Vec3{}, false
	}
	return r.At(t), true
}
