package picking

import "github.com/Faultbox/clay/pkg/math"

// View is the camera state the mapper needs.
type View interface {
	Position() math.Vec3
	InverseViewProjection() math.Mat4
}

// Target is a pointer hit on the reference plane.
type Target struct {
	// Local is the hit in the mesh's axis frame: X is the signed distance
	// from the rotation axis within the plane, Y the height above the mesh
	// origin, Z always 0.
	Local math.Vec3
	// World is the hit in world space, for placing the cursor indicator.
	World math.Vec3
}

// Mapper intersects pointer rays with an invisible plane that contains the
// mesh's vertical rotation axis and faces the camera.
type Mapper struct {
	invViewProj math.Mat4
	plane       Plane
	right       math.Vec3 // in-plane horizontal unit vector
}

// NewMapper builds a mapper for the given camera and mesh origin.
func NewMapper(view View, origin math.Vec3) *Mapper {
	m := &Mapper{}
	m.Update(view, origin)
	return m
}

// Update recomputes the plane after the camera or mesh origin moved.
func (m *Mapper) Update(view View, origin math.Vec3) {
	m.invViewProj = view.InverseViewProjection()

	toCamera := view.Position().Sub(origin)
	normal := math.Vec3{X: toCamera.X, Z: toCamera.Z}.Normalize()
	if normal == (math.Vec3{}) {
		// Camera straight above the axis: any vertical plane works.
		normal = math.Vec3{Z: 1}
	}

	m.plane = Plane{Point: origin, Normal: normal}
	m.right = math.Vec3{Y: 1}.Cross(normal)
}

// Plane returns the current reference plane.
func (m *Mapper) Plane() Plane {
	return m.plane
}

// Map converts a pointer position in normalized device coordinates into a
// target. ok is false when the view ray misses the plane.
func (m *Mapper) Map(ndc math.Vec2) (target Target, ok bool) {
	hit, ok := NDCToRay(ndc, m.invViewProj).IntersectPlane(m.plane)
	if !ok {
		return Target{}, false
	}

	rel := hit.Sub(m.plane.Point)
	return Target{
		Local: math.Vec3{X: rel.Dot(m.right), Y: rel.Y},
		World: hit,
	}, true
}
