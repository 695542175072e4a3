package geometry

import (
	"errors"

	"github.com/chewxy/math32"

	"github.com/Faultbox/clay/pkg/math"
)

// ErrEmptyGeometry is returned when a template produces no vertices.
var ErrEmptyGeometry = errors.New("geometry: shape produced no vertices")

// Default template dimensions.
const (
	RadialSegments = 64

	cylinderRadius = 1.5
	cylinderHeight = 3.0
	cylinderRows   = 30

	sphereRadius = 1.5
	sphereRows   = 32

	coneRadius = 1.5
	coneHeight = 3.0
	coneRows   = 30

	boxHalfSize = 1.2
	boxRows     = 24

	torusRadius     = 1.2
	torusTubeRadius = 0.5
	torusTubeRows   = 32
)

// Mesh is a vertex buffer plus its fixed triangle topology.
// Positions is owned by whoever sculpts it; Indices is read-only metadata.
type Mesh struct {
	Shape     Shape
	Positions []math.Vec3
	Indices   []uint32

	// Columns is the number of vertices per profile row (RadialSegments+1:
	// the seam column is duplicated so texture coordinates stay continuous).
	Columns int
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Positions)
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// ring is one row of a revolution profile.
type ring struct {
	radius float32
	y      float32
}

// Build generates a fresh mesh for the given template.
func Build(shape Shape) (*Mesh, error) {
	var (
		profile []ring
		shapeFn func(theta float32) float32
	)
	switch shape {
	case Cylinder:
		profile = cylinderProfile()
	case Sphere:
		profile = sphereProfile()
	case Cone:
		profile = coneProfile()
	case Box:
		profile, shapeFn = boxProfile(), squareRadius
	case Torus:
		profile = torusProfile()
	default:
		return nil, ErrEmptyGeometry
	}

	m := lathe(shape, profile, shapeFn)
	if len(m.Positions) == 0 {
		return nil, ErrEmptyGeometry
	}
	return m, nil
}

// lathe sweeps profile around the Y axis. shapeFn, when set, scales a ring's
// radius per angle (used by the box to square off its cross-section).
func lathe(shape Shape, profile []ring, shapeFn func(theta float32) float32) *Mesh {
	cols := RadialSegments + 1
	m := &Mesh{
		Shape:     shape,
		Positions: make([]math.Vec3, 0, len(profile)*cols),
		Columns:   cols,
	}

	for _, r := range profile {
		for i := 0; i < cols; i++ {
			theta := float32(i) / RadialSegments * 2 * math32.Pi
			radius := r.radius
			if shapeFn != nil {
				radius *= shapeFn(theta)
			}
			sin, cos := math32.Sincos(theta)
			m.Positions = append(m.Positions, math.Vec3{
				X: cos * radius,
				Y: r.y,
				Z: sin * radius,
			})
		}
	}

	if len(profile) < 2 {
		return m
	}

	m.Indices = make([]uint32, 0, (len(profile)-1)*RadialSegments*6)
	for j := 0; j < len(profile)-1; j++ {
		for i := 0; i < RadialSegments; i++ {
			a := uint32(j*cols + i)
			b := a + 1
			c := a + uint32(cols)
			d := c + 1
			m.Indices = append(m.Indices,
				a, c, b,
				b, c, d,
			)
		}
	}
	return m
}

func cylinderProfile() []ring {
	half := float32(cylinderHeight / 2)
	profile := []ring{{0, -half}}
	for j := 0; j <= cylinderRows; j++ {
		y := -half + float32(j)*cylinderHeight/cylinderRows
		profile = append(profile, ring{cylinderRadius, y})
	}
	return append(profile, ring{0, half})
}

func sphereProfile() []ring {
	profile := make([]ring, 0, sphereRows+1)
	for j := 0; j <= sphereRows; j++ {
		phi := float32(j) / sphereRows * math32.Pi
		sin, cos := math32.Sincos(phi)
		r := sphereRadius * sin
		if j == 0 || j == sphereRows {
			r = 0
		}
		profile = append(profile, ring{r, -sphereRadius * cos})
	}
	return profile
}

func coneProfile() []ring {
	half := float32(coneHeight / 2)
	profile := []ring{{0, -half}}
	for j := 0; j <= coneRows; j++ {
		t := float32(j) / coneRows
		profile = append(profile, ring{coneRadius * (1 - t), -half + t*coneHeight})
	}
	return profile
}

func boxProfile() []ring {
	profile := []ring{{0, -boxHalfSize}}
	for j := 0; j <= boxRows; j++ {
		y := -boxHalfSize + float32(j)*2*boxHalfSize/boxRows
		profile = append(profile, ring{boxHalfSize, y})
	}
	return append(profile, ring{0, boxHalfSize})
}

// squareRadius maps a unit circle onto a unit square's perimeter.
func squareRadius(theta float32) float32 {
	sin, cos := math32.Sincos(theta)
	return 1 / math32.Max(math32.Abs(cos), math32.Abs(sin))
}

func torusProfile() []ring {
	profile := make([]ring, 0, torusTubeRows+1)
	for j := 0; j <= torusTubeRows; j++ {
		v := float32(j) / torusTubeRows * 2 * math32.Pi
		sin, cos := math32.Sincos(v)
		profile = append(profile, ring{torusRadius + torusTubeRadius*cos, torusTubeRadius * sin})
	}
	return profile
}
