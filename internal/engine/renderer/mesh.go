package renderer

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/clay/internal/logger"
	"github.com/Faultbox/clay/internal/sculpt/geometry"
	"github.com/Faultbox/clay/pkg/math"
)

const vec3Size = int(unsafe.Sizeof(math.Vec3{}))

// meshState tracks the CPU side of the sculpted mesh: the buffer the
// session mutates and the normals derived from it.
type meshState struct {
	src     *geometry.Mesh
	normals []math.Vec3

	rebuild bool // topology changed, buffers must be reallocated
	dirty   bool // positions changed, contents must be re-uploaded
}

// SetMesh implements sculpt.GeometrySink.
func (r *Renderer) SetMesh(m *geometry.Mesh) {
	r.mesh.setMesh(m)
}

// MarkDirty implements sculpt.GeometrySink.
func (r *Renderer) MarkDirty() {
	r.mesh.dirty = true
}

func (s *meshState) setMesh(m *geometry.Mesh) {
	s.src = m
	s.normals = make([]math.Vec3, len(m.Positions))
	s.rebuild = true
	s.dirty = true
}

// prepare recomputes normals when the positions changed. It reports whether
// the GPU buffers need reallocating and whether their contents need uploading.
func (s *meshState) prepare() (rebuild, upload bool) {
	if s.src == nil || !s.dirty {
		return false, false
	}
	geometry.ComputeNormals(s.src.Positions, s.src.Indices, s.normals)
	rebuild, upload = s.rebuild, true
	s.rebuild, s.dirty = false, false
	return rebuild, upload
}

// gpuMesh mirrors meshState into a VAO with separate position and normal
// buffers so each can be refreshed in place.
type gpuMesh struct {
	meshState

	vao, posVBO, normVBO, ebo uint32
	indexCount                int32
}

func (g *gpuMesh) sync() {
	rebuild, upload := g.prepare()
	if rebuild {
		g.allocate()
	}
	if upload && len(g.src.Positions) > 0 {
		size := len(g.src.Positions) * vec3Size
		gl.BindBuffer(gl.ARRAY_BUFFER, g.posVBO)
		gl.BufferSubData(gl.ARRAY_BUFFER, 0, size, unsafe.Pointer(&g.src.Positions[0]))
		gl.BindBuffer(gl.ARRAY_BUFFER, g.normVBO)
		gl.BufferSubData(gl.ARRAY_BUFFER, 0, size, unsafe.Pointer(&g.normals[0]))
		gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	}
}

func (g *gpuMesh) allocate() {
	g.release()

	m := g.src
	size := len(m.Positions) * vec3Size

	gl.GenVertexArrays(1, &g.vao)
	gl.BindVertexArray(g.vao)

	gl.GenBuffers(1, &g.posVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, g.posVBO)
	gl.BufferData(gl.ARRAY_BUFFER, size, nil, gl.DYNAMIC_DRAW)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, int32(vec3Size), nil)
	gl.EnableVertexAttribArray(0)

	gl.GenBuffers(1, &g.normVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, g.normVBO)
	gl.BufferData(gl.ARRAY_BUFFER, size, nil, gl.DYNAMIC_DRAW)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, int32(vec3Size), nil)
	gl.EnableVertexAttribArray(1)

	gl.GenBuffers(1, &g.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, g.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*4, unsafe.Pointer(&m.Indices[0]), gl.STATIC_DRAW)
	g.indexCount = int32(len(m.Indices))

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	logger.Debug("mesh buffers allocated",
		zap.Stringer("shape", m.Shape),
		zap.Int("vertices", len(m.Positions)),
		zap.Int("triangles", m.TriangleCount()),
	)
}

func (g *gpuMesh) release() {
	if g.vao != 0 {
		gl.DeleteVertexArrays(1, &g.vao)
		g.vao = 0
	}
	for _, b := range []*uint32{&g.posVBO, &g.normVBO, &g.ebo} {
		if *b != 0 {
			gl.DeleteBuffers(1, b)
			*b = 0
		}
	}
	g.indexCount = 0
}
