package renderer

import (
	"unsafe"

	"github.com/chewxy/math32"
	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/clay/pkg/math"
)

const cursorSegments = 48

// gpuCursor is a camera-facing ring redrawn every frame.
type gpuCursor struct {
	vao, vbo uint32
	points   [cursorSegments]math.Vec3
}

func (c *gpuCursor) init() {
	gl.GenVertexArrays(1, &c.vao)
	gl.BindVertexArray(c.vao)
	gl.GenBuffers(1, &c.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, c.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(c.points)*vec3Size, nil, gl.STREAM_DRAW)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, int32(vec3Size), nil)
	gl.EnableVertexAttribArray(0)
	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

func (c *gpuCursor) release() {
	if c.vao != 0 {
		gl.DeleteVertexArrays(1, &c.vao)
		c.vao = 0
	}
	if c.vbo != 0 {
		gl.DeleteBuffers(1, &c.vbo)
		c.vbo = 0
	}
}

// ringPoints places points on a circle around center in the plane spanned
// by right and up.
func ringPoints(points []math.Vec3, center, right, up math.Vec3, radius float32) {
	for i := range points {
		a := 2 * math32.Pi * float32(i) / float32(len(points))
		sin, cos := math32.Sincos(a)
		points[i] = center.Add(right.Scale(cos * radius)).Add(up.Scale(sin * radius))
	}
}

// viewAxes returns the camera's world-space right and up vectors, which are
// the first two rows of the view matrix.
func viewAxes(view math.Mat4) (right, up math.Vec3) {
	right = math.Vec3{X: view[0], Y: view[4], Z: view[8]}
	up = math.Vec3{X: view[1], Y: view[5], Z: view[9]}
	return right, up
}

func (r *Renderer) drawCursor(f Frame) {
	c := &r.cursor
	right, up := viewAxes(f.View)
	ringPoints(c.points[:], f.Cursor.Position, right, up, f.Cursor.Radius)

	gl.BindBuffer(gl.ARRAY_BUFFER, c.vbo)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(c.points)*vec3Size, unsafe.Pointer(&c.points[0]))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	p := r.cursorProgram
	p.Use()
	p.SetMat4("uViewProjection", f.Projection.Mul(f.View))
	p.SetVec4("uColor", f.Cursor.Color)

	// Drawn over the mesh so it stays visible where the surface bulges.
	gl.Disable(gl.DEPTH_TEST)
	gl.BindVertexArray(c.vao)
	gl.DrawArrays(gl.LINE_LOOP, 0, cursorSegments)
	gl.BindVertexArray(0)
	gl.Enable(gl.DEPTH_TEST)
}
