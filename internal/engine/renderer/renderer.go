// Package renderer draws the sculpted mesh and the tool cursor with OpenGL.
package renderer

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/clay/internal/engine/lighting"
	"github.com/Faultbox/clay/internal/engine/shader"
	"github.com/Faultbox/clay/internal/logger"
	"github.com/Faultbox/clay/internal/sculpt"
	"github.com/Faultbox/clay/pkg/math"
)

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int
	MSAA   int
}

// Frame is everything needed to draw one frame.
type Frame struct {
	View       math.Mat4
	Projection math.Mat4
	CameraPos  math.Vec3
	Model      math.Mat4
	Surface    sculpt.Surface
	Light      lighting.Light
	Cursor     CursorState
}

// CursorState describes the tool cursor in world space.
type CursorState struct {
	Position math.Vec3
	Radius   float32
	Color    [4]float32
	Visible  bool
}

// Renderer handles all OpenGL rendering.
type Renderer struct {
	config Config

	meshProgram   *shader.Program
	cursorProgram *shader.Program

	mesh   gpuMesh
	cursor gpuCursor
}

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config: cfg,
	}

	// Initialize OpenGL
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	// Log OpenGL info
	version := gl.GoStr(gl.GetString(gl.VERSION))
	rendererName := gl.GoStr(gl.GetString(gl.RENDERER))
	logger.Info("OpenGL initialized",
		zap.String("version", version),
		zap.String("renderer", rendererName),
	)

	// Setup default OpenGL state
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	if cfg.MSAA > 0 {
		gl.Enable(gl.MULTISAMPLE)
	}
	gl.ClearColor(0.12, 0.12, 0.14, 1.0)

	var err error
	r.meshProgram, err = shader.NewProgram(meshVertexShader, meshFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("mesh shader: %w", err)
	}
	r.cursorProgram, err = shader.NewProgram(cursorVertexShader, cursorFragmentShader)
	if err != nil {
		r.meshProgram.Delete()
		return nil, fmt.Errorf("cursor shader: %w", err)
	}
	r.cursor.init()

	logger.Debug("renderer ready",
		zap.Uint32("mesh_program", r.meshProgram.ID),
		zap.Uint32("cursor_program", r.cursorProgram.ID),
	)
	return r, nil
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	r.mesh.release()
	r.cursor.release()
	r.meshProgram.Delete()
	r.cursorProgram.Delete()
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Size returns the viewport size.
func (r *Renderer) Size() (int, int) {
	return r.config.Width, r.config.Height
}

// Draw renders the mesh and cursor.
func (r *Renderer) Draw(f Frame) {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	r.mesh.sync()
	if r.mesh.indexCount > 0 {
		p := r.meshProgram
		p.Use()
		p.SetMat4("uModel", f.Model)
		p.SetMat4("uView", f.View)
		p.SetMat4("uProjection", f.Projection)
		p.SetVec3("uCameraPos", f.CameraPos.Array())
		p.SetVec3("uLightDir", f.Light.Direction.Array())
		p.SetVec3("uLightColor", f.Light.Color)
		p.SetVec3("uAmbient", f.Light.Ambient)
		s := f.Surface
		p.SetVec4("uColor", [4]float32{s.Color[0], s.Color[1], s.Color[2], s.Alpha})
		p.SetFloat("uSpecular", s.Specular)
		p.SetFloat("uShininess", s.Shininess)

		gl.BindVertexArray(r.mesh.vao)
		gl.DrawElements(gl.TRIANGLES, r.mesh.indexCount, gl.UNSIGNED_INT, nil)
		gl.BindVertexArray(0)
	}

	if f.Cursor.Visible {
		r.drawCursor(f)
	}
}

// ReadPixels returns the framebuffer as bottom-up RGBA rows.
func (r *Renderer) ReadPixels() ([]byte, int, int) {
	w, h := r.config.Width, r.config.Height
	if w <= 0 || h <= 0 {
		return nil, 0, 0
	}
	pixels := make([]byte, w*h*4)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&pixels[0]))
	return pixels, w, h
}
