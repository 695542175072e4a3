// Package sculpt runs an interactive sculpting session: it maps the pointer
// onto the model, deforms the mesh, animates elastic materials and keeps the
// undo history.
package sculpt

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/chewxy/math32"
	"go.uber.org/zap"

	"github.com/Faultbox/clay/internal/logger"
	"github.com/Faultbox/clay/internal/sculpt/deform"
	"github.com/Faultbox/clay/internal/sculpt/elastic"
	"github.com/Faultbox/clay/internal/sculpt/geometry"
	"github.com/Faultbox/clay/internal/sculpt/history"
	"github.com/Faultbox/clay/pkg/math"
)

// gesture tracks one press-drag-release of the sculpt button.
type gesture struct {
	active   bool
	start    time.Time
	deformed bool
	// before holds the buffer as it was when the gesture started.
	before []math.Vec3
}

var sessionSeq atomic.Uint64

// Session owns one mesh and everything that mutates it. All mutation
// happens on the goroutine that calls Tick and the transition methods.
type Session struct {
	cfg Config

	mesh     *geometry.Mesh
	original []math.Vec3

	engine  *deform.Engine
	elastic *elastic.Simulator // nil unless the material is elastic
	history *history.Stack

	mapper  TargetMapper
	pointer *Pointer
	collab  Collaborators

	log *zap.Logger

	rotation     float32
	gesture      gesture
	lastFeedback time.Time
}

// New builds the initial mesh and returns a session ready to tick.
func New(cfg Config, mapper TargetMapper, collab Collaborators) (*Session, error) {
	cfg = cfg.withDefaults()

	s := &Session{
		cfg:     cfg,
		engine:  deform.New(cfg.Tool),
		history: history.New(cfg.HistoryCapacity),
		mapper:  mapper,
		pointer: &Pointer{},
		collab:  collab.withDefaults(),
		log:     logger.Named("sculpt").With(zap.Uint64("session", sessionSeq.Add(1))),
	}
	s.engine.SetImpulseScale(cfg.ImpulseScale)

	if err := s.loadShape(cfg.Shape); err != nil {
		return nil, err
	}
	if cfg.Material.Elastic() {
		s.attachElastic()
	}

	s.log.Info("sculpt session started",
		zap.Stringer("shape", cfg.Shape),
		zap.Stringer("material", cfg.Material),
		zap.Int("vertices", s.mesh.VertexCount()))
	return s, nil
}

// loadShape generates shape and makes it the live mesh.
func (s *Session) loadShape(shape geometry.Shape) error {
	mesh, err := geometry.Build(shape)
	if err != nil {
		return fmt.Errorf("build %s: %w", shape, err)
	}
	s.mesh = mesh
	s.original = math.CopyVec3s(mesh.Positions)
	s.cfg.Shape = shape
	s.history.Clear()
	s.restartGesture()
	s.collab.Geometry.SetMesh(mesh)
	return nil
}

func (s *Session) attachElastic() {
	s.elastic = elastic.New(s.mesh.Positions, s.cfg.Elastic)
	s.engine.SetElastic(s.elastic)
}

func (s *Session) detachElastic() {
	s.elastic = nil
	s.engine.SetElastic(nil)
}

// Pointer returns the pointer state written by input handlers.
func (s *Session) Pointer() *Pointer {
	return s.pointer
}

// Mesh returns the live mesh. Callers must not modify it.
func (s *Session) Mesh() *geometry.Mesh {
	return s.mesh
}

// Positions returns the live vertex buffer. Callers must not modify it.
func (s *Session) Positions() []math.Vec3 {
	return s.mesh.Positions
}

// Shape returns the current shape.
func (s *Session) Shape() geometry.Shape {
	return s.cfg.Shape
}

// Material returns the current material.
func (s *Session) Material() Material {
	return s.cfg.Material
}

// Tool returns the current tool parameters.
func (s *Session) Tool() deform.Tool {
	return s.engine.Tool()
}

// Elastic returns the spring simulation, or nil for rigid materials.
func (s *Session) Elastic() *elastic.Simulator {
	return s.elastic
}

// HistoryLen returns the number of undo steps available.
func (s *Session) HistoryLen() int {
	return s.history.Len()
}

// Rotation returns the turntable angle around Y in radians.
func (s *Session) Rotation() float32 {
	return s.rotation
}

// Turntable reports whether the model spins while idle.
func (s *Session) Turntable() bool {
	return s.cfg.Turntable
}

// SetTurntable enables or disables idle rotation.
func (s *Session) SetTurntable(on bool) {
	s.cfg.Turntable = on
}

// Sculpting reports whether a gesture is in progress.
func (s *Session) Sculpting() bool {
	return s.gesture.active
}

// Tick advances the session by one frame. now is the frame time and dt the
// seconds since the previous tick.
func (s *Session) Tick(now time.Time, dt float32) {
	ptr := s.pointer.Snapshot()

	if s.cfg.Turntable && !ptr.Pressed && dt > 0 {
		s.rotation = math32.Mod(s.rotation+s.cfg.TurntableSpeed*dt, 2*math32.Pi)
	}

	if s.elastic != nil && s.elastic.Step(s.mesh.Positions, dt) {
		s.collab.Geometry.MarkDirty()
	}

	switch {
	case ptr.Pressed && !s.gesture.active:
		s.beginGesture(now)
	case !ptr.Pressed && s.gesture.active:
		s.endGesture(now)
	}

	if !ptr.Inside || s.mapper == nil {
		s.collab.Cursor.SetCursor(math.Vec3{}, false, false)
		return
	}

	target, ok := s.mapper.Map(ptr.NDC)
	if !ok {
		s.collab.Cursor.SetCursor(math.Vec3{}, false, false)
		return
	}
	s.collab.Cursor.SetCursor(target.World, true, ptr.Pressed)

	if ptr.Pressed {
		s.sculpt(now, target.Local)
	}
}

func (s *Session) sculpt(now time.Time, target math.Vec3) {
	res := s.engine.Sculpt(s.mesh.Positions, target)
	if !res.Deformed() {
		return
	}
	s.gesture.deformed = true
	s.collab.Geometry.MarkDirty()

	if now.Sub(s.lastFeedback) < s.cfg.FeedbackInterval {
		return
	}
	s.lastFeedback = now
	s.collab.Feedback.PlayFeedback(float64(math32.Min(1, res.MaxDelta/FeedbackFullDelta)))
	s.collab.Haptics.Pulse(s.cfg.SculptPulse)
}

func (s *Session) beginGesture(now time.Time) {
	s.gesture.active = true
	s.gesture.start = now
	s.restartGesture()
}

// restartGesture forgets edits made so far in the current gesture and
// captures the buffer again as its starting point.
func (s *Session) restartGesture() {
	s.gesture.deformed = false
	if len(s.gesture.before) != len(s.mesh.Positions) {
		s.gesture.before = make([]math.Vec3, len(s.mesh.Positions))
	}
	copy(s.gesture.before, s.mesh.Positions)
}

func (s *Session) endGesture(now time.Time) {
	held := now.Sub(s.gesture.start)
	s.gesture.active = false

	if !s.gesture.deformed || held <= s.cfg.MinGesture {
		s.log.Debug("gesture discarded",
			zap.Duration("held", held),
			zap.Bool("deformed", s.gesture.deformed))
		return
	}
	s.saveToHistory()
	s.log.Debug("gesture recorded",
		zap.Duration("held", held),
		zap.Int("history", s.history.Len()))
}

// saveToHistory pushes the buffer the finished gesture started from.
func (s *Session) saveToHistory() {
	if s.history.Push(s.gesture.before) {
		s.log.Debug("history full, dropped oldest entry", zap.Int("capacity", s.history.Cap()))
	}
}

// Undo restores the buffer to its state before the last recorded gesture.
// History holds the buffer captured when each gesture began, so one Undo
// reverts exactly one gesture. It returns false when there is nothing to undo.
func (s *Session) Undo() bool {
	snap, ok := s.history.Pop()
	if !ok {
		s.log.Debug("undo: history empty")
		return false
	}
	copy(s.mesh.Positions, snap)
	if s.elastic != nil {
		s.elastic.SyncRest(s.mesh.Positions)
	}
	s.restartGesture()
	s.collab.Geometry.MarkDirty()
	s.collab.Haptics.Pulse(s.cfg.UndoPulse)
	s.log.Debug("undo", zap.Int("history", s.history.Len()))
	return true
}

// ResetShape restores the freshly generated shape and clears history.
func (s *Session) ResetShape() {
	copy(s.mesh.Positions, s.original)
	s.history.Clear()
	if s.elastic != nil {
		s.elastic.ZeroVelocity()
		s.elastic.SyncRest(s.mesh.Positions)
	}
	s.restartGesture()
	s.collab.Geometry.MarkDirty()
	s.collab.Haptics.Pulse(s.cfg.ResetPulse)
	s.log.Info("shape reset", zap.Stringer("shape", s.cfg.Shape))
}

// ChangeShape replaces the mesh with a freshly generated shape. History is
// cleared. Errors leave the session unchanged.
func (s *Session) ChangeShape(shape geometry.Shape) error {
	if shape == s.cfg.Shape {
		return nil
	}
	if err := s.loadShape(shape); err != nil {
		return err
	}
	if s.cfg.Material.Elastic() {
		s.attachElastic()
	}
	s.log.Info("shape changed",
		zap.Stringer("shape", shape),
		zap.Int("vertices", s.mesh.VertexCount()))
	return nil
}

// ChangeMaterial switches the surface. Entering an elastic material starts
// the springs at rest on the current buffer; leaving one drops them.
// Vertex positions are not touched.
func (s *Session) ChangeMaterial(m Material) {
	if m == s.cfg.Material {
		return
	}
	prev := s.cfg.Material
	s.cfg.Material = m

	switch {
	case m.Elastic() && !prev.Elastic():
		s.attachElastic()
	case !m.Elastic() && prev.Elastic():
		s.detachElastic()
	}
	s.log.Info("material changed", zap.Stringer("from", prev), zap.Stringer("to", m))
}

// SetStrength updates the tool strength, clamped to its legal range.
func (s *Session) SetStrength(v float32) {
	s.engine.SetStrength(v)
	s.cfg.Tool = s.engine.Tool()
}

// SetInfluenceRadius updates the tool's vertical reach, clamped.
func (s *Session) SetInfluenceRadius(v float32) {
	s.engine.SetInfluenceRadius(v)
	s.cfg.Tool = s.engine.Tool()
}
