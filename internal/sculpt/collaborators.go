package sculpt

import (
	"time"

	"github.com/Faultbox/clay/internal/engine/picking"
	"github.com/Faultbox/clay/internal/sculpt/geometry"
	"github.com/Faultbox/clay/pkg/math"
)

// GeometrySink receives mesh changes. Normals are recomputed by the sink.
type GeometrySink interface {
	// SetMesh replaces the mesh after a shape change.
	SetMesh(m *geometry.Mesh)
	// MarkDirty signals that the positions of the current mesh changed.
	MarkDirty()
}

// Feedback plays a sculpting sound. Intensity is in [0, 1].
type Feedback interface {
	PlayFeedback(intensity float64)
}

// Haptics plays a short vibration.
type Haptics interface {
	Pulse(d time.Duration)
}

// Cursor shows where the tool would act.
type Cursor interface {
	SetCursor(pos math.Vec3, visible, active bool)
}

// TargetMapper converts a pointer position into a sculpt target.
type TargetMapper interface {
	Map(ndc math.Vec2) (picking.Target, bool)
}

// Collaborators bundles the session's outbound dependencies.
// Nil fields are replaced with no-ops.
type Collaborators struct {
	Geometry GeometrySink
	Feedback Feedback
	Haptics  Haptics
	Cursor   Cursor
}

func (c Collaborators) withDefaults() Collaborators {
	if c.Geometry == nil {
		c.Geometry = nopGeometry{}
	}
	if c.Feedback == nil {
		c.Feedback = nopFeedback{}
	}
	if c.Haptics == nil {
		c.Haptics = nopHaptics{}
	}
	if c.Cursor == nil {
		c.Cursor = nopCursor{}
	}
	return c
}

type nopGeometry struct{}

func (nopGeometry) SetMesh(*geometry.Mesh) {}
func (nopGeometry) MarkDirty()             {}

type nopFeedback struct{}

func (nopFeedback) PlayFeedback(float64) {}

type nopHaptics struct{}

func (nopHaptics) Pulse(time.Duration) {}

type nopCursor struct{}

func (nopCursor) SetCursor(math.Vec3, bool, bool) {}
