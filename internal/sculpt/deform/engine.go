package deform

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/clay/pkg/math"
)

const (
	// FalloffWidth is the fixed width of the Gaussian tool profile. It is
	// independent of the influence radius, which only acts as a hard cutoff.
	FalloffWidth = 0.1

	// DefaultImpulseScale converts a vertex's radial pull into elastic velocity.
	DefaultImpulseScale = 2.0

	// axisEpsilon: vertices closer than this to the axis have no direction
	// to move in and are left alone.
	axisEpsilon = 1e-6
)

// Elastic receives the side effects of sculpting an elastic material.
// It is nil on the rigid path.
type Elastic interface {
	// SetRestXZ moves vertex i's rest position so the material relaxes
	// toward the sculpted shape instead of the pre-sculpt one.
	SetRestXZ(i int, x, z float32)
	// AddImpulse adds to vertex i's velocity.
	AddImpulse(i int, impulse math.Vec3)
}

// Result summarizes one Sculpt call.
type Result struct {
	TargetRadius float32
	Touched      int     // vertices inside the influence cutoff
	Changed      int     // vertices whose position actually moved
	MaxDelta     float32 // largest absolute radial change
}

// Deformed reports whether the call changed the buffer.
func (r Result) Deformed() bool {
	return r.Changed > 0
}

// Engine applies radial sculpting to a vertex buffer.
type Engine struct {
	tool         Tool
	elastic      Elastic
	impulseScale float32
}

// New creates an engine with the given tool parameters.
func New(tool Tool) *Engine {
	return &Engine{
		tool:         tool.Clamped(),
		impulseScale: DefaultImpulseScale,
	}
}

// Tool returns the current tool parameters.
func (e *Engine) Tool() Tool {
	return e.tool
}

// SetTool replaces the tool parameters, clamping them.
func (e *Engine) SetTool(t Tool) {
	e.tool = t.Clamped()
}

// SetStrength updates the strength, clamped to [MinStrength, MaxStrength].
func (e *Engine) SetStrength(s float32) {
	e.tool.Strength = clampStrength(s)
}

// SetInfluenceRadius updates the vertical cutoff, clamped to its range.
func (e *Engine) SetInfluenceRadius(r float32) {
	e.tool.InfluenceRadius = clampInfluence(r)
}

// SetElastic attaches or (with nil) detaches the elastic side channel.
func (e *Engine) SetElastic(el Elastic) {
	e.elastic = el
}

// Elastic returns the attached elastic side channel, if any.
func (e *Engine) Elastic() Elastic {
	return e.elastic
}

// SetImpulseScale sets the elastic impulse gain. Non-positive values disable impulses.
func (e *Engine) SetImpulseScale(s float32) {
	e.impulseScale = s
}

// Sculpt pulls every vertex within the influence band toward the target
// radius. Only the radius changes; each vertex keeps its angle around the
// axis and its height, so the update is closed-form and O(N).
func (e *Engine) Sculpt(positions []math.Vec3, target math.Vec3) Result {
	t := e.tool
	res := Result{TargetRadius: t.TargetRadius(target)}

	for i := range positions {
		v := positions[i]

		dy := math32.Abs(v.Y - target.Y)
		if dy >= t.InfluenceRadius {
			continue
		}
		res.Touched++

		current := v.Radius()
		if current < axisEpsilon {
			continue
		}

		factor := math32.Exp(-dy * dy / FalloffWidth)
		pull := res.TargetRadius - current
		next := current + pull*factor*t.Strength

		sin, cos := math32.Sincos(math32.Atan2(v.Z, v.X))
		x, z := cos*next, sin*next
		if x == v.X && z == v.Z {
			continue
		}
		positions[i].X = x
		positions[i].Z = z
		res.Changed++

		if d := math32.Abs(next - current); d > res.MaxDelta {
			res.MaxDelta = d
		}

		if e.elastic != nil {
			e.elastic.SetRestXZ(i, x, z)
			if e.impulseScale > 0 {
				k := pull * factor * e.impulseScale
				e.elastic.AddImpulse(i, math.Vec3{X: cos * k, Z: sin * k})
			}
		}
	}

	return res
}
