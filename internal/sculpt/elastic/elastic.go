// Package elastic integrates per-vertex springs that pull a jelly material
// back toward its rest shape.
package elastic

import (
	"fmt"

	"github.com/chewxy/math32"

	"github.com/Faultbox/clay/pkg/math"
)

// Default spring constants.
const (
	DefaultStiffness   = 15.0
	DefaultDamping     = 0.85
	DefaultMaxVelocity = 2.0

	// DefaultMaxDelta caps the integration step. Forward Euler is only
	// stable while stiffness*delta stays well below 2.
	DefaultMaxDelta = 0.05

	settleEnergy = 1e-10
)

// Params tunes the spring-damper model.
type Params struct {
	Stiffness   float32 `yaml:"stiffness"`
	Damping     float32 `yaml:"damping"`
	MaxVelocity float32 `yaml:"max_velocity"`
	MaxDelta    float32 `yaml:"max_delta"`
}

// DefaultParams returns the stock jelly feel.
func DefaultParams() Params {
	return Params{
		Stiffness:   DefaultStiffness,
		Damping:     DefaultDamping,
		MaxVelocity: DefaultMaxVelocity,
		MaxDelta:    DefaultMaxDelta,
	}
}

func (p Params) sanitized() Params {
	d := DefaultParams()
	p.Stiffness = math.Finite(p.Stiffness, d.Stiffness)
	p.Damping = math.Finite(p.Damping, d.Damping)
	p.MaxVelocity = math.Finite(p.MaxVelocity, d.MaxVelocity)
	p.MaxDelta = math.Finite(p.MaxDelta, d.MaxDelta)
	if p.Stiffness <= 0 {
		p.Stiffness = d.Stiffness
	}
	if p.Damping <= 0 || p.Damping > 1 {
		p.Damping = d.Damping
	}
	if p.MaxVelocity <= 0 {
		p.MaxVelocity = d.MaxVelocity
	}
	if p.MaxDelta <= 0 || p.Stiffness*p.MaxDelta >= 1 {
		p.MaxDelta = math32.Min(d.MaxDelta, 0.5/p.Stiffness)
	}
	return p
}

// Simulator owns the rest and velocity buffers parallel to a vertex buffer.
// It is either at rest (zero velocity, positions on their rest shape) or
// perturbed and decaying toward rest.
type Simulator struct {
	params   Params
	rest     []math.Vec3
	velocity []math.Vec3
}

// New creates a simulator at rest on the given positions.
func New(positions []math.Vec3, p Params) *Simulator {
	return &Simulator{
		params:   p.sanitized(),
		rest:     math.CopyVec3s(positions),
		velocity: make([]math.Vec3, len(positions)),
	}
}

// Params returns the effective spring constants.
func (s *Simulator) Params() Params {
	return s.params
}

// Len returns the number of simulated vertices.
func (s *Simulator) Len() int {
	return len(s.rest)
}

// Rest returns the rest buffer. Callers must not modify it.
func (s *Simulator) Rest() []math.Vec3 {
	return s.rest
}

// Velocity returns the velocity buffer. Callers must not modify it.
func (s *Simulator) Velocity() []math.Vec3 {
	return s.velocity
}

// SetRestXZ moves vertex i's rest position horizontally.
func (s *Simulator) SetRestXZ(i int, x, z float32) {
	s.rest[i].X = x
	s.rest[i].Z = z
}

// AddImpulse adds v to vertex i's velocity.
func (s *Simulator) AddImpulse(i int, v math.Vec3) {
	s.velocity[i] = s.velocity[i].Add(v)
}

// SyncRest copies positions into the rest buffer. A buffer of a different
// length reallocates both buffers and drops all motion.
func (s *Simulator) SyncRest(positions []math.Vec3) {
	if len(positions) != len(s.rest) {
		s.rest = math.CopyVec3s(positions)
		s.velocity = make([]math.Vec3, len(positions))
		return
	}
	copy(s.rest, positions)
}

// ZeroVelocity stops all motion.
func (s *Simulator) ZeroVelocity() {
	for i := range s.velocity {
		s.velocity[i] = math.Vec3{}
	}
}

// Energy returns the sum of squared vertex speeds.
func (s *Simulator) Energy() float32 {
	var e float32
	for _, v := range s.velocity {
		e += v.Dot(v)
	}
	return e
}

// Settled reports whether the material has effectively stopped moving.
func (s *Simulator) Settled() bool {
	return s.Energy() < settleEnergy
}

// Step advances the springs by delta seconds and moves positions. It
// reports whether any position changed. positions must be the buffer the
// simulator was created or last synced with.
func (s *Simulator) Step(positions []math.Vec3, delta float32) bool {
	if len(positions) != len(s.rest) {
		panic(fmt.Sprintf("elastic: step on %d vertices, simulator holds %d", len(positions), len(s.rest)))
	}

	delta = math.Clamp(math.Finite(delta, 0), 0, s.params.MaxDelta)
	if delta == 0 {
		return false
	}

	k := s.params.Stiffness * delta
	maxV := s.params.MaxVelocity
	moved := false

	for i := range positions {
		v := s.velocity[i].Add(s.rest[i].Sub(positions[i]).Scale(k)).Scale(s.params.Damping)
		v = math.Vec3{
			X: math.Clamp(v.X, -maxV, maxV),
			Y: math.Clamp(v.Y, -maxV, maxV),
			Z: math.Clamp(v.Z, -maxV, maxV),
		}
		s.velocity[i] = v

		if v == (math.Vec3{}) {
			continue
		}
		next := positions[i].Add(v.Scale(delta))
		if next != positions[i] {
			positions[i] = next
			moved = true
		}
	}
	return moved
}
