package elastic

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/clay/internal/sculpt/geometry"
	"github.com/Faultbox/clay/pkg/math"
)

const frame = float32(1.0 / 60.0)

func TestStepFixedPoint(t *testing.T) {
	m, err := geometry.Build(geometry.Sphere)
	require.NoError(t, err)
	before := math.CopyVec3s(m.Positions)

	s := New(m.Positions, DefaultParams())
	for i := 0; i < 120; i++ {
		assert.False(t, s.Step(m.Positions, frame))
	}

	assert.Equal(t, before, m.Positions)
	assert.True(t, s.Settled())
}

func TestStepRecoversFromImpulse(t *testing.T) {
	positions := []math.Vec3{{X: 1}}
	s := New(positions, DefaultParams())
	s.AddImpulse(0, math.Vec3{X: 1.5})

	require.True(t, s.Step(positions, frame))
	assert.Greater(t, positions[0].X, float32(1), "impulse should push outward")

	for i := 0; i < 600; i++ {
		s.Step(positions, frame)
	}
	assert.InDelta(t, 1, positions[0].X, 1e-3)
	assert.True(t, s.Settled())
}

func TestStepPullsTowardRest(t *testing.T) {
	positions := []math.Vec3{{X: 1, Z: 1}}
	s := New(positions, DefaultParams())
	s.SetRestXZ(0, 2, 1)

	gap := func() float32 { return s.Rest()[0].Distance(positions[0]) }
	start := gap()
	for i := 0; i < 10; i++ {
		s.Step(positions, frame)
	}
	assert.Less(t, gap(), start)
	assert.Equal(t, float32(0), positions[0].Y, "rest height is untouched")
}

func TestStepClampsVelocity(t *testing.T) {
	positions := []math.Vec3{{}}
	s := New(positions, DefaultParams())
	s.AddImpulse(0, math.Vec3{X: 100, Y: -100, Z: 0.5})

	s.Step(positions, frame)

	v := s.Velocity()[0]
	assert.LessOrEqual(t, v.X, float32(DefaultMaxVelocity))
	assert.GreaterOrEqual(t, v.Y, float32(-DefaultMaxVelocity))
	assert.InDelta(t, 0.5*DefaultDamping, v.Z, 1e-6)
}

func TestStepClampsLargeDelta(t *testing.T) {
	positions := []math.Vec3{{X: 1}}
	s := New(positions, DefaultParams())
	s.SetRestXZ(0, 3, 0)

	// A multi-second stall must not blow the integration up.
	for i := 0; i < 200; i++ {
		s.Step(positions, 5)
	}
	assert.InDelta(t, 3, positions[0].X, 1e-2)
}

func TestStepNonPositiveDelta(t *testing.T) {
	positions := []math.Vec3{{X: 1}}
	s := New(positions, DefaultParams())
	s.AddImpulse(0, math.Vec3{X: 1})

	assert.False(t, s.Step(positions, 0))
	assert.False(t, s.Step(positions, -1))
	assert.Equal(t, float32(1), positions[0].X)
}

func TestStepLengthMismatchPanics(t *testing.T) {
	s := New(make([]math.Vec3, 3), DefaultParams())
	assert.Panics(t, func() { s.Step(make([]math.Vec3, 4), frame) })
}

func TestSyncRestAndZeroVelocity(t *testing.T) {
	positions := []math.Vec3{{X: 1}, {X: 2}}
	s := New(positions, DefaultParams())
	s.AddImpulse(1, math.Vec3{Z: 1})

	moved := []math.Vec3{{X: 4}, {X: 5}}
	s.SyncRest(moved)
	assert.Equal(t, moved, s.Rest())
	moved[0].X = 42
	assert.Equal(t, float32(4), s.Rest()[0].X, "rest must be a copy")

	s.ZeroVelocity()
	assert.Zero(t, s.Energy())

	s.SyncRest(make([]math.Vec3, 5))
	assert.Equal(t, 5, s.Len())
	assert.Len(t, s.Velocity(), 5)
}

func TestParamsSanitized(t *testing.T) {
	p := Params{Stiffness: 15, Damping: 3, MaxVelocity: -1, MaxDelta: 1}.sanitized()
	assert.Equal(t, float32(DefaultDamping), p.Damping)
	assert.Equal(t, float32(DefaultMaxVelocity), p.MaxVelocity)
	assert.Less(t, p.Stiffness*p.MaxDelta, float32(1))

	nonFinite := map[string]float32{
		"nan":  math32.NaN(),
		"+inf": math32.Inf(1),
		"-inf": math32.Inf(-1),
	}
	for name, x := range nonFinite {
		t.Run(name, func(t *testing.T) {
			got := Params{Stiffness: x, Damping: x, MaxVelocity: x, MaxDelta: x}.sanitized()
			assert.Equal(t, DefaultParams(), got)
		})
	}
}

func TestStepIgnoresNonFiniteDelta(t *testing.T) {
	pos := []math.Vec3{{X: 1}}
	s := New(pos, DefaultParams())
	s.AddImpulse(0, math.Vec3{X: 1})

	assert.False(t, s.Step(pos, math32.NaN()))
	assert.False(t, s.Step(pos, math32.Inf(1)))
	assert.Equal(t, float32(1), pos[0].X)
}
