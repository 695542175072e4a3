package picking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/clay/internal/engine/camera"
	"github.com/Faultbox/clay/pkg/math"
)

func TestScreenToNDC(t *testing.T) {
	tests := []struct {
		x, y, w, h float32
		want       math.Vec2
	}{
		{400, 300, 800, 600, math.Vec2{X: 0, Y: 0}},
		{0, 0, 800, 600, math.Vec2{X: -1, Y: 1}},
		{800, 600, 800, 600, math.Vec2{X: 1, Y: -1}},
		{10, 10, 0, 600, math.Vec2{}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ScreenToNDC(tt.x, tt.y, tt.w, tt.h))
	}
}

func TestIntersectPlane(t *testing.T) {
	plane := Plane{Normal: math.Vec3{Z: 1}}

	r := Ray{Origin: math.Vec3{X: 1, Y: 2, Z: 5}, Direction: math.Vec3{Z: -1}}
	hit, ok := r.IntersectPlane(plane)
	require.True(t, ok)
	assert.Equal(t, math.Vec3{X: 1, Y: 2}, hit)

	// Parallel.
	_, ok = Ray{Origin: math.Vec3{Z: 5}, Direction: math.Vec3{X: 1}}.IntersectPlane(plane)
	assert.False(t, ok)

	// Pointing away.
	_, ok = Ray{Origin: math.Vec3{Z: 5}, Direction: math.Vec3{Z: 1}}.IntersectPlane(plane)
	assert.False(t, ok)
}

func TestMapperCenterHitsOrigin(t *testing.T) {
	cam := camera.New()
	m := NewMapper(cam, math.Vec3{})

	target, ok := m.Map(math.Vec2{})
	require.True(t, ok)
	assert.InDelta(t, 0, target.Local.X, 1e-4)
	assert.InDelta(t, 0, target.Local.Y, 1e-4)
	assert.Zero(t, target.Local.Z)
}

func TestMapperRoundTrip(t *testing.T) {
	cam := camera.New()
	cam.Yaw = 0.7
	origin := math.Vec3{Y: 0.25}
	m := NewMapper(cam, origin)

	// A point on the plane, one unit right of the axis and half a unit up.
	right := math.Vec3{Y: 1}.Cross(m.Plane().Normal)
	world := origin.Add(right).Add(math.Vec3{Y: 0.5})

	ndc := cam.ViewProjection().Project(world)
	target, ok := m.Map(math.Vec2{X: ndc.X, Y: ndc.Y})
	require.True(t, ok)

	assert.InDelta(t, 1, target.Local.X, 1e-3)
	assert.InDelta(t, 0.5, target.Local.Y, 1e-3)
	assert.InDelta(t, 0, target.World.Distance(world), 1e-3)
}

func TestMapperScreenRightIsPositiveX(t *testing.T) {
	m := NewMapper(camera.New(), math.Vec3{})

	left, ok := m.Map(math.Vec2{X: -0.5})
	require.True(t, ok)
	right, ok := m.Map(math.Vec2{X: 0.5})
	require.True(t, ok)

	assert.Less(t, left.Local.X, float32(0))
	assert.Greater(t, right.Local.X, float32(0))
}

func TestMapperCameraAboveAxisFallsBack(t *testing.T) {
	cam := camera.New()
	cam.Pitch = 1.5707964 // straight down
	m := NewMapper(cam, math.Vec3{})
	assert.InDelta(t, 1, m.Plane().Normal.Length(), 1e-5)
}
