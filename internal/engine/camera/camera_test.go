package camera

import (
	"testing"

	"github.com/Faultbox/clay/pkg/math"
)

func TestPositionDistance(t *testing.T) {
	c := New()
	c.Target = math.Vec3{Y: 1}
	got := c.Position().Distance(c.Target)
	if d := got - c.Distance; d > 1e-4 || d < -1e-4 {
		t.Errorf("camera distance = %v, want %v", got, c.Distance)
	}
}

func TestZeroYawLooksDownNegativeZ(t *testing.T) {
	c := New()
	c.Pitch = 0
	p := c.Position()
	if p.Z <= 0 || p.X != 0 {
		t.Errorf("camera at yaw 0 should sit on +Z, got %v", p)
	}
}

func TestHandleZoomClamps(t *testing.T) {
	c := New()
	for i := 0; i < 100; i++ {
		c.HandleZoom(1)
	}
	if c.Distance != c.MinDistance {
		t.Errorf("zoom in: distance = %v, want %v", c.Distance, c.MinDistance)
	}
	for i := 0; i < 100; i++ {
		c.HandleZoom(-1)
	}
	if c.Distance != c.MaxDistance {
		t.Errorf("zoom out: distance = %v, want %v", c.Distance, c.MaxDistance)
	}
}

func TestSetViewport(t *testing.T) {
	c := New()
	c.SetViewport(800, 400)
	if c.Aspect != 2 {
		t.Errorf("aspect = %v, want 2", c.Aspect)
	}
	c.SetViewport(0, 400)
	if c.Aspect != 2 {
		t.Error("degenerate viewport should keep the previous aspect")
	}
}

func TestTargetProjectsToCenter(t *testing.T) {
	c := New()
	ndc := c.ViewProjection().Project(c.Target)
	if ndc.X > 1e-4 || ndc.X < -1e-4 || ndc.Y > 1e-4 || ndc.Y < -1e-4 {
		t.Errorf("target should project to screen center, got %v", ndc)
	}
}
