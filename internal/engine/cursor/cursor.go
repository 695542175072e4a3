// Package cursor animates the 3D tool cursor that marks the sculpt target.
package cursor

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/Faultbox/clay/pkg/math"
)

// Transition timing in seconds.
const (
	fadeDuration  = 0.12
	pressDuration = 0.08
)

// Colors for the idle and pressed states (RGB).
var (
	IdleColor   = [3]float32{0.95, 0.95, 0.95}
	ActiveColor = [3]float32{1.00, 0.55, 0.15}
)

// Cursor tracks where the tool would act and eases its look between
// hidden, hovering and pressed.
type Cursor struct {
	pos     math.Vec3
	visible bool
	active  bool
	size    float32

	// color[0..2] is RGB, color[3] is alpha
	color  [4]float32
	tweens [4]*gween.Tween
	scale  float32
	scaleT *gween.Tween
}

// New creates a hidden cursor of the given size.
func New(size float32) *Cursor {
	c := &Cursor{size: size, scale: 1}
	c.color = [4]float32{IdleColor[0], IdleColor[1], IdleColor[2], 0}
	return c
}

// SetCursor updates the target state. Changes in visibility or pressed
// state start a transition that Update advances.
func (c *Cursor) SetCursor(pos math.Vec3, visible, active bool) {
	if visible {
		c.pos = pos
	}
	if visible == c.visible && active == c.active {
		return
	}
	c.visible, c.active = visible, active

	rgb := IdleColor
	if active {
		rgb = ActiveColor
	}
	var alpha float32
	if visible {
		alpha = 1
	}

	duration := float32(pressDuration)
	if alpha != c.color[3] {
		duration = fadeDuration
	}
	for i := 0; i < 3; i++ {
		c.tweens[i] = gween.New(c.color[i], rgb[i], duration, ease.OutQuad)
	}
	c.tweens[3] = gween.New(c.color[3], alpha, duration, ease.OutQuad)

	var scale float32 = 1
	if active {
		scale = 0.8
	}
	c.scaleT = gween.New(c.scale, scale, pressDuration, ease.OutBack)
}

// SetSize sets the cursor's base radius in world units.
func (c *Cursor) SetSize(size float32) {
	c.size = size
}

// Update advances transitions by dt seconds.
func (c *Cursor) Update(dt float32) {
	for i, tw := range c.tweens {
		if tw == nil {
			continue
		}
		v, done := tw.Update(dt)
		c.color[i] = v
		if done {
			c.tweens[i] = nil
		}
	}
	if c.scaleT != nil {
		v, done := c.scaleT.Update(dt)
		c.scale = v
		if done {
			c.scaleT = nil
		}
	}
}

// Position returns the last visible target position in world space.
func (c *Cursor) Position() math.Vec3 {
	return c.pos
}

// Color returns the current RGBA color.
func (c *Cursor) Color() [4]float32 {
	return c.color
}

// Radius returns the current drawn radius.
func (c *Cursor) Radius() float32 {
	return c.size * c.scale
}

// Visible reports whether the cursor should be drawn at all.
func (c *Cursor) Visible() bool {
	return c.color[3] > 0.001
}

// Active reports whether the sculpt button is held over the model.
func (c *Cursor) Active() bool {
	return c.active
}
