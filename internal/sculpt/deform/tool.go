// Package deform implements radial sculpting of a surface of revolution.
package deform

import "github.com/Faultbox/clay/pkg/math"

// Tool parameter limits.
const (
	MinStrength = 0.01
	MaxStrength = 0.5

	MinInfluenceRadius = 0.1
	MaxInfluenceRadius = 2.0

	DefaultStrength        = 0.05
	DefaultInfluenceRadius = 0.5
	DefaultMinRadius       = 0.2
	DefaultMaxRadius       = 3.5
)

// Tool holds the sculpting parameters read by every Sculpt call.
type Tool struct {
	Strength        float32 `yaml:"strength"`
	InfluenceRadius float32 `yaml:"influence_radius"`
	MinRadius       float32 `yaml:"min_radius"`
	MaxRadius       float32 `yaml:"max_radius"`
}

// DefaultTool returns the tool a new session starts with.
func DefaultTool() Tool {
	return Tool{
		Strength:        DefaultStrength,
		InfluenceRadius: DefaultInfluenceRadius,
		MinRadius:       DefaultMinRadius,
		MaxRadius:       DefaultMaxRadius,
	}
}

// Clamped returns t with every parameter forced into its legal range.
// Values arrive unchecked from the UI and config files.
func (t Tool) Clamped() Tool {
	t.Strength = clampStrength(t.Strength)
	t.InfluenceRadius = clampInfluence(t.InfluenceRadius)
	t.MinRadius = math.Finite(t.MinRadius, DefaultMinRadius)
	t.MaxRadius = math.Finite(t.MaxRadius, DefaultMaxRadius)
	if t.MinRadius <= 0 {
		t.MinRadius = DefaultMinRadius
	}
	if t.MaxRadius < t.MinRadius {
		t.MaxRadius = DefaultMaxRadius
		if t.MaxRadius < t.MinRadius {
			t.MaxRadius = t.MinRadius
		}
	}
	return t
}

// Non-finite values fall back to the default rather than a bound.
func clampStrength(s float32) float32 {
	return math.Clamp(math.Finite(s, DefaultStrength), MinStrength, MaxStrength)
}

func clampInfluence(r float32) float32 {
	return math.Clamp(math.Finite(r, DefaultInfluenceRadius), MinInfluenceRadius, MaxInfluenceRadius)
}

// TargetRadius maps a target point to the radius the tool pulls toward:
// its distance from the rotation axis within the reference plane.
func (t Tool) TargetRadius(target math.Vec3) float32 {
	x := target.X
	if x < 0 {
		x = -x
	}
	return math.Clamp(x, t.MinRadius, t.MaxRadius)
}
