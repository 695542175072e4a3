package sculpt

import (
	"time"

	"github.com/Faultbox/clay/internal/sculpt/deform"
	"github.com/Faultbox/clay/internal/sculpt/elastic"
	"github.com/Faultbox/clay/internal/sculpt/geometry"
	"github.com/Faultbox/clay/internal/sculpt/history"
)

// Session timing defaults.
const (
	DefaultMinGesture       = 100 * time.Millisecond
	DefaultFeedbackInterval = 60 * time.Millisecond
	DefaultTurntableSpeed   = 0.3 // rad/s

	// FeedbackFullDelta is the per-call radial change that plays at full intensity.
	FeedbackFullDelta = 0.05
)

// Config holds everything a Session owns. Separate sessions never share it.
type Config struct {
	Shape    geometry.Shape
	Material Material
	Tool     deform.Tool
	Elastic  elastic.Params

	// ImpulseScale converts radial pull into elastic velocity.
	ImpulseScale float32

	HistoryCapacity int

	// MinGesture is how long the pointer must be held for a gesture to be
	// recorded in history.
	MinGesture time.Duration

	// FeedbackInterval throttles sound and sculpt haptics.
	FeedbackInterval time.Duration

	Turntable      bool
	TurntableSpeed float32

	SculptPulse time.Duration
	UndoPulse   time.Duration
	ResetPulse  time.Duration
}

// DefaultConfig returns the settings a fresh session starts with.
func DefaultConfig() Config {
	return Config{
		Shape:            geometry.Cylinder,
		Material:         Clay,
		Tool:             deform.DefaultTool(),
		Elastic:          elastic.DefaultParams(),
		ImpulseScale:     deform.DefaultImpulseScale,
		HistoryCapacity:  history.DefaultCapacity,
		MinGesture:       DefaultMinGesture,
		FeedbackInterval: DefaultFeedbackInterval,
		Turntable:        true,
		TurntableSpeed:   DefaultTurntableSpeed,
		SculptPulse:      10 * time.Millisecond,
		UndoPulse:        30 * time.Millisecond,
		ResetPulse:       50 * time.Millisecond,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.ImpulseScale <= 0 {
		c.ImpulseScale = d.ImpulseScale
	}
	if c.HistoryCapacity <= 0 {
		c.HistoryCapacity = d.HistoryCapacity
	}
	if c.MinGesture < 0 {
		c.MinGesture = d.MinGesture
	}
	if c.FeedbackInterval < 0 {
		c.FeedbackInterval = d.FeedbackInterval
	}
	c.Tool = c.Tool.Clamped()
	return c
}
