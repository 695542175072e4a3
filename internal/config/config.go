// Package config handles application configuration loading and management.
package config

import (
	"time"

	"github.com/Faultbox/clay/internal/sculpt"
	"github.com/Faultbox/clay/internal/sculpt/deform"
	"github.com/Faultbox/clay/internal/sculpt/elastic"
	"github.com/Faultbox/clay/internal/sculpt/geometry"
	"github.com/Faultbox/clay/internal/sculpt/history"
)

// Config holds all application settings.
type Config struct {
	Window  WindowConfig   `yaml:"window"`
	Tool    deform.Tool    `yaml:"tool"`
	Elastic elastic.Params `yaml:"elastic"`
	Session SessionConfig  `yaml:"session"`
	Audio   AudioConfig    `yaml:"audio"`
	Haptics HapticsConfig  `yaml:"haptics"`
	Export  ExportConfig   `yaml:"export"`
	Logging LoggingConfig  `yaml:"logging"`
}

// WindowConfig holds display and rendering settings.
type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
	MSAA       int    `yaml:"msaa"`
	ShowFPS    bool   `yaml:"show_fps"`
}

// SessionConfig holds the starting state and timing of a sculpting session.
type SessionConfig struct {
	Shape            geometry.Shape  `yaml:"shape"`
	Material         sculpt.Material `yaml:"material"`
	HistoryCapacity  int             `yaml:"history_capacity"`
	MinGesture       time.Duration   `yaml:"min_gesture"`
	FeedbackInterval time.Duration   `yaml:"feedback_interval"`
	ImpulseScale     float32         `yaml:"impulse_scale"`
	Turntable        bool            `yaml:"turntable"`
	TurntableSpeed   float32         `yaml:"turntable_speed"` // rad/s
}

// AudioConfig holds audio settings.
type AudioConfig struct {
	MasterVolume   float32 `yaml:"master_volume"`
	FeedbackVolume float32 `yaml:"feedback_volume"`
	Muted          bool    `yaml:"muted"`
	SampleRate     int     `yaml:"sample_rate"`
}

// HapticsConfig holds controller rumble settings.
type HapticsConfig struct {
	Enabled     bool          `yaml:"enabled"`
	Strength    float32       `yaml:"strength"`
	Cooldown    time.Duration `yaml:"cooldown"`
	SculptPulse time.Duration `yaml:"sculpt_pulse"`
	UndoPulse   time.Duration `yaml:"undo_pulse"`
	ResetPulse  time.Duration `yaml:"reset_pulse"`
}

// ExportConfig holds STL export and screenshot settings.
type ExportConfig struct {
	Dir       string `yaml:"dir"` // empty means the config directory
	UseDialog bool   `yaml:"use_dialog"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level      string `yaml:"level"`
	LogFile    string `yaml:"log_file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:      "Clay",
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
			MSAA:       4,
		},
		Tool:    deform.DefaultTool(),
		Elastic: elastic.DefaultParams(),
		Session: SessionConfig{
			Shape:            geometry.Cylinder,
			Material:         sculpt.Clay,
			HistoryCapacity:  history.DefaultCapacity,
			MinGesture:       sculpt.DefaultMinGesture,
			FeedbackInterval: sculpt.DefaultFeedbackInterval,
			ImpulseScale:     deform.DefaultImpulseScale,
			Turntable:        true,
			TurntableSpeed:   sculpt.DefaultTurntableSpeed,
		},
		Audio: AudioConfig{
			MasterVolume:   0.8,
			FeedbackVolume: 0.5,
			Muted:          false,
			SampleRate:     44100,
		},
		Haptics: HapticsConfig{
			Enabled:     true,
			Strength:    0.4,
			Cooldown:    40 * time.Millisecond,
			SculptPulse: 10 * time.Millisecond,
			UndoPulse:   30 * time.Millisecond,
			ResetPulse:  50 * time.Millisecond,
		},
		Export: ExportConfig{
			UseDialog: true,
		},
		Logging: LoggingConfig{
			Level:      "info",
			LogFile:    "",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 7,
		},
	}
}

// SculptConfig assembles the settings a sculpting session needs.
func (c *Config) SculptConfig() sculpt.Config {
	return sculpt.Config{
		Shape:            c.Session.Shape,
		Material:         c.Session.Material,
		Tool:             c.Tool,
		Elastic:          c.Elastic,
		ImpulseScale:     c.Session.ImpulseScale,
		HistoryCapacity:  c.Session.HistoryCapacity,
		MinGesture:       c.Session.MinGesture,
		FeedbackInterval: c.Session.FeedbackInterval,
		Turntable:        c.Session.Turntable,
		TurntableSpeed:   c.Session.TurntableSpeed,
		SculptPulse:      c.Haptics.SculptPulse,
		UndoPulse:        c.Haptics.UndoPulse,
		ResetPulse:       c.Haptics.ResetPulse,
	}
}
