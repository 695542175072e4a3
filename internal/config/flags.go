package config

import (
	"flag"

	"github.com/Faultbox/clay/internal/logger"
	"github.com/Faultbox/clay/internal/sculpt"
	"github.com/Faultbox/clay/internal/sculpt/geometry"
)

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagShape      = flag.String("shape", "", "Starting shape (cylinder, sphere, cone, box, torus)")
	flagMaterial   = flag.String("material", "", "Starting material (clay, plastic, metal, jelly)")
	flagStrength   = flag.Float64("strength", 0, "Tool strength")
	flagRadius     = flag.Float64("radius", 0, "Tool influence radius")
	flagMute       = flag.Bool("mute", false, "Disable sound feedback")
	flagWindowed   = flag.Bool("windowed", false, "Run in windowed mode")
	flagFullscreen = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagWidth      = flag.Int("width", 0, "Window width")
	flagHeight     = flag.Int("height", 0, "Window height")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
		cfg.Window.ShowFPS = true
	}
	if *flagShape != "" {
		if s, err := geometry.ParseShape(*flagShape); err == nil {
			cfg.Session.Shape = s
		} else {
			logger.Sugar.Warnf("ignoring -shape: %v", err)
		}
	}
	if *flagMaterial != "" {
		if m, err := sculpt.ParseMaterial(*flagMaterial); err == nil {
			cfg.Session.Material = m
		} else {
			logger.Sugar.Warnf("ignoring -material: %v", err)
		}
	}
	if *flagStrength > 0 {
		cfg.Tool.Strength = float32(*flagStrength)
	}
	if *flagRadius > 0 {
		cfg.Tool.InfluenceRadius = float32(*flagRadius)
	}
	if *flagMute {
		cfg.Audio.Muted = true
	}
	if *flagWindowed {
		cfg.Window.Fullscreen = false
	}
	if *flagFullscreen {
		cfg.Window.Fullscreen = true
	}
	if *flagWidth > 0 {
		cfg.Window.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Window.Height = *flagHeight
	}
}
