// Package app wires the sculpting session to the window, renderer and
// feedback devices and runs the main loop.
package app

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/clay/internal/config"
	"github.com/Faultbox/clay/internal/engine/audio"
	"github.com/Faultbox/clay/internal/engine/camera"
	"github.com/Faultbox/clay/internal/engine/cursor"
	"github.com/Faultbox/clay/internal/engine/haptics"
	"github.com/Faultbox/clay/internal/engine/input"
	"github.com/Faultbox/clay/internal/engine/lighting"
	"github.com/Faultbox/clay/internal/engine/picking"
	"github.com/Faultbox/clay/internal/engine/renderer"
	"github.com/Faultbox/clay/internal/engine/window"
	"github.com/Faultbox/clay/internal/logger"
	"github.com/Faultbox/clay/internal/sculpt"
	"github.com/Faultbox/clay/pkg/math"
)

// Tool adjustment steps for the bracket and minus/equals keys.
const (
	strengthStep = 1.25
	radiusStep   = 0.1
)

// App is the sculpting application.
type App struct {
	cfg     *config.Config
	running bool

	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input

	camera  *camera.Camera
	mapper  *picking.Mapper
	light   lighting.Light
	cursor  *cursor.Cursor
	audio   *audio.Manager
	haptics *haptics.Manager
	pad     *haptics.Controller

	session *sculpt.Session

	// Export paths chosen in the save dialog, consumed on the main thread.
	exports chan string
}

// New creates the window and every subsystem.
func New(cfg *config.Config) (*App, error) {
	logger.Info("initializing app",
		zap.String("title", cfg.Window.Title),
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
	)

	a := &App{
		cfg:     cfg,
		input:   input.New(),
		camera:  camera.New(),
		light:   lighting.Studio(),
		cursor:  cursor.New(cfg.Tool.InfluenceRadius),
		exports: make(chan string, 1),
	}

	// Create window (this also creates OpenGL context)
	var err error
	a.window, err = window.New(window.Config{
		Title:      cfg.Window.Title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
		MSAA:       cfg.Window.MSAA,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Create renderer (AFTER window, since OpenGL context must exist)
	fbw, fbh := a.window.DrawableSize()
	a.renderer, err = renderer.New(renderer.Config{
		Width:  fbw,
		Height: fbh,
		MSAA:   cfg.Window.MSAA,
	})
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}
	a.renderer.Resize(fbw, fbh)
	a.camera.SetViewport(fbw, fbh)
	a.mapper = picking.NewMapper(a.camera, math.Vec3{})

	a.audio = audio.New()
	a.audio.SetMasterVolume(float64(cfg.Audio.MasterVolume))
	a.audio.SetFeedbackVolume(float64(cfg.Audio.FeedbackVolume))
	a.audio.SetMuted(cfg.Audio.Muted)
	if err := a.audio.Init(cfg.Audio.SampleRate); err != nil {
		logger.Warn("audio unavailable, continuing without sound", zap.Error(err))
	}

	var device haptics.Rumbler
	if cfg.Haptics.Enabled {
		pad, err := haptics.OpenController()
		switch {
		case err == nil:
			a.pad = pad
			device = pad
			logger.Info("controller attached", zap.String("name", pad.Name()))
		case errors.Is(err, haptics.ErrNoController):
			logger.Debug("no controller, haptics disabled")
		default:
			logger.Warn("controller unavailable", zap.Error(err))
		}
	}
	a.haptics = haptics.New(device, haptics.Options{
		Enabled:  cfg.Haptics.Enabled,
		Strength: cfg.Haptics.Strength,
		Cooldown: cfg.Haptics.Cooldown,
	})

	a.session, err = sculpt.New(cfg.SculptConfig(), a.mapper, sculpt.Collaborators{
		Geometry: a.renderer,
		Feedback: a.audio,
		Haptics:  a.haptics,
		Cursor:   a.cursor,
	})
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to start session: %w", err)
	}
	a.updateTitle()

	logger.Info("app initialized successfully")
	return a, nil
}

// Run starts the main loop.
func (a *App) Run() error {
	a.running = true

	// Timing
	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	logger.Info("starting main loop")

	for a.running {
		// Calculate delta time
		now := time.Now()
		dt := float32(now.Sub(lastTime).Seconds())
		lastTime = now

		// 1. Process input
		if a.input.Update() {
			a.running = false
			break
		}
		for _, event := range a.input.Events() {
			if err := a.handleEvent(event); err != nil {
				return err
			}
		}
		a.drainExports()

		// 2. Update session
		a.session.Tick(now, dt)
		a.cursor.Update(dt)

		// 3. Render
		a.render()

		// 4. Present (swap buffers)
		a.window.SwapBuffers()

		// FPS counter
		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			if a.cfg.Window.ShowFPS {
				a.window.SetTitle(fmt.Sprintf("%s (%d fps)", a.title(), frameCount))
			}
			logger.Debug("fps", zap.Int("count", frameCount), zap.Float32("dt_ms", dt*1000))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

// Close cleans up app resources.
func (a *App) Close() {
	logger.Info("closing app")

	if a.audio != nil {
		a.audio.Close()
	}
	if a.pad != nil {
		a.pad.Close()
	}
	if a.renderer != nil {
		a.renderer.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}

func (a *App) handleEvent(e input.Event) error {
	switch e.Type {
	case input.EventWindowResize:
		fbw, fbh := a.window.DrawableSize()
		a.renderer.Resize(fbw, fbh)
		a.camera.SetViewport(fbw, fbh)
		a.mapper.Update(a.camera, math.Vec3{})

	case input.EventMouseMove:
		a.session.Pointer().Move(a.toNDC(e.MouseX, e.MouseY))

	case input.EventMouseDown:
		if e.Button == 1 {
			a.session.Pointer().Set(a.toNDC(e.MouseX, e.MouseY), true)
		}

	case input.EventMouseUp:
		if e.Button == 1 {
			a.session.Pointer().Set(a.toNDC(e.MouseX, e.MouseY), false)
		}

	case input.EventMouseLeave:
		a.session.Pointer().Leave()

	case input.EventMouseWheel:
		a.camera.HandleZoom(e.Wheel)
		a.mapper.Update(a.camera, math.Vec3{})

	case input.EventKeyDown:
		return a.handleKey(e)
	}
	return nil
}

func (a *App) toNDC(x, y int) math.Vec2 {
	w, h := a.window.GetSize()
	return picking.ScreenToNDC(float32(x), float32(y), float32(w), float32(h))
}

func (a *App) handleKey(e input.Event) error {
	act, shape := keyAction(e)
	s := a.session
	tool := s.Tool()

	switch act {
	case actQuit:
		a.running = false
	case actUndo:
		s.Undo()
	case actReset:
		s.ResetShape()
	case actShape:
		if err := s.ChangeShape(shape); err != nil {
			return fmt.Errorf("change shape: %w", err)
		}
	case actNextMaterial:
		s.ChangeMaterial(s.Material().Next())
	case actStrengthDown:
		s.SetStrength(tool.Strength / strengthStep)
	case actStrengthUp:
		s.SetStrength(tool.Strength * strengthStep)
	case actRadiusDown:
		s.SetInfluenceRadius(tool.InfluenceRadius - radiusStep)
	case actRadiusUp:
		s.SetInfluenceRadius(tool.InfluenceRadius + radiusStep)
	case actExport:
		a.requestExport()
	case actScreenshot:
		a.screenshot()
	case actTurntable:
		s.SetTurntable(!s.Turntable())
	case actSavePrefs:
		a.savePreferences()
	default:
		return nil
	}

	a.cursor.SetSize(s.Tool().InfluenceRadius)
	a.updateTitle()
	return nil
}

// savePreferences stores the current tool, shape and material as the
// starting state for the next launch.
func (a *App) savePreferences() {
	s := a.session
	a.cfg.Tool = s.Tool()
	a.cfg.Session.Shape = s.Shape()
	a.cfg.Session.Material = s.Material()
	a.cfg.Session.Turntable = s.Turntable()

	if err := a.cfg.Save(); err != nil {
		logger.Warn("failed to save preferences", zap.Error(err))
		return
	}
	logger.Info("preferences saved", zap.String("dir", config.ConfigDir()))
}

func (a *App) render() {
	c := a.cursor
	a.renderer.Draw(renderer.Frame{
		View:       a.camera.ViewMatrix(),
		Projection: a.camera.ProjectionMatrix(),
		CameraPos:  a.camera.Position(),
		Model:      math.RotateY(a.session.Rotation()),
		Surface:    a.session.Material().Surface(),
		Light:      a.light,
		Cursor: renderer.CursorState{
			Position: c.Position(),
			Radius:   c.Radius(),
			Color:    c.Color(),
			Visible:  c.Visible(),
		},
	})
}

func (a *App) title() string {
	t := a.session.Tool()
	return fmt.Sprintf("%s - %s %s - strength %.2f radius %.1f",
		a.cfg.Window.Title, a.session.Material(), a.session.Shape(), t.Strength, t.InfluenceRadius)
}

func (a *App) updateTitle() {
	a.window.SetTitle(a.title())
}
