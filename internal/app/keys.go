package app

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/clay/internal/engine/input"
	"github.com/Faultbox/clay/internal/sculpt/geometry"
)

// action is a keyboard command.
type action int

const (
	actNone action = iota
	actQuit
	actUndo
	actReset
	actShape
	actNextMaterial
	actStrengthDown
	actStrengthUp
	actRadiusDown
	actRadiusUp
	actExport
	actScreenshot
	actTurntable
	actSavePrefs
)

var shapeKeys = map[sdl.Scancode]geometry.Shape{
	sdl.SCANCODE_1: geometry.Cylinder,
	sdl.SCANCODE_2: geometry.Sphere,
	sdl.SCANCODE_3: geometry.Cone,
	sdl.SCANCODE_4: geometry.Box,
	sdl.SCANCODE_5: geometry.Torus,
}

// keyAction maps a key press to a command. For actShape the shape is also
// returned.
func keyAction(e input.Event) (action, geometry.Shape) {
	if e.Type != input.EventKeyDown {
		return actNone, 0
	}
	if s, ok := shapeKeys[e.Key]; ok && !e.Repeat {
		return actShape, s
	}

	switch e.Key {
	case sdl.SCANCODE_ESCAPE:
		return actQuit, 0
	case sdl.SCANCODE_Z:
		if e.Ctrl() {
			return actUndo, 0
		}
	case sdl.SCANCODE_R:
		if !e.Repeat {
			return actReset, 0
		}
	case sdl.SCANCODE_M:
		if !e.Repeat {
			return actNextMaterial, 0
		}
	case sdl.SCANCODE_LEFTBRACKET:
		return actStrengthDown, 0
	case sdl.SCANCODE_RIGHTBRACKET:
		return actStrengthUp, 0
	case sdl.SCANCODE_MINUS:
		return actRadiusDown, 0
	case sdl.SCANCODE_EQUALS:
		return actRadiusUp, 0
	case sdl.SCANCODE_E:
		if !e.Repeat {
			return actExport, 0
		}
	case sdl.SCANCODE_F12:
		if !e.Repeat {
			return actScreenshot, 0
		}
	case sdl.SCANCODE_S:
		if e.Ctrl() && !e.Repeat {
			return actSavePrefs, 0
		}
	case sdl.SCANCODE_SPACE:
		if !e.Repeat {
			return actTurntable, 0
		}
	}
	return actNone, 0
}
