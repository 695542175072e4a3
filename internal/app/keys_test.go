package app

import (
	"testing"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/clay/internal/engine/input"
	"github.com/Faultbox/clay/internal/sculpt/geometry"
)

func keyDown(code sdl.Scancode, mod sdl.Keymod) input.Event {
	return input.Event{Type: input.EventKeyDown, Key: code, Mod: mod}
}

func TestKeyAction(t *testing.T) {
	tests := []struct {
		name      string
		event     input.Event
		want      action
		wantShape geometry.Shape
	}{
		{"escape quits", keyDown(sdl.SCANCODE_ESCAPE, 0), actQuit, 0},
		{"ctrl+z undoes", keyDown(sdl.SCANCODE_Z, sdl.KMOD_LCTRL), actUndo, 0},
		{"cmd+z undoes", keyDown(sdl.SCANCODE_Z, sdl.KMOD_LGUI), actUndo, 0},
		{"plain z does nothing", keyDown(sdl.SCANCODE_Z, 0), actNone, 0},
		{"r resets", keyDown(sdl.SCANCODE_R, 0), actReset, 0},
		{"m cycles material", keyDown(sdl.SCANCODE_M, 0), actNextMaterial, 0},
		{"1 selects cylinder", keyDown(sdl.SCANCODE_1, 0), actShape, geometry.Cylinder},
		{"5 selects torus", keyDown(sdl.SCANCODE_5, 0), actShape, geometry.Torus},
		{"[ weakens", keyDown(sdl.SCANCODE_LEFTBRACKET, 0), actStrengthDown, 0},
		{"] strengthens", keyDown(sdl.SCANCODE_RIGHTBRACKET, 0), actStrengthUp, 0},
		{"- shrinks radius", keyDown(sdl.SCANCODE_MINUS, 0), actRadiusDown, 0},
		{"= grows radius", keyDown(sdl.SCANCODE_EQUALS, 0), actRadiusUp, 0},
		{"e exports", keyDown(sdl.SCANCODE_E, 0), actExport, 0},
		{"f12 screenshots", keyDown(sdl.SCANCODE_F12, 0), actScreenshot, 0},
		{"ctrl+s saves preferences", keyDown(sdl.SCANCODE_S, sdl.KMOD_LCTRL), actSavePrefs, 0},
		{"plain s does nothing", keyDown(sdl.SCANCODE_S, 0), actNone, 0},
		{"space toggles turntable", keyDown(sdl.SCANCODE_SPACE, 0), actTurntable, 0},
		{"key up ignored", input.Event{Type: input.EventKeyUp, Key: sdl.SCANCODE_ESCAPE}, actNone, 0},
		{"repeat reset ignored", input.Event{Type: input.EventKeyDown, Key: sdl.SCANCODE_R, Repeat: true}, actNone, 0},
		{"repeat strength allowed", input.Event{Type: input.EventKeyDown, Key: sdl.SCANCODE_RIGHTBRACKET, Repeat: true}, actStrengthUp, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, shape := keyAction(tt.event)
			if got != tt.want {
				t.Errorf("keyAction = %d, want %d", got, tt.want)
			}
			if got == actShape && shape != tt.wantShape {
				t.Errorf("shape = %s, want %s", shape, tt.wantShape)
			}
		})
	}
}
