package sculpt

import (
	"sync"

	"github.com/Faultbox/clay/pkg/math"
)

// Pointer is the latest pointer state written by input handlers and read
// once per tick. Handlers never touch mesh buffers.
type Pointer struct {
	mu      sync.Mutex
	ndc     math.Vec2
	pressed bool
	inside  bool
}

// Set records the pointer position in normalized device coordinates and
// whether the sculpt button is held.
func (p *Pointer) Set(ndc math.Vec2, pressed bool) {
	p.mu.Lock()
	p.ndc = ndc
	p.pressed = pressed
	p.inside = true
	p.mu.Unlock()
}

// Move updates the position and keeps the button state.
func (p *Pointer) Move(ndc math.Vec2) {
	p.mu.Lock()
	p.ndc = ndc
	p.inside = true
	p.mu.Unlock()
}

// Press updates the button state and keeps the position.
func (p *Pointer) Press(pressed bool) {
	p.mu.Lock()
	p.pressed = pressed
	p.mu.Unlock()
}

// Leave marks the pointer as outside the viewport and releases the button.
func (p *Pointer) Leave() {
	p.mu.Lock()
	p.inside = false
	p.pressed = false
	p.mu.Unlock()
}

// PointerState is a consistent copy of the pointer.
type PointerState struct {
	NDC     math.Vec2
	Pressed bool
	Inside  bool
}

// Snapshot returns the current state.
func (p *Pointer) Snapshot() PointerState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return PointerState{NDC: p.ndc, Pressed: p.pressed, Inside: p.inside}
}
