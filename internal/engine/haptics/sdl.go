package haptics

import (
	"errors"
	"fmt"

	"github.com/veandco/go-sdl2/sdl"
)

// ErrNoController is returned when no game controller is attached.
var ErrNoController = errors.New("no game controller attached")

// Controller is an SDL game controller used as a rumble device.
type Controller struct {
	gc   *sdl.GameController
	name string
}

// OpenController opens the first attached game controller. SDL must be
// initialized with sdl.INIT_GAMECONTROLLER.
func OpenController() (*Controller, error) {
	for i := 0; i < sdl.NumJoysticks(); i++ {
		if !sdl.IsGameController(i) {
			continue
		}
		gc := sdl.GameControllerOpen(i)
		if gc == nil {
			return nil, fmt.Errorf("open controller %d: %w", i, sdl.GetError())
		}
		return &Controller{gc: gc, name: gc.Name()}, nil
	}
	return nil, ErrNoController
}

// Name returns the controller's product name.
func (c *Controller) Name() string {
	return c.name
}

// Rumble implements Rumbler.
func (c *Controller) Rumble(low, high uint16, durationMS uint32) error {
	return c.gc.Rumble(low, high, durationMS)
}

// Close releases the controller.
func (c *Controller) Close() {
	if c.gc != nil {
		c.gc.Close()
		c.gc = nil
	}
}
