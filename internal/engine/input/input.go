// Package input handles SDL2 input events.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/xrtour/internal/logger"
)

// EventType classifies a processed event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventKeyUp
	EventControllerAdded
	EventControllerButtonDown
	EventControllerButtonUp
)

// Event represents a processed input event.
type Event struct {
	Type       EventType
	Key        sdl.Scancode
	Width      int
	Height     int
	Controller int   // device index or instance id
	Button     uint8 // controller button
}

// Input handles all input processing and tracks what is held down.
type Input struct {
	events      []Event
	keys        map[sdl.Scancode]bool
	buttons     map[uint8]bool
	controllers []*sdl.GameController
}

// New creates a new input handler.
func New() *Input {
	return &Input{
		events:  make([]Event, 0, 16),
		keys:    make(map[sdl.Scancode]bool),
		buttons: make(map[uint8]bool),
	}
}

// Update polls SDL events and converts them to input events.
// Returns true if the application should quit.
func (i *Input) Update() bool {
	i.events = i.events[:0] // Clear previous events

	quit := false
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		if i.handle(event) {
			quit = true
		}
	}

	for _, e := range i.events {
		if e.Type == EventControllerAdded {
			i.openController(e.Controller)
		}
	}
	return quit
}

// handle records one SDL event. Returns true for a quit request.
func (i *Input) handle(event sdl.Event) bool {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		i.events = append(i.events, Event{Type: EventQuit})
		return true

	case *sdl.WindowEvent:
		if e.Event == sdl.WINDOWEVENT_RESIZED {
			i.events = append(i.events, Event{
				Type:   EventWindowResize,
				Width:  int(e.Data1),
				Height: int(e.Data2),
			})
		}

	case *sdl.KeyboardEvent:
		if e.Type == sdl.KEYDOWN {
			// Repeats are not new presses.
			if e.Repeat == 0 {
				i.events = append(i.events, Event{Type: EventKeyDown, Key: e.Keysym.Scancode})
			}
			i.keys[e.Keysym.Scancode] = true
		} else if e.Type == sdl.KEYUP {
			i.events = append(i.events, Event{Type: EventKeyUp, Key: e.Keysym.Scancode})
			delete(i.keys, e.Keysym.Scancode)
		}

	case *sdl.ControllerDeviceEvent:
		if e.Type == sdl.CONTROLLERDEVICEADDED {
			i.events = append(i.events, Event{Type: EventControllerAdded, Controller: int(e.Which)})
		}

	case *sdl.ControllerButtonEvent:
		if e.Type == sdl.CONTROLLERBUTTONDOWN {
			i.events = append(i.events, Event{Type: EventControllerButtonDown, Controller: int(e.Which), Button: e.Button})
			i.buttons[e.Button] = true
		} else if e.Type == sdl.CONTROLLERBUTTONUP {
			i.events = append(i.events, Event{Type: EventControllerButtonUp, Controller: int(e.Which), Button: e.Button})
			delete(i.buttons, e.Button)
		}
	}
	return false
}

func (i *Input) openController(index int) {
	c := sdl.GameControllerOpen(index)
	if c == nil {
		logger.Warn("failed to open game controller", zap.Int("index", index))
		return
	}
	i.controllers = append(i.controllers, c)
	logger.Info("game controller opened", zap.Int("index", index), zap.String("name", c.Name()))
}

// Close releases opened controllers.
func (i *Input) Close() {
	for _, c := range i.controllers {
		c.Close()
	}
	i.controllers = nil
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}

// IsKeyPressed checks if a specific key was pressed this frame.
func (i *Input) IsKeyPressed(scancode sdl.Scancode) bool {
	for _, e := range i.events {
		if e.Type == EventKeyDown && e.Key == scancode {
			return true
		}
	}
	return false
}

// IsKeyHeld reports whether a key is currently down.
func (i *Input) IsKeyHeld(scancode sdl.Scancode) bool {
	return i.keys[scancode]
}

// IsButtonHeld reports whether a controller button is down on any controller.
func (i *Input) IsButtonHeld(button uint8) bool {
	return i.buttons[button]
}

// ControllerAdded reports whether a controller connected this frame.
func (i *Input) ControllerAdded() bool {
	for _, e := range i.events {
		if e.Type == EventControllerAdded {
			return true
		}
	}
	return false
}
