// Package input handles SDL2 input events.
package input

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/veandco/go-sdl2/sdl"
)

// EventType classifies a processed event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventKeyUp
	EventMouseMove
	EventMouseDown
	EventMouseUp
	EventMouseWheel
)

// Event represents a processed input event.
type Event struct {
	Type   EventType
	Key    sdl.Scancode
	Repeat bool
	Width  int
	Height int
	MouseX int
	MouseY int
	Button uint8
	WheelY int // positive away from the user
}

// Input handles all input processing and remembers the latest pointer
// position.
type Input struct {
	events  []Event
	mouseX  int
	mouseY  int
	width   int
	height  int
	pointed bool
}

// New creates a new input handler for a window of the given size.
func New(width, height int) *Input {
	return &Input{
		events: make([]Event, 0, 16),
		width:  width,
		height: height,
	}
}

// Update polls SDL events and converts them to app events.
// Returns true if the app should quit.
func (i *Input) Update() bool {
	i.events = i.events[:0]

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			i.events = append(i.events, Event{Type: EventQuit})
			return true

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_RESIZED || e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
				i.width, i.height = int(e.Data1), int(e.Data2)
				i.events = append(i.events, Event{
					Type:   EventWindowResize,
					Width:  i.width,
					Height: i.height,
				})
			}

		case *sdl.KeyboardEvent:
			ev := Event{Key: e.Keysym.Scancode, Repeat: e.Repeat != 0}
			if e.Type == sdl.KEYDOWN {
				ev.Type = EventKeyDown
			} else {
				ev.Type = EventKeyUp
			}
			i.events = append(i.events, ev)

		case *sdl.MouseMotionEvent:
			i.track(int(e.X), int(e.Y))
			i.events = append(i.events, Event{
				Type:   EventMouseMove,
				MouseX: int(e.X),
				MouseY: int(e.Y),
			})

		case *sdl.MouseButtonEvent:
			i.track(int(e.X), int(e.Y))
			ev := Event{MouseX: int(e.X), MouseY: int(e.Y), Button: e.Button}
			if e.Type == sdl.MOUSEBUTTONDOWN {
				ev.Type = EventMouseDown
			} else {
				ev.Type = EventMouseUp
			}
			i.events = append(i.events, ev)

		case *sdl.MouseWheelEvent:
			dy := int(e.Y)
			if e.Direction == sdl.MOUSEWHEEL_FLIPPED {
				dy = -dy
			}
			if dy != 0 {
				i.events = append(i.events, Event{Type: EventMouseWheel, WheelY: dy})
			}
		}
	}

	return false
}

func (i *Input) track(x, y int) {
	i.mouseX, i.mouseY = x, y
	i.pointed = true
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}

// IsKeyPressed checks if a specific key went down this frame, ignoring
// auto-repeat.
func (i *Input) IsKeyPressed(scancode sdl.Scancode) bool {
	for _, e := range i.events {
		if e.Type == EventKeyDown && e.Key == scancode && !e.Repeat {
			return true
		}
	}
	return false
}

// Wheel returns the net vertical scroll of this frame.
func (i *Input) Wheel() int {
	total := 0
	for _, e := range i.events {
		if e.Type == EventMouseWheel {
			total += e.WheelY
		}
	}
	return total
}

// Mouse returns the last pointer position in window coordinates.
func (i *Input) Mouse() (int, int) {
	return i.mouseX, i.mouseY
}

// Pointer returns the last pointer position in NDC. Before the pointer has
// entered the window it reads as the centre.
func (i *Input) Pointer() mgl32.Vec2 {
	if !i.pointed {
		return mgl32.Vec2{}
	}
	return PointerNDC(i.mouseX, i.mouseY, i.width, i.height)
}

// PointerNDC maps window coordinates (origin top-left) to [-1, 1] with +Y up.
func PointerNDC(x, y, width, height int) mgl32.Vec2 {
	if width <= 0 || height <= 0 {
		return mgl32.Vec2{}
	}
	nx := float32(x)/float32(width)*2 - 1
	ny := 1 - float32(y)/float32(height)*2
	return mgl32.Vec2{clamp1(nx), clamp1(ny)}
}

func clamp1(v float32) float32 {
	return max(-1, min(1, v))
}
