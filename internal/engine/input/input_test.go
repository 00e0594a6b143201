package input

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/veandco/go-sdl2/sdl"
)

func TestPointerNDC(t *testing.T) {
	tests := []struct {
		name string
		x, y int
		want mgl32.Vec2
	}{
		{"top left", 0, 0, mgl32.Vec2{-1, 1}},
		{"centre", 400, 300, mgl32.Vec2{0, 0}},
		{"bottom right", 800, 600, mgl32.Vec2{1, -1}},
		{"quarter", 200, 450, mgl32.Vec2{-0.5, -0.5}},
		{"outside clamps", -50, 900, mgl32.Vec2{-1, -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PointerNDC(tt.x, tt.y, 800, 600)
			if !got.ApproxEqual(tt.want) {
				t.Errorf("PointerNDC(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}

	if got := PointerNDC(10, 10, 0, 0); got != (mgl32.Vec2{}) {
		t.Errorf("zero-size window should give the centre, got %v", got)
	}
}

func TestPointerBeforeMotion(t *testing.T) {
	in := New(800, 600)
	if got := in.Pointer(); got != (mgl32.Vec2{}) {
		t.Errorf("pointer before any motion = %v, want centre", got)
	}
	in.track(800, 0)
	if got := in.Pointer(); !got.ApproxEqual(mgl32.Vec2{1, 1}) {
		t.Errorf("pointer = %v, want (1, 1)", got)
	}
}

func TestIsKeyPressedIgnoresRepeat(t *testing.T) {
	in := New(1, 1)
	in.events = append(in.events,
		Event{Type: EventKeyDown, Key: sdl.SCANCODE_RIGHT, Repeat: true},
		Event{Type: EventKeyUp, Key: sdl.SCANCODE_1},
	)
	if in.IsKeyPressed(sdl.SCANCODE_RIGHT) {
		t.Error("auto-repeat should not count as a press")
	}
	if in.IsKeyPressed(sdl.SCANCODE_1) {
		t.Error("key up is not a press")
	}

	in.events = append(in.events, Event{Type: EventKeyDown, Key: sdl.SCANCODE_1})
	if !in.IsKeyPressed(sdl.SCANCODE_1) {
		t.Error("expected key 1 pressed")
	}
}

func TestWheelSumsFrame(t *testing.T) {
	in := New(1, 1)
	in.events = append(in.events,
		Event{Type: EventMouseWheel, WheelY: 1},
		Event{Type: EventMouseMove},
		Event{Type: EventMouseWheel, WheelY: -3},
	)
	if got := in.Wheel(); got != -2 {
		t.Errorf("Wheel() = %d, want -2", got)
	}
}
