// Package states implements the app's loading and showcase states.
package states

import (
	"errors"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/cyberkunju/cortex/internal/config"
	"github.com/cyberkunju/cortex/internal/engine/camera"
	"github.com/cyberkunju/cortex/internal/engine/debug"
	"github.com/cyberkunju/cortex/internal/engine/input"
	"github.com/cyberkunju/cortex/internal/engine/mesh"
	"github.com/cyberkunju/cortex/internal/engine/ui2d"
	"github.com/cyberkunju/cortex/internal/overlay"
)

// FrameInput is sampled once at the top of each frame and read by every
// stage of it.
type FrameInput struct {
	Time    float64    // seconds since start, never reset
	Delta   float64    // seconds since the previous frame
	Pointer mgl32.Vec2 // NDC, +Y up
	Frame   uint64
}

// State represents an app state (loading, showcase).
type State interface {
	// Enter is called when entering this state.
	Enter() error

	// Exit is called when leaving this state.
	Exit() error

	// Update is called every frame.
	Update(in FrameInput) error

	// Render is called every frame to draw the state.
	Render(in FrameInput) error

	// HandleInput processes one input event. Events arrive between frames.
	HandleInput(ev input.Event) error
}

// Scene is the 3D layer as the states drive it.
type Scene interface {
	Render(t float64, rig *camera.Rig)
	Resize(width, height int32)
	SetPostEnabled(on bool)
	PostEnabled() bool
	Snapshot() ([]byte, int, int)
	Destroy()
}

// Display is the window as the states see it.
type Display interface {
	GetSize() (int, int)
	DrawableSize() (int, int)
	ToggleFullscreen()
}

// Env carries what the states share with the app loop.
type Env struct {
	Config   *config.Config
	Display  Display
	UI       *ui2d.Context
	Overlay  *overlay.Overlay
	Capture  *debug.ScreenshotCapture
	Manager  *Manager
	NewScene func(brain *mesh.Mesh) (Scene, error)
	Quit     func()
}

// Manager manages state transitions.
type Manager struct {
	current State
	next    State
}

// NewManager creates a new state manager.
func NewManager() *Manager {
	return &Manager{}
}

// Current returns the current state.
func (m *Manager) Current() State {
	return m.current
}

// Change schedules a state change for the start of the next Update.
func (m *Manager) Change(next State) {
	m.next = next
}

// Update processes state changes and updates current state.
func (m *Manager) Update(in FrameInput) error {
	if m.next != nil {
		if m.current != nil {
			if err := m.current.Exit(); err != nil {
				return err
			}
		}
		m.current = m.next
		m.next = nil
		if err := m.current.Enter(); err != nil {
			return err
		}
	}

	if m.current != nil {
		return m.current.Update(in)
	}
	return nil
}

// Render renders the current state.
func (m *Manager) Render(in FrameInput) error {
	if m.current != nil {
		return m.current.Render(in)
	}
	return nil
}

// HandleInput forwards an event to the current state.
func (m *Manager) HandleInput(ev input.Event) error {
	if m.current != nil {
		return m.current.HandleInput(ev)
	}
	return nil
}

// Close exits the current state and any pending one that was never
// entered, so both release what they own.
func (m *Manager) Close() error {
	var errs []error
	if m.current != nil {
		errs = append(errs, m.current.Exit())
		m.current = nil
	}
	if m.next != nil {
		errs = append(errs, m.next.Exit())
		m.next = nil
	}
	return errors.Join(errs...)
}
