// Package app implements the main loop: window, input, state management and
// the per-frame tick.
package app

import (
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/cyberkunju/cortex/internal/app/states"
	"github.com/cyberkunju/cortex/internal/config"
	"github.com/cyberkunju/cortex/internal/engine/debug"
	"github.com/cyberkunju/cortex/internal/engine/input"
	"github.com/cyberkunju/cortex/internal/engine/mesh"
	"github.com/cyberkunju/cortex/internal/engine/scene"
	"github.com/cyberkunju/cortex/internal/engine/ui2d"
	"github.com/cyberkunju/cortex/internal/engine/window"
	"github.com/cyberkunju/cortex/internal/logger"
	"github.com/cyberkunju/cortex/internal/overlay"
)

// Title is the window title.
const Title = "cortex"

// App is the interactive application.
type App struct {
	config  *config.Config
	running bool
	log     *zap.Logger

	window  *window.Window
	input   *input.Input
	ui      *ui2d.Context
	overlay *overlay.Overlay
	states  *states.Manager

	start time.Time
	last  time.Time
	frame uint64
}

// New opens the window and prepares the loading state.
func New(cfg *config.Config) (*App, error) {
	a := &App{
		config: cfg,
		log:    logger.Named("app"),
	}
	a.log.Info("initializing",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
		zap.Stringer("start_section", cfg.Scene.StartSection))

	var err error
	a.window, err = window.New(window.Config{
		Title:      Title,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	ww, wh := a.window.GetSize()
	dw, dh := a.window.DrawableSize()
	a.input = input.New(ww, wh)

	a.ui, err = ui2d.NewContext(dw, dh)
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to create ui: %w", err)
	}
	a.overlay = overlay.New(a.ui.Renderer().Atlas())
	a.overlay.SetDensity(a.density())

	a.states = states.NewManager()
	env := &states.Env{
		Config:   cfg,
		Display:  a.window,
		UI:       a.ui,
		Overlay:  a.overlay,
		Capture:  debug.NewScreenshotCapture(cfg.Capture.Dir, cfg.Capture.Prefix),
		Manager:  a.states,
		NewScene: a.newScene,
		Quit:     a.Quit,
	}
	a.states.Change(states.NewLoadingState(env))

	a.log.Info("initialized", zap.String("session", logger.Session()))
	return a, nil
}

func (a *App) newScene(brain *mesh.Mesh) (states.Scene, error) {
	w, h := a.window.DrawableSize()
	sc, err := scene.New(scene.ConfigFrom(a.config.Scene, int32(w), int32(h), brain))
	if err != nil {
		return nil, err
	}
	return sc, nil
}

// density is drawable pixels per window unit.
func (a *App) density() float32 {
	ww, _ := a.window.GetSize()
	dw, _ := a.window.DrawableSize()
	if ww <= 0 {
		return 1
	}
	return float32(dw) / float32(ww)
}

// Quit stops the loop after the current frame.
func (a *App) Quit() {
	a.running = false
}

// Run starts the main loop and blocks until the window closes.
func (a *App) Run() error {
	a.running = true
	a.start = time.Now()
	a.last = a.start

	var budget time.Duration
	if a.config.Graphics.FPSLimit > 0 {
		budget = time.Second / time.Duration(a.config.Graphics.FPSLimit)
	}

	a.log.Info("starting main loop")
	for a.running {
		frameStart := time.Now()

		if a.input.Update() {
			a.running = false
			break
		}
		if err := a.dispatch(); err != nil {
			return err
		}

		in := a.sample(frameStart)
		if err := a.states.Update(in); err != nil {
			return fmt.Errorf("update error: %w", err)
		}
		if err := a.states.Render(in); err != nil {
			return fmt.Errorf("render error: %w", err)
		}
		a.window.SwapBuffers()

		if budget > 0 {
			if spent := time.Since(frameStart); spent < budget {
				sdl.Delay(uint32((budget - spent).Milliseconds()))
			}
		}
	}
	return nil
}

// sample reads time and pointer once for the whole frame.
func (a *App) sample(now time.Time) states.FrameInput {
	in := states.FrameInput{
		Time:    now.Sub(a.start).Seconds(),
		Delta:   now.Sub(a.last).Seconds(),
		Pointer: a.input.Pointer(),
		Frame:   a.frame,
	}
	a.last = now
	a.frame++
	return in
}

// dispatch feeds this frame's events to the UI and the current state.
func (a *App) dispatch() error {
	ui := a.ui.Input()
	d := a.density()

	for _, ev := range a.input.Events() {
		switch ev.Type {
		case input.EventWindowResize:
			dw, dh := a.window.DrawableSize()
			a.ui.Resize(dw, dh)
			a.overlay.SetDensity(d)
			a.log.Debug("resized",
				zap.Int("width", ev.Width),
				zap.Int("height", ev.Height),
				zap.Int("drawable_width", dw),
				zap.Int("drawable_height", dh))
		case input.EventMouseMove:
			ui.MouseX, ui.MouseY = float32(ev.MouseX)*d, float32(ev.MouseY)*d
		case input.EventMouseDown:
			ui.MouseX, ui.MouseY = float32(ev.MouseX)*d, float32(ev.MouseY)*d
			if ev.Button == sdl.BUTTON_LEFT {
				ui.MouseLeftDown = true
				ui.MouseLeftClicked = true
			}
		case input.EventMouseUp:
			if ev.Button == sdl.BUTTON_LEFT {
				ui.MouseLeftDown = false
			}
		}

		if err := a.states.HandleInput(ev); err != nil {
			return fmt.Errorf("input error: %w", err)
		}
	}
	return nil
}

// Close releases every resource in reverse order of creation.
func (a *App) Close() {
	a.log.Info("closing",
		zap.Uint64("frames", a.frame),
		zap.Duration("uptime", time.Since(a.start)))

	if err := a.states.Close(); err != nil {
		a.log.Warn("state exit failed", zap.Error(err))
	}
	if a.ui != nil {
		a.ui.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}
