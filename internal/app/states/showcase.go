package states

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/cyberkunju/cortex/internal/engine/camera"
	"github.com/cyberkunju/cortex/internal/engine/input"
	"github.com/cyberkunju/cortex/internal/engine/ui2d"
	"github.com/cyberkunju/cortex/internal/logger"
	"github.com/cyberkunju/cortex/internal/section"
)

// sectionKeys maps the number row to sections in nav order.
var sectionKeys = map[sdl.Scancode]section.Section{
	sdl.SCANCODE_1: section.Intro,
	sdl.SCANCODE_2: section.About,
	sdl.SCANCODE_3: section.Projects,
	sdl.SCANCODE_4: section.Contact,
}

// ShowcaseState runs the interactive scene: the camera rig eases toward the
// active section while the overlay shows its content.
type ShowcaseState struct {
	env   *Env
	scene Scene
	rig   *camera.Rig
	log   *zap.Logger

	active      section.Section
	pendingShot bool

	fpsFrames int
	fpsTimer  float64
	fps       float64
}

// NewShowcaseState takes ownership of sc.
func NewShowcaseState(env *Env, sc Scene) *ShowcaseState {
	start := env.Config.Scene.StartSection
	rig := camera.NewRig(start)
	rig.SetEase(env.Config.Scene.Ease)
	return &ShowcaseState{
		env:    env,
		scene:  sc,
		rig:    rig,
		log:    logger.Named("showcase"),
		active: rig.Section(),
	}
}

// Enter sizes the scene to the current drawable.
func (s *ShowcaseState) Enter() error {
	s.resize()
	s.log.Info("showcase started", zap.Stringer("section", s.active))
	return nil
}

// Exit releases the scene.
func (s *ShowcaseState) Exit() error {
	if s.scene != nil {
		s.scene.Destroy()
		s.scene = nil
	}
	return nil
}

// Active returns the active section.
func (s *ShowcaseState) Active() section.Section {
	return s.active
}

// Rig returns the camera rig.
func (s *ShowcaseState) Rig() *camera.Rig {
	return s.rig
}

// Select makes sec the active section. Re-selecting is a no-op.
func (s *ShowcaseState) Select(sec section.Section) {
	if !sec.Valid() || sec == s.active {
		return
	}
	s.log.Debug("section selected",
		zap.Stringer("from", s.active),
		zap.Stringer("to", sec),
		zap.Float32("camera_distance", s.rig.Distance()))
	s.active = sec
	s.rig.Select(sec)
}

// Update steps the camera ease once.
func (s *ShowcaseState) Update(in FrameInput) error {
	s.rig.Step()

	s.fpsFrames++
	s.fpsTimer += in.Delta
	if s.fpsTimer >= 1 {
		s.fps = float64(s.fpsFrames) / s.fpsTimer
		s.log.Debug("fps",
			zap.Float64("fps", s.fps),
			zap.Float64("t", in.Time),
			zap.Float32("pointer_x", in.Pointer.X()),
			zap.Float32("pointer_y", in.Pointer.Y()))
		s.fpsFrames, s.fpsTimer = 0, 0
	}
	return nil
}

// Render draws the scene, then the overlay. A nav click is applied after the
// frame so the whole frame sees one section.
func (s *ShowcaseState) Render(in FrameInput) error {
	s.scene.Render(in.Time, s.rig)

	if s.pendingShot {
		s.pendingShot = false
		s.screenshot()
	}

	if !s.env.Config.Overlay.Enabled {
		return nil
	}
	ui := s.env.UI
	ui.Begin()
	picked, clicked := s.env.Overlay.Draw(ui, s.active, in.Time)
	if s.env.Config.Overlay.ShowFPS {
		w, _ := ui.GetScreenSize()
		ui.Text(w/2, 8, fmt.Sprintf("%.0f FPS", s.fps), 1, ui2d.ColorTextDim, ui2d.AlignCenter)
	}
	ui.End()

	if clicked {
		s.Select(picked)
	}
	return nil
}

// HandleInput handles navigation and app keys.
func (s *ShowcaseState) HandleInput(ev input.Event) error {
	switch ev.Type {
	case input.EventWindowResize:
		s.resize()

	case input.EventMouseWheel:
		if ev.WheelY < 0 {
			s.Select(s.active.Next())
		} else if ev.WheelY > 0 {
			s.Select(s.active.Prev())
		}

	case input.EventKeyDown:
		if ev.Repeat {
			return nil
		}
		if sec, ok := sectionKeys[ev.Key]; ok {
			s.Select(sec)
			return nil
		}
		switch ev.Key {
		case sdl.SCANCODE_ESCAPE:
			s.env.Quit()
		case sdl.SCANCODE_RIGHT:
			s.Select(s.active.Next())
		case sdl.SCANCODE_LEFT:
			s.Select(s.active.Prev())
		case sdl.SCANCODE_F11:
			s.env.Display.ToggleFullscreen()
		case sdl.SCANCODE_F12:
			s.pendingShot = true
		case sdl.SCANCODE_P:
			s.scene.SetPostEnabled(!s.scene.PostEnabled())
			s.log.Info("post chain toggled", zap.Bool("enabled", s.scene.PostEnabled()))
		}
	}
	return nil
}

func (s *ShowcaseState) resize() {
	w, h := s.env.Display.DrawableSize()
	s.scene.Resize(int32(w), int32(h))
}

func (s *ShowcaseState) screenshot() {
	if s.env.Capture == nil {
		return
	}
	pixels, w, h := s.scene.Snapshot()
	path, err := s.env.Capture.CaptureFromPixels(pixels, w, h)
	if err != nil {
		s.log.Error("screenshot failed", zap.Error(err))
		return
	}
	s.log.Info("screenshot saved", zap.String("path", path))
}
