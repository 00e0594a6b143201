package states

import (
	"fmt"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/cyberkunju/cortex/internal/engine/input"
	"github.com/cyberkunju/cortex/internal/engine/mesh"
	"github.com/cyberkunju/cortex/internal/logger"
)

// FacesPerFrame is how many icosahedron faces the loader subdivides per
// frame. At detail 60 one face is about 11k vertices.
const FacesPerFrame = 2

// LoadingState builds the brain mesh over several frames behind a loader
// bar, then hands a finished scene to the showcase.
type LoadingState struct {
	env     *Env
	builder *mesh.IcosphereBuilder
	started time.Time
	log     *zap.Logger

	// Progress in percent, as drawn on the loader.
	Progress float64
}

// NewLoadingState creates a new loading state.
func NewLoadingState(env *Env) *LoadingState {
	return &LoadingState{
		env: env,
		log: logger.Named("loading"),
	}
}

// Enter is called when entering this state.
func (s *LoadingState) Enter() error {
	sc := s.env.Config.Scene
	s.builder = mesh.NewIcosphereBuilder(sc.Radius, sc.Detail)
	s.started = time.Now()
	s.Progress = 0

	s.log.Info("building brain mesh",
		zap.Float32("radius", sc.Radius),
		zap.Int("detail", sc.Detail),
		zap.Int("vertices", mesh.IcosphereVertexCount(sc.Detail)))
	return nil
}

// Exit is called when leaving this state.
func (s *LoadingState) Exit() error {
	return nil
}

// Update subdivides the next faces. The frame after the bar reaches 100 the
// scene is created and the showcase scheduled.
func (s *LoadingState) Update(in FrameInput) error {
	if !s.builder.Done() {
		s.builder.Step(FacesPerFrame)
		s.Progress = float64(s.builder.Progress()) * 100
		return nil
	}

	brain := s.builder.Mesh()
	s.log.Info("brain mesh built",
		zap.Int("vertices", len(brain.Vertices)),
		zap.Uint64("frames", in.Frame),
		zap.Duration("elapsed", time.Since(s.started)))

	sc, err := s.env.NewScene(brain)
	if err != nil {
		return fmt.Errorf("creating scene: %w", err)
	}
	s.env.Manager.Change(NewShowcaseState(s.env, sc))
	return nil
}

// Render draws the loader over a black screen.
func (s *LoadingState) Render(in FrameInput) error {
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	gl.ClearColor(0, 0, 0, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	ui := s.env.UI
	ui.Begin()
	s.env.Overlay.DrawLoader(ui, s.Progress)
	ui.End()
	return nil
}

// HandleInput lets Esc abort loading.
func (s *LoadingState) HandleInput(ev input.Event) error {
	if ev.Type == input.EventKeyDown && ev.Key == sdl.SCANCODE_ESCAPE {
		s.env.Quit()
	}
	return nil
}
