// Package scene composes the brain, its inner core, the light rig and the
// post chain into one frame.
package scene

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/cyberkunju/cortex/internal/config"
	"github.com/cyberkunju/cortex/internal/engine/camera"
	"github.com/cyberkunju/cortex/internal/engine/framebuffer"
	"github.com/cyberkunju/cortex/internal/engine/lighting"
	"github.com/cyberkunju/cortex/internal/engine/mesh"
	"github.com/cyberkunju/cortex/internal/engine/postfx"
	"github.com/cyberkunju/cortex/internal/engine/sculpt"
	"github.com/cyberkunju/cortex/internal/engine/shading"
	"github.com/cyberkunju/cortex/internal/logger"
	"github.com/cyberkunju/cortex/pkg/math"
)

// Config contains scene configuration options.
type Config struct {
	Width      int32
	Height     int32
	Brain      *mesh.Mesh // base icosphere, sculpted on the GPU
	Sculpt     sculpt.Params
	Shading    shading.Params
	CoreColor  mgl32.Vec3
	Background mgl32.Vec3
	Lights     *lighting.Rig
	Post       postfx.Params
}

// DefaultConfig returns the scene's look. Brain must still be set.
func DefaultConfig() Config {
	return Config{
		Width:      1280,
		Height:     720,
		Sculpt:     sculpt.Default(),
		Shading:    shading.Default(),
		CoreColor:  math.Hex(0x1a0033),
		Background: math.Hex(0x000000),
		Lights:     lighting.Default(),
		Post:       postfx.Default(),
	}
}

// ConfigFrom applies the user's scene settings to DefaultConfig. Colours
// must already have passed config.Validate.
func ConfigFrom(sc config.SceneConfig, width, height int32, brain *mesh.Mesh) Config {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = width, height
	cfg.Brain = brain
	cfg.Shading.BaseColor = config.MustColor(sc.BaseColor)
	cfg.Shading.RidgeColor = config.MustColor(sc.RidgeColor)
	cfg.CoreColor = config.MustColor(sc.CoreColor)
	cfg.Background = config.MustColor(sc.Background)
	cfg.Post.Enabled = sc.PostFX
	return cfg
}

// Scene owns every GL object of the 3D layer.
type Scene struct {
	config Config

	brain *BrainRenderer
	core  *CoreRenderer
	post  *postfx.Chain

	width  int32
	height int32
}

// New creates the scene. Any shader or framebuffer failure is returned and
// leaves nothing allocated.
func New(cfg Config) (*Scene, error) {
	if cfg.Brain == nil {
		return nil, fmt.Errorf("creating scene: no brain mesh")
	}
	if cfg.Lights == nil {
		cfg.Lights = lighting.Default()
	}

	s := &Scene{config: cfg, width: cfg.Width, height: cfg.Height}

	var err error
	s.brain, err = NewBrainRenderer(cfg.Brain, cfg.Sculpt, cfg.Shading)
	if err != nil {
		s.Destroy()
		return nil, fmt.Errorf("creating brain renderer: %w", err)
	}

	s.core, err = NewCoreRenderer(cfg.CoreColor)
	if err != nil {
		s.Destroy()
		return nil, fmt.Errorf("creating core renderer: %w", err)
	}

	s.post, err = postfx.New(cfg.Width, cfg.Height, cfg.Post)
	if err != nil {
		s.Destroy()
		return nil, fmt.Errorf("creating post chain: %w", err)
	}

	logger.Named("scene").Info("scene ready",
		zap.Int("brain_vertices", s.brain.VertexCount()),
		zap.Int("lights", cfg.Lights.Count()),
		zap.Bool("postfx", cfg.Post.Enabled))
	return s, nil
}

// Render draws one frame at time t from the rig's point of view and leaves
// the result in the default framebuffer.
func (s *Scene) Render(t float64, rig *camera.Rig) {
	view := rig.ViewMatrix()
	proj := rig.Projection(s.Aspect())

	s.post.Begin(s.config.Background)
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)

	s.core.Render(CoreMatrix(), view, proj, s.config.Lights)
	s.brain.Render(BrainMatrix(t), view, proj, t)

	s.post.End(t)
}

// Aspect returns width / height.
func (s *Scene) Aspect() float32 {
	if s.height == 0 {
		return 1
	}
	return float32(s.width) / float32(s.height)
}

// Resize updates the viewport and every offscreen target.
func (s *Scene) Resize(width, height int32) {
	s.width, s.height = max(width, 1), max(height, 1)
	s.post.Resize(s.width, s.height)
	gl.Viewport(0, 0, s.width, s.height)
}

// SetPostEnabled toggles the post chain at runtime.
func (s *Scene) SetPostEnabled(on bool) {
	s.post.Params.Enabled = on
}

// PostEnabled reports whether the post chain runs.
func (s *Scene) PostEnabled() bool {
	return s.post.Params.Enabled
}

// Output returns the last composited frame for capture.
func (s *Scene) Output() *framebuffer.Framebuffer {
	return s.post.Output()
}

// Snapshot reads the last composited frame back as bottom-up RGBA rows.
func (s *Scene) Snapshot() ([]byte, int, int) {
	out := s.post.Output()
	w, h := out.Size()
	return out.ReadPixels(), int(w), int(h)
}

// Destroy releases all GL resources. Safe on a partially built scene.
func (s *Scene) Destroy() {
	if s.post != nil {
		s.post.Destroy()
		s.post = nil
	}
	if s.core != nil {
		s.core.Destroy()
		s.core = nil
	}
	if s.brain != nil {
		s.brain.Destroy()
		s.brain = nil
	}
}
