// Package still renders single frames of the scene on the CPU, without a
// window or GL context.
package still

import (
	"errors"
	"fmt"
	"image"
	"time"

	"go.uber.org/zap"

	"github.com/cyberkunju/cortex/internal/config"
	"github.com/cyberkunju/cortex/internal/engine/camera"
	"github.com/cyberkunju/cortex/internal/engine/mesh"
	"github.com/cyberkunju/cortex/internal/engine/noise"
	"github.com/cyberkunju/cortex/internal/engine/raster"
	"github.com/cyberkunju/cortex/internal/engine/scene"
	"github.com/cyberkunju/cortex/internal/engine/sculpt"
	"github.com/cyberkunju/cortex/internal/logger"
	"github.com/cyberkunju/cortex/internal/section"
)

// coreSegments is the core sphere's tessellation, as on the GPU.
const coreSegments = 32

// Options selects the frame to render.
type Options struct {
	// Time is the scene clock in seconds. Negative means Frames/60.
	Time float64
	// Frames is how many ease steps the camera takes from Intro toward
	// the configured start section.
	Frames int
	// Post applies the CPU post chain when the config enables it.
	Post bool
}

// Result is a rendered frame.
type Result struct {
	Image   *image.RGBA
	Stats   raster.Stats
	Camera  *camera.Rig
	Time    float64
	Elapsed time.Duration
}

// Render draws one frame of cfg's scene at cfg.Graphics.Width x Height.
func Render(cfg *config.Config, opts Options) (*Result, error) {
	if cfg == nil {
		return nil, errors.New("nil config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if opts.Frames < 0 {
		return nil, fmt.Errorf("frames must be >= 0, got %d", opts.Frames)
	}
	log := logger.Named("still")
	start := time.Now()

	t := opts.Time
	if t < 0 {
		t = float64(opts.Frames) / 60
	}

	rig := camera.NewRig(section.Intro)
	rig.SetEase(cfg.Scene.Ease)
	rig.Select(cfg.Scene.StartSection)
	for i := 0; i < opts.Frames; i++ {
		rig.Step()
	}

	w, h := cfg.Graphics.Width, cfg.Graphics.Height
	base := mesh.Icosphere(cfg.Scene.Radius, cfg.Scene.Detail)
	sc := scene.ConfigFrom(cfg.Scene, int32(w), int32(h), base)

	r := raster.New(w, h, sc.Background)
	vp := rig.ViewProjection(r.Aspect())
	r.DrawLit(mesh.UVSphere(1, coreSegments, coreSegments), sc.CoreColor, sc.Lights, scene.CoreMatrix(), vp)
	sculptor := sculpt.New(noise.NewSimplex(cfg.Scene.Seed), sc.Sculpt)
	r.DrawBrain(sculptor, base, sc.Shading, scene.BrainMatrix(t), vp, t)

	img := r.Image()
	if opts.Post {
		sc.Post.Apply(img, t)
	}

	res := &Result{
		Image:   img,
		Stats:   r.Stats(),
		Camera:  rig,
		Time:    t,
		Elapsed: time.Since(start),
	}
	log.Debug("still rendered",
		zap.Int("width", w),
		zap.Int("height", h),
		zap.Stringer("section", rig.Section()),
		zap.Float64("t", t),
		zap.Int("triangles", res.Stats.Triangles),
		zap.Int("fragments", res.Stats.Fragments),
		zap.Duration("elapsed", res.Elapsed))
	return res, nil
}
