// Package config handles application configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/cyberkunju/cortex/internal/engine/noise"
	"github.com/cyberkunju/cortex/internal/section"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("invalid config")

// Config holds all application settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Scene    SceneConfig    `yaml:"scene"`
	Overlay  OverlayConfig  `yaml:"overlay"`
	Capture  CaptureConfig  `yaml:"capture"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
	FPSLimit   int  `yaml:"fps_limit"`
}

// SceneConfig holds the brain scene settings.
type SceneConfig struct {
	Detail       int             `yaml:"detail"` // icosphere subdivisions per edge
	Radius       float32         `yaml:"radius"`
	Seed         int64           `yaml:"seed"` // CPU noise seed
	BaseColor    string          `yaml:"base_color"`
	RidgeColor   string          `yaml:"ridge_color"`
	CoreColor    string          `yaml:"core_color"`
	Background   string          `yaml:"background"`
	PostFX       bool            `yaml:"postfx"`
	Ease         float32         `yaml:"ease"`
	StartSection section.Section `yaml:"start_section"`
}

// OverlayConfig holds the 2D overlay settings.
type OverlayConfig struct {
	Enabled bool `yaml:"enabled"`
	ShowFPS bool `yaml:"show_fps"`
}

// CaptureConfig holds screenshot settings.
type CaptureConfig struct {
	Dir    string `yaml:"dir"`
	Prefix string `yaml:"prefix"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
			FPSLimit:   0,
		},
		Scene: SceneConfig{
			Detail:       60,
			Radius:       1.8,
			Seed:         noise.DefaultSeed,
			BaseColor:    "#bd00ff",
			RidgeColor:   "#00f3ff",
			CoreColor:    "#1a0033",
			Background:   "#000000",
			PostFX:       true,
			Ease:         0.04,
			StartSection: section.Intro,
		},
		Overlay: OverlayConfig{
			Enabled: true,
			ShowFPS: false,
		},
		Capture: CaptureConfig{
			Dir:    "screenshots",
			Prefix: "cortex",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate checks ranges and colour strings.
func (c *Config) Validate() error {
	if c.Graphics.Width <= 0 || c.Graphics.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Graphics.Width, c.Graphics.Height)
	}
	if c.Scene.Detail < 0 || c.Scene.Detail > 128 {
		return fmt.Errorf("%w: scene.detail %d out of [0, 128]", ErrInvalid, c.Scene.Detail)
	}
	if c.Scene.Radius <= 0 {
		return fmt.Errorf("%w: scene.radius must be positive", ErrInvalid)
	}
	if c.Scene.Ease <= 0 || c.Scene.Ease > 1 {
		return fmt.Errorf("%w: scene.ease %v out of (0, 1]", ErrInvalid, c.Scene.Ease)
	}
	if !c.Scene.StartSection.Valid() {
		return fmt.Errorf("%w: scene.start_section", ErrInvalid)
	}
	for name, v := range map[string]string{
		"base_color":  c.Scene.BaseColor,
		"ridge_color": c.Scene.RidgeColor,
		"core_color":  c.Scene.CoreColor,
		"background":  c.Scene.Background,
	} {
		if _, err := ParseHexColor(v); err != nil {
			return fmt.Errorf("%w: scene.%s: %v", ErrInvalid, name, err)
		}
	}
	return nil
}

// ParseHexColor parses "#rrggbb" (the # is optional) into a 0..1 RGB vector.
func ParseHexColor(s string) (mgl32.Vec3, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return mgl32.Vec3{}, fmt.Errorf("colour %q: want 6 hex digits", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return mgl32.Vec3{}, fmt.Errorf("colour %q: %w", s, err)
	}
	return mgl32.Vec3{
		float32((v>>16)&0xff) / 255.0,
		float32((v>>8)&0xff) / 255.0,
		float32(v&0xff) / 255.0,
	}, nil
}

// MustColor parses a colour that Validate has already accepted.
func MustColor(s string) mgl32.Vec3 {
	c, err := ParseHexColor(s)
	if err != nil {
		return mgl32.Vec3{}
	}
	return c
}
