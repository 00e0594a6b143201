package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/cyberkunju/cortex/internal/section"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	// Test graphics defaults
	if cfg.Graphics.Width != 1280 {
		t.Errorf("expected width 1280, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 720 {
		t.Errorf("expected height 720, got %d", cfg.Graphics.Height)
	}
	if cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be false by default")
	}
	if !cfg.Graphics.VSync {
		t.Error("expected vsync to be true by default")
	}

	// Test scene defaults
	if cfg.Scene.Detail != 60 {
		t.Errorf("expected detail 60, got %d", cfg.Scene.Detail)
	}
	if cfg.Scene.Radius != 1.8 {
		t.Errorf("expected radius 1.8, got %f", cfg.Scene.Radius)
	}
	if cfg.Scene.BaseColor != "#bd00ff" || cfg.Scene.RidgeColor != "#00f3ff" {
		t.Errorf("unexpected palette %s / %s", cfg.Scene.BaseColor, cfg.Scene.RidgeColor)
	}
	if cfg.Scene.Ease != 0.04 {
		t.Errorf("expected ease 0.04, got %f", cfg.Scene.Ease)
	}
	if cfg.Scene.StartSection != section.Intro {
		t.Errorf("expected start section intro, got %v", cfg.Scene.StartSection)
	}
	if !cfg.Scene.PostFX {
		t.Error("expected postfx enabled by default")
	}

	// Test logging defaults
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
graphics:
  width: 1920
  height: 1080
  fullscreen: true
  vsync: false
  fps_limit: 144

scene:
  detail: 24
  ridge_color: "#ff00aa"
  postfx: false
  start_section: projects

overlay:
  show_fps: true

logging:
  level: "debug"
  log_file: "cortex.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Graphics.Width != 1920 {
		t.Errorf("expected width 1920, got %d", cfg.Graphics.Width)
	}
	if !cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be true")
	}
	if cfg.Graphics.FPSLimit != 144 {
		t.Errorf("expected fps limit 144, got %d", cfg.Graphics.FPSLimit)
	}
	if cfg.Scene.Detail != 24 {
		t.Errorf("expected detail 24, got %d", cfg.Scene.Detail)
	}
	if cfg.Scene.RidgeColor != "#ff00aa" {
		t.Errorf("expected ridge colour #ff00aa, got %s", cfg.Scene.RidgeColor)
	}
	if cfg.Scene.BaseColor != "#bd00ff" {
		t.Errorf("unset base colour should keep its default, got %s", cfg.Scene.BaseColor)
	}
	if cfg.Scene.PostFX {
		t.Error("expected postfx to be disabled")
	}
	if cfg.Scene.StartSection != section.Projects {
		t.Errorf("expected start section projects, got %v", cfg.Scene.StartSection)
	}
	if !cfg.Overlay.ShowFPS {
		t.Error("expected show_fps to be true")
	}
	if cfg.Logging.LogFile != "cortex.log" {
		t.Errorf("expected log file 'cortex.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
graphics:
  width: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileUnknownSection(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("scene:\n  start_section: blog\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	err := loadFromFile(cfg, configPath)
	if !errors.Is(err, section.ErrUnknown) {
		t.Errorf("expected section.ErrUnknown, got %v", err)
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, "/nonexistent/path/config.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()
	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	tmpDir := t.TempDir()
	os.Chdir(tmpDir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "xdg"))
	t.Setenv("HOME", filepath.Join(tmpDir, "home"))

	if path := findConfigFile(); path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("graphics:\n  width: 800\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	if path := findConfigFile(); path == "" {
		t.Error("expected to find config.yaml in current directory")
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*testing.T, *Config)
		teardown func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
				if !cfg.Overlay.ShowFPS {
					t.Error("expected show_fps to be enabled with debug flag")
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name:  "fullscreen flag",
			setup: func() { *flagFullscreen = true },
			verify: func(t *testing.T, cfg *Config) {
				if !cfg.Graphics.Fullscreen {
					t.Error("expected fullscreen to be true with fullscreen flag")
				}
			},
			teardown: func() { *flagFullscreen = false },
		},
		{
			name: "width and height flags",
			setup: func() {
				*flagWidth = 2560
				*flagHeight = 1440
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Graphics.Width != 2560 || cfg.Graphics.Height != 1440 {
					t.Errorf("expected 2560x1440, got %dx%d", cfg.Graphics.Width, cfg.Graphics.Height)
				}
			},
			teardown: func() {
				*flagWidth = 0
				*flagHeight = 0
			},
		},
		{
			name:  "section flag",
			setup: func() { *flagSection = "Contact" },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Scene.StartSection != section.Contact {
					t.Errorf("expected contact, got %v", cfg.Scene.StartSection)
				}
			},
			teardown: func() { *flagSection = "" },
		},
		{
			name:  "detail flag",
			setup: func() { *flagDetail = 0 },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Scene.Detail != 0 {
					t.Errorf("expected detail 0, got %d", cfg.Scene.Detail)
				}
			},
			teardown: func() { *flagDetail = -1 },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			if err := applyFlags(cfg); err != nil {
				t.Fatalf("applyFlags: %v", err)
			}
			tt.verify(t, cfg)
		})
	}
}

func TestApplyFlagsBadSection(t *testing.T) {
	*flagSection = "lobby"
	defer func() { *flagSection = "" }()

	if err := applyFlags(Default()); !errors.Is(err, section.ErrUnknown) {
		t.Errorf("expected section.ErrUnknown, got %v", err)
	}
}

func TestLoadPriority(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
graphics:
  width: 1600
  height: 900
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	*flagWidth = 1920
	defer func() {
		*flagConfig = ""
		*flagWidth = 0
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Width should be from flag (1920), not file (1600)
	if cfg.Graphics.Width != 1920 {
		t.Errorf("expected width 1920 from flag, got %d", cfg.Graphics.Width)
	}

	// Height should be from file (900) since no flag override
	if cfg.Graphics.Height != 900 {
		t.Errorf("expected height 900 from file, got %d", cfg.Graphics.Height)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.Graphics.Width = 0 }},
		{"detail too high", func(c *Config) { c.Scene.Detail = 500 }},
		{"negative radius", func(c *Config) { c.Scene.Radius = -1 }},
		{"ease zero", func(c *Config) { c.Scene.Ease = 0 }},
		{"bad colour", func(c *Config) { c.Scene.CoreColor = "#12345" }},
		{"bad section", func(c *Config) { c.Scene.StartSection = section.Count }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("expected ErrInvalid, got %v", err)
			}
		})
	}
}

func TestParseHexColor(t *testing.T) {
	got, err := ParseHexColor("#00f3ff")
	if err != nil {
		t.Fatalf("ParseHexColor: %v", err)
	}
	want := mgl32.Vec3{0, 243.0 / 255.0, 1}
	if got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	if _, err := ParseHexColor("1a0033"); err != nil {
		t.Errorf("# prefix should be optional: %v", err)
	}
	for _, bad := range []string{"", "#fff", "#gg0000", "#1234567"} {
		if _, err := ParseHexColor(bad); err == nil {
			t.Errorf("expected error for %q", bad)
		}
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Scene.StartSection = section.About
	cfg.Graphics.Width = 1024
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("reload: %v", err)
	}
	if loaded.Scene.StartSection != section.About {
		t.Errorf("expected about after round trip, got %v", loaded.Scene.StartSection)
	}
	if loaded.Graphics.Width != 1024 {
		t.Errorf("expected width 1024 after round trip, got %d", loaded.Graphics.Width)
	}
}

func TestDecodeRejectsUnknownKeys(t *testing.T) {
	cfg := Default()
	err := decode([]byte("scene:\n  detial: 12\n"), cfg)
	if err == nil {
		t.Fatal("expected error for misspelt key, got nil")
	}
	if cfg.Scene.Detail != 60 {
		t.Errorf("expected detail to stay 60, got %d", cfg.Scene.Detail)
	}
}

func TestDecodeEmptyDocument(t *testing.T) {
	cfg := Default()
	if err := decode([]byte("# nothing set\n"), cfg); err != nil {
		t.Fatalf("empty document: %v", err)
	}
	if cfg.Graphics.Width != 1280 {
		t.Errorf("expected default width, got %d", cfg.Graphics.Width)
	}
}

func TestLoadFromEnv(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "env.yaml")
	if err := os.WriteFile(configPath, []byte("scene:\n  detail: 24\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}
	t.Setenv(EnvConfigPath, configPath)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.Scene.Detail != 24 {
		t.Errorf("expected detail 24 from $%s, got %d", EnvConfigPath, cfg.Scene.Detail)
	}
}
