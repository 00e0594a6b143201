// Command cortex-still renders one frame of the scene to a PNG on the CPU.
// It needs no window or GPU.
//
// Usage:
//
//	cortex-still [-section about] [-frames 160] [-time 2.5] [-out brain.png]
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/cyberkunju/cortex/internal/config"
	"github.com/cyberkunju/cortex/internal/engine/debug"
	"github.com/cyberkunju/cortex/internal/logger"
	"github.com/cyberkunju/cortex/internal/still"
)

var (
	flagTime   = flag.Float64("time", -1, "Scene time in seconds (default frames/60)")
	flagFrames = flag.Int("frames", 160, "Camera ease steps from intro toward -section")
	flagOut    = flag.String("out", "", "Output PNG (default: a new file in capture.dir)")
	flagNoPost = flag.Bool("nopost", false, "Skip bloom, grain and vignette")
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	res, err := still.Render(cfg, still.Options{
		Time:   *flagTime,
		Frames: *flagFrames,
		Post:   cfg.Scene.PostFX && !*flagNoPost,
	})
	if err != nil {
		logger.Error("render failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}

	path := *flagOut
	if path == "" {
		path, err = debug.NewScreenshotCapture(cfg.Capture.Dir, cfg.Capture.Prefix).CaptureFromImage(res.Image)
	} else {
		err = debug.SavePNG(res.Image, path)
	}
	if err != nil {
		logger.Error("save failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}

	logger.Info("still saved",
		zap.String("path", path),
		zap.Stringer("section", res.Camera.Section()),
		zap.Float64("t", res.Time),
		zap.Int("triangles", res.Stats.Triangles),
		zap.Int("clipped", res.Stats.Clipped),
		zap.Int("fragments", res.Stats.Fragments),
		zap.Duration("elapsed", res.Elapsed))
}
