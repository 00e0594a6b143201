// Package main is the entry point for the interactive cortex scene.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/cyberkunju/cortex/internal/app"
	"github.com/cyberkunju/cortex/internal/config"
	"github.com/cyberkunju/cortex/internal/logger"
)

func main() {
	// Parse CLI flags first
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

	logger.Info("=== cortex ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	a, err := app.New(cfg)
	if err != nil {
		logger.Error("failed to create app", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}

	if err := a.Run(); err != nil {
		logger.Error("app error", zap.Error(err))
		a.Close()
		logger.Sync()
		os.Exit(1)
	}
	a.Close()

	logger.Info("closed normally")
}
