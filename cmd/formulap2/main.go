// Package main is the entry point for the FormulaP2 car viewer.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Bruno48Ferreira/formulap2/internal/config"
	"github.com/Bruno48Ferreira/formulap2/internal/game"
	"github.com/Bruno48Ferreira/formulap2/internal/logger"
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

	logger.Info("=== FormulaP2 ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	if config.SaveRequested() {
		if err := cfg.Save(); err != nil {
			logger.Warn("failed to save config", zap.Error(err))
		} else {
			logger.Info("config saved", zap.String("path", config.UserConfigPath()))
		}
	}

	g, err := game.New(cfg)
	if err != nil {
		logger.Error("failed to create viewer", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}

	if err := g.Run(); err != nil {
		logger.Error("viewer error", zap.Error(err))
		g.Close()
		logger.Sync()
		os.Exit(1)
	}
	g.Close()

	logger.Info("viewer closed normally")
}
