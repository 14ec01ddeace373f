package main

import (
	"context"

	"icuviz/internal/config"
	"icuviz/internal/logger"
	"icuviz/internal/reports"
	"icuviz/internal/storage"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}
	logger.Configure(cfg.LogLevel, cfg.LogFormat)

	logger.Infof("icuviz %s starting", config.GetVersion())
	logger.Debug("Configuration loaded", map[string]interface{}{
		"output_dir":   cfg.OutputDir,
		"seed":         cfg.RandomSeed,
		"window_hours": cfg.WindowHours,
		"deployment":   cfg.Deployment,
	})

	store, err := storage.NewClient(ctx, storage.Mode(cfg.Deployment), cfg)
	if err != nil {
		logger.Fatal("Failed to initialize storage", err)
	}
	defer store.Close()

	service := reports.NewService(cfg, store)
	if err := service.Generate(ctx); err != nil {
		logger.Fatal("Visualization generation failed", err)
	}
}
