package storage

import (
	"context"
	"fmt"

	"icuviz/internal/config"
	"icuviz/internal/logger"
)

// Mode selects where the generated artifacts are written
type Mode string

const (
	ModeLocal Mode = "local"
	ModeGCS   Mode = "gcs"
)

// NewClient creates a storage client for the given mode
func NewClient(ctx context.Context, mode Mode, cfg *config.Config) (Client, error) {
	switch mode {
	case ModeLocal:
		outputDir := cfg.OutputDir
		if outputDir == "" {
			outputDir = "visualizations"
			logger.Warn("Output directory not configured, defaulting to visualizations")
		}

		localClient, err := NewLocalClient(outputDir)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize local storage client: %w", err)
		}
		return localClient, nil

	case ModeGCS:
		gcsClient, err := NewGCSClient(ctx, cfg.GCSBucket)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize GCS client: %w", err)
		}
		return gcsClient, nil

	default:
		return nil, fmt.Errorf("unsupported storage mode: %s", mode)
	}
}
