package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

// Config holds all configuration for the visualization generator.
// The defaults reproduce the published sample output: a fixed seed, a
// 72-hour window, and a local "visualizations" output directory.
type Config struct {
	// Output configuration
	OutputDir string `env:"OUTPUT_DIR,default=visualizations"`

	// Synthesis configuration
	RandomSeed  int64 `env:"RANDOM_SEED,default=42"`
	WindowHours int   `env:"WINDOW_HOURS,default=72"`

	// Optional artifacts beyond the three interactive charts
	PNGPreviews bool `env:"PNG_PREVIEWS,default=false"`
	WriteIndex  bool `env:"WRITE_INDEX,default=false"`

	// Storage configuration (local by default; gcs publishes the
	// artifacts to the bucket behind the documentation site)
	Deployment string `env:"DEPLOYMENT,default=local"`
	GCSBucket  string `env:"GCS_BUCKET"`

	// Logging configuration
	LogLevel  string `env:"LOG_LEVEL,default=info"`
	LogFormat string `env:"LOG_FORMAT,default=text"`
}

// Load loads configuration from environment variables
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}
	if cfg.WindowHours <= 0 {
		return nil, fmt.Errorf("WINDOW_HOURS must be positive, got %d", cfg.WindowHours)
	}
	return &cfg, nil
}
