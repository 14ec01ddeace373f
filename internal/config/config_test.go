package config

import (
	"context"
	"testing"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name        string
		envVars     map[string]string
		expectError bool
		validate    func(*Config)
	}{
		{
			name:    "defaults reproduce the published sample output",
			envVars: map[string]string{},
			validate: func(cfg *Config) {
				if cfg.OutputDir != "visualizations" {
					t.Errorf("Expected default OutputDir to be 'visualizations', got '%s'", cfg.OutputDir)
				}
				if cfg.RandomSeed != 42 {
					t.Errorf("Expected default RandomSeed to be 42, got %d", cfg.RandomSeed)
				}
				if cfg.WindowHours != 72 {
					t.Errorf("Expected default WindowHours to be 72, got %d", cfg.WindowHours)
				}
				if cfg.PNGPreviews != false {
					t.Errorf("Expected default PNGPreviews to be false, got %v", cfg.PNGPreviews)
				}
				if cfg.WriteIndex != false {
					t.Errorf("Expected default WriteIndex to be false, got %v", cfg.WriteIndex)
				}
				if cfg.Deployment != "local" {
					t.Errorf("Expected default Deployment to be 'local', got '%s'", cfg.Deployment)
				}
				if cfg.LogLevel != "info" {
					t.Errorf("Expected default LogLevel to be 'info', got '%s'", cfg.LogLevel)
				}
				if cfg.LogFormat != "text" {
					t.Errorf("Expected default LogFormat to be 'text', got '%s'", cfg.LogFormat)
				}
			},
		},
		{
			name: "custom configuration values",
			envVars: map[string]string{
				"OUTPUT_DIR":   "/tmp/charts",
				"RANDOM_SEED":  "7",
				"WINDOW_HOURS": "24",
				"PNG_PREVIEWS": "true",
				"WRITE_INDEX":  "true",
				"DEPLOYMENT":   "gcs",
				"GCS_BUCKET":   "docs-bucket",
				"LOG_LEVEL":    "debug",
				"LOG_FORMAT":   "json",
			},
			validate: func(cfg *Config) {
				if cfg.OutputDir != "/tmp/charts" {
					t.Errorf("Expected OutputDir to be '/tmp/charts', got '%s'", cfg.OutputDir)
				}
				if cfg.RandomSeed != 7 {
					t.Errorf("Expected RandomSeed to be 7, got %d", cfg.RandomSeed)
				}
				if cfg.WindowHours != 24 {
					t.Errorf("Expected WindowHours to be 24, got %d", cfg.WindowHours)
				}
				if !cfg.PNGPreviews {
					t.Error("Expected PNGPreviews to be true")
				}
				if !cfg.WriteIndex {
					t.Error("Expected WriteIndex to be true")
				}
				if cfg.Deployment != "gcs" {
					t.Errorf("Expected Deployment to be 'gcs', got '%s'", cfg.Deployment)
				}
				if cfg.GCSBucket != "docs-bucket" {
					t.Errorf("Expected GCSBucket to be 'docs-bucket', got '%s'", cfg.GCSBucket)
				}
			},
		},
		{
			name: "non-positive window is rejected",
			envVars: map[string]string{
				"WINDOW_HOURS": "0",
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			cfg, err := Load(context.Background())
			if tt.expectError {
				if err == nil {
					t.Fatal("Expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("Load() returned unexpected error: %v", err)
			}
			tt.validate(cfg)
		})
	}
}

func TestGetVersion(t *testing.T) {
	t.Setenv("APP_VERSION", "1.2.3")
	if v := GetVersion(); v != "1.2.3" {
		t.Errorf("Expected version '1.2.3', got '%s'", v)
	}

	t.Setenv("APP_VERSION", "")
	if v := GetVersion(); v == "" {
		t.Error("Expected a non-empty fallback version")
	}
}
