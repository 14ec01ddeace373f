// Package reports orchestrates sample data synthesis, chart rendering, and
// artifact storage for the documentation site.
package reports

import (
	"context"
	"fmt"
	"strings"
	"time"

	"icuviz/internal/charts"
	"icuviz/internal/config"
	"icuviz/internal/logger"
	"icuviz/internal/storage"
	"icuviz/internal/synth"
)

// Service runs the generators in fixed order and stores their output.
// The order matters: all generators share one seeded random stream, so
// reordering them changes every dataset.
type Service struct {
	cfg          *config.Config
	store        storage.Client
	synthesizer  *synth.Synthesizer
	chartGen     *charts.ChartGenerator
	pngGen       *charts.PNGGenerator
	indexBuilder *IndexBuilder
}

// NewService creates a new report service
func NewService(cfg *config.Config, store storage.Client) *Service {
	return &Service{
		cfg:          cfg,
		store:        store,
		synthesizer:  synth.New(cfg.RandomSeed),
		chartGen:     charts.NewChartGenerator(),
		pngGen:       charts.NewPNGGenerator(),
		indexBuilder: NewIndexBuilder(),
	}
}

// Generate synthesizes all sample datasets and writes the chart artifacts:
// the three interactive HTML documents, plus PNG previews and an index page
// when enabled. The first failure aborts the run.
func (s *Service) Generate(ctx context.Context) error {
	start := time.Now()

	fmt.Println("Generating interactive visualizations...")
	fmt.Println(strings.Repeat("-", 50))

	now := time.Now()

	vitals := s.synthesizer.VitalSigns(now, s.cfg.WindowHours)
	if err := s.storeChart(ctx, charts.TimeseriesFile, func() ([]byte, error) {
		return s.chartGen.TimeseriesChart(vitals)
	}); err != nil {
		return err
	}

	rows := s.synthesizer.Demographics()
	if err := s.storeChart(ctx, charts.DemographicsFile, func() ([]byte, error) {
		return s.chartGen.DemographicsChart(rows)
	}); err != nil {
		return err
	}

	matrix := s.synthesizer.CorrelationMatrix()
	if err := s.storeChart(ctx, charts.CorrelationFile, func() ([]byte, error) {
		return s.chartGen.CorrelationChart(synth.CorrelationVariables, matrix)
	}); err != nil {
		return err
	}

	if s.cfg.PNGPreviews {
		if err := s.storeChart(ctx, charts.TimeseriesPreviewFile, func() ([]byte, error) {
			return s.pngGen.TimeseriesPreview(vitals)
		}); err != nil {
			return err
		}
		if err := s.storeChart(ctx, charts.DemographicsPreviewFile, func() ([]byte, error) {
			return s.pngGen.DemographicsPreview(rows)
		}); err != nil {
			return err
		}
	}

	if s.cfg.WriteIndex {
		if err := s.storeChart(ctx, IndexFile, func() ([]byte, error) {
			return s.indexBuilder.Build(vitals)
		}); err != nil {
			return err
		}
	}

	fmt.Println(strings.Repeat("-", 50))
	fmt.Println("All visualizations generated successfully!")
	fmt.Println()
	fmt.Println("To view the visualizations:")
	fmt.Println("1. Open index.html in a web browser")
	fmt.Println("2. Or deploy to GitHub Pages")

	paths, err := s.store.List(ctx, "")
	if err != nil {
		return fmt.Errorf("failed to list generated artifacts: %w", err)
	}
	logger.Info("Generation completed", map[string]interface{}{
		"duration_ms": time.Since(start).Milliseconds(),
		"artifacts":   len(paths),
	})

	return nil
}

// storeChart renders one artifact and stores it, printing the fixed
// confirmation line on success
func (s *Service) storeChart(ctx context.Context, filename string, render func() ([]byte, error)) error {
	data, err := render()
	if err != nil {
		return fmt.Errorf("failed to generate %s: %w", filename, err)
	}

	if exists, err := s.store.FileExists(ctx, filename); err == nil && exists {
		logger.Debug("Overwriting existing artifact", map[string]interface{}{
			"filename": filename,
		})
	}

	if err := s.store.StoreFile(ctx, filename, data); err != nil {
		return fmt.Errorf("failed to store %s: %w", filename, err)
	}

	logger.Debug("Artifact stored", map[string]interface{}{
		"filename": filename,
		"bytes":    len(data),
	})
	fmt.Printf("✓ Generated %s\n", filename)
	return nil
}
