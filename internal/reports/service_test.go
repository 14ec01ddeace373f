package reports

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"icuviz/internal/charts"
	"icuviz/internal/config"
	"icuviz/internal/storage"
	"icuviz/internal/synth"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		OutputDir:   t.TempDir(),
		RandomSeed:  synth.DefaultSeed,
		WindowHours: 72,
		Deployment:  "local",
	}
}

func newTestService(t *testing.T, cfg *config.Config) *Service {
	t.Helper()
	store, err := storage.NewLocalClient(cfg.OutputDir)
	if err != nil {
		t.Fatalf("Failed to create local storage client: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return NewService(cfg, store)
}

func listOutput(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("Failed to read output directory: %v", err)
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	return names
}

func TestGenerateCreatesThreeCharts(t *testing.T) {
	cfg := testConfig(t)
	svc := newTestService(t, cfg)

	if err := svc.Generate(context.Background()); err != nil {
		t.Fatalf("Generate returned unexpected error: %v", err)
	}

	names := listOutput(t, cfg.OutputDir)
	if len(names) != 3 {
		t.Fatalf("Expected exactly 3 files, got %d: %v", len(names), names)
	}

	expected := map[string]string{
		charts.TimeseriesFile:   charts.TimeseriesTitle,
		charts.DemographicsFile: charts.DemographicsTitle,
		charts.CorrelationFile:  charts.CorrelationTitle,
	}
	for filename, title := range expected {
		data, err := os.ReadFile(filepath.Join(cfg.OutputDir, filename))
		if err != nil {
			t.Fatalf("Expected %s to exist: %v", filename, err)
		}
		if len(data) == 0 {
			t.Errorf("Expected %s to be non-empty", filename)
		}
		doc := string(data)
		if !strings.Contains(doc, title) {
			t.Errorf("Expected %s to contain title %q", filename, title)
		}
		if !strings.Contains(doc, "echarts.min.js") {
			t.Errorf("Expected %s to reference the charting library", filename)
		}
	}
}

func TestGenerateOverwritesExistingFiles(t *testing.T) {
	cfg := testConfig(t)
	svc := newTestService(t, cfg)

	ctx := context.Background()
	if err := svc.Generate(ctx); err != nil {
		t.Fatalf("First Generate returned unexpected error: %v", err)
	}
	if err := svc.Generate(ctx); err != nil {
		t.Fatalf("Second Generate returned unexpected error: %v", err)
	}

	names := listOutput(t, cfg.OutputDir)
	if len(names) != 3 {
		t.Errorf("Expected exactly 3 files after re-run, got %d: %v", len(names), names)
	}
}

func TestGenerateWithOptionalArtifacts(t *testing.T) {
	cfg := testConfig(t)
	cfg.PNGPreviews = true
	cfg.WriteIndex = true
	svc := newTestService(t, cfg)

	if err := svc.Generate(context.Background()); err != nil {
		t.Fatalf("Generate returned unexpected error: %v", err)
	}

	names := listOutput(t, cfg.OutputDir)
	if len(names) != 6 {
		t.Fatalf("Expected 6 files with previews and index enabled, got %d: %v", len(names), names)
	}

	for _, filename := range []string{
		charts.TimeseriesPreviewFile,
		charts.DemographicsPreviewFile,
		IndexFile,
	} {
		if _, err := os.Stat(filepath.Join(cfg.OutputDir, filename)); err != nil {
			t.Errorf("Expected %s to exist: %v", filename, err)
		}
	}
}

func TestGenerateIsDeterministicForFixedSeed(t *testing.T) {
	ctx := context.Background()

	cfgA := testConfig(t)
	if err := newTestService(t, cfgA).Generate(ctx); err != nil {
		t.Fatalf("Generate returned unexpected error: %v", err)
	}

	cfgB := testConfig(t)
	if err := newTestService(t, cfgB).Generate(ctx); err != nil {
		t.Fatalf("Generate returned unexpected error: %v", err)
	}

	// Chart documents embed a random element ID and the render timestamp
	// in axis labels, so compare sizes rather than bytes.
	for _, filename := range []string{charts.DemographicsFile, charts.CorrelationFile} {
		a, err := os.ReadFile(filepath.Join(cfgA.OutputDir, filename))
		if err != nil {
			t.Fatalf("Failed to read %s: %v", filename, err)
		}
		b, err := os.ReadFile(filepath.Join(cfgB.OutputDir, filename))
		if err != nil {
			t.Fatalf("Failed to read %s: %v", filename, err)
		}
		if len(a) != len(b) {
			t.Errorf("Expected %s to have identical size across runs, got %d vs %d",
				filename, len(a), len(b))
		}
	}
}
