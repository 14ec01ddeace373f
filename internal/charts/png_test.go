package charts

import (
	"bytes"
	"testing"

	"icuviz/internal/synth"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func TestTimeseriesPreview(t *testing.T) {
	data, err := NewPNGGenerator().TimeseriesPreview(sampleVitals(t))
	if err != nil {
		t.Fatalf("TimeseriesPreview returned unexpected error: %v", err)
	}
	if !bytes.HasPrefix(data, pngMagic) {
		t.Error("Expected PNG output")
	}
}

func TestDemographicsPreview(t *testing.T) {
	rows := synth.New(synth.DefaultSeed).Demographics()

	data, err := NewPNGGenerator().DemographicsPreview(rows)
	if err != nil {
		t.Fatalf("DemographicsPreview returned unexpected error: %v", err)
	}
	if !bytes.HasPrefix(data, pngMagic) {
		t.Error("Expected PNG output")
	}
}
