package charts

import (
	"bytes"
	"fmt"
	"time"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"icuviz/internal/synth"
)

// Static preview file names.
const (
	TimeseriesPreviewFile   = "timeseries_preview.png"
	DemographicsPreviewFile = "demographics_preview.png"
)

var (
	heartRateColor = drawing.Color{R: 255, G: 107, B: 107, A: 255}
	systolicColor  = drawing.Color{R: 78, G: 205, B: 196, A: 255}
	spo2Color      = drawing.Color{R: 149, G: 225, B: 211, A: 255}

	previewOutcomeColors = []drawing.Color{
		{R: 102, G: 126, B: 234, A: 255},
		{R: 118, G: 75, B: 162, A: 255},
		{R: 240, G: 147, B: 251, A: 255},
	}
)

// PNGGenerator renders static preview images of the sample charts for
// contexts where the interactive documents cannot be embedded.
type PNGGenerator struct{}

// NewPNGGenerator creates a new PNG preview generator
func NewPNGGenerator() *PNGGenerator {
	return &PNGGenerator{}
}

// TimeseriesPreview renders the vital-signs series as a PNG line chart
func (pg *PNGGenerator) TimeseriesPreview(vitals *synth.VitalSigns) ([]byte, error) {
	graph := chart.Chart{
		Title: TimeseriesTitle,
		Background: chart.Style{
			Padding: chart.Box{
				Top:    40,
				Left:   20,
				Right:  20,
				Bottom: 20,
			},
		},
		Height: 400,
		Width:  900,
		XAxis: chart.XAxis{
			Name: "Time",
			ValueFormatter: func(v interface{}) string {
				if t, ok := v.(time.Time); ok {
					return t.Format("01-02 15:04")
				}
				if f, ok := v.(float64); ok {
					return time.Unix(0, int64(f)).Format("01-02 15:04")
				}
				return ""
			},
		},
		YAxis: chart.YAxis{
			Name: "Value",
		},
		Series: []chart.Series{
			chart.TimeSeries{
				Name: "Heart Rate (bpm)",
				Style: chart.Style{
					StrokeColor: heartRateColor,
					StrokeWidth: 2,
				},
				XValues: vitals.Timestamps,
				YValues: vitals.HeartRate,
			},
			chart.TimeSeries{
				Name: "Systolic BP (mmHg)",
				Style: chart.Style{
					StrokeColor: systolicColor,
					StrokeWidth: 2,
				},
				XValues: vitals.Timestamps,
				YValues: vitals.SystolicBP,
			},
			chart.TimeSeries{
				Name: "SpO2 (%)",
				Style: chart.Style{
					StrokeColor: spo2Color,
					StrokeWidth: 2,
				},
				XValues: vitals.Timestamps,
				YValues: vitals.SpO2,
			},
		},
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("failed to render time series preview: %w", err)
	}
	return buf.Bytes(), nil
}

// DemographicsPreview renders the demographics table as a PNG bar chart,
// one bar per (age group, outcome) cell, colored by outcome.
func (pg *PNGGenerator) DemographicsPreview(rows []synth.DemographicRow) ([]byte, error) {
	colorByOutcome := make(map[string]drawing.Color, len(synth.Outcomes))
	for i, outcome := range synth.Outcomes {
		colorByOutcome[outcome] = previewOutcomeColors[i%len(previewOutcomeColors)]
	}

	graph := chart.BarChart{
		Title: DemographicsTitle,
		Background: chart.Style{
			Padding: chart.Box{
				Top:    40,
				Left:   20,
				Right:  20,
				Bottom: 40,
			},
		},
		Height:   400,
		Width:    900,
		BarWidth: 40,
		YAxis: chart.YAxis{
			Name: "Number of Patients",
		},
	}

	for _, row := range rows {
		graph.Bars = append(graph.Bars, chart.Value{
			Value: float64(row.Count),
			Label: fmt.Sprintf("%s %s", row.AgeGroup, row.Outcome),
			Style: chart.Style{
				FillColor:   colorByOutcome[row.Outcome],
				StrokeColor: colorByOutcome[row.Outcome],
			},
		})
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("failed to render demographics preview: %w", err)
	}
	return buf.Bytes(), nil
}
