// Package charts renders the sample datasets as standalone interactive HTML
// documents. Each document loads the echarts runtime from the assets CDN, so
// the files can be dropped into a static documentation site as-is.
package charts

import (
	"bytes"
	"fmt"
	"math"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"icuviz/internal/synth"
)

// Output file names, fixed so the documentation site can link to them.
const (
	TimeseriesFile   = "timeseries.html"
	DemographicsFile = "demographics.html"
	CorrelationFile  = "correlation.html"
)

// Chart titles, also asserted by the end-to-end tests.
const (
	TimeseriesTitle   = "ICU Patient Vital Signs - Time Series Analysis"
	DemographicsTitle = "Patient Demographics and Outcomes"
	CorrelationTitle  = "Clinical Variables Correlation Matrix"
)

var (
	// Per-signal line colors for the vitals chart.
	vitalColors = opts.Colors{"#FF6B6B", "#4ECDC4", "#95E1D3"}

	// Per-outcome bar colors for the demographics chart.
	outcomeColors = opts.Colors{"#667eea", "#764ba2", "#f093fb"}

	// Diverging blue-to-red scale for the correlation heatmap, centered
	// at zero by the symmetric visual-map range.
	divergingColors = []string{
		"#313695", "#4575b4", "#74add1", "#abd9e9", "#e0f3f8",
		"#ffffbf", "#fee090", "#fdae61", "#f46d43", "#d73027", "#a50026",
	}
)

// ChartGenerator builds the interactive sample charts
type ChartGenerator struct{}

// NewChartGenerator creates a new chart generator
func NewChartGenerator() *ChartGenerator {
	return &ChartGenerator{}
}

// TimeseriesChart renders the vital-signs line chart as a standalone HTML
// document: one colored line per signal, unified hover along the time axis,
// and a horizontal legend.
func (cg *ChartGenerator) TimeseriesChart(vitals *synth.VitalSigns) ([]byte, error) {
	n := vitals.Len()

	labels := make([]string, n)
	heartRate := make([]opts.LineData, n)
	systolic := make([]opts.LineData, n)
	spo2 := make([]opts.LineData, n)
	for i := 0; i < n; i++ {
		labels[i] = vitals.Timestamps[i].Format("01-02 15:04")
		heartRate[i] = opts.LineData{Value: round2(vitals.HeartRate[i])}
		systolic[i] = opts.LineData{Value: round2(vitals.SystolicBP[i])}
		spo2[i] = opts.LineData{Value: round2(vitals.SpO2[i])}
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Theme:     "white",
			PageTitle: TimeseriesTitle,
			Width:     "1100px",
			Height:    "600px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    TimeseriesTitle,
			Subtitle: fmt.Sprintf("%d hourly samples", n),
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    true,
			Trigger: "axis",
		}),
		charts.WithLegendOpts(opts.Legend{
			Show:   true,
			Orient: "horizontal",
			Right:  "0",
			Top:    "0",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: "Time",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: "Value",
		}),
		charts.WithColorsOpts(vitalColors),
	)

	line.SetXAxis(labels).
		AddSeries("Heart Rate (bpm)", heartRate).
		AddSeries("Systolic BP (mmHg)", systolic).
		AddSeries("SpO2 (%)", spo2).
		SetSeriesOptions(charts.WithLineChartOpts(opts.LineChart{Smooth: true}))

	var buf bytes.Buffer
	if err := line.Render(&buf); err != nil {
		return nil, fmt.Errorf("failed to render time series chart: %w", err)
	}
	return buf.Bytes(), nil
}

// DemographicsChart renders the demographics table as a grouped bar chart
// colored by outcome, with a vertical legend anchored top-right.
func (cg *ChartGenerator) DemographicsChart(rows []synth.DemographicRow) ([]byte, error) {
	counts := make(map[string]map[string]int, len(synth.Outcomes))
	for _, row := range rows {
		if counts[row.Outcome] == nil {
			counts[row.Outcome] = make(map[string]int, len(synth.AgeGroups))
		}
		counts[row.Outcome][row.AgeGroup] = row.Count
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Theme:     "white",
			PageTitle: DemographicsTitle,
			Width:     "1100px",
			Height:    "600px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    DemographicsTitle,
			Subtitle: "Outcome counts by age group",
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:      true,
			Trigger:   "item",
			Formatter: "{a}<br/>{b}: {c} patients",
		}),
		charts.WithLegendOpts(opts.Legend{
			Show:   true,
			Orient: "vertical",
			Right:  "1%",
			Top:    "5%",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: "Age Group",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: "Number of Patients",
		}),
		charts.WithColorsOpts(outcomeColors),
	)

	bar.SetXAxis(synth.AgeGroups)
	for _, outcome := range synth.Outcomes {
		data := make([]opts.BarData, len(synth.AgeGroups))
		for i, age := range synth.AgeGroups {
			data[i] = opts.BarData{Value: counts[outcome][age]}
		}
		bar.AddSeries(outcome, data)
	}

	var buf bytes.Buffer
	if err := bar.Render(&buf); err != nil {
		return nil, fmt.Errorf("failed to render demographics chart: %w", err)
	}
	return buf.Bytes(), nil
}

// CorrelationChart renders the correlation matrix as a heatmap with a
// diverging color scale, per-cell labels rounded to two decimals, and the
// y-axis ordered so the matrix reads top-to-bottom in natural order.
func (cg *ChartGenerator) CorrelationChart(variables []string, matrix [][]float64) ([]byte, error) {
	n := len(variables)
	if len(matrix) != n {
		return nil, fmt.Errorf("matrix has %d rows for %d variables", len(matrix), n)
	}

	// echarts draws category y-axes bottom-up; reverse so row 0 is on top.
	yAxis := make([]string, n)
	for i, v := range variables {
		yAxis[n-1-i] = v
	}

	data := make([]opts.HeatMapData, 0, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			data = append(data, opts.HeatMapData{
				Value: [3]interface{}{j, n - 1 - i, round2(matrix[i][j])},
			})
		}
	}

	heatmap := charts.NewHeatMap()
	heatmap.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Theme:     "white",
			PageTitle: CorrelationTitle,
			Width:     "900px",
			Height:    "700px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title: CorrelationTitle,
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    true,
			Trigger: "item",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Type: "category",
			Data: variables,
			AxisLabel: &opts.AxisLabel{
				Show:     true,
				Interval: "0",
				Rotate:   45,
			},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Type: "category",
			Data: yAxis,
		}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Calculable: true,
			Min:        -1,
			Max:        1,
			Text:       []string{"+1", "-1"},
			InRange: &opts.VisualMapInRange{
				Color: divergingColors,
			},
		}),
	)

	heatmap.AddSeries("Correlation", data,
		charts.WithLabelOpts(opts.Label{Show: true}),
	)

	var buf bytes.Buffer
	if err := heatmap.Render(&buf); err != nil {
		return nil, fmt.Errorf("failed to render correlation chart: %w", err)
	}
	return buf.Bytes(), nil
}

func round2(value float64) float64 {
	return math.Round(value*100) / 100
}
