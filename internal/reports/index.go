package reports

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	goldmarkhtml "github.com/yuin/goldmark/renderer/html"

	"icuviz/internal/charts"
	"icuviz/internal/config"
	"icuviz/internal/synth"
)

// IndexFile is the name of the optional landing page.
const IndexFile = "index.html"

// indexIntro is the markdown blurb rendered at the top of the landing page.
const indexIntro = `## About These Visualizations

The charts on this page are generated from **synthetic sample data** for
demonstration purposes. They show the kinds of interactive visualizations
the project produces for ICU monitoring data:

- A 72-hour vital-signs time series (heart rate, systolic blood pressure, SpO2)
- Patient demographics and outcomes by age group
- A correlation matrix over common clinical variables

None of the values are real measurements.`

// IndexBuilder assembles the landing page that embeds the generated charts
type IndexBuilder struct {
	md goldmark.Markdown
}

// NewIndexBuilder creates an index page builder
func NewIndexBuilder() *IndexBuilder {
	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			goldmarkhtml.WithHardWraps(),
		),
	)

	return &IndexBuilder{md: md}
}

// SummaryCard is one headline metric on the landing page.
type SummaryCard struct {
	Title   string
	Metric  string
	Caption string
}

// ChartEmbed is one embedded chart document.
type ChartEmbed struct {
	Title string
	File  string
}

type indexData struct {
	GeneratedAt string
	Version     string
	Intro       template.HTML
	Cards       []SummaryCard
	Charts      []ChartEmbed
}

// Build renders the landing page with summary cards derived from the
// synthesized vitals and an iframe per chart document.
func (b *IndexBuilder) Build(vitals *synth.VitalSigns) ([]byte, error) {
	var intro bytes.Buffer
	if err := b.md.Convert([]byte(indexIntro), &intro); err != nil {
		return nil, fmt.Errorf("failed to convert intro markdown: %w", err)
	}

	cards, err := buildSummaryCards(vitals)
	if err != nil {
		return nil, fmt.Errorf("failed to build summary cards: %w", err)
	}

	data := indexData{
		GeneratedAt: time.Now().UTC().Format("2006-01-02 15:04:05 UTC"),
		Version:     config.GetVersion(),
		Intro:       template.HTML(intro.String()),
		Cards:       cards,
		Charts: []ChartEmbed{
			{Title: "Vital Signs Time Series", File: charts.TimeseriesFile},
			{Title: "Demographics and Outcomes", File: charts.DemographicsFile},
			{Title: "Correlation Matrix", File: charts.CorrelationFile},
		},
	}

	tmpl, err := template.New("index").Parse(indexTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse index template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to execute index template: %w", err)
	}

	return buf.Bytes(), nil
}

// buildSummaryCards derives the headline metrics from the vitals series
func buildSummaryCards(vitals *synth.VitalSigns) ([]SummaryCard, error) {
	heartRate, err := synth.Summarize(vitals.HeartRate)
	if err != nil {
		return nil, err
	}
	systolic, err := synth.Summarize(vitals.SystolicBP)
	if err != nil {
		return nil, err
	}
	spo2, err := synth.Summarize(vitals.SpO2)
	if err != nil {
		return nil, err
	}

	return []SummaryCard{
		{
			Title:   "Heart Rate",
			Metric:  fmt.Sprintf("%.1f bpm", heartRate.Mean),
			Caption: fmt.Sprintf("Mean over %d hours", vitals.Len()),
		},
		{
			Title:   "Systolic BP",
			Metric:  fmt.Sprintf("%.1f mmHg", systolic.Mean),
			Caption: fmt.Sprintf("Range %.1f - %.1f", systolic.Min, systolic.Max),
		},
		{
			Title:   "SpO2",
			Metric:  fmt.Sprintf("%.1f %%", spo2.Min),
			Caption: "Lowest recorded saturation",
		},
		{
			Title:   "Samples",
			Metric:  fmt.Sprintf("%d", vitals.Len()),
			Caption: "Hourly data points per signal",
		},
	}, nil
}

const indexTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>ICU Sample Visualizations</title>
    <style>
        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
            line-height: 1.6;
            color: #333;
            max-width: 1200px;
            margin: 0 auto;
            padding: 20px;
            background-color: #f8f9fa;
        }
        .header {
            background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
            color: white;
            padding: 30px;
            border-radius: 10px;
            margin-bottom: 30px;
            text-align: center;
        }
        .header h1 {
            margin: 0;
            font-size: 2.5em;
        }
        .header .timestamp {
            opacity: 0.9;
            margin-top: 10px;
        }
        .summary-cards {
            display: grid;
            grid-template-columns: repeat(auto-fit, minmax(250px, 1fr));
            gap: 20px;
            margin-bottom: 30px;
        }
        .card {
            background: white;
            padding: 20px;
            border-radius: 8px;
            box-shadow: 0 2px 10px rgba(0,0,0,0.1);
            border-left: 4px solid #667eea;
        }
        .card h3 {
            margin-top: 0;
            color: #667eea;
        }
        .metric {
            font-size: 1.5em;
            font-weight: bold;
            color: #333;
        }
        .content {
            background: white;
            padding: 30px;
            border-radius: 8px;
            box-shadow: 0 2px 10px rgba(0,0,0,0.1);
            margin-bottom: 30px;
        }
        .chart-container {
            background: white;
            padding: 20px;
            border-radius: 8px;
            box-shadow: 0 2px 10px rgba(0,0,0,0.1);
            margin-bottom: 30px;
        }
        .chart-container iframe {
            width: 100%;
            height: 650px;
            border: none;
        }
        .footer {
            text-align: center;
            color: #666;
            font-size: 0.9em;
            margin-top: 30px;
        }
        h2 { border-bottom: 2px solid #667eea; padding-bottom: 5px; }
    </style>
</head>
<body>
    <div class="header">
        <h1>ICU Sample Visualizations</h1>
        <div class="timestamp">Generated: {{.GeneratedAt}}</div>
    </div>

    <div class="summary-cards">
        {{range .Cards}}
        <div class="card">
            <h3>{{.Title}}</h3>
            <div class="metric">{{.Metric}}</div>
            <div>{{.Caption}}</div>
        </div>
        {{end}}
    </div>

    <div class="content">
        {{.Intro}}
    </div>

    {{range .Charts}}
    <div class="chart-container">
        <h2>{{.Title}}</h2>
        <iframe src="{{.File}}" title="{{.Title}}" loading="lazy"></iframe>
    </div>
    {{end}}

    <div class="footer">
        <p>Synthetic sample data for documentation purposes only | v{{.Version}}</p>
    </div>
</body>
</html>
`
