package report

import (
	"fmt"
	"image/color"
	"path/filepath"

	"github.com/rs/zerolog"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/shelterworks/energyprofile/internal/profile"
	"github.com/shelterworks/energyprofile/internal/thermal"
)

// Bar colors follow the original report palette: heating in red, lighting
// in amber, usage in steel blue.
var (
	heatingColor  = color.RGBA{R: 0xFF, G: 0x6B, B: 0x6B, A: 0xFF}
	lightingColor = color.RGBA{R: 0xFF, G: 0xA5, B: 0x00, A: 0xFF}
	usageColor    = color.RGBA{R: 0x46, G: 0x82, B: 0xB4, A: 0xFF}
)

const (
	chartWidth  = 12 * vg.Inch
	chartHeight = 6 * vg.Inch
)

var barWidth = vg.Points(20)

// ChartRenderer writes PNG bar charts into OutDir.
type ChartRenderer struct {
	outDir string
	logger zerolog.Logger
}

// NewChartRenderer returns a renderer writing charts into outDir ("." for
// the working directory).
func NewChartRenderer(outDir string, logger zerolog.Logger) *ChartRenderer {
	if outDir == "" {
		outDir = "."
	}
	return &ChartRenderer{outDir: outDir, logger: logger}
}

// FacilityChart draws a stacked bar chart of the monthly heating/lighting
// split, heating stacked under lighting, with the monthly total printed
// above each bar. The file is named <facility>_monthly_energy.png.
func (r *ChartRenderer) FacilityChart(f *thermal.Facility, b *thermal.Breakdown) (string, error) {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Monthly Energy Consumption Split for %s", f.Name)
	p.X.Label.Text = "Month"
	p.Y.Label.Text = "Energy Consumption (kWh)"

	heating, err := plotter.NewBarChart(plotter.Values(b.HeatingKWh), barWidth)
	if err != nil {
		return "", fmt.Errorf("report: heating bars: %w", err)
	}
	heating.Color = heatingColor
	heating.LineStyle.Width = 0

	lighting, err := plotter.NewBarChart(plotter.Values(b.LightingKWh), barWidth)
	if err != nil {
		return "", fmt.Errorf("report: lighting bars: %w", err)
	}
	lighting.Color = lightingColor
	lighting.LineStyle.Width = 0
	lighting.StackOn(heating)

	p.Add(heating, lighting)
	p.Legend.Add("Heating", heating)
	p.Legend.Add("Lighting", lighting)
	p.Legend.Top = true
	p.NominalX(b.Months...)

	labels, err := totalLabels(b.TotalKWh)
	if err != nil {
		return "", err
	}
	p.Add(labels)

	path := filepath.Join(r.outDir, chartFileName(f.Name, "_monthly_energy"))
	if err := p.Save(chartWidth, chartHeight, path); err != nil {
		return "", fmt.Errorf("report: save facility chart: %w", err)
	}

	r.logger.Info().
		Str("facility", f.Name).
		Str("path", path).
		Msg("facility chart written")

	return path, nil
}

// UsageChart draws one bar per month with the value printed above each
// bar. The file is named <name>_monthly_usage.png.
func (r *ChartRenderer) UsageChart(name, title string, prof *profile.Profile) (string, error) {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Month"
	p.Y.Label.Text = "Energy Consumption (MWh)"

	values := prof.Values()
	bars, err := plotter.NewBarChart(plotter.Values(values), barWidth)
	if err != nil {
		return "", fmt.Errorf("report: usage bars: %w", err)
	}
	bars.Color = usageColor
	bars.LineStyle.Width = 0

	p.Add(bars)
	p.NominalX(prof.Months()...)

	labels, err := totalLabels(values)
	if err != nil {
		return "", err
	}
	p.Add(labels)

	path := filepath.Join(r.outDir, chartFileName(name, "_monthly_usage"))
	if err := p.Save(chartWidth, chartHeight, path); err != nil {
		return "", fmt.Errorf("report: save usage chart: %w", err)
	}

	r.logger.Info().
		Str("name", name).
		Str("path", path).
		Msg("usage chart written")

	return path, nil
}

// totalLabels places a one-decimal value label above each bar.
func totalLabels(values []float64) (*plotter.Labels, error) {
	xyl := plotter.XYLabels{
		XYs:    make(plotter.XYs, len(values)),
		Labels: make([]string, len(values)),
	}
	for i, v := range values {
		xyl.XYs[i] = plotter.XY{X: float64(i), Y: v}
		xyl.Labels[i] = fmt.Sprintf("%.1f", v)
	}
	labels, err := plotter.NewLabels(xyl)
	if err != nil {
		return nil, fmt.Errorf("report: bar labels: %w", err)
	}
	return labels, nil
}
