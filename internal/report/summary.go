package report

import (
	"fmt"
	"os"
	"path/filepath"

	json "github.com/goccy/go-json"

	"github.com/shelterworks/energyprofile/internal/profile"
	"github.com/shelterworks/energyprofile/internal/thermal"
)

// MonthValue is one month's figure in a JSON summary.
type MonthValue struct {
	Month string  `json:"month"`
	Value float64 `json:"value"`
}

// FacilitySummary is the JSON summary written alongside a facility chart.
type FacilitySummary struct {
	Name           string       `json:"name"`
	AreaM2         float64      `json:"areaM2"`
	HeatLossCoef   float64      `json:"heatLossCoef"`
	AnnualTotalKWh float64      `json:"annualTotalKwh"`
	HeatingKWh     []MonthValue `json:"heatingKwh"`
	LightingKWh    []MonthValue `json:"lightingKwh"`
	TotalKWh       []MonthValue `json:"totalKwh"`
}

// UsageSummary is the JSON summary written alongside a usage chart.
type UsageSummary struct {
	Postcode   string       `json:"postcode"`
	Households int          `json:"households"`
	TotalMWh   float64      `json:"totalMwh"`
	MonthlyMWh []MonthValue `json:"monthlyMwh"`
}

// NewFacilitySummary assembles the summary for a facility breakdown.
func NewFacilitySummary(f *thermal.Facility, b *thermal.Breakdown) FacilitySummary {
	s := FacilitySummary{
		Name:           f.Name,
		AreaM2:         f.AreaM2,
		HeatLossCoef:   f.HeatLossCoef,
		AnnualTotalKWh: b.AnnualTotalKWh,
	}
	for i, month := range b.Months {
		s.HeatingKWh = append(s.HeatingKWh, MonthValue{Month: month, Value: b.HeatingKWh[i]})
		s.LightingKWh = append(s.LightingKWh, MonthValue{Month: month, Value: b.LightingKWh[i]})
		s.TotalKWh = append(s.TotalKWh, MonthValue{Month: month, Value: b.TotalKWh[i]})
	}
	return s
}

// NewUsageSummary assembles the summary for a monthly usage profile.
func NewUsageSummary(postcode string, households int, p *profile.Profile) UsageSummary {
	s := UsageSummary{
		Postcode:   postcode,
		Households: households,
		TotalMWh:   p.Sum(),
	}
	for _, month := range p.Months() {
		v, _ := p.Get(month)
		s.MonthlyMWh = append(s.MonthlyMWh, MonthValue{Month: month, Value: v})
	}
	return s
}

// WriteJSON writes a summary value as indented JSON into dir under the
// given file name and returns the full path.
func WriteJSON(dir, name string, v any) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("report: marshal summary: %w", err)
	}
	if dir == "" {
		dir = "."
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("report: write summary: %w", err)
	}
	return path, nil
}
