// Package report renders calculation results as bar charts, console
// tables and JSON summaries. The calculation packages never import it,
// so the core stays headless-testable.
package report

import (
	"strings"

	"github.com/shelterworks/energyprofile/internal/profile"
	"github.com/shelterworks/energyprofile/internal/thermal"
)

// Renderer draws charts for computed results and returns the path of the
// artifact it produced.
type Renderer interface {
	// FacilityChart draws the stacked heating/lighting bar chart for a
	// facility breakdown.
	FacilityChart(f *thermal.Facility, b *thermal.Breakdown) (string, error)

	// UsageChart draws a single-series monthly bar chart with the given
	// title. name determines the output file name.
	UsageChart(name, title string, p *profile.Profile) (string, error)
}

// NopRenderer discards all charts. Used in headless environments and tests.
type NopRenderer struct{}

func (NopRenderer) FacilityChart(*thermal.Facility, *thermal.Breakdown) (string, error) {
	return "", nil
}

func (NopRenderer) UsageChart(string, string, *profile.Profile) (string, error) {
	return "", nil
}

// chartFileName derives a deterministic file name from an entity name,
// replacing characters that do not belong in file names.
func chartFileName(name, suffix string) string {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', ' ':
			return '_'
		}
		return r
	}, name)
	return cleaned + suffix + ".png"
}
