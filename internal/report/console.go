package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/shelterworks/energyprofile/internal/profile"
	"github.com/shelterworks/energyprofile/internal/thermal"
)

const tableRule = 37

// WriteFacilitySummary prints the facility parameters and the estimated
// annual total.
func WriteFacilitySummary(w io.Writer, f *thermal.Facility, b *thermal.Breakdown) {
	fmt.Fprintf(w, "Facility Name: %s\n", f.Name)
	fmt.Fprintf(w, "Area (m²): %g\n", f.AreaM2)
	fmt.Fprintf(w, "Heat Loss Coefficient (W/(m²·K)): %g\n", f.HeatLossCoef)
	fmt.Fprintf(w, "Estimated Annual Total Energy Consumption (kWh): %.2f\n", b.AnnualTotalKWh)
}

// WriteUsageTable prints a monthly consumption table with a total row.
func WriteUsageTable(w io.Writer, title string, p *profile.Profile) {
	fmt.Fprintf(w, "%s\n\n", title)
	fmt.Fprintf(w, "%-15s %20s\n", "Month", "Consumption (MWh)")
	fmt.Fprintln(w, strings.Repeat("-", tableRule))

	var total float64
	for _, month := range p.Months() {
		v, _ := p.Get(month)
		fmt.Fprintf(w, "%-15s %20.2f\n", month, v)
		total += v
	}

	fmt.Fprintln(w, strings.Repeat("-", tableRule))
	fmt.Fprintf(w, "%-15s %20.2f\n", "Total", total)
}
