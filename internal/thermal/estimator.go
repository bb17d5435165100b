package thermal

import (
	"github.com/rs/zerolog"

	"github.com/shelterworks/energyprofile/internal/profile"
)

// EstimateOptions tunes a single estimation run. All fields have documented
// defaults so callers can override any constant per invocation.
type EstimateOptions struct {
	// IdealTemperature is the indoor setpoint in °C (default 20).
	IdealTemperature float64

	// HoursPerMonth is the averaging period for W→kWh conversion
	// (default 730).
	HoursPerMonth float64
}

// DefaultEstimateOptions returns the documented defaults.
func DefaultEstimateOptions() EstimateOptions {
	return EstimateOptions{
		IdealTemperature: DefaultIdealTemperature,
		HoursPerMonth:    HoursPerMonth,
	}
}

// Breakdown holds the monthly energy split for a facility. The slices are
// parallel to Months, which follows the climate profile's month order.
type Breakdown struct {
	Months      []string
	HeatingKWh  []float64
	LightingKWh []float64
	TotalKWh    []float64

	// AnnualTotalKWh is the sum of TotalKWh over all months present.
	AnnualTotalKWh float64
}

// MonthlyTotals returns the per-month totals as a profile, keeping the
// climate month order for charts and reports.
func (b *Breakdown) MonthlyTotals() *profile.Profile {
	p := profile.New()
	for i, month := range b.Months {
		p.Set(month, b.TotalKWh[i])
	}
	return p
}

// Estimator computes facility energy breakdowns.
type Estimator struct {
	logger zerolog.Logger
}

// NewEstimator returns an Estimator logging through the given logger.
func NewEstimator(logger zerolog.Logger) *Estimator {
	return &Estimator{logger: logger}
}

// EstimateAnnualEnergy calculates the monthly heating/lighting split and
// annual total for a facility.
//
// Per month:
//  1. deficit = max(0, idealTemperature − monthTemperature); cooling is
//     never counted, so the deficit is floored at zero
//  2. heating (kWh) = deficit × area × heatLossCoef × hoursPerMonth / 1000
//  3. lighting (kWh) = area × lightingPowerDensity × hoursPerMonth / 1000
//  4. total = heating + lighting
//
// The annual total sums every month present in the climate profile; a full
// year is typical but not required.
func (e *Estimator) EstimateAnnualEnergy(f *Facility, opts EstimateOptions) *Breakdown {
	if opts.HoursPerMonth == 0 {
		opts.HoursPerMonth = HoursPerMonth
	}

	months := f.Climate.Months()
	b := &Breakdown{
		Months:      months,
		HeatingKWh:  make([]float64, len(months)),
		LightingKWh: make([]float64, len(months)),
		TotalKWh:    make([]float64, len(months)),
	}

	lighting := lightingEnergyKWh(f.AreaM2, f.lightingDensity(), opts.HoursPerMonth)

	for i, month := range months {
		temp, _ := f.Climate.Get(month)
		deficit := opts.IdealTemperature - temp
		if deficit < 0 {
			deficit = 0
		}

		heating := heatingEnergyKWh(deficit, f.AreaM2, f.HeatLossCoef, opts.HoursPerMonth)
		b.HeatingKWh[i] = heating
		b.LightingKWh[i] = lighting
		b.TotalKWh[i] = heating + lighting
		b.AnnualTotalKWh += heating + lighting
	}

	e.logger.Debug().
		Str("facility", f.Name).
		Float64("area_m2", f.AreaM2).
		Float64("heat_loss_coef", f.HeatLossCoef).
		Int("months", len(months)).
		Float64("annual_total_kwh", b.AnnualTotalKWh).
		Msg("estimated facility energy")

	return b
}

// heatingEnergyKWh converts a temperature deficit into monthly heating
// energy: degree-hours (deficit × hours) times the facility's loss rate
// (area × coefficient), divided by 1000 for W→kWh.
func heatingEnergyKWh(deficit, areaM2, heatLossCoef, hours float64) float64 {
	return deficit * areaM2 * heatLossCoef * hours / wattsPerKilowatt
}

// lightingEnergyKWh is the fixed monthly lighting term.
func lightingEnergyKWh(areaM2, powerDensity, hours float64) float64 {
	return areaM2 * powerDensity * hours / wattsPerKilowatt
}
