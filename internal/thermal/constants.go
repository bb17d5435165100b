// Package thermal estimates monthly and annual heating and lighting energy
// for a facility from its area, heat-loss coefficient and climate profile.
package thermal

const (
	// HoursPerMonth is the average hours per month used for W→kWh
	// conversion in monthly energy calculations.
	HoursPerMonth = 730.0

	// DefaultIdealTemperature is the indoor setpoint in °C. Heating is
	// only counted for months colder than this; warmer months contribute
	// no cooling load.
	DefaultIdealTemperature = 20.0

	// DefaultLightingPowerDensity is the assumed lighting load in W/m².
	// Placeholder pending metered lighting data.
	DefaultLightingPowerDensity = 2.0

	// wattsPerKilowatt converts W-hours to kWh.
	wattsPerKilowatt = 1000.0
)
