package thermal

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/shelterworks/energyprofile/internal/profile"
)

var validate = validator.New()

// Facility describes a building whose energy use is being estimated.
type Facility struct {
	// Name identifies the facility in reports and chart file names.
	Name string `validate:"required"`

	// AreaM2 is the floor area in m².
	AreaM2 float64 `validate:"gt=0"`

	// HeatLossCoef is the heat-loss coefficient in W/(m²·K): heating power
	// needed per m² to offset one degree of indoor/outdoor difference.
	HeatLossCoef float64 `validate:"gt=0"`

	// Climate maps month labels to average outdoor temperature in °C.
	Climate *profile.Profile `validate:"required"`

	// LightingPowerDensity is the lighting load in W/m². Zero means
	// DefaultLightingPowerDensity.
	LightingPowerDensity float64 `validate:"gte=0"`
}

// NewFacility validates and returns a Facility. Non-positive area or
// heat-loss coefficient is rejected rather than silently producing zero or
// negative energy. Temperatures may be negative, so the climate profile is
// only checked for shape when it is a full year.
func NewFacility(name string, areaM2, heatLossCoef float64, climate *profile.Profile) (*Facility, error) {
	f := &Facility{
		Name:                 name,
		AreaM2:               areaM2,
		HeatLossCoef:         heatLossCoef,
		Climate:              climate,
		LightingPowerDensity: DefaultLightingPowerDensity,
	}
	if err := validate.Struct(f); err != nil {
		return nil, fmt.Errorf("thermal: invalid facility %q: %w", name, err)
	}
	if climate.Len() == 0 {
		return nil, fmt.Errorf("thermal: facility %q has an empty climate profile", name)
	}
	return f, nil
}

// lightingDensity returns the lighting power density, defaulted when unset.
func (f *Facility) lightingDensity() float64 {
	if f.LightingPowerDensity > 0 {
		return f.LightingPowerDensity
	}
	return DefaultLightingPowerDensity
}
