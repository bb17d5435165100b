// Package scenario defines the YAML run files that drive the CLI: the
// facilities to estimate and the postcode usage runs to compute.
package scenario

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/shelterworks/energyprofile/internal/profile"
	"github.com/shelterworks/energyprofile/internal/usage"
)

var validate = validator.New()

// FacilitySpec is one facility entry in a scenario file.
type FacilitySpec struct {
	Name         string           `yaml:"name" validate:"required"`
	AreaM2       float64          `yaml:"area_m2" validate:"gt=0"`
	HeatLossCoef float64          `yaml:"heat_loss_coef" validate:"gt=0"`
	Climate      *profile.Profile `yaml:"climate" validate:"required"`

	// LightingPowerDensity overrides the default lighting load when > 0.
	LightingPowerDensity float64 `yaml:"lighting_power_density" validate:"gte=0"`
}

// UsageRun is one postcode usage calculation in a scenario file.
type UsageRun struct {
	Postcode   string           `yaml:"postcode" validate:"required"`
	Households int              `yaml:"households" validate:"gt=0"`
	Trend      *profile.Profile `yaml:"monthly_trend" validate:"required"`

	// DomesticFraction overrides the default when > 0.
	DomesticFraction float64 `yaml:"domestic_fraction" validate:"gte=0,lte=1"`
}

// Options returns the usage options for this run, applying the default
// domestic fraction when none is configured.
func (r UsageRun) Options() usage.Options {
	opts := usage.DefaultOptions()
	if r.DomesticFraction > 0 {
		opts.DomesticFraction = r.DomesticFraction
	}
	return opts
}

// Scenario is a full run definition.
type Scenario struct {
	Facilities []FacilitySpec `yaml:"facilities" validate:"dive"`
	UsageRuns  []UsageRun     `yaml:"usage_runs" validate:"dive"`
}

// Load reads and validates a scenario YAML file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes and validates scenario YAML.
func Parse(data []byte) (*Scenario, error) {
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("scenario: parse: %w", err)
	}
	if err := validate.Struct(&s); err != nil {
		return nil, fmt.Errorf("scenario: invalid: %w", err)
	}
	if len(s.Facilities) == 0 && len(s.UsageRuns) == 0 {
		return nil, fmt.Errorf("scenario: no facilities or usage runs defined")
	}
	for _, f := range s.Facilities {
		if f.Climate.Len() == 0 {
			return nil, fmt.Errorf("scenario: facility %q has an empty climate profile", f.Name)
		}
	}
	for _, r := range s.UsageRuns {
		if err := r.Trend.Validate(true); err != nil {
			return nil, fmt.Errorf("scenario: usage run %q: %w", r.Postcode, err)
		}
	}
	return &s, nil
}

// Default returns the bundled example scenario: the Welsh and Italian
// shelters plus the IV49 postcode run with the national monthly trend.
func Default() *Scenario {
	return &Scenario{
		Facilities: []FacilitySpec{
			{
				Name:         "Many Tears Rescue Wales",
				AreaM2:       150,
				HeatLossCoef: 4,
				Climate: profile.FullYear([profile.MonthsPerYear]float64{
					5, 4, 6, 8, 11, 13, 15, 15, 13, 10, 7, 5,
				}),
			},
			{
				Name:         "APS",
				AreaM2:       300,
				HeatLossCoef: 4,
				Climate: profile.FullYear([profile.MonthsPerYear]float64{
					2, 4, 9, 13, 17, 21, 24, 23, 19, 13, 7, 3,
				}),
			},
		},
		UsageRuns: []UsageRun{
			{
				Postcode:   "IV49",
				Households: 540,
				Trend: profile.FullYear([profile.MonthsPerYear]float64{
					1.88, 1.77, 1.63, 1.54, 1.55, 1.54, 1.54, 1.51, 1.58, 1.72, 1.8, 1.85,
				}),
			},
		},
	}
}
