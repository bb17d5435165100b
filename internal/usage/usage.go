// Package usage scales postcode-level per-household consumption into a
// monthly energy profile weighted by a seasonal trend.
package usage

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/shelterworks/energyprofile/internal/household"
	"github.com/shelterworks/energyprofile/internal/profile"
)

const (
	// DefaultDomesticFraction is the share of total metered electricity
	// attributable to domestic use. The dataset figures are domestic-only,
	// so the scaled total is grossed up by the inverse of this fraction.
	DefaultDomesticFraction = 0.406

	// kWhPerMWh converts dataset kWh figures into MWh output.
	kWhPerMWh = 1000.0
)

// Options tunes a monthly-usage calculation.
type Options struct {
	// DomesticFraction is the domestic share of total consumption
	// (default 0.406). Must be in (0, 1].
	DomesticFraction float64
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{DomesticFraction: DefaultDomesticFraction}
}

// Calculator derives monthly consumption profiles from the postcode
// dataset.
type Calculator struct {
	dataset *household.Client
	logger  zerolog.Logger
}

// NewCalculator returns a Calculator reading from the given dataset client.
func NewCalculator(dataset *household.Client, logger zerolog.Logger) *Calculator {
	return &Calculator{dataset: dataset, logger: logger}
}

// MonthlyUsage computes monthly energy consumption in MWh for a postcode
// area scaled to the given household count.
//
// The calculation:
//  1. aggregate dataset rows matching the postcode prefix
//  2. perHousehold = total consumption / total meters
//  3. scaledTotal = perHousehold × households ÷ domesticFraction
//  4. normalize the trend so weights sum to 12
//  5. per month: (scaledTotal / 12) × weight / 1000 (kWh→MWh)
//
// Returns a NotFound error naming the postcode when the prefix matches no
// rows or the matched rows hold no meters.
func (c *Calculator) MonthlyUsage(postcode string, households int, trend *profile.Profile, opts Options) (*profile.Profile, error) {
	if households <= 0 {
		return nil, fmt.Errorf("usage: household count must be positive, got %d", households)
	}
	if opts.DomesticFraction <= 0 || opts.DomesticFraction > 1 {
		return nil, fmt.Errorf("usage: domestic fraction must be in (0, 1], got %v", opts.DomesticFraction)
	}
	if trend == nil || trend.Len() == 0 {
		return nil, fmt.Errorf("usage: monthly trend is required")
	}
	if trend.Sum() == 0 {
		return nil, fmt.Errorf("usage: monthly trend sums to zero, cannot distribute consumption")
	}

	agg, err := c.dataset.Lookup(postcode)
	if err != nil {
		return nil, err
	}

	perHousehold := agg.PerHouseholdKWh()
	scaledTotalKWh := perHousehold * float64(households) / opts.DomesticFraction

	weights := profile.Normalize(trend)

	out := profile.New()
	for _, month := range weights.Months() {
		w, _ := weights.Get(month)
		out.Set(month, scaledTotalKWh/profile.MonthsPerYear*w/kWhPerMWh)
	}

	c.logger.Debug().
		Str("postcode", postcode).
		Int("households", households).
		Int("dataset_rows", agg.Rows).
		Float64("per_household_kwh", perHousehold).
		Float64("scaled_total_kwh", scaledTotalKWh).
		Float64("domestic_fraction", opts.DomesticFraction).
		Msg("computed monthly usage")

	return out, nil
}
