package scenario

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shelterworks/energyprofile/internal/profile"
	"github.com/shelterworks/energyprofile/internal/usage"
)

// TestLoad verifies the fixture parses with calendar order intact.
func TestLoad(t *testing.T) {
	s, err := Load("testdata/scenario.yaml")
	require.NoError(t, err)

	require.Len(t, s.Facilities, 2)
	require.Len(t, s.UsageRuns, 2)

	wales := s.Facilities[0]
	assert.Equal(t, "Many Tears Rescue Wales", wales.Name)
	assert.Equal(t, 150.0, wales.AreaM2)
	assert.True(t, wales.Climate.IsFullYear())

	jan, ok := wales.Climate.Get("January")
	require.True(t, ok)
	assert.Equal(t, 5.0, jan)

	aps := s.Facilities[1]
	assert.Equal(t, 2.5, aps.LightingPowerDensity)

	iv49 := s.UsageRuns[0]
	assert.Equal(t, 540, iv49.Households)
	assert.Equal(t, usage.DefaultDomesticFraction, iv49.Options().DomesticFraction)

	eh1 := s.UsageRuns[1]
	assert.Equal(t, 0.5, eh1.Options().DomesticFraction)
}

// TestParse_Invalid verifies validation failures are surfaced.
func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{
			name: "negative area",
			doc: `
facilities:
  - name: bad
    area_m2: -5
    heat_loss_coef: 4
    climate:
      January: 5
`,
		},
		{
			name: "missing name",
			doc: `
facilities:
  - area_m2: 100
    heat_loss_coef: 4
    climate:
      January: 5
`,
		},
		{
			name: "zero households",
			doc: `
usage_runs:
  - postcode: IV49
    households: 0
    monthly_trend:
      January: 1
`,
		},
		{
			name: "domestic fraction above one",
			doc: `
usage_runs:
  - postcode: IV49
    households: 10
    domestic_fraction: 1.5
    monthly_trend:
      January: 1
`,
		},
		{
			name: "negative trend weight",
			doc: `
usage_runs:
  - postcode: IV49
    households: 10
    monthly_trend:
      January: 1
      February: -1
`,
		},
		{name: "empty document", doc: "{}\n"},
		{name: "not yaml", doc: ":\n-\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			assert.Error(t, err)
		})
	}
}

// TestDefault verifies the bundled scenario matches the worked examples.
func TestDefault(t *testing.T) {
	s := Default()

	require.Len(t, s.Facilities, 2)
	require.Len(t, s.UsageRuns, 1)

	assert.True(t, s.Facilities[0].Climate.IsFullYear())
	assert.True(t, s.Facilities[1].Climate.IsFullYear())
	assert.Equal(t, "IV49", s.UsageRuns[0].Postcode)
	assert.InDelta(t, float64(profile.MonthsPerYear), profile.Normalize(s.UsageRuns[0].Trend).Sum(), 1e-9)
}
