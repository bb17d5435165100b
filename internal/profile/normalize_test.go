package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// nationalTrend is the UK national monthly electricity trend used across
// the usage tests.
func nationalTrend() *Profile {
	return FullYear([MonthsPerYear]float64{
		1.88, 1.77, 1.63, 1.54, 1.55, 1.54, 1.54, 1.51, 1.58, 1.72, 1.8, 1.85,
	})
}

// TestNormalize_SumsToTwelve verifies the sum-to-12 invariant.
func TestNormalize_SumsToTwelve(t *testing.T) {
	tests := []struct {
		name string
		in   *Profile
	}{
		{name: "national trend", in: nationalTrend()},
		{name: "uniform", in: FullYear([MonthsPerYear]float64{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1})},
		{name: "single heavy month", in: FullYear([MonthsPerYear]float64{12, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0})},
		{name: "tiny values", in: FullYear([MonthsPerYear]float64{0.001, 0.002, 0.001, 0.003, 0.001, 0.002, 0.001, 0.001, 0.002, 0.001, 0.003, 0.002})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Normalize(tt.in)
			assert.InDelta(t, float64(MonthsPerYear), out.Sum(), 1e-9)
			assert.Equal(t, tt.in.Months(), out.Months())
		})
	}
}

// TestNormalize_PreservesProportions verifies rescaling keeps ratios.
func TestNormalize_PreservesProportions(t *testing.T) {
	in := nationalTrend()
	out := Normalize(in)

	jan, _ := in.Get("January")
	jun, _ := in.Get("June")
	nJan, _ := out.Get("January")
	nJun, _ := out.Get("June")

	assert.InDelta(t, jan/jun, nJan/nJun, 1e-9)
}

// TestNormalize_ZeroSum verifies the divide-by-zero guard returns the
// input untouched.
func TestNormalize_ZeroSum(t *testing.T) {
	zero := FullYear([MonthsPerYear]float64{})
	out := Normalize(zero)

	assert.Same(t, zero, out)
	assert.Equal(t, 0.0, out.Sum())
}

// TestNormalize_DoesNotMutateInput verifies the input is left alone.
func TestNormalize_DoesNotMutateInput(t *testing.T) {
	in := nationalTrend()
	before := in.Values()

	_ = Normalize(in)

	assert.Equal(t, before, in.Values())
}

// TestMakeRelative_SumsToOne verifies the proportion invariant.
func TestMakeRelative_SumsToOne(t *testing.T) {
	in := nationalTrend()
	out := MakeRelative(in)

	assert.InDelta(t, 1.0, out.Sum(), 1e-9)

	// Each proportion is value/total.
	total := in.Sum()
	jan, _ := in.Get("January")
	rJan, ok := out.Get("January")
	require.True(t, ok)
	assert.InDelta(t, jan/total, rJan, 1e-12)
}

// TestMakeRelative_ZeroSum verifies zero-total input comes back verbatim.
func TestMakeRelative_ZeroSum(t *testing.T) {
	zero := FullYear([MonthsPerYear]float64{})
	out := MakeRelative(zero)

	assert.Same(t, zero, out)
}

// TestMakeRelative_ThenNormalize verifies the two operations compose:
// relative proportions normalized to weights still sum to 12 and keep
// the original ordering of months by magnitude.
func TestMakeRelative_ThenNormalize(t *testing.T) {
	in := nationalTrend()
	weights := Normalize(MakeRelative(in))

	assert.InDelta(t, float64(MonthsPerYear), weights.Sum(), 1e-9)

	wJan, _ := weights.Get("January")
	wAug, _ := weights.Get("August")
	assert.Greater(t, wJan, wAug, "January trend should stay above August after composition")
}
