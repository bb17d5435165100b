package profile

// Normalize rescales a trend so its values sum to MonthsPerYear, giving a
// mean weight of 1.0 per month.
//
// The calculation:
//  1. total = sum of all values
//  2. each value = value / total × 12
//
// A zero-sum input cannot be rescaled; it is returned unchanged rather than
// dividing by zero. The input profile is never mutated.
func Normalize(p *Profile) *Profile {
	total := p.Sum()
	if total == 0 {
		return p
	}
	out := New()
	for _, month := range p.order {
		out.Set(month, p.values[month]/total*MonthsPerYear)
	}
	return out
}

// MakeRelative converts monthly consumption values into each month's
// proportion of the annual total, so the result sums to 1.0. A zero-sum
// input is returned unchanged.
func MakeRelative(p *Profile) *Profile {
	total := p.Sum()
	if total == 0 {
		return p
	}
	out := New()
	for _, month := range p.order {
		out.Set(month, p.values[month]/total)
	}
	return out
}
