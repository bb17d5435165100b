// Package profile provides the ordered month-to-value mapping shared by
// the thermal and usage estimators, together with the normalization
// operations used to turn usage trends into relative weights.
package profile

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// MonthsPerYear is the number of entries in a full-year profile.
const MonthsPerYear = 12

// CalendarMonths lists the twelve month labels in calendar order. Full-year
// profiles use exactly these labels in this order.
var CalendarMonths = [MonthsPerYear]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// Profile is an ordered mapping from month label to a numeric value
// (temperature in °C, relative usage weight, or energy). Iteration follows
// insertion order, so charts and tables keep calendar order as long as the
// profile was built in calendar order.
type Profile struct {
	order  []string
	values map[string]float64
}

// New returns an empty profile.
func New() *Profile {
	return &Profile{values: make(map[string]float64)}
}

// FullYear builds a profile pairing CalendarMonths with the given values.
func FullYear(values [MonthsPerYear]float64) *Profile {
	p := New()
	for i, month := range CalendarMonths {
		p.Set(month, values[i])
	}
	return p
}

// FromMap builds a full-year profile from a month-keyed map. Months missing
// from the map are an error; extra keys are an error as well.
func FromMap(values map[string]float64) (*Profile, error) {
	if len(values) != MonthsPerYear {
		return nil, fmt.Errorf("profile: expected %d months, got %d", MonthsPerYear, len(values))
	}
	p := New()
	for _, month := range CalendarMonths {
		v, ok := values[month]
		if !ok {
			return nil, fmt.Errorf("profile: missing month %q", month)
		}
		p.Set(month, v)
	}
	return p, nil
}

// Set stores a value for the given month, appending it to the iteration
// order if the month was not present yet.
func (p *Profile) Set(month string, value float64) {
	if _, ok := p.values[month]; !ok {
		p.order = append(p.order, month)
	}
	p.values[month] = value
}

// Get returns the value for the given month and whether it is present.
func (p *Profile) Get(month string) (float64, bool) {
	v, ok := p.values[month]
	return v, ok
}

// Months returns the month labels in iteration order.
func (p *Profile) Months() []string {
	out := make([]string, len(p.order))
	copy(out, p.order)
	return out
}

// Values returns the values in iteration order, parallel to Months.
func (p *Profile) Values() []float64 {
	out := make([]float64, len(p.order))
	for i, month := range p.order {
		out[i] = p.values[month]
	}
	return out
}

// Len returns the number of entries.
func (p *Profile) Len() int {
	return len(p.order)
}

// Sum returns the sum of all values.
func (p *Profile) Sum() float64 {
	var total float64
	for _, month := range p.order {
		total += p.values[month]
	}
	return total
}

// Clone returns a deep copy preserving iteration order.
func (p *Profile) Clone() *Profile {
	out := New()
	for _, month := range p.order {
		out.Set(month, p.values[month])
	}
	return out
}

// IsFullYear reports whether the profile holds exactly the twelve calendar
// months in calendar order.
func (p *Profile) IsFullYear() bool {
	if len(p.order) != MonthsPerYear {
		return false
	}
	for i, month := range p.order {
		if month != CalendarMonths[i] {
			return false
		}
	}
	return true
}

// Validate checks full-year shape and, when requireNonNegative is set, that
// every value is >= 0 (energy and weight profiles; temperatures may be
// negative).
func (p *Profile) Validate(requireNonNegative bool) error {
	if !p.IsFullYear() {
		return fmt.Errorf("profile: expected %d calendar months in order, got %d entries", MonthsPerYear, len(p.order))
	}
	if requireNonNegative {
		for _, month := range p.order {
			if p.values[month] < 0 {
				return fmt.Errorf("profile: negative value %v for month %q", p.values[month], month)
			}
		}
	}
	return nil
}

// UnmarshalYAML decodes a YAML mapping into the profile, preserving the
// document's key order. Scenario files rely on this to keep calendar order.
func (p *Profile) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("profile: expected mapping node, got %v", node.Kind)
	}
	p.order = nil
	p.values = make(map[string]float64)
	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valNode := node.Content[i], node.Content[i+1]
		var value float64
		if err := valNode.Decode(&value); err != nil {
			return fmt.Errorf("profile: month %q: %w", keyNode.Value, err)
		}
		p.Set(keyNode.Value, value)
	}
	return nil
}

// MarshalYAML encodes the profile as a mapping in iteration order.
func (p *Profile) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, month := range p.order {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: month},
			&yaml.Node{Kind: yaml.ScalarNode, Value: fmt.Sprintf("%v", p.values[month])},
		)
	}
	return node, nil
}
