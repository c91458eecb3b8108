package search

import "github.com/go-viper/mapstructure/v2"

// FilterType names the comparison semantics of a filter.
type FilterType string

const (
	FilterText    FilterType = "text"
	FilterSelect  FilterType = "select"
	FilterDate    FilterType = "date"
	FilterNumber  FilterType = "number"
	FilterBoolean FilterType = "boolean"
	FilterRange   FilterType = "range"
)

// FilterSpec describes one filterable field. The concrete variants are
// TextFilter, SelectFilter, BooleanFilter, NumberFilter, DateFilter and
// RangeFilter.
type FilterSpec interface {
	Key() string
	Type() FilterType
	// Match compares a record value against an active filter value.
	// present is false when the record has no usable value for the field.
	Match(value any, present bool, filter any) bool
}

// Values maps filter keys to the values currently selected for them.
type Values map[string]any

// Active returns the number of filters that constrain results.
func (v Values) Active() int {
	n := 0
	for _, val := range v {
		if isActive(val) {
			n++
		}
	}
	return n
}

// Clone returns a shallow copy of v.
func (v Values) Clone() Values {
	out := make(Values, len(v))
	for k, val := range v {
		out[k] = val
	}
	return out
}

// Specs is an ordered set of filter specs.
type Specs []FilterSpec

// Get returns the spec registered for key.
func (s Specs) Get(key string) (FilterSpec, bool) {
	for _, spec := range s {
		if spec.Key() == key {
			return spec, true
		}
	}
	return nil, false
}

func (s Specs) index() map[string]FilterSpec {
	m := make(map[string]FilterSpec, len(s))
	for _, spec := range s {
		m[spec.Key()] = spec
	}
	return m
}

// PassesFilters reports whether record satisfies every active filter.
// Inactive values and keys without a spec always pass.
func PassesFilters[T any](record T, get Getter[T], values Values, specs Specs) bool {
	return passes(record, get, values, specs.index())
}

func passes[T any](record T, get Getter[T], values Values, specs map[string]FilterSpec) bool {
	for key, fv := range values {
		if !isActive(fv) {
			continue
		}
		spec, ok := specs[key]
		if !ok {
			continue
		}
		v, present := lookup(get, record, key)
		if !spec.Match(v, present, fv) {
			return false
		}
	}
	return true
}

// Option is a selectable choice of a SelectFilter.
type Option struct {
	Value string
	Label string
}

// TextFilter matches records whose field contains the filter text, ignoring case.
type TextFilter struct {
	Field string
	Label string
}

func (f TextFilter) Key() string      { return f.Field }
func (f TextFilter) Type() FilterType { return FilterText }

func (f TextFilter) Match(value any, present bool, filter any) bool {
	if !present {
		return false
	}
	m, ok := newMatcher(text(filter), TextOptions{})
	return !ok || m.value(value)
}

// SelectFilter matches records whose field equals the filter value, or is a
// member of it when the filter value is a slice.
type SelectFilter struct {
	Field   string
	Label   string
	Options []Option
}

func (f SelectFilter) Key() string      { return f.Field }
func (f SelectFilter) Type() FilterType { return FilterSelect }

func (f SelectFilter) Match(value any, present bool, filter any) bool {
	if !present {
		return false
	}
	if xs, ok := elements(filter); ok {
		for _, x := range xs {
			if equal(value, x) {
				return true
			}
		}
		return false
	}
	return equal(value, filter)
}

// BooleanFilter compares the truthiness of the field with the filter value.
// A missing field counts as false.
type BooleanFilter struct {
	Field string
	Label string
}

func (f BooleanFilter) Key() string      { return f.Field }
func (f BooleanFilter) Type() FilterType { return FilterBoolean }

func (f BooleanFilter) Match(value any, present bool, filter any) bool {
	return truthy(value) == truthy(filter)
}

// NumberFilter matches records whose numeric field equals the filter value.
type NumberFilter struct {
	Field string
	Label string
}

func (f NumberFilter) Key() string      { return f.Field }
func (f NumberFilter) Type() FilterType { return FilterNumber }

func (f NumberFilter) Match(value any, present bool, filter any) bool {
	if !present {
		return false
	}
	want, ok := parseNumber(filter)
	if !ok {
		return true
	}
	got, ok := parseNumber(value)
	return ok && got == want
}

// DateFilter matches records whose date falls on the same calendar day as
// the filter value. Time of day is ignored.
type DateFilter struct {
	Field string
	Label string
}

func (f DateFilter) Key() string      { return f.Field }
func (f DateFilter) Type() FilterType { return FilterDate }

func (f DateFilter) Match(value any, present bool, filter any) bool {
	if !present {
		return false
	}
	want, ok := parseTime(filter)
	if !ok {
		return true
	}
	got, ok := parseTime(value)
	if !ok {
		return false
	}
	gy, gm, gd := got.Date()
	wy, wm, wd := want.Date()
	return gy == wy && gm == wm && gd == wd
}

// Range bounds a numeric field. A nil bound is open.
type Range struct {
	Min *float64 `mapstructure:"min" json:"min,omitempty" yaml:"min,omitempty"`
	Max *float64 `mapstructure:"max" json:"max,omitempty" yaml:"max,omitempty"`
}

// Between returns a closed range [min, max].
func Between(min, max float64) Range {
	return Range{Min: &min, Max: &max}
}

// AtLeast returns a range bounded only from below.
func AtLeast(min float64) Range {
	return Range{Min: &min}
}

// AtMost returns a range bounded only from above.
func AtMost(max float64) Range {
	return Range{Max: &max}
}

// Contains reports whether min <= v <= max.
func (r Range) Contains(v float64) bool {
	if r.Min != nil && v < *r.Min {
		return false
	}
	if r.Max != nil && v > *r.Max {
		return false
	}
	return true
}

// RangeFilter matches records whose numeric field lies inside a Range.
// Min and Max describe the selectable bounds for the input control; the
// active bounds come from the filter value, which may be a Range or a map
// with "min"/"max" keys.
type RangeFilter struct {
	Field string
	Label string
	Min   float64
	Max   float64
	Step  float64
}

func (f RangeFilter) Key() string      { return f.Field }
func (f RangeFilter) Type() FilterType { return FilterRange }

func (f RangeFilter) Match(value any, present bool, filter any) bool {
	r, ok := toRange(filter)
	if !ok {
		return true
	}
	if !present {
		return false
	}
	v, ok := parseNumber(value)
	return ok && r.Contains(v)
}

// toRange decodes a filter value into a Range. Malformed values report false.
func toRange(v any) (Range, bool) {
	v, ok := deref(v)
	if !ok {
		return Range{}, false
	}
	if r, ok := v.(Range); ok {
		return r, r.Min != nil || r.Max != nil
	}

	var r Range
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &r,
	})
	if err != nil {
		return Range{}, false
	}
	if err := dec.Decode(v); err != nil {
		return Range{}, false
	}
	return r, r.Min != nil || r.Max != nil
}
