package argparse

import "time"

// Values holds the decoded parameter values of one command node, keyed by
// canonical parameter name. A Values instance belongs to a single parse
// call; validation hooks may mutate their own node's values before the
// result is sealed into a DecodedCommand.
type Values struct {
	m      map[string]any
	counts map[string]int // occurrence counts, used by counting flags
}

// NewValues returns an empty value map.
func NewValues() *Values {
	return &Values{
		m:      make(map[string]any),
		counts: make(map[string]int),
	}
}

// Has reports whether the named parameter was bound (or defaulted).
func (v *Values) Has(name string) bool {
	_, ok := v.m[name]
	return ok
}

// Get returns the raw decoded value.
func (v *Values) Get(name string) (any, bool) {
	val, ok := v.m[name]
	return val, ok
}

// Set stores a decoded value, overwriting any previous binding.
func (v *Values) Set(name string, value any) {
	v.m[name] = value
}

// Count returns how many times the named parameter occurred on the command
// line. Counting flags expose their value through this.
func (v *Values) Count(name string) int {
	return v.counts[name]
}

func (v *Values) bump(name string) {
	v.counts[name]++
}

// appendValue accumulates a repeated (zero-or-more) option occurrence.
func (v *Values) appendValue(name string, value any) {
	switch tv := value.(type) {
	case string:
		prev, _ := v.m[name].([]string)
		v.m[name] = append(prev, tv)
	case int:
		prev, _ := v.m[name].([]int)
		v.m[name] = append(prev, tv)
	case float64:
		prev, _ := v.m[name].([]float64)
		v.m[name] = append(prev, tv)
	default:
		prev, _ := v.m[name].([]any)
		v.m[name] = append(prev, tv)
	}
}

// Typed accessors. Each returns the zero value and false when the parameter
// is absent or holds a different type.

func (v *Values) GetString(name string) (string, bool) {
	val, ok := v.m[name].(string)
	return val, ok
}

func (v *Values) GetInt(name string) (int, bool) {
	val, ok := v.m[name].(int)
	return val, ok
}

func (v *Values) GetBool(name string) (bool, bool) {
	val, ok := v.m[name].(bool)
	return val, ok
}

func (v *Values) GetFloat(name string) (float64, bool) {
	val, ok := v.m[name].(float64)
	return val, ok
}

func (v *Values) GetDuration(name string) (time.Duration, bool) {
	val, ok := v.m[name].(time.Duration)
	return val, ok
}

func (v *Values) GetStrings(name string) ([]string, bool) {
	val, ok := v.m[name].([]string)
	return val, ok
}

func (v *Values) GetInts(name string) ([]int, bool) {
	val, ok := v.m[name].([]int)
	return val, ok
}

// MustGetString returns the bound value or the given fallback.
func (v *Values) MustGetString(name, fallback string) string {
	if val, ok := v.GetString(name); ok {
		return val
	}
	return fallback
}

// MustGetInt returns the bound value or the given fallback.
func (v *Values) MustGetInt(name string, fallback int) int {
	if val, ok := v.GetInt(name); ok {
		return val
	}
	return fallback
}

// MustGetBool returns the bound value or the given fallback.
func (v *Values) MustGetBool(name string, fallback bool) bool {
	if val, ok := v.GetBool(name); ok {
		return val
	}
	return fallback
}

// merge copies other's bindings over v's. Used to fold ancestor values into
// the decoded leaf; callers pass maps root-first so deeper bindings win.
func (v *Values) merge(other *Values) {
	for k, val := range other.m {
		v.m[k] = val
	}
	for k, c := range other.counts {
		v.counts[k] += c
	}
}
