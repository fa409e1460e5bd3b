package argparse

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Kind classifies a parameter specification.
type Kind uint8

const (
	// KindFlag is a zero-arity parameter toggled or counted by presence.
	KindFlag Kind = iota
	// KindOption is a named parameter consuming one or more value tokens.
	KindOption
	// KindPositional is bound by position among leftover non-option tokens.
	KindPositional
)

// ArityKind enumerates how many value tokens a parameter binds.
type ArityKind uint8

const (
	// ArityZeroOrOne marks an optional parameter taking a single value.
	ArityZeroOrOne ArityKind = iota
	// ArityExactlyOne marks a required parameter taking a single value.
	ArityExactlyOne
	// ArityZeroOrMore marks a repeatable option or a variadic positional.
	ArityZeroOrMore
	// ArityExactlyN marks a parameter taking a fixed number of values.
	ArityExactlyN
)

// Arity describes value-token consumption for one parameter.
type Arity struct {
	Kind ArityKind
	N    int // only meaningful for ArityExactlyN
}

// required reports whether the parameter must be bound by the end of
// resolution (possibly by a default subcommand's binding pass).
func (a Arity) required() bool {
	return a.Kind == ArityExactlyOne || (a.Kind == ArityExactlyN && a.N > 0)
}

// perOccurrence returns how many value tokens one occurrence of an option
// consumes.
func (a Arity) perOccurrence() int {
	if a.Kind == ArityExactlyN {
		return a.N
	}
	return 1
}

// ParseFunc converts one raw token into a typed value.
type ParseFunc func(raw string) (any, error)

// ParameterSpec is the static description of a single flag, option or
// positional argument. Specs are built once per command tree and never
// mutated afterwards, so they are safe to share across parse calls.
type ParameterSpec struct {
	Kind       Kind
	Names      []string // ordered aliases; Names[0] is canonical, single-char entries are shorts
	Arity      Arity
	Default    any
	HasDefault bool
	Parse      ParseFunc
	Help       string
	TypeName   string // human description used in conversion diagnostics
	MetaVar    string // usage placeholder; defaults to the canonical name
	Counting   bool   // repeated flag occurrences increment instead of toggling
	Hidden     bool
	Numeric    bool // int/float valued; enables negative-number positionals
}

// Name returns the canonical (first declared) name.
func (s *ParameterSpec) Name() string { return s.Names[0] }

// longNames returns every multi-character alias, the ones eligible for
// abbreviation matching.
func (s *ParameterSpec) longNames() []string {
	long := make([]string, 0, len(s.Names))
	for _, n := range s.Names {
		if len(n) > 1 {
			long = append(long, n)
		}
	}
	return long
}

func (s *ParameterSpec) hasName(name string) bool {
	for _, n := range s.Names {
		if n == name {
			return true
		}
	}
	return false
}

func (s *ParameterSpec) metaVar() string {
	if s.MetaVar != "" {
		return s.MetaVar
	}
	return s.Name()
}

// normalizeName maps a declared name to its collision-detection form:
// leading dashes stripped, underscores folded to dashes, lower-cased.
// Matching itself stays case-sensitive; normalization only guards the
// per-node uniqueness invariant.
func normalizeName(name string) string {
	name = strings.TrimLeft(name, "-")
	name = strings.ReplaceAll(name, "_", "-")
	return strings.ToLower(name)
}

// Built-in converters. Integers accept hex/octal/binary literals via base 0.

func parseStringValue(raw string) (any, error) { return raw, nil }

func parseIntValue(raw string) (any, error) {
	v, err := strconv.ParseInt(raw, 0, strconv.IntSize)
	if err != nil {
		return nil, err
	}
	return int(v), nil
}

func parseBoolValue(raw string) (any, error) {
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, err
	}
	return v, nil
}

func parseFloatValue(raw string) (any, error) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, err
	}
	return v, nil
}

func parseDurationValue(raw string) (any, error) {
	v, err := time.ParseDuration(raw)
	if err != nil {
		return nil, err
	}
	return v, nil
}

// enumParser builds a converter accepting only the listed values.
func enumParser(allowed []string) ParseFunc {
	return func(raw string) (any, error) {
		for _, v := range allowed {
			if raw == v {
				return raw, nil
			}
		}
		return nil, fmt.Errorf("must be one of: %s", strings.Join(allowed, ", "))
	}
}

// OptionGroup is a reusable bundle of flag/option specs embedded into any
// number of command nodes so common options are declared once. Values bound
// at an ancestor flow down to the resolved leaf.
type OptionGroup struct {
	name  string
	specs []*ParameterSpec
}

// Name returns the group's declared name.
func (g *OptionGroup) Name() string { return g.name }

// SpecParent is implemented by builders that can own flag and option specs.
type SpecParent interface {
	addSpec(spec *ParameterSpec)
}

// SpecBuilder configures a single flag or option with type safety.
// T is the value type, P the parent builder returned by Back.
type SpecBuilder[T any, P SpecParent] struct {
	spec   *ParameterSpec
	parent P
}

// Default sets the default value and makes the parameter optional.
func (b *SpecBuilder[T, P]) Default(value T) *SpecBuilder[T, P] {
	b.spec.Default = value
	b.spec.HasDefault = true
	if b.spec.Arity.Kind == ArityExactlyOne {
		b.spec.Arity.Kind = ArityZeroOrOne
	}
	return b
}

// Required marks an option as mandatory. The failure is deferred until
// resolution completes, since a default subcommand may still bind it.
func (b *SpecBuilder[T, P]) Required() *SpecBuilder[T, P] {
	b.spec.Arity.Kind = ArityExactlyOne
	return b
}

// Short registers a single-character alias.
func (b *SpecBuilder[T, P]) Short(short rune) *SpecBuilder[T, P] {
	b.spec.Names = append(b.spec.Names, string(short))
	return b
}

// Alias registers additional long names.
func (b *SpecBuilder[T, P]) Alias(names ...string) *SpecBuilder[T, P] {
	b.spec.Names = append(b.spec.Names, names...)
	return b
}

// MetaVar overrides the usage placeholder for the option's value.
func (b *SpecBuilder[T, P]) MetaVar(name string) *SpecBuilder[T, P] {
	b.spec.MetaVar = name
	return b
}

// Hidden removes the parameter from help output.
func (b *SpecBuilder[T, P]) Hidden() *SpecBuilder[T, P] {
	b.spec.Hidden = true
	return b
}

// Back returns to the parent builder for continued chaining.
func (b *SpecBuilder[T, P]) Back() P {
	return b.parent
}

// GroupBuilder assembles a shared option group with the same fluent surface
// commands use for their own flags and options.
type GroupBuilder struct {
	group *OptionGroup
}

// NewGroup starts a shared option group.
func NewGroup(name string) *GroupBuilder {
	return &GroupBuilder{group: &OptionGroup{name: name}}
}

func (g *GroupBuilder) addSpec(spec *ParameterSpec) {
	g.group.specs = append(g.group.specs, spec)
}

// StringOption adds a string option to the group.
func (g *GroupBuilder) StringOption(name, help string) *SpecBuilder[string, *GroupBuilder] {
	return newOption[string](g, name, help, "string", parseStringValue, false)
}

// IntOption adds an integer option to the group.
func (g *GroupBuilder) IntOption(name, help string) *SpecBuilder[int, *GroupBuilder] {
	return newOption[int](g, name, help, "integer", parseIntValue, true)
}

// FloatOption adds a float option to the group.
func (g *GroupBuilder) FloatOption(name, help string) *SpecBuilder[float64, *GroupBuilder] {
	return newOption[float64](g, name, help, "number", parseFloatValue, true)
}

// DurationOption adds a time.Duration option to the group.
func (g *GroupBuilder) DurationOption(name, help string) *SpecBuilder[time.Duration, *GroupBuilder] {
	return newOption[time.Duration](g, name, help, "duration", parseDurationValue, false)
}

// EnumOption adds a string option restricted to the listed values.
func (g *GroupBuilder) EnumOption(name, help string, values ...string) *SpecBuilder[string, *GroupBuilder] {
	b := newOption[string](g, name, help, "one of: "+strings.Join(values, ", "), enumParser(values), false)
	return b
}

// StringsOption adds a repeatable string option; each occurrence appends.
func (g *GroupBuilder) StringsOption(name, help string) *SpecBuilder[[]string, *GroupBuilder] {
	b := newOption[[]string](g, name, help, "string", parseStringValue, false)
	b.spec.Arity.Kind = ArityZeroOrMore
	return b
}

// BoolFlag adds a boolean flag to the group.
func (g *GroupBuilder) BoolFlag(name, help string) *SpecBuilder[bool, *GroupBuilder] {
	return newFlag(g, name, help)
}

// CountFlag adds a counting flag; each occurrence increments its value.
func (g *GroupBuilder) CountFlag(name, help string) *SpecBuilder[int, *GroupBuilder] {
	b := &SpecBuilder[int, *GroupBuilder]{
		spec: &ParameterSpec{
			Kind:     KindFlag,
			Names:    []string{name},
			Help:     help,
			TypeName: "count",
			Counting: true,
		},
		parent: g,
	}
	g.addSpec(b.spec)
	return b
}

// Group finalizes and returns the shared group.
func (g *GroupBuilder) Group() *OptionGroup {
	return g.group
}

// newOption and newFlag are shared by GroupBuilder and CommandBuilder.

func newOption[T any, P SpecParent](parent P, name, help, typeName string, parse ParseFunc, numeric bool) *SpecBuilder[T, P] {
	spec := &ParameterSpec{
		Kind:     KindOption,
		Names:    []string{name},
		Arity:    Arity{Kind: ArityZeroOrOne},
		Parse:    parse,
		Help:     help,
		TypeName: typeName,
		Numeric:  numeric,
	}
	parent.addSpec(spec)
	return &SpecBuilder[T, P]{spec: spec, parent: parent}
}

func newFlag[P SpecParent](parent P, name, help string) *SpecBuilder[bool, P] {
	spec := &ParameterSpec{
		Kind:     KindFlag,
		Names:    []string{name},
		Parse:    parseBoolValue,
		Help:     help,
		TypeName: "boolean",
	}
	parent.addSpec(spec)
	return &SpecBuilder[bool, P]{spec: spec, parent: parent}
}
