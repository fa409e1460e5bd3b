package argparse

import (
	"sort"
	"strconv"
)

// builtinKind identifies the implicit meta options.
type builtinKind uint8

const (
	builtinNone builtinKind = iota
	builtinHelp
	builtinVersion
)

// optionMatch is the result of resolving an option token against the
// active spec set. Exactly one of spec/builtin is meaningful.
type optionMatch struct {
	spec    *ParameterSpec
	frame   *frame // the path frame whose node declares the spec
	builtin builtinKind
}

// activeBuiltin reports which built-in the exact name addresses at the
// current node. A user declaration of the same name at that node suppresses
// the built-in there, but only there; ancestors and descendants keep it.
func (r *resolver) activeBuiltin(name string) builtinKind {
	cur := r.cur().node
	switch name {
	case "help", "h":
		if !cur.declares(name) {
			return builtinHelp
		}
	case "version":
		if r.root.version != "" && !cur.declares(name) {
			return builtinVersion
		}
	}
	return builtinNone
}

// activeSpecs returns every flag/option spec reachable at the current node:
// its own plus all ancestors', root first.
func (r *resolver) activeSpecs() []*ParameterSpec {
	var specs []*ParameterSpec
	for _, fr := range r.frames {
		specs = append(specs, fr.node.specs...)
	}
	return specs
}

// lookupOption resolves a long option name: built-in first (unless the
// current node claims the name), then exact match deepest-declaration-first,
// then unambiguous case-sensitive prefix over every active long name.
func (r *resolver) lookupOption(name string) (optionMatch, *ParseError) {
	if b := r.activeBuiltin(name); b != builtinNone {
		return optionMatch{builtin: b}, nil
	}

	for i := len(r.frames) - 1; i >= 0; i-- {
		fr := r.frames[i]
		if spec := fr.node.findSpec(name); spec != nil {
			return optionMatch{spec: spec, frame: fr}, nil
		}
	}

	if len(name) > 1 {
		if m, perr := r.lookupAbbreviation(name); perr != nil || m.spec != nil || m.builtin != builtinNone {
			return m, perr
		}
	}

	return optionMatch{}, unknownOptionError(r.cur().node, name, r.activeSpecs())
}

// lookupAbbreviation expands an unambiguous prefix. Two or more distinct
// parameters sharing the prefix is an error naming all candidates; several
// aliases of the same parameter count once.
func (r *resolver) lookupAbbreviation(abbrev string) (optionMatch, *ParseError) {
	var (
		matches  []optionMatch
		expanded []string
	)
	add := func(m optionMatch, full string) {
		for _, prev := range matches {
			if prev.spec != nil && prev.spec == m.spec {
				return
			}
			if prev.builtin != builtinNone && prev.builtin == m.builtin {
				return
			}
		}
		matches = append(matches, m)
		expanded = append(expanded, full)
	}

	for i := len(r.frames) - 1; i >= 0; i-- {
		fr := r.frames[i]
		for _, spec := range fr.node.specs {
			for _, long := range spec.longNames() {
				if hasPrefix(long, abbrev) {
					add(optionMatch{spec: spec, frame: fr}, long)
				}
			}
		}
	}
	if hasPrefix("help", abbrev) && r.activeBuiltin("help") == builtinHelp {
		add(optionMatch{builtin: builtinHelp}, "help")
	}
	if hasPrefix("version", abbrev) && r.activeBuiltin("version") == builtinVersion {
		add(optionMatch{builtin: builtinVersion}, "version")
	}

	switch len(matches) {
	case 0:
		return optionMatch{}, nil
	case 1:
		return matches[0], nil
	default:
		sort.Strings(expanded)
		return optionMatch{}, ambiguousOptionError(r.cur().node, abbrev, expanded)
	}
}

func hasPrefix(s, prefix string) bool {
	return len(s) > len(prefix) && s[:len(prefix)] == prefix
}

// bindLong binds a --name or --name=value token.
func (r *resolver) bindLong(tok token) error {
	m, perr := r.lookupOption(tok.name)
	if perr != nil {
		if perr.Type == ErrorTypeUnknownOption && r.negativeNumberPositional(tok.raw) {
			r.leftovers = append(r.leftovers, tok.raw)
			return nil
		}
		return perr
	}
	switch m.builtin {
	case builtinHelp:
		return &HelpRequest{Node: r.cur().node}
	case builtinVersion:
		return &VersionRequest{Version: r.root.version}
	case builtinNone:
	}
	return r.storeOption(m, tok.value, tok.hasValue)
}

// bindShort binds a -x token or a -abc cluster. The cluster expands flag by
// flag until a value-taking option consumes the remainder (or the next
// argument) as its value.
func (r *resolver) bindShort(tok token) error {
	body := tok.name
	for i := 0; i < len(body); i++ {
		name := string(body[i])

		if r.activeBuiltin(name) == builtinHelp && name == "h" {
			return &HelpRequest{Node: r.cur().node}
		}

		var m optionMatch
		for fi := len(r.frames) - 1; fi >= 0; fi-- {
			if spec := r.frames[fi].node.findSpec(name); spec != nil {
				m = optionMatch{spec: spec, frame: r.frames[fi]}
				break
			}
		}
		if m.spec == nil {
			if i == 0 && r.negativeNumberPositional(tok.raw) {
				r.leftovers = append(r.leftovers, tok.raw)
				return nil
			}
			return unknownOptionError(r.cur().node, name, r.activeSpecs())
		}

		if m.spec.Kind == KindOption {
			if rest := body[i+1:]; rest != "" {
				return r.storeOption(m, rest, true)
			}
			return r.storeOption(m, "", false)
		}
		if err := r.storeOption(m, "", false); err != nil {
			return err
		}
	}
	return nil
}

// storeOption consumes the arity-appropriate value tokens, converts them
// and records the binding on the declaring node's frame. inline carries a
// value attached to the option token itself (--name=v or -nv).
func (r *resolver) storeOption(m optionMatch, inline string, hasInline bool) error {
	spec := m.spec
	values := m.frame.values
	name := spec.Name()
	values.bump(name)

	if spec.Kind == KindFlag {
		if hasInline {
			if spec.Counting {
				return newParseError(ErrorTypeInvalidValue, r.cur().node,
					"flag '--%s' does not take a value", name)
			}
			v, err := spec.Parse(inline)
			if err != nil {
				return conversionError(r.cur().node, spec, inline)
			}
			values.Set(name, v)
			return nil
		}
		if spec.Counting {
			values.Set(name, values.Count(name))
			return nil
		}
		values.Set(name, true)
		return nil
	}

	want := spec.Arity.perOccurrence()
	raws := make([]string, 0, want)
	if hasInline {
		raws = append(raws, inline)
	}
	for len(raws) < want {
		raw, ok := r.tz.nextValue()
		if !ok {
			return missingValueError(r.cur().node, spec)
		}
		raws = append(raws, raw)
	}

	for _, raw := range raws {
		v, err := spec.Parse(raw)
		if err != nil {
			return conversionError(r.cur().node, spec, raw)
		}
		if spec.Arity.Kind == ArityZeroOrMore || want > 1 {
			values.appendValue(name, v)
		} else {
			values.Set(name, v)
		}
	}
	return nil
}

// negativeNumberPositional reports whether an unmatched dash token should
// be kept as a positional: it must parse as a number and the next unfilled
// positional at the current node must be numeric.
func (r *resolver) negativeNumberPositional(raw string) bool {
	if _, err := strconv.ParseFloat(raw, 64); err != nil {
		return false
	}
	pending := len(r.leftovers)
	for _, spec := range r.cur().node.positionals {
		switch spec.Arity.Kind {
		case ArityZeroOrOne, ArityExactlyOne:
			if pending == 0 {
				return spec.Numeric
			}
			pending--
		case ArityExactlyN:
			if pending < spec.Arity.N {
				return spec.Numeric
			}
			pending -= spec.Arity.N
		case ArityZeroOrMore:
			return spec.Numeric
		}
	}
	return false
}
