package argparse

import "strings"

// tokenKind classifies a single argv token.
type tokenKind uint8

const (
	tokenLong       tokenKind = iota // --name or --name=value
	tokenShort                       // -x or a cluster -abc
	tokenTerminator                  // bare --
	tokenBare                        // positional candidate or free value
)

// token is one typed element of the argv stream.
type token struct {
	kind     tokenKind
	name     string // long name or cluster body, without dashes
	value    string // inline value after '='
	hasValue bool
	raw      string
	forced   bool // appeared after the -- terminator
}

// tokenizer is a single-pass cursor over argv. It is not restartable; a
// fresh tokenizer is created per parse attempt. Spec-dependent decisions
// (cluster value consumption, negative numbers) belong to the binder; the
// tokenizer only classifies shape.
type tokenizer struct {
	args   []string
	pos    int
	forced bool
}

func newTokenizer(args []string) *tokenizer {
	return &tokenizer{args: args}
}

// next yields the following token, or false at end of input. Once the --
// terminator is seen every later token comes back as a forced positional.
func (t *tokenizer) next() (token, bool) {
	if t.pos >= len(t.args) {
		return token{}, false
	}
	raw := t.args[t.pos]
	t.pos++

	if t.forced {
		return token{kind: tokenBare, raw: raw, forced: true}, true
	}
	if raw == "--" {
		t.forced = true
		return token{kind: tokenTerminator, raw: raw}, true
	}
	if strings.HasPrefix(raw, "--") {
		body := raw[2:]
		if eq := strings.IndexByte(body, '='); eq >= 0 {
			return token{
				kind:     tokenLong,
				name:     body[:eq],
				value:    body[eq+1:],
				hasValue: true,
				raw:      raw,
			}, true
		}
		return token{kind: tokenLong, name: body, raw: raw}, true
	}
	// A lone "-" is conventionally a positional (stdin placeholder).
	if len(raw) > 1 && raw[0] == '-' {
		return token{kind: tokenShort, name: raw[1:], raw: raw}, true
	}
	return token{kind: tokenBare, raw: raw}, true
}

// nextValue consumes the following raw argument as an option value,
// regardless of its shape. Returns false at end of input.
func (t *tokenizer) nextValue() (string, bool) {
	if t.pos >= len(t.args) {
		return "", false
	}
	raw := t.args[t.pos]
	t.pos++
	return raw, true
}
