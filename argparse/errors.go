package argparse

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Chamepp/swift-argument-parser/internal/fuzzy"
)

// Sentinel results for the built-in meta options. Both are clean
// short-circuits, not failures: resolution and validation are skipped and
// the caller decides what to print. Check with errors.Is.
var (
	ErrHelp    = errors.New("help requested")
	ErrVersion = errors.New("version requested")
)

// HelpRequest is returned when -h/--help (or the help subcommand) is
// encountered. Node identifies the command whose help should be rendered.
// errors.Is(err, ErrHelp) reports true for it.
type HelpRequest struct {
	Node *CommandNode
}

func (e *HelpRequest) Error() string {
	return "help requested for '" + e.Node.Path() + "'"
}

func (e *HelpRequest) Is(target error) bool { return target == ErrHelp }

// VersionRequest is returned when --version is encountered at a node that
// does not redeclare the name. Version carries the root's version string.
type VersionRequest struct {
	Version string
}

func (e *VersionRequest) Error() string { return "version requested" }

func (e *VersionRequest) Is(target error) bool { return target == ErrVersion }

// ErrorType categorizes parse failures. Categories drive suggestion logic
// and exit-code mapping (see ExitCodes).
type ErrorType string

const (
	ErrorTypeUnknownOption      ErrorType = "unknown_option"
	ErrorTypeAmbiguousOption    ErrorType = "ambiguous_option"
	ErrorTypeMissingValue       ErrorType = "missing_value"
	ErrorTypeInvalidValue       ErrorType = "invalid_value"
	ErrorTypeUnknownSubcommand  ErrorType = "unknown_subcommand"
	ErrorTypeUnexpectedArgument ErrorType = "unexpected_argument"
	ErrorTypeValidation         ErrorType = "validation"
	ErrorTypeInternal           ErrorType = "internal_error"
)

// ParseError is the failure result of a parse call. Node is the most
// specific command that had been resolved when the failure occurred, so
// diagnostics can show the right usage synopsis.
type ParseError struct {
	Type       ErrorType
	Message    string
	Option     string   // offending option name, without dashes
	Raw        string   // raw value that failed conversion
	Candidates []string // all tied names for ambiguity errors
	Suggestion string   // "did you mean" candidate, may be empty
	Node       *CommandNode
	Cause      error // validation hook error, propagated verbatim
}

func (e *ParseError) Error() string {
	return e.Message
}

func (e *ParseError) Unwrap() error { return e.Cause }

func newParseError(typ ErrorType, node *CommandNode, format string, args ...any) *ParseError {
	return &ParseError{
		Type:    typ,
		Message: fmt.Sprintf(format, args...),
		Node:    node,
	}
}

// unknownOptionError builds an unknown-option failure with a fuzzy
// suggestion drawn from every name reachable at the given node.
func unknownOptionError(node *CommandNode, name string, active []*ParameterSpec) *ParseError {
	err := newParseError(ErrorTypeUnknownOption, node,
		"unknown option '--%s' for '%s'", name, node.Path())
	if len(name) == 1 {
		err.Message = fmt.Sprintf("unknown option '-%s' for '%s'", name, node.Path())
	}
	err.Option = name

	candidates := make([]string, 0, len(active))
	for _, spec := range active {
		candidates = append(candidates, spec.longNames()...)
	}
	if best := fuzzy.Best(name, candidates, 2); best != "" {
		err.Suggestion = "--" + best
	}
	return err
}

// ambiguousOptionError lists every name the abbreviation could expand to.
func ambiguousOptionError(node *CommandNode, abbrev string, matches []string) *ParseError {
	err := newParseError(ErrorTypeAmbiguousOption, node,
		"ambiguous option '--%s' could match %s", abbrev, joinOptionNames(matches))
	err.Option = abbrev
	err.Candidates = matches
	return err
}

// unknownSubcommandError builds an unknown-subcommand failure with a fuzzy
// suggestion drawn from the node's direct children.
func unknownSubcommandError(node *CommandNode, name string) *ParseError {
	err := newParseError(ErrorTypeUnknownSubcommand, node,
		"unknown subcommand '%s' for '%s'", name, node.Path())
	names := make([]string, 0, len(node.children))
	for _, child := range node.children {
		names = append(names, child.name)
	}
	if best := fuzzy.Best(name, names, 2); best != "" {
		err.Suggestion = best
	}
	return err
}

// conversionError carries the raw string, the target name and the expected
// type description for a failed value conversion.
func conversionError(node *CommandNode, spec *ParameterSpec, raw string) *ParseError {
	var subject string
	if spec.Kind == KindPositional {
		subject = "argument '" + spec.Name() + "'"
	} else {
		subject = "option '--" + spec.Name() + "'"
	}
	err := newParseError(ErrorTypeInvalidValue, node,
		"invalid value '%s' for %s: expected %s", raw, subject, spec.TypeName)
	err.Option = spec.Name()
	err.Raw = raw
	return err
}

func missingValueError(node *CommandNode, spec *ParameterSpec) *ParseError {
	var msg string
	if spec.Kind == KindPositional {
		msg = fmt.Sprintf("missing required argument '<%s>'", spec.metaVar())
	} else {
		msg = fmt.Sprintf("missing required value for option '--%s'", spec.Name())
	}
	err := newParseError(ErrorTypeMissingValue, node, "%s", msg)
	err.Option = spec.Name()
	return err
}

// validationError wraps a hook's domain error with the node it belongs to.
// The hook's error is preserved verbatim and reachable through Unwrap.
func validationError(node *CommandNode, cause error) *ParseError {
	err := newParseError(ErrorTypeValidation, node, "%s", cause.Error())
	err.Cause = cause
	return err
}

func joinOptionNames(names []string) string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = "'--" + n + "'"
	}
	return strings.Join(quoted, ", ")
}
