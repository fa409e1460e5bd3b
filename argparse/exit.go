package argparse

import "errors"

// ExitCodeDefaults holds the fallback process exit codes.
type ExitCodeDefaults struct {
	Success    int // default: 0
	General    int // default: 1
	Misusage   int // default: 2
	Validation int // default: 3
}

func defaultExitDefaults() ExitCodeDefaults {
	return ExitCodeDefaults{Success: 0, General: 1, Misusage: 2, Validation: 3}
}

// ExitCodes maps parse failures to process exit codes. Help and version
// requests always resolve to Success; every binding and resolution failure
// maps through its ErrorType.
type ExitCodes struct {
	byType   map[ErrorType]int
	defaults ExitCodeDefaults
}

func newExitCodes() *ExitCodes {
	e := &ExitCodes{
		byType:   make(map[ErrorType]int),
		defaults: defaultExitDefaults(),
	}
	e.byType[ErrorTypeUnknownOption] = e.defaults.Misusage
	e.byType[ErrorTypeAmbiguousOption] = e.defaults.Misusage
	e.byType[ErrorTypeMissingValue] = e.defaults.Misusage
	e.byType[ErrorTypeInvalidValue] = e.defaults.Misusage
	e.byType[ErrorTypeUnknownSubcommand] = e.defaults.Misusage
	e.byType[ErrorTypeUnexpectedArgument] = e.defaults.Misusage
	e.byType[ErrorTypeValidation] = e.defaults.Validation
	return e
}

// Define overrides the exit code for one failure category.
func (e *ExitCodes) Define(typ ErrorType, code int) *ExitCodes {
	e.byType[typ] = code
	return e
}

// Default replaces the fallback codes.
func (e *ExitCodes) Default(d ExitCodeDefaults) *ExitCodes {
	e.defaults = d
	return e
}

// Resolve converts an error returned by Parse (or a leaf action) to an
// exit code.
func (e *ExitCodes) Resolve(err error) int {
	if err == nil {
		return e.defaults.Success
	}
	if errors.Is(err, ErrHelp) || errors.Is(err, ErrVersion) {
		return e.defaults.Success
	}
	var parseErr *ParseError
	if errors.As(err, &parseErr) {
		if code, ok := e.byType[parseErr.Type]; ok {
			return code
		}
	}
	return e.defaults.General
}
