// Package termio centralizes the terminal collaborators of the parsing
// engine: the output channels diagnostics and help are written to, TTY
// detection, and column width for help wrapping.
package termio

import (
	stdio "io"
	"os"
	"strconv"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// IO binds an input reader and the standard/diagnostic output writers.
// The zero configuration points at process stdio.
type IO struct {
	in  stdio.Reader
	out stdio.Writer
	err stdio.Writer
}

// New returns an IO bound to process stdio.
func New() *IO {
	return &IO{in: os.Stdin, out: os.Stdout, err: os.Stderr}
}

// WithIn sets the input reader and returns the IO for chaining.
func (m *IO) WithIn(r stdio.Reader) *IO { m.in = r; return m }

// WithOut sets the standard output writer and returns the IO for chaining.
func (m *IO) WithOut(w stdio.Writer) *IO { m.out = w; return m }

// WithErr sets the diagnostic writer and returns the IO for chaining.
func (m *IO) WithErr(w stdio.Writer) *IO { m.err = w; return m }

// In returns the configured input reader.
func (m *IO) In() stdio.Reader { return m.in }

// Out returns the configured standard output writer.
func (m *IO) Out() stdio.Writer { return m.out }

// Err returns the configured diagnostic writer.
func (m *IO) Err() stdio.Writer { return m.err }

// IsTTY reports whether the standard output writer is a terminal.
func (m *IO) IsTTY() bool {
	f, ok := m.out.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Width returns the terminal column count for the output writer, falling
// back to the COLUMNS environment variable and finally to 80.
func (m *IO) Width() int {
	if f, ok := m.out.(*os.File); ok {
		if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
			return w
		}
	}
	if cols := os.Getenv("COLUMNS"); cols != "" {
		if w, err := strconv.Atoi(cols); err == nil && w > 0 {
			return w
		}
	}
	return 80
}

// styling used by the runner for diagnostics; the color package already
// honors NO_COLOR and disables itself on non-terminal writers.
var (
	errorStyle = color.New(color.FgRed, color.Bold)
	hintStyle  = color.New(color.Faint)
)

// ErrorLabel renders the "Error:" prefix of a diagnostic.
func ErrorLabel() string { return errorStyle.Sprint("Error:") }

// Hint renders secondary diagnostic text such as suggestions.
func Hint(s string) string { return hintStyle.Sprint(s) }
