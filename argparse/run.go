package argparse

import (
	"errors"
	"fmt"
	"os"

	"github.com/Chamepp/swift-argument-parser/termio"
)

// Runner wires the engine to a process: it parses, emits help, version and
// diagnostics on the right channels, and dispatches the resolved leaf's
// action. The engine itself never writes output or exits.
type Runner struct {
	root  *CommandNode
	io    *termio.IO
	exits *ExitCodes
}

// NewRunner creates a runner bound to process stdio and default exit codes.
func NewRunner(root *CommandNode) *Runner {
	return &Runner{
		root:  root,
		io:    termio.New(),
		exits: newExitCodes(),
	}
}

// WithIO replaces the output channels; used for embedding and tests.
func (r *Runner) WithIO(io *termio.IO) *Runner {
	r.io = io
	return r
}

// ExitCodes exposes the exit-code mapping for configuration.
func (r *Runner) ExitCodes() *ExitCodes {
	return r.exits
}

// Execute parses argv and returns the process exit code.
//
// Help and version requests print to standard output and resolve to the
// success code. Parse and validation failures print the failing node's
// usage synopsis and a one-line error to the diagnostic channel. On
// successful resolution the leaf's Run action is dispatched; a leaf without
// an action prints its own help, the conventional behavior for a bare
// command group.
func (r *Runner) Execute(argv []string) int {
	cmd, err := Parse(r.root, argv)
	if err != nil {
		return r.report(err)
	}

	leaf := cmd.Command()
	if leaf.run == nil {
		fmt.Fprint(r.io.Out(), helpMessage(leaf, r.io.Width()))
		return r.exits.defaults.Success
	}
	if runErr := leaf.run(cmd); runErr != nil {
		fmt.Fprintf(r.io.Err(), "%s %s\n", termio.ErrorLabel(), runErr.Error())
		return r.exits.Resolve(runErr)
	}
	return r.exits.defaults.Success
}

func (r *Runner) report(err error) int {
	var help *HelpRequest
	if errors.As(err, &help) {
		fmt.Fprint(r.io.Out(), helpMessage(help.Node, r.io.Width()))
		return r.exits.defaults.Success
	}
	var version *VersionRequest
	if errors.As(err, &version) {
		fmt.Fprintln(r.io.Out(), version.Version)
		return r.exits.defaults.Success
	}

	var parseErr *ParseError
	if errors.As(err, &parseErr) {
		node := parseErr.Node
		if node == nil {
			node = r.root
		}
		fmt.Fprintln(r.io.Err(), UsageMessage(node))
		fmt.Fprintf(r.io.Err(), "%s %s\n", termio.ErrorLabel(), parseErr.Message)
		if parseErr.Suggestion != "" {
			fmt.Fprintln(r.io.Err(), termio.Hint(fmt.Sprintf("  Did you mean '%s'?", parseErr.Suggestion)))
		}
		return r.exits.Resolve(parseErr)
	}

	fmt.Fprintf(r.io.Err(), "%s %s\n", termio.ErrorLabel(), err.Error())
	return r.exits.Resolve(err)
}

// FullMessage renders the diagnostic a failure would print, for
// programmatic inspection without touching process state. For help and
// version requests it returns the same text Execute would emit.
func FullMessage(err error) string {
	var help *HelpRequest
	if errors.As(err, &help) {
		return HelpMessage(help.Node)
	}
	var version *VersionRequest
	if errors.As(err, &version) {
		return version.Version + "\n"
	}
	var parseErr *ParseError
	if errors.As(err, &parseErr) && parseErr.Node != nil {
		return UsageMessage(parseErr.Node) + "\nError: " + parseErr.Message + "\n"
	}
	return "Error: " + err.Error() + "\n"
}

// Main parses os.Args against the tree and terminates the process with the
// mapped exit code. Equivalent to os.Exit(NewRunner(root).Execute(...)).
func Main(root *CommandNode) {
	os.Exit(NewRunner(root).Execute(os.Args[1:]))
}
