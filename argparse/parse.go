// Package argparse resolves, binds and validates command-line arguments
// against a declared tree of commands. A tree is built once with New and
// Build, then Parse may be called any number of times; every call produces
// a fresh, caller-owned DecodedCommand or a precise diagnostic.
package argparse

// DecodedCommand is the result of a successful parse: the resolved leaf
// with its value map merged over all ancestor bindings. The engine keeps no
// reference to it after Parse returns.
type DecodedCommand struct {
	leaf   *CommandNode
	nodes  []*CommandNode
	values *Values
}

// Command returns the resolved leaf node. Callers discriminate which
// command in the tree was addressed by comparing node identity.
func (d *DecodedCommand) Command() *CommandNode { return d.leaf }

// Path returns the resolved nodes root first.
func (d *DecodedCommand) Path() []*CommandNode { return d.nodes }

// Values returns the merged decoded values.
func (d *DecodedCommand) Values() *Values { return d.values }

// Parse resolves argv against the tree rooted at root: it tokenizes the
// input, walks the tree matching subcommand names, binds and converts every
// applicable parameter, and runs the validation chain root to leaf.
//
// On failure it returns a *ParseError carrying the failure category and the
// most specific node that had been resolved. The built-in meta options
// short-circuit with *HelpRequest or *VersionRequest, matched by
// errors.Is(err, ErrHelp) and errors.Is(err, ErrVersion); both are clean
// exits, not failures.
func Parse(root *CommandNode, argv []string) (*DecodedCommand, error) {
	path, err := resolve(root, argv)
	if err != nil {
		return nil, err
	}
	if err := path.runValidation(); err != nil {
		return nil, err
	}
	return path.decoded(), nil
}

// ParseAsRoot is Parse invoked on the root of a tree, returning whichever
// node in the tree was actually resolved. It exists for symmetry with
// single-command parsing, where the root itself is the only candidate.
func ParseAsRoot(root *CommandNode, argv []string) (*DecodedCommand, error) {
	return Parse(root, argv)
}
