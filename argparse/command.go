package argparse

import (
	"fmt"
	"strings"
	"time"
)

// ValidateFunc is a per-node validation hook. It receives the node's own
// decoded values and may mutate them; a non-nil return aborts the chain.
type ValidateFunc func(values *Values) error

// RunFunc is the action dispatched for a resolved leaf by Runner.
type RunFunc func(cmd *DecodedCommand) error

// CommandNode is one node of an immutable command tree. Trees are built
// once through CommandBuilder, sealed by Build, then shared read-only
// across any number of parse calls.
type CommandNode struct {
	name        string
	description string
	version     string // only meaningful on the root

	specs       []*ParameterSpec // flags and options, declaration order
	positionals []*ParameterSpec // totally ordered

	parent       *CommandNode
	children     []*CommandNode
	childByName  map[string]*CommandNode
	defaultChild *CommandNode

	validate ValidateFunc
	run      RunFunc
}

// Name returns the node's name, unique among its siblings.
func (n *CommandNode) Name() string { return n.name }

// Description returns the one-line description shown in help output.
func (n *CommandNode) Description() string { return n.description }

// Version returns the version string declared on this node.
func (n *CommandNode) Version() string { return n.version }

// Children returns the node's subcommands in declaration order.
func (n *CommandNode) Children() []*CommandNode { return n.children }

// Path returns the space-joined command path from the root to this node.
func (n *CommandNode) Path() string {
	if n.parent == nil {
		return n.name
	}
	return n.parent.Path() + " " + n.name
}

// Root walks up to the tree's root node.
func (n *CommandNode) Root() *CommandNode {
	cur := n
	for cur.parent != nil {
		cur = cur.parent
	}
	return cur
}

// declares reports whether the node itself claims the given option name,
// suppressing the equally named built-in at this node only.
func (n *CommandNode) declares(name string) bool {
	for _, spec := range n.specs {
		if spec.hasName(name) {
			return true
		}
	}
	return false
}

// findSpec returns the node's own flag/option spec with the exact name.
func (n *CommandNode) findSpec(name string) *ParameterSpec {
	for _, spec := range n.specs {
		if spec.hasName(name) {
			return spec
		}
	}
	return nil
}

// CommandBuilder assembles one node of a command tree with a fluent API.
// Build on any builder seals the whole tree from the root down.
type CommandBuilder struct {
	node        *CommandNode
	parent      *CommandBuilder
	children    []*CommandBuilder
	defaultName string
}

// New starts a new command tree (or a standalone command).
func New(name, description string) *CommandBuilder {
	return &CommandBuilder{
		node: &CommandNode{
			name:        name,
			description: description,
			childByName: make(map[string]*CommandNode),
		},
	}
}

func (c *CommandBuilder) addSpec(spec *ParameterSpec) {
	c.node.specs = append(c.node.specs, spec)
}

// Version declares the version string printed by the implicit --version
// option. Only effective on the root of the tree.
func (c *CommandBuilder) Version(version string) *CommandBuilder {
	c.node.version = version
	return c
}

// Validate installs the node's validation hook. Hooks run root to leaf
// after binding completes; the first failure stops the chain.
func (c *CommandBuilder) Validate(fn ValidateFunc) *CommandBuilder {
	c.node.validate = fn
	return c
}

// Run installs the action Runner dispatches when this node is the resolved
// leaf. The engine itself never calls it.
func (c *CommandBuilder) Run(fn RunFunc) *CommandBuilder {
	c.node.run = fn
	return c
}

// Group embeds a shared option group; its specs join the node's own in
// declaration position.
func (c *CommandBuilder) Group(group *OptionGroup) *CommandBuilder {
	c.node.specs = append(c.node.specs, group.specs...)
	return c
}

// Option and flag builders, mirroring GroupBuilder's surface.

// StringOption adds a string option.
func (c *CommandBuilder) StringOption(name, help string) *SpecBuilder[string, *CommandBuilder] {
	return newOption[string](c, name, help, "string", parseStringValue, false)
}

// IntOption adds an integer option. Hex, octal and binary literals are
// accepted.
func (c *CommandBuilder) IntOption(name, help string) *SpecBuilder[int, *CommandBuilder] {
	return newOption[int](c, name, help, "integer", parseIntValue, true)
}

// FloatOption adds a float option.
func (c *CommandBuilder) FloatOption(name, help string) *SpecBuilder[float64, *CommandBuilder] {
	return newOption[float64](c, name, help, "number", parseFloatValue, true)
}

// DurationOption adds a time.Duration option.
func (c *CommandBuilder) DurationOption(name, help string) *SpecBuilder[time.Duration, *CommandBuilder] {
	return newOption[time.Duration](c, name, help, "duration", parseDurationValue, false)
}

// EnumOption adds a string option restricted to the listed values.
func (c *CommandBuilder) EnumOption(name, help string, values ...string) *SpecBuilder[string, *CommandBuilder] {
	return newOption[string](c, name, help, "one of: "+strings.Join(values, ", "), enumParser(values), false)
}

// StringsOption adds a repeatable string option; each occurrence appends.
func (c *CommandBuilder) StringsOption(name, help string) *SpecBuilder[[]string, *CommandBuilder] {
	b := newOption[[]string](c, name, help, "string", parseStringValue, false)
	b.spec.Arity.Kind = ArityZeroOrMore
	return b
}

// BoolFlag adds a boolean flag.
func (c *CommandBuilder) BoolFlag(name, help string) *SpecBuilder[bool, *CommandBuilder] {
	return newFlag(c, name, help)
}

// CountFlag adds a counting flag; each occurrence increments its value.
func (c *CommandBuilder) CountFlag(name, help string) *SpecBuilder[int, *CommandBuilder] {
	b := &SpecBuilder[int, *CommandBuilder]{
		spec: &ParameterSpec{
			Kind:     KindFlag,
			Names:    []string{name},
			Help:     help,
			TypeName: "count",
			Counting: true,
		},
		parent: c,
	}
	c.addSpec(b.spec)
	return b
}

// Positional argument builders.

// ArgBuilder configures a positional argument.
type ArgBuilder[T any] struct {
	spec   *ParameterSpec
	parent *CommandBuilder
}

// Required marks the argument as mandatory.
func (b *ArgBuilder[T]) Required() *ArgBuilder[T] {
	b.spec.Arity.Kind = ArityExactlyOne
	return b
}

// Default sets the value used when the argument is not provided.
func (b *ArgBuilder[T]) Default(value T) *ArgBuilder[T] {
	b.spec.Default = value
	b.spec.HasDefault = true
	if b.spec.Arity.Kind == ArityExactlyOne {
		b.spec.Arity.Kind = ArityZeroOrOne
	}
	return b
}

// Count fixes the argument to consume exactly n tokens.
func (b *ArgBuilder[T]) Count(n int) *ArgBuilder[T] {
	b.spec.Arity = Arity{Kind: ArityExactlyN, N: n}
	return b
}

// MetaVar overrides the usage placeholder.
func (b *ArgBuilder[T]) MetaVar(name string) *ArgBuilder[T] {
	b.spec.MetaVar = name
	return b
}

// Back returns to the owning command builder.
func (b *ArgBuilder[T]) Back() *CommandBuilder {
	return b.parent
}

func newArg[T any](c *CommandBuilder, name, help, typeName string, parse ParseFunc, numeric bool, arity ArityKind) *ArgBuilder[T] {
	spec := &ParameterSpec{
		Kind:     KindPositional,
		Names:    []string{name},
		Arity:    Arity{Kind: arity},
		Parse:    parse,
		Help:     help,
		TypeName: typeName,
		Numeric:  numeric,
	}
	c.node.positionals = append(c.node.positionals, spec)
	return &ArgBuilder[T]{spec: spec, parent: c}
}

// StringArg adds a single string positional.
func (c *CommandBuilder) StringArg(name, help string) *ArgBuilder[string] {
	return newArg[string](c, name, help, "string", parseStringValue, false, ArityZeroOrOne)
}

// IntArg adds a single integer positional.
func (c *CommandBuilder) IntArg(name, help string) *ArgBuilder[int] {
	return newArg[int](c, name, help, "integer", parseIntValue, true, ArityZeroOrOne)
}

// FloatArg adds a single float positional.
func (c *CommandBuilder) FloatArg(name, help string) *ArgBuilder[float64] {
	return newArg[float64](c, name, help, "number", parseFloatValue, true, ArityZeroOrOne)
}

// StringsArg adds a variadic string positional consuming all remaining
// tokens. Use Count to fix the token count instead.
func (c *CommandBuilder) StringsArg(name, help string) *ArgBuilder[[]string] {
	return newArg[[]string](c, name, help, "string", parseStringValue, false, ArityZeroOrMore)
}

// IntsArg adds a variadic integer positional consuming all remaining
// tokens. Use Count to fix the token count instead.
func (c *CommandBuilder) IntsArg(name, help string) *ArgBuilder[[]int] {
	return newArg[[]int](c, name, help, "integer", parseIntValue, true, ArityZeroOrMore)
}

// Tree shape.

// Command adds a subcommand and returns its builder.
func (c *CommandBuilder) Command(name, description string) *CommandBuilder {
	child := &CommandBuilder{
		node: &CommandNode{
			name:        name,
			description: description,
			parent:      c.node,
			childByName: make(map[string]*CommandNode),
		},
		parent: c,
	}
	c.node.children = append(c.node.children, child.node)
	c.children = append(c.children, child)
	return child
}

// Parent returns the enclosing command's builder.
func (c *CommandBuilder) Parent() *CommandBuilder {
	return c.parent
}

// DefaultCommand names the child to descend into when no positional token
// matches a subcommand name.
func (c *CommandBuilder) DefaultCommand(name string) *CommandBuilder {
	c.defaultName = name
	return c
}

// Build seals the tree and verifies its invariants: unique parameter names
// per node (after normalization, groups included), unique child names,
// at most one variadic positional in last position, and a default child
// that is actually listed. It may be called from any builder in the tree
// and always returns the root node.
func (c *CommandBuilder) Build() (*CommandNode, error) {
	root := c
	for root.parent != nil {
		root = root.parent
	}
	if err := root.seal(); err != nil {
		return nil, err
	}
	return root.node, nil
}

// MustBuild is Build panicking on invariant violations; intended for static
// tree declarations where a broken tree is a programming error.
func (c *CommandBuilder) MustBuild() *CommandNode {
	node, err := c.Build()
	if err != nil {
		panic(err)
	}
	return node
}

func (c *CommandBuilder) seal() error {
	n := c.node

	seen := make(map[string]string) // normalized name -> declared name
	for _, spec := range n.specs {
		if len(spec.Names) == 0 || spec.Names[0] == "" {
			return fmt.Errorf("command '%s': parameter with empty name", n.Path())
		}
		for _, name := range spec.Names {
			norm := normalizeName(name)
			if prev, dup := seen[norm]; dup {
				return fmt.Errorf("command '%s': duplicate parameter name '%s' (conflicts with '%s')",
					n.Path(), name, prev)
			}
			seen[norm] = name
		}
	}
	for _, spec := range n.positionals {
		norm := normalizeName(spec.Name())
		if prev, dup := seen[norm]; dup {
			return fmt.Errorf("command '%s': duplicate parameter name '%s' (conflicts with '%s')",
				n.Path(), spec.Name(), prev)
		}
		seen[norm] = spec.Name()
	}

	// A variadic positional swallows everything behind it, so it must be
	// last and alone in being unbounded.
	for i, spec := range n.positionals {
		if spec.Arity.Kind == ArityZeroOrMore && i != len(n.positionals)-1 {
			return fmt.Errorf("command '%s': variadic argument '%s' must be the last positional",
				n.Path(), spec.Name())
		}
	}

	n.childByName = make(map[string]*CommandNode, len(n.children))
	for _, child := range n.children {
		if _, dup := n.childByName[child.name]; dup {
			return fmt.Errorf("command '%s': duplicate subcommand name '%s'", n.Path(), child.name)
		}
		n.childByName[child.name] = child
	}

	if c.defaultName != "" {
		child, ok := n.childByName[c.defaultName]
		if !ok {
			return fmt.Errorf("command '%s': default subcommand '%s' is not a declared child",
				n.Path(), c.defaultName)
		}
		n.defaultChild = child
	}

	for _, child := range c.children {
		if err := child.seal(); err != nil {
			return err
		}
	}
	return nil
}
