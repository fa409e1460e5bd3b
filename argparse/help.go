package argparse

import (
	"fmt"
	"strings"

	"github.com/Chamepp/swift-argument-parser/termio"
)

// helpColumn is the column descriptions start at in option and subcommand
// tables; entries wider than this push their description to the next line.
const helpColumn = 26

// HelpMessage renders the full help text of a node for programmatic use,
// at the default 80-column width. It never executes a node's run action.
func HelpMessage(node *CommandNode) string {
	return helpMessage(node, 80)
}

// UsageMessage renders only the usage synopsis line for a node, as shown
// above diagnostics.
func UsageMessage(node *CommandNode) string {
	return "Usage: " + usageLine(node)
}

func helpMessage(node *CommandNode, width int) string {
	var b strings.Builder

	if node.description != "" {
		b.WriteString("OVERVIEW: ")
		b.WriteString(termio.Wrap(node.description, width, 10))
		b.WriteString("\n\n")
	}

	b.WriteString("USAGE: ")
	b.WriteString(termio.Wrap(usageLine(node), width, 7))
	b.WriteString("\n")

	if rows := argumentRows(node); len(rows) > 0 {
		b.WriteString("\nARGUMENTS:\n")
		writeRows(&b, rows, width)
	}

	b.WriteString("\nOPTIONS:\n")
	writeRows(&b, optionRows(node), width)

	if len(node.children) > 0 {
		b.WriteString("\nSUBCOMMANDS:\n")
		writeRows(&b, subcommandRows(node), width)
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("  See '%s help <subcommand>' for more information.\n", node.Path()))
	}

	return b.String()
}

// usageLine builds the synopsis: command path, option placeholders in
// declaration order, positional placeholders, then the subcommand slot.
// Optional parameters are bracketed, required ones are bare.
func usageLine(node *CommandNode) string {
	parts := []string{node.Path()}

	for _, spec := range node.specs {
		if spec.Hidden {
			continue
		}
		parts = append(parts, optionPlaceholder(spec))
	}
	for _, spec := range node.positionals {
		parts = append(parts, positionalPlaceholder(spec))
	}
	if len(node.children) > 0 {
		parts = append(parts, "[<subcommand>]")
	}
	return strings.Join(parts, " ")
}

func optionPlaceholder(spec *ParameterSpec) string {
	name := "--" + spec.Name()
	if spec.Kind == KindFlag {
		return "[" + name + "]"
	}
	placeholder := name + " <" + spec.metaVar() + ">"
	if spec.Arity.required() {
		return placeholder
	}
	return "[" + placeholder + "]"
}

func positionalPlaceholder(spec *ParameterSpec) string {
	name := "<" + spec.metaVar() + ">"
	switch spec.Arity.Kind {
	case ArityExactlyOne:
		return name
	case ArityZeroOrMore:
		return "[" + spec.metaVar() + " ...]"
	case ArityExactlyN:
		return "<" + spec.metaVar() + " ...>"
	case ArityZeroOrOne:
	}
	return "[" + name + "]"
}

// row is one left-column/description pair of a help table.
type row struct {
	left string
	help string
}

func writeRows(b *strings.Builder, rows []row, width int) {
	for _, r := range rows {
		b.WriteString("  ")
		b.WriteString(r.left)
		if r.help == "" {
			b.WriteString("\n")
			continue
		}
		if len(r.left)+2 >= helpColumn {
			b.WriteString("\n")
			b.WriteString(strings.Repeat(" ", helpColumn))
		} else {
			b.WriteString(strings.Repeat(" ", helpColumn-len(r.left)-2))
		}
		b.WriteString(termio.Wrap(r.help, width, helpColumn))
		b.WriteString("\n")
	}
}

func argumentRows(node *CommandNode) []row {
	rows := make([]row, 0, len(node.positionals))
	for _, spec := range node.positionals {
		help := spec.Help
		if spec.HasDefault {
			help = appendDefault(help, spec.Default)
		}
		rows = append(rows, row{left: "<" + spec.metaVar() + ">", help: help})
	}
	return rows
}

// optionRows lists every declared option and flag plus the implicit
// built-ins active at this node. A user declaration of a built-in's name
// suppresses the built-in row for this node only.
func optionRows(node *CommandNode) []row {
	rows := make([]row, 0, len(node.specs)+2)
	for _, spec := range node.specs {
		if spec.Hidden {
			continue
		}
		help := spec.Help
		if spec.HasDefault {
			help = appendDefault(help, spec.Default)
		}
		rows = append(rows, row{left: optionLabel(spec), help: help})
	}
	if node.Root().version != "" && !node.declares("version") {
		rows = append(rows, row{left: "--version", help: "Show the version."})
	}
	switch {
	case !node.declares("help") && !node.declares("h"):
		rows = append(rows, row{left: "-h, --help", help: "Show help information."})
	case !node.declares("help"):
		rows = append(rows, row{left: "--help", help: "Show help information."})
	case !node.declares("h"):
		rows = append(rows, row{left: "-h", help: "Show help information."})
	}
	return rows
}

func optionLabel(spec *ParameterSpec) string {
	var shorts, longs []string
	for _, n := range spec.Names {
		if len(n) == 1 {
			shorts = append(shorts, "-"+n)
		} else {
			longs = append(longs, "--"+n)
		}
	}
	label := strings.Join(append(shorts, longs...), ", ")
	if spec.Kind == KindOption {
		label += " <" + spec.metaVar() + ">"
	}
	return label
}

func subcommandRows(node *CommandNode) []row {
	rows := make([]row, 0, len(node.children))
	for _, child := range node.children {
		left := child.name
		if child == node.defaultChild {
			left += " (default)"
		}
		rows = append(rows, row{left: left, help: child.description})
	}
	return rows
}

func appendDefault(help string, def any) string {
	note := fmt.Sprintf("(default: %v)", def)
	if help == "" {
		return note
	}
	return help + " " + note
}
