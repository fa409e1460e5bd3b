package termio

import "strings"

// Wrap breaks text into lines of at most width-indent content columns,
// prefixing every line after the first with indent spaces. The first line is
// expected to be printed after an indent-column prefix, so all lines end at
// the same terminal column. Words longer than the available space are
// emitted unbroken on their own line.
func Wrap(text string, width, indent int) string {
	if width <= indent {
		return text
	}
	words := strings.Fields(text)
	if len(words) == 0 {
		return ""
	}

	var b strings.Builder
	pad := strings.Repeat(" ", indent)
	lineLen := 0

	for i, word := range words {
		if i == 0 {
			b.WriteString(word)
			lineLen = len(word)
			continue
		}
		if lineLen+1+len(word) > width-indent {
			b.WriteByte('\n')
			b.WriteString(pad)
			b.WriteString(word)
			lineLen = len(word)
			continue
		}
		b.WriteByte(' ')
		b.WriteString(word)
		lineLen += 1 + len(word)
	}
	return b.String()
}
