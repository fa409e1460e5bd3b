package termio

import (
	"strings"
	"testing"
)

func TestWrap(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		width  int
		indent int
		want   string
	}{
		{
			"fits on one line",
			"short text",
			80, 0,
			"short text",
		},
		{
			"breaks at width",
			"one two three four",
			10, 0,
			"one two\nthree four",
		},
		{
			"continuation lines indented",
			"alpha beta gamma",
			12, 4,
			"alpha\n    beta\n    gamma",
		},
		{
			"long word stands alone",
			"a verylongunbreakableword b",
			10, 0,
			"a\nverylongunbreakableword\nb",
		},
		{
			"empty input",
			"",
			80, 4,
			"",
		},
		{
			"whitespace collapsed",
			"a   b\t\tc",
			80, 0,
			"a b c",
		},
		{
			"width at or below indent returns text unchanged",
			"anything at all",
			4, 4,
			"anything at all",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Wrap(tt.text, tt.width, tt.indent); got != tt.want {
				t.Errorf("Wrap(%q, %d, %d) = %q, want %q",
					tt.text, tt.width, tt.indent, got, tt.want)
			}
		})
	}
}

func TestWrapLinesRespectContentWidth(t *testing.T) {
	text := strings.Repeat("word ", 40)
	const width, indent = 60, 10
	for i, line := range strings.Split(Wrap(text, width, indent), "\n") {
		if len(line) > width-indent+indent {
			t.Errorf("Line %d too wide (%d): %q", i, len(line), line)
		}
		if i > 0 && !strings.HasPrefix(line, strings.Repeat(" ", indent)) {
			t.Errorf("Line %d missing indent: %q", i, line)
		}
	}
}
