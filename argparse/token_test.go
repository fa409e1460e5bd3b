package argparse

import "testing"

func TestTokenizer(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []token
	}{
		{
			"long option",
			[]string{"--verbose"},
			[]token{{kind: tokenLong, name: "verbose", raw: "--verbose"}},
		},
		{
			"long option with inline value",
			[]string{"--output=a=b"},
			[]token{{kind: tokenLong, name: "output", value: "a=b", hasValue: true, raw: "--output=a=b"}},
		},
		{
			"long option with empty inline value",
			[]string{"--output="},
			[]token{{kind: tokenLong, name: "output", value: "", hasValue: true, raw: "--output="}},
		},
		{
			"short cluster",
			[]string{"-abc"},
			[]token{{kind: tokenShort, name: "abc", raw: "-abc"}},
		},
		{
			"lone dash is bare",
			[]string{"-"},
			[]token{{kind: tokenBare, raw: "-"}},
		},
		{
			"terminator forces everything after",
			[]string{"--", "--verbose", "-x"},
			[]token{
				{kind: tokenTerminator, raw: "--"},
				{kind: tokenBare, raw: "--verbose", forced: true},
				{kind: tokenBare, raw: "-x", forced: true},
			},
		},
		{
			"bare words",
			[]string{"add", "5"},
			[]token{
				{kind: tokenBare, raw: "add"},
				{kind: tokenBare, raw: "5"},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tz := &tokenizer{args: tt.args}
			for i, want := range tt.want {
				got, ok := tz.next()
				if !ok {
					t.Fatalf("Token %d: unexpected end of input", i)
				}
				if got != want {
					t.Errorf("Token %d: expected %+v, got %+v", i, want, got)
				}
			}
			if extra, ok := tz.next(); ok {
				t.Errorf("Unexpected trailing token %+v", extra)
			}
		})
	}
}

func TestTokenizerNextValue(t *testing.T) {
	tz := &tokenizer{args: []string{"--name", "--not-an-option", "rest"}}
	if tok, _ := tz.next(); tok.name != "name" {
		t.Fatalf("Expected --name first, got %+v", tok)
	}
	val, ok := tz.nextValue()
	if !ok || val != "--not-an-option" {
		t.Errorf("Expected raw value consumption, got %q (ok=%v)", val, ok)
	}
	val, ok = tz.nextValue()
	if !ok || val != "rest" {
		t.Errorf("Expected 'rest', got %q (ok=%v)", val, ok)
	}
	if _, ok := tz.nextValue(); ok {
		t.Error("Expected exhaustion")
	}
}
