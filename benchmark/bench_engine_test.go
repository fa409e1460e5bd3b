package benchmark_test

import (
	"testing"

	"github.com/Chamepp/swift-argument-parser/argparse"
	"github.com/Chamepp/swift-argument-parser/internal/fuzzy"
	"github.com/Chamepp/swift-argument-parser/termio"
)

// deepTree builds a three-level tree with options at every node, the worst
// realistic case for ancestor option lookup.
func deepTree() *argparse.CommandNode {
	b := argparse.New("root", "benchmark root")
	b.StringOption("config", "Config path")
	b.BoolFlag("verbose", "Verbose output").Short('v')
	mid := b.Command("mid", "Middle level")
	mid.IntOption("retries", "Retry count").Default(3)
	leaf := mid.Command("leaf", "Leaf level")
	leaf.StringOption("output", "Output path")
	leaf.StringsArg("files", "Input files")
	return b.MustBuild()
}

func BenchmarkDeepDescent(b *testing.B) {
	root := deepTree()
	args := []string{"-v", "mid", "--retries", "5", "leaf", "--output", "out.txt", "a", "b", "c"}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = argparse.Parse(root, args)
	}
}

func BenchmarkAbbreviationLookup(b *testing.B) {
	builder := argparse.New("bench", "")
	builder.StringOption("verbose-output", "")
	builder.StringOption("verify-checksums", "")
	builder.StringOption("output-directory", "")
	builder.StringOption("output-format", "")
	root := builder.MustBuild()

	args := []string{"--verb", "x"}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = argparse.Parse(root, args)
	}
}

func BenchmarkUnknownOptionSuggestion(b *testing.B) {
	builder := argparse.New("bench", "")
	builder.StringOption("output", "")
	builder.StringOption("format", "")
	builder.StringOption("include", "")
	root := builder.MustBuild()

	args := []string{"--ouptut", "x"}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = argparse.Parse(root, args)
	}
}

func BenchmarkHelpRender(b *testing.B) {
	root := deepTree()
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = argparse.HelpMessage(root)
	}
}

func BenchmarkFuzzyBest(b *testing.B) {
	candidates := []string{
		"output", "format", "include", "exclude", "verbose",
		"version", "recursive", "follow-symlinks", "max-depth", "quiet",
	}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = fuzzy.Best("exculde", candidates, 2)
	}
}

func BenchmarkWrap(b *testing.B) {
	const text = "Performs the requested operation on every value, printing " +
		"intermediate results when verbose output is enabled and writing the " +
		"final result to the configured output path."
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = termio.Wrap(text, 80, 26)
	}
}
