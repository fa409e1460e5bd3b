package benchmark_test

import (
	"testing"

	"github.com/alecthomas/kong"
	"github.com/spf13/cobra"
	"github.com/urfave/cli/v2"

	"github.com/Chamepp/swift-argument-parser/argparse"
)

// Benchmark a single subcommand with an int option and a bool flag
// Tests resolution and binding cost for the most common CLI shape
// The argparse tree is built once; parse cost is what matters for repeated use

func BenchmarkSimpleCLI_ArgParse(b *testing.B) {
	builder := argparse.New("bench", "benchmark app")
	builder.Command("convert", "Convert inputs").
		IntOption("jobs", "Parallel workers").Default(4).Back().
		BoolFlag("quiet", "Suppress progress output").Back().
		Run(func(*argparse.DecodedCommand) error { return nil })
	root := builder.MustBuild()

	args := []string{"convert", "--jobs", "8", "--quiet"}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = argparse.Parse(root, args)
	}
}

func BenchmarkSimpleCLI_Cobra(b *testing.B) {
	args := []string{"convert", "--jobs", "8", "--quiet"}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		rootCmd := &cobra.Command{Use: "bench"}
		convertCmd := &cobra.Command{
			Use: "convert",
			Run: func(_ *cobra.Command, _ []string) {},
		}
		convertCmd.Flags().IntP("jobs", "j", 4, "Parallel workers")
		convertCmd.Flags().BoolP("quiet", "q", false, "Suppress progress output")
		rootCmd.AddCommand(convertCmd)
		rootCmd.SetArgs(args)
		_ = rootCmd.Execute()
	}
}

func BenchmarkSimpleCLI_Urfave(b *testing.B) {
	args := []string{"bench", "convert", "--jobs", "8", "--quiet"}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		app := &cli.App{
			Name: "bench",
			Commands: []*cli.Command{
				{
					Name: "convert",
					Flags: []cli.Flag{
						&cli.IntFlag{Name: "jobs", Value: 4, Usage: "Parallel workers"},
						&cli.BoolFlag{Name: "quiet", Usage: "Suppress progress output"},
					},
					Action: func(_ *cli.Context) error { return nil },
				},
			},
		}
		_ = app.Run(args)
	}
}

func BenchmarkSimpleCLI_Kong(b *testing.B) {
	args := []string{"convert", "--jobs=8", "--quiet"}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		var grammar struct {
			Convert struct {
				Jobs  int  `default:"4" help:"Parallel workers"`
				Quiet bool `help:"Suppress progress output"`
			} `cmd:"" help:"Convert inputs"`
		}
		parser, err := kong.New(&grammar, kong.Exit(func(int) {}))
		if err != nil {
			b.Fatal(err)
		}
		_, _ = parser.Parse(args)
	}
}

// Benchmark subcommand routing with an option bound at each level
// Tests descent plus ancestor binding, the engine's frame-stack hot path

func BenchmarkSubcommands_ArgParse(b *testing.B) {
	builder := argparse.New("bench", "benchmark app")
	builder.BoolFlag("trace", "Emit trace output")
	builder.Command("fetch", "Fetch objects").
		IntOption("depth", "History depth").Default(1).Back().
		StringOption("remote", "Remote name").Default("origin").Back().
		Run(func(*argparse.DecodedCommand) error { return nil })
	root := builder.MustBuild()

	args := []string{"--trace", "fetch", "--depth", "3", "--remote", "upstream"}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = argparse.Parse(root, args)
	}
}

func BenchmarkSubcommands_Cobra(b *testing.B) {
	args := []string{"--trace", "fetch", "--depth", "3", "--remote", "upstream"}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		rootCmd := &cobra.Command{Use: "bench"}
		rootCmd.PersistentFlags().Bool("trace", false, "Emit trace output")

		fetchCmd := &cobra.Command{
			Use: "fetch",
			Run: func(_ *cobra.Command, _ []string) {},
		}
		fetchCmd.Flags().IntP("depth", "d", 1, "History depth")
		fetchCmd.Flags().String("remote", "origin", "Remote name")
		rootCmd.AddCommand(fetchCmd)

		rootCmd.SetArgs(args)
		_ = rootCmd.Execute()
	}
}

func BenchmarkSubcommands_Urfave(b *testing.B) {
	args := []string{"bench", "--trace", "fetch", "--depth", "3", "--remote", "upstream"}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		app := &cli.App{
			Name: "bench",
			Flags: []cli.Flag{
				&cli.BoolFlag{Name: "trace", Usage: "Emit trace output"},
			},
			Commands: []*cli.Command{
				{
					Name: "fetch",
					Flags: []cli.Flag{
						&cli.IntFlag{Name: "depth", Value: 1, Usage: "History depth"},
						&cli.StringFlag{Name: "remote", Value: "origin", Usage: "Remote name"},
					},
					Action: func(_ *cli.Context) error { return nil },
				},
			},
		}
		_ = app.Run(args)
	}
}

func BenchmarkSubcommands_Kong(b *testing.B) {
	args := []string{"--trace", "fetch", "--depth=3", "--remote=upstream"}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		var grammar struct {
			Trace bool `help:"Emit trace output"`
			Fetch struct {
				Depth  int    `default:"1" help:"History depth"`
				Remote string `default:"origin" help:"Remote name"`
			} `cmd:"" help:"Fetch objects"`
		}
		parser, err := kong.New(&grammar, kong.Exit(func(int) {}))
		if err != nil {
			b.Fatal(err)
		}
		_, _ = parser.Parse(args)
	}
}

// Benchmark many repeated options and variadic positionals
// Isolates per-token binding cost with no subcommand routing

func BenchmarkManyValues_ArgParse(b *testing.B) {
	builder := argparse.New("bench", "")
	builder.StringsOption("include", "Include path").Short('I')
	builder.IntsArg("values", "Operands")
	root := builder.MustBuild()

	args := []string{"-I", "a", "-I", "b", "-I", "c", "1", "2", "3", "4", "5"}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = argparse.Parse(root, args)
	}
}

func BenchmarkManyValues_Urfave(b *testing.B) {
	args := []string{"bench", "-I", "a", "-I", "b", "-I", "c", "1", "2", "3", "4", "5"}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		app := &cli.App{
			Name: "bench",
			Flags: []cli.Flag{
				&cli.StringSliceFlag{Name: "include", Aliases: []string{"I"}, Usage: "Include path"},
			},
			Action: func(_ *cli.Context) error { return nil },
		}
		_ = app.Run(args)
	}
}
