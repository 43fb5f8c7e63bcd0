package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"fonsters/internal/app"
	"fonsters/internal/census"
	"fonsters/internal/export"
	"fonsters/internal/term"
	"fonsters/pkg/fonster"
)

// ErrUnknownCommand is returned for subcommands fonsterctl does not know.
var ErrUnknownCommand = errors.New("unknown command")

const usage = `usage: fonsterctl <command> [flags] [seed...]

commands:
  show    print the trait table and a half-block preview
  svg     write the creature as SVG
  term    interactive terminal preview
  census  generate many seeds and tally their traits
`

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	switch {
	case err == nil:
	case errors.Is(err, ErrUnknownCommand), errors.Is(err, flag.ErrHelp):
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	default:
		log.Fatal(err)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		return ErrUnknownCommand
	}
	cmd, rest := args[0], args[1:]
	switch cmd {
	case "show":
		return runShow(rest, stdout, stderr)
	case "svg":
		return runSVG(rest, stdout, stderr)
	case "term":
		return runTerm(rest, stderr)
	case "census":
		return runCensus(ctx, rest, stdout, stderr)
	case "help", "-h", "--help":
		return flag.ErrHelp
	}
	return fmt.Errorf("%w %q", ErrUnknownCommand, cmd)
}

// newFlags binds the shared config to a subcommand flag set. A -config file
// is applied after parsing.
func newFlags(name string, stderr io.Writer) (*flag.FlagSet, *app.Config, *string) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	cfg := app.NewConfig()
	cfg.Bind(fs)
	path := fs.String("config", "", "optional YAML settings file")
	return fs, cfg, path
}

func parse(fs *flag.FlagSet, cfg *app.Config, path *string, args []string) ([]string, error) {
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if *path != "" {
		if err := cfg.ApplyFile(fs, *path); err != nil {
			return nil, err
		}
	}
	seeds := fs.Args()
	if len(seeds) == 0 {
		seeds = []string{cfg.Seed}
	}
	return seeds, nil
}

func runShow(args []string, stdout, stderr io.Writer) error {
	fs, cfg, path := newFlags("show", stderr)
	seeds, err := parse(fs, cfg, path, args)
	if err != nil {
		return err
	}
	for i, seed := range seeds {
		if i > 0 {
			fmt.Fprintln(stdout)
		}
		c := fonster.New(seed)
		fmt.Fprintln(stdout, term.Blocks(&c.Grid, c.Config.Palette))
		fmt.Fprintln(stdout, term.TraitTable(c.Config.Parameters()))
	}
	return nil
}

func runSVG(args []string, stdout, stderr io.Writer) error {
	fs, cfg, path := newFlags("svg", stderr)
	out := fs.String("o", "", "output file, or a directory when several seeds are given (default stdout)")
	seeds, err := parse(fs, cfg, path, args)
	if err != nil {
		return err
	}
	if *out == "" {
		for _, seed := range seeds {
			if err := writeSVG(stdout, seed, cfg.CellSize); err != nil {
				return err
			}
		}
		return nil
	}
	if len(seeds) == 1 {
		return writeSVGFile(*out, seeds[0], cfg.CellSize)
	}
	if err := os.MkdirAll(*out, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	for _, seed := range seeds {
		name := strings.Map(safeRune, seed)
		if name == "" {
			name = "blank"
		}
		if err := writeSVGFile(filepath.Join(*out, name+".svg"), seed, cfg.CellSize); err != nil {
			return err
		}
	}
	return nil
}

func writeSVG(w io.Writer, seed string, cell int) error {
	c := fonster.New(seed)
	if err := export.SVG(w, &c.Grid, c.Config.Palette, cell, c.Seed.Text()); err != nil {
		return fmt.Errorf("write svg for %q: %w", seed, err)
	}
	return nil
}

func writeSVGFile(name, seed string, cell int) error {
	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("create %s: %w", name, err)
	}
	if err := writeSVG(f, seed, cell); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func safeRune(r rune) rune {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
		return r
	case r == ' ':
		return '_'
	}
	return -1
}

func runTerm(args []string, stderr io.Writer) error {
	fs, cfg, path := newFlags("term", stderr)
	seeds, err := parse(fs, cfg, path, args)
	if err != nil {
		return err
	}
	screen, err := term.OpenScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	defer screen.Fini()
	term.NewPreview(screen, strings.Join(seeds, " ")).Run()
	return nil
}

func runCensus(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("census", flag.ContinueOnError)
	fs.SetOutput(stderr)
	n := fs.Int("n", 10000, "number of seeds to generate")
	prefix := fs.String("prefix", "seed-", "seed prefix; seeds are prefix0 .. prefix(n-1)")
	workers := fs.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	quiet := fs.Bool("q", false, "suppress progress logging")
	if err := fs.Parse(args); err != nil {
		return err
	}

	logger := log.New(stderr, "census: ", log.LstdFlags)
	opts := census.Options{Prefix: *prefix, Count: *n, Workers: *workers}
	if !*quiet {
		opts.Every = max(*n/10, 1)
		opts.Progress = func(done int) { logger.Printf("%d/%d seeds", done, *n) }
		logger.Printf("generating %d seeds (%d workers)", *n, *workers)
	}

	start := time.Now()
	report, err := census.Run(ctx, opts)
	if err != nil {
		return fmt.Errorf("census: %w", err)
	}
	if !*quiet {
		logger.Printf("done in %s", time.Since(start).Round(time.Millisecond))
	}
	fmt.Fprintln(stdout, term.Table([]string{"Metric", "Count", "Rate"}, report.Rows()))
	return nil
}
