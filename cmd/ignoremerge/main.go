package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dusk-indust/ignoremerge/internal/config"
	"github.com/dusk-indust/ignoremerge/internal/ignorefile"
	"github.com/dusk-indust/ignoremerge/internal/loader"
	"github.com/dusk-indust/ignoremerge/internal/mcptools"
)

// CLI flags parsed from command line.
type cliFlags struct {
	Output        string
	ConfigPath    string
	Sort          bool
	MergeSections bool
	MergeBlocks   bool
	Verbose       bool
	ServeMCP      bool
	ServeHTTP     string
	Version       bool
}

// version is set by goreleaser at build time.
var version = "dev"

const usage = `usage: ignoremerge [flags] <file>...
       ignoremerge [flags] tokens <file>
       ignoremerge [flags] tree [-format json|mermaid] <file>...
       ignoremerge --serve-mcp
       ignoremerge --serve-http <addr>

A file named "-" is read from stdin. With no files, the sources listed in
.ignoremerge.yml are merged.

flags:
`

// stdio bundles the process streams so tests can substitute buffers.
type stdio struct {
	in  io.Reader
	out io.Writer
	err io.Writer
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], stdio{in: os.Stdin, out: os.Stdout, err: os.Stderr}); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, std stdio) error {
	var flags cliFlags

	fs := flag.NewFlagSet("ignoremerge", flag.ContinueOnError)
	fs.SetOutput(std.err)
	fs.Usage = func() {
		fmt.Fprint(fs.Output(), usage)
		fs.PrintDefaults()
	}
	fs.StringVar(&flags.Output, "output", "", "write the merged file here instead of stdout")
	fs.StringVar(&flags.Output, "o", "", "shorthand for -output")
	fs.StringVar(&flags.ConfigPath, "config", "", "path to a config file (default: .ignoremerge.yml if present)")
	fs.BoolVar(&flags.Sort, "sort", true, "sort sections and blocks by title")
	fs.BoolVar(&flags.MergeSections, "merge-sections", true, "merge sections with equal titles")
	fs.BoolVar(&flags.MergeBlocks, "merge-blocks", true, "deduplicate lines of blocks with equal titles")
	fs.BoolVar(&flags.Verbose, "verbose", false, "enable verbose output")
	fs.BoolVar(&flags.ServeMCP, "serve-mcp", false, "run as MCP server on stdio")
	fs.StringVar(&flags.ServeHTTP, "serve-http", "", "run the HTTP API on this address")
	fs.BoolVar(&flags.Version, "version", false, "print version and exit")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if flags.Version {
		fmt.Fprintln(std.out, version)
		return nil
	}

	cfg, err := loadConfig(flags.ConfigPath)
	if err != nil {
		return err
	}

	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	opts := cfg.Options()
	if set["sort"] {
		opts.Sort = flags.Sort
	}
	if set["merge-sections"] {
		opts.MergeSections = flags.MergeSections
	}
	if set["merge-blocks"] {
		opts.MergeBlocks = flags.MergeBlocks
	}

	log := newLogger(std.err, flags.Verbose || cfg.Verbose)
	log.Debug("options resolved",
		"sort", opts.Sort,
		"merge_sections", opts.MergeSections,
		"merge_blocks", opts.MergeBlocks,
	)

	switch {
	case flags.ServeMCP:
		server := mcptools.NewMergeMCPServer(mcptools.NewMergeService(opts))
		return mcptools.RunStdio(ctx, server)
	case flags.ServeHTTP != "":
		return serveHTTP(ctx, flags.ServeHTTP, opts, log)
	}

	rest := fs.Args()
	if len(rest) > 0 {
		switch rest[0] {
		case "tokens":
			return runTokens(ctx, rest[1:], std, log)
		case "tree":
			return runTree(ctx, rest[1:], opts, std, log)
		}
	}

	paths := rest
	if len(paths) == 0 {
		paths = cfg.SourcePaths()
	}
	if len(paths) == 0 {
		fs.Usage()
		return errors.New("no input files")
	}

	output := flags.Output
	if output == "" {
		output = cfg.OutputPath()
	}
	return runMerge(ctx, paths, output, opts, std, log)
}

// runMerge loads, merges and writes the sources.
func runMerge(ctx context.Context, paths []string, output string, opts ignorefile.Options, std stdio, log *slog.Logger) error {
	sources, err := loadSources(ctx, paths, std.in, log)
	if err != nil {
		return err
	}

	doc := ignorefile.MergeDocuments(opts, loader.Contents(sources)...)
	st := doc.Stats()
	log.Debug("merged",
		"sources", len(sources),
		"sections", st.Sections,
		"blocks", st.Blocks,
		"rules", st.Rules,
		"comments", st.Comments,
	)

	return writeOutput(output, std.out, ignorefile.Compile(doc, opts.CompileOptions())+"\n")
}

// loadSources reads paths concurrently, logging per-file progress at debug
// level.
func loadSources(ctx context.Context, paths []string, stdin io.Reader, log *slog.Logger) ([]loader.Source, error) {
	reporter := loader.NewProgressReporter()
	drained := make(chan struct{})
	go func() {
		defer close(drained)
		for ev := range reporter.Subscribe() {
			log.Debug(loader.FormatProgress(ev))
		}
	}()

	sources, err := loader.New(stdin, reporter.Emit).Load(ctx, paths)
	reporter.Close()
	<-drained
	return sources, err
}

func loadConfig(path string) (*config.ProjectConfig, error) {
	if path != "" {
		return config.LoadFile(path)
	}
	return config.Load(".")
}

// writeOutput writes text to path, or to stdout when path is empty or "-".
func writeOutput(path string, stdout io.Writer, text string) error {
	if path == "" || path == "-" {
		_, err := io.WriteString(stdout, text)
		return err
	}
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
