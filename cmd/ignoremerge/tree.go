package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"

	"github.com/dusk-indust/ignoremerge/internal/export"
	"github.com/dusk-indust/ignoremerge/internal/ignorefile"
	"github.com/dusk-indust/ignoremerge/internal/loader"
)

// runTree merges the given files and prints the resulting document as JSON
// or as a Mermaid diagram.
func runTree(ctx context.Context, args []string, opts ignorefile.Options, std stdio, log *slog.Logger) error {
	fs := flag.NewFlagSet("tree", flag.ContinueOnError)
	fs.SetOutput(std.err)
	format := fs.String("format", "json", "output format: json or mermaid")
	if err := fs.Parse(args); err != nil {
		return err
	}

	paths := fs.Args()
	if len(paths) == 0 {
		return errors.New("tree: at least one file is required")
	}

	sources, err := loadSources(ctx, paths, std.in, log)
	if err != nil {
		return err
	}
	doc := ignorefile.MergeDocuments(opts, loader.Contents(sources)...)

	switch *format {
	case "json":
		data, err := export.JSON(doc)
		if err != nil {
			return fmt.Errorf("export json: %w", err)
		}
		_, err = std.out.Write(data)
		return err
	case "mermaid":
		_, err := fmt.Fprint(std.out, export.GenerateMermaid(doc))
		return err
	default:
		return fmt.Errorf("tree: unknown format %q (want json or mermaid)", *format)
	}
}
