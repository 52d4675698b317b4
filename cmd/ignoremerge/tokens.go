package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dusk-indust/ignoremerge/internal/ignorefile"
)

// runTokens prints the token stream of a single file, one token per line.
func runTokens(ctx context.Context, args []string, std stdio, log *slog.Logger) error {
	if len(args) != 1 {
		return errors.New("tokens: exactly one file is required")
	}

	sources, err := loadSources(ctx, args, std.in, log)
	if err != nil {
		return err
	}

	tokens := ignorefile.Tokenize(sources[0].Content)
	log.Debug("tokenized", "path", sources[0].Path, "tokens", len(tokens))

	for _, tok := range tokens {
		if _, err := fmt.Fprintln(std.out, tok.String()); err != nil {
			return err
		}
	}
	return nil
}
