// Package loader reads ignore-file sources from disk or stdin for the
// merge pipeline.
package loader

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/sync/errgroup"
)

// StdinPath is the source name that reads from the loader's stdin.
const StdinPath = "-"

// Source is the normalized content of one ignore file.
type Source struct {
	Path    string
	Content string
}

// Loader reads sources concurrently. Results keep argument order because
// merging is order dependent.
type Loader struct {
	stdin      io.Reader
	readFile   func(string) ([]byte, error)
	onProgress func(ProgressEvent)
}

// New creates a Loader reading "-" from stdin. onProgress is called
// synchronously from each reading goroutine; it may be nil.
func New(stdin io.Reader, onProgress func(ProgressEvent)) *Loader {
	return &Loader{
		stdin:      stdin,
		readFile:   os.ReadFile,
		onProgress: onProgress,
	}
}

// Load reads every path in parallel. The first failure cancels the
// remaining reads and is returned; no partial result is returned.
func (l *Loader) Load(ctx context.Context, paths []string) ([]Source, error) {
	if len(paths) == 0 {
		return nil, errors.New("no sources given")
	}
	stdinUses := 0
	for _, p := range paths {
		if p == StdinPath {
			stdinUses++
		}
	}
	if stdinUses > 1 {
		return nil, fmt.Errorf("stdin (%q) may be given at most once, got %d", StdinPath, stdinUses)
	}

	sources := make([]Source, len(paths))
	g, gctx := errgroup.WithContext(ctx)

	for i, path := range paths {
		l.emit(ProgressEvent{Path: path, Status: ProgressPending})

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			l.emit(ProgressEvent{Path: path, Status: ProgressReading})

			data, err := l.read(path)
			if err != nil {
				l.emit(ProgressEvent{Path: path, Status: ProgressFailed, Message: err.Error()})
				return err
			}

			sources[i] = Source{Path: path, Content: string(Normalize(data))}
			l.emit(ProgressEvent{Path: path, Status: ProgressComplete, Bytes: len(data)})
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return sources, nil
}

func (l *Loader) read(path string) ([]byte, error) {
	if path == StdinPath {
		if l.stdin == nil {
			return nil, errors.New("read stdin: no input attached")
		}
		data, err := io.ReadAll(l.stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}
	data, err := l.readFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}

// emit sends a progress event if a callback is registered.
func (l *Loader) emit(ev ProgressEvent) {
	if l.onProgress != nil {
		l.onProgress(ev)
	}
}

// Contents returns the content of each source, in order.
func Contents(sources []Source) []string {
	out := make([]string, len(sources))
	for i, s := range sources {
		out[i] = s.Content
	}
	return out
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Normalize strips leading UTF-8 byte order marks and converts CRLF and
// lone CR line endings to LF.
func Normalize(data []byte) []byte {
	for bytes.HasPrefix(data, utf8BOM) {
		data = data[len(utf8BOM):]
	}
	data = bytes.ReplaceAll(data, []byte("\r\n"), []byte("\n"))
	return bytes.ReplaceAll(data, []byte("\r"), []byte("\n"))
}
