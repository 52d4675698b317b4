package loader

import "fmt"

// ProgressStatus is the state of a single source read.
type ProgressStatus string

const (
	ProgressPending  ProgressStatus = "pending"
	ProgressReading  ProgressStatus = "reading"
	ProgressComplete ProgressStatus = "complete"
	ProgressFailed   ProgressStatus = "failed"
)

// ProgressEvent reports a change in the state of one source.
type ProgressEvent struct {
	Path    string
	Status  ProgressStatus
	Bytes   int    // set on ProgressComplete
	Message string // set on ProgressFailed
}

// ProgressReporter emits progress events through a buffered channel.
type ProgressReporter struct {
	ch chan ProgressEvent
}

// NewProgressReporter creates a ProgressReporter with a buffered channel of size 64.
func NewProgressReporter() *ProgressReporter {
	return &ProgressReporter{
		ch: make(chan ProgressEvent, 64),
	}
}

// Emit sends a progress event in a non-blocking fashion.
// If the channel is full, the event is silently dropped.
func (pr *ProgressReporter) Emit(event ProgressEvent) {
	select {
	case pr.ch <- event:
	default:
	}
}

// Subscribe returns a read-only channel for consuming progress events.
func (pr *ProgressReporter) Subscribe() <-chan ProgressEvent {
	return pr.ch
}

// Close closes the progress event channel.
func (pr *ProgressReporter) Close() {
	close(pr.ch)
}

// FormatProgress formats a ProgressEvent as a human-readable status line.
func FormatProgress(event ProgressEvent) string {
	name := event.Path
	if name == StdinPath {
		name = "<stdin>"
	}
	switch event.Status {
	case ProgressPending:
		return fmt.Sprintf("  ○ %s (pending)", name)
	case ProgressReading:
		return fmt.Sprintf("  ● %s...", name)
	case ProgressComplete:
		return fmt.Sprintf("  ✓ %s (%d bytes)", name, event.Bytes)
	case ProgressFailed:
		return fmt.Sprintf("  ✗ %s failed: %s", name, event.Message)
	default:
		return fmt.Sprintf("  ? %s (unknown status)", name)
	}
}
