package combatlog

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
)

// WriterRecorder prints one line per entry
type WriterRecorder struct {
	mu sync.Mutex
	w  io.Writer
}

// NewWriterRecorder creates a recorder writing to w
func NewWriterRecorder(w io.Writer) *WriterRecorder {
	return &WriterRecorder{w: w}
}

// Record writes the entry's log line
func (r *WriterRecorder) Record(_ context.Context, entry *Entry) {
	if err := r.writeLine(entry.String()); err != nil {
		slog.Warn("Failed to write combat log line",
			"line", entry.String(),
			"error", err,
		)
	}
}

func (r *WriterRecorder) writeLine(line string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := fmt.Fprintln(r.w, line)
	return err
}
