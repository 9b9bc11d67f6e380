// Package logfile provides the daemon's append-only log sink. Every event
// line goes both to stderr and, when a path is configured, to the log file;
// the file can be reopened at a different path on config reload.
package logfile

import (
	"fmt"
	"os"
	"sync"
)

// Writer is an io.Writer that tees to stderr and an optional append-only
// file. Safe for concurrent use.
type Writer struct {
	mu   sync.Mutex
	path string
	f    *os.File
}

// New returns a Writer teeing to stderr. A file is attached via Reopen.
func New() *Writer {
	return &Writer{}
}

// Reopen closes the current file (if any) and opens path for appending.
// An empty path detaches the file and leaves stderr-only logging. Opening
// failures leave the writer on stderr and are reported to the caller.
func (w *Writer) Reopen(path string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.f != nil {
		w.f.Close()
		w.f = nil
	}
	w.path = path
	if path == "" {
		return nil
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log file %s: %w", path, err)
	}
	w.f = f
	return nil
}

// Path returns the currently attached file path ("" if stderr-only).
func (w *Writer) Path() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.path
}

func (w *Writer) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	os.Stderr.Write(p)
	if w.f != nil {
		return w.f.Write(p)
	}
	return len(p), nil
}

// Close detaches and closes the log file.
func (w *Writer) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.f == nil {
		return nil
	}
	err := w.f.Close()
	w.f = nil
	return err
}
