// Package procs is the only place allowed to touch OS process primitives.
// The supervisor and spawner talk to a Runner/Handle pair so tests can swap
// in fakes without forking anything.
package procs

import (
	"fmt"
	"os"
	"syscall"
	"time"
)

// Status describes how a child ended.
type Status struct {
	// Code is the exit code, or -1 when the child was killed by a signal.
	Code int
	// Signal is the terminating signal name ("" when the child exited).
	Signal string
}

func (s Status) String() string {
	if s.Signal != "" {
		return fmt.Sprintf("signal=%s", s.Signal)
	}
	return fmt.Sprintf("exit=%d", s.Code)
}

// Handle is a live child process.
type Handle interface {
	PID() int
	// Signal delivers sig; a process that already exited is not an error.
	Signal(sig os.Signal) error
	// TryWait reports the exit status without blocking. It keeps returning
	// the same status once the child has been collected.
	TryWait() (Status, bool)
	// WaitTimeout blocks up to d for the child to exit.
	WaitTimeout(d time.Duration) (Status, bool)
}

// Runner starts child processes.
type Runner interface {
	Start(argv []string) (Handle, error)
}

// Terminate performs the two-phase stop: soft signal, bounded wait, hard
// kill. Applied uniformly at shutdown and on endpoint-removal handling.
func Terminate(h Handle, grace time.Duration) (Status, bool) {
	_ = h.Signal(syscall.SIGTERM)
	if st, ok := h.WaitTimeout(grace); ok {
		return st, true
	}
	_ = h.Signal(syscall.SIGKILL)
	return h.WaitTimeout(2 * time.Second)
}
