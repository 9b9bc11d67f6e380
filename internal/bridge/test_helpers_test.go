package bridge

import (
	"os"
	"sync"
	"time"

	"jackbridge/internal/procs"
)

type fakeHandle struct {
	mu      sync.Mutex
	pid     int
	signals []os.Signal
	status  procs.Status
	exited  bool
}

func (h *fakeHandle) PID() int { return h.pid }

func (h *fakeHandle) Signal(sig os.Signal) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.signals = append(h.signals, sig)
	return nil
}

func (h *fakeHandle) TryWait() (procs.Status, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.status, h.exited
}

func (h *fakeHandle) WaitTimeout(time.Duration) (procs.Status, bool) {
	return h.TryWait()
}

func (h *fakeHandle) exit(st procs.Status) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.status = st
	h.exited = true
}

type fakeRunner struct {
	mu      sync.Mutex
	nextPID int
	starts  [][]string
	failErr error
}

func (r *fakeRunner) Start(argv []string) (procs.Handle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failErr != nil {
		return nil, r.failErr
	}
	r.nextPID++
	r.starts = append(r.starts, append([]string(nil), argv...))
	return &fakeHandle{pid: r.nextPID + 1000}, nil
}

func (r *fakeRunner) started() [][]string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([][]string, len(r.starts))
	copy(out, r.starts)
	return out
}

type fakeProber struct{ available bool }

func (p fakeProber) Available(string, bool) bool { return p.available }
