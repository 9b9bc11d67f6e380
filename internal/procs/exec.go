package procs

import (
	"errors"
	"io"
	"os"
	"os/exec"
	"sync"
	"syscall"
	"time"
)

// ExecRunner starts children with os/exec. Each child gets its own process
// group so a stray shell wrapper cannot swallow its signals.
type ExecRunner struct{}

func (ExecRunner) Start(argv []string) (Handle, error) {
	if len(argv) == 0 {
		return nil, errors.New("procs: empty command line")
	}
	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Stdout = io.Discard
	cmd.Stderr = io.Discard
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}

	if err := cmd.Start(); err != nil {
		return nil, err
	}

	h := &execHandle{
		cmd:  cmd,
		done: make(chan Status, 1),
	}
	go h.wait()
	return h, nil
}

type execHandle struct {
	cmd  *exec.Cmd
	done chan Status

	mu     sync.Mutex
	status Status
	exited bool
}

func (h *execHandle) wait() {
	_ = h.cmd.Wait()
	h.done <- statusFrom(h.cmd)
	close(h.done)
}

func statusFrom(cmd *exec.Cmd) Status {
	ps := cmd.ProcessState
	if ps == nil {
		// Wait itself failed before the child was collected.
		return Status{Code: -1}
	}
	if ws, ok := ps.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
		return Status{Code: -1, Signal: ws.Signal().String()}
	}
	return Status{Code: ps.ExitCode()}
}

func (h *execHandle) PID() int {
	if h.cmd.Process == nil {
		return 0
	}
	return h.cmd.Process.Pid
}

func (h *execHandle) Signal(sig os.Signal) error {
	if h.cmd.Process == nil {
		return nil
	}
	if err := h.cmd.Process.Signal(sig); err != nil {
		if errors.Is(err, os.ErrProcessDone) {
			return nil
		}
		return err
	}
	return nil
}

func (h *execHandle) TryWait() (Status, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.exited {
		return h.status, true
	}
	select {
	case st, ok := <-h.done:
		if ok {
			h.status = st
			h.exited = true
		}
		return h.status, h.exited
	default:
		return Status{}, false
	}
}

func (h *execHandle) WaitTimeout(d time.Duration) (Status, bool) {
	h.mu.Lock()
	if h.exited {
		defer h.mu.Unlock()
		return h.status, true
	}
	h.mu.Unlock()

	select {
	case st, ok := <-h.done:
		h.mu.Lock()
		defer h.mu.Unlock()
		if ok {
			h.status = st
			h.exited = true
		}
		return h.status, h.exited
	case <-time.After(d):
		return Status{}, false
	}
}
