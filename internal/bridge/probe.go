package bridge

import (
	"time"

	"jackbridge/internal/procs"
)

// ExecProber probes a PCM by opening it with the stock ALSA utilities, the
// closest a non-cgo process gets to a non-blocking open/close. A quick
// non-zero exit means the device could not be opened; a clean exit or a
// probe still alive at the deadline means the open succeeded.
type ExecProber struct {
	Runner  procs.Runner
	Timeout time.Duration
}

// NewExecProber returns a prober with the default 2s bound.
func NewExecProber(runner procs.Runner) *ExecProber {
	return &ExecProber{Runner: runner, Timeout: 2 * time.Second}
}

func (p *ExecProber) Available(device string, capture bool) bool {
	var argv []string
	if capture {
		argv = []string{"arecord", "-D", device, "-d", "1", "-f", "S16_LE", "/dev/null"}
	} else {
		argv = []string{"aplay", "-D", device, "/dev/null"}
	}

	h, err := p.Runner.Start(argv)
	if err != nil {
		return false
	}
	st, exited := h.WaitTimeout(p.Timeout)
	if !exited {
		// Opened fine and kept running; reap it and report available.
		procs.Terminate(h, time.Second)
		return true
	}
	return st.Code == 0
}
