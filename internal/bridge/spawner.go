// Package bridge decides whether a bridge child may be launched for an
// endpoint and builds its command line. One bridge per device at a time: the
// pre-spawn dedup check here is what keeps a flapping connection from
// producing two children before the first is registered.
package bridge

import (
	"errors"
	"fmt"
	"log"
	"strconv"

	"jackbridge/internal/bus"
	"jackbridge/internal/config"
	"jackbridge/internal/procs"
	"jackbridge/internal/registry"
)

// DefaultAutoconnect is the helper that wires freshly created bridge ports
// into the audio graph. Launched fire-and-forget after each spawn.
const DefaultAutoconnect = "/usr/lib/jack-bridge/jack-autoconnect"

var (
	// ErrDuplicate: a bridge already serves this device.
	ErrDuplicate = errors.New("bridge already running for device")
	// ErrResourceBusy: the target PCM could not be opened.
	ErrResourceBusy = errors.New("audio resource unavailable")
	// ErrTooManyBridges: the configured concurrency ceiling was reached.
	ErrTooManyBridges = errors.New("maximum concurrent bridges reached")
)

// Prober checks whether a PCM device can currently be opened. The check is
// best-effort and bounded; it exists to avoid launching a child that is
// doomed to crash against a resource another client holds.
type Prober interface {
	Available(device string, capture bool) bool
}

// Spawner launches bridge children.
type Spawner struct {
	cfg    *config.Store
	reg    *registry.Registry
	runner procs.Runner
	probe  Prober

	// Autoconnect is the helper binary path; empty disables the step.
	Autoconnect string
}

// New wires a Spawner. All collaborators are injected so tests can run it
// against fakes.
func New(cfg *config.Store, reg *registry.Registry, runner procs.Runner, probe Prober) *Spawner {
	return &Spawner{
		cfg:         cfg,
		reg:         reg,
		runner:      runner,
		probe:       probe,
		Autoconnect: DefaultAutoconnect,
	}
}

// plan is the launch recipe for one endpoint.
type plan struct {
	job     string
	program string
	capture bool
	params  config.ProfileParams
	device  string
}

func (s *Spawner) planFor(ep bus.Endpoint) plan {
	cfg := s.cfg.Current()
	device := fmt.Sprintf("bluealsa:DEV=%s,PROFILE=%s", ep.Device, ep.Profile)

	if ep.Profile.Voice() {
		return plan{
			job:     "bt_sco_" + ep.Device,
			program: "alsa_in",
			capture: true,
			params:  cfg.SCO,
			device:  device,
		}
	}
	// Streaming: the advertised direction picks the relay side. Without a
	// direction the remote is treated as a source feeding the local sink.
	if ep.Direction == bus.DirectionSink {
		return plan{
			job:     "bt_out_" + ep.Device,
			program: "alsa_out",
			capture: false,
			params:  cfg.A2DP,
			device:  device,
		}
	}
	return plan{
		job:     "bt_in_" + ep.Device,
		program: "alsa_in",
		capture: true,
		params:  cfg.A2DP,
		device:  device,
	}
}

func (p plan) argv() []string {
	return []string{
		p.program,
		"-j", p.job,
		"-d", p.device,
		"-r", strconv.Itoa(p.params.Rate),
		"-p", strconv.Itoa(p.params.Period),
		"-n", strconv.Itoa(p.params.Periods),
		"-c", strconv.Itoa(p.params.Channels),
	}
}

// Spawn launches a bridge for ep, registers it, and kicks the autoconnect
// helper. The sentinel errors mark skip decisions: the endpoint is already
// served, the ceiling is reached, or the resource is busy. No retry is
// scheduled on a skip; a later add-notification triggers the next attempt.
func (s *Spawner) Spawn(ep bus.Endpoint) (procs.Handle, error) {
	if c, ok := s.reg.FindByDevice(ep.Device); ok {
		log.Printf("bridge: %s already served by %s (pid=%d), skipping spawn", ep.Device, c.Name, c.PID)
		return nil, ErrDuplicate
	}
	if max := s.cfg.Current().MaxBridges; max > 0 && s.reg.Len() >= max {
		log.Printf("bridge: %d bridges running, ceiling %d reached, skipping %s", s.reg.Len(), max, ep.Device)
		return nil, ErrTooManyBridges
	}

	p := s.planFor(ep)
	if !s.probe.Available(p.device, p.capture) {
		log.Printf("bridge: PCM %s not available, skipping spawn", p.device)
		return nil, ErrResourceBusy
	}

	argv := p.argv()
	h, err := s.runner.Start(argv)
	if err != nil {
		return nil, fmt.Errorf("spawn %s: %w", p.job, err)
	}
	s.reg.Add(h.PID(), p.job, argv, 0)

	s.runAutoconnect()
	return h, nil
}

// runAutoconnect launches the port wiring helper without waiting for or
// inspecting its result.
func (s *Spawner) runAutoconnect() {
	if s.Autoconnect == "" {
		return
	}
	if _, err := s.runner.Start([]string{s.Autoconnect}); err != nil {
		log.Printf("bridge: autoconnect helper failed to start: %v", err)
	}
}
