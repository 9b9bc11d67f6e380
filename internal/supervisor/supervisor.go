// Package supervisor runs the daemon's event loop. Every registry mutation,
// spawn decision and config swap happens on this one control flow; bus
// callbacks and OS signals only feed channels the loop selects on.
package supervisor

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"jackbridge/internal/bridge"
	"jackbridge/internal/bus"
	"jackbridge/internal/config"
	"jackbridge/internal/logfile"
	"jackbridge/internal/procs"
	"jackbridge/internal/registry"
)

// DefaultReapInterval is how often exited children are collected.
const DefaultReapInterval = time.Second

// Options wires a Supervisor. Store, Registry, Spawner, Runner and Events
// are required; the rest have defaults.
type Options struct {
	Store      *config.Store
	Registry   *registry.Registry
	Spawner    *bridge.Spawner
	Runner     procs.Runner
	Events     <-chan bus.Event
	ConfigPath string
	// Log, when set, is reopened on reload if LOG_FILE changed.
	Log          *logfile.Writer
	ReapInterval time.Duration
}

// Supervisor owns the child lifecycle: spawn on endpoint arrival, graceful
// stop on removal, reap-and-restart-once on crash, drain on shutdown.
type Supervisor struct {
	store      *config.Store
	reg        *registry.Registry
	spawner    *bridge.Spawner
	runner     procs.Runner
	events     <-chan bus.Event
	configPath string
	logw       *logfile.Writer
	reapEvery  time.Duration

	started time.Time

	// handles maps pid to the live process handle; mutated only by loop
	// steps, like the registry it mirrors.
	handles  map[int]procs.Handle
	killSent map[int]bool

	// pending holds arrivals waiting out SPAWN_DELAY. They are served on
	// reap ticks so the loop never sleeps through a removal.
	pending []pendingSpawn

	hup  chan os.Signal
	term chan os.Signal
}

// New builds a Supervisor. It does not start anything.
func New(opts Options) *Supervisor {
	if opts.ReapInterval <= 0 {
		opts.ReapInterval = DefaultReapInterval
	}
	return &Supervisor{
		store:      opts.Store,
		reg:        opts.Registry,
		spawner:    opts.Spawner,
		runner:     opts.Runner,
		events:     opts.Events,
		configPath: opts.ConfigPath,
		logw:       opts.Log,
		reapEvery:  opts.ReapInterval,
		handles:    make(map[int]procs.Handle),
		killSent:   make(map[int]bool),
		hup:        make(chan os.Signal, 1),
		term:       make(chan os.Signal, 2),
	}
}

// Started returns when Run began (zero before that).
func (s *Supervisor) Started() time.Time { return s.started }

// Run writes the pid file, installs the signal handlers and drives the loop
// until a termination signal or context cancellation. On exit every
// remaining child is gracefully terminated and the pid file removed.
func (s *Supervisor) Run(ctx context.Context) error {
	s.started = time.Now()

	pidPath := s.store.Current().PIDFile
	if err := writePIDFile(pidPath); err != nil {
		return err
	}
	defer removePIDFile(pidPath)

	signal.Notify(s.hup, syscall.SIGHUP)
	signal.Notify(s.term, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(s.hup)
	defer signal.Stop(s.term)

	ticker := time.NewTicker(s.reapEvery)
	defer ticker.Stop()

	log.Printf("supervisor: running (pid=%d)", os.Getpid())
	for {
		select {
		case ev, ok := <-s.events:
			if !ok {
				s.shutdown()
				return errors.New("supervisor: bus event stream closed")
			}
			s.handleEvent(ev)
		case <-ticker.C:
			s.reap()
		case <-s.hup:
			log.Printf("supervisor: SIGHUP received, reloading configuration")
			s.reload()
		case <-s.term:
			log.Printf("supervisor: termination signal received")
			s.shutdown()
			return nil
		case <-ctx.Done():
			s.shutdown()
			return nil
		}
	}
}

func (s *Supervisor) handleEvent(ev bus.Event) {
	switch ev.Kind {
	case bus.EndpointAdded:
		s.handleAdded(ev.Endpoint)
	case bus.EndpointRemoved:
		s.handleRemoved(ev.Endpoint)
	}
}

// pendingSpawn is an arrival deferred by the configured spawn delay.
type pendingSpawn struct {
	ep        bus.Endpoint
	notBefore time.Time
}

func (s *Supervisor) handleAdded(ep bus.Endpoint) {
	log.Printf("supervisor: endpoint added %s (device=%s profile=%s direction=%s)",
		ep.ObjectPath, ep.Device, ep.Profile, ep.Direction)

	if d := s.store.Current().SpawnDelay; d > 0 {
		s.pending = append(s.pending, pendingSpawn{ep: ep, notBefore: time.Now().Add(d)})
		return
	}
	s.spawn(ep)
}

func (s *Supervisor) spawn(ep bus.Endpoint) {
	h, err := s.spawner.Spawn(ep)
	if err != nil {
		switch {
		case errors.Is(err, bridge.ErrDuplicate),
			errors.Is(err, bridge.ErrResourceBusy),
			errors.Is(err, bridge.ErrTooManyBridges):
			// Skip decisions; already logged by the spawner.
		default:
			log.Printf("supervisor: spawn for %s failed: %v", ep.Device, err)
		}
		return
	}
	s.handles[h.PID()] = h
}

// handleRemoved starts a graceful stop for every child serving the device.
// Nothing matching is a no-op. The stop is two-phase and non-blocking: soft
// signal now, escalation and collection on the reap ticks.
func (s *Supervisor) handleRemoved(ep bus.Endpoint) {
	s.dropPending(ep.Device)
	matches := s.reg.MatchDevice(ep.Device)
	if len(matches) == 0 {
		return
	}
	grace := s.store.Current().ChildTermTimeout
	deadline := time.Now().Add(grace)
	for _, c := range matches {
		log.Printf("supervisor: endpoint %s removed, terminating %s (pid=%d)", ep.Device, c.Name, c.PID)
		h := s.handles[c.PID]
		if h == nil {
			s.reg.Remove(c.PID)
			continue
		}
		_ = h.Signal(syscall.SIGTERM)
		s.reg.MarkStopping(c.PID, deadline)
	}
}

// reap collects exited children and applies the restart policy. This is the
// only place a child's terminal exit is observed, and it always runs on the
// loop, never from an interrupt context.
func (s *Supervisor) reap() {
	now := time.Now()
	s.flushPending(now)
	for _, c := range s.reg.List() {
		h := s.handles[c.PID]
		if h == nil {
			// Record without a handle: nothing left to observe.
			s.reg.Remove(c.PID)
			continue
		}
		st, exited := h.TryWait()
		if !exited {
			if c.Stopping() && now.After(c.StopDeadline) && !s.killSent[c.PID] {
				log.Printf("supervisor: %s (pid=%d) ignored soft stop, killing", c.Name, c.PID)
				_ = h.Signal(syscall.SIGKILL)
				s.killSent[c.PID] = true
			}
			continue
		}

		log.Printf("supervisor: child exited pid=%d name=%s %s cmd=%q", c.PID, c.Name, st, c.Cmdline)
		s.forget(c.PID)

		if c.Stopping() {
			// Endpoint removal short-circuits the restart path.
			continue
		}
		if c.Restarts >= 1 {
			log.Printf("supervisor: not restarting %s (already restarted once)", c.Name)
			continue
		}
		s.restart(c)
	}
}

// restart relaunches an exited child with its stored command line and
// carries the incremented restart count onto the new record.
func (s *Supervisor) restart(c registry.Child) {
	log.Printf("supervisor: attempting automatic restart of %s", c.Name)
	h, err := s.runner.Start(c.Cmdline)
	if err != nil {
		log.Printf("supervisor: automatic restart of %s failed: %v", c.Name, err)
		return
	}
	s.reg.Add(h.PID(), c.Name, c.Cmdline, c.Restarts+1)
	s.handles[h.PID()] = h
	log.Printf("supervisor: restarted %s as pid=%d", c.Name, h.PID())
}

// reload re-reads the configuration file. A load failure keeps the previous
// configuration active; on success the new configuration replaces the old
// one in a single swap and the log file is reopened if its path changed.
func (s *Supervisor) reload() {
	newCfg, err := config.Load(s.configPath)
	if err != nil {
		log.Printf("supervisor: config reload failed, keeping previous configuration: %v", err)
		return
	}
	old := s.store.Current()
	s.store.Replace(newCfg)
	if s.logw != nil && newCfg.LogFile != old.LogFile {
		if err := s.logw.Reopen(newCfg.LogFile); err != nil {
			log.Printf("supervisor: %v", err)
		}
	}
	log.Printf("supervisor: configuration reloaded from %s", s.configPath)
}

// shutdown drains the registry, blocking up to the grace period per child.
func (s *Supervisor) shutdown() {
	children := s.reg.List()
	if len(children) > 0 {
		log.Printf("supervisor: terminating %d children", len(children))
	}
	grace := s.store.Current().ChildTermTimeout
	for _, c := range children {
		if h := s.handles[c.PID]; h != nil {
			if st, ok := procs.Terminate(h, grace); ok {
				log.Printf("supervisor: terminated %s (pid=%d) %s", c.Name, c.PID, st)
			} else {
				log.Printf("supervisor: %s (pid=%d) did not exit", c.Name, c.PID)
			}
		}
		s.forget(c.PID)
	}
}

// flushPending spawns every deferred arrival whose delay has elapsed.
func (s *Supervisor) flushPending(now time.Time) {
	if len(s.pending) == 0 {
		return
	}
	keep := s.pending[:0]
	for _, p := range s.pending {
		if now.Before(p.notBefore) {
			keep = append(keep, p)
			continue
		}
		s.spawn(p.ep)
	}
	s.pending = keep
}

// dropPending discards deferred arrivals for a device that went away before
// its delay elapsed.
func (s *Supervisor) dropPending(device string) {
	keep := s.pending[:0]
	for _, p := range s.pending {
		if p.ep.Device == device {
			log.Printf("supervisor: endpoint %s removed before its spawn delay elapsed, dropping", device)
			continue
		}
		keep = append(keep, p)
	}
	s.pending = keep
}

func (s *Supervisor) forget(pid int) {
	delete(s.handles, pid)
	delete(s.killSent, pid)
	s.reg.Remove(pid)
}

func writePIDFile(path string) error {
	if path == "" {
		return nil
	}
	if err := os.WriteFile(path, []byte(fmt.Sprintf("%d\n", os.Getpid())), 0o644); err != nil {
		return fmt.Errorf("write pid file: %w", err)
	}
	return nil
}

func removePIDFile(path string) {
	if path == "" {
		return
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("supervisor: remove pid file: %v", err)
	}
}
