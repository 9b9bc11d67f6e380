// Package registry tracks the bridge children currently supervised by the
// daemon. It is the single source of truth for "what is running": the
// supervisor loop is the only writer, while the control-plane RPCs read
// copies under the lock.
package registry

import (
	"log"
	"sort"
	"strings"
	"sync"
	"time"
)

// Child is one supervised bridge process. The job name embeds the device
// identifier it serves (bt_in_<dev>, bt_out_<dev>, bt_sco_<dev>), which is
// what removal notifications and dedup checks match against. Entries are
// immutable outside registry methods.
type Child struct {
	PID      int       `json:"pid"`
	Name     string    `json:"name"`
	Cmdline  []string  `json:"cmdline"`
	Restarts int       `json:"restarts"`
	AddedAt  time.Time `json:"added_at"`

	// StopDeadline is non-zero once a graceful stop was requested; past the
	// deadline the reaper escalates to a hard kill. A stopping child is never
	// restarted.
	StopDeadline time.Time `json:"stop_deadline,omitempty"`
}

// Stopping reports whether a graceful stop has been requested.
func (c Child) Stopping() bool {
	return !c.StopDeadline.IsZero()
}

// clone gives the copy its own Cmdline backing array, so a caller holding a
// copied record can never reach back into the stored one.
func (c Child) clone() Child {
	c.Cmdline = append([]string(nil), c.Cmdline...)
	return c
}

// Registry is a mutex-guarded catalog of live children keyed by pid.
type Registry struct {
	mu    sync.RWMutex
	byPID map[int]*Child

	// Where to snapshot for post-mortem inspection. Empty disables it.
	SnapshotPath string
}

// New returns an empty registry. Children never survive a daemon restart,
// so nothing is loaded back from a previous snapshot.
func New(snapshotPath string) *Registry {
	return &Registry{
		byPID:        make(map[int]*Child),
		SnapshotPath: snapshotPath,
	}
}

// Add inserts a record for a freshly spawned child and logs it.
func (r *Registry) Add(pid int, name string, cmdline []string, restarts int) {
	r.mu.Lock()
	r.byPID[pid] = &Child{
		PID:      pid,
		Name:     name,
		Cmdline:  append([]string(nil), cmdline...),
		Restarts: restarts,
		AddedAt:  time.Now().UTC(),
	}
	r.mu.Unlock()

	log.Printf("registry: added child pid=%d name=%s", pid, name)
	r.maybeSave()
}

// Remove deletes the record for pid. Removing an unknown pid is a no-op.
func (r *Registry) Remove(pid int) bool {
	r.mu.Lock()
	c := r.byPID[pid]
	if c != nil {
		delete(r.byPID, pid)
	}
	r.mu.Unlock()

	if c == nil {
		return false
	}
	log.Printf("registry: removed child pid=%d name=%s", pid, c.Name)
	r.maybeSave()
	return true
}

// Get returns a copy of the record for pid.
func (r *Registry) Get(pid int) (Child, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c := r.byPID[pid]
	if c == nil {
		return Child{}, false
	}
	return c.clone(), true
}

// FindByDevice returns the first child whose job name contains the device
// identifier. Used by the spawner's dedup check.
func (r *Registry) FindByDevice(device string) (Child, bool) {
	if device == "" {
		return Child{}, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.byPID {
		if strings.Contains(c.Name, device) {
			return c.clone(), true
		}
	}
	return Child{}, false
}

// MatchDevice returns all children whose job name contains the device
// identifier, sorted by pid. Used when a removal notification arrives.
func (r *Registry) MatchDevice(device string) []Child {
	if device == "" {
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []Child
	for _, c := range r.byPID {
		if strings.Contains(c.Name, device) {
			out = append(out, c.clone())
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PID < out[j].PID })
	return out
}

// MarkStopping records that a graceful stop was issued for pid, with the
// deadline after which the reaper hard-kills it.
func (r *Registry) MarkStopping(pid int, deadline time.Time) bool {
	r.mu.Lock()
	c := r.byPID[pid]
	if c != nil {
		c.StopDeadline = deadline
	}
	r.mu.Unlock()
	if c == nil {
		return false
	}
	r.maybeSave()
	return true
}

// List returns copies of all records sorted by pid.
func (r *Registry) List() []Child {
	r.mu.RLock()
	out := make([]Child, 0, len(r.byPID))
	for _, c := range r.byPID {
		out = append(out, c.clone())
	}
	r.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].PID < out[j].PID })
	return out
}

// Len returns the number of tracked children.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byPID)
}

// maybeSave performs a best-effort snapshot write if a path is configured.
func (r *Registry) maybeSave() {
	if r.SnapshotPath == "" {
		return
	}
	if err := r.saveSnapshot(r.SnapshotPath); err != nil {
		log.Printf("registry: snapshot failed: %v", err)
	}
}
