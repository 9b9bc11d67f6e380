package registry

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// Snapshot schema versioning for forward-compatibility.
const snapshotVersion = 1

// The snapshot is a diagnostic artifact: it lets an operator see what the
// daemon believed was running at the moment it died. It is never read back
// to respawn children.
type snapshot struct {
	Version  int     `json:"version"`
	Children []Child `json:"children"`
	Created  int64   `json:"created_unix"`
}

func (r *Registry) saveSnapshot(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}

	r.mu.RLock()
	s := snapshot{
		Version: snapshotVersion,
		Created: time.Now().UTC().Unix(),
	}
	s.Children = make([]Child, 0, len(r.byPID))
	for _, c := range r.byPID {
		s.Children = append(s.Children, c.clone())
	}
	r.mu.RUnlock()

	b, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
