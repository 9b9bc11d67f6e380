package config

import "sync/atomic"

// Store holds the live configuration behind an atomic pointer. Readers get a
// consistent snapshot; Replace installs a new Config in one step so no
// caller ever observes a half-updated structure.
type Store struct {
	cur atomic.Pointer[Config]
}

// NewStore returns a Store seeded with cfg.
func NewStore(cfg Config) *Store {
	s := &Store{}
	s.cur.Store(&cfg)
	return s
}

// Current returns the live configuration. The returned value must not be
// mutated.
func (s *Store) Current() *Config {
	return s.cur.Load()
}

// Replace atomically swaps in a new configuration.
func (s *Store) Replace(cfg Config) {
	s.cur.Store(&cfg)
}
