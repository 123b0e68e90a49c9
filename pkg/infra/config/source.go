package config

import (
	"sync"
	"sync/atomic"

	"github.com/spf13/viper"
)

// Source publishes snapshots of a viper instance.
type Source struct {
	viper   *viper.Viper
	current atomic.Pointer[Snapshot]
	mu      sync.Mutex
}

// NewSource creates a Source and takes its first snapshot.
func NewSource(v *viper.Viper) *Source {
	s := &Source{viper: v}
	s.Refresh()
	return s
}

// Viper returns the underlying viper instance.
func (s *Source) Viper() *viper.Viper {
	return s.viper
}

// Snapshot returns the most recent snapshot.
func (s *Source) Snapshot() *Snapshot {
	return s.current.Load()
}

// Get reads key from the most recent snapshot.
func (s *Source) Get(key string) (string, bool) {
	return s.Snapshot().Get(key)
}

// Refresh re-reads every key known to viper and publishes a new snapshot.
// Previously returned snapshots are left untouched.
func (s *Source) Refresh() *Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	keys := s.viper.AllKeys()
	values := make(map[string]string, len(keys))
	for _, k := range keys {
		if s.viper.IsSet(k) {
			values[k] = s.viper.GetString(k)
		}
	}

	var version uint64
	if prev := s.current.Load(); prev != nil {
		version = prev.version + 1
	}
	snap := newSnapshot(values, version)
	s.current.Store(snap)
	return snap
}
