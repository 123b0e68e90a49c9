package config

import (
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/kart-io/logger"
)

var integerPattern = regexp.MustCompile(`^-?[0-9]+$`)

// Snapshot is an immutable view of configuration values.
// Keys are case-insensitive.
type Snapshot struct {
	values   map[string]string
	version  uint64
	loadedAt time.Time
}

// NewSnapshot creates a Snapshot holding a copy of values.
func NewSnapshot(values map[string]string) *Snapshot {
	return newSnapshot(values, 0)
}

func newSnapshot(values map[string]string, version uint64) *Snapshot {
	s := &Snapshot{
		values:   make(map[string]string, len(values)),
		version:  version,
		loadedAt: time.Now(),
	}
	for k, v := range values {
		s.values[strings.ToLower(k)] = v
	}
	return s
}

// Version increases by one on every refresh of the owning Source.
func (s *Snapshot) Version() uint64 {
	return s.version
}

// LoadedAt returns when the snapshot was taken.
func (s *Snapshot) LoadedAt() time.Time {
	return s.loadedAt
}

// Get returns the raw value for key.
func (s *Snapshot) Get(key string) (string, bool) {
	v, ok := s.values[strings.ToLower(key)]
	return v, ok
}

// Contains reports whether key is set.
func (s *Snapshot) Contains(key string) bool {
	_, ok := s.Get(key)
	return ok
}

// Keys returns the sorted keys.
func (s *Snapshot) Keys() []string {
	return slices.Sorted(maps.Keys(s.values))
}

// Len returns the number of keys.
func (s *Snapshot) Len() int {
	return len(s.values)
}

// GetString returns the value for key, or def when unset.
func (s *Snapshot) GetString(key, def string) string {
	if v, ok := s.Get(key); ok {
		return v
	}
	return def
}

// GetBool returns the boolean value for key, or def when unset or
// unparsable.
func (s *Snapshot) GetBool(key string, def bool) bool {
	v, ok := s.Get(key)
	if !ok {
		return def
	}

	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "true", "yes", "1":
		return true
	case "false", "no", "0":
		return false
	}

	logger.Warnw("Unable to parse boolean configuration value, using default",
		"key", key, "value", v, "default", def)
	return def
}

// GetInt returns the integer value for key, or def when unset or
// unparsable.
func (s *Snapshot) GetInt(key string, def int) int {
	n, ok := s.integer(key, strconv.IntSize)
	if !ok {
		return def
	}
	return int(n)
}

// GetInt64 returns the 64-bit integer value for key, or def when unset or
// unparsable.
func (s *Snapshot) GetInt64(key string, def int64) int64 {
	n, ok := s.integer(key, 64)
	if !ok {
		return def
	}
	return n
}

func (s *Snapshot) integer(key string, bits int) (int64, bool) {
	v, ok := s.Get(key)
	if !ok {
		return 0, false
	}

	t := strings.TrimSpace(v)
	if integerPattern.MatchString(t) {
		if n, err := strconv.ParseInt(t, 10, bits); err == nil {
			return n, true
		}
	}

	logger.Warnw("Unable to parse integer configuration value, using default",
		"key", key, "value", v)
	return 0, false
}

// Changed reports whether any of keys differs between s and other.
// With no keys, every key is compared.
func (s *Snapshot) Changed(other *Snapshot, keys ...string) bool {
	if other == nil {
		return true
	}
	if len(keys) == 0 {
		return !maps.Equal(s.values, other.values)
	}
	for _, k := range keys {
		a, aok := s.Get(k)
		b, bok := other.Get(k)
		if a != b || aok != bok {
			return true
		}
	}
	return false
}
