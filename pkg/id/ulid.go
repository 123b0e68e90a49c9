package id

import (
	"crypto/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// ULIDGenerator generates ULIDs that are strictly increasing within
// one generator, even inside a single millisecond.
type ULIDGenerator struct {
	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
	now     func() time.Time
}

// ULIDOption is a functional option for ULIDGenerator.
type ULIDOption func(*ulidConfig)

type ulidConfig struct {
	now func() time.Time
}

// WithULIDTimeFunc sets a custom time function (for testing).
func WithULIDTimeFunc(f func() time.Time) ULIDOption {
	return func(c *ulidConfig) {
		c.now = f
	}
}

// NewULIDGenerator creates a new ULID generator.
func NewULIDGenerator(opts ...ULIDOption) *ULIDGenerator {
	cfg := &ulidConfig{now: time.Now}
	for _, opt := range opts {
		opt(cfg)
	}
	return &ULIDGenerator{
		entropy: ulid.Monotonic(rand.Reader, 0),
		now:     cfg.now,
	}
}

// Generate creates a new ULID string.
func (g *ULIDGenerator) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return ulid.MustNew(ulid.Timestamp(g.now()), g.entropy).String()
}

// GenerateN creates n ULID strings.
func (g *ULIDGenerator) GenerateN(n int) []string {
	return generateN(n, g.Generate)
}

// ParseULIDTime returns the timestamp embedded in s.
func ParseULIDTime(s string) (time.Time, error) {
	u, err := ulid.ParseStrict(s)
	if err != nil {
		return time.Time{}, err
	}
	return ulid.Time(u.Time()), nil
}
