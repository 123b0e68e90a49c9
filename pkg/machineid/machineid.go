// Package machineid picks the six-byte machine identifier embedded in GUIDs.
//
// An operator may pin the value through configuration. Otherwise the
// hardware addresses of the host's network interfaces are scored and the
// best one wins; when none qualifies, random bytes are used. Resolution
// never fails.
package machineid

import (
	crand "crypto/rand"
	"encoding/hex"
	"io"
	"math/rand/v2"
	"net"
	"regexp"
	"strings"

	"github.com/kart-io/logger"
	"github.com/kart-io/logger/core"
)

// Size is the length of a machine id.
const Size = 6

// ConfigKey is the configuration key holding an operator override.
const ConfigKey = "guid.machine-id"

var overridePattern = regexp.MustCompile(`^(?:[0-9a-fA-F]{2}[:-]?){6,8}$`)

// Source tells where a machine id came from.
type Source string

const (
	// SourceOverride means the id was read from configuration.
	SourceOverride Source = "override"

	// SourceInterface means the id is a network hardware address.
	SourceInterface Source = "interface"

	// SourceRandom means no usable address was found.
	SourceRandom Source = "random"
)

// Config is the read side of a configuration source.
type Config interface {
	Get(key string) (string, bool)
}

// Result is a resolved machine id.
type Result struct {
	ID        []byte `json:"id"`
	Source    Source `json:"source"`
	Interface string `json:"interface,omitempty"`
}

// String formats the id as colon separated hex.
func (r Result) String() string {
	return net.HardwareAddr(r.ID).String()
}

// Resolver resolves a machine id.
type Resolver struct {
	config Config
	key    string
	list   Lister
	random io.Reader
	log    core.Logger
}

// Option is a functional option for Resolver.
type Option func(*Resolver)

// WithConfig sets the configuration consulted for an override.
func WithConfig(c Config) Option {
	return func(r *Resolver) {
		r.config = c
	}
}

// WithConfigKey changes the override key. Defaults to ConfigKey.
func WithConfigKey(key string) Option {
	return func(r *Resolver) {
		r.key = key
	}
}

// WithLister replaces interface enumeration (for testing).
func WithLister(l Lister) Option {
	return func(r *Resolver) {
		r.list = l
	}
}

// WithRandom sets the source of fallback bytes.
func WithRandom(rd io.Reader) Option {
	return func(r *Resolver) {
		r.random = rd
	}
}

// WithLogger sets the logger. Defaults to the global logger.
func WithLogger(l core.Logger) Option {
	return func(r *Resolver) {
		r.log = l
	}
}

// NewResolver creates a Resolver.
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{
		key:    ConfigKey,
		list:   SystemInterfaces,
		random: crand.Reader,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve is shorthand for NewResolver(opts...).Resolve().
func Resolve(opts ...Option) Result {
	return NewResolver(opts...).Resolve()
}

// Resolve returns the override if one is configured, else the best
// interface address, else random bytes.
func (r *Resolver) Resolve() (res Result) {
	defer func() {
		if p := recover(); p != nil {
			r.logger().Errorw("Machine id resolution panicked, using random id", "panic", p)
			res = r.randomResult()
		}
	}()

	if id, ok := r.override(); ok {
		return Result{ID: id, Source: SourceOverride}
	}

	candidates, err := r.list()
	if err != nil {
		r.logger().Warnw("Cannot enumerate network interfaces, using random machine id", "error", err)
		return r.randomResult()
	}
	if best, ok := Best(candidates); ok {
		id := make([]byte, Size)
		copy(id, best.HardwareAddr)
		return Result{ID: id, Source: SourceInterface, Interface: best.Name}
	}

	r.logger().Warnw("No usable hardware address found, using random machine id", "candidates", len(candidates))
	return r.randomResult()
}

func (r *Resolver) override() ([]byte, bool) {
	if r.config == nil {
		return nil, false
	}
	v, ok := r.config.Get(r.key)
	v = strings.TrimSpace(v)
	if !ok || v == "" {
		return nil, false
	}
	id, ok := ParseOverride(v)
	if !ok {
		r.logger().Warnw("Ignoring malformed machine id override", "key", r.key, "value", v)
	}
	return id, ok
}

func (r *Resolver) randomResult() Result {
	id := make([]byte, Size)
	if _, err := io.ReadFull(r.random, id); err != nil {
		r.logger().Warnw("Random source failed, falling back to math/rand", "error", err)
		for i := range id {
			id[i] = byte(rand.Uint32())
		}
	}
	return Result{ID: id, Source: SourceRandom}
}

func (r *Resolver) logger() core.Logger {
	if r.log != nil {
		return r.log
	}
	return logger.Global()
}

// ParseOverride parses 6 to 8 hex pairs, optionally separated by ':' or
// '-', and keeps the first six bytes.
func ParseOverride(s string) ([]byte, bool) {
	s = strings.TrimSpace(s)
	if !overridePattern.MatchString(s) {
		return nil, false
	}
	digits := strings.NewReplacer(":", "", "-", "").Replace(s)
	b, err := hex.DecodeString(digits[:Size*2])
	if err != nil {
		return nil, false
	}
	return b, true
}
