// Package processid derives the 16-bit process id embedded in GUIDs.
package processid

import (
	"fmt"
	"math/rand/v2"
	"os"
	"strconv"
	"strings"

	"github.com/kart-io/logger"
	"github.com/kart-io/logger/core"

	"github.com/VitamPoc/VitamCommon/pkg/errors"
)

// Max bounds process ids; values are taken modulo Max.
const Max = 65536

// RuntimeName describes the running process as "<pid>@<hostname>".
func RuntimeName() string {
	host, err := os.Hostname()
	if err != nil {
		host = "localhost"
	}
	return fmt.Sprintf("%d@%s", os.Getpid(), host)
}

type resolver struct {
	name func() string
	log  core.Logger
}

// Option is a functional option for Resolve.
type Option func(*resolver)

// WithRuntimeName replaces RuntimeName (for testing).
func WithRuntimeName(f func() string) Option {
	return func(r *resolver) {
		r.name = f
	}
}

// WithLogger sets the logger. Defaults to the global logger.
func WithLogger(l core.Logger) Option {
	return func(r *resolver) {
		r.log = l
	}
}

// Resolve returns the process id in [0, Max). A runtime name that cannot
// be parsed yields a random value.
func Resolve(opts ...Option) int {
	r := &resolver{name: RuntimeName}
	for _, opt := range opts {
		opt(r)
	}

	name := r.name()
	pid, err := Parse(name)
	if err != nil {
		log := r.log
		if log == nil {
			log = logger.Global()
		}
		pid = rand.IntN(Max)
		log.Warnw("Cannot derive process id, using random value", "name", name, "pid", pid, "error", err)
	}
	return pid
}

// Parse extracts the number before the first '@' of name, modulo Max.
func Parse(name string) (int, error) {
	idx := strings.IndexByte(name, '@')
	if idx < 1 {
		return 0, errors.ErrInvalidParam.WithMessagef("runtime name %q has no pid prefix", name)
	}
	n, err := strconv.ParseInt(name[:idx], 10, 64)
	if err != nil {
		return 0, errors.ErrInvalidParam.WithCause(err).WithMessagef("runtime name %q has no numeric pid", name)
	}
	return int((n%Max + Max) % Max), nil
}
