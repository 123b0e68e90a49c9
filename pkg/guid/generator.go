package guid

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/VitamPoc/VitamCommon/pkg/machineid"
	"github.com/VitamPoc/VitamCommon/pkg/processid"
)

// Generator creates GUIDs for one machine id and process id.
// It is safe for concurrent use; the only shared state is its Counter.
type Generator struct {
	mac      [MachineIDSize]byte
	pid      uint16
	counter  *Counter
	timeFunc func() time.Time

	hasMAC bool
	hasPID bool
}

// Option is a functional option for Generator.
type Option func(*Generator)

// WithMachineID sets the machine id. Longer values are truncated and
// shorter ones are zero padded to six bytes.
func WithMachineID(id []byte) Option {
	return func(g *Generator) {
		g.mac = [MachineIDSize]byte{}
		copy(g.mac[:], id)
		g.hasMAC = true
	}
}

// WithProcessID sets the process id. Only the low 16 bits are kept.
func WithProcessID(pid int) Option {
	return func(g *Generator) {
		g.pid = uint16(pid)
		g.hasPID = true
	}
}

// WithCounter shares c between generators.
func WithCounter(c *Counter) Option {
	return func(g *Generator) {
		g.counter = c
	}
}

// WithTimeFunc sets a custom time function (for testing).
func WithTimeFunc(f func() time.Time) Option {
	return func(g *Generator) {
		g.timeFunc = f
	}
}

// NewGenerator creates a Generator. Machine and process ids that are not
// supplied are resolved from the host once per process.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		timeFunc: time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}

	if !g.hasMAC || !g.hasPID {
		mac, pid := hostIdentity()
		if !g.hasMAC {
			copy(g.mac[:], mac)
		}
		if !g.hasPID {
			g.pid = uint16(pid)
		}
	}
	if g.counter == nil {
		g.counter = sharedCounter()
	}
	return g
}

// New creates a GUID stamped with the current time and the next counter value.
func (g *Generator) New() GUID {
	ms := g.timeFunc().UnixMilli()
	count := g.counter.Next()

	var id GUID
	id[0], id[1], id[2] = packCounter(count)
	id[3] = byte(g.pid >> 8)
	id[4] = byte(g.pid)
	id[5] = versionBits | g.mac[0]&0x0F
	copy(id[6:11], g.mac[1:])
	for i := Size - 1; i >= 11; i-- {
		id[i] = byte(ms)
		ms >>= 8
	}
	return id
}

// New128 creates a GUID that converts to and from the 128-bit form
// without loss: the machine id nibble in byte 5 and the timestamp's top
// byte are cleared.
func (g *Generator) New128() GUID {
	id := g.New()
	id[5] = versionBits
	id[11] = 0
	return id
}

// NewN creates n GUIDs.
func (g *Generator) NewN(n int) []GUID {
	ids := make([]GUID, n)
	for i := range ids {
		ids[i] = g.New()
	}
	return ids
}

// Generate creates a new GUID in base64 text form.
func (g *Generator) Generate() string {
	return g.New().String()
}

// GenerateN creates n GUIDs in base64 text form.
func (g *Generator) GenerateN(n int) []string {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = g.Generate()
	}
	return ids
}

// MachineID returns a copy of the machine id.
func (g *Generator) MachineID() []byte {
	return append([]byte(nil), g.mac[:]...)
}

// ProcessID returns the process id.
func (g *Generator) ProcessID() int {
	return int(g.pid)
}

// Counter returns the generator's counter.
func (g *Generator) Counter() *Counter {
	return g.counter
}

var (
	hostOnce sync.Once
	hostMAC  []byte
	hostPID  int

	counterOnce sync.Once
	counter     *Counter

	defaultGenerator atomic.Pointer[Generator]
)

func hostIdentity() ([]byte, int) {
	hostOnce.Do(func() {
		hostMAC = machineid.Resolve().ID
		hostPID = processid.Resolve()
	})
	return hostMAC, hostPID
}

func sharedCounter() *Counter {
	counterOnce.Do(func() {
		counter = NewCounter()
	})
	return counter
}

// Default returns the process-wide generator. Unless SetDefault was
// called, it is built on first use from the host's identity.
func Default() *Generator {
	if g := defaultGenerator.Load(); g != nil {
		return g
	}
	defaultGenerator.CompareAndSwap(nil, NewGenerator())
	return defaultGenerator.Load()
}

// SetDefault replaces the process-wide generator, for example with one
// built from a configured machine id. Generators that should keep the
// uniqueness guarantee must share the counter of the one they replace.
func SetDefault(g *Generator) {
	defaultGenerator.Store(g)
}

// New creates a GUID with the default generator.
func New() GUID {
	return Default().New()
}

// Generate creates a base64 GUID with the default generator.
func Generate() string {
	return Default().Generate()
}
