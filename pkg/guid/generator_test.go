package guid

import (
	"context"
	"runtime"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VitamPoc/VitamCommon/pkg/infra/pool"
)

func TestGeneratorOptions(t *testing.T) {
	c := NewCounterAt(0)
	gen := NewGenerator(
		WithMachineID([]byte{1, 2, 3}),
		WithProcessID(70000),
		WithCounter(c),
	)

	assert.Equal(t, []byte{1, 2, 3, 0, 0, 0}, gen.MachineID())
	assert.Equal(t, 70000-65536, gen.ProcessID())
	assert.Same(t, c, gen.Counter())

	long := NewGenerator(WithMachineID([]byte{9, 8, 7, 6, 5, 4, 3, 2}), WithProcessID(1))
	assert.Equal(t, []byte{9, 8, 7, 6, 5, 4}, long.MachineID())

	mac := gen.MachineID()
	mac[0] = 0xff
	assert.Equal(t, byte(1), gen.MachineID()[0])
}

func TestGeneratorSharedCounter(t *testing.T) {
	c := NewCounterAt(100)
	a := newTestGenerator(WithCounter(c))
	b := NewGenerator(WithMachineID([]byte{0, 0, 0, 0, 0, 1}), WithProcessID(2), WithCounter(c))

	assert.Equal(t, uint32(101), a.New().Counter())
	assert.Equal(t, uint32(102), b.New().Counter())
	assert.Equal(t, uint32(103), a.New().Counter())
}

func TestDefaultGenerator(t *testing.T) {
	gen := Default()
	require.NotNil(t, gen)
	assert.Same(t, gen, Default())
	assert.Len(t, gen.MachineID(), MachineIDSize)

	id := New()
	assert.Equal(t, gen.ProcessID(), id.ProcessID())
	assert.Len(t, Generate(), Base64Size)

	// Generators without explicit ids share the host identity and counter.
	other := NewGenerator()
	assert.Equal(t, gen.MachineID(), other.MachineID())
	assert.Same(t, gen.Counter(), other.Counter())
}

func TestSetDefault(t *testing.T) {
	prev := Default()
	t.Cleanup(func() { SetDefault(prev) })

	custom := NewGenerator(WithMachineID([]byte{1, 2, 3, 4, 5, 6}), WithProcessID(9), WithCounter(prev.Counter()))
	SetDefault(custom)

	assert.Same(t, custom, Default())
	assert.Equal(t, 9, New().ProcessID())
}

func TestGenerateN(t *testing.T) {
	gen := newTestGenerator()

	ids := gen.GenerateN(10)
	assert.Len(t, ids, 10)
	for _, s := range ids {
		id, err := Parse(s)
		require.NoError(t, err)
		assert.Equal(t, 4448, id.ProcessID())
	}

	assert.Empty(t, gen.NewN(0))
}

func TestUniqueness(t *testing.T) {
	const n = 50000
	gen := newTestGenerator()

	seen := make(map[GUID]struct{}, n)
	text := make(map[string]struct{}, n)
	for _, id := range gen.NewN(n) {
		seen[id] = struct{}{}
		text[id.String()] = struct{}{}
	}
	assert.Len(t, seen, n)
	assert.Len(t, text, n)
}

func TestUniquenessFrozenClock(t *testing.T) {
	const n = 20000
	frozen := time.UnixMilli(1700000000000)
	gen := newTestGenerator(WithTimeFunc(func() time.Time { return frozen }))

	seen := make(map[GUID]struct{}, n)
	for _, id := range gen.NewN(n) {
		seen[id] = struct{}{}
	}
	assert.Len(t, seen, n)
}

func TestConcurrentGeneration(t *testing.T) {
	workers := runtime.NumCPU() + 1
	const perTask = 1000
	tasks := workers * 4

	p, err := pool.NewPool("guid-test", pool.GeneratePool, pool.WorkersConfig(workers))
	require.NoError(t, err)
	defer p.Release()

	gen := newTestGenerator()
	results := make([][]GUID, tasks)
	err = p.Fanout(context.Background(), tasks, func(i int) {
		results[i] = gen.NewN(perTask)
	})
	require.NoError(t, err)

	all := make([]GUID, 0, tasks*perTask)
	seen := make(map[GUID]struct{}, tasks*perTask)
	for _, batch := range results {
		require.Len(t, batch, perTask)
		for _, id := range batch {
			seen[id] = struct{}{}
		}
		all = append(all, batch...)
	}
	assert.Len(t, seen, tasks*perTask, "concurrent generation produced duplicates")

	SortChronologically(all)
	for i := 1; i < len(all); i++ {
		if Compare(all[i-1], all[i]) > 0 {
			t.Fatalf("ids %d and %d out of order after sort", i-1, i)
		}
	}
}

func TestConcurrentSharedMap(t *testing.T) {
	gen := newTestGenerator()
	var (
		ids sync.Map
		wg  sync.WaitGroup
	)
	const goroutines, perGoroutine = 8, 2000

	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perGoroutine; i++ {
				if _, loaded := ids.LoadOrStore(gen.New(), struct{}{}); loaded {
					t.Error("duplicate GUID generated")
					return
				}
			}
		}()
	}
	wg.Wait()
}

func BenchmarkNew(b *testing.B) {
	gen := newTestGenerator()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = gen.New()
	}
}

func BenchmarkNewParallel(b *testing.B) {
	gen := newTestGenerator()
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_ = gen.New()
		}
	})
}

func BenchmarkGenerate(b *testing.B) {
	gen := newTestGenerator()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = gen.Generate()
	}
}

func BenchmarkParse(b *testing.B) {
	s := newTestGenerator().Generate()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Parse(s)
	}
}
