package guidctl

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"text/tabwriter"
	"time"

	"github.com/kart-io/logger"
	"github.com/spf13/cobra"

	"github.com/VitamPoc/VitamCommon/pkg/id"
	"github.com/VitamPoc/VitamCommon/pkg/infra/pool"
)

const benchChunk = 1024

// BenchResult is the measurement for one scheme.
type BenchResult struct {
	Scheme     string        `json:"scheme"`
	Count      int           `json:"count"`
	Workers    int           `json:"workers"`
	Elapsed    time.Duration `json:"elapsed_ns"`
	PerSecond  float64       `json:"per_second"`
	Duplicates int64         `json:"duplicates"`
	Checked    bool          `json:"checked"`
	Tasks      pool.Stats    `json:"tasks"`
}

// Bench generates n identifiers with gen, split into chunks across
// workers. With check set every identifier is tracked and duplicates are
// counted.
func Bench(ctx context.Context, scheme string, gen id.Generator, n, workers int, check bool) (BenchResult, error) {
	if n <= 0 {
		return BenchResult{}, ErrInvalidCount.WithMessagef("count must be positive, got %d", n)
	}
	workers = max(workers, 1)

	p, err := pool.NewPool("bench-"+scheme, pool.BenchPool, pool.WorkersConfig(workers))
	if err != nil {
		return BenchResult{}, err
	}
	defer p.Release()

	var (
		seen sync.Map
		dups atomic.Int64
	)
	chunks := (n + benchChunk - 1) / benchChunk

	start := time.Now()
	err = p.Fanout(ctx, chunks, func(i int) {
		size := min(benchChunk, n-i*benchChunk)
		ids := gen.GenerateN(size)
		if !check {
			return
		}
		for _, s := range ids {
			if _, loaded := seen.LoadOrStore(s, struct{}{}); loaded {
				dups.Add(1)
			}
		}
	})
	elapsed := time.Since(start)
	if err != nil {
		return BenchResult{}, err
	}
	stats := p.Stats()
	logger.Debugw("Bench finished",
		"pool", p.Name(),
		"type", p.Type(),
		"submitted", stats.SubmittedTasks,
		"elapsed", elapsed.String(),
	)

	return BenchResult{
		Scheme:     scheme,
		Count:      n,
		Workers:    p.Cap(),
		Elapsed:    elapsed,
		PerSecond:  float64(n) / elapsed.Seconds(),
		Duplicates: dups.Load(),
		Checked:    check,
		Tasks:      stats,
	}, nil
}

type benchOptions struct {
	count   int
	workers int
	schemes string
	check   bool
	jsonOut bool
}

func newBenchCommand(env *Env) *cobra.Command {
	o := &benchOptions{count: 100000, workers: 4, schemes: string(id.TypeGUID)}
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Measure generation throughput",
		Example: `  guidctl bench -n 1000000 --workers 8 --check
  guidctl bench --schemes guid,uuidv7,ulid,ksuid`,
		Args: cobra.NoArgs,
		RunE: env.Run(func(cmd *cobra.Command, _ []string) error {
			return runBench(cmd, env, o)
		}),
	}
	cmd.Flags().IntVarP(&o.count, "count", "n", o.count, "Identifiers per scheme")
	cmd.Flags().IntVar(&o.workers, "workers", o.workers, "Concurrent generators")
	cmd.Flags().StringVar(&o.schemes, "schemes", o.schemes, "Comma separated schemes (guid,uuidv7,uuidv4,ulid,ksuid)")
	cmd.Flags().BoolVar(&o.check, "check", false, "Count duplicate identifiers")
	cmd.Flags().BoolVar(&o.jsonOut, "json", false, "Print JSON")
	return cmd
}

func runBench(cmd *cobra.Command, env *Env, o *benchOptions) error {
	types, err := id.ParseTypes(o.schemes)
	if err != nil {
		return err
	}

	results := make([]BenchResult, 0, len(types))
	for _, t := range types {
		var gen id.Generator
		if t == id.TypeGUID {
			gen = id.NewGUIDGenerator(env.Generator())
		} else if gen, err = id.New(t); err != nil {
			return err
		}
		res, err := Bench(cmd.Context(), string(t), gen, o.count, o.workers, o.check)
		if err != nil {
			return err
		}
		results = append(results, res)
	}

	out := cmd.OutOrStdout()
	if o.jsonOut {
		return writeJSON(out, results)
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "SCHEME\tCOUNT\tWORKERS\tTASKS\tELAPSED\tIDS/SEC\tDUPLICATES")
	for _, r := range results {
		dups := "-"
		if r.Checked {
			dups = fmt.Sprint(r.Duplicates)
		}
		_, _ = fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%s\t%.0f\t%s\n",
			r.Scheme, r.Count, r.Workers, r.Tasks.SubmittedTasks, r.Elapsed.Round(time.Microsecond), r.PerSecond, dups)
	}
	return tw.Flush()
}
