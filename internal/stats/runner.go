package stats

import (
	"context"
	"fmt"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/abhisek/yakustat/internal/corpus"
	"github.com/abhisek/yakustat/internal/yaku"
)

// Analyzer classifies one record. Implementations may reuse the returned
// slice between calls and need not be safe for concurrent use.
type Analyzer interface {
	Analyze(record []byte) ([]yaku.Outcome, error)
}

// RecordError attributes an analysis failure to a record.
type RecordError struct {
	Index int
	Err   error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("record %d: %v", e.Index, e.Err)
}

func (e *RecordError) Unwrap() error { return e.Err }

// Runner fans a corpus out to workers, each with its own Analyzer and
// Tally, and merges the tallies once every worker is done.
type Runner struct {
	// NewAnalyzer is called once per worker.
	NewAnalyzer func() (Analyzer, error)
	// Workers defaults to the number of CPUs.
	Workers int
	Logger  *log.Logger
	// Progress, if set, is called with the number of finished records at
	// most once per ProgressEvery records per worker.
	Progress      func(done, total int)
	ProgressEvery int
}

// Run analyses every record. The first failing record cancels the run and
// no partial tally is returned.
func (r *Runner) Run(ctx context.Context, c *corpus.Corpus) (*Tally, error) {
	workers := r.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	total := c.Len()
	if workers > total {
		workers = max(total, 1)
	}
	every := r.ProgressEvery
	if every <= 0 {
		every = 10000
	}

	start := time.Now()
	r.logger().Debug("run started", "records", total, "workers", workers)

	tallies := make([]*Tally, workers)
	var done atomic.Int64
	g, ctx := errgroup.WithContext(ctx)
	chunk := (total + workers - 1) / workers
	for w := 0; w < workers; w++ {
		lo, hi := w*chunk, min((w+1)*chunk, total)
		tallies[w] = NewTally()
		t := tallies[w]
		g.Go(func() error {
			a, err := r.NewAnalyzer()
			if err != nil {
				return fmt.Errorf("create analyzer: %w", err)
			}
			for i := lo; i < hi; i++ {
				if (i-lo)%every == 0 {
					if err := ctx.Err(); err != nil {
						return err
					}
				}
				out, err := a.Analyze(c.Record(i))
				if err != nil {
					return &RecordError{Index: i, Err: err}
				}
				t.Add(out)
				if n := done.Add(1); r.Progress != nil && n%int64(every) == 0 {
					r.Progress(int(n), total)
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := NewTally()
	for _, t := range tallies {
		merged.Merge(t)
	}
	if r.Progress != nil {
		r.Progress(total, total)
	}
	r.logger().Debug("run finished",
		"records", merged.Records,
		"lists", len(merged.Hands),
		"elapsed", time.Since(start).Round(time.Millisecond))
	return merged, nil
}

func (r *Runner) logger() *log.Logger {
	if r.Logger == nil {
		return log.Default()
	}
	return r.Logger
}
