package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/abhisek/yakustat/internal/stats"
	"github.com/abhisek/yakustat/internal/yaku"
)

// ErrRunNotFound is returned when a run id or prefix matches nothing.
var ErrRunNotFound = errors.New("run not found")

// Run is one analysed corpus with its per-category summary.
type Run struct {
	ID        string
	Sequence  int64
	Variant   string
	Corpus    string
	Reveal    bool
	Workers   int
	StartedAt time.Time
	Duration  time.Duration
	Summary   stats.Summary
}

// RunRepo stores analysis runs.
type RunRepo interface {
	// Save assigns the run an id and sequence number if it has none and
	// stores it with its rows.
	Save(ctx context.Context, run *Run) error

	// Latest returns the most recent run, or nil if none exist.
	Latest(ctx context.Context) (*Run, error)

	// Get returns the run whose id is or starts with id.
	Get(ctx context.Context, id string) (*Run, error)

	// List returns up to limit runs, newest first, without their rows.
	List(ctx context.Context, limit int) ([]*Run, error)
}

type runRepo struct {
	drv *entsql.Driver
	seq *sequenceCounter
}

var runColumns = []string{
	"id", "sequence", "variant", "corpus", "reveal", "workers", "records",
	"undecomposed", "patterns", "combinations", "score_sum", "started_at_ms", "duration_ms",
}

func sqlite() *entsql.DialectBuilder { return entsql.Dialect(dialect.SQLite) }

func (r *runRepo) Save(ctx context.Context, run *Run) (err error) {
	if run.ID == "" {
		run.ID = uuid.NewString()
	}
	if run.Sequence == 0 {
		if run.Sequence, err = r.seq.Next(ctx); err != nil {
			return err
		}
	}

	tx, err := r.drv.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin run tx: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	s := run.Summary
	q, args := sqlite().Insert("runs").
		Columns(runColumns...).
		Values(run.ID, run.Sequence, run.Variant, run.Corpus, run.Reveal, run.Workers, s.Records,
			s.Undecomposed, int64(s.Patterns), s.Combinations.String(), s.ScoreSum.String(),
			run.StartedAt.UnixMilli(), run.Duration.Milliseconds()).
		Query()
	if err = tx.Exec(ctx, q, args, nil); err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	if len(s.Rows) > 0 {
		ins := sqlite().Insert("run_hands").Columns("run_id", "hand", "patterns", "combinations", "score_sum")
		for _, row := range s.Rows {
			ins.Values(run.ID, int(row.Hand), int64(row.Patterns), row.Combinations.String(), row.ScoreSum.String())
		}
		q, args = ins.Query()
		if err = tx.Exec(ctx, q, args, nil); err != nil {
			return fmt.Errorf("insert run rows: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit run: %w", err)
	}
	return nil
}

func (r *runRepo) Latest(ctx context.Context) (*Run, error) {
	runs, err := r.query(ctx, func(s *entsql.Selector) { s.Limit(1) })
	if err != nil {
		return nil, err
	}
	if len(runs) == 0 {
		return nil, nil
	}
	return runs[0], r.loadRows(ctx, runs[0])
}

func (r *runRepo) Get(ctx context.Context, id string) (*Run, error) {
	runs, err := r.query(ctx, func(s *entsql.Selector) {
		s.Where(entsql.HasPrefix("id", id)).Limit(2)
	})
	if err != nil {
		return nil, err
	}
	switch len(runs) {
	case 0:
		return nil, fmt.Errorf("%w: %s", ErrRunNotFound, id)
	case 1:
		return runs[0], r.loadRows(ctx, runs[0])
	default:
		return nil, fmt.Errorf("run id prefix %q is ambiguous", id)
	}
}

func (r *runRepo) List(ctx context.Context, limit int) ([]*Run, error) {
	return r.query(ctx, func(s *entsql.Selector) {
		if limit > 0 {
			s.Limit(limit)
		}
	})
}

func (r *runRepo) query(ctx context.Context, mod func(*entsql.Selector)) ([]*Run, error) {
	b := sqlite()
	sel := b.Select(runColumns...).From(b.Table("runs")).OrderBy(entsql.Desc("sequence"))
	mod(sel)
	q, args := sel.Query()

	var rows entsql.Rows
	if err := r.drv.Query(ctx, q, args, &rows); err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var out []*Run
	for rows.Next() {
		var (
			run                    Run
			patterns               int64
			combinations, scoreSum string
			startedMs, durationMs  int64
		)
		err := rows.Scan(&run.ID, &run.Sequence, &run.Variant, &run.Corpus, &run.Reveal, &run.Workers,
			&run.Summary.Records, &run.Summary.Undecomposed, &patterns, &combinations, &scoreSum,
			&startedMs, &durationMs)
		if err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		run.Summary.Patterns = uint64(patterns)
		if run.Summary.Combinations, err = stats.ParseTotal(combinations); err != nil {
			return nil, fmt.Errorf("run %s combinations: %w", run.ID, err)
		}
		if run.Summary.ScoreSum, err = stats.ParseTotal(scoreSum); err != nil {
			return nil, fmt.Errorf("run %s score sum: %w", run.ID, err)
		}
		run.StartedAt = time.UnixMilli(startedMs)
		run.Duration = time.Duration(durationMs) * time.Millisecond
		out = append(out, &run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return out, nil
}

func (r *runRepo) loadRows(ctx context.Context, run *Run) error {
	b := sqlite()
	q, args := b.Select("hand", "patterns", "combinations", "score_sum").
		From(b.Table("run_hands")).
		Where(entsql.EQ("run_id", run.ID)).
		OrderBy("hand").
		Query()

	var rows entsql.Rows
	if err := r.drv.Query(ctx, q, args, &rows); err != nil {
		return fmt.Errorf("query run rows: %w", err)
	}
	defer rows.Close()

	run.Summary.Rows = run.Summary.Rows[:0]
	for rows.Next() {
		var (
			row                    stats.Row
			hand                   int
			patterns               int64
			combinations, scoreSum string
		)
		if err := rows.Scan(&hand, &patterns, &combinations, &scoreSum); err != nil {
			return fmt.Errorf("scan run row: %w", err)
		}
		row.Hand = yaku.Hand(hand)
		row.Patterns = uint64(patterns)
		var err error
		if row.Combinations, err = stats.ParseTotal(combinations); err != nil {
			return fmt.Errorf("run %s hand %d combinations: %w", run.ID, hand, err)
		}
		if row.ScoreSum, err = stats.ParseTotal(scoreSum); err != nil {
			return fmt.Errorf("run %s hand %d score sum: %w", run.ID, hand, err)
		}
		run.Summary.Rows = append(run.Summary.Rows, row)
	}
	return rows.Err()
}
