// Package engine ties a tile family's rules to the generic pipeline:
// decode a record, decompose it, optionally expand provenance, classify.
package engine

import (
	"errors"
	"fmt"
	"slices"

	"github.com/abhisek/yakustat/internal/corpus"
	"github.com/abhisek/yakustat/internal/decompose"
	"github.com/abhisek/yakustat/internal/meld"
	"github.com/abhisek/yakustat/internal/reveal"
	"github.com/abhisek/yakustat/internal/stats"
	"github.com/abhisek/yakustat/internal/tile"
	"github.com/abhisek/yakustat/internal/yaku"
)

var (
	// ErrSeatWind reports a seat wind code that does not name a wind tile.
	ErrSeatWind = errors.New("seat wind must be a wind tile")
	// ErrRecordSize reports a record whose length is not the family's hand size.
	ErrRecordSize = errors.New("record has the wrong number of tiles")
)

// Rules describes one tile family.
type Rules[T tile.Kind[T]] struct {
	Family      string
	Arity       int
	Codec       *tile.Codec[T]
	Table       *yaku.Catalogue
	DefaultWind T
	// Classify maps a decomposition to its categories. provenance is true
	// for sets produced by reveal expansion.
	Classify func(s meld.Set[T], provenance bool) yaku.List
}

func (r *Rules[T]) Name() string { return r.Family }

// RecordSize is the number of tiles in a hand.
func (r *Rules[T]) RecordSize() int { return 2 + 3*r.Arity }

func (r *Rules[T]) Catalogue() *yaku.Catalogue { return r.Table }

// SeatWind resolves a corpus code to the seat wind tile.
func (r *Rules[T]) SeatWind(code byte) (T, error) {
	if code == 0 {
		return r.DefaultWind, nil
	}
	t, err := r.Codec.Decode(code, 0)
	if err != nil {
		return t, fmt.Errorf("%w: %w", ErrSeatWind, err)
	}
	if !t.IsWind() {
		return t, fmt.Errorf("%w: %v", ErrSeatWind, t)
	}
	return t, nil
}

// NewAnalyzer returns an analyzer for one goroutine.
func (r *Rules[T]) NewAnalyzer(opts yaku.Options) (stats.Analyzer, error) {
	return r.analyzer(opts)
}

func (r *Rules[T]) analyzer(opts yaku.Options) (*Analyzer[T], error) {
	wind, err := r.SeatWind(opts.SeatWind)
	if err != nil {
		return nil, err
	}
	return &Analyzer[T]{
		rules:  r,
		wind:   wind,
		reveal: opts.Reveal,
		tiles:  make([]T, 0, r.RecordSize()),
	}, nil
}

// Analyzer holds per-worker scratch space. It is not safe for concurrent use.
type Analyzer[T tile.Kind[T]] struct {
	rules  *Rules[T]
	wind   T
	reveal bool
	tiles  []T
	counts []int
	out    []yaku.Outcome
}

// Analyze classifies every decomposition of record. The returned slice is
// reused by the next call.
func (a *Analyzer[T]) Analyze(record []byte) ([]yaku.Outcome, error) {
	sets, weight, err := a.decompose(record)
	if err != nil {
		return nil, err
	}
	a.out = a.out[:0]
	for _, s := range sets {
		if !a.reveal {
			a.out = append(a.out, yaku.Outcome{List: a.rules.Classify(s, false), Weight: weight})
			continue
		}
		for _, v := range reveal.Expand(s) {
			a.out = append(a.out, yaku.Outcome{
				List:   a.rules.Classify(v.Set, true),
				Weight: weight * v.Factor,
			})
		}
	}
	return a.out, nil
}

func (a *Analyzer[T]) decompose(record []byte) ([]meld.Set[T], uint64, error) {
	if len(record) != a.rules.RecordSize() {
		return nil, 0, fmt.Errorf("%w: got %d, want %d", ErrRecordSize, len(record), a.rules.RecordSize())
	}
	tiles, err := a.rules.Codec.DecodeAll(a.tiles, record)
	if err != nil {
		return nil, 0, err
	}
	a.tiles = tiles
	slices.Sort(tiles)

	a.counts = corpus.Counts(a.counts, tiles, len(a.rules.Codec.Kinds()))
	weight, err := corpus.Weight(a.counts)
	if err != nil {
		return nil, 0, err
	}
	return decompose.Decompose(tiles, a.rules.Arity, a.wind), weight, nil
}

// Explain analyses a single record and renders each classified
// decomposition.
func (r *Rules[T]) Explain(record []byte, opts yaku.Options) ([]yaku.Explanation, error) {
	a, err := r.analyzer(opts)
	if err != nil {
		return nil, err
	}
	sets, weight, err := a.decompose(record)
	if err != nil {
		return nil, err
	}

	var out []yaku.Explanation
	add := func(s meld.Set[T], w uint64) {
		l := r.Classify(s, opts.Reveal)
		out = append(out, yaku.Explanation{
			Outcome: yaku.Outcome{List: l, Weight: w},
			Set:     s.String(),
			Score:   r.Table.Score(l),
		})
	}
	for _, s := range sets {
		if !opts.Reveal {
			add(s, weight)
			continue
		}
		for _, v := range reveal.Expand(s) {
			add(v.Set, weight*v.Factor)
		}
	}
	return out, nil
}

// Generate enumerates hands of the given shapes as corpus records.
func (r *Rules[T]) Generate(shapes []corpus.Shape) ([][]byte, error) {
	var out [][]byte
	for _, sh := range shapes {
		hands, err := corpus.Generate(sh, r.Codec.Kinds(), r.Arity)
		if err != nil {
			return nil, fmt.Errorf("generate %s: %w", sh, err)
		}
		for _, h := range hands {
			out = append(out, r.Codec.EncodeAll(make([]byte, 0, len(h)), h))
		}
	}
	return out, nil
}
