package corpus

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"gonum.org/v1/gonum/stat/combin"

	"github.com/abhisek/yakustat/internal/decompose"
	"github.com/abhisek/yakustat/internal/meld"
	"github.com/abhisek/yakustat/internal/tile"
)

// Shape selects which winning shapes a generator emits.
type Shape string

const (
	// Grouped hands are a pair plus melds.
	Grouped Shape = "grouped"
	// SevenPairs hands are seven distinct pairs with no grouped reading.
	SevenPairs Shape = "seven-pairs"
	// Orphans hands hold one of every terminal and honor plus a duplicate.
	Orphans Shape = "orphans"
)

// Shapes lists every shape in generation order.
var Shapes = []Shape{Grouped, SevenPairs, Orphans}

// ErrShapeUnsupported reports a shape that does not exist for a hand size.
var ErrShapeUnsupported = errors.New("corpus: shape not supported for this hand size")

// ParseShapes parses a comma separated list of shape names.
func ParseShapes(s string) ([]Shape, error) {
	var out []Shape
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		sh := Shape(part)
		if !slices.Contains(Shapes, sh) {
			return nil, fmt.Errorf("unknown shape %q", part)
		}
		out = append(out, sh)
	}
	if len(out) == 0 {
		return nil, errors.New("no shapes selected")
	}
	return out, nil
}

// Generate enumerates every distinct sorted hand of the given shape drawn
// from kinds. Results are in lexicographic order.
func Generate[T tile.Kind[T]](shape Shape, kinds []T, arity int) ([][]T, error) {
	switch shape {
	case Grouped:
		return grouped(kinds, arity), nil
	case SevenPairs:
		return sevenPairs(kinds, arity)
	case Orphans:
		return orphans(kinds, arity)
	}
	return nil, fmt.Errorf("unknown shape %q", shape)
}

type dedup[T tile.Kind[T]] struct {
	seen map[string]struct{}
	out  [][]T
	key  []byte
}

func newDedup[T tile.Kind[T]]() *dedup[T] {
	return &dedup[T]{seen: make(map[string]struct{})}
}

func (d *dedup[T]) add(hand []T) {
	d.key = d.key[:0]
	for _, t := range hand {
		d.key = append(d.key, byte(t))
	}
	if _, ok := d.seen[string(d.key)]; ok {
		return
	}
	d.seen[string(d.key)] = struct{}{}
	d.out = append(d.out, slices.Clone(hand))
}

func (d *dedup[T]) sorted() [][]T {
	slices.SortFunc(d.out, func(a, b []T) int { return slices.Compare(a, b) })
	return d.out
}

// grouped walks pair × multisets of arity melds. A multiset of k items from
// n is a k-combination of n+k-1 with the i-th index shifted down by i.
func grouped[T tile.Kind[T]](kinds []T, arity int) [][]T {
	var cands []meld.Meld[T]
	for _, k := range kinds {
		cands = append(cands, meld.Pung(k))
	}
	for _, k := range kinds {
		if c := meld.Chow(k); c.Valid() {
			cands = append(cands, c)
		}
	}

	d := newDedup[T]()
	counts := make(map[T]int, len(kinds))
	hand := make([]T, 0, 2+3*arity)
	idx := make([]int, arity)
	gen := combin.NewCombinationGenerator(len(cands)+arity-1, arity)
	for gen.Next() {
		gen.Combination(idx)
		for _, pair := range kinds {
			clear(counts)
			hand = append(hand[:0], pair, pair)
			for i, c := range idx {
				hand = append(hand, cands[c-i].Tiles()...)
			}
			if overfull(counts, hand) {
				continue
			}
			slices.Sort(hand)
			d.add(hand)
		}
	}
	return d.sorted()
}

func overfull[T comparable](counts map[T]int, hand []T) bool {
	for _, t := range hand {
		counts[t]++
		if counts[t] > Copies {
			return true
		}
	}
	return false
}

func sevenPairs[T tile.Kind[T]](kinds []T, arity int) ([][]T, error) {
	const pairs = 7
	if 2+3*arity != 2*pairs || len(kinds) < pairs {
		return nil, ErrShapeUnsupported
	}

	d := newDedup[T]()
	hand := make([]T, 0, 2*pairs)
	idx := make([]int, pairs)
	gen := combin.NewCombinationGenerator(len(kinds), pairs)
	for gen.Next() {
		gen.Combination(idx)
		hand = hand[:0]
		for _, i := range idx {
			hand = append(hand, kinds[i], kinds[i])
		}
		slices.Sort(hand)
		if len(decompose.Decompose(hand, arity, kinds[0])) > 0 {
			continue
		}
		d.add(hand)
	}
	return d.sorted(), nil
}

func orphans[T tile.Kind[T]](kinds []T, arity int) ([][]T, error) {
	var outside []T
	for _, k := range kinds {
		if !k.IsSimple() {
			outside = append(outside, k)
		}
	}
	if len(outside)+1 != 2+3*arity {
		return nil, ErrShapeUnsupported
	}

	d := newDedup[T]()
	for _, extra := range outside {
		hand := append(slices.Clone(outside), extra)
		slices.Sort(hand)
		d.add(hand)
	}
	return d.sorted(), nil
}
