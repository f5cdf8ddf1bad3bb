package meld

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/abhisek/yakustat/internal/tile"
)

var (
	ErrMeldsFull   = errors.New("meld: set already holds all of its melds")
	ErrNoPair      = errors.New("meld: set has no pair")
	ErrIncomplete  = errors.New("meld: set is missing melds")
	ErrInvalidChow = errors.New("meld: chow head cannot start an ascending run")
)

// Set is one complete decomposition: a pair plus exactly Arity melds, with
// the seat wind the hand is evaluated under. Sets are comparable and,
// once canonical, usable as map keys.
type Set[T tile.Kind[T]] struct {
	Pair  Pair[T]
	Wind  T
	melds [MaxMelds]Meld[T]
	n     uint8
}

// Melds returns the melds of the set. The slice aliases a copy of the set.
func (s Set[T]) Melds() []Meld[T] {
	return s.melds[:s.n]
}

// Len returns the number of melds.
func (s Set[T]) Len() int { return int(s.n) }

// Meld returns the i-th meld.
func (s Set[T]) Meld(i int) Meld[T] { return s.melds[i] }

// WithMeld returns a copy of the set with the i-th meld replaced.
func (s Set[T]) WithMeld(i int, m Meld[T]) Set[T] {
	s.melds[i] = m
	return s
}

// WithPair returns a copy of the set with the pair replaced.
func (s Set[T]) WithPair(p Pair[T]) Set[T] {
	s.Pair = p
	return s
}

// Tiles flattens the set back into its tiles, pair first.
func (s Set[T]) Tiles() []T {
	out := make([]T, 0, 2+4*int(s.n))
	out = append(out, s.Pair.Head, s.Pair.Head)
	for _, m := range s.Melds() {
		out = append(out, m.Tiles()...)
	}
	return out
}

// Count returns how many copies of t the set holds.
func (s Set[T]) Count(t T) int {
	c := 0
	for _, x := range s.Tiles() {
		if x == t {
			c++
		}
	}
	return c
}

// Canonical returns the set with its melds ordered by (head, kind).
func (s Set[T]) Canonical() Set[T] {
	slices.SortFunc(s.melds[:s.n], compareMelds[T])
	return s
}

func compareMelds[T tile.Kind[T]](a, b Meld[T]) int {
	if c := cmp.Compare(a.Head, b.Head); c != 0 {
		return c
	}
	return cmp.Compare(a.Kind, b.Kind)
}

// Compare orders canonical sets by pair then melds.
func Compare[T tile.Kind[T]](a, b Set[T]) int {
	if c := cmp.Compare(a.Pair.Head, b.Pair.Head); c != 0 {
		return c
	}
	for i := 0; i < int(min(a.n, b.n)); i++ {
		if c := compareMelds(a.melds[i], b.melds[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(a.n, b.n)
}

func (s Set[T]) String() string {
	parts := make([]string, 0, 1+s.n)
	parts = append(parts, s.Pair.String())
	for _, m := range s.Melds() {
		parts = append(parts, m.String())
	}
	return strings.Join(parts, " ")
}

// Builder accumulates a Set. It is a value type: copying a Builder forks
// the partial decomposition, which is how the search branches.
type Builder[T tile.Kind[T]] struct {
	set     Set[T]
	arity   uint8
	hasPair bool
}

// NewBuilder starts a set that needs arity melds. It panics for an arity
// outside 1..MaxMelds.
func NewBuilder[T tile.Kind[T]](arity int, wind T) Builder[T] {
	if arity < 1 || arity > MaxMelds {
		panic(fmt.Sprintf("meld: arity %d out of range", arity))
	}
	return Builder[T]{set: Set[T]{Wind: wind}, arity: uint8(arity)}
}

// WithPair sets the pair, replacing any previous one.
func (b Builder[T]) WithPair(p Pair[T]) Builder[T] {
	b.set.Pair = p
	b.hasPair = true
	return b
}

// WithMeld appends a meld.
func (b Builder[T]) WithMeld(m Meld[T]) (Builder[T], error) {
	if b.set.n >= b.arity {
		return b, ErrMeldsFull
	}
	if !m.Valid() {
		return b, fmt.Errorf("%w: %v", ErrInvalidChow, m.Head)
	}
	b.set.melds[b.set.n] = m
	b.set.n++
	return b, nil
}

// Remaining reports how many melds are still missing.
func (b Builder[T]) Remaining() int {
	return int(b.arity - b.set.n)
}

// Build returns the finished set.
func (b Builder[T]) Build() (Set[T], error) {
	if !b.hasPair {
		return Set[T]{}, ErrNoPair
	}
	if b.set.n != b.arity {
		return Set[T]{}, ErrIncomplete
	}
	return b.set, nil
}

// MustBuild is Build for callers that have already established the
// invariants. It panics on error.
func (b Builder[T]) MustBuild() Set[T] {
	s, err := b.Build()
	if err != nil {
		panic(err)
	}
	return s
}
