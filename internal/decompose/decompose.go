// Package decompose enumerates every way a sorted winning hand splits into
// one pair plus N melds.
//
// The search is staged rather than exhaustive: at each stage the lowest
// remaining tile must start the next meld, so only a pung of it and the
// first chow that can start from it are tried. Everything the search
// produces is canonicalised and deduplicated before it is returned.
package decompose

import (
	"fmt"
	"slices"

	"github.com/abhisek/yakustat/internal/meld"
	"github.com/abhisek/yakustat/internal/tile"
)

// Decompose returns every distinct decomposition of tiles under the given
// seat wind. tiles must be sorted and hold 2+3*arity tiles; either violation
// is a caller bug and panics. A hand that does not decompose yields nil.
func Decompose[T tile.Kind[T]](tiles []T, arity int, wind T) []meld.Set[T] {
	if len(tiles) != 2+3*arity {
		panic(fmt.Sprintf("decompose: %d tiles for %d melds", len(tiles), arity))
	}
	if !slices.IsSorted(tiles) {
		panic("decompose: tiles are not sorted")
	}

	seen := make(map[meld.Set[T]]struct{})
	var out []meld.Set[T]
	emit := func(s meld.Set[T]) {
		s = s.Canonical()
		if _, ok := seen[s]; ok {
			return
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}

	base := meld.NewBuilder(arity, wind)
	rest := make([]T, 0, len(tiles)-2)
	for _, i := range pairCandidates(tiles) {
		rest = rest[:0]
		rest = append(rest, tiles[:i]...)
		rest = append(rest, tiles[i+2:]...)
		b := base.WithPair(meld.Pair[T]{Head: tiles[i], Concealed: true})
		extract(rest, b, emit)
	}

	slices.SortFunc(out, meld.Compare[T])
	return out
}

// pairCandidates returns one start index per tile kind that occurs at least
// twice: the last window of two equal tiles, which is the one not also the
// start of three equal tiles.
func pairCandidates[T comparable](tiles []T) []int {
	var idx []int
	for i := 0; i+1 < len(tiles); i++ {
		if tiles[i] != tiles[i+1] {
			continue
		}
		if i+2 < len(tiles) && tiles[i+2] == tiles[i] {
			continue
		}
		idx = append(idx, i)
	}
	return idx
}

// extract consumes rest, which is sorted and a multiple of three long,
// meld by meld.
func extract[T tile.Kind[T]](rest []T, b meld.Builder[T], emit func(meld.Set[T])) {
	if len(rest) == 3 {
		m, ok := lastMeld(rest)
		if !ok {
			return
		}
		emit(mustMeld(b, m).MustBuild())
		return
	}

	if rest[0] == rest[1] && rest[1] == rest[2] {
		extract(rest[3:], mustMeld(b, meld.Pung(rest[0])), emit)
	}

	if i, j, ok := firstChow(rest); ok {
		next := make([]T, 0, len(rest)-3)
		for k, t := range rest {
			if k != 0 && k != i && k != j {
				next = append(next, t)
			}
		}
		extract(next, mustMeld(b, meld.Chow(rest[0])), emit)
	}
}

// lastMeld classifies the final three tiles, chow first.
func lastMeld[T tile.Kind[T]](rest []T) (meld.Meld[T], bool) {
	if rest[0].IsAscending(rest[1]) && rest[1].IsAscending(rest[2]) {
		return meld.Chow(rest[0]), true
	}
	if rest[0] == rest[1] && rest[1] == rest[2] {
		return meld.Pung(rest[0]), true
	}
	return meld.Meld[T]{}, false
}

// firstChow scans the whitelist for len(rest) and returns the first pair of
// indexes that extend rest[0] into an ascending run.
func firstChow[T tile.Kind[T]](rest []T) (int, int, bool) {
	for _, w := range whitelist(len(rest)) {
		if rest[0].IsAscending(rest[w[0]]) && rest[w[0]].IsAscending(rest[w[1]]) {
			return w[0], w[1], true
		}
	}
	return 0, 0, false
}

func mustMeld[T tile.Kind[T]](b meld.Builder[T], m meld.Meld[T]) meld.Builder[T] {
	b, err := b.WithMeld(m)
	if err != nil {
		panic(fmt.Sprintf("decompose: %v", err))
	}
	return b
}
