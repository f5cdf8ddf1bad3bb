// Package reveal expands a fully concealed decomposition into every
// provenance it could have had at the table: each meld called from a
// discard or drawn, and each eligible pung promoted to a kong.
package reveal

import (
	"github.com/abhisek/yakustat/internal/meld"
	"github.com/abhisek/yakustat/internal/tile"
)

// Relative frequencies of each provenance among real deals.
const (
	ConcealedPairFactor = 31
	RevealedPairFactor  = 1
)

var meldFactor = [...]uint64{
	meld.RevealedChow:  16,
	meld.RevealedPung:  21,
	meld.RevealedKong:  3,
	meld.ConcealedChow: 16,
	meld.ConcealedPung: 7,
	meld.ConcealedKong: 1,
}

// Factor returns the occurrence multiplier of a meld kind.
func Factor(k meld.Kind) uint64 {
	return meldFactor[k]
}

// Variant is one expanded decomposition and its occurrence multiplier.
type Variant[T tile.Kind[T]] struct {
	Set    meld.Set[T]
	Factor uint64
}

// Expand returns every provenance variant of s. A pung can become a kong
// only when the hand holds exactly three of its tile, leaving the fourth
// copy free.
func Expand[T tile.Kind[T]](s meld.Set[T]) []Variant[T] {
	alts := make([][]meld.Kind, s.Len())
	size := 2
	for i, m := range s.Melds() {
		alts[i] = alternatives(s, m)
		size *= len(alts[i])
	}

	out := make([]Variant[T], 0, size)
	for _, concealed := range []bool{true, false} {
		base := s.WithPair(meld.Pair[T]{Head: s.Pair.Head, Concealed: concealed})
		factor := uint64(RevealedPairFactor)
		if concealed {
			factor = ConcealedPairFactor
		}
		out = expandMelds(out, base, factor, alts, 0)
	}
	return out
}

func expandMelds[T tile.Kind[T]](out []Variant[T], s meld.Set[T], factor uint64, alts [][]meld.Kind, i int) []Variant[T] {
	if i == len(alts) {
		return append(out, Variant[T]{Set: s.Canonical(), Factor: factor})
	}
	for _, k := range alts[i] {
		m := s.Meld(i)
		m.Kind = k
		out = expandMelds(out, s.WithMeld(i, m), factor*Factor(k), alts, i+1)
	}
	return out
}

func alternatives[T tile.Kind[T]](s meld.Set[T], m meld.Meld[T]) []meld.Kind {
	if m.Kind.IsChow() {
		return []meld.Kind{meld.ConcealedChow, meld.RevealedChow}
	}
	if s.Count(m.Head) == 3 {
		return []meld.Kind{meld.ConcealedPung, meld.RevealedPung, meld.ConcealedKong, meld.RevealedKong}
	}
	return []meld.Kind{meld.ConcealedPung, meld.RevealedPung}
}
