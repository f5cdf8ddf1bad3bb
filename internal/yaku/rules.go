package yaku

import (
	"slices"

	"github.com/abhisek/yakustat/internal/meld"
	"github.com/abhisek/yakustat/internal/tile"
)

// Shape predicates shared by both rule families. They read a Set's melds
// only; ordering between categories is the pipelines' business.

func AllChows[T tile.Kind[T]](ms []meld.Meld[T]) bool {
	return All(ms, func(m meld.Meld[T]) bool { return m.Kind.IsChow() })
}

func AllPungs[T tile.Kind[T]](ms []meld.Meld[T]) bool {
	return All(ms, func(m meld.Meld[T]) bool { return m.Kind.IsPung() })
}

// ConcealedPung reports a pung or kong that was not revealed.
func ConcealedPung[T tile.Kind[T]](m meld.Meld[T]) bool {
	return m.Kind.IsPung() && m.Kind.IsConcealed()
}

// SuitedPung reports a pung or kong of a suited tile.
func SuitedPung[T tile.Kind[T]](m meld.Meld[T]) bool {
	return m.Kind.IsPung() && !m.Head.IsHonor()
}

// HeadsIn counts pungs whose tile satisfies f.
func HeadsIn[T tile.Kind[T]](ms []meld.Meld[T], f func(T) bool) int {
	return Count(ms, func(m meld.Meld[T]) bool { return m.Kind.IsPung() && f(m.Head) })
}

// Kongs counts kongs.
func Kongs[T tile.Kind[T]](ms []meld.Meld[T]) int {
	return Count(ms, func(m meld.Meld[T]) bool { return m.Kind.IsKong() })
}

// SameChow reports two chows on the same head.
func SameChow[T tile.Kind[T]](a, b meld.Meld[T]) bool {
	return a.Kind.IsChow() && b.Kind.IsChow() && a.Head == b.Head
}

// Shifted reports suited pungs of one suit whose ranks form a run, in any
// order.
func Shifted[T tile.Kind[T]](ms ...meld.Meld[T]) bool {
	heads := make([]T, 0, len(ms))
	for _, m := range ms {
		if !SuitedPung(m) {
			return false
		}
		heads = append(heads, m.Head)
	}
	slices.Sort(heads)
	for i := 1; i < len(heads); i++ {
		if !heads[i-1].IsAscending(heads[i]) {
			return false
		}
	}
	return true
}

// MixedSuits reports melds of one shape (all chows or all pungs) with the
// same rank in three or more distinct suits.
func MixedSuits[T tile.Kind[T]](chow bool, ms ...meld.Meld[T]) bool {
	seen := make(map[tile.Color]bool, len(ms))
	for _, m := range ms {
		if m.Kind.IsChow() != chow || m.Head.IsHonor() {
			return false
		}
		if m.Head.Number() != ms[0].Head.Number() || seen[m.Head.Color()] {
			return false
		}
		seen[m.Head.Color()] = true
	}
	return true
}

// Outside classifies how terminal-heavy a set is.
type Outside uint8

const (
	NotOutside Outside = iota
	// OutsideMixed: pair and every meld touch a terminal or honor.
	OutsideMixed
	// OutsidePure: pair and every meld touch a terminal.
	OutsidePure
)

// OutsideLevel reports the strongest outside pattern the set satisfies.
func OutsideLevel[T tile.Kind[T]](s meld.Set[T]) Outside {
	ms := s.Melds()
	if s.Pair.Head.IsTerminal() && All(ms, meld.Meld[T].HasTerminal) {
		return OutsidePure
	}
	if !s.Pair.Head.IsSimple() && All(ms, meld.Meld[T].HasOutside) {
		return OutsideMixed
	}
	return NotOutside
}

// AllSimple reports that no tile of the set is a terminal or honor.
func AllSimple[T tile.Kind[T]](s meld.Set[T]) bool {
	return s.Pair.Head.IsSimple() && All(s.Melds(), meld.Meld[T].IsSimple)
}

// AllHonors reports that every tile of the set is an honor.
func AllHonors[T tile.Kind[T]](s meld.Set[T]) bool {
	return s.Pair.Head.IsHonor() && All(s.Melds(), func(m meld.Meld[T]) bool { return m.Head.IsHonor() })
}

// Flush classifies single-suit hands.
type Flush uint8

const (
	NoFlush Flush = iota
	HalfFlush
	FullFlush
)

// FlushLevel reports whether the set uses one suit, optionally with honors.
// Callers check AllHonors first.
func FlushLevel[T tile.Kind[T]](s meld.Set[T]) Flush {
	ms := s.Melds()
	pc := s.Pair.Head.Color()
	if !s.Pair.Head.IsHonor() && All(ms, func(m meld.Meld[T]) bool { return m.Head.Color() == pc }) {
		return FullFlush
	}

	suit, ok := pc, !s.Pair.Head.IsHonor()
	if !ok {
		for _, m := range ms {
			if !m.Head.IsHonor() {
				suit, ok = m.Head.Color(), true
				break
			}
		}
	}
	if !ok {
		return NoFlush
	}
	if All(ms, func(m meld.Meld[T]) bool { return m.Head.IsHonor() || m.Head.Color() == suit }) {
		return HalfFlush
	}
	return NoFlush
}

// Provenance reports whether the pair and every meld are revealed, or all
// concealed.
func Provenance[T tile.Kind[T]](s meld.Set[T]) (allRevealed, allConcealed bool) {
	ms := s.Melds()
	allRevealed = !s.Pair.Concealed && All(ms, func(m meld.Meld[T]) bool { return !m.Kind.IsConcealed() })
	allConcealed = s.Pair.Concealed && All(ms, func(m meld.Meld[T]) bool { return m.Kind.IsConcealed() })
	return allRevealed, allConcealed
}
