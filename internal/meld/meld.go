// Package meld holds the value types a decomposition is made of: melds,
// the pair, and the complete Set produced by a validating Builder.
package meld

import (
	"fmt"

	"github.com/abhisek/yakustat/internal/tile"
)

// MaxMelds is the largest meld count any supported family uses.
const MaxMelds = 4

// Kind is the shape and provenance of a meld.
type Kind uint8

const (
	RevealedChow Kind = iota
	RevealedPung
	RevealedKong
	ConcealedChow
	ConcealedPung
	ConcealedKong
)

var kindNames = [...]string{
	RevealedChow:  "revealed chow",
	RevealedPung:  "revealed pung",
	RevealedKong:  "revealed kong",
	ConcealedChow: "concealed chow",
	ConcealedPung: "concealed pung",
	ConcealedKong: "concealed kong",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

func (k Kind) IsChow() bool { return k == RevealedChow || k == ConcealedChow }

// IsPung is true for pungs and kongs alike.
func (k Kind) IsPung() bool { return !k.IsChow() }

func (k Kind) IsKong() bool { return k == RevealedKong || k == ConcealedKong }

func (k Kind) IsConcealed() bool { return k >= ConcealedChow }

// Meld is a chow (three ascending same-suit tiles starting at Head) or a
// pung/kong of Head.
type Meld[T tile.Kind[T]] struct {
	Head T
	Kind Kind
}

func Chow[T tile.Kind[T]](head T) Meld[T] { return Meld[T]{Head: head, Kind: ConcealedChow} }

func Pung[T tile.Kind[T]](head T) Meld[T] { return Meld[T]{Head: head, Kind: ConcealedPung} }

// Valid reports whether a chow head can start an ascending run of three.
// Pungs and kongs are always valid.
func (m Meld[T]) Valid() bool {
	if !m.Kind.IsChow() {
		return true
	}
	return m.Head.IsAscending(m.Head+1) && (m.Head + 1).IsAscending(m.Head+2)
}

// Tiles returns the tiles the meld contributes to a hand. A kong counts four.
func (m Meld[T]) Tiles() []T {
	switch {
	case m.Kind.IsChow():
		return []T{m.Head, m.Head + 1, m.Head + 2}
	case m.Kind.IsKong():
		return []T{m.Head, m.Head, m.Head, m.Head}
	default:
		return []T{m.Head, m.Head, m.Head}
	}
}

// IsSimple reports whether no tile of the meld is a terminal or honor.
func (m Meld[T]) IsSimple() bool {
	if m.Kind.IsChow() {
		n := m.Head.Number()
		return n != 1 && n != m.Head.MaxRank()-2
	}
	return m.Head.IsSimple()
}

// HasTerminal reports whether the meld contains a rank-1 or top-rank tile.
func (m Meld[T]) HasTerminal() bool {
	if m.Kind.IsChow() {
		return !m.IsSimple()
	}
	return m.Head.IsTerminal()
}

// HasOutside reports whether the meld contains a terminal or an honor.
func (m Meld[T]) HasOutside() bool {
	if m.Kind.IsChow() {
		return !m.IsSimple()
	}
	return !m.Head.IsSimple()
}

func (m Meld[T]) String() string {
	var s string
	switch {
	case m.Kind.IsChow():
		s = fmt.Sprintf("%v-%v-%v", m.Head, m.Head+1, m.Head+2)
	case m.Kind.IsKong():
		s = fmt.Sprintf("%v×4", m.Head)
	default:
		s = fmt.Sprintf("%v×3", m.Head)
	}
	if !m.Kind.IsConcealed() {
		s += "*"
	}
	return s
}

// Pair is the two identical tiles of a hand.
type Pair[T tile.Kind[T]] struct {
	Head      T
	Concealed bool
}

func (p Pair[T]) String() string {
	s := fmt.Sprintf("%v×2", p.Head)
	if !p.Concealed {
		s += "*"
	}
	return s
}
