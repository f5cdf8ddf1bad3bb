// Package yaku holds what the two rule families share: the hand-category
// bitset, scored catalogues, and the subset and meld predicates the
// classifier pipelines are written with.
package yaku

import (
	"math/bits"
	"strings"
)

// Hand is a category index into a Catalogue.
type Hand uint8

// List is the set of categories a decomposition satisfies.
type List uint64

func (l List) Has(h Hand) bool { return l&(1<<h) != 0 }

func (l *List) Set(h Hand) { *l |= 1 << h }

func (l *List) Clear(h Hand) { *l &^= 1 << h }

// Only reduces the list to h alone.
func (l *List) Only(h Hand) { *l = 1 << h }

func (l List) Empty() bool { return l == 0 }

func (l List) Len() int { return bits.OnesCount64(uint64(l)) }

// Hands returns the categories in catalogue order.
func (l List) Hands() []Hand {
	out := make([]Hand, 0, l.Len())
	for v := uint64(l); v != 0; v &= v - 1 {
		out = append(out, Hand(bits.TrailingZeros64(v)))
	}
	return out
}

// Format renders the list with the catalogue's names.
func (l List) Format(c *Catalogue) string {
	hands := l.Hands()
	names := make([]string, len(hands))
	for i, h := range hands {
		names[i] = c.Category(h).Name
	}
	return strings.Join(names, ", ")
}
