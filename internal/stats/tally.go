// Package stats runs a corpus through an analyzer on a pool of workers and
// aggregates the classified outcomes per hand category.
package stats

import "github.com/abhisek/yakustat/internal/yaku"

// Count is how often one category list was seen.
type Count struct {
	// Patterns is the number of decompositions.
	Patterns uint64
	// Weight is the number of physical deals behind those decompositions.
	Weight Total
}

// Tally maps each distinct category list to its counts. A Tally is owned by
// one goroutine; tallies are combined with Merge.
type Tally struct {
	Hands        map[yaku.List]Count
	Records      int
	Undecomposed int
}

func NewTally() *Tally {
	return &Tally{Hands: make(map[yaku.List]Count)}
}

// Add folds the outcomes of one record.
func (t *Tally) Add(outcomes []yaku.Outcome) {
	t.Records++
	if len(outcomes) == 0 {
		t.Undecomposed++
		return
	}
	for _, o := range outcomes {
		c := t.Hands[o.List]
		c.Patterns++
		c.Weight = c.Weight.Add(o.Weight)
		t.Hands[o.List] = c
	}
}

// Merge adds other into t.
func (t *Tally) Merge(other *Tally) {
	t.Records += other.Records
	t.Undecomposed += other.Undecomposed
	for l, oc := range other.Hands {
		c := t.Hands[l]
		c.Patterns += oc.Patterns
		c.Weight = c.Weight.Plus(oc.Weight)
		t.Hands[l] = c
	}
}
