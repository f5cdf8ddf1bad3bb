package yaku

import "fmt"

// Category is one scored hand type.
type Category struct {
	Name   string
	Local  string
	Weight int
	// Bucket is the category this one is reported under. Most categories
	// report under themselves.
	Bucket Hand
}

// Catalogue is the closed, ordered list of categories of one rule family.
type Catalogue struct {
	Family     string
	categories []Category
	maxScore   int
	noPoint    Hand
}

// Entry declares a category. A zero Bucket with Merge false means the
// category reports under itself.
type Entry struct {
	Hand   Hand
	Name   string
	Local  string
	Weight int
	Merge  bool
	Bucket Hand
}

// NewCatalogue builds a catalogue. Entries must be listed in Hand order
// starting at zero; anything else panics.
func NewCatalogue(family string, maxScore int, noPoint Hand, entries []Entry) *Catalogue {
	if len(entries) > 64 {
		panic(fmt.Sprintf("yaku: %d categories do not fit a List", len(entries)))
	}
	c := &Catalogue{Family: family, maxScore: maxScore, noPoint: noPoint}
	for i, e := range entries {
		if int(e.Hand) != i {
			panic(fmt.Sprintf("yaku: %s declared at position %d", e.Name, i))
		}
		bucket := e.Hand
		if e.Merge {
			bucket = e.Bucket
		}
		c.categories = append(c.categories, Category{
			Name:   e.Name,
			Local:  e.Local,
			Weight: e.Weight,
			Bucket: bucket,
		})
	}
	if int(noPoint) >= len(c.categories) {
		panic("yaku: no-point category out of range")
	}
	return c
}

func (c *Catalogue) Len() int { return len(c.categories) }

func (c *Catalogue) Category(h Hand) Category { return c.categories[h] }

func (c *Catalogue) MaxScore() int { return c.maxScore }

func (c *Catalogue) NoPoint() Hand { return c.noPoint }

// Hands returns every category in order.
func (c *Catalogue) Hands() []Hand {
	out := make([]Hand, len(c.categories))
	for i := range out {
		out[i] = Hand(i)
	}
	return out
}

// Score sums the weights of the listed categories, capped at the maximum.
func (c *Catalogue) Score(l List) int {
	s := 0
	for _, h := range l.Hands() {
		s += c.categories[h].Weight
	}
	return min(s, c.maxScore)
}
