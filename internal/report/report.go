// Package report turns a run summary into what people read: merged
// category lines, a styled terminal table and a JSON document.
package report

import (
	"github.com/abhisek/yakustat/internal/stats"
	"github.com/abhisek/yakustat/internal/yaku"
)

// Line is one displayed category.
type Line struct {
	Hand         yaku.Hand   `json:"hand"`
	Name         string      `json:"name"`
	Local        string      `json:"local"`
	Weight       int         `json:"weight"`
	Patterns     uint64      `json:"patterns"`
	Combinations stats.Total `json:"combinations"`
	ScoreSum     stats.Total `json:"score_sum"`
	Average      float64     `json:"average"`
	// Share is the fraction of all combinations that fall in the category.
	Share float64 `json:"share"`
}

// Lines folds rows into their report buckets. Categories merged into
// another bucket are not listed on their own.
func Lines(s stats.Summary, c *yaku.Catalogue) []Line {
	byHand := make(map[yaku.Hand]*Line, c.Len())
	var order []yaku.Hand
	for _, h := range c.Hands() {
		cat := c.Category(h)
		if cat.Bucket != h {
			continue
		}
		byHand[h] = &Line{Hand: h, Name: cat.Name, Local: cat.Local, Weight: cat.Weight}
		order = append(order, h)
	}
	for _, r := range s.Rows {
		ln := byHand[c.Category(r.Hand).Bucket]
		if ln == nil {
			continue
		}
		ln.Patterns += r.Patterns
		ln.Combinations = ln.Combinations.Plus(r.Combinations)
		ln.ScoreSum = ln.ScoreSum.Plus(r.ScoreSum)
	}

	out := make([]Line, 0, len(order))
	for _, h := range order {
		ln := *byHand[h]
		ln.Average = ln.ScoreSum.Ratio(ln.Combinations)
		ln.Share = ln.Combinations.Ratio(s.Combinations)
		out = append(out, ln)
	}
	return out
}
