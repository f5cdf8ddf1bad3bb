package stats

import "github.com/abhisek/yakustat/internal/yaku"

// Row aggregates one category over every decomposition that satisfied it.
type Row struct {
	Hand         yaku.Hand `json:"hand"`
	Patterns     uint64    `json:"patterns"`
	Combinations Total     `json:"combinations"`
	ScoreSum     Total     `json:"score_sum"`
}

// Average is the weighted mean score of decompositions in the category.
func (r Row) Average() float64 {
	return r.ScoreSum.Ratio(r.Combinations)
}

// Summary is the per-category view of a Tally.
type Summary struct {
	Rows         []Row  `json:"rows"`
	Records      int    `json:"records"`
	Undecomposed int    `json:"undecomposed"`
	Patterns     uint64 `json:"patterns"`
	Combinations Total  `json:"combinations"`
	ScoreSum     Total  `json:"score_sum"`
}

// Average is the weighted mean score over all decompositions.
func (s Summary) Average() float64 {
	return s.ScoreSum.Ratio(s.Combinations)
}

// Summarize spreads each category list's counts over its categories. Every
// category of the catalogue gets a row, in catalogue order.
func Summarize(t *Tally, c *yaku.Catalogue) Summary {
	s := Summary{
		Rows:         make([]Row, c.Len()),
		Records:      t.Records,
		Undecomposed: t.Undecomposed,
	}
	for i := range s.Rows {
		s.Rows[i].Hand = yaku.Hand(i)
	}
	for l, cnt := range t.Hands {
		score := cnt.Weight.Mul(uint64(c.Score(l)))
		s.Patterns += cnt.Patterns
		s.Combinations = s.Combinations.Plus(cnt.Weight)
		s.ScoreSum = s.ScoreSum.Plus(score)
		for _, h := range l.Hands() {
			r := &s.Rows[h]
			r.Patterns += cnt.Patterns
			r.Combinations = r.Combinations.Plus(cnt.Weight)
			r.ScoreSum = r.ScoreSum.Plus(score)
		}
	}
	return s
}
