package decompose

import "github.com/abhisek/yakustat/internal/meld"

// A hand never holds more than four copies of a kind, so in a sorted slice
// the first successor of rest[0] sits at most four places after it, and the
// successor of that at most four places further. whitelists lists every
// such (middle, last) index pair for each slice length a stage can see, in
// lexicographic order, so the first hit is the lowest-indexed run.
var whitelists = buildWhitelists()

const maxCopies = 4

func buildWhitelists() map[int][][2]int {
	out := make(map[int][][2]int)
	for melds := 2; melds <= meld.MaxMelds; melds++ {
		n := 3 * melds
		var w [][2]int
		for a := 1; a <= maxCopies && a < n; a++ {
			for b := a + 1; b <= a+maxCopies && b < n; b++ {
				w = append(w, [2]int{a, b})
			}
		}
		out[n] = w
	}
	return out
}

func whitelist(n int) [][2]int {
	return whitelists[n]
}
