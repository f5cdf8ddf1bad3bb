package corpus

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/stat/combin"

	"github.com/abhisek/yakustat/internal/tile"
)

// Copies is how many physical tiles of each kind a set contains.
const Copies = 4

// ErrOverfull reports a hand holding more copies of a kind than exist.
var ErrOverfull = errors.New("corpus: more than four copies of a tile")

var choose = func() [Copies + 1]uint64 {
	var c [Copies + 1]uint64
	for k := range c {
		c[k] = uint64(combin.Binomial(Copies, k))
	}
	return c
}()

// Weight returns the number of physical deals a multiset stands for: the
// product over kinds of C(4, count).
func Weight(counts []int) (uint64, error) {
	w := uint64(1)
	for i, n := range counts {
		if n < 0 || n > Copies {
			return 0, fmt.Errorf("%w: kind %d appears %d times", ErrOverfull, i, n)
		}
		w *= choose[n]
	}
	return w, nil
}

// Counts tallies tiles per kind into dst, which is resized to kinds entries.
func Counts[T tile.Kind[T]](dst []int, tiles []T, kinds int) []int {
	if cap(dst) < kinds {
		dst = make([]int, kinds)
	}
	dst = dst[:kinds]
	clear(dst)
	for _, t := range tiles {
		dst[t]++
	}
	return dst
}
