package corpus_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/yakustat/internal/corpus"
	"github.com/abhisek/yakustat/internal/variant/four"
)

func TestWeight(t *testing.T) {
	tests := []struct {
		name   string
		counts []int
		want   uint64
	}{
		{"empty", nil, 1},
		{"pair and four pungs", []int{2, 3, 3, 3, 3}, 6 * 4 * 4 * 4 * 4},
		{"all four copies", []int{4, 1, 0}, 4},
		{"singles", []int{1, 1, 1, 1}, 256},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := corpus.Weight(tt.counts)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := corpus.Weight([]int{2, 5})
	assert.ErrorIs(t, err, corpus.ErrOverfull)
}

func TestCounts(t *testing.T) {
	tiles := []four.Tile{four.Red, four.Red, four.B1, four.D9, four.D9, four.D9}
	counts := corpus.Counts(nil, tiles, four.Kinds)
	require.Len(t, counts, four.Kinds)
	assert.Equal(t, 2, counts[four.Red])
	assert.Equal(t, 1, counts[four.B1])
	assert.Equal(t, 3, counts[four.D9])

	// A reused buffer is cleared first.
	counts = corpus.Counts(counts, tiles[:1], four.Kinds)
	assert.Equal(t, 1, counts[four.Red])
	assert.Equal(t, 0, counts[four.D9])
}
