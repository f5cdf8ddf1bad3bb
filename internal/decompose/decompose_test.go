package decompose_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/yakustat/internal/decompose"
	"github.com/abhisek/yakustat/internal/meld"
	. "github.com/abhisek/yakustat/internal/variant/four"
)

func pair(t Tile) []Tile { return []Tile{t, t} }
func pung(t Tile) []Tile { return []Tile{t, t, t} }
func chow(t Tile) []Tile { return []Tile{t, t + 1, t + 2} }

func hand(groups ...[]Tile) []Tile {
	out := slices.Concat(groups...)
	slices.Sort(out)
	return out
}

func TestDecompose(t *testing.T) {
	tests := []struct {
		name  string
		tiles []Tile
		want  []string
	}{
		{
			name:  "four pungs",
			tiles: hand(pair(Red), pung(Green), pung(White), pung(East), pung(South)),
			want:  []string{"Red×2 Green×3 White×3 East×3 South×3"},
		},
		{
			name:  "pungs or chows",
			tiles: hand(pung(B1), pung(B2), pung(B3), chow(C5), pair(D9)),
			want: []string{
				"D9×2 B1-B2-B3 B1-B2-B3 B1-B2-B3 C5-C6-C7",
				"D9×2 B1×3 B2×3 B3×3 C5-C6-C7",
			},
		},
		{
			name:  "four copies split between pung and chow",
			tiles: hand(pung(B1), chow(B1), chow(C1), chow(C4), pair(D1)),
			want:  []string{"D1×2 B1-B2-B3 B1×3 C1-C2-C3 C4-C5-C6"},
		},
		{
			name:  "pair shares a kind with two chows",
			tiles: hand(chow(B1), chow(B3), pair(B3), pung(C7), pung(D2)),
			want:  []string{"B3×2 B1-B2-B3 B3-B4-B5 C7×3 D2×3"},
		},
		{
			name:  "no pair",
			tiles: hand(chow(B1), chow(B4), chow(C1), chow(C4), []Tile{D1, D5}),
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sets := decompose.Decompose(tt.tiles, Arity, East)
			got := make([]string, len(sets))
			for i, s := range sets {
				got[i] = s.String()
			}
			require.Equal(t, tt.want, got)
			for _, s := range sets {
				flat := s.Tiles()
				slices.Sort(flat)
				assert.Equal(t, tt.tiles, flat, "decomposition must partition the hand")
				assert.Equal(t, East, s.Wind)
				assert.True(t, s.Pair.Concealed)
			}
		})
	}
}

func TestDecomposeIsCanonicalAndDistinct(t *testing.T) {
	// The chow reading is reachable through several meld orders and must
	// still be reported once.
	tiles := hand(pung(C4), pung(C5), pung(C6), pair(C8), chow(D1))
	sets := decompose.Decompose(tiles, Arity, East)
	require.Len(t, sets, 2)

	seen := make(map[meld.Set[Tile]]bool)
	for _, s := range sets {
		assert.Equal(t, s, s.Canonical())
		assert.False(t, seen[s], "duplicate %v", s)
		seen[s] = true
	}
	assert.True(t, slices.IsSortedFunc(sets, meld.Compare[Tile]))
}

func TestDecomposeSevenPairsHasNoGroupedReading(t *testing.T) {
	tiles := hand(pair(Red), pair(East), pair(B1), pair(B5), pair(C3), pair(D7), pair(D9))
	assert.Empty(t, decompose.Decompose(tiles, Arity, East))
}

func TestDecomposePanics(t *testing.T) {
	assert.Panics(t, func() {
		decompose.Decompose([]Tile{B1, B1, B2}, Arity, East)
	}, "wrong length")

	unsorted := hand(pair(Red), pung(Green), pung(White), pung(East), pung(South))
	unsorted[0], unsorted[13] = unsorted[13], unsorted[0]
	assert.Panics(t, func() {
		decompose.Decompose(unsorted, Arity, East)
	}, "unsorted")
}
