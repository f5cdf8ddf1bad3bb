package meld_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/yakustat/internal/meld"
	"github.com/abhisek/yakustat/internal/variant/four"
)

type tileMeld = meld.Meld[four.Tile]

func TestBuilder(t *testing.T) {
	b := meld.NewBuilder(2, four.East)

	_, err := b.Build()
	assert.ErrorIs(t, err, meld.ErrNoPair)

	b = b.WithPair(meld.Pair[four.Tile]{Head: four.Red, Concealed: true})
	_, err = b.Build()
	assert.ErrorIs(t, err, meld.ErrIncomplete)

	b, err = b.WithMeld(meld.Chow(four.B7))
	require.NoError(t, err)
	fork := b

	b, err = b.WithMeld(meld.Pung(four.C2))
	require.NoError(t, err)
	assert.Equal(t, 0, b.Remaining())
	assert.Equal(t, 1, fork.Remaining(), "builders are values")

	_, err = b.WithMeld(meld.Pung(four.D2))
	assert.ErrorIs(t, err, meld.ErrMeldsFull)

	s, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, four.East, s.Wind)
	assert.Equal(t, "Red×2 B7-B8-B9 C2×3", s.String())
}

func TestBuilderRejectsBrokenChow(t *testing.T) {
	for _, head := range []four.Tile{four.B8, four.B9, four.East, four.White} {
		_, err := meld.NewBuilder(4, four.East).WithMeld(meld.Chow(head))
		assert.ErrorIs(t, err, meld.ErrInvalidChow, head.String())
	}
}

func TestNewBuilderArity(t *testing.T) {
	assert.Panics(t, func() { meld.NewBuilder(0, four.East) })
	assert.Panics(t, func() { meld.NewBuilder(meld.MaxMelds+1, four.East) })
}

func TestCanonicalAndCompare(t *testing.T) {
	build := func(ms ...tileMeld) meld.Set[four.Tile] {
		b := meld.NewBuilder(len(ms), four.East).WithPair(meld.Pair[four.Tile]{Head: four.D5})
		for _, m := range ms {
			var err error
			b, err = b.WithMeld(m)
			require.NoError(t, err)
		}
		return b.MustBuild()
	}

	a := build(meld.Pung(four.C3), meld.Chow(four.B1), meld.Pung(four.B1))
	b := build(meld.Pung(four.B1), meld.Pung(four.C3), meld.Chow(four.B1))
	assert.NotEqual(t, a, b)
	assert.Equal(t, a.Canonical(), b.Canonical())

	c := a.Canonical()
	assert.Equal(t, meld.Chow(four.B1), c.Meld(0), "chow sorts before pung on the same head")
	assert.Equal(t, 0, meld.Compare(c, b.Canonical()))
	assert.Negative(t, meld.Compare(c, build(meld.Pung(four.B2), meld.Pung(four.C3), meld.Chow(four.B1)).Canonical()))
}

func TestMeldTiles(t *testing.T) {
	tests := []struct {
		name string
		m    tileMeld
		want []four.Tile
	}{
		{"chow", meld.Chow(four.C7), []four.Tile{four.C7, four.C8, four.C9}},
		{"pung", meld.Pung(four.West), []four.Tile{four.West, four.West, four.West}},
		{"kong", tileMeld{Head: four.D1, Kind: meld.RevealedKong}, []four.Tile{four.D1, four.D1, four.D1, four.D1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.m.Tiles())
		})
	}
}

func TestMeldOutsideness(t *testing.T) {
	tests := []struct {
		m        tileMeld
		simple   bool
		terminal bool
		outside  bool
	}{
		{meld.Chow(four.B1), false, true, true},
		{meld.Chow(four.B2), true, false, false},
		{meld.Chow(four.B7), false, true, true},
		{meld.Pung(four.C9), false, true, true},
		{meld.Pung(four.Red), false, false, true},
		{meld.Pung(four.D4), true, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.m.String(), func(t *testing.T) {
			assert.Equal(t, tt.simple, tt.m.IsSimple())
			assert.Equal(t, tt.terminal, tt.m.HasTerminal())
			assert.Equal(t, tt.outside, tt.m.HasOutside())
		})
	}
}

func TestKindPredicates(t *testing.T) {
	assert.True(t, meld.RevealedKong.IsPung())
	assert.True(t, meld.RevealedKong.IsKong())
	assert.False(t, meld.RevealedKong.IsConcealed())
	assert.True(t, meld.ConcealedChow.IsChow())
	assert.True(t, meld.ConcealedChow.IsConcealed())
	assert.Equal(t, "concealed pung", meld.ConcealedPung.String())
}
