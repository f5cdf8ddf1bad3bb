package tile_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/yakustat/internal/tile"
	"github.com/abhisek/yakustat/internal/variant/four"
	"github.com/abhisek/yakustat/internal/variant/three"
)

func TestCodecRoundTrip(t *testing.T) {
	record := []byte("AABBBCCCDDDEEE")
	tiles, err := four.Codec.DecodeAll(nil, record)
	require.NoError(t, err)
	assert.Equal(t, four.Red, tiles[0])
	assert.Equal(t, four.South, tiles[13])
	assert.Equal(t, record, four.Codec.EncodeAll(nil, tiles))
}

func TestCodecBoundaries(t *testing.T) {
	tests := []struct {
		name string
		code byte
		four four.Tile
	}{
		{"first dragon", 'A', four.Red},
		{"last wind", 'G', four.North},
		{"first bamboo", 'H', four.B1},
		{"first character", 'Q', four.C1},
		{"last dot", 'b', four.D9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := four.Codec.Decode(tt.code, 0)
			require.NoError(t, err)
			assert.Equal(t, tt.four, got)
			assert.Equal(t, tt.code, four.Codec.Encode(got))
		})
	}

	last, err := three.Codec.Decode('W', 0)
	require.NoError(t, err)
	assert.Equal(t, three.D6, last)
}

func TestDecodeError(t *testing.T) {
	_, err := four.Codec.DecodeAll(nil, []byte("AAB?"))
	require.Error(t, err)

	var de *tile.DecodeError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, 3, de.Offset)
	assert.Equal(t, byte('?'), de.Byte)

	_, err = three.Codec.Decode('X', 0)
	assert.Error(t, err, "three has 23 kinds")
}

func TestNewCodecPanics(t *testing.T) {
	assert.Panics(t, func() { tile.NewCodec(four.AllTiles[:2], []byte("A")) })
	assert.Panics(t, func() { tile.NewCodec(four.AllTiles[:2], []byte("AA")) })
}

func TestTileProperties(t *testing.T) {
	tests := []struct {
		tile     four.Tile
		color    tile.Color
		number   int
		terminal bool
		simple   bool
	}{
		{four.East, tile.Honor, 4, false, false},
		{four.B1, tile.Bamboo, 1, true, false},
		{four.C5, tile.Character, 5, false, true},
		{four.D9, tile.Dot, 9, true, false},
	}
	for _, tt := range tests {
		t.Run(tt.tile.String(), func(t *testing.T) {
			assert.Equal(t, tt.color, tt.tile.Color())
			assert.Equal(t, tt.number, tt.tile.Number())
			assert.Equal(t, tt.terminal, tt.tile.IsTerminal())
			assert.Equal(t, tt.simple, tt.tile.IsSimple())
		})
	}

	assert.True(t, four.B8.IsAscending(four.B9))
	assert.False(t, four.B9.IsAscending(four.C1), "runs do not cross suits")
	assert.False(t, four.East.IsAscending(four.South), "honors never run")
	assert.True(t, three.B5.IsAscending(three.B6))
	assert.False(t, three.B6.IsAscending(three.C1))
}
