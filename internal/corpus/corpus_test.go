package corpus_test

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/yakustat/internal/corpus"
)

func TestNewRejectsPartialRecords(t *testing.T) {
	_, err := corpus.New([]byte("AABBBCCCDDDEEEA"), 14)
	var se *corpus.ShapeError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, 15, se.Size)
	assert.Equal(t, 14, se.RecordSize)

	_, err = corpus.New(nil, 0)
	assert.Error(t, err)
}

func TestRecords(t *testing.T) {
	c, err := corpus.Read(strings.NewReader("AABBBCCCDDDEEEAABBBCCCDDDFFF"), 14)
	require.NoError(t, err)
	assert.Equal(t, 2, c.Len())
	assert.Equal(t, 14, c.RecordSize())
	assert.Equal(t, []byte("AABBBCCCDDDFFF"), c.Record(1))

	// Records are capped so appending cannot clobber the next one.
	r := append(c.Record(0), 'Z')
	assert.Equal(t, byte('A'), c.Record(1)[0])
	assert.Len(t, r, 15)
}

func TestEmptyCorpus(t *testing.T) {
	c, err := corpus.New([]byte{}, 11)
	require.NoError(t, err)
	assert.Equal(t, 0, c.Len())
}

func TestWriteThenOpen(t *testing.T) {
	records := [][]byte{[]byte("ABCDEFGHIJK"), []byte("KJIHGFEDCBA")}

	var buf bytes.Buffer
	require.NoError(t, corpus.Write(&buf, records))
	assert.Equal(t, "ABCDEFGHIJKKJIHGFEDCBA", buf.String())

	path := filepath.Join(t.TempDir(), "hands.bin")
	require.NoError(t, corpus.WriteFile(path, records))

	c, err := corpus.Open(path, 11)
	require.NoError(t, err)
	require.Equal(t, 2, c.Len())
	assert.Equal(t, records[1], c.Record(1))

	_, err = corpus.Open(filepath.Join(t.TempDir(), "missing.bin"), 11)
	assert.Error(t, err)
}
