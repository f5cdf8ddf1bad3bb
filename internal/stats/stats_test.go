package stats_test

import (
	"context"
	"errors"
	"slices"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/yakustat/internal/corpus"
	"github.com/abhisek/yakustat/internal/stats"
	"github.com/abhisek/yakustat/internal/tile"
	"github.com/abhisek/yakustat/internal/variant/four"
	"github.com/abhisek/yakustat/internal/yaku"
)

func listOf(hands ...yaku.Hand) yaku.List {
	var l yaku.List
	for _, h := range hands {
		l.Set(h)
	}
	return l
}

func TestTallyAddAndMerge(t *testing.T) {
	a := stats.NewTally()
	a.Add([]yaku.Outcome{{List: listOf(0), Weight: 10}, {List: listOf(0, 1), Weight: 5}})
	a.Add(nil)

	b := stats.NewTally()
	b.Add([]yaku.Outcome{{List: listOf(0), Weight: 7}})

	a.Merge(b)
	assert.Equal(t, 3, a.Records)
	assert.Equal(t, 1, a.Undecomposed)
	assert.Equal(t, stats.Count{Patterns: 2, Weight: stats.TotalOf(17)}, a.Hands[listOf(0)])
	assert.Equal(t, stats.Count{Patterns: 1, Weight: stats.TotalOf(5)}, a.Hands[listOf(0, 1)])
}

func TestSummarize(t *testing.T) {
	c := yaku.NewCatalogue("test", 10, 2, []yaku.Entry{
		{Hand: 0, Name: "Zero", Weight: 2},
		{Hand: 1, Name: "One", Weight: 3},
		{Hand: 2, Name: "None", Weight: 0},
	})
	tally := stats.NewTally()
	tally.Add([]yaku.Outcome{{List: listOf(0), Weight: 10}, {List: listOf(0, 1), Weight: 5}})
	tally.Add([]yaku.Outcome{{List: listOf(2), Weight: 1}})

	s := stats.Summarize(tally, c)
	require.Len(t, s.Rows, 3)
	assert.Equal(t, stats.Row{Hand: 0, Patterns: 2, Combinations: stats.TotalOf(15), ScoreSum: stats.TotalOf(45)}, s.Rows[0])
	assert.Equal(t, stats.Row{Hand: 1, Patterns: 1, Combinations: stats.TotalOf(5), ScoreSum: stats.TotalOf(25)}, s.Rows[1])
	assert.Equal(t, stats.Row{Hand: 2, Patterns: 1, Combinations: stats.TotalOf(1), ScoreSum: stats.TotalOf(0)}, s.Rows[2])
	assert.Equal(t, uint64(3), s.Patterns)
	assert.Equal(t, stats.TotalOf(16), s.Combinations)
	assert.Equal(t, stats.TotalOf(45), s.ScoreSum)
	assert.InDelta(t, 45.0/16.0, s.Average(), 1e-9)
	assert.InDelta(t, 3.0, s.Rows[0].Average(), 1e-9)
	assert.Zero(t, stats.Row{}.Average())
}

func TestSummarizeWeightsPastUint64(t *testing.T) {
	c := yaku.NewCatalogue("test", 10, 1, []yaku.Entry{
		{Hand: 0, Name: "Zero", Weight: 2},
		{Hand: 1, Name: "None", Weight: 0},
	})
	heavy := []yaku.Outcome{{List: listOf(0), Weight: 1 << 63}}

	a, b := stats.NewTally(), stats.NewTally()
	a.Add(heavy)
	b.Add(heavy)
	a.Merge(b)

	s := stats.Summarize(a, c)
	assert.Equal(t, "18446744073709551616", s.Combinations.String())
	assert.Equal(t, "36893488147419103232", s.ScoreSum.String())
	assert.Equal(t, s.Combinations, s.Rows[0].Combinations)
	assert.InDelta(t, 2.0, s.Average(), 1e-12)
}

func testCorpus(t *testing.T) *corpus.Corpus {
	t.Helper()
	records, err := four.Rules.Generate([]corpus.Shape{corpus.Orphans})
	require.NoError(t, err)

	hands := [][]four.Tile{
		{four.Red, four.Red, four.Green, four.Green, four.Green, four.White, four.White, four.White,
			four.East, four.East, four.East, four.South, four.South, four.South},
		{four.B1, four.B1, four.B1, four.B2, four.B2, four.B2, four.B3, four.B3, four.B3,
			four.C5, four.C6, four.C7, four.D9, four.D9},
		{four.B2, four.B3, four.B4, four.C2, four.C3, four.C4, four.D2, four.D3, four.D4,
			four.B6, four.B7, four.B8, four.D9, four.D9},
	}
	for i := 0; i < 20; i++ {
		for _, h := range hands {
			records = append(records, four.Codec.EncodeAll(nil, h))
		}
	}
	c, err := corpus.New(slices.Concat(records...), four.Rules.RecordSize())
	require.NoError(t, err)
	return c
}

func newAnalyzer(opts yaku.Options) func() (stats.Analyzer, error) {
	return func() (stats.Analyzer, error) { return four.Rules.NewAnalyzer(opts) }
}

func TestRunnerWorkerCountDoesNotChangeResult(t *testing.T) {
	c := testCorpus(t)
	for _, reveal := range []bool{false, true} {
		opts := yaku.Options{Reveal: reveal}
		single, err := (&stats.Runner{NewAnalyzer: newAnalyzer(opts), Workers: 1}).Run(context.Background(), c)
		require.NoError(t, err)

		for _, workers := range []int{2, 7, 0} {
			many, err := (&stats.Runner{NewAnalyzer: newAnalyzer(opts), Workers: workers}).Run(context.Background(), c)
			require.NoError(t, err)
			assert.Equal(t, single, many, "reveal=%v workers=%d", reveal, workers)
		}

		assert.Equal(t, c.Len(), single.Records)
		assert.Equal(t, 13, single.Undecomposed, "orphans have no grouped reading")
	}
}

func TestRunnerAllHonorsWeight(t *testing.T) {
	rec := []byte("AABBBCCCDDDEEE")
	c, err := corpus.New(rec, len(rec))
	require.NoError(t, err)

	tally, err := (&stats.Runner{NewAnalyzer: newAnalyzer(yaku.Options{})}).Run(context.Background(), c)
	require.NoError(t, err)
	require.Len(t, tally.Hands, 1)
	assert.Equal(t, stats.Count{Patterns: 1, Weight: stats.TotalOf(1536)}, tally.Hands[listOf(four.AllHonors)])
}

func TestRunnerReportsFailingRecord(t *testing.T) {
	data := []byte("AABBBCCCDDDEEE" + "AABBBCCCDDDEEE" + "AABBBCCC?DDEEE")
	c, err := corpus.New(data, 14)
	require.NoError(t, err)

	_, err = (&stats.Runner{NewAnalyzer: newAnalyzer(yaku.Options{}), Workers: 2}).Run(context.Background(), c)
	var re *stats.RecordError
	require.True(t, errors.As(err, &re), "got %v", err)
	assert.Equal(t, 2, re.Index)

	var de *tile.DecodeError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, 8, de.Offset)
}

func TestRunnerAnalyzerError(t *testing.T) {
	c, err := corpus.New([]byte("AABBBCCCDDDEEE"), 14)
	require.NoError(t, err)

	_, err = (&stats.Runner{NewAnalyzer: newAnalyzer(yaku.Options{SeatWind: 'A'})}).Run(context.Background(), c)
	assert.Error(t, err, "Red is not a wind")
}

func TestRunnerProgressAndCancel(t *testing.T) {
	c := testCorpus(t)

	var mu sync.Mutex
	var calls [][2]int
	r := &stats.Runner{
		NewAnalyzer:   newAnalyzer(yaku.Options{}),
		Workers:       3,
		ProgressEvery: 10,
		Progress: func(done, total int) {
			mu.Lock()
			defer mu.Unlock()
			calls = append(calls, [2]int{done, total})
		},
	}
	_, err := r.Run(context.Background(), c)
	require.NoError(t, err)
	require.NotEmpty(t, calls)
	assert.Equal(t, [2]int{c.Len(), c.Len()}, calls[len(calls)-1])

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = r.Run(ctx, c)
	assert.ErrorIs(t, err, context.Canceled)
}
