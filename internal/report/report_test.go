package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/yakustat/internal/stats"
	"github.com/abhisek/yakustat/internal/variant/four"
)

func sampleSummary() stats.Summary {
	s := stats.Summary{
		Rows:         make([]stats.Row, four.Catalogue.Len()),
		Records:      3,
		Patterns:     4,
		Combinations: stats.TotalOf(100),
		ScoreSum:     stats.TotalOf(400),
	}
	for i := range s.Rows {
		s.Rows[i].Hand = four.Catalogue.Hands()[i]
	}
	s.Rows[four.RedPung] = stats.Row{Hand: four.RedPung, Patterns: 1, Combinations: stats.TotalOf(10), ScoreSum: stats.TotalOf(20)}
	s.Rows[four.WhitePung] = stats.Row{Hand: four.WhitePung, Patterns: 1, Combinations: stats.TotalOf(30), ScoreSum: stats.TotalOf(90)}
	s.Rows[four.WindPung] = stats.Row{Hand: four.WindPung, Patterns: 2, Combinations: stats.TotalOf(60), ScoreSum: stats.TotalOf(290)}
	s.Rows[four.AllPungs] = stats.Row{Hand: four.AllPungs, Patterns: 1, Combinations: stats.TotalOf(40), ScoreSum: stats.TotalOf(200)}
	return s
}

func TestLinesMergeBuckets(t *testing.T) {
	lines := Lines(sampleSummary(), four.Catalogue)
	require.Len(t, lines, four.Catalogue.Len()-3, "three dragon pungs fold into the scored pung")

	byName := make(map[string]Line, len(lines))
	for _, ln := range lines {
		byName[ln.Name] = ln
	}
	assert.NotContains(t, byName, "Red Pung")

	scored := byName["Scored Pung"]
	assert.Equal(t, uint64(4), scored.Patterns)
	assert.Equal(t, stats.TotalOf(100), scored.Combinations)
	assert.Equal(t, stats.TotalOf(400), scored.ScoreSum)
	assert.InDelta(t, 4.0, scored.Average, 1e-9)
	assert.InDelta(t, 1.0, scored.Share, 1e-9)

	pungs := byName["All Pungs"]
	assert.InDelta(t, 5.0, pungs.Average, 1e-9)
	assert.InDelta(t, 0.4, pungs.Share, 1e-9)

	assert.Zero(t, byName["No Point"].Average)
}

func TestRenderTable(t *testing.T) {
	s := sampleSummary()
	var buf bytes.Buffer
	err := RenderTable(&buf, Lines(s, four.Catalogue), s, TableOptions{Title: "four · test", HideEmpty: true})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "four · test")
	assert.Contains(t, out, "Scored Pung")
	assert.Contains(t, out, "All Pungs")
	assert.NotContains(t, out, "Full Flush", "empty rows are hidden")
	assert.Contains(t, out, "3 records")

	buf.Reset()
	require.NoError(t, RenderTable(&buf, Lines(s, four.Catalogue), s, TableOptions{Local: true}))
	assert.Contains(t, buf.String(), "Full Flush")
	assert.Contains(t, buf.String(), "對對和")
}

func TestWriteJSONValidates(t *testing.T) {
	s := sampleSummary()
	doc := NewDocument("four", "hands.bin", true, time.Unix(1700000000, 0), 1500*time.Millisecond, s, Lines(s, four.Catalogue))
	doc.RunID = "0f3c9d2e"

	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, doc))
	assert.NoError(t, Validate(buf.Bytes()))
	assert.Contains(t, buf.String(), `"duration_ms": 1500`)
	assert.Contains(t, buf.String(), `"variant": "four"`)

	doc.Variant = "five"
	assert.Error(t, WriteJSON(&buf, doc))
}

func TestWriteJSONTotalsPastUint64(t *testing.T) {
	s := sampleSummary()
	huge, err := stats.ParseTotal("26106589608387149824")
	require.NoError(t, err)
	s.Combinations = huge
	s.ScoreSum = huge.Mul(3)

	doc := NewDocument("four", "hands.bin", true, time.Unix(1700000000, 0), time.Second, s, Lines(s, four.Catalogue))
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, doc))
	assert.Contains(t, buf.String(), `"combinations": 26106589608387149824`)
	assert.InDelta(t, 3.0, doc.Average, 1e-12)
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", `{`},
		{"missing categories", `{"variant": "four", "records": 1, "combinations": 1}`},
		{"empty categories", `{"variant": "four", "records": 1, "combinations": 1, "categories": []}`},
		{"negative records", `{"variant": "three", "records": -1, "combinations": 1, "categories": [{"hand": 0, "name": "x", "weight": 1, "patterns": 1, "combinations": 1, "score_sum": 1, "average": 1, "share": 1}]}`},
		{"share above one", `{"variant": "three", "records": 1, "combinations": 1, "categories": [{"hand": 0, "name": "x", "weight": 1, "patterns": 1, "combinations": 1, "score_sum": 1, "average": 1, "share": 2}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, Validate([]byte(tt.raw)))
		})
	}

	ok := `{"variant": "three", "records": 1, "combinations": 1, "categories": [{"hand": 0, "name": "x", "weight": 1, "patterns": 1, "combinations": 1, "score_sum": 1, "average": 1, "share": 1}]}`
	assert.NoError(t, Validate([]byte(strings.TrimSpace(ok))))
}
