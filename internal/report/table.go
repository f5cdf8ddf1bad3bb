package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/yakustat/internal/stats"
	"github.com/abhisek/yakustat/internal/ui/theme"
)

// TableOptions control the terminal table.
type TableOptions struct {
	Title string
	// Local prints the traditional category names next to the English ones.
	Local bool
	// HideEmpty drops categories no decomposition reached.
	HideEmpty bool
}

var columns = []struct {
	title string
	width int
}{
	{"Category", 26},
	{"Weight", 6},
	{"Patterns", 12},
	{"Combinations", 18},
	{"Score sum", 20},
	{"Average", 8},
	{"Share", 8},
}

// RenderTable writes lines and the run totals as an aligned table.
func RenderTable(w io.Writer, lines []Line, s stats.Summary, opts TableOptions) error {
	var b strings.Builder

	if opts.Title != "" {
		b.WriteString(theme.Title.Align(lipgloss.Left).Render(opts.Title))
		b.WriteString("\n\n")
	}

	head := make([]string, len(columns))
	for i, c := range columns {
		head[i] = cell(c.title, c.width, i == 0, theme.TableHeader)
	}
	b.WriteString(strings.Join(head, " "))
	b.WriteString("\n")

	for _, ln := range lines {
		if opts.HideEmpty && ln.Combinations.IsZero() {
			continue
		}
		name := ln.Name
		if opts.Local && ln.Local != "" {
			name += " " + ln.Local
		}
		style := theme.Body
		if ln.Combinations.IsZero() {
			style = theme.Hint
		}
		row := []string{
			name,
			strconv.Itoa(ln.Weight),
			strconv.FormatUint(ln.Patterns, 10),
			ln.Combinations.String(),
			ln.ScoreSum.String(),
			fmt.Sprintf("%.3f", ln.Average),
			fmt.Sprintf("%.2f%%", ln.Share*100),
		}
		for i, v := range row {
			row[i] = cell(v, columns[i].width, i == 0, style)
		}
		b.WriteString(strings.Join(row, " "))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Align(lipgloss.Left).Render(fmt.Sprintf(
		"%d records (%d without a grouped reading), %d decompositions, %s combinations, average score %.4f",
		s.Records, s.Undecomposed, s.Patterns, s.Combinations, s.Average(),
	)))
	b.WriteString("\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// cell pads or truncates v to exactly width columns.
func cell(v string, width int, left bool, style lipgloss.Style) string {
	align := lipgloss.Right
	if left {
		align = lipgloss.Left
	}
	return style.Inline(true).Width(width).MaxWidth(width).Align(align).Render(v)
}
