package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/yakustat/internal/ui/theme"
)

// ShareBar draws a fraction as a horizontal bar with a percentage.
type ShareBar struct {
	Label string
	Share float64
	Width int
}

// NewShareBar creates a share bar of the given total width.
func NewShareBar(label string, share float64, width int) ShareBar {
	return ShareBar{Label: label, Share: share, Width: width}
}

// View renders the bar.
func (p ShareBar) View() string {
	var result string
	if p.Label != "" {
		result += theme.Body.Render(p.Label) + "  "
	}

	pct := fmt.Sprintf("  %6.2f%%", p.Share*100)
	barWidth := max(p.Width-lipgloss.Width(result)-len(pct), 4)

	filled := min(max(int(float64(barWidth)*p.Share+0.5), 0), barWidth)
	result += theme.ProgressFilled.Render(strings.Repeat(" ", filled)) +
		theme.ProgressEmpty.Render(strings.Repeat(" ", barWidth-filled))

	return result + lipgloss.NewStyle().Foreground(theme.TextDim).Render(pct)
}
