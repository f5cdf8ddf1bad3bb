package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/yakustat/internal/ui/theme"
)

// List is a vertical, scrolling selection list.
type List struct {
	Items    []string
	Selected int
	offset   int
}

// NewList creates a list with the first item selected.
func NewList(items []string) List {
	return List{Items: items}
}

// SetItems replaces the items, keeping the selection in range.
func (l List) SetItems(items []string) List {
	l.Items = items
	l.Selected = min(l.Selected, max(len(items)-1, 0))
	return l
}

// Update handles keyboard navigation.
func (l List) Update(msg tea.Msg) List {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return l
	}
	switch kmsg.String() {
	case "up", "ctrl+p":
		if l.Selected > 0 {
			l.Selected--
		}
	case "down", "ctrl+n":
		if l.Selected < len(l.Items)-1 {
			l.Selected++
		}
	case "home":
		l.Selected = 0
	case "end":
		l.Selected = max(len(l.Items)-1, 0)
	}
	return l
}

// View renders at most height items, scrolled to keep the selection visible.
func (l *List) View(height int) string {
	if height <= 0 || len(l.Items) == 0 {
		return theme.Hint.Render("    (nothing to show)")
	}
	if l.Selected < l.offset {
		l.offset = l.Selected
	}
	if l.Selected >= l.offset+height {
		l.offset = l.Selected - height + 1
	}

	var b strings.Builder
	end := min(l.offset+height, len(l.Items))
	for i := l.offset; i < end; i++ {
		if i == l.Selected {
			b.WriteString(theme.Selected.Render("  ▸ " + l.Items[i]))
		} else {
			b.WriteString(theme.Unselected.Render("    " + l.Items[i]))
		}
		b.WriteString("\n")
	}
	return b.String()
}
