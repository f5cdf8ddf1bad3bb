package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

func TestListNavigation(t *testing.T) {
	l := NewList([]string{"a", "b", "c"})

	steps := []struct {
		code rune
		want int
	}{
		{tea.KeyUp, 0},
		{tea.KeyDown, 1},
		{tea.KeyDown, 2},
		{tea.KeyDown, 2},
		{tea.KeyHome, 0},
		{tea.KeyEnd, 2},
	}
	for _, s := range steps {
		l = l.Update(tea.KeyPressMsg{Code: s.code})
		if l.Selected != s.want {
			t.Fatalf("after %q selected = %d, want %d", tea.KeyPressMsg{Code: s.code}.String(), l.Selected, s.want)
		}
	}

	l = l.SetItems([]string{"x"})
	if l.Selected != 0 {
		t.Errorf("SetItems kept selection %d past the end", l.Selected)
	}
}

func TestListViewScrolls(t *testing.T) {
	l := NewList([]string{"one", "two", "three", "four", "five"})
	l.Selected = 4
	out := l.View(2)
	if strings.Contains(out, "one") || !strings.Contains(out, "five") {
		t.Errorf("view did not scroll to the selection:\n%s", out)
	}
	empty := NewList(nil)
	if !strings.Contains(empty.View(5), "nothing to show") {
		t.Error("empty list should render a hint")
	}
}

func TestFilterMatches(t *testing.T) {
	f := NewFilterInput("filter", 0)
	if !f.Matches("anything") {
		t.Error("empty filter should match")
	}
	f.Model.SetValue("PUNG")
	if !f.Matches("All Pungs") {
		t.Error("match is case-insensitive")
	}
	if f.Matches("All Chows", "平和") {
		t.Error("unexpected match")
	}
}
