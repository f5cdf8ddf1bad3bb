// Package browse is the interactive viewer for stored analysis runs.
package browse

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/yakustat/internal/report"
	"github.com/abhisek/yakustat/internal/store"
	"github.com/abhisek/yakustat/internal/ui/components"
	"github.com/abhisek/yakustat/internal/ui/layout"
	"github.com/abhisek/yakustat/internal/ui/theme"
	"github.com/abhisek/yakustat/internal/variant"
)

type runsLoadedMsg struct {
	runs []*store.Run
	err  error
}

type runLoadedMsg struct {
	run *store.Run
	err error
}

// AppModel is the root Bubble Tea model. It shows either the run list or
// the categories of one run.
type AppModel struct {
	ctx    context.Context
	repo   store.RunRepo
	width  int
	height int
	err    error

	runs    []*store.Run
	runList components.List

	run      *store.Run
	lines    []report.Line
	visible  []report.Line
	filter   components.FilterInput
	lineList components.List
	local    bool
}

// New creates the model. With a non-empty runID the viewer opens that run
// directly.
func New(ctx context.Context, repo store.RunRepo, runID string) AppModel {
	m := AppModel{ctx: ctx, repo: repo, filter: components.NewFilterInput("filter categories", 32)}
	if runID != "" {
		m.run = &store.Run{ID: runID}
	}
	return m
}

func (m AppModel) Init() tea.Cmd {
	if m.run != nil {
		return m.loadRun(m.run.ID)
	}
	return m.loadRuns()
}

func (m AppModel) loadRuns() tea.Cmd {
	return func() tea.Msg {
		runs, err := m.repo.List(m.ctx, 200)
		return runsLoadedMsg{runs: runs, err: err}
	}
}

func (m AppModel) loadRun(id string) tea.Cmd {
	return func() tea.Msg {
		run, err := m.repo.Get(m.ctx, id)
		return runLoadedMsg{run: run, err: err}
	}
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case runsLoadedMsg:
		m.err = msg.err
		m.runs = msg.runs
		items := make([]string, len(msg.runs))
		for i, r := range msg.runs {
			items[i] = runLabel(r)
		}
		m.runList = m.runList.SetItems(items)
		return m, nil

	case runLoadedMsg:
		if msg.err != nil {
			m.err = msg.err
			m.run = nil
			return m, m.loadRuns()
		}
		return m.openRun(msg.run)

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.run == nil {
			return m.updateRuns(msg)
		}
		return m.updateRun(msg)
	}
	return m, nil
}

func (m AppModel) updateRuns(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit
	case "enter":
		if len(m.runs) == 0 {
			return m, nil
		}
		return m, m.loadRun(m.runs[m.runList.Selected].ID)
	}
	m.runList = m.runList.Update(msg)
	return m, nil
}

func (m AppModel) updateRun(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		if m.filter.Value() != "" {
			m.filter.Model.SetValue("")
			m.applyFilter()
			return m, nil
		}
		m.run = nil
		if m.runs == nil {
			return m, m.loadRuns()
		}
		return m, nil
	case "tab":
		m.local = !m.local
		m.applyFilter()
		return m, nil
	case "up", "down", "home", "end", "ctrl+p", "ctrl+n":
		m.lineList = m.lineList.Update(msg)
		return m, nil
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.applyFilter()
	return m, cmd
}

func (m AppModel) openRun(run *store.Run) (tea.Model, tea.Cmd) {
	v, err := variant.Lookup(run.Variant)
	if err != nil {
		m.err = err
		m.run = nil
		return m, m.loadRuns()
	}
	m.err = nil
	m.run = run
	m.lines = report.Lines(run.Summary, v.Catalogue())
	m.lineList = components.NewList(nil)
	m.applyFilter()
	return m, nil
}

func (m *AppModel) applyFilter() {
	m.visible = nil
	items := make([]string, 0, len(m.lines))
	for _, ln := range m.lines {
		if !m.filter.Matches(ln.Name, ln.Local) {
			continue
		}
		m.visible = append(m.visible, ln)
		name := ln.Name
		if m.local {
			name = ln.Local + " " + name
		}
		items = append(items, fmt.Sprintf("%-30s %8.3f", name, ln.Average))
	}
	m.lineList = m.lineList.SetItems(items)
}

func runLabel(r *store.Run) string {
	return fmt.Sprintf("#%-4d %s  %-5s %-24s %9d records",
		r.Sequence, r.StartedAt.Format("2006-01-02 15:04"), r.Variant, r.Corpus, r.Summary.Records)
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}
	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	var title, status string
	var hints []layout.KeyHint
	if m.run == nil {
		title = "Runs"
		status = fmt.Sprintf("%d stored", len(m.runs))
		hints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Open"},
			{Key: "Esc", Description: "Quit"},
		}
	} else {
		title = fmt.Sprintf("Run #%d · %s", m.run.Sequence, m.run.Variant)
		status = fmt.Sprintf("avg %.4f", m.run.Summary.Average())
		hints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Type", Description: "Filter"},
			{Key: "Tab", Description: "Names"},
			{Key: "Esc", Description: "Back"},
		}
	}

	header := layout.RenderHeader(title, status, m.width)
	footer := layout.RenderFooter(hints, m.width)
	contentHeight := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 0)

	var content string
	if m.run == nil {
		content = m.viewRuns(contentHeight)
	} else {
		content = m.viewRun(contentHeight)
	}

	v.SetContent(layout.RenderFrame(header, content, footer, m.width, m.height))
	return v
}

func (m AppModel) viewRuns(height int) string {
	var b strings.Builder
	if m.err != nil {
		b.WriteString(theme.Warn.Render("  "+m.err.Error()) + "\n")
		height--
	}
	if len(m.runs) == 0 {
		b.WriteString(theme.Hint.Render("  No runs stored yet. Run `yakustat analyze` first."))
		return b.String()
	}
	b.WriteString(m.runList.View(height - 1))
	return b.String()
}

func (m AppModel) viewRun(height int) string {
	listHeight := max(height-10, 3)

	var b strings.Builder
	b.WriteString("  " + m.filter.View() + "\n\n")
	b.WriteString(m.lineList.View(listHeight))

	if len(m.visible) == 0 {
		return b.String()
	}
	ln := m.visible[m.lineList.Selected]
	name := ln.Name
	if !layout.IsCompactWidth(m.width) && ln.Local != "" {
		name += "  " + ln.Local
	}
	detail := theme.Highlight.Render(name) + "\n" +
		theme.Body.Render(fmt.Sprintf("weight %d · %d patterns · %s combinations · average %.3f",
			ln.Weight, ln.Patterns, ln.Combinations, ln.Average)) + "\n" +
		components.NewShareBar("share", ln.Share, max(m.width-12, 20)).View()
	b.WriteString("\n" + theme.Card.Render(detail))
	return b.String()
}

// Run starts the viewer.
func Run(ctx context.Context, repo store.RunRepo, runID string) error {
	p := tea.NewProgram(New(ctx, repo, runID), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
