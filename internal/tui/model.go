package tui

import (
	"context"
	"fmt"
	"strings"

	"PrologFront/internal/frontend"
	"PrologFront/internal/report"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// View selects what the results pane shows.
type View int

const (
	TreeView View = iota
	TokensView
	GroupsView
	DiagnosticsView
)

var viewNames = [...]string{"Tree", "Tokens", "Groups", "Diagnostics"}

func (v View) String() string {
	return viewNames[v]
}

func (v View) next() View {
	return (v + 1) % View(len(viewNames))
}

// analyzedMsg carries the outcome of one analysis back to Update.
type analyzedMsg struct {
	result *frontend.Result
	err    error
}

func analyzeCmd(analyze Analyzer, name, source string) tea.Cmd {
	return func() tea.Msg {
		result, err := analyze(context.Background(), name, source)
		return analyzedMsg{result: result, err: err}
	}
}

// Model is the bubbletea model of the editor and results pane.
type Model struct {
	analyze  Analyzer
	name     string
	target   string
	input    textarea.Model
	viewport viewport.Model
	help     help.Model
	keys     keyMap
	view     View
	result   *frontend.Result
	status   string
	loading  bool
	err      error
	width    int
	height   int
}

// New builds a model editing source. target describes where analysis runs
// and is only shown in the header.
func New(analyze Analyzer, name, source, target string) Model {
	ta := textarea.New()
	ta.Placeholder = "predicates ... clauses ... goal ..."
	ta.Focus()
	ta.CharLimit = 0
	ta.FocusedStyle.CursorLine = ta.FocusedStyle.CursorLine.Background(lipgloss.Color("236"))
	ta.ShowLineNumbers = true
	ta.SetValue(source)

	vp := viewport.New(80, 20)
	vp.SetContent(subtle.Render("Press ctrl+r to analyze the program."))

	return Model{
		analyze:  analyze,
		name:     name,
		target:   target,
		input:    ta,
		viewport: vp,
		help:     help.New(),
		keys:     newKeyMap(),
		status:   "Ready",
	}
}

// Init satisfies the tea.Model interface.
func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

// Update satisfies the tea.Model interface.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextView):
			m.view = m.view.next()
			m.refresh()
			return m, nil
		case key.Matches(msg, m.keys.Analyze):
			m.loading = true
			m.status = "Analyzing..."
			m.err = nil
			return m, analyzeCmd(m.analyze, m.name, m.input.Value())
		}
	case analyzedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			m.status = "Analysis failed"
			m.viewport.SetContent(errorStyle.Render(msg.err.Error()))
			return m, nil
		}
		m.err = nil
		m.result = msg.result
		m.status = summary(msg.result)
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// resize splits the height left over by the chrome between the editor and
// the results pane, giving the results two thirds.
func (m *Model) resize(width, height int) {
	m.width, m.height = width, height

	const chromeLines = 12 // title, tabs, labels, borders, status, help
	available := max(m.height-chromeLines, 2)

	inputHeight := max(available/3, 1)
	resultsHeight := max(available-inputHeight, 1)

	m.input.SetWidth(max(m.width-6, 10))
	m.input.SetHeight(inputHeight)
	m.viewport.Width = max(m.width-6, 10)
	m.viewport.Height = resultsHeight
}

func (m *Model) refresh() {
	if m.result == nil {
		return
	}
	m.viewport.SetContent(render(m.result, m.view))
	m.viewport.GotoTop()
}

func render(r *frontend.Result, v View) string {
	switch v {
	case TokensView:
		return report.FormatTokens(r.Tokens)
	case GroupsView:
		return report.FormatTokenGroups(report.GroupByCategory(r.Tokens))
	case DiagnosticsView:
		if r.OK() {
			return okStyle.Render("No errors")
		}
		return errorStyle.Render(strings.TrimRight(report.FormatDiagnostics(r.Diagnostics, true), "\n"))
	}
	return r.Tree.Pretty()
}

func summary(r *frontend.Result) string {
	if r.OK() {
		return fmt.Sprintf("Accepted: %d token(s), no errors", len(r.Tokens))
	}
	return fmt.Sprintf("%d error(s) in %d token(s)", len(r.Diagnostics), len(r.Tokens))
}

// View draws the entire interface.
func (m Model) View() string {
	title := titleStyle.Render("PrologFront") + " " + subtle.Render(m.name+" via "+m.target)

	tabs := make([]string, len(viewNames))
	for i := range viewNames {
		style := tabStyle
		if View(i) == m.view {
			style = activeTab
		}
		tabs[i] = style.Render(View(i).String())
	}

	status := m.status
	if m.loading {
		status += " (working...)"
	}
	statusLine := statusStyle.Render(status)
	if m.result != nil && m.err == nil {
		statusLine += "  " + subtle.Render(m.result.ID)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		"Program:",
		boxStyle.Render(m.input.View()),
		lipgloss.JoinHorizontal(lipgloss.Top, tabs...),
		boxStyle.Render(m.viewport.View()),
		statusLine,
		m.help.View(m.keys),
	)
}

// Run starts the program on the alternate screen and blocks until it quits.
func Run(analyze Analyzer, name, source, target string) error {
	p := tea.NewProgram(New(analyze, name, source, target), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}
	return nil
}
