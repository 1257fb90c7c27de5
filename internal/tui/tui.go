package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tatianab/gaia-stats/internal/config"
	"github.com/tatianab/gaia-stats/internal/engine"
	"github.com/tatianab/gaia-stats/internal/models"
	"github.com/tatianab/gaia-stats/internal/report"
)

type sessionState int

const (
	stateLoading sessionState = iota
	stateBrowsing
	stateError
)

type model struct {
	state     sessionState
	engine    *engine.Engine
	games     []models.Game
	report    *report.Report
	tables    []report.Table
	tab       int
	textInput textinput.Model
	viewport  viewport.Model
	err       error
	width     int
	height    int
}

var (
	tabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#AAAAAA")).
			Padding(0, 1)

	activeTabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EEEEEE")).
			Background(lipgloss.Color("#5F5F87")).
			Bold(true).
			Padding(0, 1)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Italic(true)

	summaryStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("#3C3C3C")).
			PaddingLeft(2).
			Foreground(lipgloss.Color("#AAAAAA"))
)

func NewModel(eng *engine.Engine, games []models.Game) model {
	ti := textinput.New()
	ti.Placeholder = "Filter factions..."
	ti.Focus()
	ti.CharLimit = 32
	ti.Width = 30

	return model{
		state:     stateLoading,
		engine:    eng,
		games:     games,
		textInput: ti,
		viewport:  viewport.New(80, 20),
	}
}

type statsReadyMsg struct {
	report *report.Report
}

type errMsg struct {
	err error
}

func (m model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.runGames())
}

func (m model) runGames() tea.Cmd {
	return func() tea.Msg {
		res, err := m.engine.Run(context.Background(), m.games)
		if err != nil {
			return errMsg{err}
		}
		return statsReadyMsg{report.Build(m.engine.Stats(), res)}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit

		case tea.KeyTab, tea.KeyRight:
			if m.state == stateBrowsing && len(m.tables) > 0 {
				m.tab = (m.tab + 1) % len(m.tables)
				m.refresh()
			}
			return m, nil

		case tea.KeyShiftTab, tea.KeyLeft:
			if m.state == stateBrowsing && len(m.tables) > 0 {
				m.tab = (m.tab + len(m.tables) - 1) % len(m.tables)
				m.refresh()
			}
			return m, nil

		case tea.KeyUp, tea.KeyDown, tea.KeyPgUp, tea.KeyPgDown:
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = int(float64(msg.Width) * 0.75)
		m.viewport.Height = msg.Height - 8
		m.refresh()

	case statsReadyMsg:
		m.report = msg.report
		m.tables = msg.report.Tables()
		m.state = stateBrowsing
		m.refresh()
		return m, nil

	case errMsg:
		m.err = msg.err
		m.state = stateError
		return m, nil
	}

	if m.state == stateBrowsing {
		before := m.textInput.Value()
		m.textInput, cmd = m.textInput.Update(msg)
		if m.textInput.Value() != before {
			m.refresh()
		}
		return m, cmd
	}

	return m, nil
}

// refresh re-renders the current table into the viewport.
func (m *model) refresh() {
	if m.state != stateBrowsing || len(m.tables) == 0 {
		return
	}
	t := filterRows(m.tables[m.tab], m.textInput.Value())
	m.viewport.SetContent(report.Render(t))
	m.viewport.GotoTop()
}

// filterRows keeps rows whose first cell contains query.
func filterRows(t report.Table, query string) report.Table {
	query = strings.TrimSpace(query)
	if query == "" {
		return t
	}
	out := report.Table{Title: t.Title, Headers: t.Headers}
	for _, row := range t.Rows {
		if len(row) > 0 && strings.Contains(row[0], query) {
			out.Rows = append(out.Rows, row)
		}
	}
	return out
}

func (m model) View() string {
	var s string

	switch m.state {
	case stateLoading:
		s = fmt.Sprintf("\n  Aggregating %d games... please wait.\n", len(m.games))

	case stateBrowsing:
		tabs := make([]string, len(m.tables))
		for i, t := range m.tables {
			if i == m.tab {
				tabs[i] = activeTabStyle.Render(t.Title)
			} else {
				tabs[i] = tabStyle.Render(t.Title)
			}
		}

		mainView := lipgloss.JoinHorizontal(lipgloss.Top,
			m.viewport.View(),
			m.renderSummary(),
		)

		help := helpStyle.Render("Tab/←/→ switch table, ↑/↓ scroll, type to filter factions, Esc to quit.")

		s = lipgloss.JoinVertical(lipgloss.Left,
			lipgloss.JoinHorizontal(lipgloss.Top, tabs...),
			mainView,
			"\n"+m.textInput.View(),
			"\n"+help,
		)

	case stateError:
		s = fmt.Sprintf("\n  Error: %v\n\nPress Esc to quit.", m.err)
	}

	return "\n" + s + "\n"
}

func (m model) renderSummary() string {
	if m.report == nil {
		return ""
	}

	content := fmt.Sprintf("Games: %d\nSkipped: %d\nIssues: %d\n", len(m.report.Games), len(m.report.Skipped), m.report.Issues)
	for _, n := range m.report.Notes {
		content += "\n" + n + "\n"
	}

	width := int(float64(m.width) * 0.23)
	return summaryStyle.Width(width).Height(m.viewport.Height).Render(content)
}

// Run opens the browser over games processed by eng.
func Run(eng *engine.Engine, games []models.Game) error {
	p := tea.NewProgram(NewModel(eng, games), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Start loads configuration and input files, then runs the browser.
func Start(paths []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	paths, err = models.ResolveInputs(paths)
	if err != nil {
		return err
	}
	games, err := models.LoadAll(paths)
	if err != nil {
		return err
	}
	return Run(engine.NewEngine(cfg, nil), games)
}
