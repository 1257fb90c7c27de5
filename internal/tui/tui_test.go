package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tatianab/gaia-stats/internal/config"
	"github.com/tatianab/gaia-stats/internal/engine"
	"github.com/tatianab/gaia-stats/internal/models"
	"github.com/tatianab/gaia-stats/internal/report"
)

func loadedModel(t *testing.T) model {
	t.Helper()
	games := []models.Game{{
		Name:  "Daniel-1day-nobidding-23",
		Ended: true,
		Rows: []models.Row{
			{Cells: [][]string{{"terrans"}, {"round"}, {"3vp"}}},
			{Cells: [][]string{{"itars"}, {"round"}, {"1vp"}}},
		},
	}}
	m := NewModel(engine.NewEngine(&config.Config{}, nil), games)

	msg := m.runGames()()
	ready, ok := msg.(statsReadyMsg)
	if !ok {
		t.Fatalf("runGames returned %T, want statsReadyMsg", msg)
	}
	next, _ := m.Update(ready)
	return next.(model)
}

func TestLoadingToBrowsing(t *testing.T) {
	m := loadedModel(t)
	if m.state != stateBrowsing {
		t.Fatalf("state = %v, want browsing", m.state)
	}
	if len(m.tables) != 5 {
		t.Errorf("expected 5 tables, got %d", len(m.tables))
	}
	if !strings.Contains(m.View(), "Games") {
		t.Error("view should list the table tabs")
	}
}

func TestTabSwitching(t *testing.T) {
	m := loadedModel(t)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(model)
	if m.tab != 1 {
		t.Errorf("tab = %d after Tab, want 1", m.tab)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m = next.(model)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m = next.(model)
	if m.tab != len(m.tables)-1 {
		t.Errorf("tab = %d after wrapping left, want %d", m.tab, len(m.tables)-1)
	}
}

func TestErrorState(t *testing.T) {
	m := NewModel(nil, nil)
	next, _ := m.Update(errMsg{errors.New("boom")})
	m = next.(model)
	if m.state != stateError || !strings.Contains(m.View(), "boom") {
		t.Errorf("expected error view, got state %v: %s", m.state, m.View())
	}
}

func TestFilterRows(t *testing.T) {
	tb := report.Table{
		Title:   "Win breakdown",
		Headers: []string{"Faction", "Wins"},
		Rows:    [][]string{{"terrans", "1"}, {"itars", "0"}, {"ivits", "2"}},
	}

	if got := filterRows(tb, ""); len(got.Rows) != 3 {
		t.Errorf("empty filter kept %d rows, want 3", len(got.Rows))
	}
	got := filterRows(tb, "i")
	if len(got.Rows) != 2 || got.Rows[0][0] != "itars" || got.Rows[1][0] != "ivits" {
		t.Errorf("filter %q = %v", "i", got.Rows)
	}
	if got.Title != tb.Title || len(got.Headers) != 2 {
		t.Errorf("filter should keep title and headers: %+v", got)
	}
}
