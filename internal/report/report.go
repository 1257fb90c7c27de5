package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/tatianab/gaia-stats/internal/config"
	"github.com/tatianab/gaia-stats/internal/engine"
	"github.com/tatianab/gaia-stats/internal/stats"
)

// GameSummary is one processed game with its final scores.
type GameSummary struct {
	Game   string        `yaml:"game" json:"game"`
	Winner string        `yaml:"winner" json:"winner"`
	Scores []stats.Score `yaml:"scores" json:"scores"`
}

// Report is everything printed after a run.
type Report struct {
	Games     []GameSummary       `yaml:"games" json:"games"`
	Skipped   []string            `yaml:"skipped,omitempty" json:"skipped,omitempty"`
	Issues    int                 `yaml:"issues" json:"issues"`
	VP        []stats.VPRow       `yaml:"vp" json:"vp"`
	VPShares  []stats.VPShareRow  `yaml:"vp_shares" json:"vp_shares"`
	Resources []stats.ResourceRow `yaml:"resources" json:"resources"`
	Wins      []stats.WinRow      `yaml:"wins" json:"wins"`
	Notes     []string            `yaml:"notes,omitempty" json:"notes,omitempty"`
}

// Build collects the breakdowns of st. res may be nil.
func Build(st *stats.Stats, res *engine.Result) *Report {
	r := &Report{}
	if res != nil {
		for _, out := range res.Processed {
			r.Games = append(r.Games, GameSummary{Game: out.Game, Winner: out.Winner, Scores: out.Scores})
		}
		r.Skipped = res.Skipped
		r.Issues = len(res.Issues)
	}

	vp := st.VPBreakdown()
	r.VP = vp.Rows
	r.VPShares = vp.Shares
	for _, err := range vp.Issues {
		r.Notes = append(r.Notes, err.Error())
	}
	r.Resources = st.ResourceBreakdown()
	r.Wins = st.WinBreakdown()
	return r
}

// Table is a titled grid of pre-formatted cells.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
}

func itoa(v int) string { return strconv.Itoa(v) }

func pct(v float64) string { return strconv.FormatFloat(v, 'f', 2, 64) }

// Tables lays the report out as the tables printed in text mode.
func (r *Report) Tables() []Table {
	var tables []Table

	if len(r.Games) > 0 {
		games := Table{Title: "Games", Headers: []string{"Game", "Winner", "Final Scores"}}
		for _, g := range r.Games {
			var parts []string
			for _, s := range g.Scores {
				parts = append(parts, fmt.Sprintf("%s %d", s.Faction, s.Score))
			}
			games.Rows = append(games.Rows, []string{g.Game, g.Winner, strings.Join(parts, ", ")})
		}
		tables = append(tables, games)
	}

	vp := Table{Title: "VP breakdown", Headers: stats.VPHeaders}
	for _, row := range r.VP {
		cells := []string{row.Faction, itoa(row.Total)}
		for _, c := range stats.Categories {
			cells = append(cells, itoa(row.Get(c)))
		}
		vp.Rows = append(vp.Rows, cells)
	}

	shares := Table{Title: "VP Percentages", Headers: stats.VPShareHeaders}
	for _, row := range r.VPShares {
		cells := []string{row.Faction}
		for _, c := range stats.Categories {
			cells = append(cells, pct(row.Share(c)))
		}
		shares.Rows = append(shares.Rows, cells)
	}

	resources := Table{Title: "Resources breakdown", Headers: stats.ResourceHeaders}
	for _, row := range r.Resources {
		resources.Rows = append(resources.Rows, []string{
			row.Faction,
			itoa(row.Power),
			itoa(row.Leech),
			itoa(row.Coins),
			itoa(row.Ore),
			itoa(row.Knowledge),
			itoa(row.QIC),
			itoa(row.PowerTokens),
		})
	}

	wins := Table{Title: "Win breakdown", Headers: stats.WinHeaders}
	for _, row := range r.Wins {
		wins.Rows = append(wins.Rows, []string{
			row.Faction,
			itoa(row.Matches),
			itoa(row.Wins),
			itoa(row.Losses),
			pct(row.WinPercent),
		})
	}

	return append(tables, vp, shares, resources, wins)
}

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFA500")).
			Bold(true).
			Underline(true)

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EEEEEE")).
			Background(lipgloss.Color("#5F5F87")).
			Bold(true).
			Padding(0, 1)

	cellStyle = lipgloss.NewStyle().Padding(0, 1)

	noteStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Italic(true)
)

// Render draws a single table with lipgloss.
func Render(t Table) string {
	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("#3C3C3C"))).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if col > 0 {
				return cellStyle.Align(lipgloss.Right)
			}
			return cellStyle
		}).
		Headers(t.Headers...).
		Rows(t.Rows...)
	return titleStyle.Render(t.Title) + "\n" + tbl.String()
}

// WriteText prints every table followed by any notes.
func WriteText(w io.Writer, r *Report) error {
	for _, t := range r.Tables() {
		if _, err := fmt.Fprintf(w, "%s\n\n", Render(t)); err != nil {
			return err
		}
	}
	if len(r.Skipped) > 0 {
		if _, err := fmt.Fprintln(w, noteStyle.Render("Not finished: "+strings.Join(r.Skipped, ", "))); err != nil {
			return err
		}
	}
	for _, n := range r.Notes {
		if _, err := fmt.Fprintln(w, noteStyle.Render("Note: "+n)); err != nil {
			return err
		}
	}
	return nil
}

// WriteJSON prints the report as indented JSON.
func WriteJSON(w io.Writer, r *Report) error {
	b, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err
	}
	b = append(b, '\n')
	_, err = w.Write(b)
	return err
}

// WriteYAML prints the report as YAML.
func WriteYAML(w io.Writer, r *Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return err
	}
	return enc.Close()
}

// Write prints the report in the configured format.
func Write(w io.Writer, r *Report, format string) error {
	switch format {
	case config.FormatJSON:
		return WriteJSON(w, r)
	case config.FormatYAML:
		return WriteYAML(w, r)
	case config.FormatTable, "":
		return WriteText(w, r)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
