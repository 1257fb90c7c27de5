package stats

import "fmt"

// DegenerateTotalError notes a percentage computed against a zero total.
// The percentage itself is reported as 0.
type DegenerateTotalError struct {
	Faction string
}

func (e *DegenerateTotalError) Error() string {
	return fmt.Sprintf("faction %s has 0 total VP, percentages reported as 0", e.Faction)
}

// Percent returns part as a percentage of total, or 0 when total is 0.
func Percent(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}

// VPRow is one faction's absolute VP breakdown.
type VPRow struct {
	Faction  string `yaml:"faction" json:"faction"`
	VPRecord `yaml:",inline"`
}

// VPShareRow is one faction's VP categories as percentages of total VP.
type VPShareRow struct {
	Faction string    `yaml:"faction" json:"faction"`
	Shares  []float64 `yaml:"shares" json:"shares"` // indexed like Categories
}

// Share returns the percentage for a category.
func (r VPShareRow) Share(c Category) float64 {
	if int(c) < 0 || int(c) >= len(r.Shares) {
		return 0
	}
	return r.Shares[c]
}

// VPBreakdown is the VP view: absolute values, percentages, and a note
// for every faction whose percentages were computed against 0 VP.
type VPBreakdown struct {
	Rows   []VPRow      `yaml:"rows" json:"rows"`
	Shares []VPShareRow `yaml:"shares" json:"shares"`
	Issues []error      `yaml:"-" json:"-"`
}

// ResourceRow is one faction's resource totals.
type ResourceRow struct {
	Faction        string `yaml:"faction" json:"faction"`
	ResourceRecord `yaml:",inline"`
}

// WinRow is one faction's win record.
type WinRow struct {
	Faction    string  `yaml:"faction" json:"faction"`
	WinRecord  `yaml:",inline"`
	WinPercent float64 `yaml:"win_percent" json:"win_percent"`
}

// Column headers for each view, faction first.
var (
	VPHeaders       = append([]string{"Faction", "Total VP"}, categoryHeaders()...)
	VPShareHeaders  = append([]string{"Faction"}, categoryHeaders()...)
	ResourceHeaders = []string{"Faction", "Power", "Leech", "Coins", "Ore", "Knowledge", "QIC", "Power Tokens"}
	WinHeaders      = []string{"Faction", "Matches", "Wins", "Losses", "Win %"}
)

func categoryHeaders() []string {
	h := make([]string, len(Categories))
	for i, c := range Categories {
		h[i] = c.Header()
	}
	return h
}

// VPBreakdown returns the VP view for every faction.
func (s *Stats) VPBreakdown() VPBreakdown {
	var b VPBreakdown
	for _, fs := range s.Factions() {
		b.Rows = append(b.Rows, VPRow{Faction: fs.Faction, VPRecord: fs.VP})

		share := VPShareRow{Faction: fs.Faction, Shares: make([]float64, len(Categories))}
		for i, c := range Categories {
			share.Shares[i] = Percent(fs.VP.Get(c), fs.VP.Total)
		}
		if fs.VP.Total == 0 {
			b.Issues = append(b.Issues, &DegenerateTotalError{Faction: fs.Faction})
		}
		b.Shares = append(b.Shares, share)
	}
	return b
}

// ResourceBreakdown returns resource totals for every faction.
func (s *Stats) ResourceBreakdown() []ResourceRow {
	var rows []ResourceRow
	for _, fs := range s.Factions() {
		rows = append(rows, ResourceRow{Faction: fs.Faction, ResourceRecord: fs.Resources})
	}
	return rows
}

// WinBreakdown returns matches, wins, losses and win percentage for every
// faction.
func (s *Stats) WinBreakdown() []WinRow {
	var rows []WinRow
	for _, fs := range s.Factions() {
		rows = append(rows, WinRow{
			Faction:    fs.Faction,
			WinRecord:  fs.Record,
			WinPercent: fs.Record.WinRate(),
		})
	}
	return rows
}
