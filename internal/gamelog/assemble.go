package gamelog

import (
	"strings"

	"github.com/tatianab/gaia-stats/internal/models"
)

// Assembler builds a GameLog from extracted rows.
type Assembler struct {
	extractor *Extractor
}

// NewAssembler creates an assembler attributing rows with the given
// faction table (nil for DefaultFactions).
func NewAssembler(factions []string) *Assembler {
	return &Assembler{extractor: NewExtractor(factions)}
}

// Assemble builds a GameLog using DefaultFactions.
func Assemble(rows []models.Row) (*models.GameLog, []Issue) {
	return NewAssembler(nil).Assemble(rows)
}

// Assemble reverses rows, which arrive most-recent-first, into chronological
// order and parses each one. Rows that cannot be parsed are left out of the
// log and reported as issues.
func (a *Assembler) Assemble(rows []models.Row) (*models.GameLog, []Issue) {
	log := &models.GameLog{
		Factions: []string{},
		Items:    make([]models.LogItem, 0, len(rows)),
	}
	var issues []Issue

	seen := make(map[string]bool)
	for i := range rows {
		index := i
		row := rows[len(rows)-1-i]

		item, rowIssues, err := a.extractor.ParseRow(index, row)
		issues = append(issues, rowIssues...)
		if err != nil {
			issues = append(issues, Issue{Row: index, Err: err})
			continue
		}
		log.Items = append(log.Items, item)

		faction := strings.TrimSpace(item.Faction)
		if faction != "" && !seen[faction] {
			seen[faction] = true
			log.Factions = append(log.Factions, faction)
		}
	}

	return log, issues
}
