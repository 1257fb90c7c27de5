package gamelog

import (
	"regexp"
	"strings"

	"github.com/tatianab/gaia-stats/internal/models"
)

// DefaultFactions is the faction table used to attribute rows. Matching is
// case-sensitive and goes through the table in this order.
var DefaultFactions = []string{
	"ambas", "baltaks", "bescods", "firaks", "geodens", "gleens", "hadsch-hallas",
	"itars", "ivits", "lantids", "nevlas", "taklons", "terrans", "xenos",
}

// tokenSeparator matches a single whitespace character between tokens, the
// same set unicode.IsSpace accepts.
var tokenSeparator = regexp.MustCompile(`[\s\v\x{85}\p{Z}]`)

// Extractor turns raw rows into log items.
type Extractor struct {
	factions []string
}

// NewExtractor creates an extractor for the given faction table. An empty
// table falls back to DefaultFactions.
func NewExtractor(factions []string) *Extractor {
	if len(factions) == 0 {
		factions = DefaultFactions
	}
	return &Extractor{factions: factions}
}

// Faction returns the first faction in table order whose name occurs in
// text. When several names occur, the first one is still returned together
// with an *AttributionAmbiguityError.
func (x *Extractor) Faction(text string) (string, error) {
	var matches []string
	for _, f := range x.factions {
		if strings.Contains(text, f) {
			matches = append(matches, f)
		}
	}
	switch len(matches) {
	case 0:
		return "", nil
	case 1:
		return matches[0], nil
	default:
		return matches[0], &AttributionAmbiguityError{Text: text, Matches: matches, Chosen: matches[0]}
	}
}

// ParseRow builds the log item for one row. index is the row's
// chronological position and is only used to label issues. Token-level
// problems are returned as issues and leave a nil change in place; a non-nil
// error means the row could not be used at all.
func (x *Extractor) ParseRow(index int, row models.Row) (models.LogItem, []Issue, error) {
	var issues []Issue

	switch len(row.Cells) {
	case 0:
		return models.LogItem{}, nil, ErrEmptyRow
	case 1, 3:
	default:
		return models.LogItem{}, nil, &MalformedRowError{Cells: len(row.Cells)}
	}

	text := strings.TrimSpace(strings.Join(row.Cells[0], " "))
	faction, err := x.Faction(text)
	if err != nil {
		issues = append(issues, Issue{Row: index, Err: err})
	}

	item := models.LogItem{Text: text, Faction: faction}
	if len(row.Cells) == 3 {
		events, evIssues := parseEvents(index, row.Cells[1], row.Cells[2])
		item.Events = events
		issues = append(issues, evIssues...)
	}
	return item, issues, nil
}

// parseEvents pairs action labels with token strings. Lists of unequal
// length are truncated to the shorter one.
func parseEvents(index int, actions, tokens []string) ([]models.Event, []Issue) {
	var issues []Issue

	n := min(len(actions), len(tokens))
	if len(actions) != len(tokens) {
		issues = append(issues, Issue{Row: index, Err: ErrLengthMismatch})
	}

	events := make([]models.Event, 0, n)
	for i := 0; i < n; i++ {
		action := strings.TrimSpace(actions[i])
		list := strings.ReplaceAll(strings.TrimSpace(tokens[i]), ",", "")

		var changes []*models.StateChange
		for _, piece := range tokenSeparator.Split(list, -1) {
			piece = strings.TrimSpace(piece)
			if piece == "" {
				changes = append(changes, nil)
				continue
			}
			change, err := ParseToken(piece)
			if err != nil {
				issues = append(issues, Issue{Row: index, Token: piece, Err: err})
			}
			changes = append(changes, change)
		}
		events = append(events, models.Event{Action: action, Changes: changes})
	}
	return events, issues
}
