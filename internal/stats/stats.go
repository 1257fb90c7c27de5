package stats

import "github.com/tatianab/gaia-stats/internal/models"

// Stats aggregates faction statistics over one or more game logs. It is not
// safe for concurrent use.
type Stats struct {
	factions map[string]*FactionStats
	order    []string // first-seen order

	games      int
	lastWinner string
	lastScores []Score
}

// New creates an empty Stats.
func New() *Stats {
	return &Stats{factions: make(map[string]*FactionStats)}
}

func (s *Stats) get(faction string) *FactionStats {
	fs, ok := s.factions[faction]
	if !ok {
		fs = NewFactionStats(faction)
		s.factions[faction] = fs
		s.order = append(s.order, faction)
	}
	return fs
}

// Update replays one game into the aggregates and records the match result
// for every faction in the log. Items owned by a faction missing from
// log.Factions are ignored, as they are when scoring. It returns the winner,
// or "" when the log has no factions.
func (s *Stats) Update(log *models.GameLog) string {
	for _, item := range log.Items {
		if !log.HasFaction(item.Faction) || len(item.Events) == 0 {
			continue
		}
		fs := s.get(item.Faction)
		for _, ev := range item.Events {
			fs.Augment(ev)
		}
	}

	winner, scores, ok := ResolveWinner(log)
	s.games++
	s.lastScores = scores
	s.lastWinner = winner
	if !ok {
		return ""
	}

	for _, f := range log.Factions {
		s.get(f).Record.Record(f == winner)
	}
	return winner
}

// Faction returns the stats for one faction.
func (s *Stats) Faction(name string) (*FactionStats, bool) {
	fs, ok := s.factions[name]
	return fs, ok
}

// Factions returns all faction stats in first-seen order.
func (s *Stats) Factions() []*FactionStats {
	out := make([]*FactionStats, 0, len(s.order))
	for _, f := range s.order {
		out = append(out, s.factions[f])
	}
	return out
}

// Games returns the number of logs passed to Update.
func (s *Stats) Games() int {
	return s.games
}

// LastWinner returns the winner of the most recent Update.
func (s *Stats) LastWinner() string {
	return s.lastWinner
}

// LastScores returns the final scores of the most recent Update.
func (s *Stats) LastScores() []Score {
	return s.lastScores
}
