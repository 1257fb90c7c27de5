package stats

import "github.com/tatianab/gaia-stats/internal/models"

// Score is one faction's final score.
type Score struct {
	Faction string `yaml:"faction" json:"faction"`
	Score   int    `yaml:"score" json:"score"`
}

// ResolveWinner replays the log from the baseline score and returns the
// faction with the highest final score. VP changes made during bidding are
// ignored. Ties go to the faction seen first in the log. ok is false when
// the log has no factions.
func ResolveWinner(log *models.GameLog) (winner string, scores []Score, ok bool) {
	index := make(map[string]int, len(log.Factions))
	scores = make([]Score, len(log.Factions))
	for i, f := range log.Factions {
		index[f] = i
		scores[i] = Score{Faction: f, Score: BaselineVP}
	}

	for _, item := range log.Items {
		i, known := index[item.Faction]
		if !known {
			continue
		}
		for _, ev := range item.Events {
			if ev.Action == actionBid {
				continue
			}
			for _, c := range ev.Changes {
				if c != nil && c.Resource == models.ResourceVP {
					scores[i].Score += c.Signed()
				}
			}
		}
	}

	if len(scores) == 0 {
		return "", scores, false
	}
	best := 0
	for i := 1; i < len(scores); i++ {
		if scores[i].Score > scores[best].Score {
			best = i
		}
	}
	return scores[best].Faction, scores, true
}
