package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"strings"

	"github.com/tatianab/gaia-stats/internal/config"
	"github.com/tatianab/gaia-stats/internal/engine"
	"github.com/tatianab/gaia-stats/internal/gamelog"
	"github.com/tatianab/gaia-stats/internal/models"
	"github.com/tatianab/gaia-stats/internal/report"
	"github.com/tatianab/gaia-stats/internal/stats"
)

const maxTurns = 40

var actions = []string{
	"round", "booster", "final1", "final2", "tech", "adv tech", "federation",
	"qic action", "terra", "nav", "gaia", "spend", "charge", "build", "bid",
}

var resourceCodes = []string{"vp", "pw", "c", "o", "k", "q", "t"}

// simulator builds synthetic games and remembers what the aggregates
// should come out as.
type simulator struct {
	rng *rand.Rand

	vpTotals map[string]int // sum of every processed VP change, bids included
	gameVP   map[string]int // same, for the current game only
	scores   map[string]int // final score of the current game
}

func (s *simulator) token() string {
	code := resourceCodes[s.rng.IntN(len(resourceCodes))]
	tok := fmt.Sprintf("%d%s", s.rng.IntN(6)+1, code)
	if s.rng.IntN(3) == 0 {
		tok = "-" + tok
	}
	return tok
}

// row returns one faction row and updates the expected VP counts.
func (s *simulator) row(faction string) models.Row {
	n := s.rng.IntN(2) + 1
	acts := make([]string, n)
	toks := make([]string, n)
	for i := range n {
		acts[i] = actions[s.rng.IntN(len(actions))]

		var parts []string
		for range s.rng.IntN(3) + 1 {
			tok := s.token()
			parts = append(parts, tok)

			c, err := gamelog.ParseToken(tok)
			if err != nil || c.Resource != models.ResourceVP {
				continue
			}
			s.gameVP[faction] += c.Signed()
			if acts[i] != "bid" {
				s.scores[faction] += c.Signed()
			}
		}
		toks[i] = strings.Join(parts, ", ")
	}
	return models.Row{Cells: [][]string{{faction + " acts"}, acts, toks}}
}

func (s *simulator) game(name string) models.Game {
	players := s.rng.Perm(len(gamelog.DefaultFactions))[:s.rng.IntN(3)+2]
	s.scores = make(map[string]int)
	s.gameVP = make(map[string]int)

	var rows []models.Row
	for turn := range maxTurns {
		if turn%10 == 0 {
			rows = append(rows, models.Row{Cells: [][]string{{fmt.Sprintf("Round %d", turn/10+1)}}})
		}
		faction := gamelog.DefaultFactions[players[s.rng.IntN(len(players))]]
		rows = append(rows, s.row(faction))
	}

	// Logs list the most recent move first.
	for i, j := 0, len(rows)-1; i < j; i, j = i+1, j-1 {
		rows[i], rows[j] = rows[j], rows[i]
	}
	return models.Game{Name: name, Ended: s.rng.IntN(5) != 0, Rows: rows}
}

func main() {
	games := flag.Int("games", 5, "number of games to simulate")
	seed := flag.Uint64("seed", 1, "random seed")
	flag.Parse()

	sim := &simulator{
		rng:      rand.New(rand.NewPCG(*seed, *seed)),
		vpTotals: make(map[string]int),
	}

	eng := engine.NewEngine(&config.Config{}, log.New(os.Stderr, "", 0))
	failed := false
	for i := range *games {
		g := sim.game(fmt.Sprintf("sim-%d", i+1))
		if !g.Ended {
			// Unfinished games never reach the aggregates.
			continue
		}
		for f, vp := range sim.gameVP {
			sim.vpTotals[f] += vp
		}
		out, issues := eng.ProcessGame(g)
		if len(issues) > 0 {
			fmt.Printf("%s: unexpected issues: %v\n", g.Name, issues)
			failed = true
		}

		best := stats.BaselineVP + sim.scores[out.Winner]
		for _, sc := range out.Scores {
			if want := stats.BaselineVP + sim.scores[sc.Faction]; sc.Score != want {
				fmt.Printf("%s: %s scored %d, want %d\n", g.Name, sc.Faction, sc.Score, want)
				failed = true
			}
			if sc.Score > best {
				fmt.Printf("%s: %s beat winner %s\n", g.Name, sc.Faction, out.Winner)
				failed = true
			}
		}
	}

	for _, fs := range eng.Stats().Factions() {
		if want := stats.BaselineVP + sim.vpTotals[fs.Faction]; fs.VP.Total != want {
			fmt.Printf("%s: total VP %d, want %d\n", fs.Faction, fs.VP.Total, want)
			failed = true
		}
	}

	if err := report.Write(os.Stdout, report.Build(eng.Stats(), nil), config.FormatTable); err != nil {
		log.Fatalf("Failed to write report: %v", err)
	}
	if failed {
		os.Exit(1)
	}
	fmt.Println("Simulation consistent.")
}
