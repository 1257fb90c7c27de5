package engine

import (
	"context"
	"io"
	"log"

	"github.com/tatianab/gaia-stats/internal/config"
	"github.com/tatianab/gaia-stats/internal/gamelog"
	"github.com/tatianab/gaia-stats/internal/models"
	"github.com/tatianab/gaia-stats/internal/stats"
)

// Engine runs games through the log assembler and a shared Stats.
type Engine struct {
	assembler         *gamelog.Assembler
	stats             *stats.Stats
	includeUnfinished bool
	verbose           bool
	logger            *log.Logger
}

// NewEngine creates an engine from the configuration. A nil logger
// discards all output.
func NewEngine(cfg *config.Config, logger *log.Logger) *Engine {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Engine{
		assembler:         gamelog.NewAssembler(cfg.Factions),
		stats:             stats.New(),
		includeUnfinished: cfg.IncludeUnfinished,
		verbose:           cfg.Verbose,
		logger:            logger,
	}
}

// Outcome is the result of one processed game.
type Outcome struct {
	Game   string
	Winner string
	Scores []stats.Score
}

// GameIssue ties a log issue to the game it was found in.
type GameIssue struct {
	Game string
	gamelog.Issue
}

// Result collects what happened during a Run.
type Result struct {
	Processed []Outcome
	Skipped   []string
	Issues    []GameIssue
}

// Stats returns the aggregate statistics built so far.
func (e *Engine) Stats() *stats.Stats {
	return e.stats
}

// Run processes games in order. Unfinished games are skipped unless the
// configuration includes them. Cancellation is checked between games; the
// partial result is returned with the context error.
func (e *Engine) Run(ctx context.Context, games []models.Game) (*Result, error) {
	res := &Result{}
	for _, g := range games {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		if !g.Ended && !e.includeUnfinished {
			e.logger.Printf("Skipping %s: game not finished", g.Name)
			res.Skipped = append(res.Skipped, g.Name)
			continue
		}

		out, issues := e.ProcessGame(g)
		res.Processed = append(res.Processed, out)
		for _, is := range issues {
			res.Issues = append(res.Issues, GameIssue{Game: g.Name, Issue: is})
		}
	}
	return res, nil
}

// ProcessGame assembles one game's log and adds it to the statistics.
func (e *Engine) ProcessGame(g models.Game) (Outcome, []gamelog.Issue) {
	gameLog, issues := e.assembler.Assemble(g.Rows)
	winner := e.stats.Update(gameLog)

	if e.verbose {
		for _, is := range issues {
			e.logger.Printf("%s: %s", g.Name, is)
		}
	}
	if winner == "" {
		e.logger.Printf("Processed %s: no factions found (%d issues)", g.Name, len(issues))
	} else {
		e.logger.Printf("Processed %s: %s wins (%d issues)", g.Name, winner, len(issues))
	}

	return Outcome{
		Game:   g.Name,
		Winner: winner,
		Scores: e.stats.LastScores(),
	}, issues
}
