// Package application plays rounds of five-card hands: it parses each
// player's cards, evaluates them and ranks the players.
package application

import (
	"fmt"
	"log/slog"

	"github.com/luca-patrignani/hand-evaluator/domain/notation"
	"github.com/luca-patrignani/hand-evaluator/domain/poker"
)

// Outcome is the ranked result of one round.
type Outcome struct {
	Round     string
	Standings []poker.Standing // strongest first
	Winners   []poker.Standing
}

// GameOrchestrator turns rounds into outcomes.
type GameOrchestrator struct {
	logger *slog.Logger
}

// NewGameOrchestrator returns an orchestrator logging to logger, or to
// slog.Default() when logger is nil.
func NewGameOrchestrator(logger *slog.Logger) *GameOrchestrator {
	if logger == nil {
		logger = slog.Default()
	}
	return &GameOrchestrator{logger: logger}
}

// Play evaluates every seat of the round and ranks them by score. A seat
// whose cards cannot be parsed fails the whole round.
func (g *GameOrchestrator) Play(round Round) (Outcome, error) {
	standings := make([]poker.Standing, 0, len(round.Players))
	for _, seat := range round.Players {
		hand, err := notation.ParseHand(seat.Cards)
		if err != nil {
			return Outcome{}, fmt.Errorf("round %q, player %s: %w", round.Name, seat.Name, err)
		}
		res, err := poker.Evaluate(hand)
		if err != nil {
			return Outcome{}, fmt.Errorf("round %q, player %s: %w", round.Name, seat.Name, err)
		}
		g.logger.Debug("hand evaluated",
			"round", round.Name,
			"player", seat.Name,
			"hand", hand.String(),
			"category", res.Category.String(),
			"score", res.Score)
		standings = append(standings, poker.Standing{Player: seat.Name, Hand: hand, Result: res})
	}

	ranked := poker.RankStandings(standings)
	winners := poker.Winners(ranked)
	for _, w := range winners {
		g.logger.Info("round winner", "round", round.Name, "player", w.Player, "category", w.Result.Category.String(), "score", w.Result.Score)
	}
	return Outcome{Round: round.Name, Standings: ranked, Winners: winners}, nil
}

// PlayAll plays the rounds in file order and stops at the first error.
func (g *GameOrchestrator) PlayAll(file *RoundFile) ([]Outcome, error) {
	outcomes := make([]Outcome, 0, len(file.Rounds))
	for _, r := range file.Rounds {
		o, err := g.Play(r)
		if err != nil {
			return nil, err
		}
		outcomes = append(outcomes, o)
	}
	return outcomes, nil
}
