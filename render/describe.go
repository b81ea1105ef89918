package render

import (
	"fmt"

	ph "github.com/paulhankin/poker"

	"github.com/luca-patrignani/hand-evaluator/domain/poker"
)

// Describe returns a conventional description of a five-card hand, such as
// "pair of aces", computed by github.com/paulhankin/poker. It does not use
// the scoring of this module, so it can serve as a second opinion next to
// Evaluate. The hand must hold five valid, distinct cards.
func Describe(hand poker.Hand) (string, error) {
	if err := hand.Validate(); err != nil {
		return "", err
	}
	if len(hand) != poker.HandSize {
		return "", fmt.Errorf("%w: cannot describe %d cards", poker.ErrInvalidHand, len(hand))
	}
	seen := make(map[poker.Card]bool, len(hand))
	cards := make([]ph.Card, 0, len(hand))
	for _, c := range hand {
		if seen[c] {
			return "", fmt.Errorf("%w: duplicate card %s", poker.ErrInvalidHand, c)
		}
		seen[c] = true
		pc, err := toReference(c)
		if err != nil {
			return "", err
		}
		cards = append(cards, pc)
	}
	return ph.Describe(cards)
}

// toReference maps a card to the library encoding: suits count from zero
// with clubs first and the ace is rank 1.
func toReference(c poker.Card) (ph.Card, error) {
	rank := ph.Rank(c.Rank())
	if c.Rank() == poker.Ace {
		rank = 1
	}
	pc, err := ph.MakeCard(ph.Suit(c.Suit()-poker.Club), rank)
	if err != nil {
		return pc, fmt.Errorf("invalid card %s: %w", c, err)
	}
	return pc, nil
}
