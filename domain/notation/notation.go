// Package notation converts between poker cards and their text shorthand,
// a rank token followed by a suit letter ("AS", "10H", "7c").
package notation

import (
	"fmt"
	"strings"

	"github.com/luca-patrignani/hand-evaluator/domain/poker"
)

var rankTokens = map[string]poker.Rank{
	"2":  poker.Two,
	"3":  poker.Three,
	"4":  poker.Four,
	"5":  poker.Five,
	"6":  poker.Six,
	"7":  poker.Seven,
	"8":  poker.Eight,
	"9":  poker.Nine,
	"10": poker.Ten,
	"T":  poker.Ten,
	"J":  poker.Jack,
	"Q":  poker.Queen,
	"K":  poker.King,
	"A":  poker.Ace,
}

var suitLetters = map[byte]poker.Suit{
	'C': poker.Club,
	'D': poker.Diamond,
	'H': poker.Heart,
	'S': poker.Spade,
}

// ParseCard converts a token such as "AS", "10h" or "Td" to a Card. Rank
// and suit are case-insensitive. An unknown token yields an error wrapping
// poker.ErrInvalidCard.
func ParseCard(token string) (poker.Card, error) {
	if len(token) < 2 {
		return poker.Card{}, fmt.Errorf("%w: token %q is too short", poker.ErrInvalidCard, token)
	}
	upper := strings.ToUpper(token)

	suit, ok := suitLetters[upper[len(upper)-1]]
	if !ok {
		return poker.Card{}, fmt.Errorf("%w: unknown suit in %q", poker.ErrInvalidCard, token)
	}
	rank, ok := rankTokens[upper[:len(upper)-1]]
	if !ok {
		return poker.Card{}, fmt.Errorf("%w: unknown rank in %q", poker.ErrInvalidCard, token)
	}
	return poker.NewCard(rank, suit)
}

// ParseHand converts whitespace separated tokens to a hand, keeping their
// order. An empty string yields an empty hand.
func ParseHand(s string) (poker.Hand, error) {
	fields := strings.Fields(s)
	hand := make(poker.Hand, 0, len(fields))
	for i, f := range fields {
		c, err := ParseCard(f)
		if err != nil {
			return nil, fmt.Errorf("card %d: %w", i+1, err)
		}
		hand = append(hand, c)
	}
	return hand, nil
}

var suitOut = map[poker.Suit]string{
	poker.Club:    "C",
	poker.Diamond: "D",
	poker.Heart:   "H",
	poker.Spade:   "S",
}

// FormatCard is the inverse of ParseCard, using "10" for tens and upper
// case letters.
func FormatCard(c poker.Card) string {
	if !c.Valid() {
		return "??"
	}
	return c.Rank().Symbol() + suitOut[c.Suit()]
}

// FormatHand formats each card with FormatCard, space separated, in input
// order.
func FormatHand(h poker.Hand) string {
	tokens := make([]string, len(h))
	for i, c := range h {
		tokens[i] = FormatCard(c)
	}
	return strings.Join(tokens, " ")
}
