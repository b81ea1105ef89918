package poker

import (
	"fmt"
	"strconv"
)

// Suit is the family of a card. The numeric values only matter for scoring,
// where they act as an arbitrary multiplier (see Evaluate).
type Suit uint8

const (
	Club    Suit = 1 // ♣ (black)
	Diamond Suit = 2 // ♦ (red)
	Heart   Suit = 3 // ♥ (red)
	Spade   Suit = 4 // ♠ (black)
)

// Rank is the pip value of a card. Ace counts as 14 everywhere except in
// the 2-3-4-5-A straight.
type Rank uint8

const (
	Two   Rank = 2
	Three Rank = 3
	Four  Rank = 4
	Five  Rank = 5
	Six   Rank = 6
	Seven Rank = 7
	Eight Rank = 8
	Nine  Rank = 9
	Ten   Rank = 10
	Jack  Rank = 11 // J
	Queen Rank = 12 // Q
	King  Rank = 13 // K
	Ace   Rank = 14 // A
)

// Suits lists the four suits in their numeric order.
var Suits = []Suit{Club, Diamond, Heart, Spade}

// Valid reports whether s is one of the four suits.
func (s Suit) Valid() bool {
	return s >= Club && s <= Spade
}

// Symbol returns the glyph of the suit, or "?" for an unknown value.
func (s Suit) Symbol() string {
	switch s {
	case Club:
		return "♣"
	case Diamond:
		return "♦"
	case Heart:
		return "♥"
	case Spade:
		return "♠"
	}
	return "?"
}

func (s Suit) String() string {
	return s.Symbol()
}

// Valid reports whether r is between Two and Ace.
func (r Rank) Valid() bool {
	return r >= Two && r <= Ace
}

// Symbol returns the numeral for 2-10 and the letter for face cards and
// ace, or "?" for an unknown value.
func (r Rank) Symbol() string {
	switch r {
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	}
	if r.Valid() {
		return strconv.Itoa(int(r))
	}
	return "?"
}

func (r Rank) String() string {
	return r.Symbol()
}

// Card represents a playing card with rank and suit.
// The zero Card is not a valid card and is rejected by every predicate.
type Card struct {
	rank Rank
	suit Suit
}

// NewCard creates a new Card with validation.
//
// Parameters:
//   - rank: 2-14 (Two through Ace)
//   - suit: 1-4 (Club, Diamond, Heart, Spade)
//
// Returns the Card or an error wrapping ErrInvalidCard if rank or suit is invalid.
func NewCard(rank Rank, suit Suit) (Card, error) {
	if !rank.Valid() {
		return Card{}, fmt.Errorf("%w: rank %d", ErrInvalidCard, rank)
	}
	if !suit.Valid() {
		return Card{}, fmt.Errorf("%w: suit %d", ErrInvalidCard, suit)
	}
	return Card{rank: rank, suit: suit}, nil
}

// MustCard is like NewCard but panics on invalid input. It is meant for
// card literals whose values are known to be correct.
func MustCard(rank Rank, suit Suit) Card {
	c, err := NewCard(rank, suit)
	if err != nil {
		panic(err)
	}
	return c
}

// Rank returns the rank of the Card.
func (c Card) Rank() Rank {
	return c.rank
}

// Suit returns the suit of the Card.
func (c Card) Suit() Suit {
	return c.suit
}

// Valid reports whether the card was built by NewCard.
func (c Card) Valid() bool {
	return c.rank.Valid() && c.suit.Valid()
}

// key orders cards by rank first and suit second, so equal ranks end up
// adjacent after sorting.
func (c Card) key() int {
	return int(c.rank)*100 + int(c.suit)
}

// String returns the card as rank symbol followed by suit glyph, e.g. "A♠".
func (c Card) String() string {
	if !c.Valid() {
		return "??"
	}
	return c.rank.Symbol() + c.suit.Symbol()
}
