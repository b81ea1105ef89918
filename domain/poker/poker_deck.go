package poker

import "fmt"

// DeckSize is the number of distinct cards in a standard deck.
const DeckSize = 52

// CardFromIndex converts a card number (1-52) to a Card. Card numbers map to
// suits in order (clubs, diamonds, hearts, spades) with ranks two through ace
// within each suit. Returns an error wrapping ErrInvalidCard if the number is
// outside the valid range.
func CardFromIndex(index int) (Card, error) {
	if index < 1 || index > DeckSize {
		return Card{}, fmt.Errorf("%w: card number %d", ErrInvalidCard, index)
	}
	suit := Suit((index-1)/13) + Club
	rank := Rank((index-1)%13) + Two
	return NewCard(rank, suit)
}

// Index returns the card number (1-52) of the Card, 0 for an invalid card.
func (c Card) Index() int {
	if !c.Valid() {
		return 0
	}
	return int(c.suit-Club)*13 + int(c.rank-Two) + 1
}

// NewDeck returns the 52 distinct cards ordered by card number.
func NewDeck() []Card {
	deck := make([]Card, 0, DeckSize)
	for i := 1; i <= DeckSize; i++ {
		c, _ := CardFromIndex(i)
		deck = append(deck, c)
	}
	return deck
}
