package poker

import "errors"

var (
	// ErrInvalidCard is returned when a rank or suit is outside its domain.
	ErrInvalidCard = errors.New("invalid card")
	// ErrInvalidHand is returned when a hand contains an element that is not
	// a valid card.
	ErrInvalidHand = errors.New("invalid hand input")
)
