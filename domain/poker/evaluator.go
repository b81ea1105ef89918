package poker

// Category is the class of a five-card hand. Higher values are stronger.
type Category int

const (
	Nothing Category = iota
	OnePair
	TwoPairs
	Threes
	FullHouse
	Fours
	Straight
	Flush
	StraightFlush
	RoyalFlush
)

var categoryNames = map[Category]string{
	Nothing:       "Is nothing",
	OnePair:       "Is one pair",
	TwoPairs:      "Is two pairs",
	Threes:        "Is threes",
	FullHouse:     "Is full house",
	Fours:         "Is fours",
	Straight:      "Is straight",
	Flush:         "Is flush",
	StraightFlush: "Is straight flush",
	RoyalFlush:    "Is royal flush",
}

// String returns the sentence-cased label of the category, e.g. "Is fours".
func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return "Is unknown"
}

// rule binds a category to its predicate and base value.
type rule struct {
	category Category
	base     int
	match    Predicate
}

// rules is ordered strongest first; Evaluate stops at the first match.
var rules = []rule{
	{RoyalFlush, 9000, IsRoyalFlush},
	{StraightFlush, 8000, IsStraightFlush},
	{Flush, 7000, IsFlush},
	{Straight, 6000, IsStraight},
	{Fours, 5000, IsFours},
	{FullHouse, 4000, IsFullHouse},
	{Threes, 3000, IsThrees},
	{TwoPairs, 2000, IsTwoPairs},
	{OnePair, 1000, IsOnePair},
}

// Base returns the base value the category contributes to a score, 0 for
// Nothing.
func (c Category) Base() int {
	for _, r := range rules {
		if r.category == c {
			return r.base
		}
	}
	return 0
}

// Predicate returns the predicate that detects the category, or nil for
// Nothing.
func (c Category) Predicate() Predicate {
	for _, r := range rules {
		if r.category == c {
			return r.match
		}
	}
	return nil
}

// Result is the outcome of evaluating a hand.
type Result struct {
	Category Category
	// TieBreak is the card returned by the matching predicate, zero when
	// nothing matched.
	TieBreak Card
	// HighCard is the greatest card of the hand in (rank, suit) order, zero
	// for hands that are not HandSize long.
	HighCard Card
	Score    int
}

// Evaluate classifies the hand and computes its score.
//
// The predicates are tried strongest first. The first match contributes
//
//	base * tieBreak.rank * tieBreak.suit
//
// and every five-card hand adds highCard.rank*10 + highCard.suit. Suits
// have no rank in poker; their numeric value is only a deterministic
// multiplier and can make a lower category outscore a higher one.
//
// A hand that does not hold exactly HandSize cards yields a Nothing result
// with score 0. An invalid card yields an error wrapping ErrInvalidHand.
func Evaluate(hand Hand) (Result, error) {
	if err := hand.Validate(); err != nil {
		return Result{}, err
	}
	if len(hand) != HandSize {
		return Result{Category: Nothing}, nil
	}

	res := Result{Category: Nothing}
	for _, r := range rules {
		tie, ok, err := r.match(hand)
		if err != nil {
			return Result{}, err
		}
		if ok {
			res.Category = r.category
			res.TieBreak = tie
			res.Score = r.base * int(tie.rank) * int(tie.suit)
			break
		}
	}

	high, _ := hand.Highest()
	res.HighCard = high
	res.Score += int(high.rank)*10 + int(high.suit)
	return res, nil
}

// Classify returns the category of the hand without scoring it.
func Classify(hand Hand) (Category, error) {
	res, err := Evaluate(hand)
	if err != nil {
		return Nothing, err
	}
	return res.Category, nil
}
