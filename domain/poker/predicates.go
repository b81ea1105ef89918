package poker

// Predicate reports whether a hand belongs to one category and, if so,
// which card breaks ties within that category.
//
// Every predicate validates its input, works on a sorted copy of the hand
// and never matches a hand that does not hold exactly HandSize cards. The
// error is non-nil only when the hand contains an invalid card.
type Predicate func(hand Hand) (Card, bool, error)

// checkHand validates the hand and reports whether it has the right size
// to be classified.
func checkHand(hand Hand) (bool, error) {
	if err := hand.Validate(); err != nil {
		return false, err
	}
	return len(hand) == HandSize, nil
}

// IsRoyalFlush matches a straight flush whose rank-sorted top card is an
// ace. That covers 10-J-Q-K-A and also the suited 2-3-4-5-A, whose sorted
// top card is the ace too. The tie-break is the ace.
func IsRoyalFlush(hand Hand) (Card, bool, error) {
	high, ok, err := IsStraightFlush(hand)
	if err != nil || !ok {
		return Card{}, false, err
	}
	if high.rank != Ace {
		return Card{}, false, nil
	}
	return high, true, nil
}

// IsStraightFlush matches five consecutive ranks of the same suit. The
// tie-break is the highest card by rank; for 2-3-4-5-A that is the ace.
func IsStraightFlush(hand Hand) (Card, bool, error) {
	high, ok, err := IsStraight(hand)
	if err != nil || !ok {
		return Card{}, false, err
	}
	if _, ok, _ := IsFlush(hand); !ok {
		return Card{}, false, nil
	}
	return high, true, nil
}

// IsFlush matches five cards of the same suit, whatever their ranks. The
// tie-break is the highest card.
func IsFlush(hand Hand) (Card, bool, error) {
	ok, err := checkHand(hand)
	if err != nil || !ok {
		return Card{}, false, err
	}
	sorted := hand.bySuit()
	if sorted[0].suit != sorted[HandSize-1].suit {
		return Card{}, false, nil
	}
	high, _ := hand.Highest()
	return high, true, nil
}

var (
	wheel    = [HandSize]Rank{Two, Three, Four, Five, Ace}
	broadway = [HandSize]Rank{Ten, Jack, Queen, King, Ace}
)

// IsStraight matches five consecutive ranks regardless of suit. An ace may
// close either 10-J-Q-K-A or 2-3-4-5-A. The tie-break is the last card of
// the rank-sorted hand, which is the ace in both ace-inclusive runs.
func IsStraight(hand Hand) (Card, bool, error) {
	ok, err := checkHand(hand)
	if err != nil || !ok {
		return Card{}, false, err
	}
	sorted := hand.byKey()
	top := sorted[HandSize-1]

	var ranks [HandSize]Rank
	for i, c := range sorted {
		ranks[i] = c.rank
	}
	if top.rank == Ace {
		if ranks == wheel || ranks == broadway {
			return top, true, nil
		}
		return Card{}, false, nil
	}
	for i := 1; i < HandSize; i++ {
		if ranks[i] != ranks[i-1]+1 {
			return Card{}, false, nil
		}
	}
	return top, true, nil
}

// IsFours matches four cards of the same rank. The tie-break is the fourth
// card of the quadruple in (rank, suit) order.
func IsFours(hand Hand) (Card, bool, error) {
	ok, err := checkHand(hand)
	if err != nil || !ok {
		return Card{}, false, err
	}
	sorted := hand.byKey()
	for _, r := range rankRuns(sorted) {
		// a run of five only happens with duplicate cards
		if r.len() >= 4 {
			return sorted[r.start+3], true, nil
		}
	}
	return Card{}, false, nil
}

// IsFullHouse matches three cards of one rank and two of another. The
// tie-break is the highest card of the triple.
func IsFullHouse(hand Hand) (Card, bool, error) {
	return groupMatch(hand, 3, 3, 2)
}

// IsThrees matches exactly one triple with two unmatched cards.
func IsThrees(hand Hand) (Card, bool, error) {
	return groupMatch(hand, 3, 3, 1, 1)
}

// IsTwoPairs matches two pairs of different ranks and one unmatched card.
// The tie-break is the highest card of the higher pair.
func IsTwoPairs(hand Hand) (Card, bool, error) {
	return groupMatch(hand, 2, 2, 2, 1)
}

// IsOnePair matches exactly one pair with three unmatched cards.
func IsOnePair(hand Hand) (Card, bool, error) {
	return groupMatch(hand, 2, 2, 1, 1, 1)
}

// groupMatch matches a key-sorted hand whose rank runs have exactly the
// given lengths and returns the last card of the highest run of size group.
func groupMatch(hand Hand, group int, want ...int) (Card, bool, error) {
	ok, err := checkHand(hand)
	if err != nil || !ok {
		return Card{}, false, err
	}
	sorted := hand.byKey()
	runs := rankRuns(sorted)
	if !sameShape(shape(runs), want...) {
		return Card{}, false, nil
	}
	for i := len(runs) - 1; i >= 0; i-- {
		if runs[i].len() == group {
			return sorted[runs[i].end-1], true, nil
		}
	}
	return Card{}, false, nil
}
