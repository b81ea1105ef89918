package poker

import (
	"fmt"
	"sort"
	"strings"
)

// HandSize is the only hand length that can match a category.
const HandSize = 5

// Hand is a sequence of cards. Any length is accepted, but only hands of
// HandSize cards are classified. Duplicate cards are not rejected.
type Hand []Card

// Validate returns an error wrapping ErrInvalidHand if any card is not valid.
func (h Hand) Validate() error {
	for i, c := range h {
		if !c.Valid() {
			return fmt.Errorf("%w: element %d (rank %d, suit %d) is not a card", ErrInvalidHand, i, c.rank, c.suit)
		}
	}
	return nil
}

func (h Hand) String() string {
	parts := make([]string, len(h))
	for i, c := range h {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

// sortedBy returns a copy of the hand sorted by less. The caller's slice is
// never reordered.
func (h Hand) sortedBy(less func(a, b Card) bool) Hand {
	out := make(Hand, len(h))
	copy(out, h)
	sort.SliceStable(out, func(i, j int) bool {
		return less(out[i], out[j])
	})
	return out
}

func (h Hand) byKey() Hand {
	return h.sortedBy(func(a, b Card) bool { return a.key() < b.key() })
}

func (h Hand) bySuit() Hand {
	return h.sortedBy(func(a, b Card) bool { return a.suit < b.suit })
}

// Highest returns the greatest card under the (rank, suit) ordering and
// false for an empty hand.
func (h Hand) Highest() (Card, bool) {
	if len(h) == 0 {
		return Card{}, false
	}
	high := h[0]
	for _, c := range h[1:] {
		if c.key() > high.key() {
			high = c
		}
	}
	return high, true
}

// run is a maximal stretch of equal ranks in a key-sorted hand, as
// half-open indexes.
type run struct {
	start, end int
}

func (r run) len() int {
	return r.end - r.start
}

// rankRuns splits a key-sorted hand into runs of equal rank.
func rankRuns(sorted Hand) []run {
	var runs []run
	start := 0
	for i := 1; i <= len(sorted); i++ {
		if i == len(sorted) || sorted[i].rank != sorted[start].rank {
			runs = append(runs, run{start: start, end: i})
			start = i
		}
	}
	return runs
}

// shape returns the run lengths of a key-sorted hand, longest first, e.g.
// [3 2] for a full house.
func shape(runs []run) []int {
	lens := make([]int, len(runs))
	for i, r := range runs {
		lens[i] = r.len()
	}
	sort.Sort(sort.Reverse(sort.IntSlice(lens)))
	return lens
}

func sameShape(a []int, b ...int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
