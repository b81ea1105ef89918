package poker

import "sort"

// Compare orders two results by score. It returns 1 if a is stronger, -1
// if b is stronger and 0 on a tie.
func Compare(a, b Result) int {
	switch {
	case a.Score > b.Score:
		return 1
	case a.Score < b.Score:
		return -1
	}
	return 0
}

// Standing is one player's evaluated hand.
type Standing struct {
	Player string
	Hand   Hand
	Result Result
}

// RankStandings returns the standings sorted by descending score. Equal
// scores keep their input order. The input slice is not modified.
func RankStandings(standings []Standing) []Standing {
	ranked := make([]Standing, len(standings))
	copy(ranked, standings)
	sort.SliceStable(ranked, func(i, j int) bool {
		return Compare(ranked[i].Result, ranked[j].Result) > 0
	})
	return ranked
}

// Winners returns the leading standings that share the top score. It
// ranks the input itself, so callers may pass unsorted standings.
func Winners(standings []Standing) []Standing {
	ranked := RankStandings(standings)
	if len(ranked) == 0 {
		return nil
	}
	n := 1
	for n < len(ranked) && Compare(ranked[n].Result, ranked[0].Result) == 0 {
		n++
	}
	return ranked[:n]
}
