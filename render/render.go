// Package render turns cards, hands and standings into terminal output.
package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pterm/pterm"

	"github.com/luca-patrignani/hand-evaluator/domain/poker"
)

// FaceDown is the display string for a missing or invalid card.
const FaceDown = "▓"

// Suit returns the coloured glyph of the suit: red for diamonds and hearts,
// black for clubs and spades.
func Suit(s poker.Suit) string {
	switch s {
	case poker.Club, poker.Spade:
		return pterm.Black(s.Symbol())
	case poker.Diamond, poker.Heart:
		return pterm.LightRed(s.Symbol())
	}
	return "?"
}

// Card returns the rank symbol followed by the coloured suit glyph.
func Card(c poker.Card) string {
	if !c.Valid() {
		return FaceDown
	}
	return c.Rank().Symbol() + Suit(c.Suit())
}

// Hand renders every card with Card, space separated, in input order.
func Hand(h poker.Hand) string {
	parts := make([]string, len(h))
	for i, c := range h {
		parts[i] = Card(c)
	}
	return strings.Join(parts, " ")
}

// PlainHand is Hand without colours.
func PlainHand(h poker.Hand) string {
	return pterm.RemoveColorFromString(Hand(h))
}

// StandingsTable builds table rows for ranked standings, header first.
func StandingsTable(standings []poker.Standing) pterm.TableData {
	data := pterm.TableData{{"#", "Player", "Hand", "Category", "High card", "Score"}}
	for i, s := range standings {
		data = append(data, []string{
			strconv.Itoa(i + 1),
			s.Player,
			Hand(s.Hand),
			s.Result.Category.String(),
			Card(s.Result.HighCard),
			strconv.Itoa(s.Result.Score),
		})
	}
	return data
}

// WinnerPanel returns a box naming the winners of a round. Several winners
// means a tie on score.
func WinnerPanel(round string, winners []poker.Standing) string {
	pbox := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)
	info := ""
	if len(winners) == 0 {
		info = pterm.Sprintfln("No players")
	}
	for _, w := range winners {
		info += pterm.Sprintfln("%s wins with %s (%s, %d)", pterm.LightCyan(w.Player), Hand(w.Hand), w.Result.Category, w.Result.Score)
	}
	title := fmt.Sprintf("|%s|", strings.ToUpper(round))
	return pbox.WithTitle(pterm.LightGreen(title)).WithTitleTopCenter().Sprint(info)
}
