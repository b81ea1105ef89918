package render

import (
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luca-patrignani/hand-evaluator/domain/notation"
	"github.com/luca-patrignani/hand-evaluator/domain/poker"
)

func parse(t *testing.T, s string) poker.Hand {
	t.Helper()
	h, err := notation.ParseHand(s)
	require.NoError(t, err)
	return h
}

func TestCardGlyphs(t *testing.T) {
	assert.Equal(t, "A♠", pterm.RemoveColorFromString(Card(poker.MustCard(poker.Ace, poker.Spade))))
	assert.Equal(t, "10♥", pterm.RemoveColorFromString(Card(poker.MustCard(poker.Ten, poker.Heart))))
	assert.Equal(t, FaceDown, Card(poker.Card{}))
	assert.Equal(t, "?", Suit(0))
}

func TestPlainHandRoundTrip(t *testing.T) {
	h := parse(t, "AS KD JS QC 10H")
	assert.Equal(t, "A♠ K♦ J♠ Q♣ 10♥", PlainHand(h))
	assert.Equal(t, h.String(), PlainHand(h))
}

func TestStandingsTable(t *testing.T) {
	h := parse(t, "AC AD 7H KS QC")
	res, err := poker.Evaluate(h)
	require.NoError(t, err)
	data := StandingsTable([]poker.Standing{{Player: "Shade", Hand: h, Result: res}})
	require.Len(t, data, 2)
	assert.Equal(t, "Player", data[0][1])
	assert.Equal(t, "1", data[1][0])
	assert.Equal(t, "Shade", data[1][1])
	assert.Equal(t, "Is one pair", data[1][3])
	assert.Equal(t, "A♦", pterm.RemoveColorFromString(data[1][4]))
	assert.Equal(t, "28142", data[1][5])
}

func TestWinnerPanel(t *testing.T) {
	h := parse(t, "3C 3D 3S KS KC")
	res, err := poker.Evaluate(h)
	require.NoError(t, err)
	panel := pterm.RemoveColorFromString(WinnerPanel("Round 3", []poker.Standing{{Player: "Shade", Hand: h, Result: res}}))
	assert.Contains(t, panel, "ROUND 3")
	assert.Contains(t, panel, "Shade wins")
	assert.Contains(t, panel, "Is full house")
}

func TestDescribe(t *testing.T) {
	desc, err := Describe(parse(t, "AS KS QS JS 10S"))
	require.NoError(t, err)
	assert.NotEmpty(t, desc)

	_, err = Describe(parse(t, "2S 2D 2H AS AS"))
	assert.ErrorIs(t, err, poker.ErrInvalidHand)

	_, err = Describe(parse(t, "AS KS"))
	assert.ErrorIs(t, err, poker.ErrInvalidHand)
}
