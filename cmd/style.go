package main

import (
	"fmt"
	"io"

	"github.com/pterm/pterm"

	"github.com/luca-patrignani/hand-evaluator/application"
	"github.com/luca-patrignani/hand-evaluator/domain/poker"
	"github.com/luca-patrignani/hand-evaluator/render"
)

func printOutcome(o application.Outcome, out io.Writer) error {
	table, err := pterm.DefaultTable.WithHasHeader().WithBoxed().WithData(render.StandingsTable(o.Standings)).Srender()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "%s\n%s\n", table, render.WinnerPanel(o.Round, o.Winners))
	return err
}

func printResult(hand poker.Hand, res poker.Result, out io.Writer) error {
	pbox := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)
	info := pterm.Sprintfln("%s\n%s\nHigh card: %s\nScore: %d", render.Hand(hand), res.Category, render.Card(res.HighCard), res.Score)
	if res.Category != poker.Nothing {
		info += pterm.Sprintfln("Tie-break: %s", render.Card(res.TieBreak))
	}
	if desc, err := render.Describe(hand); err == nil {
		info += pterm.Sprintfln("Described as: %s", desc)
	}
	_, err := fmt.Fprintln(out, pbox.WithTitle(pterm.LightYellow("|HAND|")).WithTitleTopCenter().Sprint(info))
	return err
}
