package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/luca-patrignani/hand-evaluator/application"
	"github.com/luca-patrignani/hand-evaluator/domain/notation"
	"github.com/luca-patrignani/hand-evaluator/domain/poker"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("hand-evaluator", flag.ContinueOnError)
	fs.SetOutput(out)
	roundsPath := fs.String("rounds", "", "YAML round file to play (default: built-in rounds)")
	handFlag := fs.String("hand", "", "evaluate a single hand, e.g. \"AS KD JS QC 10H\"")
	schema := fs.Bool("schema", false, "print the JSON schema of the round file and exit")
	debug := fs.Bool("debug", false, "log every evaluated hand")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *schema {
		data, err := application.Schema()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, string(data))
		return err
	}

	logger := newLogger(*debug)

	if *handFlag != "" {
		return evaluateOne(*handFlag, out)
	}

	rounds := application.DefaultRounds()
	if *roundsPath != "" {
		var err error
		rounds, err = application.LoadRounds(*roundsPath)
		if err != nil {
			return err
		}
		logger.Info("round file loaded", "path", *roundsPath, "rounds", len(rounds.Rounds))
	}

	b, err := banner()
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintln(out, b); err != nil {
		return err
	}

	g := application.NewGameOrchestrator(logger)
	outcomes, err := g.PlayAll(rounds)
	if err != nil {
		return err
	}
	for _, o := range outcomes {
		if err := printOutcome(o, out); err != nil {
			return err
		}
	}
	return nil
}

func banner() (string, error) {
	return pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("Five ", pterm.FgDarkGray.ToStyle()),
		putils.LettersFromStringWithStyle("C", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("ard", pterm.FgDarkGray.ToStyle()),
	).Srender()
}

// newLogger returns a slog logger backed by the pterm logger.
func newLogger(debug bool) *slog.Logger {
	level := pterm.LogLevelInfo
	if debug {
		level = pterm.LogLevelDebug
	}
	handler := pterm.NewSlogHandler(pterm.DefaultLogger.WithLevel(level))
	return slog.New(handler)
}

func evaluateOne(cards string, out io.Writer) error {
	hand, err := notation.ParseHand(cards)
	if err != nil {
		return err
	}
	res, err := poker.Evaluate(hand)
	if err != nil {
		return err
	}
	return printResult(hand, res, out)
}
