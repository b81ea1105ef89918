package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pterm/pterm"

	"github.com/luca-patrignani/hand-evaluator/application"
	"github.com/luca-patrignani/hand-evaluator/domain/poker"
)

func TestRunSchema(t *testing.T) {
	var out bytes.Buffer
	if err := run([]string{"-schema"}, &out); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "\"rounds\"") {
		t.Fatalf("expected schema output, got %s", out.String())
	}
}

func TestRunHand(t *testing.T) {
	var out bytes.Buffer
	if err := run([]string{"-hand", "AC AD 7H KS QC"}, &out); err != nil {
		t.Fatal(err)
	}
	text := pterm.RemoveColorFromString(out.String())
	if !strings.Contains(text, "Is one pair") || !strings.Contains(text, "28142") {
		t.Fatalf("unexpected output %s", text)
	}
}

func TestRunHandInvalid(t *testing.T) {
	var out bytes.Buffer
	err := run([]string{"-hand", "AC AD 7H KS 1C"}, &out)
	if !errors.Is(err, poker.ErrInvalidCard) {
		t.Fatalf("expected ErrInvalidCard, got %v", err)
	}
}

func TestRunRoundFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rounds.yaml")
	doc := "rounds:\n  - name: Final\n    players:\n      - name: Alice\n        cards: AS KS QS JS 10S\n      - name: Bob\n        cards: 9H 9D 9S 9C 2H\n"
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer
	if err := run([]string{"-rounds", path}, &out); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(pterm.RemoveColorFromString(out.String()), "Alice wins") {
		t.Fatalf("expected Alice to win, got %s", out.String())
	}
}

func TestRunWritesBanner(t *testing.T) {
	var out bytes.Buffer
	if err := run(nil, &out); err != nil {
		t.Fatal(err)
	}
	b, err := banner()
	if err != nil {
		t.Fatal(err)
	}
	if b == "" || !strings.HasPrefix(out.String(), b) {
		t.Fatalf("expected the output to start with the banner, got %s", out.String())
	}
}

func TestRunRoundFileInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rounds.yaml")
	if err := os.WriteFile(path, []byte("rounds: []\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer
	err := run([]string{"-rounds", path}, &out)
	if !errors.Is(err, application.ErrInvalidRound) {
		t.Fatalf("expected ErrInvalidRound, got %v", err)
	}
}
