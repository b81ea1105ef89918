package application

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleRounds = `
rounds:
  - name: Final
    players:
      - name: Alice
        cards: AS KS QS JS 10S
      - name: Bob
        cards: 9H 9D 9S 9C 2H
`

func TestParseRounds(t *testing.T) {
	f, err := ParseRounds([]byte(sampleRounds))
	require.NoError(t, err)
	require.Len(t, f.Rounds, 1)
	assert.Equal(t, "Final", f.Rounds[0].Name)
	assert.Equal(t, Seat{Name: "Bob", Cards: "9H 9D 9S 9C 2H"}, f.Rounds[0].Players[1])
}

func TestParseRoundsInvalid(t *testing.T) {
	tests := map[string]string{
		"malformed yaml": "rounds: [",
		"no rounds":      "rounds: []",
		"one player": `
rounds:
  - name: Solo
    players:
      - name: Alice
        cards: AS KS QS JS 10S
`,
		"missing name": `
rounds:
  - players:
      - name: Alice
        cards: AS KS QS JS 10S
      - name: Bob
        cards: 2S 3S 4S 5S 6S
`,
		"duplicate player": `
rounds:
  - name: Twins
    players:
      - name: Alice
        cards: AS KS QS JS 10S
      - name: Alice
        cards: 2S 3S 4S 5S 6S
`,
		"missing cards": `
rounds:
  - name: Empty
    players:
      - name: Alice
      - name: Bob
        cards: 2S 3S 4S 5S 6S
`,
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParseRounds([]byte(doc))
			assert.ErrorIs(t, err, ErrInvalidRound)
		})
	}
}

func TestLoadRounds(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rounds.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleRounds), 0o600))

	f, err := LoadRounds(path)
	require.NoError(t, err)
	assert.Len(t, f.Rounds[0].Players, 2)

	_, err = LoadRounds(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestDefaultRoundsAreValid(t *testing.T) {
	f := DefaultRounds()
	require.NoError(t, f.Validate())
	assert.Len(t, f.Rounds, 3)
}

func TestSchema(t *testing.T) {
	data, err := Schema()
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Contains(t, string(data), "rounds")
	assert.Contains(t, string(data), "players")
	assert.Contains(t, string(data), "cards")
}
