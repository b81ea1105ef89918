package application

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/invopop/jsonschema"
	"gopkg.in/yaml.v3"
)

// ErrInvalidRound is returned when a round file does not pass validation.
var ErrInvalidRound = errors.New("invalid round file")

// validate is a package-level singleton; building a validator is expensive.
var validate = validator.New()

// Seat is one player at a round and the hand they hold, in card notation.
type Seat struct {
	Name  string `yaml:"name" json:"name" validate:"required" jsonschema:"description=Player name unique within the round"`
	Cards string `yaml:"cards" json:"cards" validate:"required" jsonschema:"description=Space separated cards such as AS KD 7H 7S 10C"`
}

// Round is a named set of players whose hands are ranked against each other.
type Round struct {
	Name    string `yaml:"name" json:"name" validate:"required"`
	Players []Seat `yaml:"players" json:"players" validate:"required,min=2,unique=Name,dive" jsonschema:"minItems=2"`
}

// RoundFile is the document read by the demo runner.
type RoundFile struct {
	Rounds []Round `yaml:"rounds" json:"rounds" validate:"required,min=1,dive" jsonschema:"minItems=1"`
}

// Validate checks the struct tags of the round file.
func (f *RoundFile) Validate() error {
	if err := validate.Struct(f); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRound, err)
	}
	return nil
}

// ParseRounds unmarshals and validates a YAML round file.
func ParseRounds(data []byte) (*RoundFile, error) {
	var f RoundFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRound, err)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// LoadRounds reads and parses the round file at path.
func LoadRounds(path string) (*RoundFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read round file: %w", err)
	}
	return ParseRounds(data)
}

// DefaultRounds returns the rounds played when no file is given.
func DefaultRounds() *RoundFile {
	return &RoundFile{Rounds: []Round{
		{Name: "Round 1", Players: []Seat{
			{Name: "Shade", Cards: "AC AD 7H KS QC"},
			{Name: "Zigi", Cards: "7C 7D 8H 8S 10C"},
			{Name: "Dobri", Cards: "KC 9D 6H 7S QC"},
		}},
		{Name: "Round 2", Players: []Seat{
			{Name: "Dobri", Cards: "8C 8D 7H 7S 10C"},
			{Name: "Zigi", Cards: "8C 8D 7H 7S 9C"},
			{Name: "Shade", Cards: "8C 8D 7H 7S 8S"},
		}},
		{Name: "Round 3", Players: []Seat{
			{Name: "Zigi", Cards: "2C 4D 6H 8S 10S"},
			{Name: "Shade", Cards: "3C 3D 3S KS KC"},
			{Name: "Dobri", Cards: "2S 2D 2H AS AS"},
		}},
	}}
}

// Schema returns the JSON schema of the round file.
func Schema() ([]byte, error) {
	reflector := jsonschema.Reflector{
		ExpandedStruct: true,
	}
	schema := reflector.Reflect(&RoundFile{})

	jsonBytes, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return jsonBytes, nil
}
