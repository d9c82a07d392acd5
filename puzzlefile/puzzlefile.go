// Package puzzlefile reads water-sort puzzles from YAML documents:
//
//	puzzles:
//	  - name: two-moves
//	    hard: false
//	    bottles:
//	      - [red, blue]   # bottom → top
//	      - [red]
//	      - []
//
// Unknown keys are rejected. Every puzzle needs a unique name and at least
// one bottle; a bottle holds at most bottle.Capacity non-empty color tokens.
package puzzlefile

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pourpath/bottle"
)

// ErrInvalidFile wraps every decoding or validation failure.
var ErrInvalidFile = errors.New("puzzlefile: invalid puzzle file")

var validate = validator.New()

// File is one decoded puzzle document.
type File struct {
	Puzzles []Puzzle `yaml:"puzzles" validate:"required,min=1,unique=Name,dive"`
}

// Puzzle is a named starting configuration.
type Puzzle struct {
	Name    string     `yaml:"name" validate:"required"`
	Hard    bool       `yaml:"hard"`
	Bottles [][]string `yaml:"bottles" validate:"required,min=1,dive,max=4,dive,required"`
}

// Config builds the validated configuration for p.
func (p Puzzle) Config(opts ...bottle.Option) (bottle.Config, error) {
	cfg, err := bottle.FromStrings(p.Bottles, opts...)
	if err != nil {
		return bottle.Config{}, fmt.Errorf("puzzle %q: %w", p.Name, err)
	}

	return cfg, nil
}

// Parse decodes and validates a single YAML document from r.
func Parse(r io.Reader) (*File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidFile)
		}

		return nil, fmt.Errorf("%w: %w", ErrInvalidFile, err)
	}
	if err := validate.Struct(&f); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFile, err)
	}

	return &f, nil
}

// Load reads and parses the file at path.
func Load(path string) (*File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()

	f, err := Parse(fh)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return f, nil
}
