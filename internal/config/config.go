// Package config loads puzzle parameters from YAML.
//
// A puzzle file looks like:
//
//	size: 10
//	seed: 42
//	noize: ABCDEFGHIJKLMNOPQRSTUVWXYZ
//	words:
//	  - EXAMEN
//	  - MISTAKE
//
// noize may be omitted, in which case the 26 uppercase Latin letters are used.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/zyedidia/generic/mapset"
	"gopkg.in/yaml.v3"

	"github.com/Goreek/wordsearch/internal/generator"
)

var ErrMalformedInput = errors.New("malformed puzzle input")

// Puzzle is the input record for one generation run.
type Puzzle struct {
	Size  int      `yaml:"size"`
	Seed  *uint64  `yaml:"seed,omitempty"`
	Noize string   `yaml:"noize"`
	Words []string `yaml:"words"`
}

// Default returns a record with the default alphabet and nothing else set.
func Default() *Puzzle {
	return &Puzzle{Noize: generator.DefaultAlphabet}
}

// Load reads and parses the puzzle file at path. The result is not validated.
func Load(path string) (*Puzzle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read puzzle file: %w", err)
	}
	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// Parse decodes a YAML puzzle record. Fields absent from data keep their defaults.
func Parse(data []byte) (*Puzzle, error) {
	p := Default()
	if err := yaml.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}
	return p, nil
}

// Validate checks that a puzzle can be generated from the record.
func (p *Puzzle) Validate() error {
	if p.Size <= 0 {
		return fmt.Errorf("%w: size must be positive, got %d", ErrMalformedInput, p.Size)
	}
	if p.Noize == "" {
		return fmt.Errorf("%w: noize alphabet is empty", ErrMalformedInput)
	}
	if len(p.Words) == 0 {
		return fmt.Errorf("%w: word list is empty", ErrMalformedInput)
	}
	for i, w := range p.Words {
		if strings.TrimSpace(w) == "" {
			return fmt.Errorf("%w: word %d is blank", ErrMalformedInput, i+1)
		}
	}
	return nil
}

// Duplicates returns every repeated occurrence of a word, compared case-insensitively.
func (p *Puzzle) Duplicates() []string {
	seen := mapset.New[string]()
	var dups []string
	for _, w := range p.Words {
		key := strings.ToUpper(w)
		if seen.Has(key) {
			dups = append(dups, key)
			continue
		}
		seen.Put(key)
	}
	return dups
}

// Options converts the record into generator options. seed is used when the
// record does not carry one.
func (p *Puzzle) Options(seed uint64) *generator.Options {
	opts := generator.DefaultOptions(p.Size)
	opts.Alphabet = p.Noize
	opts.Seed = seed
	if p.Seed != nil {
		opts.Seed = *p.Seed
	}
	return opts
}
