package generator

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/Goreek/wordsearch/internal/grid"
	"github.com/Goreek/wordsearch/internal/placement"
	"github.com/Goreek/wordsearch/internal/rng"
)

// DefaultAlphabet is the filler set used when none is configured.
const DefaultAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

var (
	ErrOversizedWord      = errors.New("word is longer than the grid")
	ErrPlacementExhausted = errors.New("no valid placement found within the retry budget")
	ErrEmptyWord          = errors.New("word is empty")
	ErrEmptyAlphabet      = errors.New("noise alphabet is empty")
	ErrFilled             = errors.New("puzzle has already been filled with noise")
)

// State is the builder's lifecycle stage.
type State int

const (
	// Building accepts words.
	Building State = iota
	// Filled is terminal: the grid is complete and read-only.
	Filled
)

func (s State) String() string {
	switch s {
	case Building:
		return "building"
	case Filled:
		return "filled"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Builder places words on a grid one at a time and then fills the rest with noise.
// It is not safe for concurrent use.
type Builder struct {
	options *Options
	grid    *grid.Grid
	rng     *rng.Stream
	log     *zap.Logger

	state      State
	placements []placement.Placement
}

// New creates a puzzle builder with the given options.
func New(options *Options) (*Builder, error) {
	if options == nil {
		return nil, errors.New("generator: nil options")
	}

	g, err := grid.New(options.Width, options.Height)
	if err != nil {
		return nil, err
	}

	log := options.Logger
	if log == nil {
		log = zap.NewNop()
	}

	return &Builder{
		options: options,
		grid:    g,
		rng:     rng.New(options.Seed),
		log:     log,
		state:   Building,
	}, nil
}

// AddWord uppercases word and tries to place it.
// It reports whether the word was placed; Place returns the reason it was not.
func (b *Builder) AddWord(word string) bool {
	return b.Place(word) == nil
}

// Place uppercases word and places it using the two-phase retry policy:
// width·height attempts that must cross an existing letter (only once some
// word is on the grid), then width+height attempts with no such requirement.
func (b *Builder) Place(word string) error {
	if b.state != Building {
		return fmt.Errorf("%w: cannot add %q", ErrFilled, word)
	}

	word = strings.ToUpper(word)
	n := utf8.RuneCountInString(word)
	if n == 0 {
		return ErrEmptyWord
	}

	width, height := b.grid.Width(), b.grid.Height()
	if placement.Oversized(n, width, height) {
		b.log.Warn("word does not fit the grid",
			zap.String("word", word),
			zap.Int("length", n),
			zap.Int("width", width),
			zap.Int("height", height))
		return fmt.Errorf("%w: %q has %d letters, grid is %dx%d", ErrOversizedWord, word, n, width, height)
	}

	if len(b.placements) > 0 {
		for attempt := range width * height {
			if p, ok := placement.TryPlace(word, b.grid, b.rng, true); ok {
				b.record(p, "crossing", attempt)
				return nil
			}
		}
	}

	for attempt := range width + height {
		if p, ok := placement.TryPlace(word, b.grid, b.rng, false); ok {
			b.record(p, "free", attempt)
			return nil
		}
	}

	b.log.Warn("word could not be placed",
		zap.String("word", word),
		zap.Int("placed", len(b.placements)),
		zap.Int("empty_cells", b.grid.EmptyCount()))
	return fmt.Errorf("%w: %q", ErrPlacementExhausted, word)
}

func (b *Builder) record(p placement.Placement, phase string, attempt int) {
	b.placements = append(b.placements, p)
	b.log.Debug("word placed",
		zap.String("word", p.Word),
		zap.String("phase", phase),
		zap.Int("attempt", attempt),
		zap.Int("row", p.Row),
		zap.Int("col", p.Col),
		zap.Stringer("direction", p.Dir))
}

// FillNoise fills every empty cell from the configured alphabet.
func (b *Builder) FillNoise() error {
	return b.FillNoiseWith(b.options.Alphabet)
}

// FillNoiseWith visits cells in row-major order and gives each empty one a
// character drawn uniformly from alphabet. It moves the builder to Filled.
func (b *Builder) FillNoiseWith(alphabet string) error {
	if b.state == Filled {
		return ErrFilled
	}

	symbols := []rune(alphabet)
	if len(symbols) == 0 {
		return ErrEmptyAlphabet
	}

	for row := range b.grid.Height() {
		for col := range b.grid.Width() {
			if !b.grid.IsEmpty(row, col) {
				continue
			}
			if err := b.grid.Set(row, col, symbols[b.rng.IntN(len(symbols))]); err != nil {
				return fmt.Errorf("filling (%d, %d): %w", row, col, err)
			}
		}
	}

	b.state = Filled
	b.log.Debug("noise filled",
		zap.Int("placed", len(b.placements)),
		zap.Int("draws", b.rng.Draws()))
	return nil
}

// Build adds every word in order and then fills the grid with noise.
// Words that cannot be placed are skipped, unless Strict is set, in which
// case the first failure is returned and the grid is left unfilled.
func (b *Builder) Build(words []string) error {
	for _, word := range words {
		err := b.Place(word)
		if err == nil {
			continue
		}
		if b.options.Strict || errors.Is(err, ErrFilled) {
			return err
		}
	}
	return b.FillNoise()
}

// PlacedWords returns the placed words in the order they were placed.
func (b *Builder) PlacedWords() []string {
	words := make([]string, len(b.placements))
	for i, p := range b.placements {
		words[i] = p.Word
	}
	return words
}

// Placements returns where each placed word sits on the grid.
func (b *Builder) Placements() []placement.Placement {
	out := make([]placement.Placement, len(b.placements))
	copy(out, b.placements)
	return out
}

// Grid returns the builder's grid. Callers must treat it as read-only.
func (b *Builder) Grid() *grid.Grid {
	return b.grid
}

// State returns the builder's lifecycle stage.
func (b *Builder) State() State {
	return b.state
}

// Generate is a convenience function that builds a size×size puzzle in one call.
func Generate(size int, seed uint64, alphabet string, words []string) (*Builder, error) {
	opts := DefaultOptions(size)
	opts.Seed = seed
	opts.Alphabet = alphabet

	b, err := New(opts)
	if err != nil {
		return nil, err
	}
	if err := b.Build(words); err != nil {
		return nil, err
	}
	return b, nil
}
