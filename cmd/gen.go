package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/leonelquinteros/gotext"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Goreek/wordsearch/internal/config"
	"github.com/Goreek/wordsearch/internal/generator"
	"github.com/Goreek/wordsearch/internal/render"
)

type genOptions struct {
	configFile string
	size       int
	seed       uint64
	noize      string
	words      []string
	format     string
	outputFile string
	strict     bool
	solution   bool
}

func init() {
	rootCmd.AddCommand(newGenCmd(globals))
}

func newGenCmd(g *globalOptions) *cobra.Command {
	o := &genOptions{}

	genCmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate a word search puzzle",
		Long: `Generate a word search puzzle from a YAML puzzle file and/or flags.
Flags override values from the file.

Examples:
  wordsearch gen -c puzzle.yaml
  wordsearch gen --size 10 --seed 42 --words examen,mistake,teacher
  wordsearch gen -c puzzle.yaml -f html -o puzzle.html
  wordsearch gen -c puzzle.yaml --strict --solution`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGen(cmd, g, o)
		},
	}

	genCmd.Flags().StringVarP(&o.configFile, "config", "c", "", "YAML puzzle file (size, seed, noize, words)")
	genCmd.Flags().IntVarP(&o.size, "size", "s", 0, "Grid side length")
	genCmd.Flags().Uint64Var(&o.seed, "seed", 0, "Random seed (default: from the file, else time based)")
	genCmd.Flags().StringVar(&o.noize, "noize", generator.DefaultAlphabet, "Filler characters")
	genCmd.Flags().StringSliceVarP(&o.words, "words", "w", nil, "Comma separated words to hide")
	genCmd.Flags().StringVarP(&o.format, "format", "f", "", "Output format: text, md or html (default: from the output extension, else text)")
	genCmd.Flags().StringVarP(&o.outputFile, "output", "o", "", "Output file (default: stdout)")
	genCmd.Flags().BoolVar(&o.strict, "strict", false, "Fail if any word cannot be placed")
	genCmd.Flags().BoolVar(&o.solution, "solution", false, "Highlight the hidden words (text format only)")

	return genCmd
}

// parseFormat resolves the output format from the flag value, falling back
// to the output file's extension and then to plain text.
func parseFormat(format, outputFile string) (render.Format, error) {
	if format == "" {
		switch strings.ToLower(filepath.Ext(outputFile)) {
		case ".html", ".htm":
			return render.FormatHTML, nil
		case ".md", ".markdown":
			return render.FormatMarkdown, nil
		default:
			return render.FormatText, nil
		}
	}

	f := render.Format(strings.ToLower(strings.TrimSpace(format)))
	if f == "markdown" {
		f = render.FormatMarkdown
	}
	for _, known := range render.Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("invalid format: %s (use text, md or html)", format)
}

// loadPuzzle reads the puzzle file if one is given and applies flag overrides.
func loadPuzzle(cmd *cobra.Command, o *genOptions) (*config.Puzzle, error) {
	puzzle := config.Default()
	if o.configFile != "" {
		var err error
		if puzzle, err = config.Load(o.configFile); err != nil {
			return nil, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("size") {
		puzzle.Size = o.size
	}
	if flags.Changed("seed") {
		seed := o.seed
		puzzle.Seed = &seed
	}
	if flags.Changed("noize") {
		puzzle.Noize = o.noize
	}
	if flags.Changed("words") {
		puzzle.Words = o.words
	}

	if err := puzzle.Validate(); err != nil {
		return nil, err
	}
	return puzzle, nil
}

func runGen(cmd *cobra.Command, g *globalOptions, o *genOptions) error {
	log := g.logger
	if log == nil {
		log = zap.NewNop()
	}

	format, err := parseFormat(o.format, o.outputFile)
	if err != nil {
		return err
	}

	puzzle, err := loadPuzzle(cmd, o)
	if err != nil {
		return err
	}

	for _, dup := range puzzle.Duplicates() {
		log.Warn("duplicate word in list", zap.String("word", dup))
	}

	opts := puzzle.Options(uint64(time.Now().UnixNano()))
	opts.Strict = o.strict
	opts.Logger = log
	log.Debug("generating puzzle",
		zap.Int("size", puzzle.Size),
		zap.Uint64("seed", opts.Seed),
		zap.Int("words", len(puzzle.Words)))

	builder, err := generator.New(opts)
	if err != nil {
		return err
	}
	if err := builder.Build(puzzle.Words); err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	placed := builder.PlacedWords()
	if len(placed) < len(puzzle.Words) {
		log.Warn("some words were left out",
			zap.Int("placed", len(placed)),
			zap.Int("requested", len(puzzle.Words)))
	}

	var out io.Writer = cmd.OutOrStdout()
	if o.outputFile != "" {
		file, err := os.Create(o.outputFile)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer file.Close()
		out = file
	}

	if err := render.Write(out, format, builder, render.TextOptions{Solution: o.solution}); err != nil {
		return fmt.Errorf("failed to write puzzle: %w", err)
	}

	if o.outputFile != "" {
		fmt.Fprintln(cmd.OutOrStdout(), gotext.Get("Generated puzzle in %s", o.outputFile))
	}
	return nil
}
