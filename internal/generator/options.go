package generator

import (
	"go.uber.org/zap"
)

// Options configures puzzle generation behavior.
type Options struct {
	Width    int    // Number of columns
	Height   int    // Number of rows
	Seed     uint64 // Seed for the random stream; the same seed reproduces the same puzzle
	Alphabet string // Filler characters used by FillNoise
	Strict   bool   // Strict makes Build abort on the first word that cannot be placed
	// Logger receives placement diagnostics. nil means zap.NewNop().
	Logger *zap.Logger
}

// DefaultOptions returns options for a size×size puzzle filled with A-Z.
func DefaultOptions(size int) *Options {
	return &Options{
		Width:    size,
		Height:   size,
		Seed:     0,
		Alphabet: DefaultAlphabet,
		Strict:   false,
		Logger:   nil, // nil → zap.NewNop() inside New
	}
}
