package cmd

import (
	"github.com/leonelquinteros/gotext"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// globalOptions holds the persistent flags shared by every subcommand.
type globalOptions struct {
	verbose    bool
	locale     string
	localesDir string

	logger *zap.Logger
}

var globals = &globalOptions{}

var rootCmd = newRootCmd(globals)

func newRootCmd(g *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wordsearch",
		Short: "Generate word search puzzles",
		Long: `Generate word search puzzles: a square grid of letters hiding a list of
words along straight lines in any of the 8 directions.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			g.setup(cmd)
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&g.verbose, "verbose", "v", false, "Log every placement decision")
	cmd.PersistentFlags().StringVar(&g.locale, "locale", "", "Language for titles and messages (e.g. fr)")
	cmd.PersistentFlags().StringVar(&g.localesDir, "locales-dir", "locales", "Directory holding gettext translations")

	return cmd
}

// setup builds the logger and loads translations.
func (g *globalOptions) setup(cmd *cobra.Command) {
	level := zapcore.InfoLevel
	if g.verbose {
		level = zapcore.DebugLevel
	}
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.AddSync(cmd.ErrOrStderr()),
		level,
	)
	g.logger = zap.New(core)

	if g.locale != "" {
		gotext.Configure(g.localesDir, g.locale, "default")
	}
}

// Execute runs the root command.
func Execute() error {
	defer func() {
		if globals.logger != nil {
			_ = globals.logger.Sync()
		}
	}()
	return rootCmd.Execute()
}
