// Package cli provides the command-line interface for mindlog.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/mindlog/internal/version"
)

// globals holds the persistent flags and the logger built from them.
type globals struct {
	verbose   bool
	quiet     bool
	logFormat string

	logger hclog.Logger
}

// newLogger builds the root logger for the selected verbosity and format.
func (g *globals) newLogger(w io.Writer) (hclog.Logger, error) {
	level := hclog.Info
	switch {
	case g.verbose:
		level = hclog.Debug
	case g.quiet:
		level = hclog.Error
	}

	var jsonFormat bool
	switch g.logFormat {
	case "", "text":
	case "json":
		jsonFormat = true
	default:
		return nil, fmt.Errorf("invalid log format: %s (must be text or json)", g.logFormat)
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:       "mindlog",
		Output:     w,
		Level:      level,
		JSONFormat: jsonFormat,
	}), nil
}

// NewRootCmd creates the root command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	g := &globals{logger: hclog.NewNullLogger()}

	rootCmd := &cobra.Command{
		Use:   "mindlog",
		Short: "An emotion card generator",
		Long: `mindlog turns a selection of emotions from the outer ring of Plutchik's wheel
into a soft, grainy colour card.

Pick emotions on the command line and write the card as PNG, SVG, HTML or JSON,
or explore interactively in the terminal with 'mindlog play'.`,
		Version:      version.Short(),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := g.newLogger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			g.logger = logger
			return nil
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&g.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&g.quiet, "quiet", "q", false, "suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&g.logFormat, "log-format", "text", "log format (text, json)")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newEmotionsCmd())
	rootCmd.AddCommand(newGenerateCmd(g))
	rootCmd.AddCommand(newPlayCmd(g))

	return rootCmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}
