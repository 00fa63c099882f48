package cli

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/mindlog/internal/output"
	pngout "github.com/jmylchreest/mindlog/internal/output/png"
	"github.com/jmylchreest/mindlog/internal/random"
	"github.com/jmylchreest/mindlog/internal/render"
	"github.com/jmylchreest/mindlog/internal/selection"
	"github.com/jmylchreest/mindlog/internal/tui"
)

type playOptions struct {
	outputDir string
	logFile   string
	params    paramFlags
}

func newPlayCmd(g *globals) *cobra.Command {
	opts := &playOptions{}
	writer := pngout.New(nil)

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Build cards interactively in the terminal",
		Long: `Open an interactive card generator in the terminal.

Click swatches (or press 1-8) to toggle emotions, click the card or press g to
roll a random emotion, and r to reset. +/- change the blob count, [ ] the blur
ceiling and { } the grain. Press s to save the current card as a PNG,
scaled by --png.scale.

The terminal owns the screen while playing, so logs are discarded unless
--log-file is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd, g, opts, writer)
		},
	}

	cmd.Flags().StringVar(&opts.outputDir, "output-dir", ".", "directory saved cards are written to")
	cmd.Flags().StringVar(&opts.logFile, "log-file", "", "write logs to this file")
	opts.params.register(cmd.Flags())
	writer.RegisterFlags(cmd)

	return cmd
}

func runPlay(cmd *cobra.Command, g *globals, opts *playOptions, writer *pngout.Plugin) error {
	cfg, err := opts.params.loadConfig(cmd)
	if err != nil {
		return err
	}

	logger := hclog.NewNullLogger()
	if opts.logFile != "" {
		f, err := os.OpenFile(opts.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer f.Close()

		logger, err = g.newLogger(f)
		if err != nil {
			return err
		}
	}
	logger = logger.Named("play")

	renderer, err := render.New(render.DefaultOptions(), logger)
	if err != nil {
		return err
	}
	writer.SetRenderer(renderer)
	if err := writer.Validate(); err != nil {
		return fmt.Errorf("%s: %w", writer.Name(), err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to open terminal: %w", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store := selection.NewStore(random.New(), cfg.Params, logger)
	save := newCardSaver(writer, opts.outputDir, logger)

	return tui.New(screen, store, renderer, logger, save).Run(ctx)
}

// newCardSaver returns a save callback writing PNGs named after the dominant
// emotion into dir.
func newCardSaver(writer output.Plugin, dir string, logger hclog.Logger) tui.SaveFunc {
	return func(card selection.Card) (string, error) {
		files, err := writer.Generate(output.Request{Card: card, Name: saveName(card)})
		if err != nil {
			return "", err
		}
		paths, err := writeFiles(dir, files, false, logger)
		if err != nil {
			return "", err
		}
		return strings.Join(paths, ", "), nil
	}
}

func saveName(card selection.Card) string {
	if card.Placeholder {
		return output.DefaultName
	}
	return output.DefaultName + "-" + strings.ToLower(card.Result.Dominant.Name)
}
