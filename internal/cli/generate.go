package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/mindlog/internal/emotion"
	"github.com/jmylchreest/mindlog/internal/output"
	"github.com/jmylchreest/mindlog/internal/random"
	"github.com/jmylchreest/mindlog/internal/render"
	"github.com/jmylchreest/mindlog/internal/selection"
)

type generateOptions struct {
	emotions  []string
	random    bool
	outputs   []string
	outputDir string
	name      string
	dryRun    bool
	preview   bool
	params    paramFlags
}

func newGenerateCmd(g *globals) *cobra.Command {
	opts := &generateOptions{}
	w := newWriters()

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate an emotion card",
		Long: `Generate an emotion card from one or more emotions and write it with the
selected output writers.

Emotions are given by name or by index (0-7) and toggled in order, so the
first one listed is first in the selection. Without --emotion a single random
emotion is picked.

Output writers:
` + describeWriters(w.registry) + `
Examples:
  # A random card as card.png
  mindlog generate

  # Rage and grief as PNG and SVG into ./cards
  mindlog generate -e rage -e grief -o png,svg --output-dir cards

  # Every writer, softer and with more blobs
  mindlog generate -e amazement -o all --blobs 12 --blur 120

  # See what would be written
  mindlog generate -e 3 --preview --dry-run`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, g, opts, w)
		},
	}

	flags := cmd.Flags()
	flags.StringSliceVarP(&opts.emotions, "emotion", "e", nil, "emotion name or index (repeatable)")
	flags.BoolVar(&opts.random, "random", false, "pick a single random emotion (default without --emotion)")
	flags.StringSliceVarP(&opts.outputs, "outputs", "o", []string{"png"}, "output writers (comma-separated or 'all')")
	flags.StringVar(&opts.outputDir, "output-dir", ".", "directory to write files to")
	flags.StringVar(&opts.name, "name", output.DefaultName, "base file name")
	flags.BoolVar(&opts.dryRun, "dry-run", false, "list files without writing them")
	flags.BoolVar(&opts.preview, "preview", false, "print a colour summary of the card")
	cmd.MarkFlagsMutuallyExclusive("emotion", "random")
	opts.params.register(cmd.Flags())

	for _, p := range w.registry.All() {
		p.RegisterFlags(cmd)
	}

	return cmd
}

func runGenerate(cmd *cobra.Command, g *globals, opts *generateOptions, w *writers) error {
	logger := g.logger.Named("generate")

	cfg, err := opts.params.loadConfig(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("outputs") {
		cfg.Outputs = opts.outputs
	}

	plugins, err := w.registry.Select(cfg.Outputs)
	if err != nil {
		return err
	}

	renderer, err := render.New(render.DefaultOptions(), logger)
	if err != nil {
		return err
	}
	w.png.SetRenderer(renderer)

	for _, p := range plugins {
		if err := p.Validate(); err != nil {
			return fmt.Errorf("%s: %w", p.Name(), err)
		}
	}

	store := selection.NewStore(random.New(), cfg.Params, logger)
	if err := applySelection(store, opts.emotions, opts.random); err != nil {
		return err
	}

	card := store.Card()
	logger.Debug("generated card", "selection", store.Selection(), "dominant", card.Result.Dominant.Name, "blobs", len(card.Result.Blobs))

	out := cmd.OutOrStdout()
	if g.quiet {
		out = io.Discard
	}
	if opts.preview {
		printPreview(out, card, colourEnabled(cmd.OutOrStdout()))
	}

	req := output.Request{Card: card, Name: opts.name}
	written := 0
	for _, p := range plugins {
		files, err := p.Generate(req)
		if err != nil {
			return fmt.Errorf("%s: %w", p.Name(), err)
		}

		paths, err := writeFiles(opts.outputDir, files, opts.dryRun, logger)
		if err != nil {
			return fmt.Errorf("%s: %w", p.Name(), err)
		}
		for _, path := range paths {
			if opts.dryRun {
				fmt.Fprintf(out, "   Would write: %s (%d bytes)\n", path, len(files[filepath.Base(path)]))
			} else {
				fmt.Fprintf(out, "   %s\n", path)
			}
		}
		written += len(paths)
	}

	if !opts.dryRun {
		fmt.Fprintf(out, "\n Done! Wrote %d file(s) for %s\n", written, describeCard(card))
	}
	return nil
}

// applySelection toggles each emotion in order. With pick, or without
// emotions, a single random one is chosen instead.
func applySelection(store *selection.Store, names []string, pick bool) error {
	if pick || len(names) == 0 {
		store.Generate()
		return nil
	}

	indices := make([]int, 0, len(names))
	for _, name := range names {
		i, err := emotion.Parse(name)
		if err != nil {
			return err
		}
		indices = append(indices, i)
	}

	for _, i := range indices {
		if err := store.Toggle(i); err != nil {
			return err
		}
	}
	return nil
}

func describeCard(card selection.Card) string {
	if card.Placeholder {
		return "an empty card"
	}
	return card.Label()
}

func describeWriters(r *output.Registry) string {
	var b strings.Builder
	for _, name := range r.List() {
		p, _ := r.Get(name)
		fmt.Fprintf(&b, "  %-5s - %s\n", name, p.Description())
	}
	return b.String()
}

// colourEnabled reports whether w is a terminal that accepts ANSI colour.
func colourEnabled(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && emotion.SupportsANSIColours(f)
}
