package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jmylchreest/mindlog/internal/emotion"
	"github.com/jmylchreest/mindlog/internal/selection"
)

// printPreview writes a summary of card: the dominant emotion, the active
// selection, the parameters and one row per blob.
func printPreview(w io.Writer, card selection.Card, colour bool) {
	dominant := card.Result.Dominant
	if colour {
		fmt.Fprintf(w, "\n %s  %s\n", emotion.Swatch(dominant.RGB, 4), emotion.Tint(dominant.RGB, describeCard(card)))
	} else {
		fmt.Fprintf(w, "\n %s %s\n", describeCard(card), dominant.RGB.Hex())
	}

	active := make([]string, 0, len(card.Active))
	for _, i := range card.Active {
		if e, err := emotion.At(i); err == nil {
			active = append(active, e.Name)
		}
	}
	fmt.Fprintf(w, " Active: %s\n", strings.Join(active, ", "))
	fmt.Fprintf(w, " Blobs: %d  Blur: %g  Grain: %g\n\n", card.Params.BlobCount, card.Params.BlurMax, card.Params.Grain)

	if len(card.Result.Blobs) == 0 {
		return
	}

	headers := []string{"#", "Colour", "Size", "Position", "Opacity", "Blur"}
	if colour {
		headers = append(headers, "Swatch")
	}
	table := NewTable(headers)
	for i, b := range card.Result.Blobs {
		row := []string{
			strconv.Itoa(i),
			b.Colour.Hex(),
			fmt.Sprintf("%.0fx%.0f", b.Width, b.Height),
			fmt.Sprintf("%.0f,%.0f", b.Left, b.Top),
			fmt.Sprintf("%.2f", b.Opacity),
			fmt.Sprintf("%.1f", b.Blur),
		}
		if colour {
			row = append(row, emotion.Swatch(b.Colour, 4))
		}
		table.AddRow(row)
	}
	fmt.Fprintln(w, table.Render())
}
