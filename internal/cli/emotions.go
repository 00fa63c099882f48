package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/mindlog/internal/emotion"
)

func newEmotionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "emotions",
		Aliases: []string{"palette"},
		Short:   "List the emotion palette",
		Long: `List the eight emotions that can be selected, with their index and colour.

Either the index or the name (any case) can be passed to 'mindlog generate -e'.`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			colour := colourEnabled(cmd.OutOrStdout())

			headers := []string{"Index", "Name", "Hex", "RGB"}
			if colour {
				headers = append(headers, "Swatch")
			}

			table := NewTable(headers)
			for i, e := range emotion.All() {
				row := []string{strconv.Itoa(i), e.Name, e.RGB.Hex(), e.RGB.String()}
				if colour {
					row = append(row, emotion.Swatch(e.RGB, 0))
				}
				table.AddRow(row)
			}

			fmt.Fprint(cmd.OutOrStdout(), table.Render())
		},
	}
}
