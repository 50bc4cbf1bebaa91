package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/swatch/internal/colour"
	"github.com/jmylchreest/swatch/internal/colourlist"
	"github.com/jmylchreest/swatch/internal/names"
)

func (a *app) newStatsCmd() *cobra.Command {
	var against []string

	cmd := &cobra.Command{
		Use:   "stats <colour>...",
		Short: "Summarise a list of colours",
		Long: `Print the length, per-component minimum, maximum and sum, and the
distance of the list from black. With --against, also print the distance
to and ordering against a second list.

Examples:
  swatch stats red green "gray 50"
  swatch stats red green --against red --against blue`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := a.parseColours(args)
			if err != nil {
				return err
			}

			table := NewTable([]string{"STAT", "VALUE"}).SetStyled(a.showing)
			table.AddRow("length", strconv.Itoa(l.Len()))
			table.AddRow("min", a.describe(l.Min()))
			table.AddRow("max", a.describe(l.Max()))
			table.AddRow("sum", a.describe(l.Sum()))
			table.AddRow("distance", formatFloat(l.Distance(colourlist.Scalar(0))))

			gray := 0
			for _, c := range l.All() {
				if names.IsGray(c, l.Base()) {
					gray++
				}
			}
			table.AddRow("gray", strconv.Itoa(gray))

			if len(against) > 0 {
				other, err := a.parseColours(against)
				if err != nil {
					return err
				}
				table.AddRow("distance to other", formatFloat(l.Distance(other)))
				table.AddRow("compare to other", strconv.Itoa(l.Compare(other)))
			}

			if !a.quiet {
				fmt.Fprint(cmd.OutOrStdout(), table.Render())
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&against, "against", nil, "colour of a second list to compare with (repeatable)")
	return cmd
}

// describe renders an aggregate colour, which is undefined for an empty
// list.
func (a *app) describe(c colour.Colour) string {
	if !c.IsDefined() {
		return "undefined"
	}
	return a.table.Format(c, a.base.Base())
}

func formatFloat(x float64) string {
	return strconv.FormatFloat(x, 'g', 7, 64)
}
