package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/swatch/internal/colour"
	"github.com/jmylchreest/swatch/internal/names"
)

func (a *app) newParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <colour>...",
		Short: "Parse colours and print their canonical form",
		Long: `Parse each argument as a colour and print its components, canonical
text form and hex value.

Examples:
  # Names, hex and gray percentages
  swatch parse red "#336699" "gray 40"

  # Components in the 0-255 range
  swatch parse --base integer "255, 128, 0"

  # Negative excursions
  swatch parse "red-++"`,
		Args: cobra.MinimumNArgs(1),
		RunE: a.runParse,
	}
}

func (a *app) runParse(cmd *cobra.Command, args []string) error {
	l, err := a.parseColours(args)
	if err != nil {
		return err
	}
	if a.quiet {
		return nil
	}

	headers := []string{"INPUT", "COMPONENTS", "CANONICAL", "HEX"}
	if a.showing {
		headers = append([]string{""}, headers...)
	}
	table := NewTable(headers).SetStyled(a.showing)

	base := a.base.Base()
	for i, c := range l.All() {
		row := []string{
			args[i],
			componentText(c),
			a.table.Format(c, base),
			fmt.Sprintf("#%06x", names.HexOf(c, base)),
		}
		if a.showing {
			row = append([]string{colour.Preview(c, base, 4)}, row...)
		}
		table.AddRow(row...)
	}
	fmt.Fprint(cmd.OutOrStdout(), table.Render())
	return nil
}

func componentText(c colour.Colour) string {
	s := c.String()
	return strings.TrimSuffix(strings.TrimPrefix(s, "("), ")")
}
