package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/swatch/internal/colour"
	"github.com/jmylchreest/swatch/internal/names"
)

func (a *app) newNamesCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "names [filter]",
		Short: "List colour names",
		Long: `List the names of the selected table (--names x11 or css) whose name
contains the filter text. Aliases, which parse but are never printed, are
listed only with --all. With previews on, each hex value is drawn on its
own colour.

Examples:
  swatch names
  swatch names --names css slate
  swatch names --all grey`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filter := ""
			if len(args) == 1 {
				filter = strings.ToLower(args[0])
			}

			list := a.table.Canonical()
			if all {
				list = a.table.Names()
			}

			table := NewTable([]string{"NAME", "HEX", "ALIAS"}).SetStyled(a.showing)

			shown := 0
			for _, name := range list {
				if !strings.Contains(name, filter) {
					continue
				}
				hex, _ := a.table.Lookup(name)
				alias := ""
				if a.table.IsSecondary(name) {
					alias = "yes"
				}
				text := fmt.Sprintf("#%06x", hex)
				if a.showing {
					c := names.FromHex(hex, colour.Integer)
					text = colour.PreviewWithText(c, colour.Integer, text, len(text)+2)
				}
				table.AddRow(name, text, alias)
				shown++
			}

			a.logger.Debug("listed names", "shown", shown, "total", a.table.Len())
			if shown == 0 {
				return fmt.Errorf("no names match %q", filter)
			}
			if !a.quiet {
				fmt.Fprint(cmd.OutOrStdout(), table.Render())
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "include aliases")
	return cmd
}
