package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/swatch/internal/index"
)

func (a *app) newSliceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "slice <begin:end:step> <colour>...",
		Short: "Select colours with an extended slice",
		Long: `Select colours with scripting-style slice notation. Any part may be
left out and negative positions count from the end. A bare index selects
one colour.

Examples:
  # Every other colour
  swatch slice ::2 red green blue white

  # Reversed
  swatch slice ::-1 red green blue

  # The last colour
  swatch slice -- -1 red green blue`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := a.parseColours(args[1:])
			if err != nil {
				return err
			}
			s, err := index.Parse(args[0], l.Len())
			if err != nil {
				return fmt.Errorf("invalid slice: %w", err)
			}
			a.logger.Debug("fetching slice", "slice", s.String(), "selected", s.Len())
			a.printList(cmd.OutOrStdout(), l.Fetch(s))
			return nil
		},
	}
}

func (a *app) newSpliceCmd() *cobra.Command {
	var with []string

	cmd := &cobra.Command{
		Use:   "splice <begin:end:step> --with <colour>... <colour>...",
		Short: "Replace a slice of a list",
		Long: `Replace the colours selected by a slice with the --with colours.

With a step of 1 the region grows or shrinks to fit the replacement. Any
other step needs exactly as many replacement colours as the slice selects.

Examples:
  # Replace the middle colour with two
  swatch splice 1:2 --with white --with black red green blue

  # Insert before the first colour
  swatch splice 0:0 --with white red green

  # Overwrite every other colour
  swatch splice ::2 --with white --with black red green blue`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := a.parseColours(args[1:])
			if err != nil {
				return err
			}
			in, err := a.parseColours(with)
			if err != nil {
				return err
			}
			s, err := index.Parse(args[0], l.Len())
			if err != nil {
				return fmt.Errorf("invalid slice: %w", err)
			}

			before := l.Len()
			if err := l.Splice(s, in); err != nil {
				return fmt.Errorf("failed to splice: %w", err)
			}
			a.logger.Debug("spliced", "slice", s.String(), "before", before, "after", l.Len())
			a.printList(cmd.OutOrStdout(), l)
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&with, "with", "w", nil, "replacement colour (repeatable)")
	return cmd
}
