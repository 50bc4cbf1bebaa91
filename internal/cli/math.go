package cli

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/swatch/internal/colour"
	"github.com/jmylchreest/swatch/internal/colourlist"
)

// unaryOps are the operators that take no operand.
var unaryOps = map[string]func(l *colourlist.List, digits int) *colourlist.List{
	"abs":    func(l *colourlist.List, _ int) *colourlist.List { return l.Abs() },
	"ceil":   func(l *colourlist.List, _ int) *colourlist.List { return l.Ceil() },
	"floor":  func(l *colourlist.List, _ int) *colourlist.List { return l.Floor() },
	"trunc":  func(l *colourlist.List, _ int) *colourlist.List { return l.Trunc() },
	"neg":    func(l *colourlist.List, _ int) *colourlist.List { return l.Neg() },
	"invert": func(l *colourlist.List, _ int) *colourlist.List { return l.Invert() },
	"limit":  func(l *colourlist.List, _ int) *colourlist.List { return l.Limit() },
	"zero":   func(l *colourlist.List, _ int) *colourlist.List { return l.Zero() },
	"round":  func(l *colourlist.List, digits int) *colourlist.List { return l.Round(digits) },
}

func unaryNames() []string {
	var names []string
	for name := range unaryOps {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func binaryNames() []string {
	var names []string
	for _, op := range colourlist.Ops() {
		names = append(names, op.String())
	}
	return names
}

func (a *app) newMathCmd() *cobra.Command {
	var (
		listOperand bool
		digits      int
	)

	cmd := &cobra.Command{
		Use:   "math <op> [operand] <colour>...",
		Short: "Apply arithmetic to a list of colours",
		Long: fmt.Sprintf(`Apply a component-wise operator to a list of colours.

Binary operators (%s) take an operand: a number broadcast to every
component, a single colour broadcast to every colour, or with --list a
semicolon-separated list paired colour by colour. A longer list operand
grows the input with zero colours; a shorter one leaves the extra colours
untouched. Division by zero leaves components unchanged.

Unary operators (%s) take no operand.

Results are clamped to the base's signed range.

Examples:
  # Halve every component
  swatch math mul 0.5 red "gray 80"

  # Add a colour to every colour
  swatch math add "0.1, 0, 0" blue green

  # Pair two lists
  swatch math sub --list "red; blue" white white

  # Round to one decimal place
  swatch math round --digits 1 "0.123, 0.456, 0.789"`,
			joinNames(binaryNames()), joinNames(unaryNames())),
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			if unary, ok := unaryOps[name]; ok {
				l, err := a.parseColours(args[1:])
				if err != nil {
					return err
				}
				a.logger.Debug("applying unary operator", "op", name, "colours", l.Len())
				a.printList(cmd.OutOrStdout(), unary(l, digits))
				return nil
			}

			op, err := colourlist.ParseOp(name)
			if err != nil {
				return fmt.Errorf("invalid operator: %w (unary operators: %s)", err, joinNames(unaryNames()))
			}
			if len(args) < 3 {
				return fmt.Errorf("operator %s needs an operand and at least one colour", op)
			}

			operand, err := a.parseOperand(args[1], listOperand)
			if err != nil {
				return err
			}
			l, err := a.parseColours(args[2:])
			if err != nil {
				return err
			}

			a.logger.Debug("applying operator", "op", op, "operand", args[1], "colours", l.Len())
			a.printList(cmd.OutOrStdout(), l.Apply(op, operand))
			return nil
		},
	}

	cmd.Flags().BoolVar(&listOperand, "list", false, "treat the operand as a semicolon-separated list of colours")
	cmd.Flags().IntVar(&digits, "digits", 0, "decimal places for round")
	return cmd
}

// parseOperand reads a number, a colour or a semicolon-separated list.
func (a *app) parseOperand(text string, list bool) (colourlist.Operand, error) {
	if list {
		items := strings.Split(text, ";")
		for i := range items {
			items[i] = strings.TrimSpace(items[i])
		}
		l, err := a.parseColours(items)
		if err != nil {
			return nil, fmt.Errorf("invalid operand: %w", err)
		}
		return l, nil
	}

	if x, err := strconv.ParseFloat(text, 64); err == nil {
		return colourlist.Scalar(x), nil
	}
	c, err := a.table.Parse(text, a.base.Base())
	if err != nil {
		return nil, fmt.Errorf("invalid operand: %w", err)
	}
	return colourlist.Single(c), nil
}

func (a *app) newTransformCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "transform <name> <colour>...",
		Short: "Convert colours between colour spaces",
		Long: fmt.Sprintf(`Apply a colour-space transform to every colour.

Transforms: %s

Hue is expressed as a fraction of a full turn scaled to the base, so every
component shares the same range.

Examples:
  swatch transform rgb-to-hsv red orange
  swatch transform --base integer hsl-to-rgb "170, 255, 127.5"`,
			joinNames(colour.TransformNames())),
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			fn, err := colour.LookupTransform(args[0])
			if err != nil {
				return err
			}
			l, err := a.parseColours(args[1:])
			if err != nil {
				return err
			}
			a.printList(cmd.OutOrStdout(), l.Transform(fn))
			return nil
		},
	}
}
