// Package cli provides the command-line interface for swatch.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/jmylchreest/swatch/internal/colour"
	"github.com/jmylchreest/swatch/internal/colourlist"
	"github.com/jmylchreest/swatch/internal/config"
	"github.com/jmylchreest/swatch/internal/names"
	"github.com/jmylchreest/swatch/internal/version"
)

// app holds the state shared by every command once flags and configuration
// are resolved.
type app struct {
	verbose    bool
	quiet      bool
	configPath string
	base       baseValue
	names      string
	preview    string

	logger  hclog.Logger
	table   *names.Table
	showing bool
	stderr  io.Writer
}

// NewRootCmd builds the swatch command tree.
func NewRootCmd() *cobra.Command {
	a := &app{
		logger: hclog.NewNullLogger(),
		stderr: os.Stderr,
	}

	rootCmd := &cobra.Command{
		Use:   "swatch",
		Short: "Colour list arithmetic, slicing and naming",
		Long: `Swatch works with lists of colours from the command line.

Colours can be written as X11 or CSS names ("alice blue", "red"), hex
literals ("#ff8000", "0xff8000"), gray percentages ("gray 40") or
comma-separated components ("0.1, 0.5, 1"). Any form may end in three
signs, one per component, to negate components: "red-++".

Lists can be combined with broadcasting arithmetic, sliced with
scripting-style extended slices and printed in canonical form.`,
		Version:           version.Short(),
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	flags := rootCmd.PersistentFlags()
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose output")
	flags.BoolVarP(&a.quiet, "quiet", "q", false, "suppress non-error output")
	flags.StringVar(&a.configPath, "config", "", "configuration file to read after the user and project files")
	flags.VarP(&a.base, "base", "b", fmt.Sprintf("component range (%s)", joinNames(colour.ValidBases())))
	flags.StringVar(&a.names, "names", "", fmt.Sprintf("name table (%s)", joinNames(names.Tables())))
	flags.StringVar(&a.preview, "preview", "", fmt.Sprintf("colour previews (%s)", joinNames(config.ValidPreviews())))

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(
		a.newParseCmd(),
		a.newMathCmd(),
		a.newTransformCmd(),
		a.newSliceCmd(),
		a.newSpliceCmd(),
		a.newStatsCmd(),
		a.newNamesCmd(),
		newVersionCmd(),
	)
	return rootCmd
}

// setup layers flags over the loaded configuration and builds the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	a.stderr = cmd.ErrOrStderr()
	cfg, err := config.NewLoader().
		WithEnvConfig().
		WithFile(a.configPath).
		WithWarnings(func(format string, args ...any) {
			fmt.Fprintf(a.stderr, "Warning: "+format+"\n", args...)
		}).
		Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("base") {
		cfg.Base = a.base.String()
	}
	if flags.Changed("names") {
		cfg.Names = a.names
	}
	if flags.Changed("preview") {
		cfg.Preview = a.preview
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	level := cfg.Level()
	switch {
	case a.verbose:
		level = hclog.Debug
	case a.quiet:
		level = hclog.Error
	}
	a.logger = newLogger(a.stderr, level)

	base, err := cfg.ColourBase()
	if err != nil {
		return err
	}
	a.base = baseValue(base)

	a.table, err = cfg.Table()
	if err != nil {
		return err
	}

	switch cfg.Preview {
	case config.PreviewAlways:
		a.showing = true
	case config.PreviewNever:
		a.showing = false
	default:
		a.showing = colour.SupportsANSIColours(os.Stdout)
	}
	colour.DisableColourOutput = !a.showing

	a.logger.Debug("configuration resolved",
		"base", cfg.Base, "names", cfg.Names, "preview", a.showing)
	return nil
}

// parseColours parses every argument as one colour.
func (a *app) parseColours(args []string) (*colourlist.List, error) {
	l, err := a.table.ParseList(args, a.base.Base())
	if err != nil {
		return nil, fmt.Errorf("failed to parse colours: %w", err)
	}
	a.logger.Debug("parsed colours", "count", l.Len(), "base", a.base.String())
	return l, nil
}

// printList writes a list in canonical form, with a preview strip when
// previews are on.
func (a *app) printList(w io.Writer, l *colourlist.List) {
	if a.quiet {
		return
	}
	if a.showing && l.Len() > 0 {
		for _, c := range l.All() {
			fmt.Fprint(w, colour.Preview(c, l.Base(), 2))
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w, a.table.FormatList(l))
}

// newVersionCmd prints detailed version information.
func newVersionCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			switch format {
			case "text":
				fmt.Fprintln(cmd.OutOrStdout(), version.String())
			case "yaml":
				data, err := yaml.Marshal(version.GetInfo())
				if err != nil {
					return fmt.Errorf("failed to encode version: %w", err)
				}
				fmt.Fprint(cmd.OutOrStdout(), string(data))
			default:
				return fmt.Errorf("unknown format: %s (valid formats: text, yaml)", format)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format (text, yaml)")
	return cmd
}
