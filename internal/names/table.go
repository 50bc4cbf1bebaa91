// Package names converts colours to and from their canonical text forms:
// symbolic names, hex literals, "gray N" percentages and comma-separated
// component triples.
package names

import (
	"errors"
	"fmt"
	"image/color"
	"maps"
	"slices"
	"sync"

	"github.com/hashicorp/go-hclog"
	"golang.org/x/image/colornames"
)

// ErrDuplicateHex is returned when two preferred names share a hex value.
var ErrDuplicateHex = errors.New("names: duplicate hex value")

// Table maps lowercase names to 24-bit hex values and back. It is immutable
// once built and safe for concurrent use.
type Table struct {
	names     map[string]uint32
	inverse   map[uint32]string
	secondary map[string]bool
	logger    hclog.Logger
}

// Option configures a Table.
type Option func(*Table)

// WithLogger sets the logger used while building the table.
func WithLogger(logger hclog.Logger) Option {
	return func(t *Table) {
		t.logger = logger
	}
}

// NewTable builds a table from a name to hex mapping. Names listed in
// secondary are aliases: they parse, but are never produced when
// formatting. Two non-secondary names with the same hex value return
// ErrDuplicateHex.
func NewTable(names map[string]uint32, secondary []string, opts ...Option) (*Table, error) {
	t := &Table{
		names:     maps.Clone(names),
		inverse:   make(map[uint32]string, len(names)),
		secondary: make(map[string]bool, len(secondary)),
		logger:    hclog.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(t)
	}

	for _, name := range secondary {
		if _, ok := names[name]; !ok {
			return nil, fmt.Errorf("names: secondary name %q is not in the table", name)
		}
		t.secondary[name] = true
	}

	for _, name := range slices.Sorted(maps.Keys(names)) {
		hex := names[name]
		if hex > 0xffffff {
			return nil, fmt.Errorf("names: %q has hex value %#x wider than 24 bits", name, hex)
		}
		if t.secondary[name] {
			t.logger.Trace("skipping alias", "name", name, "hex", fmt.Sprintf("#%06x", hex))
			continue
		}
		if existing, ok := t.inverse[hex]; ok {
			return nil, fmt.Errorf("%w: %q and %q are both #%06x", ErrDuplicateHex, existing, name, hex)
		}
		t.inverse[hex] = name
	}

	t.logger.Debug("built name table", "names", len(t.names), "canonical", len(t.inverse))
	return t, nil
}

// Lookup returns the hex value of a name.
func (t *Table) Lookup(name string) (uint32, bool) {
	hex, ok := t.names[name]
	return hex, ok
}

// Name returns the canonical name of a hex value.
func (t *Table) Name(hex uint32) (string, bool) {
	name, ok := t.inverse[hex]
	return name, ok
}

// IsSecondary reports whether name is an alias.
func (t *Table) IsSecondary(name string) bool {
	return t.secondary[name]
}

// Names returns every name in the table, aliases included, sorted.
func (t *Table) Names() []string {
	return slices.Sorted(maps.Keys(t.names))
}

// Canonical returns the names that formatting can produce, sorted.
func (t *Table) Canonical() []string {
	return slices.Sorted(maps.Values(t.inverse))
}

// Len returns the number of names, aliases included.
func (t *Table) Len() int {
	return len(t.names)
}

// X11 returns the X11 name table.
var X11 = sync.OnceValue(func() *Table {
	return mustTable(NewTable(x11Names, x11Secondary))
})

// cssSecondary lists the CSS names that duplicate a preferred spelling.
var cssSecondary = []string{
	"aqua",
	"darkgrey",
	"darkslategrey",
	"dimgrey",
	"fuchsia",
	"grey",
	"lightgrey",
	"lightslategrey",
	"slategrey",
}

// CSS returns the CSS/SVG name table.
var CSS = sync.OnceValue(func() *Table {
	names := make(map[string]uint32, len(colornames.Map))
	for name, c := range colornames.Map {
		names[name] = rgbaHex(c)
	}
	return mustTable(NewTable(names, cssSecondary))
})

func rgbaHex(c color.RGBA) uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

func mustTable(t *Table, err error) *Table {
	if err != nil {
		panic(err)
	}
	return t
}

// Tables returns the names of the built-in tables.
func Tables() []string {
	return []string{"x11", "css"}
}

// ByName returns a built-in table.
func ByName(name string) (*Table, error) {
	switch name {
	case "x11", "":
		return X11(), nil
	case "css":
		return CSS(), nil
	default:
		return nil, fmt.Errorf("unknown name table: %s (valid tables: %v)", name, Tables())
	}
}
