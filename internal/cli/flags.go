package cli

import (
	"strings"

	"github.com/spf13/pflag"

	"github.com/jmylchreest/swatch/internal/colour"
)

// baseValue is a colour.Base usable as a flag.
type baseValue colour.Base

var _ pflag.Value = (*baseValue)(nil)

func (b *baseValue) String() string {
	return colour.Base(*b).String()
}

func (b *baseValue) Set(s string) error {
	base, err := colour.ParseBase(s)
	if err != nil {
		return err
	}
	*b = baseValue(base)
	return nil
}

func (b *baseValue) Type() string {
	return "base"
}

// Base returns the flag value as a colour.Base.
func (b baseValue) Base() colour.Base {
	return colour.Base(b)
}

func joinNames(names []string) string {
	return strings.Join(names, ", ")
}
