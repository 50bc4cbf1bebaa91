// Package colour provides the fixed-arity colour value used by colour lists.
package colour

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// MaxArity is the largest number of components a Colour can hold.
const MaxArity = 4

// Equality tolerance: components are rounded to compareDigits decimal places
// and then compared within compareEpsilon.
const (
	compareDigits  = 3
	compareEpsilon = 0.0005
)

// ErrArity is wrapped by the panics raised when colours of different arity
// meet, or when a colour is built with an unsupported number of components.
var ErrArity = errors.New("colour: arity mismatch")

// Colour is a 3 (RGB-like) or 4 (with alpha) component colour sample.
// It is a value type and is safe to copy.
type Colour struct {
	c [MaxArity]float64
	n int
}

// New creates a colour from its components. It panics if the number of
// components is not 3 or 4.
func New(components ...float64) Colour {
	CheckArity(len(components))
	var c Colour
	c.n = copy(c.c[:], components)
	return c
}

// RGB creates a three-component colour.
func RGB(r, g, b float64) Colour {
	return Colour{c: [MaxArity]float64{r, g, b}, n: 3}
}

// RGBA creates a four-component colour.
func RGBA(r, g, b, a float64) Colour {
	return Colour{c: [MaxArity]float64{r, g, b, a}, n: 4}
}

// Zero returns the all-zero colour of the given arity.
func Zero(arity int) Colour {
	CheckArity(arity)
	return Colour{n: arity}
}

// Fill returns a colour of the given arity with every component set to x.
func Fill(arity int, x float64) Colour {
	c := Zero(arity)
	for j := 0; j < arity; j++ {
		c.c[j] = x
	}
	return c
}

// CheckArity panics with an error wrapping ErrArity unless n is a supported
// component count.
func CheckArity(n int) {
	if n != 3 && n != MaxArity {
		panic(fmt.Errorf("%w: %d components (want 3 or 4)", ErrArity, n))
	}
}

// Arity returns the number of components.
func (c Colour) Arity() int {
	return c.n
}

// At returns component j.
func (c Colour) At(j int) float64 {
	return c.c[j]
}

// Set assigns component j.
func (c *Colour) Set(j int, v float64) {
	c.c[j] = v
}

// With returns a copy of c with component j replaced.
func (c Colour) With(j int, v float64) Colour {
	c.c[j] = v
	return c
}

// Map returns a copy of c with f applied to every component.
func (c Colour) Map(f func(float64) float64) Colour {
	for j := 0; j < c.n; j++ {
		c.c[j] = f(c.c[j])
	}
	return c
}

// Compare orders two colours component by component using the equality
// tolerance. It returns -1, 0 or +1. Colours of different arity panic.
func (c Colour) Compare(o Colour) int {
	MustMatch(c.n, o.n)
	for j := 0; j < c.n; j++ {
		if Near(c.c[j], o.c[j]) {
			continue
		}
		if c.c[j] < o.c[j] {
			return -1
		}
		return 1
	}
	return 0
}

// Equal reports whether every component pair is within tolerance.
func (c Colour) Equal(o Colour) bool {
	return c.n == o.n && c.Compare(o) == 0
}

// IsDefined reports whether every component is finite. The empty-list
// results of min and max are not defined.
func (c Colour) IsDefined() bool {
	for j := 0; j < c.n; j++ {
		if math.IsInf(c.c[j], 0) || math.IsNaN(c.c[j]) {
			return false
		}
	}
	return true
}

// String renders the components as a parenthesised tuple.
func (c Colour) String() string {
	parts := make([]string, c.n)
	for j := 0; j < c.n; j++ {
		parts[j] = strconv.FormatFloat(c.c[j], 'g', -1, 64)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// Near reports whether x and y are equal after rounding to the comparison
// precision.
func Near(x, y float64) bool {
	return math.Abs(RoundTo(x, compareDigits)-RoundTo(y, compareDigits)) < compareEpsilon
}

// MustMatch panics with ErrArity when two arities differ.
func MustMatch(a, b int) {
	if a != b {
		panic(fmt.Errorf("%w: %d != %d", ErrArity, a, b))
	}
}
