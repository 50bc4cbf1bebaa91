// Package colourlist provides an ordered, variable-length list of colours
// with scripting-style indexing and broadcasting arithmetic.
//
// Mutating methods work in place and return the receiver so calls can be
// chained:
//
//	l.Clone().Mul(colourlist.Scalar(0.5)).Add(colourlist.Single(c))
//
// The package-level functions of the same names return a new list and leave
// their argument untouched.
package colourlist

import (
	"errors"
	"fmt"
	"iter"
	"slices"

	"github.com/jmylchreest/swatch/internal/colour"
	"github.com/jmylchreest/swatch/internal/index"
	"github.com/jmylchreest/swatch/internal/splice"
)

// ErrSliceSize is returned when an extended slice (step other than 1) is
// assigned a list of a different length.
var ErrSliceSize = errors.New("colourlist: extended slice assignment size mismatch")

// List is an ordered sequence of colours sharing one arity and one base.
type List struct {
	colours []colour.Colour
	arity   int
	base    colour.Base
}

// New creates an empty list of the given arity and base.
func New(arity int, base colour.Base) *List {
	colour.CheckArity(arity)
	return &List{arity: arity, base: base}
}

// Of creates a list holding the given colours. The arity is taken from the
// first colour, or is 3 for an empty list. Mixed arities panic.
func Of(base colour.Base, colours ...colour.Colour) *List {
	arity := 3
	if len(colours) > 0 {
		arity = colours[0].Arity()
	}
	l := New(arity, base)
	for _, c := range colours {
		l.check(c)
	}
	l.colours = slices.Clone(colours)
	return l
}

// Len returns the number of colours.
func (l *List) Len() int {
	return len(l.colours)
}

// Arity returns the number of components of every colour in the list.
func (l *List) Arity() int {
	return l.arity
}

// Base returns the range policy of the list.
func (l *List) Base() colour.Base {
	return l.base
}

// Colours returns a copy of the colours.
func (l *List) Colours() []colour.Colour {
	return slices.Clone(l.colours)
}

// All iterates over the colours with their indices.
func (l *List) All() iter.Seq2[int, colour.Colour] {
	return func(yield func(int, colour.Colour) bool) {
		for i, c := range l.colours {
			if !yield(i, c) {
				return
			}
		}
	}
}

// Clone returns an independent copy of the list.
func (l *List) Clone() *List {
	return &List{colours: slices.Clone(l.colours), arity: l.arity, base: l.base}
}

// check panics when c does not have the list's arity.
func (l *List) check(c colour.Colour) {
	colour.MustMatch(l.arity, c.Arity())
}

// checkList panics when other does not have the list's arity.
func (l *List) checkList(other *List) {
	colour.MustMatch(l.arity, other.arity)
}

// At returns the colour at index i, counting from the end when negative.
func (l *List) At(i int) (colour.Colour, bool) {
	r, ok := index.Resolve(i, len(l.colours))
	if !ok {
		return colour.Colour{}, false
	}
	return l.colours[r], true
}

// Set replaces the colour at index i. It reports false when i is out of
// range.
func (l *List) Set(i int, c colour.Colour) bool {
	l.check(c)
	r, ok := index.Resolve(i, len(l.colours))
	if !ok {
		return false
	}
	l.colours[r] = c
	return true
}

// GetSlice returns a new list holding the colours selected by the optional
// begin, end and step.
func (l *List) GetSlice(begin, end, step *int) (*List, error) {
	s, err := index.NewSlice(begin, end, step, len(l.colours))
	if err != nil {
		return nil, err
	}
	return l.Fetch(s), nil
}

// Fetch returns a new list holding the colours selected by a resolved slice.
func (l *List) Fetch(s index.Slice) *List {
	return &List{colours: splice.Fetch(l.colours, s), arity: l.arity, base: l.base}
}

// SetSlice assigns in to the region selected by the optional begin, end and
// step. A unit-step region grows or shrinks to fit; any other step needs an
// input of exactly the region's length.
func (l *List) SetSlice(begin, end, step *int, in *List) error {
	s, err := index.NewSlice(begin, end, step, len(l.colours))
	if err != nil {
		return err
	}
	return l.Splice(s, in)
}

// Splice assigns in to the region selected by a resolved slice.
func (l *List) Splice(s index.Slice, in *List) error {
	l.checkList(in)
	out, ok := splice.Assign(l.colours, slices.Clone(in.colours), s)
	if !ok {
		return fmt.Errorf("%w: slice %v selects %d colours, got %d", ErrSliceSize, s, s.Len(), in.Len())
	}
	l.colours = out
	return nil
}

// Insert places c before index i. Out-of-range indices are clamped, so
// Insert never fails.
func (l *List) Insert(i int, c colour.Colour) *List {
	l.check(c)
	l.colours = splice.Insert(l.colours, i, c)
	return l
}

// Pop removes and returns the colour at index i. It reports false when i is
// out of range.
func (l *List) Pop(i int) (colour.Colour, bool) {
	out, c, ok := splice.Pop(l.colours, i)
	l.colours = out
	return c, ok
}

// Append adds colours to the end of the list.
func (l *List) Append(cs ...colour.Colour) *List {
	for _, c := range cs {
		l.check(c)
	}
	l.colours = append(l.colours, cs...)
	return l
}

// Extend appends a copy of every colour in other.
func (l *List) Extend(other *List) *List {
	l.checkList(other)
	l.colours = splice.Extend(l.colours, other.colours)
	return l
}

// Duplicate repeats the contents n times in total. n <= 0 empties the list.
func (l *List) Duplicate(n int) *List {
	l.colours = splice.Duplicate(l.colours, n)
	return l
}

// Rotate shifts the colours cyclically n places to the right; negative n
// rotates left.
func (l *List) Rotate(n int) *List {
	splice.Rotate(l.colours, n)
	return l
}

// Reverse inverts the order of the colours.
func (l *List) Reverse() *List {
	slices.Reverse(l.colours)
	return l
}

// Resize grows the list with zero colours or truncates it to size.
func (l *List) Resize(size int) *List {
	size = max(0, size)
	if size <= len(l.colours) {
		l.colours = l.colours[:size]
		return l
	}
	zero := colour.Zero(l.arity)
	for len(l.colours) < size {
		l.colours = append(l.colours, zero)
	}
	return l
}

// Clear removes every colour.
func (l *List) Clear() *List {
	l.colours = l.colours[:0]
	return l
}

// Count returns how many colours equal c within tolerance.
func (l *List) Count(c colour.Colour) int {
	n := 0
	for _, x := range l.colours {
		if x.Equal(c) {
			n++
		}
	}
	return n
}

// Index returns the position of the first colour equal to c, or -1.
func (l *List) Index(c colour.Colour) int {
	return slices.IndexFunc(l.colours, c.Equal)
}

// Sort orders the colours component-wise, keeping equal colours in their
// original order.
//
// Components within the equality tolerance compare equal, and that
// relation is not transitive: a chain of colours each a hair apart may sort
// in an order that depends on the input. Colours further apart than the
// tolerance always sort consistently.
func (l *List) Sort() *List {
	slices.SortStableFunc(l.colours, colour.Colour.Compare)
	return l
}

// Spread appends n colours interpolated linearly from the last colour (or
// zero for an empty list) towards end; the final appended colour is end.
func (l *List) Spread(end colour.Colour, n int) *List {
	l.check(end)
	start := colour.Zero(l.arity)
	if len(l.colours) > 0 {
		start = l.colours[len(l.colours)-1]
	}
	for k := 1; k <= n; k++ {
		ratio := float64(k) / float64(n)
		c := start
		for j := 0; j < l.arity; j++ {
			c.Set(j, colour.Lerp(start.At(j), end.At(j), ratio))
		}
		l.colours = append(l.colours, c)
	}
	return l
}

// String renders the list as a parenthesised sequence of component tuples.
func (l *List) String() string {
	s := "("
	for i, c := range l.colours {
		if i > 0 {
			s += ", "
		}
		s += c.String()
	}
	return s + ")"
}
