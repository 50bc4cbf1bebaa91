// Package index resolves scripting-style indices and extended slices against
// a sequence length.
//
// Negative indices count from the end of the sequence and are offset by the
// length exactly once. Slice bounds never fail: out-of-range bounds are
// clamped and may produce an empty slice. Only a zero step is an error.
package index

import (
	"errors"
	"fmt"
	"iter"
	"strconv"
	"strings"
)

// ErrZeroStep is returned when a slice is requested with a step of zero.
var ErrZeroStep = errors.New("index: slice step cannot be zero")

// Resolve maps a possibly negative index onto [0, size). It reports false
// when the index is out of range after the single negative offset.
func Resolve(index, size int) (int, bool) {
	if index < 0 {
		index += size
	}
	if index < 0 || index >= size {
		return 0, false
	}
	return index, true
}

// Int returns a pointer to i, for optional slice bounds.
func Int(i int) *int {
	return &i
}

// Slice is a resolved (start, stop, step) triple. Start and Stop lie in
// [0, size] for a positive step and in [-1, size-1] for a negative one.
type Slice struct {
	Start int
	Stop  int
	Step  int
}

// NewSlice resolves optional begin, end and step against size. Nil bounds
// take the natural start and end for the direction of step; nil step is 1.
func NewSlice(begin, end, step *int, size int) (Slice, error) {
	s := Slice{Step: 1}
	if step != nil {
		s.Step = *step
	}
	if s.Step == 0 {
		return Slice{}, ErrZeroStep
	}

	if s.Step > 0 {
		s.Start = adjust(begin, 0, 0, size, size)
		s.Stop = adjust(end, size, 0, size, size)
	} else {
		s.Start = adjust(begin, size-1, -1, size-1, size)
		s.Stop = adjust(end, -1, -1, size-1, size)
	}
	return s, nil
}

// adjust applies the default, the single negative offset and the clamp to
// one slice bound.
func adjust(bound *int, def, lo, hi, size int) int {
	if bound == nil {
		return def
	}
	i := *bound
	if i < 0 {
		i += size
	}
	return max(lo, min(hi, i))
}

// Len returns the number of indices the slice visits.
func (s Slice) Len() int {
	if s.Step > 0 {
		if s.Stop <= s.Start {
			return 0
		}
		return (s.Stop - s.Start + s.Step - 1) / s.Step
	}
	if s.Stop >= s.Start {
		return 0
	}
	return (s.Start - s.Stop - s.Step - 1) / (-s.Step)
}

// At returns the i-th visited index.
func (s Slice) At(i int) int {
	return s.Start + i*s.Step
}

// All iterates over the visited indices in order.
func (s Slice) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := s.Start; (s.Step > 0 && i < s.Stop) || (s.Step < 0 && i > s.Stop); i += s.Step {
			if !yield(i) {
				return
			}
		}
	}
}

// String renders the slice in start:stop:step notation.
func (s Slice) String() string {
	return fmt.Sprintf("%d:%d:%d", s.Start, s.Stop, s.Step)
}

// Parse reads "begin:end:step" notation, where each part may be empty, and
// resolves it against size. A bare integer selects that single element.
func Parse(text string, size int) (Slice, error) {
	parts := strings.Split(strings.TrimSpace(text), ":")
	if len(parts) > 3 {
		return Slice{}, fmt.Errorf("invalid slice %q: too many ':'", text)
	}

	bounds := make([]*int, 3)
	for i, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return Slice{}, fmt.Errorf("invalid slice %q: %w", text, err)
		}
		bounds[i] = Int(n)
	}

	if len(parts) == 1 {
		if bounds[0] == nil {
			return Slice{}, fmt.Errorf("invalid slice %q: empty", text)
		}
		i, ok := Resolve(*bounds[0], size)
		if !ok {
			return Slice{}, fmt.Errorf("invalid slice %q: index out of range for length %d", text, size)
		}
		return Slice{Start: i, Stop: i + 1, Step: 1}, nil
	}

	return NewSlice(bounds[0], bounds[1], bounds[2], size)
}
