package colourlist

import (
	"math"

	"github.com/jmylchreest/swatch/internal/colour"
)

// ApplyEach replaces every component x with f(x), clamped to the base's
// band.
func (l *List) ApplyEach(f func(float64) float64) *List {
	for i := range l.colours {
		c := &l.colours[i]
		for j := 0; j < l.arity; j++ {
			c.Set(j, l.base.Clamp(f(c.At(j))))
		}
	}
	return l
}

// Transform replaces every colour with fn applied to it, such as a
// colour-space conversion.
func (l *List) Transform(fn colour.Transform) *List {
	for i, c := range l.colours {
		l.colours[i] = fn(c, l.base)
	}
	return l
}

// Abs replaces every component with its magnitude.
func (l *List) Abs() *List { return l.ApplyEach(math.Abs) }

// Ceil rounds every component up.
func (l *List) Ceil() *List { return l.ApplyEach(math.Ceil) }

// Floor rounds every component down.
func (l *List) Floor() *List { return l.ApplyEach(math.Floor) }

// Trunc rounds every component towards zero.
func (l *List) Trunc() *List { return l.ApplyEach(math.Trunc) }

// Neg negates every component.
func (l *List) Neg() *List {
	return l.ApplyEach(func(x float64) float64 { return -x })
}

// Invert mirrors every component inside its half of the band, so in the
// unit base 0.25 becomes 0.75 and -0.25 becomes -0.75.
func (l *List) Invert() *List {
	return l.ApplyEach(l.base.Invert)
}

// Round rounds every component to the given number of decimal places.
func (l *List) Round(digits int) *List {
	return l.ApplyEach(func(x float64) float64 { return colour.RoundTo(x, digits) })
}

// Limit clamps every component to the unsigned range [0, scale].
func (l *List) Limit() *List {
	return l.ApplyEach(l.base.Limit)
}

// Zero sets every colour to zero without changing the length.
func (l *List) Zero() *List {
	zero := colour.Zero(l.arity)
	for i := range l.colours {
		l.colours[i] = zero
	}
	return l
}

// Transformed returns a new list with fn applied to every colour.
func Transformed(l *List, fn colour.Transform) *List {
	return l.Clone().Transform(fn)
}

// Reversed returns a reversed copy of l.
func Reversed(l *List) *List {
	return l.Clone().Reverse()
}

// Rotated returns a copy of l rotated n places to the right.
func Rotated(l *List, n int) *List {
	return l.Clone().Rotate(n)
}

// Duplicated returns l repeated n times.
func Duplicated(l *List, n int) *List {
	return l.Clone().Duplicate(n)
}

// Sorted returns a sorted copy of l.
func Sorted(l *List) *List {
	return l.Clone().Sort()
}

// Concat returns a new list holding the colours of a followed by those of b.
func Concat(a, b *List) *List {
	return a.Clone().Extend(b)
}
