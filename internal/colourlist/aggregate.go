package colourlist

import (
	"math"

	"github.com/jmylchreest/swatch/internal/colour"
)

// Min returns the per-component minimum across the list. An empty list
// yields +Inf in every component, which is not a defined colour.
func (l *List) Min() colour.Colour {
	result := colour.Fill(l.arity, math.Inf(1))
	for _, c := range l.colours {
		for j := 0; j < l.arity; j++ {
			result.Set(j, min(result.At(j), c.At(j)))
		}
	}
	return result
}

// Max returns the per-component maximum across the list. An empty list
// yields -Inf in every component, which is not a defined colour.
func (l *List) Max() colour.Colour {
	result := colour.Fill(l.arity, math.Inf(-1))
	for _, c := range l.colours {
		for j := 0; j < l.arity; j++ {
			result.Set(j, max(result.At(j), c.At(j)))
		}
	}
	return result
}

// Sum returns the per-component sum across the list.
func (l *List) Sum() colour.Colour {
	result := colour.Zero(l.arity)
	for _, c := range l.colours {
		for j := 0; j < l.arity; j++ {
			result.Set(j, result.At(j)+c.At(j))
		}
	}
	return result
}

// Distance2 returns the summed squared component differences between the
// list and x.
//
// A list operand is paired by position; each colour of the longer list
// past the end of the shorter one adds its squared magnitude, as though
// compared with zero. A scalar or single colour is compared with every
// colour of the list.
func (l *List) Distance2(x Operand) float64 {
	if a := x.operandArity(); a != 0 {
		colour.MustMatch(l.arity, a)
	}

	n := len(l.colours)
	if s := x.operandSize(); s >= 0 {
		n = min(n, s)
	}

	var result float64
	for i := 0; i < n; i++ {
		for j := 0; j < l.arity; j++ {
			d := l.colours[i].At(j) - x.operandValue(i, j)
			result += d * d
		}
	}

	s := x.operandSize()
	if s < 0 {
		return result
	}
	for i := n; i < len(l.colours); i++ {
		result += magnitude2(l.colours[i])
	}
	for i := n; i < s; i++ {
		for j := 0; j < l.arity; j++ {
			v := x.operandValue(i, j)
			result += v * v
		}
	}
	return result
}

// Distance is the square root of Distance2.
func (l *List) Distance(x Operand) float64 {
	return math.Sqrt(l.Distance2(x))
}

func magnitude2(c colour.Colour) float64 {
	var m float64
	for j := 0; j < c.Arity(); j++ {
		m += c.At(j) * c.At(j)
	}
	return m
}

// Compare orders the list against x and returns -1, 0 or +1.
//
// A list operand is compared lexicographically by colour and then by
// component, using the colour equality tolerance; when one list is a prefix
// of the other the shorter sorts first. A scalar or single colour is
// compared with every colour in turn and the first difference decides.
func (l *List) Compare(x Operand) int {
	if a := x.operandArity(); a != 0 {
		colour.MustMatch(l.arity, a)
	}

	s := x.operandSize()
	n := len(l.colours)
	if s >= 0 {
		n = min(n, s)
	}

	for i := 0; i < n; i++ {
		for j := 0; j < l.arity; j++ {
			a, b := l.colours[i].At(j), x.operandValue(i, j)
			if colour.Near(a, b) {
				continue
			}
			if a < b {
				return -1
			}
			return 1
		}
	}

	if s < 0 {
		return 0
	}
	switch {
	case len(l.colours) < s:
		return -1
	case len(l.colours) > s:
		return 1
	default:
		return 0
	}
}

// Equal reports whether two lists hold equal colours in the same order.
func (l *List) Equal(other *List) bool {
	return l.arity == other.arity && l.Compare(other) == 0
}

// Compare orders two lists; it is suitable for slices.SortFunc.
func Compare(a, b *List) int {
	return a.Compare(b)
}
