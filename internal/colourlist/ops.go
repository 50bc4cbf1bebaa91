package colourlist

import (
	"fmt"
	"strings"

	"github.com/jmylchreest/swatch/internal/colour"
)

// Op is a binary component operator applied between a list and an operand.
type Op int

const (
	// OpAdd computes existing + operand.
	OpAdd Op = iota
	// OpSub computes existing - operand.
	OpSub
	// OpRSub computes operand - existing.
	OpRSub
	// OpMul computes existing * operand.
	OpMul
	// OpDiv computes existing / operand; a zero divisor leaves existing.
	OpDiv
	// OpRDiv computes operand / existing; a zero divisor leaves operand.
	OpRDiv
	// OpPow computes existing ** operand.
	OpPow
	// OpRPow computes operand ** existing.
	OpRPow
	// OpMinLimit raises existing to at least operand.
	OpMinLimit
	// OpMaxLimit lowers existing to at most operand.
	OpMaxLimit
)

var opNames = [...]string{
	OpAdd:      "add",
	OpSub:      "sub",
	OpRSub:     "rsub",
	OpMul:      "mul",
	OpDiv:      "div",
	OpRDiv:     "rdiv",
	OpPow:      "pow",
	OpRPow:     "rpow",
	OpMinLimit: "min-limit",
	OpMaxLimit: "max-limit",
}

// String returns the operator name.
func (o Op) String() string {
	if o < 0 || int(o) >= len(opNames) {
		return fmt.Sprintf("op(%d)", int(o))
	}
	return opNames[o]
}

// Ops returns every operator in declaration order.
func Ops() []Op {
	ops := make([]Op, len(opNames))
	for i := range ops {
		ops[i] = Op(i)
	}
	return ops
}

// ParseOp returns the operator with the given name.
func ParseOp(name string) (Op, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range opNames {
		if n == name {
			return Op(i), nil
		}
	}
	return 0, fmt.Errorf("unknown operator: %s (valid operators: %s)", name, strings.Join(opNames[:], ", "))
}

// eval computes one component result before clamping.
func (o Op) eval(existing, operand float64) float64 {
	switch o {
	case OpAdd:
		return existing + operand
	case OpSub:
		return existing - operand
	case OpRSub:
		return operand - existing
	case OpMul:
		return existing * operand
	case OpDiv:
		return colour.SafeDiv(existing, operand)
	case OpRDiv:
		return colour.SafeDiv(operand, existing)
	case OpPow:
		return colour.SignedPow(existing, operand)
	case OpRPow:
		return colour.SignedPow(operand, existing)
	case OpMinLimit:
		return max(existing, operand)
	case OpMaxLimit:
		return min(existing, operand)
	default:
		panic(fmt.Sprintf("colourlist: unknown operator %d", int(o)))
	}
}

// Operand is the right-hand side of a broadcast operation: a scalar, a
// single colour, or another list.
type Operand interface {
	// operandSize is the number of colours, or -1 when the operand
	// broadcasts to every element.
	operandSize() int
	// operandArity is the component count, or 0 for a scalar.
	operandArity() int
	// operandValue returns component j of the colour paired with element i.
	operandValue(i, j int) float64
}

type scalar float64

func (s scalar) operandSize() int              { return -1 }
func (s scalar) operandArity() int             { return 0 }
func (s scalar) operandValue(_, _ int) float64 { return float64(s) }

// Scalar broadcasts x to every component of every colour.
func Scalar(x float64) Operand {
	return scalar(x)
}

type single colour.Colour

func (s single) operandSize() int              { return -1 }
func (s single) operandArity() int             { return colour.Colour(s).Arity() }
func (s single) operandValue(_, j int) float64 { return colour.Colour(s).At(j) }

// Single broadcasts c component-wise against every colour.
func Single(c colour.Colour) Operand {
	return single(c)
}

func (l *List) operandSize() int              { return len(l.colours) }
func (l *List) operandArity() int             { return l.arity }
func (l *List) operandValue(i, j int) float64 { return l.colours[i].At(j) }

// Apply combines the list with x in place.
//
// A list operand pairs colours by position. When it is longer than the
// receiver the receiver first grows with zero colours; when it is shorter
// the receiver's extra colours are left untouched. Results are clamped to
// the base's band, except that a zero divisor leaves the component exactly
// as it was. An operand of different arity panics.
func (l *List) Apply(op Op, x Operand) *List {
	if a := x.operandArity(); a != 0 {
		colour.MustMatch(l.arity, a)
	}

	n := len(l.colours)
	if s := x.operandSize(); s >= 0 {
		if s > n {
			l.Resize(s)
		}
		n = s
	}

	for i := 0; i < n; i++ {
		c := &l.colours[i]
		for j := 0; j < l.arity; j++ {
			v := x.operandValue(i, j)
			if op == OpDiv && v == 0 {
				continue
			}
			c.Set(j, l.base.Clamp(op.eval(c.At(j), v)))
		}
	}
	return l
}

// Add adds x in place.
func (l *List) Add(x Operand) *List { return l.Apply(OpAdd, x) }

// Sub subtracts x in place.
func (l *List) Sub(x Operand) *List { return l.Apply(OpSub, x) }

// RSub replaces each component with x minus the component.
func (l *List) RSub(x Operand) *List { return l.Apply(OpRSub, x) }

// Mul multiplies by x in place.
func (l *List) Mul(x Operand) *List { return l.Apply(OpMul, x) }

// Div divides by x in place. Zero divisors leave components unchanged.
func (l *List) Div(x Operand) *List { return l.Apply(OpDiv, x) }

// RDiv replaces each component with x divided by the component.
func (l *List) RDiv(x Operand) *List { return l.Apply(OpRDiv, x) }

// Pow raises each component to x.
func (l *List) Pow(x Operand) *List { return l.Apply(OpPow, x) }

// RPow replaces each component with x raised to the component.
func (l *List) RPow(x Operand) *List { return l.Apply(OpRPow, x) }

// MinLimit raises every component to at least x.
func (l *List) MinLimit(x Operand) *List { return l.Apply(OpMinLimit, x) }

// MaxLimit lowers every component to at most x.
func (l *List) MaxLimit(x Operand) *List { return l.Apply(OpMaxLimit, x) }

// Applied returns a new list holding l combined with x.
func Applied(l *List, op Op, x Operand) *List {
	return l.Clone().Apply(op, x)
}

// Add returns l + x.
func Add(l *List, x Operand) *List { return Applied(l, OpAdd, x) }

// Sub returns l - x.
func Sub(l *List, x Operand) *List { return Applied(l, OpSub, x) }

// RSub returns x - l.
func RSub(l *List, x Operand) *List { return Applied(l, OpRSub, x) }

// Mul returns l * x.
func Mul(l *List, x Operand) *List { return Applied(l, OpMul, x) }

// Div returns l / x.
func Div(l *List, x Operand) *List { return Applied(l, OpDiv, x) }

// RDiv returns x / l.
func RDiv(l *List, x Operand) *List { return Applied(l, OpRDiv, x) }

// Pow returns l ** x.
func Pow(l *List, x Operand) *List { return Applied(l, OpPow, x) }

// RPow returns x ** l.
func RPow(l *List, x Operand) *List { return Applied(l, OpRPow, x) }

// MinLimit returns l with every component raised to at least x.
func MinLimit(l *List, x Operand) *List { return Applied(l, OpMinLimit, x) }

// MaxLimit returns l with every component lowered to at most x.
func MaxLimit(l *List, x Operand) *List { return Applied(l, OpMaxLimit, x) }
