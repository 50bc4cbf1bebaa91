package colour

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Abs returns |x|.
func Abs[F constraints.Float](x F) F {
	if x < 0 {
		return -x
	}
	return x
}

// Clamp limits x to [lo, hi]. NaN is returned unchanged.
func Clamp[F constraints.Float](x, lo, hi F) F {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// RoundTo rounds x to the given number of decimal places, half to even.
func RoundTo[F constraints.Float](x F, digits int) F {
	p := math.Pow(10, float64(digits))
	return F(math.RoundToEven(float64(x)*p) / p)
}

// SafeDiv divides x by y, substituting 1 for a zero divisor so the dividend
// passes through unchanged.
func SafeDiv[F constraints.Float](x, y F) F {
	if y == 0 {
		return x
	}
	return x / y
}

// SignedPow raises |x| to y and restores the sign of x, so negative
// excursions stay real for fractional exponents.
func SignedPow[F constraints.Float](x, y F) F {
	if x < 0 {
		return -F(math.Pow(float64(-x), float64(y)))
	}
	return F(math.Pow(float64(x), float64(y)))
}

// Lerp interpolates linearly between a and b.
func Lerp[F constraints.Float](a, b, ratio F) F {
	return a + ratio*(b-a)
}
