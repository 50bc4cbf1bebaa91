package colour

import (
	"fmt"
	"strings"
)

// Base is the numeric range policy of a colour's components.
type Base int

const (
	// Normal components live in the unit interval.
	Normal Base = iota
	// Integer components live in 0..255.
	Integer
	// Integer256 components live in 0..256.
	Integer256
)

// Scale returns the top of the base's range.
func (b Base) Scale() float64 {
	switch b {
	case Integer:
		return 255
	case Integer256:
		return 256
	default:
		return 1
	}
}

// Clamp limits x to the signed band [-scale, +scale]. Negative excursions
// are representable; anything beyond the scale is not.
func (b Base) Clamp(x float64) float64 {
	s := b.Scale()
	return Clamp(x, -s, s)
}

// Limit clamps x to the unsigned range [0, scale].
func (b Base) Limit(x float64) float64 {
	return Clamp(x, 0, b.Scale())
}

// InBand reports whether |x| does not exceed the scale.
func (b Base) InBand(x float64) bool {
	return Abs(x) <= b.Scale()
}

// Normalize maps x from this base onto the unit interval.
func (b Base) Normalize(x float64) float64 {
	return x / b.Scale()
}

// Denormalize maps a unit-interval value into this base.
func (b Base) Denormalize(x float64) float64 {
	return x * b.Scale()
}

// Invert mirrors x inside its half of the band: non-negative values become
// scale-x and negative values -scale-x.
func (b Base) Invert(x float64) float64 {
	if x >= 0 {
		return b.Scale() - x
	}
	return -b.Scale() - x
}

// String returns the configuration name of the base.
func (b Base) String() string {
	switch b {
	case Normal:
		return "normal"
	case Integer:
		return "integer"
	case Integer256:
		return "256"
	default:
		return fmt.Sprintf("base(%d)", int(b))
	}
}

// ValidBases returns the accepted base names.
func ValidBases() []string {
	return []string{"normal", "integer", "256"}
}

// ParseBase parses a base name. "1", "unit", "255" and "int" are accepted as
// aliases.
func ParseBase(s string) (Base, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "normal", "unit", "1", "":
		return Normal, nil
	case "integer", "int", "255":
		return Integer, nil
	case "256":
		return Integer256, nil
	default:
		return Normal, fmt.Errorf("unknown base: %s (valid bases: %v)", s, ValidBases())
	}
}
