package names

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/jmylchreest/swatch/internal/colour"
)

// ErrBadColour is matched by every *ParseError.
var ErrBadColour = errors.New("names: bad colour")

// ParseError reports text that is not a colour.
type ParseError struct {
	Text   string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("bad colour %q: %s", e.Text, e.Reason)
}

// Is makes errors.Is(err, ErrBadColour) hold for every ParseError.
func (e *ParseError) Is(target error) bool {
	return target == ErrBadColour
}

const (
	// grayThreshold is the colourfulness below which a colour is gray.
	grayThreshold = 1e-4
	// hexTolerance is how far, in 8-bit steps, a component may be from an
	// exact hex value and still be named.
	hexTolerance = 0.001
	// signCount is the length of a sign suffix: one sign per component.
	signCount    = 3
	commaDigits  = 7
	grayDecimals = 4
)

var hexPrefixes = []string{"0x", "0X", "#"}

// Parse converts text to a three-component colour in base b.
//
// The forms tried, in order, are an exact table name, a hex literal
// prefixed by 0x, 0X or #, "gray N" or "grey N" with N a percentage, and a
// comma-separated triple of numbers already in base b. Any form may be
// followed by exactly three signs, such as "red-++", which negate the
// components marked '-'.
func (t *Table) Parse(text string, b colour.Base) (colour.Colour, error) {
	c, err := t.parse(text, b)
	if err != nil {
		return colour.Colour{}, &ParseError{Text: text, Reason: err.Error()}
	}
	return c, nil
}

func (t *Table) parse(text string, b colour.Base) (colour.Colour, error) {
	body := strings.TrimRight(text, "+-")
	signs := text[len(body):]
	if signs == "" {
		return t.parseUnsigned(text, b)
	}
	if body == "" || len(signs) != signCount {
		return colour.Colour{}, fmt.Errorf("sign suffix must be %d characters of + or -", signCount)
	}

	c, err := t.parseUnsigned(body, b)
	if err != nil {
		return colour.Colour{}, err
	}
	for j, s := range signs {
		if s == '-' {
			c.Set(j, -c.At(j))
		}
	}
	return c, nil
}

func (t *Table) parseUnsigned(text string, b colour.Base) (colour.Colour, error) {
	if text == "" {
		return colour.Colour{}, errors.New("empty")
	}

	if hex, ok := t.names[text]; ok {
		return FromHex(hex, b), nil
	}

	for _, prefix := range hexPrefixes {
		if digits, ok := strings.CutPrefix(text, prefix); ok {
			hex, err := strconv.ParseUint(digits, 16, 32)
			if err != nil || hex > 0xffffff {
				return colour.Colour{}, errors.New("invalid hex value")
			}
			return FromHex(uint32(hex), b), nil
		}
	}

	for _, prefix := range []string{"gray ", "grey "} {
		if percent, ok := strings.CutPrefix(text, prefix); ok {
			p, err := strconv.ParseFloat(strings.TrimSpace(percent), 64)
			if err != nil {
				return colour.Colour{}, errors.New("invalid gray percentage")
			}
			x := b.Denormalize(p / 100)
			return colour.RGB(x, x, x), nil
		}
	}

	parts := strings.Split(text, ",")
	if len(parts) != 3 {
		return colour.Colour{}, errors.New("unknown name")
	}
	c := colour.Zero(3)
	for j, part := range parts {
		x, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return colour.Colour{}, fmt.Errorf("component %d is not a number", j+1)
		}
		c.Set(j, x)
	}
	return c, nil
}

// MustParse is like Parse but panics on error.
func (t *Table) MustParse(text string, b colour.Base) colour.Colour {
	c, err := t.Parse(text, b)
	if err != nil {
		panic(err)
	}
	return c
}

// Format renders c in its canonical text form.
//
// A colour whose components all sit on exact hex steps is rendered by its
// canonical name when it has one; an achromatic colour as "gray N"; anything
// else as a comma-separated triple. Only colours inside the base's band get
// the named or gray forms, and those carry a sign suffix when any component
// is negative. Four-component colours always use the comma form.
func (t *Table) Format(c colour.Colour, b colour.Base) string {
	if c.Arity() != 3 {
		return commaForm(c)
	}

	if !inBand(c, b) {
		return commaForm(c)
	}
	if onHexGrid(c, b) {
		if name, ok := t.inverse[HexOf(c, b)]; ok {
			return name + signSuffix(c)
		}
	}

	if IsGray(c, b) {
		percent := 100 * colour.Abs(b.Normalize(c.At(0)))
		return "gray " + trimFloat(percent, grayDecimals) + signSuffix(c)
	}
	return commaForm(c)
}

func inBand(c colour.Colour, b colour.Base) bool {
	for j := 0; j < 3; j++ {
		if !b.InBand(c.At(j)) {
			return false
		}
	}
	return true
}

func onHexGrid(c colour.Colour, b colour.Base) bool {
	for j := 0; j < 3; j++ {
		step := colour.Abs(b.Normalize(c.At(j))) * 255
		if math.Abs(step-math.Round(step)) >= hexTolerance {
			return false
		}
	}
	return true
}

func signSuffix(c colour.Colour) string {
	negative := false
	for j := 0; j < 3; j++ {
		negative = negative || c.At(j) < 0
	}
	if !negative {
		return ""
	}

	var sb strings.Builder
	for j := 0; j < 3; j++ {
		if c.At(j) < 0 {
			sb.WriteByte('-')
		} else {
			sb.WriteByte('+')
		}
	}
	return sb.String()
}

func commaForm(c colour.Colour) string {
	parts := make([]string, c.Arity())
	for j := range parts {
		parts[j] = strconv.FormatFloat(c.At(j), 'g', commaDigits, 64)
	}
	return strings.Join(parts, ", ")
}

func trimFloat(x float64, decimals int) string {
	s := strconv.FormatFloat(x, 'f', decimals, 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
	}
	return s
}

// Colourfulness measures how far c is from achromatic: the largest
// difference between the magnitudes of any two of its first three
// components, as a fraction of the base's scale.
func Colourfulness(c colour.Colour, b colour.Base) float64 {
	var result float64
	for i := 0; i < 3; i++ {
		for j := i + 1; j < 3; j++ {
			d := math.Abs(math.Abs(c.At(i)) - math.Abs(c.At(j)))
			result = max(result, d)
		}
	}
	return b.Normalize(result)
}

// IsGray reports whether c is achromatic.
func IsGray(c colour.Colour, b colour.Base) bool {
	return Colourfulness(c, b) < grayThreshold
}

// HexOf packs the magnitudes of the first three components of c into a
// 24-bit value, rounding each to the nearest 8-bit step.
func HexOf(c colour.Colour, b colour.Base) uint32 {
	var hex uint32
	for j := 0; j < 3; j++ {
		x := colour.Clamp(colour.Abs(b.Normalize(c.At(j))), 0, 1)
		hex = hex<<8 | uint32(math.Round(x*255))
	}
	return hex
}

// FromHex unpacks a 24-bit value into a colour in base b.
func FromHex(hex uint32, b colour.Base) colour.Colour {
	channel := func(shift uint) float64 {
		return b.Denormalize(float64(hex>>shift&0xff) / 255)
	}
	return colour.RGB(channel(16), channel(8), channel(0))
}
