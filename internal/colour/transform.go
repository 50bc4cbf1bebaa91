package colour

import (
	"fmt"
	"sort"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Transform is a pure conversion of one colour, such as a colour-space
// change. Alpha, when present, is left to the transform.
type Transform func(c Colour, b Base) Colour

// Transforms registered by name for command-line use.
var transforms = map[string]Transform{
	"rgb-to-hsv": RGBToHSV,
	"hsv-to-rgb": HSVToRGB,
	"rgb-to-hsl": RGBToHSL,
	"hsl-to-rgb": HSLToRGB,
}

// LookupTransform returns the named transform.
func LookupTransform(name string) (Transform, error) {
	t, ok := transforms[name]
	if !ok {
		return nil, fmt.Errorf("unknown transform: %s (valid transforms: %v)", name, TransformNames())
	}
	return t, nil
}

// TransformNames returns the registered transform names, sorted.
func TransformNames() []string {
	names := make([]string, 0, len(transforms))
	for name := range transforms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// toColorful maps the first three components onto go-colorful's unit RGB.
func toColorful(c Colour, b Base) colorful.Color {
	return colorful.Color{
		R: b.Normalize(c.c[0]),
		G: b.Normalize(c.c[1]),
		B: b.Normalize(c.c[2]),
	}
}

// withTriple replaces the first three components of c with unit values
// scaled into b.
func withTriple(c Colour, b Base, x, y, z float64) Colour {
	c.c[0] = b.Denormalize(x)
	c.c[1] = b.Denormalize(y)
	c.c[2] = b.Denormalize(z)
	return c
}

// RGBToHSV converts RGB to HSV. Hue is expressed as a fraction of a turn so
// every component shares the base's range.
func RGBToHSV(c Colour, b Base) Colour {
	h, s, v := toColorful(c, b).Hsv()
	return withTriple(c, b, h/360, s, v)
}

// HSVToRGB converts HSV, with hue as a fraction of a turn, to RGB.
func HSVToRGB(c Colour, b Base) Colour {
	rgb := colorful.Hsv(b.Normalize(c.c[0])*360, b.Normalize(c.c[1]), b.Normalize(c.c[2]))
	return withTriple(c, b, rgb.R, rgb.G, rgb.B)
}

// RGBToHSL converts RGB to HSL.
func RGBToHSL(c Colour, b Base) Colour {
	h, s, l := toColorful(c, b).Hsl()
	return withTriple(c, b, h/360, s, l)
}

// HSLToRGB converts HSL, with hue as a fraction of a turn, to RGB.
func HSLToRGB(c Colour, b Base) Colour {
	rgb := colorful.Hsl(b.Normalize(c.c[0])*360, b.Normalize(c.c[1]), b.Normalize(c.c[2]))
	return withTriple(c, b, rgb.R, rgb.G, rgb.B)
}
