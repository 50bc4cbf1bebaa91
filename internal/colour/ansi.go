package colour

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// ANSI escape codes for terminal colours.
const (
	ansiReset    = "\033[0m"
	ansiFgPrefix = "\033[38;2;"
	ansiBgPrefix = "\033[48;2;"
	ansiSuffix   = "m"
	defaultWidth = 8
)

// DisableColourOutput turns every preview into plain text.
var DisableColourOutput = false

// channels converts the first three components to 8-bit channels. Negative
// excursions are shown by magnitude.
func channels(c Colour, b Base) (r, g, bl uint8) {
	conv := func(x float64) uint8 {
		return uint8(Clamp(Abs(b.Normalize(x))*255+0.5, 0, 255))
	}
	return conv(c.c[0]), conv(c.c[1]), conv(c.c[2])
}

// Preview returns a solid block of the colour, width characters wide.
func Preview(c Colour, b Base, width int) string {
	if width <= 0 {
		width = defaultWidth
	}
	if DisableColourOutput {
		return strings.Repeat(" ", width)
	}

	r, g, bl := channels(c, b)
	bgColour := fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, r, g, bl, ansiSuffix)
	return bgColour + strings.Repeat(" ", width) + ansiReset
}

// PreviewWithText returns a colour block with centred text drawn in black or
// white, whichever contrasts better.
func PreviewWithText(c Colour, b Base, text string, width int) string {
	if width <= 0 {
		width = defaultWidth
	}

	displayText := text
	if len(text) > width {
		displayText = text[:width]
	} else if len(text) < width {
		padding := (width - len(text)) / 2
		displayText = strings.Repeat(" ", padding) + text + strings.Repeat(" ", width-len(text)-padding)
	}
	if DisableColourOutput {
		return displayText
	}

	r, g, bl := channels(c, b)
	var fg uint8 = 255
	if Luminance(c, b) > 0.5 {
		fg = 0
	}

	bgColour := fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, r, g, bl, ansiSuffix)
	fgColour := fmt.Sprintf("%s%d;%d;%d%s", ansiFgPrefix, fg, fg, fg, ansiSuffix)
	return bgColour + fgColour + displayText + ansiReset
}

// Luminance is the WCAG relative luminance of the colour's magnitude,
// between 0 and 1.
func Luminance(c Colour, b Base) float64 {
	lin := func(x float64) float64 {
		x = Clamp(Abs(b.Normalize(x)), 0, 1)
		if x <= 0.03928 {
			return x / 12.92
		}
		return SignedPow((x+0.055)/1.055, 2.4)
	}
	return 0.2126*lin(c.c[0]) + 0.7152*lin(c.c[1]) + 0.0722*lin(c.c[2])
}

// SupportsANSIColours reports whether f is a terminal that can show
// previews. NO_COLOR disables previews everywhere.
func SupportsANSIColours(f *os.File) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
