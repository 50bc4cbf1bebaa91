package names

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmylchreest/swatch/internal/colour"
	"github.com/jmylchreest/swatch/internal/colourlist"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		text string
		base colour.Base
		want colour.Colour
	}{
		{"name", "red", colour.Normal, colour.RGB(1, 0, 0)},
		{"multi-word name", "alice blue", colour.Integer, colour.RGB(0xf0, 0xf8, 0xff)},
		{"hash hex", "#00ff00", colour.Integer, colour.RGB(0, 255, 0)},
		{"0X hex", "0X0000FF", colour.Normal, colour.RGB(0, 0, 1)},
		{"0x hex", "0x000000", colour.Normal, colour.RGB(0, 0, 0)},
		{"gray percent", "gray 50", colour.Normal, colour.RGB(0.5, 0.5, 0.5)},
		{"grey percent", "grey 25", colour.Integer, colour.RGB(63.75, 63.75, 63.75)},
		{"triple", "0.1, 0.2, 0.3", colour.Normal, colour.RGB(0.1, 0.2, 0.3)},
		{"triple without spaces", "1,-2,3", colour.Integer, colour.RGB(1, -2, 3)},
		{"name with signs", "red-++", colour.Normal, colour.RGB(-1, 0, 0)},
		{"gray with signs", "gray 50+-+", colour.Normal, colour.RGB(0.5, -0.5, 0.5)},
		{"hex with signs", "#ffffff---", colour.Normal, colour.RGB(-1, -1, -1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := X11().Parse(tt.text, tt.base)
			require.NoError(t, err)
			assert.True(t, got.Equal(tt.want), "Parse(%q) = %v, want %v", tt.text, got, tt.want)
		})
	}
}

func TestParseErrors(t *testing.T) {
	for _, text := range []string{
		"",
		"redd",
		"red--",
		"red++++",
		"+++",
		"#zz0000",
		"#1000000",
		"gray fifty",
		"1, 2",
		"1, two, 3",
	} {
		t.Run(text, func(t *testing.T) {
			_, err := X11().Parse(text, colour.Normal)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrBadColour))

			var pe *ParseError
			require.ErrorAs(t, err, &pe)
			assert.Equal(t, text, pe.Text)
			assert.NotEmpty(t, pe.Reason)
		})
	}
}

func TestParseIsCaseSensitive(t *testing.T) {
	_, err := X11().Parse("Red", colour.Normal)
	assert.ErrorIs(t, err, ErrBadColour)
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		c    colour.Colour
		base colour.Base
		want string
	}{
		{"name", colour.RGB(1, 0, 0), colour.Normal, "red"},
		{"integer base", colour.RGB(255, 0, 0), colour.Integer, "red"},
		{"negative name", colour.RGB(-1, 0, 0), colour.Normal, "red-++"},
		{"near hex", colour.RGB(1, 0.0000001, 0), colour.Normal, "red"},
		{"gray", colour.RGB(0.5, 0.5, 0.5), colour.Normal, "gray 50"},
		{"gray fraction", colour.RGB(0.123456, 0.123456, 0.123456), colour.Normal, "gray 12.3456"},
		{"negative gray", colour.RGB(0.5, -0.5, 0.5), colour.Normal, "gray 50+-+"},
		{"triple", colour.RGB(0.1, 0.2, 0.3), colour.Normal, "0.1, 0.2, 0.3"},
		{"negative triple", colour.RGB(-0.1, 0.2, 0.3), colour.Normal, "-0.1, 0.2, 0.3"},
		{"significant digits", colour.RGB(0.123456789, 0.2, 0.3), colour.Normal, "0.1234568, 0.2, 0.3"},
		{"out of band", colour.RGB(2, 0, 0), colour.Normal, "2, 0, 0"},
		{"out of band gray", colour.RGB(2, 2, 2), colour.Normal, "2, 2, 2"},
		{"out of band integer gray", colour.RGB(300, 300, 300), colour.Integer, "300, 300, 300"},
		{"negative out of band gray", colour.RGB(-2, -2, -2), colour.Normal, "-2, -2, -2"},
		{"alpha", colour.RGBA(1, 0, 0, 1), colour.Normal, "1, 0, 0, 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, X11().Format(tt.c, tt.base))
		})
	}
}

// Formatting then parsing reproduces the colour for every form.
func TestFormatParse(t *testing.T) {
	for _, c := range []colour.Colour{
		colour.RGB(1, 0, 0),
		colour.RGB(-1, 0, 1),
		colour.RGB(0.5, 0.5, 0.5),
		colour.RGB(0.25, -0.25, -0.25),
		colour.RGB(0.1, 0.2, 0.3),
		colour.RGB(-0.7, 0.2, 0.3),
	} {
		text := X11().Format(c, colour.Normal)
		got, err := X11().Parse(text, colour.Normal)
		require.NoError(t, err, text)
		assert.True(t, got.Equal(c), "%v -> %q -> %v", c, text, got)
	}
}

func TestColourfulness(t *testing.T) {
	assert.InDelta(t, 1, Colourfulness(colour.RGB(1, 0, 0), colour.Normal), 1e-12)
	assert.InDelta(t, 0.5, Colourfulness(colour.RGB(0, 127.5, 0), colour.Integer), 1e-12)
	assert.InDelta(t, 0, Colourfulness(colour.RGB(0.5, -0.5, 0.5), colour.Normal), 1e-12)

	assert.True(t, IsGray(colour.RGB(0.3, 0.30001, 0.3), colour.Normal))
	assert.False(t, IsGray(colour.RGB(0.3, 0.31, 0.3), colour.Normal))
}

func TestHex(t *testing.T) {
	for _, base := range []colour.Base{colour.Normal, colour.Integer, colour.Integer256} {
		for _, hex := range []uint32{0x000000, 0x123456, 0xffffff, 0x80ff01} {
			assert.Equal(t, hex, HexOf(FromHex(hex, base), base), "base %v hex %06x", base, hex)
		}
	}

	// Magnitudes are packed; out-of-band components saturate.
	assert.Equal(t, uint32(0xff0000), HexOf(colour.RGB(-1, 0, 0), colour.Normal))
	assert.Equal(t, uint32(0xff0000), HexOf(colour.RGB(3, 0, 0), colour.Normal))
}

func TestFormatList(t *testing.T) {
	l := colourlist.Of(colour.Normal,
		colour.RGB(1, 0, 0),
		colour.RGB(0.1, 0.2, 0.3),
		colour.RGB(-0.1, 0.2, 0.3),
		colour.RGB(0.5, 0.5, 0.5),
	)
	assert.Equal(t, "('red', (0.1, 0.2, 0.3), (-0.1, 0.2, 0.3), 'gray 50')", X11().FormatList(l))
	assert.Equal(t, "()", X11().FormatList(colourlist.New(3, colour.Normal)))
}

func TestParseList(t *testing.T) {
	l, err := X11().ParseList([]string{"red", "gray 50", "0, 0, 1"}, colour.Normal)
	require.NoError(t, err)
	assert.Equal(t, 3, l.Len())
	assert.Equal(t, "('red', 'gray 50', 'blue')", X11().FormatList(l))

	_, err = X11().ParseList([]string{"red", "bogus"}, colour.Normal)
	assert.ErrorIs(t, err, ErrBadColour)
	assert.Contains(t, err.Error(), "item 1")
}
