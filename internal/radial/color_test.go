package radial

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.RGBA
	}{
		{"#4caf50", color.RGBA{R: 0x4c, G: 0xaf, B: 0x50, A: 255}},
		{"#E6E6E6", color.RGBA{R: 0xe6, G: 0xe6, B: 0xe6, A: 255}},
		{"#000", color.RGBA{A: 255}},
		{"white", color.RGBA{R: 255, G: 255, B: 255, A: 255}},
		{"Yellow", color.RGBA{R: 255, G: 255, A: 255}},
		{"light gray", color.RGBA{R: 211, G: 211, B: 211, A: 255}},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestParseColor_Invalid(t *testing.T) {
	for _, in := range []string{"", "#12", "#zzzzzz", "not-a-color"} {
		_, err := ParseColor(in)
		assert.ErrorIs(t, err, ErrInvalidConfiguration, in)
	}
}

func TestParseFont(t *testing.T) {
	f, err := ParseFont("sans-serif 12 bold")
	require.NoError(t, err)
	assert.Equal(t, Font{Family: "sans-serif", Size: 12, Bold: true}, f)

	f, err = ParseFont("Courier New 9.5 bold italic")
	require.NoError(t, err)
	assert.Equal(t, Font{Family: "Courier New", Size: 9.5, Bold: true, Italic: true}, f)

	f, err = ParseFont("14")
	require.NoError(t, err)
	assert.Equal(t, defaultFontFamily, f.Family)

	for _, bad := range []string{"", "arial", "arial 0", "arial 12 wavy"} {
		_, err := ParseFont(bad)
		assert.ErrorIs(t, err, ErrInvalidConfiguration, bad)
	}
}

func TestParseDirection(t *testing.T) {
	d, err := ParseDirection("Clockwise")
	require.NoError(t, err)
	assert.Equal(t, Clockwise, d)

	d, err = ParseDirection("ccw")
	require.NoError(t, err)
	assert.Equal(t, CounterClockwise, d)

	_, err = ParseDirection("sideways")
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
}
