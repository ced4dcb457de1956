package game

import (
	"image/color"
	"math"
	"testing"
	"time"

	"github.com/iburimskiy/radialprogress/internal/radial"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggle(t *testing.T) {
	assert.Equal(t, radial.Clockwise, toggle(radial.CounterClockwise))
	assert.Equal(t, radial.CounterClockwise, toggle(radial.Clockwise))
}

func TestShiftHue(t *testing.T) {
	red := color.RGBA{R: 255, A: 255}

	green := shiftHue(red, 120)
	assert.Equal(t, color.RGBA{G: 255, A: 255}, green)

	back := shiftHue(green, 240)
	assert.Equal(t, red, back)
}

func TestShiftHue_GreyGainsSaturation(t *testing.T) {
	grey := color.RGBA{R: 128, G: 128, B: 128, A: 255}
	assert.NotEqual(t, grey, shiftHue(grey, 30))
}

func TestTone_StreamsThenEnds(t *testing.T) {
	tn := newTone(chimeRate, chimeFrequency, 10*time.Millisecond)
	total := chimeRate.N(10 * time.Millisecond)

	buf := make([][2]float64, 256)
	streamed := 0
	for {
		n, ok := tn.Stream(buf)
		for _, s := range buf[:n] {
			require.LessOrEqual(t, math.Abs(s[0]), chimeVolume)
			require.Equal(t, s[0], s[1])
		}
		streamed += n
		if !ok {
			break
		}
	}
	assert.Equal(t, total, streamed)
	assert.NoError(t, tn.Err())

	n, ok := tn.Stream(buf)
	assert.Zero(t, n)
	assert.False(t, ok)
}
