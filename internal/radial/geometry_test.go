package radial

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeAngle(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{90, 90},
		{360, 0},
		{450, 90},
		{-90, 270},
		{-360, 0},
		{-720.5, 359.5},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, normalizeAngle(tt.in), 1e-9, "normalizeAngle(%v)", tt.in)
	}
}

func TestInternalStart_NegatesConfiguredAngle(t *testing.T) {
	assert.Equal(t, -90.0, internalStart(90))
	assert.Equal(t, -270.0, internalStart(-90))
	assert.Equal(t, -0.0, internalStart(360))
}

func TestArcSpan(t *testing.T) {
	tests := []struct {
		name       string
		start, end float64
		from, span float64
	}{
		{"quarter forward from top", -90, 0, 270, 90},
		{"full forward", -90, 270, 0, 360},
		{"empty", -90, -90, 270, 0},
		{"quarter backward paints the rest", -90, -180, 270, 270},
		{"full backward paints nothing", -90, -450, 270, 0},
		{"wraps past zero", 300, 420, 300, 120},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			from, span := arcSpan(tt.start, tt.end)
			assert.InDelta(t, tt.from, from, 1e-9)
			assert.InDelta(t, tt.span, span, 1e-9)
		})
	}
}

func TestResolveArcColors(t *testing.T) {
	ringC := color.RGBA{R: 1, A: 255}
	progC := color.RGBA{G: 1, A: 255}

	ring, overlay, sign := resolveArcColors(Clockwise, 10, ringC, progC)
	assert.Equal(t, ringC, ring)
	assert.Equal(t, progC, overlay)
	assert.Equal(t, 1.0, sign)

	ring, overlay, sign = resolveArcColors(CounterClockwise, 10, ringC, progC)
	assert.Equal(t, progC, ring)
	assert.Equal(t, ringC, overlay)
	assert.Equal(t, -1.0, sign)

	// Zero counterclockwise progress falls into the clockwise branch.
	ring, overlay, sign = resolveArcColors(CounterClockwise, 0, ringC, progC)
	assert.Equal(t, ringC, ring)
	assert.Equal(t, progC, overlay)
	assert.Equal(t, 1.0, sign)
}

func TestComputeGeometry_Defaults(t *testing.T) {
	g := computeGeometry(DefaultOptions())
	assert.Equal(t, 600, g.full)
	assert.Equal(t, 300.0, g.center)
	assert.Equal(t, 48.0, g.border)
	assert.Equal(t, 8.0, g.outline)
	assert.Equal(t, 292.0, g.radius)
	assert.Equal(t, 244.0, g.innerRadius)
}

func TestPercentOf_Floors(t *testing.T) {
	assert.Equal(t, 0, percentOf(0, 100))
	assert.Equal(t, 33, percentOf(1, 3))
	assert.Equal(t, 66, percentOf(2, 3))
	assert.Equal(t, 99, percentOf(99.9, 100))
	assert.Equal(t, 100, percentOf(100, 100))
}
