package radial

import (
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testRing     = color.RGBA{R: 230, G: 230, B: 230, A: 255}
	testProgress = color.RGBA{R: 76, G: 175, B: 80, A: 255}
	testSurface  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	testOutline  = color.RGBA{A: 255}
)

// flatOptions is a 150px ring without outlines: band from radius 63 to 75.
func flatOptions(opts ...Option) Options {
	base := []Option{WithOutlineThickness(0)}
	return apply(DefaultOptions(), append(base, opts...))
}

// sample reads the pixel at r pixels from the image center along deg, in
// screen angles (0 = 3 o'clock, growing clockwise).
func sample(img *image.RGBA, deg, r float64) color.RGBA {
	c := float64(img.Bounds().Dx()) / 2
	rad := deg * math.Pi / 180
	x := int(math.Floor(c + r*math.Cos(rad)))
	y := int(math.Floor(c + r*math.Sin(rad)))
	return img.RGBAAt(x, y)
}

func assertColor(t *testing.T, want, got color.RGBA, msgAndArgs ...any) {
	t.Helper()
	near := func(a, b uint8) bool { return math.Abs(float64(a)-float64(b)) <= 3 }
	if !(near(want.R, got.R) && near(want.G, got.G) && near(want.B, got.B)) {
		assert.Fail(t, "color mismatch", "want %v, got %v %v", want, got, msgAndArgs)
	}
}

func TestRender_SizeMatchesOption(t *testing.T) {
	for _, size := range []int{1, 37, 150, 301} {
		img := Render(apply(DefaultOptions(), []Option{WithSize(size)}), 40, 100)
		assert.Equal(t, image.Rect(0, 0, size, size), img.Bounds())
	}
}

func TestRender_ClockwiseQuarterFromTop(t *testing.T) {
	img := Render(flatOptions(WithDirection(Clockwise), WithStartAngle(90)), 25, 100)

	assertColor(t, testProgress, sample(img, -80, 69), "just clockwise of top")
	assertColor(t, testProgress, sample(img, -45, 69), "upper right")
	assertColor(t, testProgress, sample(img, -10, 69), "just above 3 o'clock")
	assertColor(t, testRing, sample(img, -100, 69), "just counterclockwise of top")
	assertColor(t, testRing, sample(img, 45, 69), "lower right")
	assertColor(t, testRing, sample(img, 135, 69), "lower left")
	assertColor(t, testSurface, sample(img, 0, 0), "center")
}

func TestRender_CounterClockwiseQuarterFromTop(t *testing.T) {
	img := Render(flatOptions(WithDirection(CounterClockwise), WithStartAngle(90)), 25, 100)

	assertColor(t, testProgress, sample(img, -135, 69), "upper left")
	assertColor(t, testRing, sample(img, -45, 69), "upper right")
	assertColor(t, testRing, sample(img, 90, 69), "bottom")
}

func TestRender_StartAngleZeroBeginsAtThreeOClock(t *testing.T) {
	img := Render(flatOptions(WithDirection(Clockwise), WithStartAngle(0)), 25, 100)

	assertColor(t, testProgress, sample(img, 45, 69), "lower right")
	assertColor(t, testRing, sample(img, -45, 69), "upper right")
}

// Value 0 takes the clockwise branch in both directions, so both renders
// must agree pixel for pixel.
func TestRender_ZeroValueIgnoresDirection(t *testing.T) {
	cw := Render(DefaultOptions(), 0, 100)
	ccw := Render(apply(DefaultOptions(), []Option{WithDirection(Clockwise)}), 0, 100)
	require.Equal(t, cw.Pix, ccw.Pix)

	assertColor(t, testRing, sample(cw, -90, 67))
}

func TestRender_FullValueIsAllProgress(t *testing.T) {
	for _, d := range []Direction{Clockwise, CounterClockwise} {
		img := Render(flatOptions(WithDirection(d)), 100, 100)
		for _, deg := range []float64{-90, 0, 45, 90, 180, 270} {
			assertColor(t, testProgress, sample(img, deg, 69), "%v at %v", d, deg)
		}
	}
}

func TestRender_Idempotent(t *testing.T) {
	o := DefaultOptions()
	a := Render(o, 33, 100)
	b := Render(o, 33, 100)
	assert.Equal(t, a.Pix, b.Pix)
}

func TestRender_Outlines(t *testing.T) {
	// radius 69, ring 57..69, outer outline 63..69, inner outline 51..57.
	img := Render(apply(DefaultOptions(), []Option{
		WithOutlineThickness(6),
	}), 0, 100)

	assertColor(t, testOutline, sample(img, 30, 66), "outer outline")
	assertColor(t, testRing, sample(img, 30, 60), "ring between outlines")
	assertColor(t, testOutline, sample(img, 30, 54), "inner outline")
	assertColor(t, testSurface, sample(img, 30, 40), "inside ring")
}

func TestRender_NoInnerOutlineWhenRingFillsDisk(t *testing.T) {
	// radius 69 with an 80px border: the ring becomes a disk and only the
	// outer outline is drawn.
	img := Render(apply(DefaultOptions(), []Option{
		WithOutlineThickness(6),
		WithBorderThickness(80),
	}), 0, 100)

	assertColor(t, testOutline, sample(img, 0, 66), "outer outline")
	assertColor(t, testRing, sample(img, 0, 0), "center filled by ring")
	assertColor(t, testRing, sample(img, 0, 20), "no inner outline")
}

func TestRender_ZeroBorderDrawsNoRing(t *testing.T) {
	img := Render(flatOptions(WithBorderThickness(0)), 50, 100)
	assertColor(t, testSurface, sample(img, -45, 69))
}
