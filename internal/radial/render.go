package radial

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

// Render draws the ring for value out of maxValue at o.Size. The image is
// rasterized at supersample times the display size and shrunk with a
// Catmull-Rom filter. maxValue must be positive.
func Render(o Options, value, maxValue float64) *image.RGBA {
	g := computeGeometry(o)
	big := image.NewRGBA(image.Rect(0, 0, g.full, g.full))
	draw.Draw(big, big.Bounds(), image.NewUniform(o.SurfaceColor), image.Point{}, draw.Src)

	start := internalStart(o.StartAngle)
	ring, overlay, sign := resolveArcColors(o.Direction, value, o.RingColor, o.ProgressColor)
	end := start + sign*sweepDegrees(value, maxValue)

	if g.border > 0 {
		strokeArc(big, g.center, g.radius, g.border, 0, 360, ring)
		from, span := arcSpan(start, end)
		strokeArc(big, g.center, g.radius, g.border, from, span, overlay)
	}

	if o.OutlineThickness > 0 {
		strokeArc(big, g.center, g.radius, g.outline, 0, 360, o.OutlineColor)
		if g.innerRadius > 0 {
			strokeArc(big, g.center, g.innerRadius, g.outline, 0, 360, o.OutlineColor)
		}
	}

	out := image.NewRGBA(image.Rect(0, 0, o.Size, o.Size))
	draw.CatmullRom.Scale(out, out.Bounds(), big, big.Bounds(), draw.Src, nil)
	return out
}

// strokeArc paints a band whose outer edge lies on radius and which grows
// width pixels inward, from angle from through from+span degrees. Angles grow
// clockwise on screen.
func strokeArc(dst *image.RGBA, center, radius, width, from, span float64, c color.RGBA) {
	if radius <= 0 || width <= 0 || span <= 0 {
		return
	}
	inner := math.Max(radius-width, 0)

	b := dst.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	if span >= 360 {
		circlePath(z, center, radius, false)
		if inner > 0 {
			circlePath(z, center, inner, true)
		}
	} else {
		sectorPath(z, center, radius, inner, from, span)
	}
	z.Draw(dst, b, image.NewUniform(c), image.Point{})
}

// segments picks a vertex count that keeps chords under two pixels.
func segments(radius, span float64) int {
	n := int(math.Ceil(2 * math.Pi * radius * span / 360 / 2))
	if n < 8 {
		n = 8
	}
	return n
}

func point(center, r, deg float64) (float32, float32) {
	rad := deg * math.Pi / 180
	return float32(center + r*math.Cos(rad)), float32(center + r*math.Sin(rad))
}

// circlePath adds a closed circle. Reversed circles cut holes out of
// forward ones.
func circlePath(z *vector.Rasterizer, center, r float64, reverse bool) {
	n := segments(r, 360)
	for i := 0; i <= n; i++ {
		deg := 360 * float64(i) / float64(n)
		if reverse {
			deg = -deg
		}
		x, y := point(center, r, deg)
		if i == 0 {
			z.MoveTo(x, y)
			continue
		}
		z.LineTo(x, y)
	}
	z.ClosePath()
}

// sectorPath adds an annular sector with flat radial ends. An inner radius of
// zero produces a pie slice.
func sectorPath(z *vector.Rasterizer, center, outer, inner, from, span float64) {
	n := segments(outer, span)
	for i := 0; i <= n; i++ {
		x, y := point(center, outer, from+span*float64(i)/float64(n))
		if i == 0 {
			z.MoveTo(x, y)
			continue
		}
		z.LineTo(x, y)
	}
	if inner <= 0 {
		x, y := point(center, 0, 0)
		z.LineTo(x, y)
		z.ClosePath()
		return
	}
	m := segments(inner, span)
	for i := m; i >= 0; i-- {
		x, y := point(center, inner, from+span*float64(i)/float64(m))
		z.LineTo(x, y)
	}
	z.ClosePath()
}
