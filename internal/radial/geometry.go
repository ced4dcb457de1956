package radial

import (
	"image/color"
	"math"
)

// supersample is the factor the ring is drawn at before being shrunk to the
// display size.
const supersample = 4

// geometry holds ring measurements in supersampled pixels.
type geometry struct {
	full        int
	center      float64
	border      float64
	outline     float64
	radius      float64
	innerRadius float64
}

func computeGeometry(o Options) geometry {
	full := o.Size * supersample
	center := float64(full / 2)
	border := o.BorderThickness * supersample
	outline := o.OutlineThickness * supersample
	radius := center - outline
	return geometry{
		full:        full,
		center:      center,
		border:      border,
		outline:     outline,
		radius:      radius,
		innerRadius: radius - border,
	}
}

// normalizeAngle maps any angle into [0, 360).
func normalizeAngle(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	if deg >= 360 {
		deg = 0
	}
	return deg
}

// internalStart converts a start angle measured counterclockwise from
// 3 o'clock into the image-space angle the arc primitive uses, where angles
// grow clockwise on screen.
func internalStart(startAngle float64) float64 {
	return -normalizeAngle(startAngle)
}

// arcSpan reduces an arc request to the span painted by the primitive, which
// always walks from start in the increasing-angle direction. A request
// covering 360 degrees or more is a full circle; otherwise the span is the
// positive remainder of end-start, so end < start paints the long way round.
func arcSpan(start, end float64) (from, span float64) {
	if end-start >= 360 {
		return 0, 360
	}
	from = normalizeAngle(start)
	span = math.Mod(end-start, 360)
	if span < 0 {
		span += 360
	}
	if span >= 360 {
		span = 0
	}
	return from, span
}

// resolveArcColors picks the full-ring color, the overlay arc color and the
// sweep direction. Counterclockwise progress paints the whole ring in the
// progress color and carves the remaining part out of it in the ring color,
// except at value 0 which always takes the clockwise branch.
func resolveArcColors(d Direction, value float64, ringColor, progressColor color.RGBA) (ring, overlay color.RGBA, sweepSign float64) {
	if d == Clockwise || value == 0 {
		return ringColor, progressColor, 1
	}
	return progressColor, ringColor, -1
}

// sweepDegrees is the progress angle for value out of maxValue.
func sweepDegrees(value, maxValue float64) float64 {
	return 360 * (value / maxValue)
}

// percentOf floors the completed percentage.
func percentOf(value, maxValue float64) int {
	return int(math.Floor((value / maxValue) * 100))
}
