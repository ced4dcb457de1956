package radial

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Surface is the host drawing area the widget composites onto.
type Surface interface {
	// Size reports the area the host currently allocates to the widget.
	Size() image.Point
	Resize(w, h int)
	Clear(bg color.Color)
	// DrawImage composites src with its top-left corner at at.
	DrawImage(src image.Image, at image.Point)
	// DrawText draws s centered on center.
	DrawText(s string, face font.Face, c color.Color, center image.Point)
}

// Canvas is an in-memory Surface.
type Canvas struct {
	img *image.RGBA
}

func NewCanvas(w, h int) *Canvas {
	return &Canvas{img: image.NewRGBA(image.Rect(0, 0, w, h))}
}

func (c *Canvas) Size() image.Point { return c.img.Bounds().Size() }

func (c *Canvas) Resize(w, h int) {
	if c.img.Bounds().Dx() == w && c.img.Bounds().Dy() == h {
		return
	}
	c.img = image.NewRGBA(image.Rect(0, 0, w, h))
}

func (c *Canvas) Clear(bg color.Color) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
}

func (c *Canvas) DrawImage(src image.Image, at image.Point) {
	r := src.Bounds().Sub(src.Bounds().Min).Add(at)
	draw.Draw(c.img, r, src, src.Bounds().Min, draw.Over)
}

func (c *Canvas) DrawText(s string, face font.Face, col color.Color, center image.Point) {
	d := &font.Drawer{Dst: c.img, Src: image.NewUniform(col), Face: face}
	d.Dot = textOrigin(s, face, center)
	d.DrawString(s)
}

// Image returns the canvas pixels. The result is replaced, not mutated, by
// Resize.
func (c *Canvas) Image() *image.RGBA { return c.img }

// textOrigin returns the baseline origin that centers s on center.
func textOrigin(s string, face font.Face, center image.Point) fixed.Point26_6 {
	width := font.MeasureString(face, s)
	m := face.Metrics()
	return fixed.Point26_6{
		X: fixed.I(center.X) - width/2,
		Y: fixed.I(center.Y) + (m.Ascent-m.Descent)/2,
	}
}
