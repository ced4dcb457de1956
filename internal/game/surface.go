package game

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font"
)

// screenSurface is a radial.Surface backed by an offscreen ebiten image that
// Draw blits to the window every frame.
type screenSurface struct {
	img   *ebiten.Image
	frame *ebiten.Image
	faces map[font.Face]*text.GoXFace

	// onResize is called when the widget asks for a new square size.
	onResize func(w, h int)
}

func newScreenSurface(w, h int) *screenSurface {
	return &screenSurface{
		img:   ebiten.NewImage(w, h),
		faces: map[font.Face]*text.GoXFace{},
	}
}

func (s *screenSurface) Size() image.Point { return s.img.Bounds().Size() }

func (s *screenSurface) Resize(w, h int) {
	s.setArea(w, h)
	if s.onResize != nil {
		s.onResize(w, h)
	}
}

// setArea reallocates the backing image without notifying the window; used
// when the window itself changed size.
func (s *screenSurface) setArea(w, h int) {
	if w <= 0 || h <= 0 || s.Size() == image.Pt(w, h) {
		return
	}
	s.img.Deallocate()
	s.img = ebiten.NewImage(w, h)
}

func (s *screenSurface) Clear(bg color.Color) { s.img.Fill(bg) }

func (s *screenSurface) DrawImage(src image.Image, at image.Point) {
	size := src.Bounds().Size()
	if rgba, ok := src.(*image.RGBA); ok && rgba.Rect.Min == (image.Point{}) && rgba.Stride == 4*size.X {
		if s.frame == nil || s.frame.Bounds().Size() != size {
			if s.frame != nil {
				s.frame.Deallocate()
			}
			s.frame = ebiten.NewImage(size.X, size.Y)
		}
		s.frame.WritePixels(rgba.Pix)
	} else {
		if s.frame != nil {
			s.frame.Deallocate()
		}
		s.frame = ebiten.NewImageFromImage(src)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(at.X), float64(at.Y))
	s.img.DrawImage(s.frame, op)
}

func (s *screenSurface) DrawText(str string, face font.Face, c color.Color, center image.Point) {
	xf, ok := s.faces[face]
	if !ok {
		xf = text.NewGoXFace(face)
		s.faces[face] = xf
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(center.X), float64(center.Y))
	op.ColorScale.ScaleWithColor(c)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(s.img, str, xf, op)
}
