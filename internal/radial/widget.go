// Package radial implements a circular progress indicator: a ring split into
// a completed and a remaining arc, an optional percentage label, optional
// outlines and an optional auto-increment animation.
//
// A Widget is not safe for concurrent use. Hosts call it from their UI
// goroutine and drive its Scheduler from the same loop.
package radial

import (
	"fmt"
	"image"
	"log/slog"
	"math"
)

type Widget struct {
	surface Surface
	sched   Scheduler
	opts    Options
	faces   *faceCache
	logger  *slog.Logger

	value float64
	max   float64

	state     State
	timer     Timer
	destroyed bool

	frame *image.RGBA
	label string
}

// New builds a widget on surface and draws it. maxValue must be positive. When
// auto-increment is enabled the first tick runs before New returns.
func New(surface Surface, sched Scheduler, value, maxValue float64, opts ...Option) (*Widget, error) {
	if surface == nil {
		return nil, fmt.Errorf("%w: nil surface", ErrInvalidConfiguration)
	}
	if !(maxValue > 0) || math.IsInf(maxValue, 1) {
		return nil, fmt.Errorf("%w: max value must be positive, got %v", ErrInvalidConfiguration, maxValue)
	}
	o := apply(DefaultOptions(), opts)
	if err := o.validate(); err != nil {
		return nil, err
	}
	if o.Animation.Enabled && sched == nil {
		return nil, fmt.Errorf("%w: auto-increment needs a scheduler", ErrInvalidConfiguration)
	}

	w := &Widget{
		surface: surface,
		sched:   sched,
		opts:    o,
		logger:  o.Logger(),
		max:     maxValue,
	}
	w.faces = newFaceCache(w.logger)
	w.value = w.clamp(value)

	surface.Resize(o.Size, o.Size)
	w.Redraw()

	if o.Animation.Enabled {
		w.start()
	}
	return w, nil
}

// Set stores value clamped into [0, Max] and redraws.
func (w *Widget) Set(value float64) {
	if w.destroyed {
		return
	}
	w.value = w.clamp(value)
	w.Redraw()
}

// Configure merges opts into the current configuration and redraws. Invalid
// results are rejected and the previous configuration is kept.
func (w *Widget) Configure(opts ...Option) error {
	if w.destroyed {
		return nil
	}
	next := apply(w.opts, opts)
	if err := next.validate(); err != nil {
		return err
	}
	resized := next.Size != w.opts.Size
	w.opts = next
	if next.logger != nil {
		w.logger = next.logger
		w.faces.logger = next.logger
	}
	if resized {
		w.surface.Resize(next.Size, next.Size)
	}
	w.Redraw()
	return nil
}

// Resize is Configure(WithSize(size)).
func (w *Widget) Resize(size int) error {
	return w.Configure(WithSize(size))
}

// Redraw rebuilds the frame from the current state and composites it
// centered on the surface. Hosts call it when their allocated area changes.
func (w *Widget) Redraw() {
	if w.destroyed {
		return
	}
	o := w.opts
	frame := Render(o, w.value, w.max)

	area := w.surface.Size()
	center := image.Pt(area.X/2, area.Y/2)
	w.surface.Clear(o.BackgroundColor)
	w.surface.DrawImage(frame, center.Sub(image.Pt(o.Size/2, o.Size/2)))

	w.label = ""
	if o.ShowPercentText {
		w.label = fmt.Sprintf("%d%%", percentOf(w.value, w.max))
		w.surface.DrawText(w.label, w.faces.face(o.Font), o.TextColor, center)
	}
	w.frame = frame
}

// Destroy cancels any pending tick. The widget ignores every later call.
func (w *Widget) Destroy() {
	if w.destroyed {
		return
	}
	w.stop()
	w.destroyed = true
}

func (w *Widget) Value() float64 { return w.value }

func (w *Widget) Max() float64 { return w.max }

// Percent is the floored completed percentage shown by the label.
func (w *Widget) Percent() int { return percentOf(w.value, w.max) }

// Options returns a copy of the current configuration.
func (w *Widget) Options() Options { return w.opts }

// Frame is the last rendered ring image, Size x Size.
func (w *Widget) Frame() *image.RGBA { return w.frame }

// Label is the last drawn percentage text, empty when hidden.
func (w *Widget) Label() string { return w.label }

func (w *Widget) State() State { return w.state }

func (w *Widget) clamp(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > w.max {
		return w.max
	}
	return v
}
