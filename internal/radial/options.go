package radial

import (
	"errors"
	"fmt"
	"image/color"
	"log/slog"
	"math"
	"strings"
	"time"
)

// ErrInvalidConfiguration is returned for options the widget cannot render.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// Direction is the way progress grows around the ring.
type Direction int

const (
	CounterClockwise Direction = iota
	Clockwise
)

func (d Direction) String() string {
	switch d {
	case Clockwise:
		return "clockwise"
	case CounterClockwise:
		return "counterclockwise"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// ParseDirection accepts "clockwise"/"cw" and "counterclockwise"/"ccw".
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "clockwise", "cw":
		return Clockwise, nil
	case "counterclockwise", "counter-clockwise", "anticlockwise", "ccw":
		return CounterClockwise, nil
	}
	return 0, fmt.Errorf("%w: direction %q", ErrInvalidConfiguration, s)
}

// Animation drives the optional auto-increment timer.
type Animation struct {
	Enabled  bool
	Step     float64
	Interval time.Duration
	Loop     bool
}

// Options is the full widget configuration. Colors are stored resolved.
type Options struct {
	Size             int
	BackgroundColor  color.RGBA
	SurfaceColor     color.RGBA
	RingColor        color.RGBA
	ProgressColor    color.RGBA
	BorderThickness  float64
	OutlineColor     color.RGBA
	OutlineThickness float64
	TextColor        color.RGBA
	Font             Font
	StartAngle       float64
	Direction        Direction
	ShowPercentText  bool
	Animation        Animation

	logger *slog.Logger
}

// DefaultOptions returns the documented default configuration.
func DefaultOptions() Options {
	return Options{
		Size:             150,
		BackgroundColor:  MustParseColor("white"),
		SurfaceColor:     MustParseColor("white"),
		RingColor:        MustParseColor("#e6e6e6"),
		ProgressColor:    MustParseColor("#4caf50"),
		BorderThickness:  12,
		OutlineColor:     MustParseColor("black"),
		OutlineThickness: 2,
		TextColor:        MustParseColor("black"),
		Font:             Font{Family: defaultFontFamily, Size: 12, Bold: true},
		StartAngle:       90,
		Direction:        CounterClockwise,
		ShowPercentText:  true,
		Animation: Animation{
			Step:     1,
			Interval: 100 * time.Millisecond,
			Loop:     true,
		},
	}
}

// Logger returns the configured logger or slog.Default.
func (o Options) Logger() *slog.Logger {
	if o.logger == nil {
		return slog.Default()
	}
	return o.logger
}

func (o Options) validate() error {
	switch {
	case o.Size <= 0:
		return fmt.Errorf("%w: size must be positive, got %d", ErrInvalidConfiguration, o.Size)
	case o.BorderThickness < 0 || math.IsNaN(o.BorderThickness):
		return fmt.Errorf("%w: border thickness %v", ErrInvalidConfiguration, o.BorderThickness)
	case o.OutlineThickness < 0 || math.IsNaN(o.OutlineThickness):
		return fmt.Errorf("%w: outline thickness %v", ErrInvalidConfiguration, o.OutlineThickness)
	case o.Direction != Clockwise && o.Direction != CounterClockwise:
		return fmt.Errorf("%w: direction %v", ErrInvalidConfiguration, o.Direction)
	case math.IsNaN(o.StartAngle) || math.IsInf(o.StartAngle, 0):
		return fmt.Errorf("%w: start angle %v", ErrInvalidConfiguration, o.StartAngle)
	case o.Animation.Enabled && o.Animation.Interval <= 0:
		return fmt.Errorf("%w: increment interval must be positive, got %v", ErrInvalidConfiguration, o.Animation.Interval)
	}
	return nil
}

// Option overrides a single field. Options apply in order, last write wins.
type Option func(*Options)

func apply(base Options, opts []Option) Options {
	for _, opt := range opts {
		if opt != nil {
			opt(&base)
		}
	}
	base.StartAngle = normalizeAngle(base.StartAngle)
	return base
}

func WithSize(size int) Option { return func(o *Options) { o.Size = size } }

func WithBackgroundColor(c color.Color) Option {
	return func(o *Options) { o.BackgroundColor = toRGBA(c) }
}

func WithSurfaceColor(c color.Color) Option {
	return func(o *Options) { o.SurfaceColor = toRGBA(c) }
}

// WithRingColor sets the color of the uncompleted part of the ring.
func WithRingColor(c color.Color) Option {
	return func(o *Options) { o.RingColor = toRGBA(c) }
}

func WithProgressColor(c color.Color) Option {
	return func(o *Options) { o.ProgressColor = toRGBA(c) }
}

func WithBorderThickness(px float64) Option {
	return func(o *Options) { o.BorderThickness = px }
}

func WithOutlineColor(c color.Color) Option {
	return func(o *Options) { o.OutlineColor = toRGBA(c) }
}

// WithOutlineThickness sets the outline width; 0 disables both outlines.
func WithOutlineThickness(px float64) Option {
	return func(o *Options) { o.OutlineThickness = px }
}

func WithTextColor(c color.Color) Option {
	return func(o *Options) { o.TextColor = toRGBA(c) }
}

func WithFont(f Font) Option { return func(o *Options) { o.Font = f } }

// WithStartAngle sets where progress begins, in degrees counterclockwise
// from 3 o'clock. 90 is the top of the ring.
func WithStartAngle(deg float64) Option {
	return func(o *Options) { o.StartAngle = deg }
}

func WithDirection(d Direction) Option { return func(o *Options) { o.Direction = d } }

func WithPercentText(show bool) Option {
	return func(o *Options) { o.ShowPercentText = show }
}

// WithAutoIncrement enables the animation timer. It only has an effect when
// passed to New.
func WithAutoIncrement(enabled bool) Option {
	return func(o *Options) { o.Animation.Enabled = enabled }
}

func WithIncrementStep(step float64) Option {
	return func(o *Options) { o.Animation.Step = step }
}

func WithIncrementInterval(d time.Duration) Option {
	return func(o *Options) { o.Animation.Interval = d }
}

func WithLoop(loop bool) Option { return func(o *Options) { o.Animation.Loop = loop } }

func WithLogger(l *slog.Logger) Option { return func(o *Options) { o.logger = l } }
