// Package game hosts a radial progress widget in an ebiten window.
package game

import (
	"errors"
	"image"
	"image/color"
	"log/slog"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/iburimskiy/radialprogress/internal/config"
	"github.com/iburimskiy/radialprogress/internal/radial"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/ncruces/zenity"
)

const helpText = "↑↓ value  ←→ angle  D dir  T text  +/- size  H hue  C color  Q quit"

type Game struct {
	cfg     config.Config
	logger  *slog.Logger
	widget  *radial.Widget
	surface *screenSurface
	sched   *radial.StepScheduler
	chime   *chime

	tick    time.Duration
	outside image.Point
	help    bool
	lastErr error
}

// New creates the widget on an offscreen surface sized to the configuration.
func New(cfg config.Config, logger *slog.Logger) (*Game, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Window.TPS <= 0 {
		cfg.Window.TPS = config.WindowTPS
	}
	g := &Game{
		cfg:    cfg,
		logger: logger,
		sched:  radial.NewStepScheduler(),
		tick:   time.Second / time.Duration(cfg.Window.TPS),
		help:   true,
	}

	g.surface = newScreenSurface(cfg.Widget.Size, cfg.Widget.Size)
	g.surface.onResize = func(w, h int) {
		g.outside = image.Pt(w, h)
		ebiten.SetWindowSize(w, h)
	}

	opts := append(cfg.Options(), radial.WithLogger(logger))
	w, err := radial.New(g.surface, g.sched, cfg.Value, cfg.Max, opts...)
	if err != nil {
		return nil, err
	}
	g.widget = w

	if cfg.Chime {
		c, err := newChime()
		if err != nil {
			logger.Warn("audio unavailable, chime disabled", "err", err)
		} else {
			g.chime = c
		}
	}
	return g, nil
}

func (g *Game) Update() error {
	before := g.widget.Value()
	g.sched.Advance(g.tick)
	g.checkLap(before)

	o := g.widget.Options()
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape), inpututil.IsKeyJustPressed(ebiten.KeyQ):
		return ebiten.Termination
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp):
		g.widget.Set(g.widget.Value() + config.ValueStep)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown):
		g.widget.Set(g.widget.Value() - config.ValueStep)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft):
		g.configure(radial.WithStartAngle(o.StartAngle + config.AngleStep))
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight):
		g.configure(radial.WithStartAngle(o.StartAngle - config.AngleStep))
	case inpututil.IsKeyJustPressed(ebiten.KeyD):
		g.configure(radial.WithDirection(toggle(o.Direction)))
	case inpututil.IsKeyJustPressed(ebiten.KeyT):
		g.configure(radial.WithPercentText(!o.ShowPercentText))
	case inpututil.IsKeyJustPressed(ebiten.KeyEqual), inpututil.IsKeyJustPressed(ebiten.KeyNumpadAdd):
		g.configure(radial.WithSize(o.Size + config.SizeStep))
	case inpututil.IsKeyJustPressed(ebiten.KeyMinus), inpututil.IsKeyJustPressed(ebiten.KeyNumpadSubtract):
		if o.Size > config.SizeStep {
			g.configure(radial.WithSize(o.Size - config.SizeStep))
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyH):
		g.configure(radial.WithProgressColor(shiftHue(o.ProgressColor, config.HueStep)))
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		if err := g.pickProgressColor(o.ProgressColor); err != nil {
			g.lastErr = err
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyF1):
		g.help = !g.help
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.DrawImage(g.surface.img, nil)

	if !g.help {
		return
	}
	status := helpText
	if g.lastErr != nil {
		status = "Error: " + g.lastErr.Error()
	}
	ebitenutil.DebugPrintAt(screen, status, 4, g.surface.Size().Y-16)
}

// Layout reports the window area as the logical screen. A change in the
// outside size is the host resize notification for the widget.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	outside := image.Pt(outsideWidth, outsideHeight)
	if outside != g.outside {
		g.outside = outside
		g.surface.setArea(outsideWidth, outsideHeight)
		g.widget.Redraw()
	}
	return outsideWidth, outsideHeight
}

// Close stops the widget timer and audio.
func (g *Game) Close() {
	g.widget.Destroy()
	if g.chime != nil {
		g.chime.close()
	}
}

func (g *Game) configure(opts ...radial.Option) {
	if err := g.widget.Configure(opts...); err != nil {
		g.lastErr = err
		g.logger.Warn("configure rejected", "err", err)
		return
	}
	g.lastErr = nil
}

// checkLap chimes when the timer completed the ring, either by stopping at
// max or by wrapping back to zero.
func (g *Game) checkLap(before float64) {
	if g.chime == nil {
		return
	}
	after := g.widget.Value()
	if after < before || (after >= g.widget.Max() && before < g.widget.Max()) {
		g.chime.play()
	}
}

func (g *Game) pickProgressColor(current color.RGBA) error {
	c, err := zenity.SelectColor(
		zenity.Title("Progress Color"),
		zenity.Color(current),
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return err
	}
	g.configure(radial.WithProgressColor(c))
	return nil
}

func toggle(d radial.Direction) radial.Direction {
	if d == radial.Clockwise {
		return radial.CounterClockwise
	}
	return radial.Clockwise
}

// shiftHue rotates c around the HSV hue circle by deg degrees.
func shiftHue(c color.RGBA, deg float64) color.RGBA {
	cc, _ := colorful.MakeColor(c)
	h, s, v := cc.Hsv()
	if s == 0 {
		s = 0.7
	}
	r, g, b := colorful.Hsv(math.Mod(h+deg+360, 360), s, v).Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// Run opens the window and blocks until it is closed.
func Run(g *Game) error {
	defer g.Close()

	size := g.widget.Options().Size
	ebiten.SetWindowSize(size, size)
	ebiten.SetWindowTitle(g.cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(g.cfg.Window.TPS)

	g.logger.Info("window opened", "size", size, "tps", g.cfg.Window.TPS)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
