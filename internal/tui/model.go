// Package tui hosts a radial progress widget in a terminal. Each character
// cell shows two vertically stacked pixels using the upper half block.
package tui

import (
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/iburimskiy/radialprogress/internal/config"
	"github.com/iburimskiy/radialprogress/internal/radial"
	"golang.org/x/image/font"
)

const frameInterval = time.Second / 30

type tickMsg time.Time

// cellSurface rasterizes the ring on a canvas but keeps the label as text so
// it can be printed in a terminal cell row.
type cellSurface struct {
	*radial.Canvas
	label      string
	labelColor color.Color
	labelAt    image.Point
}

func (s *cellSurface) Clear(bg color.Color) {
	s.Canvas.Clear(bg)
	s.label = ""
}

func (s *cellSurface) DrawText(str string, _ font.Face, c color.Color, center image.Point) {
	s.label = str
	s.labelColor = c
	s.labelAt = center
}

type Model struct {
	widget  *radial.Widget
	surface *cellSurface
	sched   *radial.StepScheduler
	logger  *slog.Logger

	last     time.Time
	width    int
	height   int
	quitting bool
}

// New builds the widget at the terminal size from config.
func New(cfg config.Config, logger *slog.Logger) (*Model, error) {
	if logger == nil {
		logger = slog.Default()
	}
	s := &cellSurface{Canvas: radial.NewCanvas(config.TerminalSize, config.TerminalSize)}
	sched := radial.NewStepScheduler()

	opts := append(cfg.Options(),
		radial.WithSize(config.TerminalSize),
		radial.WithBorderThickness(scaleToTerminal(cfg.Widget.BorderThickness, cfg.Widget.Size)),
		radial.WithOutlineThickness(scaleToTerminal(cfg.Widget.OutlineThickness, cfg.Widget.Size)),
		radial.WithLogger(logger),
	)
	w, err := radial.New(s, sched, cfg.Value, cfg.Max, opts...)
	if err != nil {
		return nil, err
	}
	return &Model{widget: w, surface: s, sched: sched, logger: logger}, nil
}

// scaleToTerminal keeps ring proportions when the widget shrinks to the
// terminal size.
func scaleToTerminal(px float64, size int) float64 {
	if size <= 0 {
		return px
	}
	return px * float64(config.TerminalSize) / float64(size)
}

func tick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m *Model) Init() tea.Cmd {
	m.last = time.Now()
	return tick()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		now := time.Time(msg)
		if !m.last.IsZero() {
			m.sched.Advance(now.Sub(m.last))
		}
		m.last = now
		return m, tick()

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.widget.Redraw()
		return m, nil

	case tea.KeyMsg:
		o := m.widget.Options()
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.quitting = true
			m.widget.Destroy()
			return m, tea.Quit
		case "up", "k":
			m.widget.Set(m.widget.Value() + config.ValueStep)
		case "down", "j":
			m.widget.Set(m.widget.Value() - config.ValueStep)
		case "left", "h":
			m.configure(radial.WithStartAngle(o.StartAngle + config.AngleStep))
		case "right", "l":
			m.configure(radial.WithStartAngle(o.StartAngle - config.AngleStep))
		case "d":
			dir := radial.Clockwise
			if o.Direction == radial.Clockwise {
				dir = radial.CounterClockwise
			}
			m.configure(radial.WithDirection(dir))
		case "t":
			m.configure(radial.WithPercentText(!o.ShowPercentText))
		}
	}
	return m, nil
}

func (m *Model) configure(opts ...radial.Option) {
	if err := m.widget.Configure(opts...); err != nil {
		m.logger.Warn("configure rejected", "err", err)
	}
}

func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	img := m.surface.Image()
	b := img.Bounds()

	labelRow := -1
	var labelCells []rune
	labelStart := 0
	if m.surface.label != "" {
		labelRow = m.surface.labelAt.Y / 2
		labelCells = []rune(m.surface.label)
		labelStart = m.surface.labelAt.X - len(labelCells)/2
	}
	labelStyle := lipgloss.NewStyle().Foreground(hex(m.surface.labelColor)).Bold(true)

	var sb strings.Builder
	for y := b.Min.Y; y < b.Max.Y; y += 2 {
		row := (y - b.Min.Y) / 2
		for x := b.Min.X; x < b.Max.X; x++ {
			top := img.RGBAAt(x, y)
			bottom := top
			if y+1 < b.Max.Y {
				bottom = img.RGBAAt(x, y+1)
			}
			if row == labelRow && x-b.Min.X >= labelStart && x-b.Min.X < labelStart+len(labelCells) {
				ch := string(labelCells[x-b.Min.X-labelStart])
				sb.WriteString(labelStyle.Background(hex(top)).Render(ch))
				continue
			}
			sb.WriteString(lipgloss.NewStyle().Foreground(hex(top)).Background(hex(bottom)).Render("▀"))
		}
		sb.WriteByte('\n')
	}
	sb.WriteString(lipgloss.NewStyle().Faint(true).Render(
		fmt.Sprintf("%s  ↑↓ value  ←→ angle  d dir  t text  q quit", m.widget.Options().Direction)))
	return sb.String()
}

func hex(c color.Color) lipgloss.Color {
	if c == nil {
		return lipgloss.Color("")
	}
	r, g, b, _ := c.RGBA()
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8))
}

// Run starts the terminal program and blocks until it exits.
func Run(m *Model) error {
	defer m.widget.Destroy()
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

// Widget exposes the hosted widget.
func (m *Model) Widget() *radial.Widget { return m.widget }
