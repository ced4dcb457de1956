package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/iburimskiy/radialprogress/internal/radial"
	"github.com/spf13/viper"
)

const (
	WindowTitle = "Radial Progress"
	WindowTPS   = 60

	// Key bindings step sizes.
	ValueStep = 5
	AngleStep = 15
	SizeStep  = 10
	HueStep   = 30

	// Terminal host cells; each cell shows two pixel rows.
	TerminalSize = 32
)

// Config holds the initial widget state plus host settings.
type Config struct {
	Value  float64
	Max    float64
	Widget radial.Options
	Window WindowConfig
	Chime  bool
}

// WindowConfig holds ebiten window settings.
type WindowConfig struct {
	Title string
	TPS   int
}

var widgetKeys = map[string]bool{
	"size": true, "background_color": true, "surface_color": true,
	"ring_color": true, "progress_color": true, "border_thickness": true,
	"outline_color": true, "outline_thickness": true, "text_color": true,
	"font": true, "start_angle": true, "direction": true, "show_percent_text": true,
}

var animationKeys = map[string]bool{
	"enabled": true, "step": true, "interval_ms": true, "loop": true,
}

// Load reads configuration from path (optional) and env. Env var overrides
// use prefix RADIAL_, e.g. RADIAL_WIDGET_SIZE=300.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("toml")
	v.SetEnvPrefix("RADIAL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path == "" {
		path = os.Getenv("RADIAL_CONFIG")
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	if err := checkKeys(v); err != nil {
		return Config{}, err
	}
	return decode(v)
}

func setDefaults(v *viper.Viper) {
	d := radial.DefaultOptions()
	v.SetDefault("value", 0)
	v.SetDefault("max", 100)
	v.SetDefault("widget.size", d.Size)
	v.SetDefault("widget.background_color", "white")
	v.SetDefault("widget.surface_color", "white")
	v.SetDefault("widget.ring_color", "#e6e6e6")
	v.SetDefault("widget.progress_color", "#4caf50")
	v.SetDefault("widget.border_thickness", d.BorderThickness)
	v.SetDefault("widget.outline_color", "black")
	v.SetDefault("widget.outline_thickness", d.OutlineThickness)
	v.SetDefault("widget.text_color", "black")
	v.SetDefault("widget.font", d.Font.String())
	v.SetDefault("widget.start_angle", d.StartAngle)
	v.SetDefault("widget.direction", d.Direction.String())
	v.SetDefault("widget.show_percent_text", d.ShowPercentText)
	v.SetDefault("animation.enabled", d.Animation.Enabled)
	v.SetDefault("animation.step", d.Animation.Step)
	v.SetDefault("animation.interval_ms", d.Animation.Interval.Milliseconds())
	v.SetDefault("animation.loop", d.Animation.Loop)
	v.SetDefault("window.title", WindowTitle)
	v.SetDefault("window.tps", WindowTPS)
	v.SetDefault("chime.enabled", false)
}

// checkKeys rejects misspelled widget and animation keys instead of silently
// rendering defaults.
func checkKeys(v *viper.Viper) error {
	var unknown []string
	for _, key := range v.AllKeys() {
		section, name, ok := strings.Cut(key, ".")
		if !ok {
			continue
		}
		switch section {
		case "widget":
			if !widgetKeys[name] {
				unknown = append(unknown, key)
			}
		case "animation":
			if !animationKeys[name] {
				unknown = append(unknown, key)
			}
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return fmt.Errorf("%w: unknown keys %s", radial.ErrInvalidConfiguration, strings.Join(unknown, ", "))
	}
	return nil
}

func decode(v *viper.Viper) (Config, error) {
	c := Config{
		Value: v.GetFloat64("value"),
		Max:   v.GetFloat64("max"),
		Window: WindowConfig{
			Title: v.GetString("window.title"),
			TPS:   v.GetInt("window.tps"),
		},
		Chime: v.GetBool("chime.enabled"),
	}
	if c.Max <= 0 {
		return Config{}, fmt.Errorf("%w: max must be positive, got %v", radial.ErrInvalidConfiguration, c.Max)
	}
	if c.Window.TPS <= 0 {
		c.Window.TPS = WindowTPS
	}

	colors := map[string]*color.RGBA{}
	o := radial.DefaultOptions()
	colors["widget.background_color"] = &o.BackgroundColor
	colors["widget.surface_color"] = &o.SurfaceColor
	colors["widget.ring_color"] = &o.RingColor
	colors["widget.progress_color"] = &o.ProgressColor
	colors["widget.outline_color"] = &o.OutlineColor
	colors["widget.text_color"] = &o.TextColor

	var errs []error
	for key, dst := range colors {
		col, err := radial.ParseColor(v.GetString(key))
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", key, err))
			continue
		}
		*dst = col
	}

	font, err := radial.ParseFont(v.GetString("widget.font"))
	if err != nil {
		errs = append(errs, fmt.Errorf("widget.font: %w", err))
	}
	dir, err := radial.ParseDirection(v.GetString("widget.direction"))
	if err != nil {
		errs = append(errs, fmt.Errorf("widget.direction: %w", err))
	}
	if len(errs) > 0 {
		return Config{}, errors.Join(errs...)
	}

	o.Size = v.GetInt("widget.size")
	o.BorderThickness = v.GetFloat64("widget.border_thickness")
	o.OutlineThickness = v.GetFloat64("widget.outline_thickness")
	o.Font = font
	o.StartAngle = v.GetFloat64("widget.start_angle")
	o.Direction = dir
	o.ShowPercentText = v.GetBool("widget.show_percent_text")
	o.Animation = radial.Animation{
		Enabled:  v.GetBool("animation.enabled"),
		Step:     v.GetFloat64("animation.step"),
		Interval: time.Duration(v.GetInt64("animation.interval_ms")) * time.Millisecond,
		Loop:     v.GetBool("animation.loop"),
	}
	c.Widget = o
	return c, nil
}

// Options returns the widget configuration as overrides for radial.New.
func (c Config) Options() []radial.Option {
	o := c.Widget
	return []radial.Option{
		radial.WithSize(o.Size),
		radial.WithBackgroundColor(o.BackgroundColor),
		radial.WithSurfaceColor(o.SurfaceColor),
		radial.WithRingColor(o.RingColor),
		radial.WithProgressColor(o.ProgressColor),
		radial.WithBorderThickness(o.BorderThickness),
		radial.WithOutlineColor(o.OutlineColor),
		radial.WithOutlineThickness(o.OutlineThickness),
		radial.WithTextColor(o.TextColor),
		radial.WithFont(o.Font),
		radial.WithStartAngle(o.StartAngle),
		radial.WithDirection(o.Direction),
		radial.WithPercentText(o.ShowPercentText),
		radial.WithAutoIncrement(o.Animation.Enabled),
		radial.WithIncrementStep(o.Animation.Step),
		radial.WithIncrementInterval(o.Animation.Interval),
		radial.WithLoop(o.Animation.Loop),
	}
}
