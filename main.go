package main

import (
	"fmt"
	"image/png"
	"log/slog"
	"os"

	"github.com/iburimskiy/radialprogress/internal/config"
	"github.com/iburimskiy/radialprogress/internal/game"
	"github.com/iburimskiy/radialprogress/internal/radial"
	"github.com/iburimskiy/radialprogress/internal/tui"
	"github.com/spf13/cobra"
)

type flags struct {
	configPath string
	value      float64
	max        float64
	chime      bool
	debug      bool
	out        string
}

func newRootCmd() *cobra.Command {
	var f flags

	root := &cobra.Command{
		Use:           "radialprogress",
		Short:         "Circular progress indicator",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWindow(cmd, &f)
		},
	}
	root.PersistentFlags().StringVar(&f.configPath, "config", "", "TOML config file (default $RADIAL_CONFIG)")
	root.PersistentFlags().Float64Var(&f.value, "value", 0, "initial value")
	root.PersistentFlags().Float64Var(&f.max, "max", 100, "maximum value")
	root.PersistentFlags().BoolVar(&f.chime, "chime", false, "play a tone when a lap completes (window only)")
	root.PersistentFlags().BoolVar(&f.debug, "debug", false, "debug logging")

	window := &cobra.Command{
		Use:   "window",
		Short: "Show the indicator in a window",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWindow(cmd, &f)
		},
	}

	term := &cobra.Command{
		Use:   "term",
		Short: "Show the indicator in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := load(cmd, &f)
			if err != nil {
				return err
			}
			m, err := tui.New(cfg, logger)
			if err != nil {
				return err
			}
			return tui.Run(m)
		},
	}

	render := &cobra.Command{
		Use:   "render",
		Short: "Render one frame to a PNG file",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := load(cmd, &f)
			if err != nil {
				return err
			}
			return renderPNG(cfg, logger, f.out)
		},
	}
	render.Flags().StringVarP(&f.out, "out", "o", "radial.png", "output file")

	root.AddCommand(window, term, render)
	return root
}

// load reads the config file and applies command-line overrides.
func load(cmd *cobra.Command, f *flags) (config.Config, *slog.Logger, error) {
	level := slog.LevelInfo
	if f.debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	cfg, err := config.Load(f.configPath)
	if err != nil {
		return config.Config{}, nil, err
	}
	if cmd.Flags().Changed("value") {
		cfg.Value = f.value
	}
	if cmd.Flags().Changed("max") {
		cfg.Max = f.max
	}
	if cmd.Flags().Changed("chime") {
		cfg.Chime = f.chime
	}
	return cfg, logger, nil
}

func runWindow(cmd *cobra.Command, f *flags) error {
	cfg, logger, err := load(cmd, f)
	if err != nil {
		return err
	}
	g, err := game.New(cfg, logger)
	if err != nil {
		return err
	}
	return game.Run(g)
}

func renderPNG(cfg config.Config, logger *slog.Logger, path string) error {
	if logger == nil {
		logger = slog.Default()
	}
	opts := append(cfg.Options(), radial.WithAutoIncrement(false), radial.WithLogger(logger))
	canvas := radial.NewCanvas(cfg.Widget.Size, cfg.Widget.Size)
	w, err := radial.New(canvas, nil, cfg.Value, cfg.Max, opts...)
	if err != nil {
		return err
	}
	defer w.Destroy()

	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(out, canvas.Image()); err != nil {
		out.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := out.Close(); err != nil {
		return err
	}
	logger.Info("frame written", "path", path, "label", w.Label())
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "radialprogress:", err)
		os.Exit(1)
	}
}
