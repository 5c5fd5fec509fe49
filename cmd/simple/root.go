package main

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"aspectmask/internal/app"
	"aspectmask/internal/platform"
	"aspectmask/internal/platform/headless"
	"aspectmask/pkg/aspectmask"
)

// interactive is set once the demo window is about to open. Errors after
// that point are also shown in a dialog.
var interactive bool

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "simple",
		Short:         "Letterboxed demo scene with a fixed design resolution",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE:          runSimple,
	}
	defaults := app.DefaultConfig()
	cmd.Flags().Float64("width", defaults.Resolution.Width, "Design resolution width")
	cmd.Flags().Float64("height", defaults.Resolution.Height, "Design resolution height")
	cmd.Flags().String("mask", "#030712", "Mask color as #RRGGBB or #RRGGBBAA")
	cmd.Flags().Float64("scale", defaults.WindowScale, "Initial window size relative to the design resolution")
	cmd.Flags().Bool("fullscreen", false, "Start in fullscreen")
	cmd.Flags().BoolP("verbose", "v", false, "Log every applied resize")
	cmd.Flags().String("report", "", "Print the fit for a WIDTHxHEIGHT window and exit without opening one")
	cmd.Example = `  # 4:3 design in a wide window
  simple --width 640 --height 480 --scale 2

  # Inspect the bars for a 1080p window
  simple --report 1920x1080`
	return cmd
}

func runSimple(cmd *cobra.Command, _ []string) error {
	cfg, err := configFromFlags(cmd)
	if err != nil {
		return err
	}
	if size, _ := cmd.Flags().GetString("report"); size != "" {
		return printReport(cmd.OutOrStdout(), cfg, size)
	}
	interactive = true
	demo, err := app.New(cfg)
	if err != nil {
		return err
	}
	return demo.Run()
}

func configFromFlags(cmd *cobra.Command) (app.Config, error) {
	cfg := app.DefaultConfig()
	flags := cmd.Flags()

	width, _ := flags.GetFloat64("width")
	height, _ := flags.GetFloat64("height")
	cfg.Resolution = aspectmask.Resolution{Width: width, Height: height}

	maskHex, _ := flags.GetString("mask")
	c, err := parseHexColor(maskHex)
	if err != nil {
		return cfg, fmt.Errorf("--mask: %w", err)
	}
	cfg.Mask = aspectmask.Mask{Color: c}

	cfg.WindowScale, _ = flags.GetFloat64("scale")
	if cfg.WindowScale <= 0 {
		return cfg, fmt.Errorf("--scale must be positive, got %g", cfg.WindowScale)
	}
	cfg.Fullscreen, _ = flags.GetBool("fullscreen")
	if verbose, _ := flags.GetBool("verbose"); verbose {
		cfg.Logger = log.New(os.Stderr, "", log.LstdFlags)
	}
	return cfg, nil
}

// parseHexColor accepts #RGB, #RRGGBB and #RRGGBBAA. Alpha is premultiplied
// into the channels as color.RGBA requires.
func parseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	r, g, b, a := uint32(v>>24), uint32(v>>16&0xff), uint32(v>>8&0xff), uint32(v&0xff)
	return color.RGBA{
		R: uint8(r * a / 0xff),
		G: uint8(g * a / 0xff),
		B: uint8(b * a / 0xff),
		A: uint8(a),
	}, nil
}

// printReport runs the plugin against a headless window of the given size.
func printReport(out io.Writer, cfg app.Config, size string) error {
	w, h, err := parseSize(size)
	if err != nil {
		return fmt.Errorf("--report: %w", err)
	}
	plugin, err := aspectmask.New(aspectmask.Options{Resolution: cfg.Resolution, Mask: cfg.Mask, Logger: cfg.Logger})
	if err != nil {
		return err
	}
	win := headless.New(platform.WindowConfig{Title: cfg.Title, WidthPx: w, HeightPx: h})
	for _, ev := range win.PollEvents() {
		if ev.Type == platform.EventResize {
			plugin.Resize(float64(ev.Width), float64(ev.Height))
		}
	}
	_, err = fmt.Fprintln(out, app.FitReport(plugin.Resolution(), plugin.Fit()))
	return err
}

func parseSize(s string) (int, int, error) {
	ws, hs, ok := strings.Cut(strings.ToLower(strings.TrimSpace(s)), "x")
	if !ok {
		return 0, 0, fmt.Errorf("invalid size %q, want WIDTHxHEIGHT", s)
	}
	w, err := strconv.Atoi(ws)
	if err != nil || w <= 0 {
		return 0, 0, fmt.Errorf("invalid width in %q", s)
	}
	h, err := strconv.Atoi(hs)
	if err != nil || h <= 0 {
		return 0, 0, fmt.Errorf("invalid height in %q", s)
	}
	return w, h, nil
}
