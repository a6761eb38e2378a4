// Command fweh frames a raster image: rounded corners, drop shadow, and a
// generated background, sized to a target aspect ratio.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/philocalyst/fweh"
	"github.com/philocalyst/fweh/internal/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

type cliFlags struct {
	output        string
	scale         float64
	background    string
	ratio         string
	roundness     float64
	offset        string
	shadowOffset  string
	shadowColor   string
	shadowRadius  float64
	shadowOpacity float64
	configPath    string
	verbose       bool
}

func newRootCmd() *cobra.Command {
	var f cliFlags

	cmd := &cobra.Command{
		Use:   "fweh INPUT",
		Short: "Frame an image with a background, rounded corners, and a drop shadow",
		Long: `fweh composites an image onto a generated background (solid color,
vertical gradient, or another image), optionally rounding its corners and
adding a drop shadow, padded to a target aspect ratio.

Background specs take the form kind:value:
  colr:black          solid color (named or hex)
  grad:blue-red       vertical gradient, two or more stops
  imag:backdrop.png   image, resized and cropped to fill`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args[0], &f)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&f.output, "output", "o", "output.png", "output filename")
	flags.Float64VarP(&f.scale, "scale", "s", 0, "scale percentage (default 110)")
	flags.StringVarP(&f.background, "background", "b", "", "background spec (default colr:black)")
	flags.StringVarP(&f.ratio, "ratio", "r", "", "target aspect ratio, e.g. 16:9")
	flags.Float64Var(&f.roundness, "roundness", -1, "corner roundness percentage, 0-100 (default 0)")
	flags.StringVar(&f.offset, "offset", "0,0", "image offset in pixels, e.g. 10,-10")
	flags.StringVar(&f.shadowOffset, "shadow-offset", "", "shadow offset in pixels; enables the shadow")
	flags.StringVar(&f.shadowColor, "shadow-color", "", "shadow color (default black)")
	flags.Float64Var(&f.shadowRadius, "shadow-radius", -1, "shadow blur radius (default 25)")
	flags.Float64Var(&f.shadowOpacity, "shadow-opacity", -1, "shadow opacity, 0-1 (default 1)")
	flags.StringVar(&f.configPath, "config", "", "defaults file (default $XDG_CONFIG_HOME/fweh/config.toml)")
	flags.BoolVarP(&f.verbose, "verbose", "v", false, "enable debug logging")

	return cmd
}

func run(cmd *cobra.Command, input string, f *cliFlags) error {
	level := slog.LevelInfo
	if f.verbose {
		level = slog.LevelDebug
	}
	fweh.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	cfg, err := config.Load(f.configPath)
	if err != nil {
		return err
	}

	opts, err := buildOptions(f, cfg)
	if err != nil {
		return err
	}

	out, err := fweh.Process(input, f.output, opts)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

// buildOptions merges config-file defaults under explicit flags. Flags left
// at their sentinel values ("" or negative) fall back to the config.
func buildOptions(f *cliFlags, cfg config.Config) (fweh.ProcessingOptions, error) {
	opts := fweh.DefaultOptions()

	opts.Scale = cfg.Scale
	if f.scale > 0 {
		opts.Scale = f.scale
	}

	opts.Roundness = cfg.Roundness
	if f.roundness >= 0 {
		opts.Roundness = f.roundness
	}

	bgSpec := cfg.Background
	if f.background != "" {
		bgSpec = f.background
	}
	if bgSpec != "" {
		bg, err := fweh.ParseBackground(bgSpec)
		if err != nil {
			return fweh.ProcessingOptions{}, err
		}
		opts.Background = bg
	}

	offset, err := fweh.ParsePoint(f.offset)
	if err != nil {
		return fweh.ProcessingOptions{}, err
	}
	opts.Offset = offset

	if f.ratio != "" {
		ratio, err := fweh.ParseAspectRatio(f.ratio)
		if err != nil {
			return fweh.ProcessingOptions{}, err
		}
		opts.Ratio = &ratio
	}

	if f.shadowOffset != "" {
		shadowOffset, err := fweh.ParsePoint(f.shadowOffset)
		if err != nil {
			return fweh.ProcessingOptions{}, err
		}
		shadow := fweh.ShadowOptions{
			Offset:  shadowOffset,
			Color:   cfg.Shadow.Color,
			Radius:  cfg.Shadow.Radius,
			Opacity: cfg.Shadow.Opacity,
		}
		if f.shadowColor != "" {
			shadow.Color = f.shadowColor
		}
		if f.shadowRadius >= 0 {
			shadow.Radius = f.shadowRadius
		}
		if f.shadowOpacity >= 0 {
			shadow.Opacity = f.shadowOpacity
		}
		opts.Shadow = &shadow
	}

	return opts, nil
}
