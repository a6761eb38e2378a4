// Package fweh frames raster images: optional rounded corners, an optional
// drop shadow, and a generated background (solid color, vertical gradient,
// or another image), sized and padded to a target aspect ratio.
//
// # Quick Start
//
//	import "github.com/philocalyst/fweh"
//
//	opts := fweh.DefaultOptions()
//	opts.Roundness = 25
//	opts.Background = fweh.Background{Kind: fweh.BackgroundGradient, Value: "blue-red"}
//
//	out, err := fweh.Process("in.png", "out.png", opts)
//
// # Pipeline
//
// Process runs a fixed, synchronous pipeline: load, round corners, generate
// the drop shadow, compute the canvas layout, render the background, overlay,
// save. Every stage either fully succeeds or the whole call fails; no output
// file is written on failure.
//
// # Coordinate System
//
// Origin (0,0) at top-left, X increases right, Y increases down. Offsets are
// relative to the auto-centered placement, not absolute canvas positions.
package fweh
