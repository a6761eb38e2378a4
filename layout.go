package fweh

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// AspectRatio is a target canvas shape expressed as a positive integer pair.
type AspectRatio struct {
	Width  uint
	Height uint
}

// Ratio returns the aspect ratio as a float.
func (r AspectRatio) Ratio() float64 {
	return float64(r.Width) / float64(r.Height)
}

// String formats the ratio as "W:H".
func (r AspectRatio) String() string {
	return fmt.Sprintf("%d:%d", r.Width, r.Height)
}

// ParseAspectRatio parses a "W:H" string into an AspectRatio.
func ParseAspectRatio(spec string) (AspectRatio, error) {
	parts := strings.Split(spec, ":")
	if len(parts) != 2 {
		return AspectRatio{}, fmt.Errorf("%w: invalid aspect ratio format %q", ErrInvalidParameter, spec)
	}
	w, err := strconv.ParseUint(strings.TrimSpace(parts[0]), 10, 32)
	if err != nil || w == 0 {
		return AspectRatio{}, fmt.Errorf("%w: invalid aspect ratio width in %q", ErrInvalidParameter, spec)
	}
	h, err := strconv.ParseUint(strings.TrimSpace(parts[1]), 10, 32)
	if err != nil || h == 0 {
		return AspectRatio{}, fmt.Errorf("%w: invalid aspect ratio height in %q", ErrInvalidParameter, spec)
	}
	return AspectRatio{Width: uint(w), Height: uint(h)}, nil
}

// ReduceAspectRatio returns the reduced aspect ratio of the given dimensions,
// computed via GCD. For 1920x1080 it returns 16:9.
func ReduceAspectRatio(width, height int) AspectRatio {
	d := gcd(width, height)
	if d == 0 {
		return AspectRatio{Width: 1, Height: 1}
	}
	return AspectRatio{Width: uint(width / d), Height: uint(height / d)}
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// Layout is the result of the canvas calculation: the destination canvas
// size and the padding split on each axis. Uneven padding favors the
// trailing edge.
type Layout struct {
	Width     int
	Height    int
	PadLeft   int
	PadRight  int
	PadTop    int
	PadBottom int
}

// ComputeCanvas computes the destination canvas size for a source of the
// given dimensions, a target aspect ratio, and a scale percentage.
//
// The axis that already satisfies the target ratio is fixed at
// dimension*scale/100 and the other axis is derived from the ratio, so the
// canvas always grows (never crops). Padding on each axis is the difference
// between the canvas and the scaled source, split floor/remainder.
//
// Non-finite or non-positive scale and ratio values are rejected.
func ComputeCanvas(width, height int, targetRatio, scalePercent float64) (Layout, error) {
	if width <= 0 || height <= 0 {
		return Layout{}, fmt.Errorf("%w: invalid source dimensions %dx%d", ErrInvalidParameter, width, height)
	}
	if !isFinitePositive(targetRatio) {
		return Layout{}, fmt.Errorf("%w: target ratio must be finite and positive, got %v", ErrInvalidParameter, targetRatio)
	}
	if !isFinitePositive(scalePercent) {
		return Layout{}, fmt.Errorf("%w: scale must be finite and positive, got %v", ErrInvalidParameter, scalePercent)
	}

	originalRatio := float64(width) / float64(height)
	scaleFactor := scalePercent / 100

	var newWidth, newHeight int
	if targetRatio > originalRatio {
		// Target is wider: fix the scaled height, derive the width.
		newHeight = int(float64(height) * scaleFactor)
		newWidth = int(float64(newHeight) * targetRatio)
	} else {
		// Target is narrower or equal: fix the scaled width, derive the height.
		newWidth = int(float64(width) * scaleFactor)
		newHeight = int(float64(newWidth) / targetRatio)
	}

	padWidth := newWidth - int(float64(width)*scaleFactor)
	if padWidth < 0 {
		padWidth = 0
	}
	padHeight := newHeight - int(float64(height)*scaleFactor)
	if padHeight < 0 {
		padHeight = 0
	}

	l := Layout{
		Width:   newWidth,
		Height:  newHeight,
		PadLeft: padWidth / 2,
		PadTop:  padHeight / 2,
	}
	l.PadRight = padWidth - l.PadLeft
	l.PadBottom = padHeight - l.PadTop
	return l, nil
}

func isFinitePositive(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v > 0
}
