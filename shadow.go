package fweh

import (
	"fmt"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// ShadowOptions describes a drop shadow: a blurred, tinted silhouette of the
// source image, displaced by Offset.
type ShadowOptions struct {
	// Offset displaces the shadow relative to the image, in pixels.
	// Positive values move the shadow toward +x/+y.
	Offset Point

	// Color is the shadow color specification (named or hex).
	Color string

	// Radius is the blur radius in pixels. It also acts as the margin the
	// silhouette canvas grows by on every side, so the blur never clips.
	Radius float64

	// Opacity scales the shadow alpha, clamped to [0, 1].
	Opacity float64
}

// Apply derives the drop shadow of src and returns a new canvas holding the
// shadow with src composited on top. The canvas is sized
// (w + 2*radius + |offset.x|) by (h + 2*radius + |offset.y|), so the shadow
// fits regardless of offset sign.
//
// The algorithm:
//  1. Extract the alpha silhouette of src into a margin-padded canvas
//  2. Blur it with repeated box passes, ceil(radius/2) iterations
//  3. Recolor with the shadow color and opacity-scaled alpha
//  4. Place the shadow, then source-over composite src on top
//
// An unresolvable shadow color fails before any buffer is allocated.
func (o *ShadowOptions) Apply(src *Pixmap) (*Pixmap, error) {
	shadowColor, err := ParseColor(o.Color)
	if err != nil {
		return nil, fmt.Errorf("shadow color: %w", err)
	}

	margin := int(o.Radius)
	if margin < 0 {
		return nil, fmt.Errorf("%w: shadow radius must be non-negative, got %v", ErrInvalidParameter, o.Radius)
	}

	Logger().Debug("adding drop shadow",
		"radius", o.Radius, "offset_x", o.Offset.X, "offset_y", o.Offset.Y)

	shadowW := src.width + 2*margin
	shadowH := src.height + 2*margin

	shadow := alphaSilhouette(src, margin, margin, shadowW, shadowH)
	blurAlpha(shadow, int(math.Ceil(o.Radius/2)))

	opacity := o.Opacity
	if opacity < 0 {
		opacity = 0
	} else if opacity > 1 {
		opacity = 1
	}
	tint(shadow, shadowColor, opacity)

	ox, oy := o.Offset.Trunc()
	final := NewPixmap(shadowW+abs(ox), shadowH+abs(oy))

	// Positive offsets push the shadow toward the trailing edges; the canvas
	// grew by |offset| on exactly that side, so neither layer ever clips.
	blit(final, shadow, max(0, ox), max(0, oy))
	Overlay(final, src, margin+max(0, -ox), margin+max(0, -oy))

	return final, nil
}

// alphaSilhouette copies the alpha channel of src into a fresh canvas at
// position (dx, dy), writing white into the color channels wherever alpha is
// copied. Every output pixel is independent, so rows are filled in parallel
// across CPU-sized chunks.
func alphaSilhouette(src *Pixmap, dx, dy, width, height int) *Pixmap {
	mask := NewPixmap(width, height)

	var g errgroup.Group
	workers := runtime.NumCPU()
	if workers > height {
		workers = height
	}
	if workers < 1 {
		workers = 1
	}
	chunk := (height + workers - 1) / workers

	for start := 0; start < height; start += chunk {
		start := start
		end := start + chunk
		if end > height {
			end = height
		}
		g.Go(func() error {
			for y := start; y < end; y++ {
				srcY := y - dy
				if srcY < 0 || srcY >= src.height {
					continue
				}
				for x := dx; x < dx+src.width && x < width; x++ {
					srcX := x - dx
					a := src.data[(srcY*src.width+srcX)*4+3]
					i := (y*width + x) * 4
					mask.data[i+0] = 255
					mask.data[i+1] = 255
					mask.data[i+2] = 255
					mask.data[i+3] = a
				}
			}
			return nil
		})
	}
	// Workers write disjoint row ranges and never fail.
	_ = g.Wait()

	return mask
}

// tint recolors every pixel of the mask with the shadow color, scaling the
// mask alpha by opacity and saturating at 255.
func tint(mask *Pixmap, c RGBA8, opacity float64) {
	for i := 0; i < len(mask.data); i += 4 {
		a := float64(mask.data[i+3]) * opacity
		if a > 255 {
			a = 255
		}
		mask.data[i+0] = c.R
		mask.data[i+1] = c.G
		mask.data[i+2] = c.B
		mask.data[i+3] = uint8(a)
	}
}

// blit copies src into dst at (x, y) without blending, clipping at the
// destination bounds.
func blit(dst, src *Pixmap, x, y int) {
	for sy := 0; sy < src.height; sy++ {
		dy := y + sy
		if dy < 0 || dy >= dst.height {
			continue
		}
		for sx := 0; sx < src.width; sx++ {
			dx := x + sx
			if dx < 0 || dx >= dst.width {
				continue
			}
			si := (sy*src.width + sx) * 4
			di := (dy*dst.width + dx) * 4
			copy(dst.data[di:di+4], src.data[si:si+4])
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
