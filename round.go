package fweh

import "fmt"

// CornerRadii holds the rounding radius of each corner in pixels.
// Opposing radii on one edge must not sum past that edge's length.
type CornerRadii struct {
	TopLeft     int
	TopRight    int
	BottomRight int
	BottomLeft  int
}

// validate panics when the radii cannot coexist on the given dimensions.
// A violation is a programming error, not a recoverable condition.
func (r CornerRadii) validate(width, height int) {
	if r.TopLeft < 0 || r.TopRight < 0 || r.BottomRight < 0 || r.BottomLeft < 0 {
		panic(fmt.Sprintf("fweh: negative corner radius %+v", r))
	}
	if r.TopLeft+r.TopRight > width ||
		r.BottomLeft+r.BottomRight > width ||
		r.TopLeft+r.BottomLeft > height ||
		r.TopRight+r.BottomRight > height {
		panic(fmt.Sprintf("fweh: corner radii %+v exceed %dx%d", r, width, height))
	}
}

// RoundCorners rounds all four corners with a uniform radius of
// radiusPercent percent of min(width, height). Zero is the identity.
// The pixel radius is capped at min(width, height)/2, so any percentage
// from 50 up yields the inscribed ellipse.
func (p *Pixmap) RoundCorners(radiusPercent float64) {
	if radiusPercent <= 0 {
		return
	}
	minDim := p.width
	if p.height < minDim {
		minDim = p.height
	}
	radius := int(float64(minDim) * radiusPercent / 100)
	if radius > minDim/2 {
		radius = minDim / 2
	}
	Logger().Debug("rounding corners", "percent", radiusPercent, "radius", radius)
	if radius == 0 {
		return
	}
	p.Round(CornerRadii{radius, radius, radius, radius})
}

// Round clears everything outside the rounded rectangle described by radii
// and anti-aliases the boundary. Each corner runs the same octant scan
// through a coordinate-mapping closure, so equal radii produce corners that
// are exact mirror images.
func (p *Pixmap) Round(radii CornerRadii) {
	width, height := p.width, p.height
	radii.validate(width, height)

	// The closures map local corner coordinates in [1, r] to buffer
	// coordinates; mirroring is the only difference between corners.
	p.borderRadius(radii.TopLeft, func(x, y int) (int, int) { return x - 1, y - 1 })
	p.borderRadius(radii.TopRight, func(x, y int) (int, int) { return width - x, y - 1 })
	p.borderRadius(radii.BottomRight, func(x, y int) (int, int) { return width - x, height - y })
	p.borderRadius(radii.BottomLeft, func(x, y int) (int, int) { return x - 1, height - y })
}

// borderRadius rasterizes one rounded corner with a midpoint-circle scan run
// at 16x supersampling on both axes. Each of the 16 sub-steps inside a
// destination column contributes its coverage to a running alpha accumulator;
// one blended alpha is emitted per destination pixel (and its mirror across
// the 45-degree diagonal). The 16x16 sub-grid yields 256 alpha levels from an
// integer-only scan.
func (p *Pixmap) borderRadius(r0 int, corner func(x, y int) (int, int)) {
	if r0 == 0 {
		return
	}

	// Blend an emitted coverage value, alpha in [1, 256], into the existing
	// pixel alpha. Rounded integer scaling only ever reduces alpha, so a
	// fully opaque input never gains seams.
	blend := func(alpha, x, y int) {
		bx, by := corner(r0-x, r0-y)
		i := (by*p.width+bx)*4 + 3
		p.data[i] = uint8((alpha*int(p.data[i]) + 128) / 256)
	}
	zero := func(x, y int) {
		bx, by := corner(r0-x, r0-y)
		p.data[(by*p.width+bx)*4+3] = 0
	}

	r := 16 * r0
	x, y := 0, r-1
	d := 2 - r // midpoint decision variable, supersampled units

	alpha := 0
	skipDraw := true

scan:
	for {
		// Clear the column below the current arc position, and its mirror.
		// These pixels are strictly outside the circle.
		i := x / 16
		for j := y/16 + 1; j < r0; j++ {
			zero(i, j)
		}
		j := x / 16
		for i := y/16 + 1; i < r0; i++ {
			zero(i, j)
		}

		// Emit the accumulated coverage when the scan advanced a full
		// destination column in x.
		if !skipDraw {
			blend(alpha, x/16-1, y/16)
			blend(alpha, y/16, x/16-1)
			alpha = 0
		}

		for step := 0; step < 16; step++ {
			skipDraw = false

			if x >= y {
				break scan
			}

			alpha += y%16 + 1
			if d < 0 {
				x++
				d += 2*x + 2
			} else {
				// Crossing into the next destination row: emit now.
				if y%16 == 0 {
					blend(alpha, x/16, y/16)
					blend(alpha, y/16, x/16)
					skipDraw = true
					alpha = (x + 1) % 16 * 16
				}

				x++
				d -= 2*(y-x) + 2
				y--
			}
		}
	}

	// One pixel straddles the 45-degree diagonal. Its two mirrored emissions
	// would double-count the symmetric sub-steps, corrected by 2*alpha - s*s.
	if x/16 == y/16 {
		if x == y {
			alpha += y%16 + 1
		}
		s := y%16 + 1
		blend(2*alpha-s*s, x/16, y/16)
	}

	// The solid square beyond the arc never intersects the circle; clear it.
	for i := y/16 + 1; i < r0; i++ {
		for j := y/16 + 1; j < r0; j++ {
			zero(i, j)
		}
	}
}
