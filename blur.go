package fweh

// blurAlpha applies repeated 3x3 box-blur passes to the alpha channel of the
// pixmap, leaving color channels untouched. Edge pixels extend outward
// (clamped sampling), and the 9-tap sum uses rounded integer division, so
// repeated passes are deterministic and bit-stable.
//
// Repeated box passes approximate a Gaussian; the pass count is chosen by
// the caller and is part of the output contract, so it must not be traded
// for a true Gaussian kernel.
func blurAlpha(p *Pixmap, passes int) {
	if passes <= 0 {
		return
	}
	width, height := p.width, p.height
	if width == 0 || height == 0 {
		return
	}

	temp := make([]uint8, width*height)

	for pass := 0; pass < passes; pass++ {
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				var sum int
				for ky := y - 1; ky <= y+1; ky++ {
					sy := clampIndex(ky, height)
					for kx := x - 1; kx <= x+1; kx++ {
						sx := clampIndex(kx, width)
						sum += int(p.data[(sy*width+sx)*4+3])
					}
				}
				temp[y*width+x] = uint8((sum + 4) / 9)
			}
		}
		for i, a := range temp {
			p.data[i*4+3] = a
		}
	}
}

// clampIndex clamps v to [0, n).
func clampIndex(v, n int) int {
	if v < 0 {
		return 0
	}
	if v >= n {
		return n - 1
	}
	return v
}
