package fweh

// Overlay writes src onto dst at integer position (x, y) using straight
// (non-premultiplied) source-over blending. Portions of src outside dst are
// clipped. The blend factor is the source pixel's own alpha and is applied
// to all four channels:
//
//	out = dst*(1-a) + src*a
func Overlay(dst, src *Pixmap, x, y int) {
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
			sa := int(src.data[si+3])
			if sa == 0 {
				continue
			}

			di := (dy*dst.width + dx) * 4
			if sa == 255 {
				copy(dst.data[di:di+4], src.data[si:si+4])
				continue
			}

			inv := 255 - sa
			for c := 0; c < 4; c++ {
				dst.data[di+c] = uint8((int(dst.data[di+c])*inv + int(src.data[si+c])*sa + 127) / 255)
			}
		}
	}
}
