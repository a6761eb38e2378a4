package fweh

import (
	"fmt"
	"image/color"
	"strings"
)

// RGBA8 is an unpremultiplied 8-bit-per-channel color.
type RGBA8 struct {
	R, G, B, A uint8
}

// Color converts RGBA8 to the standard color.Color interface.
func (c RGBA8) Color() color.Color {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// Lerp performs linear interpolation between two colors, rounding each
// channel to the nearest integer. t=0 returns c, t=1 returns other.
func (c RGBA8) Lerp(other RGBA8, t float64) RGBA8 {
	lerp := func(a, b uint8) uint8 {
		return uint8(float64(a)*(1-t) + float64(b)*t + 0.5)
	}
	return RGBA8{
		R: lerp(c.R, other.R),
		G: lerp(c.G, other.G),
		B: lerp(c.B, other.B),
		A: lerp(c.A, other.A),
	}
}

// Named colors accepted by ParseColor.
var namedColors = map[string]RGBA8{
	"black":       {0, 0, 0, 255},
	"white":       {255, 255, 255, 255},
	"red":         {255, 0, 0, 255},
	"green":       {0, 255, 0, 255},
	"blue":        {0, 0, 255, 255},
	"yellow":      {255, 255, 0, 255},
	"cyan":        {0, 255, 255, 255},
	"magenta":     {255, 0, 255, 255},
	"transparent": {0, 0, 0, 0},
}

// ParseColor resolves a color specification to an RGBA8 value.
// Supported forms: "#RGB", "#RRGGBB", "#RRGGBBAA", and the named set
// black, white, red, green, blue, yellow, cyan, magenta, transparent.
func ParseColor(spec string) (RGBA8, error) {
	if strings.HasPrefix(spec, "#") {
		return parseHexColor(strings.TrimPrefix(spec, "#"))
	}
	if c, ok := namedColors[strings.ToLower(spec)]; ok {
		return c, nil
	}
	return RGBA8{}, fmt.Errorf("%w: unknown color name %q", ErrInvalidColor, spec)
}

func parseHexColor(hex string) (RGBA8, error) {
	switch len(hex) {
	case 3:
		r, err1 := parseHexByte(hex[0:1])
		g, err2 := parseHexByte(hex[1:2])
		b, err3 := parseHexByte(hex[2:3])
		if err := firstErr(err1, err2, err3); err != nil {
			return RGBA8{}, err
		}
		// Expand shorthand: each nibble duplicated (0xF -> 0xFF).
		return RGBA8{R: r * 17, G: g * 17, B: b * 17, A: 255}, nil
	case 6:
		r, err1 := parseHexByte(hex[0:2])
		g, err2 := parseHexByte(hex[2:4])
		b, err3 := parseHexByte(hex[4:6])
		if err := firstErr(err1, err2, err3); err != nil {
			return RGBA8{}, err
		}
		return RGBA8{R: r, G: g, B: b, A: 255}, nil
	case 8:
		r, err1 := parseHexByte(hex[0:2])
		g, err2 := parseHexByte(hex[2:4])
		b, err3 := parseHexByte(hex[4:6])
		a, err4 := parseHexByte(hex[6:8])
		if err := firstErr(err1, err2, err3, err4); err != nil {
			return RGBA8{}, err
		}
		return RGBA8{R: r, G: g, B: b, A: a}, nil
	default:
		return RGBA8{}, fmt.Errorf("%w: invalid hex color format %q", ErrInvalidColor, "#"+hex)
	}
}

func parseHexByte(s string) (uint8, error) {
	var v uint16
	for i := 0; i < len(s); i++ {
		c := s[i]
		v *= 16
		switch {
		case '0' <= c && c <= '9':
			v += uint16(c - '0')
		case 'a' <= c && c <= 'f':
			v += uint16(c-'a') + 10
		case 'A' <= c && c <= 'F':
			v += uint16(c-'A') + 10
		default:
			return 0, fmt.Errorf("%w: invalid hex digit %q", ErrInvalidColor, string(c))
		}
	}
	return uint8(v), nil
}

func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

// ParseGradient resolves a gradient specification into its stop colors.
// Stops are separated by '-', e.g. "blue-red" or "#000-#888-#fff".
func ParseGradient(spec string) ([]RGBA8, error) {
	parts := strings.Split(spec, "-")
	colors := make([]RGBA8, 0, len(parts))
	for _, part := range parts {
		c, err := ParseColor(part)
		if err != nil {
			return nil, err
		}
		colors = append(colors, c)
	}
	return colors, nil
}
