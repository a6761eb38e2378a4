package fweh

import (
	"fmt"
	"strings"

	"github.com/disintegration/imaging"
)

// BackgroundKind selects which variant of background to generate.
type BackgroundKind int

const (
	// BackgroundColor fills the canvas with a single color.
	BackgroundColor BackgroundKind = iota
	// BackgroundGradient fills the canvas with a vertical linear gradient.
	BackgroundGradient
	// BackgroundImage fills the canvas with a resized-and-cropped image.
	BackgroundImage
)

// Background is a tagged background specification. Value holds a color spec,
// a gradient spec, or an image path depending on Kind. It is resolved into
// pixels only once the canvas size is known.
type Background struct {
	Kind  BackgroundKind
	Value string
}

// DefaultBackground is a solid black background.
func DefaultBackground() Background {
	return Background{Kind: BackgroundColor, Value: "black"}
}

// ParseBackground parses a "kind:value" background specification:
// "colr:black", "grad:blue-red", "imag:/path/to/image.png".
func ParseBackground(spec string) (Background, error) {
	kind, value, ok := strings.Cut(spec, ":")
	if !ok {
		return Background{}, fmt.Errorf("%w: invalid background spec %q", ErrBackground, spec)
	}
	switch kind {
	case "colr":
		return Background{Kind: BackgroundColor, Value: value}, nil
	case "grad":
		return Background{Kind: BackgroundGradient, Value: value}, nil
	case "imag":
		return Background{Kind: BackgroundImage, Value: value}, nil
	default:
		return Background{}, fmt.Errorf("%w: unknown background kind %q", ErrBackground, kind)
	}
}

// Render produces a pixel buffer of the requested size for this background.
func (b Background) Render(width, height int) (*Pixmap, error) {
	Logger().Debug("creating background", "kind", b.Kind, "width", width, "height", height)

	switch b.Kind {
	case BackgroundColor:
		return renderColor(width, height, b.Value)
	case BackgroundGradient:
		return renderGradient(width, height, b.Value)
	case BackgroundImage:
		return renderImage(width, height, b.Value)
	default:
		return nil, fmt.Errorf("%w: unknown background kind %d", ErrBackground, b.Kind)
	}
}

func renderColor(width, height int, spec string) (*Pixmap, error) {
	c, err := ParseColor(spec)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBackground, err)
	}
	pm := NewPixmap(width, height)
	pm.Clear(c)
	return pm, nil
}

// renderGradient fills a vertical top-to-bottom gradient. Each row is
// uniform: the row's progress locates the bracketing stop pair and the local
// interpolation factor, and every channel is lerped independently.
func renderGradient(width, height int, spec string) (*Pixmap, error) {
	stops, err := ParseGradient(spec)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBackground, err)
	}
	if len(stops) < 2 {
		return nil, fmt.Errorf("%w: gradient needs at least two colors, got %d", ErrInvalidGradient, len(stops))
	}

	pm := NewPixmap(width, height)
	for y := 0; y < height; y++ {
		progress := float64(y) / float64(height)
		index := int(progress * float64(len(stops)-1))
		next := index + 1
		if next > len(stops)-1 {
			next = len(stops) - 1
		}
		local := progress*float64(len(stops)-1) - float64(index)

		c := stops[index].Lerp(stops[next], local)
		row := pm.data[y*width*4 : (y+1)*width*4]
		for x := 0; x < width; x++ {
			row[x*4+0] = c.R
			row[x*4+1] = c.G
			row[x*4+2] = c.B
			row[x*4+3] = c.A
		}
	}
	return pm, nil
}

// renderImage loads an external image and resizes it to fill the requested
// dimensions exactly, cropping the overflow around the center.
func renderImage(width, height int, path string) (*Pixmap, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %w", ErrBackground, path, err)
	}
	filled := imaging.Fill(img, width, height, imaging.Center, imaging.Lanczos)
	return FromImage(filled), nil
}
