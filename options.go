package fweh

import (
	"fmt"
	"math"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ProcessingOptions aggregates everything Process needs beyond the input and
// output paths. Construct it once, validate it, and hand it to Process; it is
// not modified during processing.
type ProcessingOptions struct {
	// Scale is the canvas growth percentage. 100 keeps the source size,
	// the default 110 adds a 10% margin.
	Scale float64

	// Roundness is the corner radius as a percentage (0-100) of the
	// smaller source dimension. 0 disables rounding.
	Roundness float64

	// Offset shifts the image from its auto-centered position, in pixels.
	Offset Point

	// Shadow enables a drop shadow when non-nil.
	Shadow *ShadowOptions

	// Background selects the generated background.
	Background Background

	// Ratio is the target canvas aspect ratio. When nil the source's own
	// reduced aspect ratio is used, making scale-only runs shape-preserving.
	Ratio *AspectRatio
}

// DefaultOptions returns options matching the CLI defaults: 110% scale,
// no rounding, no shadow, solid black background, source aspect ratio.
func DefaultOptions() ProcessingOptions {
	return ProcessingOptions{
		Scale:      110,
		Background: DefaultBackground(),
	}
}

// Validate checks the numeric option ranges before any pixel work starts.
func (o ProcessingOptions) Validate() error {
	err := validation.ValidateStruct(&o,
		validation.Field(&o.Scale, validation.Required, validation.By(finitePositive)),
		validation.Field(&o.Roundness, validation.Min(0.0), validation.Max(100.0)),
	)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidParameter, err)
	}

	if o.Shadow != nil {
		err := validation.ValidateStruct(o.Shadow,
			validation.Field(&o.Shadow.Radius, validation.Min(0.0)),
			validation.Field(&o.Shadow.Opacity, validation.Min(0.0), validation.Max(1.0)),
			validation.Field(&o.Shadow.Color, validation.Required),
		)
		if err != nil {
			return fmt.Errorf("%w: shadow: %w", ErrInvalidParameter, err)
		}
	}

	if o.Ratio != nil && (o.Ratio.Width == 0 || o.Ratio.Height == 0) {
		return fmt.Errorf("%w: aspect ratio sides must be positive, got %s", ErrInvalidParameter, o.Ratio)
	}
	return nil
}

func finitePositive(value interface{}) error {
	v, _ := value.(float64)
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return fmt.Errorf("must be finite and positive, got %v", v)
	}
	return nil
}
