package fweh

import (
	"errors"
	"math"
	"testing"
)

// TestProcessingOptions_Defaults mirrors the CLI defaults.
func TestProcessingOptions_Defaults(t *testing.T) {
	opts := DefaultOptions()
	if opts.Scale != 110 {
		t.Errorf("Scale = %v, want 110", opts.Scale)
	}
	if opts.Roundness != 0 || opts.Shadow != nil || opts.Ratio != nil {
		t.Errorf("unexpected defaults: %+v", opts)
	}
	if opts.Background != (Background{BackgroundColor, "black"}) {
		t.Errorf("Background = %+v, want colr:black", opts.Background)
	}
}

// TestProcessingOptions_Validate covers the accepted and rejected ranges.
func TestProcessingOptions_Validate(t *testing.T) {
	valid := DefaultOptions()
	if err := valid.Validate(); err != nil {
		t.Errorf("default options invalid: %v", err)
	}

	shadowed := DefaultOptions()
	shadowed.Shadow = &ShadowOptions{Offset: Point{25, -25}, Color: "black", Radius: 25, Opacity: 1}
	if err := shadowed.Validate(); err != nil {
		t.Errorf("shadowed options invalid: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*ProcessingOptions)
	}{
		{"zero scale", func(o *ProcessingOptions) { o.Scale = 0 }},
		{"negative scale", func(o *ProcessingOptions) { o.Scale = -10 }},
		{"nan scale", func(o *ProcessingOptions) { o.Scale = math.NaN() }},
		{"inf scale", func(o *ProcessingOptions) { o.Scale = math.Inf(1) }},
		{"negative roundness", func(o *ProcessingOptions) { o.Roundness = -1 }},
		{"roundness past 100", func(o *ProcessingOptions) { o.Roundness = 101 }},
		{"negative shadow radius", func(o *ProcessingOptions) {
			o.Shadow = &ShadowOptions{Color: "black", Radius: -1, Opacity: 1}
		}},
		{"shadow opacity past 1", func(o *ProcessingOptions) {
			o.Shadow = &ShadowOptions{Color: "black", Radius: 5, Opacity: 1.5}
		}},
		{"negative shadow opacity", func(o *ProcessingOptions) {
			o.Shadow = &ShadowOptions{Color: "black", Radius: 5, Opacity: -0.5}
		}},
		{"empty shadow color", func(o *ProcessingOptions) {
			o.Shadow = &ShadowOptions{Radius: 5, Opacity: 1}
		}},
		{"zero ratio side", func(o *ProcessingOptions) {
			o.Ratio = &AspectRatio{Width: 0, Height: 9}
		}},
	}
	for _, tt := range tests {
		opts := DefaultOptions()
		tt.mutate(&opts)
		if err := opts.Validate(); !errors.Is(err, ErrInvalidParameter) {
			t.Errorf("%s: err = %v, want ErrInvalidParameter", tt.name, err)
		}
	}
}
