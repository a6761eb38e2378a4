package fweh

import (
	"errors"
	"math"
	"testing"
)

// TestComputeCanvas_MatchingRatio keeps shape when the target ratio equals
// the source ratio.
func TestComputeCanvas_MatchingRatio(t *testing.T) {
	l, err := ComputeCanvas(100, 100, 1.0, 110)
	if err != nil {
		t.Fatalf("ComputeCanvas error: %v", err)
	}
	if l.Width != 110 || l.Height != 110 {
		t.Errorf("canvas = %dx%d, want 110x110", l.Width, l.Height)
	}
	// The canvas matches the scaled source exactly, so no ratio padding.
	if l.PadLeft != 0 || l.PadRight != 0 || l.PadTop != 0 || l.PadBottom != 0 {
		t.Errorf("padding = %+v, want all zero", l)
	}
}

// TestComputeCanvas_TargetNarrower fixes the scaled width and pads height.
func TestComputeCanvas_TargetNarrower(t *testing.T) {
	l, err := ComputeCanvas(200, 100, 16.0/9.0, 100)
	if err != nil {
		t.Fatalf("ComputeCanvas error: %v", err)
	}
	if l.Width != 200 {
		t.Errorf("width = %d, want 200", l.Width)
	}
	if l.Height != 112 { // 200 / (16/9) = 112.5, truncated
		t.Errorf("height = %d, want 112", l.Height)
	}
	if l.PadTop != 6 || l.PadBottom != 6 {
		t.Errorf("vertical padding = %d/%d, want 6/6", l.PadTop, l.PadBottom)
	}
}

// TestComputeCanvas_TargetWider fixes the scaled height and pads width.
func TestComputeCanvas_TargetWider(t *testing.T) {
	l, err := ComputeCanvas(100, 200, 1.0, 100)
	if err != nil {
		t.Fatalf("ComputeCanvas error: %v", err)
	}
	if l.Width != 200 || l.Height != 200 {
		t.Errorf("canvas = %dx%d, want 200x200", l.Width, l.Height)
	}
	if l.PadLeft != 50 || l.PadRight != 50 {
		t.Errorf("horizontal padding = %d/%d, want 50/50", l.PadLeft, l.PadRight)
	}
}

// TestComputeCanvas_UnevenPadding splits odd padding with the remainder on
// the trailing edge.
func TestComputeCanvas_UnevenPadding(t *testing.T) {
	l, err := ComputeCanvas(100, 99, 1.0, 100)
	if err != nil {
		t.Fatalf("ComputeCanvas error: %v", err)
	}
	if l.PadTop > l.PadBottom {
		t.Errorf("padding favors leading edge: top=%d bottom=%d", l.PadTop, l.PadBottom)
	}
	if l.PadTop+l.PadBottom != l.Height-99 {
		t.Errorf("padding sum %d != %d", l.PadTop+l.PadBottom, l.Height-99)
	}
}

// TestComputeCanvas_Invalid rejects non-finite and non-positive inputs.
func TestComputeCanvas_Invalid(t *testing.T) {
	cases := []struct {
		name         string
		w, h         int
		ratio, scale float64
	}{
		{"zero width", 0, 100, 1, 100},
		{"zero ratio", 100, 100, 0, 100},
		{"negative ratio", 100, 100, -1, 100},
		{"nan ratio", 100, 100, math.NaN(), 100},
		{"inf ratio", 100, 100, math.Inf(1), 100},
		{"zero scale", 100, 100, 1, 0},
		{"nan scale", 100, 100, 1, math.NaN()},
	}
	for _, tt := range cases {
		if _, err := ComputeCanvas(tt.w, tt.h, tt.ratio, tt.scale); !errors.Is(err, ErrInvalidParameter) {
			t.Errorf("%s: err = %v, want ErrInvalidParameter", tt.name, err)
		}
	}
}

// TestReduceAspectRatio reduces via GCD.
func TestReduceAspectRatio(t *testing.T) {
	tests := []struct {
		w, h         int
		wantW, wantH uint
	}{
		{1920, 1080, 16, 9},
		{100, 100, 1, 1},
		{640, 480, 4, 3},
		{7, 5, 7, 5},
	}
	for _, tt := range tests {
		got := ReduceAspectRatio(tt.w, tt.h)
		if got.Width != tt.wantW || got.Height != tt.wantH {
			t.Errorf("ReduceAspectRatio(%d, %d) = %s, want %d:%d", tt.w, tt.h, got, tt.wantW, tt.wantH)
		}
	}
}

// TestParseAspectRatio parses "W:H" and rejects malformed or zero sides.
func TestParseAspectRatio(t *testing.T) {
	r, err := ParseAspectRatio("16:9")
	if err != nil {
		t.Fatalf("ParseAspectRatio error: %v", err)
	}
	if r.Width != 16 || r.Height != 9 {
		t.Errorf("ratio = %s, want 16:9", r)
	}
	if got := r.Ratio(); math.Abs(got-16.0/9.0) > 1e-12 {
		t.Errorf("Ratio() = %v", got)
	}

	for _, spec := range []string{"", "16", "16:9:4", "0:9", "16:0", "a:b", "-16:9"} {
		if _, err := ParseAspectRatio(spec); !errors.Is(err, ErrInvalidParameter) {
			t.Errorf("ParseAspectRatio(%q) = %v, want ErrInvalidParameter", spec, err)
		}
	}
}
