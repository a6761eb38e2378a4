package fweh

import "errors"

// Failure categories for the framing pipeline. Stage errors wrap one of
// these sentinels so callers can classify failures with errors.Is.
var (
	// ErrImageLoad indicates the input image could not be decoded.
	ErrImageLoad = errors.New("fweh: failed to load image")

	// ErrImageSave indicates the output image could not be encoded or written.
	ErrImageSave = errors.New("fweh: failed to save image")

	// ErrInputNotFound indicates the input file does not exist.
	ErrInputNotFound = errors.New("fweh: input file not found")

	// ErrOutputDir indicates the output directory does not exist or is
	// not writable.
	ErrOutputDir = errors.New("fweh: output directory not found")

	// ErrUnsupportedFormat indicates the output extension maps to no encoder.
	ErrUnsupportedFormat = errors.New("fweh: unsupported image format")

	// ErrInvalidColor indicates a color specification that is neither a
	// known name nor a well-formed hex value.
	ErrInvalidColor = errors.New("fweh: invalid color")

	// ErrInvalidGradient indicates a gradient specification with fewer than
	// two resolvable stops.
	ErrInvalidGradient = errors.New("fweh: invalid gradient")

	// ErrBackground indicates the background could not be generated.
	ErrBackground = errors.New("fweh: failed to create background")

	// ErrInvalidParameter indicates an out-of-range or malformed numeric
	// parameter (scale, ratio, point, roundness, shadow settings).
	ErrInvalidParameter = errors.New("fweh: invalid parameter")
)
