package fweh

// Process frames the image at inputPath and writes the result to outputPath,
// returning the output path on success. The pipeline is synchronous: load,
// round corners, generate the drop shadow, compute the canvas layout, render
// the background, overlay, save. Any stage failure aborts the whole run;
// no output file is written on failure.
func Process(inputPath, outputPath string, opts ProcessingOptions) (string, error) {
	if err := opts.Validate(); err != nil {
		return "", err
	}

	img, err := LoadImage(inputPath)
	if err != nil {
		return "", err
	}
	width, height := img.Width(), img.Height()

	// Default to the source's own reduced shape so scale-only runs keep it.
	var targetRatio float64
	if opts.Ratio != nil {
		targetRatio = opts.Ratio.Ratio()
	} else {
		targetRatio = ReduceAspectRatio(width, height).Ratio()
	}
	Logger().Debug("target aspect ratio", "ratio", targetRatio)

	if opts.Roundness > 0 {
		img.RoundCorners(opts.Roundness)
	}

	layer := img
	if opts.Shadow != nil {
		layer, err = opts.Shadow.Apply(img)
		if err != nil {
			return "", err
		}
	}

	layout, err := ComputeCanvas(width, height, targetRatio, opts.Scale)
	if err != nil {
		return "", err
	}

	canvas, err := opts.Background.Render(layout.Width, layout.Height)
	if err != nil {
		return "", err
	}

	// Center the composited layer, then apply the user offset relative to
	// that centered position.
	x := (float64(layout.Width)-float64(layer.Width()))/2 + opts.Offset.X
	y := (float64(layout.Height)-float64(layer.Height()))/2 + opts.Offset.Y
	Logger().Debug("placing image", "x", x, "y", y)

	Overlay(canvas, layer, int(x), int(y))

	if err := SaveImage(canvas, outputPath); err != nil {
		return "", err
	}
	Logger().Info("wrote framed image", "path", outputPath)
	return outputPath, nil
}
