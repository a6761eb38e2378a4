package fweh

import (
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	_ "golang.org/x/image/webp" // register WebP decoding
)

// LoadImage decodes the image at path into a pixmap. PNG, JPEG, GIF, BMP,
// TIFF, and WebP inputs are accepted.
func LoadImage(path string) (*Pixmap, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrInputNotFound, path)
		}
		return nil, fmt.Errorf("%w: %s: %w", ErrImageLoad, path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrImageLoad, path, err)
	}

	pm := FromImage(img)
	Logger().Debug("loaded input image",
		"path", path, "format", format, "width", pm.Width(), "height", pm.Height())
	return pm, nil
}

// SaveImage encodes the pixmap to path, choosing the encoder from the file
// extension: .png, .jpg, .jpeg, .gif, .bmp, .tif, .tiff. A failed encode
// removes the partial file so no output exists on failure.
func SaveImage(p *Pixmap, path string) error {
	dir := filepath.Dir(path)
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrOutputDir, dir)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrImageSave, path, err)
	}

	if err := encode(f, p, filepath.Ext(path)); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return fmt.Errorf("%w: %s: %w", ErrImageSave, path, err)
	}
	return nil
}

func encode(f *os.File, p *Pixmap, ext string) error {
	img := p.ToImage()

	var err error
	switch strings.ToLower(ext) {
	case ".png":
		err = png.Encode(f, img)
	case ".jpg", ".jpeg":
		err = jpeg.Encode(f, img, nil)
	case ".gif":
		err = gif.Encode(f, img, nil)
	case ".bmp":
		err = bmp.Encode(f, img)
	case ".tif", ".tiff":
		err = tiff.Encode(f, img, nil)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrImageSave, f.Name(), err)
	}
	return nil
}
