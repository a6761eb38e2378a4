package fweh

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadImage(t *testing.T) {
	dir := t.TempDir()

	t.Run("PNG", func(t *testing.T) {
		path := filepath.Join(dir, "in.png")
		writeTestPNG(t, path, 8, 6, color.NRGBA{R: 1, G: 2, B: 3, A: 255})
		pm, err := LoadImage(path)
		if err != nil {
			t.Fatalf("LoadImage error: %v", err)
		}
		if pm.Width() != 8 || pm.Height() != 6 {
			t.Errorf("size = %dx%d, want 8x6", pm.Width(), pm.Height())
		}
		if got := pm.GetPixel(4, 3); got != (RGBA8{1, 2, 3, 255}) {
			t.Errorf("pixel = %+v", got)
		}
	})

	t.Run("Missing", func(t *testing.T) {
		_, err := LoadImage(filepath.Join(dir, "missing.png"))
		if !errors.Is(err, ErrInputNotFound) {
			t.Errorf("err = %v, want ErrInputNotFound", err)
		}
	})

	t.Run("NotAnImage", func(t *testing.T) {
		path := filepath.Join(dir, "garbage.png")
		if err := os.WriteFile(path, []byte("not an image"), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadImage(path); !errors.Is(err, ErrImageLoad) {
			t.Errorf("err = %v, want ErrImageLoad", err)
		}
	})
}

func TestSaveImage(t *testing.T) {
	pm := NewPixmap(4, 4)
	pm.Clear(RGBA8{200, 100, 50, 255})

	t.Run("RoundTrip", func(t *testing.T) {
		for _, ext := range []string{".png", ".bmp", ".tiff"} {
			path := filepath.Join(t.TempDir(), "out"+ext)
			if err := SaveImage(pm, path); err != nil {
				t.Fatalf("SaveImage(%s) error: %v", ext, err)
			}
			back, err := LoadImage(path)
			if err != nil {
				t.Fatalf("reload %s: %v", ext, err)
			}
			if got := back.GetPixel(2, 2); got != (RGBA8{200, 100, 50, 255}) {
				t.Errorf("%s pixel = %+v", ext, got)
			}
		}
	})

	t.Run("Lossy", func(t *testing.T) {
		// JPEG and GIF encode without error; pixel values may shift.
		for _, ext := range []string{".jpg", ".gif"} {
			path := filepath.Join(t.TempDir(), "out"+ext)
			if err := SaveImage(pm, path); err != nil {
				t.Fatalf("SaveImage(%s) error: %v", ext, err)
			}
		}
	})

	t.Run("UnsupportedExtension", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.xyz")
		if err := SaveImage(pm, path); !errors.Is(err, ErrUnsupportedFormat) {
			t.Fatalf("err = %v, want ErrUnsupportedFormat", err)
		}
		if _, err := os.Stat(path); !os.IsNotExist(err) {
			t.Error("partial file left behind")
		}
	})

	t.Run("MissingDirectory", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "no", "such", "dir", "out.png")
		if err := SaveImage(pm, path); !errors.Is(err, ErrOutputDir) {
			t.Errorf("err = %v, want ErrOutputDir", err)
		}
	})
}
