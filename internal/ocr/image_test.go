package ocr

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func writeTestPNG(t *testing.T, w, h int) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "img.png")

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create png: %v", err)
	}
	defer f.Close()

	if err := png.Encode(f, image.NewRGBA(image.Rect(0, 0, w, h))); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return path
}

func TestLoadImage(t *testing.T) {
	path := writeTestPNG(t, 10, 20)

	img, err := LoadImage(path)
	if err != nil {
		t.Fatalf("LoadImage() error: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 10 || b.Dy() != 20 {
		t.Errorf("bounds = %v, want 10x20", b)
	}
}

func TestLoadImageMissingFile(t *testing.T) {
	if _, err := LoadImage(filepath.Join(t.TempDir(), "nope.png")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestThumbnailDownscales(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 800, 400))

	out := Thumbnail(img, 200, 200)
	b := out.Bounds()
	if b.Dx() != 200 || b.Dy() != 100 {
		t.Errorf("bounds = %v, want 200x100 (aspect preserved)", b)
	}
}

func TestThumbnailNeverUpscales(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 50, 50))

	out := Thumbnail(img, 200, 200)
	if out != image.Image(img) {
		t.Error("small images should be returned unchanged")
	}
}
