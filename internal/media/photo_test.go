package media

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/chai2010/webp"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
)

func pngOf(t *testing.T, w, h int) *bytes.Buffer {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return &buf
}

func TestNormalizePhoto_ScalesLongestSide(t *testing.T) {
	out, err := NormalizePhoto(pngOf(t, 800, 400), 200, 75)
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}

	cfg, err := webp.DecodeConfig(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("output is not webp: %v", err)
	}
	if cfg.Width != 200 || cfg.Height != 100 {
		t.Fatalf("got %dx%d, want 200x100", cfg.Width, cfg.Height)
	}
}

func TestNormalizePhoto_KeepsSmallImages(t *testing.T) {
	out, err := NormalizePhoto(pngOf(t, 60, 90), 512, 0)
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	cfg, err := webp.DecodeConfig(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if cfg.Width != 60 || cfg.Height != 90 {
		t.Fatalf("small image resized to %dx%d", cfg.Width, cfg.Height)
	}
}

func TestNormalizePhoto_RejectsGarbage(t *testing.T) {
	_, err := NormalizePhoto(strings.NewReader("not an image"), 512, 80)
	if !httperr.IsBusiness(err, "invalid_image") {
		t.Fatalf("expected invalid_image, got %v", err)
	}
}
