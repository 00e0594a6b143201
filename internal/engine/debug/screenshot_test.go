package debug

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestFlipRows(t *testing.T) {
	// Two rows, one pixel wide: bottom row red, top row blue (GL order).
	pixels := []byte{
		255, 0, 0, 255,
		0, 0, 255, 255,
	}
	img, err := FlipRows(pixels, 1, 2)
	if err != nil {
		t.Fatalf("FlipRows: %v", err)
	}
	if got := img.RGBAAt(0, 0); got != (color.RGBA{0, 0, 255, 255}) {
		t.Errorf("top row = %v, want blue", got)
	}
	if got := img.RGBAAt(0, 1); got != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("bottom row = %v, want red", got)
	}

	if _, err := FlipRows(pixels, 2, 2); err == nil {
		t.Error("expected size mismatch error")
	}
}

func TestCaptureNames(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "shots")
	sc := NewScreenshotCapture(dir, "cortex")
	sc.now = func() time.Time { return time.Date(2026, 3, 1, 12, 30, 0, 0, time.UTC) }

	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	first, err := sc.CaptureFromImage(img)
	if err != nil {
		t.Fatalf("CaptureFromImage: %v", err)
	}
	second, err := sc.CaptureFromImage(img)
	if err != nil {
		t.Fatalf("CaptureFromImage: %v", err)
	}

	if first == second {
		t.Errorf("captures in the same second must not collide: %s", first)
	}
	base := filepath.Base(first)
	if !strings.HasPrefix(base, "cortex_2026-03-01_12-30-00_") || !strings.HasSuffix(base, "_000.png") {
		t.Errorf("unexpected name %s", base)
	}
	if filepath.Dir(first) != dir {
		t.Errorf("capture written to %s, want %s", filepath.Dir(first), dir)
	}
}

func TestCaptureFromPixelsRoundTrip(t *testing.T) {
	sc := NewScreenshotCapture(t.TempDir(), "frame")
	pixels := make([]byte, 3*2*4)
	for i := range pixels {
		pixels[i] = 200
	}
	path, err := sc.CaptureFromPixels(pixels, 3, 2)
	if err != nil {
		t.Fatalf("CaptureFromPixels: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 3 || b.Dy() != 2 {
		t.Errorf("decoded size %v", b)
	}
}

func TestSavePNGCreatesParents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "still.png")
	if err := SavePNG(image.NewRGBA(image.Rect(0, 0, 1, 1)), path); err != nil {
		t.Fatalf("SavePNG: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("file not written: %v", err)
	}
}
