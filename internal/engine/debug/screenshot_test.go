package debug

import (
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestFlipPixels(t *testing.T) {
	// 1x2 image: bottom row red, top row blue (GL order is bottom first).
	pixels := []byte{
		255, 0, 0, 255,
		0, 0, 255, 255,
	}
	img, err := FlipPixels(pixels, 1, 2)
	if err != nil {
		t.Fatalf("FlipPixels: %v", err)
	}
	if got := img.RGBAAt(0, 0); got != (color.RGBA{0, 0, 255, 255}) {
		t.Errorf("top pixel = %v, want blue", got)
	}
	if got := img.RGBAAt(0, 1); got != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("bottom pixel = %v, want red", got)
	}
}

func TestFlipPixelsErrors(t *testing.T) {
	tests := []struct {
		name   string
		pixels []byte
		w, h   int
	}{
		{"short buffer", make([]byte, 7), 1, 2},
		{"zero size", nil, 0, 0},
		{"negative", nil, -1, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := FlipPixels(tt.pixels, tt.w, tt.h); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestCaptureFromPixels(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "shots")
	sc := NewScreenshotCapture(dir, "formulap2")
	sc.now = func() time.Time { return time.Date(2024, 3, 9, 14, 5, 6, 789e6, time.UTC) }

	pixels := make([]byte, 4*3*4)
	for i := range pixels {
		pixels[i] = byte(i)
	}

	path, err := sc.CaptureFromPixels(pixels, 4, 3)
	if err != nil {
		t.Fatalf("CaptureFromPixels: %v", err)
	}
	if want := filepath.Join(dir, "formulap2_2024-03-09_14-05-06.789.png"); path != want {
		t.Errorf("path = %s, want %s", path, want)
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
	if b := img.Bounds(); b.Dx() != 4 || b.Dy() != 3 {
		t.Errorf("unexpected bounds %v", b)
	}
}

func TestFilenameWithoutDir(t *testing.T) {
	sc := NewScreenshotCapture("", "shot")
	name := sc.Filename()
	if !strings.HasPrefix(name, "shot_") || !strings.HasSuffix(name, ".png") {
		t.Errorf("unexpected filename %s", name)
	}
	if strings.ContainsRune(name, filepath.Separator) {
		t.Errorf("expected bare filename, got %s", name)
	}
}
