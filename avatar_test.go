package folio

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"path/filepath"
	"strings"
	"testing"
)

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestProcessAvatarCropsAndScales(t *testing.T) {
	for _, tc := range []struct {
		name string
		w, h int
	}{
		{"landscape", 300, 120},
		{"portrait", 80, 240},
		{"small", 10, 10},
	} {
		t.Run(tc.name, func(t *testing.T) {
			out, err := processAvatar(bytes.NewReader(encodePNG(t, tc.w, tc.h)))
			if err != nil {
				t.Fatalf("processAvatar failed: %v", err)
			}
			img, err := jpeg.Decode(bytes.NewReader(out))
			if err != nil {
				t.Fatalf("output is not a JPEG: %v", err)
			}
			if b := img.Bounds(); b.Dx() != avatarSize || b.Dy() != avatarSize {
				t.Fatalf("expected %dx%d, got %dx%d", avatarSize, avatarSize, b.Dx(), b.Dy())
			}
		})
	}
}

func TestProcessAvatarRejectsGarbage(t *testing.T) {
	_, err := processAvatar(strings.NewReader("not an image"))
	if err == nil {
		t.Fatal("expected decode error")
	}
}

func TestLoadAvatarMissing(t *testing.T) {
	data, err := loadAvatar(filepath.Join(t.TempDir(), "nope.png"))
	if err != nil {
		t.Fatalf("expected no error for a missing avatar, got %v", err)
	}
	if data != nil {
		t.Fatal("expected nil avatar")
	}
}
