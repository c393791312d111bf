package folio

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"io"
	"io/fs"
	"os"

	"golang.org/x/image/draw"
)

const (
	// avatarSize is twice the rendered bio size, for high-density screens.
	avatarSize  = 100
	jpegQuality = 80
)

// loadAvatar reads the bio picture at path and returns it processed. A
// missing file means the site has no avatar and yields nil, nil.
func loadAvatar(path string) ([]byte, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return processAvatar(f)
}

// processAvatar decodes an image from src, crops the largest centered
// square, scales it to avatarSize and encodes it as JPEG.
func processAvatar(src io.Reader) ([]byte, error) {
	img, _, err := image.Decode(src)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	b := img.Bounds()
	side := min(b.Dx(), b.Dy())
	if side == 0 {
		return nil, errors.New("decode image: empty image")
	}
	x0 := b.Min.X + (b.Dx()-side)/2
	y0 := b.Min.Y + (b.Dy()-side)/2
	crop := image.Rect(x0, y0, x0+side, y0+side)

	dst := image.NewRGBA(image.Rect(0, 0, avatarSize, avatarSize))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, crop, draw.Src, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, fmt.Errorf("encode jpeg: %w", err)
	}
	return buf.Bytes(), nil
}
