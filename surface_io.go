package gorast

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"

	"image/png"

	_ "image/gif"  // register GIF decoding
	_ "image/jpeg" // register JPEG decoding

	_ "golang.org/x/image/bmp"  // register BMP decoding
	_ "golang.org/x/image/tiff" // register TIFF decoding
	_ "golang.org/x/image/webp" // register WebP decoding
)

// ErrEmptyData is returned when decoding an empty byte slice.
var ErrEmptyData = errors.New("gorast: empty image data")

// Decode reads an image from r, auto-detecting the format, and converts
// it to a Surface. PNG, JPEG, GIF, BMP, TIFF and WebP are recognized.
func Decode(r io.Reader) (*Surface, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("gorast: decode image: %w", err)
	}
	Logger().Debug("decoded image",
		"format", format,
		"width", img.Bounds().Dx(),
		"height", img.Bounds().Dy())
	return FromImage(img), nil
}

// DecodeBytes decodes an image from a byte slice.
func DecodeBytes(data []byte) (*Surface, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}
	return Decode(bytes.NewReader(data))
}

// Load reads and decodes an image file into a Surface.
func Load(path string) (*Surface, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("gorast: open image: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Decode(f)
}

// EncodePNG writes the surface to w as a PNG.
func (s *Surface) EncodePNG(w io.Writer) error {
	return png.Encode(w, s.ToImage())
}

// SavePNG writes the surface to a PNG file.
func (s *Surface) SavePNG(path string) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("gorast: create file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return s.EncodePNG(f)
}
