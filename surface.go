package gorast

import (
	"image"
	"image/color"

	"github.com/gorast/gorast/internal/imath"
)

// WrapMode determines how Sample treats coordinates outside the surface.
type WrapMode uint8

const (
	// WrapClamp clamps coordinates to the nearest edge pixel (default).
	WrapClamp WrapMode = iota

	// WrapRepeat tiles the surface; coordinates wrap at the boundaries.
	WrapRepeat

	// WrapMirror reflects the surface at the boundaries.
	WrapMirror
)

// String returns a string representation of the wrap mode.
func (w WrapMode) String() string {
	switch w {
	case WrapClamp:
		return "Clamp"
	case WrapRepeat:
		return "Repeat"
	case WrapMirror:
		return "Mirror"
	default:
		return "Unknown"
	}
}

// Surface is a rectangular pixel buffer: a row-major slice of Color
// values with a stride equal to the width. It serves both as the sprite
// source and as the rasterizer's color target.
type Surface struct {
	width  int
	height int
	pix    []Color
}

// NewSurface creates a surface of the given size with all pixels
// transparent black. Negative dimensions are treated as zero.
func NewSurface(width, height int) *Surface {
	width = max(width, 0)
	height = max(height, 0)
	return &Surface{
		width:  width,
		height: height,
		pix:    make([]Color, width*height),
	}
}

// Width returns the width in pixels.
func (s *Surface) Width() int { return s.width }

// Height returns the height in pixels.
func (s *Surface) Height() int { return s.height }

// Pix returns the raw pixel slice, row-major with stride == Width().
// Mutating it mutates the surface.
func (s *Surface) Pix() []Color { return s.pix }

// AABB returns the inclusive pixel bounds of the surface:
// (0, 0) to (width-1, height-1).
func (s *Surface) AABB() AABB {
	return AABB{Min: Pt(0, 0), Max: Pt(float64(s.width-1), float64(s.height-1))}
}

// GetPixel returns the color at (x, y), or Transparent when the
// coordinates fall outside the surface.
func (s *Surface) GetPixel(x, y int) Color {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return Transparent
	}
	return s.pix[y*s.width+x]
}

// SetPixel sets the color at (x, y). Out-of-bounds writes are dropped.
func (s *Surface) SetPixel(x, y int, c Color) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.pix[y*s.width+x] = c
}

// Sample returns the color at (x, y) with out-of-range coordinates
// remapped by the wrap mode. An empty surface samples as Transparent.
func (s *Surface) Sample(x, y int, mode WrapMode) Color {
	if s.width == 0 || s.height == 0 {
		return Transparent
	}
	switch mode {
	case WrapRepeat:
		x = imath.FloorMod(x, s.width)
		y = imath.FloorMod(y, s.height)
	case WrapMirror:
		x = imath.Mirror(x, s.width)
		y = imath.Mirror(y, s.height)
	default:
		x = imath.Clamp(x, 0, s.width-1)
		y = imath.Clamp(y, 0, s.height-1)
	}
	return s.pix[y*s.width+x]
}

// Clear fills the entire surface with c.
func (s *Surface) Clear(c Color) {
	for i := range s.pix {
		s.pix[i] = c
	}
}

// At implements the image.Image interface.
func (s *Surface) At(x, y int) color.Color {
	return s.GetPixel(x, y).NRGBA()
}

// Bounds implements the image.Image interface.
func (s *Surface) Bounds() image.Rectangle {
	return image.Rect(0, 0, s.width, s.height)
}

// ColorModel implements the image.Image interface.
func (s *Surface) ColorModel() color.Model {
	return color.NRGBAModel
}

// ToImage converts the surface to a straight-alpha image.NRGBA.
func (s *Surface) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, s.width, s.height))
	for i, c := range s.pix {
		img.Pix[i*4+0] = c.R()
		img.Pix[i*4+1] = c.G()
		img.Pix[i*4+2] = c.B()
		img.Pix[i*4+3] = c.A()
	}
	return img
}

// FromImage converts any image.Image to a Surface with straight
// (non-premultiplied) alpha.
func FromImage(img image.Image) *Surface {
	bounds := img.Bounds()
	s := NewSurface(bounds.Dx(), bounds.Dy())

	// Fast path for *image.NRGBA: channels are already straight alpha
	// in the R, G, B, A byte order the packed Color uses.
	if nrgba, ok := img.(*image.NRGBA); ok {
		for y := 0; y < s.height; y++ {
			off := (y+bounds.Min.Y-nrgba.Rect.Min.Y)*nrgba.Stride + (bounds.Min.X-nrgba.Rect.Min.X)*4
			row := y * s.width
			for x := 0; x < s.width; x++ {
				s.pix[row+x] = NewColor(nrgba.Pix[off], nrgba.Pix[off+1], nrgba.Pix[off+2], nrgba.Pix[off+3])
				off += 4
			}
		}
		return s
	}

	// Generic path: color.Color reports premultiplied 16-bit channels,
	// un-premultiply back to straight alpha.
	for y := 0; y < s.height; y++ {
		row := y * s.width
		for x := 0; x < s.width; x++ {
			r, g, b, a := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			if a == 0 {
				continue
			}
			if a == 0xFFFF {
				s.pix[row+x] = NewColor(uint8(r>>8), uint8(g>>8), uint8(b>>8), 255)
				continue
			}
			s.pix[row+x] = NewColor(
				uint8((r*0xFFFF/a)>>8),
				uint8((g*0xFFFF/a)>>8),
				uint8((b*0xFFFF/a)>>8),
				uint8(a>>8),
			)
		}
	}
	return s
}
