package gorast

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"
)

// Color is a packed 32-bit RGBA color with 8 bits per channel.
// Red occupies the lowest byte and alpha the highest, so a literal
// 0xAABBGGRR maps directly onto the in-memory byte order R, G, B, A.
type Color uint32

// Channel masks and shifts for the packed representation.
const (
	RedMask   Color = 0x000000FF
	GreenMask Color = 0x0000FF00
	BlueMask  Color = 0x00FF0000
	AlphaMask Color = 0xFF000000

	RedShift   = 0
	GreenShift = 8
	BlueShift  = 16
	AlphaShift = 24
)

// NewColor packs four 8-bit channels into a Color.
func NewColor(r, g, b, a uint8) Color {
	return Color(uint32(r) | uint32(g)<<GreenShift | uint32(b)<<BlueShift | uint32(a)<<AlphaShift)
}

// FromHex unpacks a 32-bit 0xAABBGGRR value into a Color.
// Every 32-bit value is a valid color; an omitted alpha byte means
// fully transparent (0xFF is transparent red, 0xFF000000 opaque black).
func FromHex(v uint32) Color {
	r := uint8((Color(v) & RedMask) >> RedShift)
	g := uint8((Color(v) & GreenMask) >> GreenShift)
	b := uint8((Color(v) & BlueMask) >> BlueShift)
	a := uint8((Color(v) & AlphaMask) >> AlphaShift)
	return NewColor(r, g, b, a)
}

// FromFloats builds a Color from channel fractions. Each input is clamped
// to [0, 1] before scaling to 8 bits; out-of-range inputs are never an error.
func FromFloats(r, g, b, a float64) Color {
	return NewColor(
		uint8(clamp01(r)*255),
		uint8(clamp01(g)*255),
		uint8(clamp01(b)*255),
		uint8(clamp01(a)*255),
	)
}

// RGB builds an opaque Color from channel fractions in [0, 1].
func RGB(r, g, b float64) Color {
	return FromFloats(r, g, b, 1)
}

// FromHSV converts hue/saturation/value to an opaque Color.
// H is reduced modulo 360 (negative hues wrap into [0, 360)); S and V are
// clamped to [0, 1]. The result is always fully opaque.
func FromHSV(h, s, v float64) Color {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	s = clamp01(s)
	v = clamp01(v)

	c := v * s
	m := v - c
	h2 := h / 60
	x := c * (1 - math.Abs(math.Mod(h2, 2)-1))

	var r, g, b float64
	switch int(h2) {
	case 0:
		r, g, b = c, x, 0
	case 1:
		r, g, b = x, c, 0
	case 2:
		r, g, b = 0, c, x
	case 3:
		r, g, b = 0, x, c
	case 4:
		r, g, b = x, 0, c
	case 5:
		r, g, b = c, 0, x
	}

	return RGB(r+m, g+m, b+m)
}

// Color parse errors.
var (
	// ErrMalformedColor is returned for hex strings with a bad length or digit.
	ErrMalformedColor = errors.New("gorast: malformed color string")

	// ErrUnknownColor is returned for names missing from the color table.
	ErrUnknownColor = errors.New("gorast: unknown color name")
)

// FromHTML parses an HTML/CSS color string: either a #-prefixed hex string
// with 3 (#RGB), 6 (#RRGGBB) or 8 (#AARRGGBB) digits, or a named color
// matched case-insensitively against the CSS color table.
func FromHTML(html string) (Color, error) {
	if strings.HasPrefix(html, "#") {
		return parseHexString(html)
	}
	if c, ok := namedColors[strings.ToLower(html)]; ok {
		return c, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownColor, html)
}

func parseHexString(html string) (Color, error) {
	digits := html[1:]
	v, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedColor, html)
	}

	switch len(digits) {
	case 3: // #RGB, each nibble doubled
		r := uint8((v >> 8 & 0xF) * 17)
		g := uint8((v >> 4 & 0xF) * 17)
		b := uint8((v & 0xF) * 17)
		return NewColor(r, g, b, 255), nil
	case 6: // #RRGGBB
		return NewColor(uint8(v>>16), uint8(v>>8), uint8(v), 255), nil
	case 8: // #AARRGGBB
		return NewColor(uint8(v>>16), uint8(v>>8), uint8(v), uint8(v>>24)), nil
	default:
		return 0, fmt.Errorf("%w: %q has %d hex digits, want 3, 6 or 8", ErrMalformedColor, html, len(digits))
	}
}

// R returns the red channel.
func (c Color) R() uint8 { return uint8(c >> RedShift) }

// G returns the green channel.
func (c Color) G() uint8 { return uint8(c >> GreenShift) }

// B returns the blue channel.
func (c Color) B() uint8 { return uint8(c >> BlueShift) }

// A returns the alpha channel.
func (c Color) A() uint8 { return uint8(c >> AlphaShift) }

// Hex returns the packed 0xAABBGGRR value. FromHex(c.Hex()) == c.
func (c Color) Hex() uint32 { return uint32(c) }

// WithAlpha returns the color with only the alpha channel replaced.
func (c Color) WithAlpha(a uint8) Color {
	return c&^AlphaMask | Color(a)<<AlphaShift
}

// WithAlphaF returns the color with the alpha channel replaced by a
// fraction in [0, 1], clamped before scaling.
func (c Color) WithAlphaF(a float64) Color {
	return c.WithAlpha(uint8(clamp255(a * 255)))
}

// Add returns the per-channel sum, saturating each channel at 255.
func (c Color) Add(rhs Color) Color {
	r := uint8(min(uint16(c.R())+uint16(rhs.R()), 255))
	g := uint8(min(uint16(c.G())+uint16(rhs.G()), 255))
	b := uint8(min(uint16(c.B())+uint16(rhs.B()), 255))
	a := uint8(min(uint16(c.A())+uint16(rhs.A()), 255))
	return NewColor(r, g, b, a)
}

// Sub returns the per-channel difference, saturating each channel at 0.
func (c Color) Sub(rhs Color) Color {
	r := uint8(max(int(c.R())-int(rhs.R()), 0))
	g := uint8(max(int(c.G())-int(rhs.G()), 0))
	b := uint8(max(int(c.B())-int(rhs.B()), 0))
	a := uint8(max(int(c.A())-int(rhs.A()), 0))
	return NewColor(r, g, b, a)
}

// Mul returns the normalized per-channel product (c*rhs)/255, the 8-bit
// approximation of multiplying channel fractions. The integer division
// truncates; the low bias is part of the contract, not rounded away.
func (c Color) Mul(rhs Color) Color {
	r := uint8(uint16(c.R()) * uint16(rhs.R()) / 255)
	g := uint8(uint16(c.G()) * uint16(rhs.G()) / 255)
	b := uint8(uint16(c.B()) * uint16(rhs.B()) / 255)
	a := uint8(uint16(c.A()) * uint16(rhs.A()) / 255)
	return NewColor(r, g, b, a)
}

// MulF scales every channel by s, clamping the floating product to
// [0, 255] before truncating back to 8 bits.
func (c Color) MulF(s float64) Color {
	r := uint8(clamp255(float64(c.R()) * s))
	g := uint8(clamp255(float64(c.G()) * s))
	b := uint8(clamp255(float64(c.B()) * s))
	a := uint8(clamp255(float64(c.A()) * s))
	return NewColor(r, g, b, a)
}

// DivF divides every channel by s. s must not be zero; the precondition
// is the caller's responsibility and is not checked.
func (c Color) DivF(s float64) Color {
	return c.MulF(1 / s)
}

// Less orders colors lexicographically by red, green, blue, then alpha.
// The ordering exists for deterministic sorting, not perceptual comparison.
func (c Color) Less(rhs Color) bool {
	if c.R() != rhs.R() {
		return c.R() < rhs.R()
	}
	if c.G() != rhs.G() {
		return c.G() < rhs.G()
	}
	if c.B() != rhs.B() {
		return c.B() < rhs.B()
	}
	return c.A() < rhs.A()
}

// NRGBA returns the color as a straight-alpha color.NRGBA.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R(), G: c.G(), B: c.B(), A: c.A()}
}

// RGBA implements the color.Color interface (alpha-premultiplied 16-bit).
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// Min returns the component-wise minimum of two colors.
func Min(c1, c2 Color) Color {
	return NewColor(
		min(c1.R(), c2.R()),
		min(c1.G(), c2.G()),
		min(c1.B(), c2.B()),
		min(c1.A(), c2.A()),
	)
}

// Max returns the component-wise maximum of two colors.
func Max(c1, c2 Color) Color {
	return NewColor(
		max(c1.R(), c2.R()),
		max(c1.G(), c2.G()),
		max(c1.B(), c2.B()),
		max(c1.A(), c2.A()),
	)
}

// Interpolate returns the weighted sum of three colors by a barycentric
// coordinate (b0, b1, b2), accumulated with fused multiply-adds.
// Channels are truncated when narrowing back to 8 bits, so results carry
// up to 1 LSB of bias toward zero. Weights are expected to sum to 1.
func Interpolate(c0, c1, c2 Color, b0, b1, b2 float64) Color {
	r := float64(c0.R()) * b0
	g := float64(c0.G()) * b0
	b := float64(c0.B()) * b0
	a := float64(c0.A()) * b0

	r = math.FMA(float64(c1.R()), b1, r)
	g = math.FMA(float64(c1.G()), b1, g)
	b = math.FMA(float64(c1.B()), b1, b)
	a = math.FMA(float64(c1.A()), b1, a)

	r = math.FMA(float64(c2.R()), b2, r)
	g = math.FMA(float64(c2.G()), b2, g)
	b = math.FMA(float64(c2.B()), b2, b)
	a = math.FMA(float64(c2.A()), b2, a)

	return NewColor(uint8(r), uint8(g), uint8(b), uint8(a))
}

// clamp01 restricts a value to [0, 1].
func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// clamp255 restricts a value to [0, 255].
func clamp255(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return x
}
