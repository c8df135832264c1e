package gorast

// BlendFunc combines a (tinted) source pixel with the existing
// destination pixel and returns the composited color. Implementations
// must be pure: the rasterizer calls them once per covered pixel.
type BlendFunc func(src, dst Color) Color

// BlendCopy takes the source pixel unchanged. It is equivalent to a nil
// blend on a Sprite but handy when a non-nil function is required.
func BlendCopy(src, _ Color) Color {
	return src
}

// BlendAlpha composites src over dst weighted by the source alpha
// (straight, non-premultiplied alpha).
func BlendAlpha(src, dst Color) Color {
	a := uint32(src.A())
	switch a {
	case 255:
		return src
	case 0:
		return dst
	}
	inv := 255 - a

	r := uint8((uint32(src.R())*a + uint32(dst.R())*inv) / 255)
	g := uint8((uint32(src.G())*a + uint32(dst.G())*inv) / 255)
	b := uint8((uint32(src.B())*a + uint32(dst.B())*inv) / 255)
	outA := uint8(a + uint32(dst.A())*inv/255)

	return NewColor(r, g, b, outA)
}

// BlendAdditive adds src to dst, saturating every channel at 255.
func BlendAdditive(src, dst Color) Color {
	return dst.Add(src)
}

// BlendSubtractive subtracts src from dst, saturating every channel at 0.
func BlendSubtractive(src, dst Color) Color {
	return dst.Sub(src)
}

// BlendMultiply multiplies src and dst per channel (normalized product).
func BlendMultiply(src, dst Color) Color {
	return src.Mul(dst)
}

// BlendScreen inverts both inputs, multiplies, and inverts the result,
// lightening the destination.
func BlendScreen(src, dst Color) Color {
	r := uint8(255 - (255-uint16(src.R()))*(255-uint16(dst.R()))/255)
	g := uint8(255 - (255-uint16(src.G()))*(255-uint16(dst.G()))/255)
	b := uint8(255 - (255-uint16(src.B()))*(255-uint16(dst.B()))/255)
	a := uint8(255 - (255-uint16(src.A()))*(255-uint16(dst.A()))/255)
	return NewColor(r, g, b, a)
}
