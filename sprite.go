package gorast

// Sprite describes a rectangular region of a source surface together
// with the tint and blend operation to apply when it is composited.
// The rasterizer treats it as opaque data; the fields may be adjusted
// freely between draws.
type Sprite struct {
	// Image is the source surface. The sprite does not own it.
	Image *Surface

	// Tint multiplies every source pixel (per-channel normalized
	// product). White leaves the source untouched.
	Tint Color

	// Blend combines the tinted source pixel with the destination
	// pixel. A nil Blend takes the tinted source as-is.
	Blend BlendFunc

	// U, V is the top-left corner of the source region within Image.
	U, V int

	// Width, Height is the size of the source region.
	Width, Height int
}

// NewSprite returns a sprite covering all of img, untinted, with the
// default take-source blend.
func NewSprite(img *Surface) *Sprite {
	sp := &Sprite{Image: img, Tint: White}
	if img != nil {
		sp.Width = img.Width()
		sp.Height = img.Height()
	}
	return sp
}

// NewSpriteRegion returns a sprite covering the (u, v, w, h) region of
// img, untinted, with the default take-source blend.
func NewSpriteRegion(img *Surface, u, v, w, h int) *Sprite {
	return &Sprite{Image: img, Tint: White, U: u, V: v, Width: w, Height: h}
}
