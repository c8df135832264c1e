package gorast

// Viewport describes a rectangular region of a render target together
// with its depth range. It is a plain data record: nothing validates the
// depth ordering, callers are trusted to keep MinDepth <= MaxDepth.
type Viewport struct {
	X        float64 // X position of the left side of the viewport.
	Y        float64 // Y position of the top of the viewport.
	Width    float64 // Width of the viewport in pixels.
	Height   float64 // Height of the viewport in pixels.
	MinDepth float64 // Minimum depth of the viewport in the range [0, 1].
	MaxDepth float64 // Maximum depth of the viewport in the range [0, 1].
}

// NewViewport returns a viewport at (x, y) of the given size with the
// default depth range [0, 1].
func NewViewport(x, y, width, height float64) Viewport {
	return Viewport{X: x, Y: y, Width: width, Height: height, MinDepth: 0, MaxDepth: 1}
}
