package gorast

import "math"

// DrawResult reports why a draw call did or did not touch the target.
// Draw failures are deliberate no-ops rather than errors: a per-frame
// render loop usually ignores the result, but it keeps the contract
// observable.
type DrawResult uint8

const (
	// DrawOK means pixels were written.
	DrawOK DrawResult = iota

	// DrawNoTarget means no color target is configured.
	DrawNoTarget

	// DrawNoSource means the sprite has no source surface.
	DrawNoSource

	// DrawDegenerate means clipping left a zero-area region.
	DrawDegenerate
)

// String returns a string representation of the draw result.
func (r DrawResult) String() string {
	switch r {
	case DrawOK:
		return "OK"
	case DrawNoTarget:
		return "NoTarget"
	case DrawNoSource:
		return "NoSource"
	case DrawDegenerate:
		return "DegenerateRegion"
	default:
		return "Unknown"
	}
}

// maxClipRect is the effectively-unclipped default clip rectangle.
func maxClipRect() AABB {
	return AABB{Min: Pt(0, 0), Max: Pt(math.MaxFloat64, math.MaxFloat64)}
}

// Rasterizer composites sprites onto a destination surface. Configure
// Target and Clip before issuing draw calls; the state persists across
// calls and is never reset automatically.
//
// The rasterizer never owns the target: the caller must keep the
// surface alive across every call that uses it. All operations run to
// completion on the calling goroutine; concurrent draws against the
// same target need external synchronization.
type Rasterizer struct {
	// Target is the surface draws write to. With a nil target every
	// operation is a safe no-op.
	Target *Surface

	// Clip restricts drawing to a region of the target. Defaults to
	// the maximal rectangle (unclipped).
	Clip AABB
}

// NewRasterizer returns a rasterizer with no target and an unclipped
// clip rectangle.
func NewRasterizer() *Rasterizer {
	return &Rasterizer{Clip: maxClipRect()}
}

// SetTarget sets the destination surface. The rasterizer borrows it.
func (r *Rasterizer) SetTarget(target *Surface) {
	r.Target = target
}

// SetClip restricts drawing to the given region of the target.
func (r *Rasterizer) SetClip(clip AABB) {
	r.Clip = clip
}

// ResetClip restores the maximal (unclipped) clip rectangle.
func (r *Rasterizer) ResetClip() {
	r.Clip = maxClipRect()
}

// Clear fills the entire target surface with c, ignoring the clip
// rectangle. No-op when no target is set.
func (r *Rasterizer) Clear(c Color) {
	if r.Target == nil {
		return
	}
	r.Target.Clear(c)
}

// DrawSprite composites the sprite onto the target with its top-left
// corner at (x, y). The sprite is clipped against both the target
// bounds and the clip rectangle; the source sampling offset shifts
// along with the clipped left/top edges so the visible pixels stay
// aligned with the unclipped placement. Every source pixel is tinted
// (per-channel multiply) before the blend operation runs.
//
// Only the target's pixel buffer is mutated, each covered pixel exactly
// once. All failure modes are silent no-ops reported through the
// DrawResult.
func (r *Rasterizer) DrawSprite(sp *Sprite, x, y int) DrawResult {
	dst := r.Target
	if dst == nil {
		return DrawNoTarget
	}
	if sp == nil || sp.Image == nil {
		return DrawNoSource
	}

	dstBox := dst.AABB().Clamped(r.Clip)
	if !dstBox.IsValid() {
		return DrawDegenerate
	}

	left := max(int(dstBox.Min.X), x)
	top := max(int(dstBox.Min.Y), y)
	right := min(int(dstBox.Max.X), x+sp.Width-1)
	bottom := min(int(dstBox.Max.Y), y+sp.Height-1)

	// Completely clipped away.
	if left >= right || top >= bottom {
		Logger().Debug("sprite fully clipped",
			"x", x, "y", y, "width", sp.Width, "height", sp.Height)
		return DrawDegenerate
	}

	// Shift the source origin by however far the edges moved.
	u0 := sp.U + (left - x)
	v0 := sp.V + (top - y)

	src := sp.Image.Pix()
	out := dst.Pix()
	srcW := sp.Image.Width()
	dstW := dst.Width()
	tint := sp.Tint
	blend := sp.Blend

	for py := top; py <= bottom; py++ {
		srcRow := (v0 + py - top) * srcW
		dstRow := py * dstW
		for px := left; px <= right; px++ {
			sc := src[srcRow+u0+px-left].Mul(tint)
			di := dstRow + px
			if blend != nil {
				out[di] = blend(sc, out[di])
			} else {
				out[di] = sc
			}
		}
	}
	return DrawOK
}
