// Package gorast is a 2D software compositing engine: a packed RGBA
// color type with saturating channel arithmetic, axis-aligned bounding
// box math, and a rasterizer that blits sprite regions onto a
// destination surface with clipping, tinting, and pluggable blending.
//
// Everything runs on the CPU on the calling goroutine; there is no GPU
// path, no internal concurrency, and no I/O outside the image
// encode/decode helpers.
//
// # Quick Start
//
//	import "github.com/gorast/gorast"
//
//	dst := gorast.NewSurface(320, 240)
//
//	ras := gorast.NewRasterizer()
//	ras.SetTarget(dst)
//	ras.Clear(gorast.CornflowerBlue)
//
//	src, _ := gorast.Load("player.png")
//	sp := gorast.NewSprite(src)
//	sp.Blend = gorast.BlendAlpha
//	ras.DrawSprite(sp, 100, 60)
//
//	_ = dst.SavePNG("frame.png")
//
// # Pixel Format
//
// A Color packs four 8-bit channels into one uint32 with red in the
// lowest byte and alpha in the highest (0xAABBGGRR). Surfaces store
// colors row-major with a stride equal to their width; any consumer
// reading raw pixel memory must use this exact layout.
//
// # Coordinate System
//
// Origin (0, 0) at the top-left, x increasing right, y increasing down.
// Bounding boxes derived from viewports and surfaces use inclusive
// maxima: a 10x10 surface spans (0, 0) to (9, 9).
//
// # Windowing
//
// Window creation, event polling, and presentation are out of scope.
// The examples directory shows the surface presented through ebiten;
// any host that accepts an RGBA pixel buffer works the same way.
package gorast
