package gorast

import "math"

// AABB is an axis-aligned bounding box described by its min and max
// corners. An AABB is valid when every Min component is strictly less
// than the corresponding Max component; operations such as Clamped can
// produce invalid boxes, and callers are expected to check IsValid
// before relying on the result.
type AABB struct {
	Min, Max Point
}

// EmptyAABB returns an inverted box that grows to fit whatever is added
// to it with Expand.
func EmptyAABB() AABB {
	return AABB{
		Min: Pt(math.MaxFloat64, math.MaxFloat64),
		Max: Pt(-math.MaxFloat64, -math.MaxFloat64),
	}
}

// NewAABB returns the bounding box of the given points: the element-wise
// min and max across all of them. With no points it returns EmptyAABB.
func NewAABB(points ...Point) AABB {
	box := EmptyAABB()
	for _, p := range points {
		box = box.Expand(p)
	}
	return box
}

// AABBFromViewport returns the inclusive pixel bounds of a viewport:
// Min is the origin and Max is origin + size - 1. The inclusive-max
// convention is what the rasterizer's clipping arithmetic relies on.
func AABBFromViewport(v Viewport) AABB {
	return AABB{
		Min: Pt(v.X, v.Y),
		Max: Pt(v.X+v.Width-1, v.Y+v.Height-1),
	}
}

// IsValid reports whether the min corner is strictly less than the max
// corner on both axes.
func (a AABB) IsValid() bool {
	return a.Min.X < a.Max.X && a.Min.Y < a.Max.Y
}

// Left returns the minimum x coordinate.
func (a AABB) Left() float64 { return a.Min.X }

// Right returns the maximum x coordinate.
func (a AABB) Right() float64 { return a.Max.X }

// Top returns the minimum y coordinate.
func (a AABB) Top() float64 { return a.Min.Y }

// Bottom returns the maximum y coordinate.
func (a AABB) Bottom() float64 { return a.Max.Y }

// Center returns the center point of the box.
func (a AABB) Center() Point {
	return a.Min.Add(a.Max).Mul(0.5)
}

// Width returns the extent along the x axis.
func (a AABB) Width() float64 { return a.Max.X - a.Min.X }

// Height returns the extent along the y axis.
func (a AABB) Height() float64 { return a.Max.Y - a.Min.Y }

// Area returns width times height.
func (a AABB) Area() float64 { return a.Width() * a.Height() }

// Size returns the vector from the min to the max corner.
func (a AABB) Size() Point { return a.Max.Sub(a.Min) }

// Extent returns half the size of the box.
func (a AABB) Extent() Point { return a.Size().Mul(0.5) }

// Translate returns the box shifted by d.
func (a AABB) Translate(d Point) AABB {
	return AABB{Min: a.Min.Add(d), Max: a.Max.Add(d)}
}

// Expand returns the box grown to include the point p.
func (a AABB) Expand(p Point) AABB {
	return AABB{Min: a.Min.Min(p), Max: a.Max.Max(p)}
}

// Union returns the box grown to include another box.
func (a AABB) Union(b AABB) AABB {
	return AABB{Min: a.Min.Min(b.Min), Max: a.Max.Max(b.Max)}
}

// Clamped intersects this box with another by taking the per-axis max of
// the mins and min of the maxes. The result can be invalid when the
// boxes are disjoint; check IsValid before using it.
func (a AABB) Clamped(b AABB) AABB {
	return AABB{Min: a.Min.Max(b.Min), Max: a.Max.Min(b.Max)}
}

// Intersects reports whether the two boxes intersect. The comparison is
// closed-interval, so boxes that merely touch at an edge count as
// intersecting.
func (a AABB) Intersects(b AABB) bool {
	return a.Min.X <= b.Max.X && a.Min.Y <= b.Max.Y &&
		a.Max.X >= b.Min.X && a.Max.Y >= b.Min.Y
}

// Contains reports whether p lies on or inside the box.
func (a AABB) Contains(p Point) bool {
	return p.X >= a.Min.X && p.Y >= a.Min.Y &&
		p.X <= a.Max.X && p.Y <= a.Max.Y
}

// ClosestPoint returns the point on or inside the box closest to p.
// If p is inside the box, p itself is returned.
func (a AABB) ClosestPoint(p Point) Point {
	return p.Clamp(a.Min, a.Max)
}

// Overlap returns the minimum-translation push-out between two
// physically overlapping boxes, along whichever axis has the smaller
// penetration depth and signed by comparing the box centers. The second
// return value is false when the boxes do not overlap.
func (a AABB) Overlap(b AABB) (Point, bool) {
	depth := a.Max.Min(b.Max).Sub(a.Min.Max(b.Min))
	if depth.X <= 0 || depth.Y <= 0 {
		return Point{}, false
	}

	if depth.X < depth.Y {
		if a.Center().X < b.Center().X {
			return Pt(a.Max.X-b.Min.X, 0), true
		}
		return Pt(a.Min.X-b.Max.X, 0), true
	}
	if a.Center().Y < b.Center().Y {
		return Pt(0, a.Max.Y-b.Min.Y), true
	}
	return Pt(0, a.Min.Y-b.Max.Y), true
}
