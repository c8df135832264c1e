// Package imath provides integer and scalar math helpers for pixel
// coordinate addressing: clamping, floor division/modulo that behave
// correctly for negative operands, and reflected tiling.
package imath

// number covers the types the helpers operate on.
type number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Clamp restricts v to the range [lo, hi].
func Clamp[T number](v, lo, hi T) T {
	return min(max(v, lo), hi)
}

// FloorDiv returns x/d rounded toward negative infinity.
// The builtin division truncates toward zero, which is wrong for tiling
// negative coordinates.
func FloorDiv(x, d int) int {
	q := x / d
	if x%d != 0 && (x < 0) != (d < 0) {
		q--
	}
	return q
}

// FloorMod returns x modulo d with the result taking the sign of d,
// so for d > 0 the result is always in [0, d). FloorMod(-1, 4) == 3.
func FloorMod(x, d int) int {
	m := x % d
	if m != 0 && (m < 0) != (d < 0) {
		m += d
	}
	return m
}

// FloorToInt returns the largest integer not greater than x.
func FloorToInt(x float64) int {
	i := int(x)
	if x < float64(i) {
		i--
	}
	return i
}

// Mirror maps coord into [0, size) by reflecting at the boundaries,
// producing a back-and-forth tiling. Odd tiles run in reverse so that
// edge pixels are not doubled across an entire period.
func Mirror(coord, size int) int {
	tile := FloorDiv(coord, size)
	pos := coord - tile*size
	if tile&1 != 0 {
		pos = size - 1 - pos
	}
	return pos
}
