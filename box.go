package aabb

import "math"

// Number is the set of coordinate domains the index supports: 64-bit
// floating point and 32-bit signed integer.
type Number interface {
	float64 | int32
}

// Box is an axis-aligned bounding box with min <= max on each axis. A
// point is a degenerate Box with MinX == MaxX and MinY == MaxY.
type Box[T Number] struct {
	MinX, MinY, MaxX, MaxY T
}

// invertedBox returns a Box whose min/max are the most extreme values
// representable by T, suitable as the seed for a running union.
func invertedBox[T Number]() Box[T] {
	var b Box[T]
	switch any(b.MinX).(type) {
	case float64:
		pos := any(math.Inf(1)).(T)
		neg := any(math.Inf(-1)).(T)
		b.MinX, b.MinY = pos, pos
		b.MaxX, b.MaxY = neg, neg
	case int32:
		hi := any(int32(math.MaxInt32)).(T)
		lo := any(int32(math.MinInt32)).(T)
		b.MinX, b.MinY = hi, hi
		b.MaxX, b.MaxY = lo, lo
	}
	return b
}

// union grows a to cover b, in place.
func (a *Box[T]) union(b Box[T]) {
	a.MinX = min(a.MinX, b.MinX)
	a.MinY = min(a.MinY, b.MinY)
	a.MaxX = max(a.MaxX, b.MaxX)
	a.MaxY = max(a.MaxY, b.MaxY)
}

// intersects reports whether a and b share at least one point.
func intersects[T Number](a, b Box[T]) bool {
	return a.MinX <= b.MaxX && b.MinX <= a.MaxX && a.MinY <= b.MaxY && b.MinY <= a.MaxY
}

// contains reports whether outer fully encloses inner.
func contains[T Number](outer, inner Box[T]) bool {
	return outer.MinX <= inner.MinX && outer.MinY <= inner.MinY &&
		outer.MaxX >= inner.MaxX && outer.MaxY >= inner.MaxY
}

// containsPoint reports whether (x, y) falls within b, inclusive of the
// boundary.
func containsPoint[T Number](b Box[T], x, y T) bool {
	return b.MinX <= x && x <= b.MaxX && b.MinY <= y && y <= b.MaxY
}

// axisDist returns the distance from v to the [lo, hi] interval along one
// axis, widened to float64; zero when v falls inside the interval.
func axisDist[T Number](v, lo, hi T) float64 {
	if v < lo {
		return float64(lo) - float64(v)
	}
	if v > hi {
		return float64(v) - float64(hi)
	}
	return 0
}

// sqDistPointBox returns the squared distance from point (x, y) to box b,
// zero if the point lies inside b. Degenerate (point) boxes make this
// the exact squared point-to-point distance as well.
func sqDistPointBox[T Number](x, y T, b Box[T]) float64 {
	dx := axisDist(x, b.MinX, b.MaxX)
	dy := axisDist(y, b.MinY, b.MaxY)
	return dx*dx + dy*dy
}

// center returns the box's centroid, widened to float64 so it composes
// with the Hilbert grid normalization regardless of T.
func (b Box[T]) center() (float64, float64) {
	return (float64(b.MinX) + float64(b.MaxX)) / 2, (float64(b.MinY) + float64(b.MaxY)) / 2
}
