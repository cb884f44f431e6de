package aabb

import "math"

// normalizeDirection returns the unit vector along (dx, dy), or ok=false
// if the vector is zero-length or non-finite. Mirrors
// original_source/src/queries.rs's query_in_direction_swept_internal,
// which rejects the same inputs before computing a movement vector.
func normalizeDirection(dx, dy float64) (ndx, ndy float64, ok bool) {
	lenSq := dx*dx + dy*dy
	if lenSq <= 0 || math.IsNaN(lenSq) || math.IsInf(lenSq, 0) {
		return 0, 0, false
	}
	l := math.Sqrt(lenSq)
	return dx / l, dy / l, true
}

// sweptRectBounds returns the axis-aligned hull of rect and rect moved by
// the unit direction (ndx, ndy) scaled by dist: the swept rectangle of
// spec.md §4.5.
func sweptRectBounds[T Number](rect Box[T], ndx, ndy, dist float64) (minX, minY, maxX, maxY float64) {
	movX, movY := ndx*dist, ndy*dist
	rMinX, rMinY := float64(rect.MinX), float64(rect.MinY)
	rMaxX, rMaxY := float64(rect.MaxX), float64(rect.MaxY)
	minX = math.Min(rMinX, rMinX+movX)
	maxX = math.Max(rMaxX, rMaxX+movX)
	minY = math.Min(rMinY, rMinY+movY)
	maxY = math.Max(rMaxY, rMaxY+movY)
	return
}

// boxIntersectsRect reports whether b intersects the float64 rectangle
// [minX,maxX] x [minY,maxY] — the same pointwise test as intersects, but
// against the swept rectangle's own (always-float64) coordinates rather
// than a second Box[T].
func boxIntersectsRect[T Number](b Box[T], minX, minY, maxX, maxY float64) bool {
	return float64(b.MinX) <= maxX && minX <= float64(b.MaxX) &&
		float64(b.MinY) <= maxY && minY <= float64(b.MaxY)
}

// axisOverlapInterval returns the range of t for which the interval
// [rLo, rHi] translated by dAxis*t overlaps [cLo, cHi]. ok is false when
// dAxis is zero and the (static) intervals never overlap.
func axisOverlapInterval(rLo, rHi, cLo, cHi, dAxis float64) (lo, hi float64, ok bool) {
	if dAxis == 0 {
		if rHi >= cLo && rLo <= cHi {
			return math.Inf(-1), math.Inf(1), true
		}
		return 0, 0, false
	}
	t1 := (cLo - rHi) / dAxis
	t2 := (cHi - rLo) / dAxis
	if t1 > t2 {
		t1, t2 = t2, t1
	}
	return t1, t2, true
}

// directionalBound computes the parametric distance t in [0, dist] at
// which the rectangle with bounds (rMinX..rMaxY), translated along the
// unit direction (ndx, ndy), first touches box b. ok is false if it
// never does within [0, dist]. Because b's interval only shrinks as the
// traversal descends from a node to its children, this is a valid
// (non-overestimating) lower bound for every box nested within b,
// exactly as sqDistPointBox's lower bound is for nearest-k.
func directionalBound[T Number](b Box[T], rMinX, rMinY, rMaxX, rMaxY, ndx, ndy, dist float64) (float64, bool) {
	loX, hiX, okX := axisOverlapInterval(rMinX, rMaxX, float64(b.MinX), float64(b.MaxX), ndx)
	if !okX {
		return 0, false
	}
	loY, hiY, okY := axisOverlapInterval(rMinY, rMaxY, float64(b.MinY), float64(b.MaxY), ndy)
	if !okY {
		return 0, false
	}
	lo := math.Max(loX, loY)
	hi := math.Min(hiX, hiY)
	lo = math.Max(lo, 0)
	hi = math.Min(hi, dist)
	if lo > hi {
		return 0, false
	}
	return lo, true
}
