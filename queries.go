package aabb

// Every query below clears results on entry (via the sink/slice reset),
// so a caller can reuse the same backing slice across many queries
// safely, even when a query returns early.

// QueryIntersecting appends the ids of every box intersecting q.
func (idx *Index[T]) QueryIntersecting(q Box[T], results *[]uint32) {
	idx.requireBuilt()
	*results = (*results)[:0]
	pred := func(b Box[T]) bool { return intersects(b, q) }
	idx.descend(pred, pred, appendSink(results))
}

// QueryIntersectingK appends up to k ids of boxes intersecting q,
// stopping as soon as k have been found.
func (idx *Index[T]) QueryIntersectingK(q Box[T], k int, results *[]uint32) {
	idx.requireBuilt()
	*results = (*results)[:0]
	if k <= 0 {
		return
	}
	pred := func(b Box[T]) bool { return intersects(b, q) }
	idx.descend(pred, pred, boundedSink(results, k))
}

// QueryIntersectingID appends the ids of every box intersecting item id's
// own box, excluding id itself.
func (idx *Index[T]) QueryIntersectingID(id int, results *[]uint32) {
	idx.requireBuilt()
	*results = (*results)[:0]
	self := idx.Get(id)
	selfID := uint32(id)
	pred := func(b Box[T]) bool { return intersects(b, self) }
	idx.descend(pred, pred, func(found uint32) bool {
		if found != selfID {
			*results = append(*results, found)
		}
		return true
	})
}

// QueryPoint appends the ids of every box containing (x, y).
func (idx *Index[T]) QueryPoint(x, y T, results *[]uint32) {
	idx.requireBuilt()
	*results = (*results)[:0]
	pred := func(b Box[T]) bool { return containsPoint(b, x, y) }
	idx.descend(pred, pred, appendSink(results))
}

// QueryContain appends the ids of every box that fully encloses q.
func (idx *Index[T]) QueryContain(q Box[T], results *[]uint32) {
	idx.requireBuilt()
	*results = (*results)[:0]
	pred := func(b Box[T]) bool { return contains(b, q) }
	idx.descend(pred, pred, appendSink(results))
}

// QueryContainedWithin appends the ids of every box fully enclosed by q.
func (idx *Index[T]) QueryContainedWithin(q Box[T], results *[]uint32) {
	idx.requireBuilt()
	*results = (*results)[:0]
	nodePred := func(b Box[T]) bool { return intersects(b, q) }
	leafPred := func(b Box[T]) bool { return contains(q, b) }
	idx.descend(nodePred, leafPred, appendSink(results))
}

// QueryNearestK appends the ids of the k boxes nearest to (x, y),
// ascending by squared distance.
func (idx *Index[T]) QueryNearestK(x, y T, k int, results *[]uint32) {
	idx.requireBuilt()
	bound := func(b Box[T]) (float64, bool) { return sqDistPointBox(x, y, b), true }
	*results = append((*results)[:0], idx.bestFirstK(k, bound)...)
}

// QueryNearestKPoints is QueryNearestK specialized for degenerate
// (point) leaves; the squared-distance math is identical, since a point
// box's min/max coincide, but the name documents the leaf-degeneracy
// assumption callers are relying on.
func (idx *Index[T]) QueryNearestKPoints(x, y T, k int, results *[]uint32) {
	idx.QueryNearestK(x, y, k, results)
}

// QueryCircle appends the ids of every box within radius r of (cx, cy).
func (idx *Index[T]) QueryCircle(cx, cy T, r float64, results *[]uint32) {
	idx.requireBuilt()
	*results = (*results)[:0]
	r2 := r * r
	pred := func(b Box[T]) bool { return sqDistPointBox(cx, cy, b) <= r2 }
	idx.descend(pred, pred, appendSink(results))
}

// QueryCirclePoints appends the ids of every point within radius r of
// (cx, cy). Results are unsorted, matching the >=0.7 upstream behavior
// spec.md §9 pins explicitly (see DESIGN.md).
func (idx *Index[T]) QueryCirclePoints(cx, cy T, r float64, results *[]uint32) {
	idx.QueryCircle(cx, cy, r, results)
}

// QueryInDirection appends the ids of every box the rectangle rect
// sweeps through when translated a distance of up to dist along the
// direction (dx, dy); only the direction of (dx, dy) matters, not its
// length. An invalid direction (zero-length or non-finite) yields an
// empty result.
func (idx *Index[T]) QueryInDirection(rect Box[T], dx, dy, dist float64, results *[]uint32) {
	idx.requireBuilt()
	*results = (*results)[:0]
	if dist < 0 {
		return
	}
	ndx, ndy, ok := normalizeDirection(dx, dy)
	if !ok {
		return
	}
	minX, minY, maxX, maxY := sweptRectBounds(rect, ndx, ndy, dist)
	pred := func(b Box[T]) bool { return boxIntersectsRect(b, minX, minY, maxX, maxY) }
	idx.descend(pred, pred, appendSink(results))
}

// QueryInDirectionK appends the ids of the k boxes rect first touches
// when translated a distance of up to dist along the direction (dx, dy),
// ascending by the distance t along that direction at which each is
// first touched.
func (idx *Index[T]) QueryInDirectionK(rect Box[T], dx, dy, dist float64, k int, results *[]uint32) {
	idx.requireBuilt()
	if dist < 0 {
		*results = (*results)[:0]
		return
	}
	ndx, ndy, ok := normalizeDirection(dx, dy)
	if !ok {
		*results = (*results)[:0]
		return
	}
	rMinX, rMinY := float64(rect.MinX), float64(rect.MinY)
	rMaxX, rMaxY := float64(rect.MaxX), float64(rect.MaxY)
	bound := func(b Box[T]) (float64, bool) {
		return directionalBound(b, rMinX, rMinY, rMaxX, rMaxY, ndx, ndy, dist)
	}
	*results = append((*results)[:0], idx.bestFirstK(k, bound)...)
}
