package aabb

// Build freezes the index: it Hilbert-sorts the staged items, lays out
// the packed buffer (leaves, then one inner-node level per tree level,
// then the id permutation), and reduces bottom-up to a single root MBR.
//
// A second call is a no-op — see DESIGN.md for why this, rather than a
// panic, was chosen for the spec's open question on repeated Build calls.
func (idx *Index[T]) Build() {
	if idx.built {
		return
	}
	idx.built = true
	idx.numItems = len(idx.staged)

	if idx.NodeSize < 2 {
		idx.NodeSize = 2
	}
	n := idx.numItems
	if n == 0 {
		idx.levelBounds = []int{0}
		idx.staged = nil
		return
	}

	idx.levelBounds = computeLevelBounds(n, idx.NodeSize)
	total := idx.levelBounds[len(idx.levelBounds)-1]

	order := idx.hilbertOrder()

	idx.boxes = make([]Box[T], total, total)
	idx.permutation = make([]uint32, n)
	idx.posOf = make([]uint32, n)
	for pos, origID := range order {
		idx.boxes[pos] = idx.staged[origID]
		idx.permutation[pos] = origID
		idx.posOf[origID] = uint32(pos)
	}
	idx.staged = nil

	idx.reduceLevels()
}

// computeLevelBounds returns, for node-size b and n leaves, the
// cumulative end index of each level: levelBounds[0] == n (end of the
// leaf level), and levelBounds[len-1] == total node count (end of the
// single root).
func computeLevelBounds(n, b int) []int {
	bounds := make([]int, 0, 8)
	count := n
	total := n
	bounds = append(bounds, total)
	for count > 1 {
		count = (count + b - 1) / b
		total += count
		bounds = append(bounds, total)
	}
	return bounds
}

// hilbertOrder computes each staged box's Hilbert index against the root
// MBR and returns the sorted-position -> original-id permutation, with
// ties broken by original id so that repeated builds from the same
// inputs are bit-identical.
func (idx *Index[T]) hilbertOrder() []uint32 {
	n := len(idx.staged)
	width := float64(idx.bounds.MaxX) - float64(idx.bounds.MinX)
	height := float64(idx.bounds.MaxY) - float64(idx.bounds.MinY)
	minX, minY := float64(idx.bounds.MinX), float64(idx.bounds.MinY)

	// key packs the 32-bit Hilbert value into the high bits and the
	// original id into the low bits, so a plain numeric sort ties by id.
	keys := make([]uint64, n)
	for i, box := range idx.staged {
		cx, cy := box.center()
		gx := normalizeAxis(cx, minX, width)
		gy := normalizeAxis(cy, minY, height)
		hv := hilbertXYToIndex(gx, gy)
		keys[i] = uint64(hv)<<32 | uint64(uint32(i))
	}
	if n > 1 {
		quicksortKeys(keys, 0, n-1)
	}

	order := make([]uint32, n)
	for i, k := range keys {
		order[i] = uint32(k & 0xFFFFFFFF)
	}
	return order
}

// quicksortKeys sorts keys in place using median-of-three pivoting, the
// same partition scheme the reference implementation's build() uses for
// its Hilbert-value sort.
func quicksortKeys(keys []uint64, left, right int) {
	if left >= right {
		return
	}
	pivot := medianOfThree(keys, left, right)
	i, j := left-1, right+1
	for {
		for {
			i++
			if keys[i] >= pivot {
				break
			}
		}
		for {
			j--
			if keys[j] <= pivot {
				break
			}
		}
		if i >= j {
			break
		}
		keys[i], keys[j] = keys[j], keys[i]
	}
	if j > left {
		quicksortKeys(keys, left, j)
	}
	if j+1 < right {
		quicksortKeys(keys, j+1, right)
	}
}

func medianOfThree(keys []uint64, left, right int) uint64 {
	mid := (left + right) / 2
	a, b, c := keys[left], keys[mid], keys[right]
	x := max(a, b)
	switch {
	case c > x:
		return x
	case x == a:
		return max(b, c)
	case x == b:
		return max(a, c)
	default:
		return c
	}
}

// reduceLevels computes each inner node's MBR as the tight union of its
// up-to-NodeSize children, level by level, bottom-up. Parent/child
// slot ranges are derived by pure arithmetic from levelBounds and
// NodeSize — the packed layout carries no child pointers.
func (idx *Index[T]) reduceLevels() {
	b := idx.NodeSize
	for level := 1; level <= idx.topLevel(); level++ {
		childLevel := level - 1
		childLo := idx.levelStart(childLevel)
		childCount := idx.levelEnd(childLevel) - childLo
		parentLo := idx.levelStart(level)
		parentCount := idx.levelEnd(level) - parentLo

		for j := 0; j < parentCount; j++ {
			lo := j * b
			hi := min(lo+b, childCount)
			node := invertedBox[T]()
			for c := lo; c < hi; c++ {
				node.union(idx.boxes[childLo+c])
			}
			idx.boxes[parentLo+j] = node
		}
	}
}
