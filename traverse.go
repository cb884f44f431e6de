package aabb

import (
	"container/heap"

	"github.com/tidwall/tinyqueue"
)

// descend runs the iterative stack-based range descent shared by most
// queries: starting at the root, nodes satisfying nodePred either recurse
// into their child slot range or, at level 0, are handed to leafPred;
// leaves that pass are handed to sink. sink returns false to stop early
// (used by the bounded(k) sink).
func (idx *Index[T]) descend(nodePred, leafPred func(Box[T]) bool, sink func(id uint32) bool) {
	if idx.numItems == 0 {
		return
	}

	type frame struct{ level, start, end int }
	top := idx.topLevel()
	stack := []frame{{level: top, start: idx.levelStart(top), end: idx.levelEnd(top)}}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for pos := f.start; pos < f.end; pos++ {
			box := idx.boxes[pos]
			if !nodePred(box) {
				continue
			}
			if f.level == 0 {
				if leafPred(box) {
					if !sink(idx.permutation[pos]) {
						return
					}
				}
				continue
			}
			local := pos - idx.levelStart(f.level)
			childLevel := f.level - 1
			childStart := idx.levelStart(childLevel) + local*idx.NodeSize
			childEnd := min(childStart+idx.NodeSize, idx.levelEnd(childLevel))
			stack = append(stack, frame{level: childLevel, start: childStart, end: childEnd})
		}
	}
}

// appendSink returns every matching leaf id, unbounded.
func appendSink(out *[]uint32) func(uint32) bool {
	return func(id uint32) bool {
		*out = append(*out, id)
		return true
	}
}

// boundedSink stops after k ids have been emitted.
func boundedSink(out *[]uint32, k int) func(uint32) bool {
	return func(id uint32) bool {
		*out = append(*out, id)
		return len(*out) < k
	}
}

// frontierItem is a tinyqueue entry in the best-first traversal's
// min-heap frontier: a (level, slot) pair with its priority key (a
// squared distance for nearest-k, a parametric t for directional-k).
type frontierItem struct {
	level, pos int
	key        float64
}

func (it *frontierItem) Less(than tinyqueue.Item) bool {
	return it.key < than.(*frontierItem).key
}

// candidate is an entry in the bounded max-heap of the k best results
// found so far; the heap's root is always the current worst of the k.
type candidate struct {
	pos int
	key float64
}

type maxHeap []*candidate

func (h maxHeap) Len() int            { return len(h) }
func (h maxHeap) Less(i, j int) bool  { return h[i].key > h[j].key }
func (h maxHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *maxHeap) Push(x interface{}) { *h = append(*h, x.(*candidate)) }
func (h *maxHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// bestFirstK runs the best-first traversal described in spec.md §4.4: a
// tinyqueue min-heap frontier keyed by bound's lower-bound key, expanding
// inner nodes into their children and feeding leaves into a bounded
// max-heap of the k best. bound returns (key, false) to prune a node (and
// everything beneath it) outright — used by directional queries to
// reject nodes the swept region never reaches.
//
// Termination is guaranteed: every pop either yields a candidate or
// strictly decomposes a node into at most NodeSize lower-level children,
// and once the result heap holds k entries the frontier's monotone
// non-decreasing keys let the loop stop as soon as the best remaining key
// can no longer beat the current worst kept.
func (idx *Index[T]) bestFirstK(k int, bound func(Box[T]) (float64, bool)) []uint32 {
	if k <= 0 || idx.numItems == 0 {
		return nil
	}

	top := idx.topLevel()
	rootPos := idx.levelStart(top)
	frontier := tinyqueue.New(nil)
	if key, ok := bound(idx.boxes[rootPos]); ok {
		frontier.Push(&frontierItem{level: top, pos: rootPos, key: key})
	}

	results := &maxHeap{}
	for frontier.Len() > 0 {
		item := frontier.Pop().(*frontierItem)
		if results.Len() >= k && item.key >= (*results)[0].key {
			break
		}

		if item.level == 0 {
			if results.Len() < k {
				heap.Push(results, &candidate{pos: item.pos, key: item.key})
			} else if item.key < (*results)[0].key {
				heap.Pop(results)
				heap.Push(results, &candidate{pos: item.pos, key: item.key})
			}
			continue
		}

		local := item.pos - idx.levelStart(item.level)
		childLevel := item.level - 1
		childStart := idx.levelStart(childLevel) + local*idx.NodeSize
		childEnd := min(childStart+idx.NodeSize, idx.levelEnd(childLevel))
		for p := childStart; p < childEnd; p++ {
			if key, ok := bound(idx.boxes[p]); ok {
				frontier.Push(&frontierItem{level: childLevel, pos: p, key: key})
			}
		}
	}

	n := results.Len()
	out := make([]uint32, n)
	for i := n - 1; i >= 0; i-- {
		c := heap.Pop(results).(*candidate)
		out[i] = idx.permutation[c.pos]
	}
	return out
}
