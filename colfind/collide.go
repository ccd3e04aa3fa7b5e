package colfind

import (
	"github.com/katalvlaran/broccoli/oned"
	"github.com/katalvlaran/broccoli/pmut"
	"github.com/katalvlaran/broccoli/rect"
	"github.com/katalvlaran/broccoli/tree"
)

// indexed is a throwaway Elem wrapping a position into some pmut.Slice,
// letting the index-free oned sweep algorithms (which operate on plain
// T values) be reused here, where a PMut reference back into the tree must
// be recovered for the collision callback.
type indexed[N rect.Num] struct {
	i int
	r rect.Rectangle[N]
}

func (e indexed[N]) Rect() rect.Rectangle[N] { return e.r }

func toIndexed[N rect.Num, T rect.Elem[N]](s pmut.Slice[N, T]) []indexed[N] {
	n := s.Len()
	out := make([]indexed[N], n)
	for i := 0; i < n; i++ {
		out[i] = indexed[N]{i: i, r: s.At(i).Rect()}
	}
	return out
}

// FindCollidingPairs invokes cb once for every unordered pair of elements in
// t whose AABBs intersect, each time with protected mutable references to
// both. cb must not retain either reference past its own return.
func FindCollidingPairs[N rect.Num, T rect.Elem[N]](t *tree.Tree[N, T], cb func(a, b pmut.PMut[N, T])) {
	collideAndNext[N, T](t.VistrMut(), rect.AxisX, t.Sorter(), cb)
}

func collideAndNext[N rect.Num, T rect.Elem[N]](v tree.VistrMut[N, T], axis rect.Axis, sorter tree.Sorter, cb func(a, b pmut.PMut[N, T])) {
	node, left, right, hasChildren := v.Next()
	if hasChildren {
		handleChildren[N, T](node.Cont, axis, node.Range, left, axis.Next(), sorter, cb)
		handleChildren[N, T](node.Cont, axis, node.Range, right, axis.Next(), sorter, cb)
	}
	selfPairs[N, T](node.Range, axis.Next(), sorter, cb)
	if hasChildren {
		collideAndNext[N, T](left, axis.Next(), sorter, cb)
		collideAndNext[N, T](right, axis.Next(), sorter, cb)
	}
}

// selfPairs handles the pairs entirely within one node's own range: every
// element in an interior node straddles that node's divider on axis, so any
// two of them already overlap there — find_2d only needs to check the
// perpendicular axis (I2, I4). perpAxis is the axis node.Range is sorted on
// when sorter == Sorted.
func selfPairs[N rect.Num, T rect.Elem[N]](s pmut.Slice[N, T], perpAxis rect.Axis, sorter tree.Sorter, cb func(a, b pmut.PMut[N, T])) {
	n := s.Len()
	if n < 2 {
		return
	}
	if sorter == tree.Unsorted {
		for i := 0; i < n; i++ {
			a := s.At(i)
			for j := i + 1; j < n; j++ {
				b := s.At(j)
				if a.Rect().Intersects(b.Rect()) {
					cb(a, b)
				}
			}
		}
		return
	}
	idx := toIndexed[N, T](s)
	var active oned.PreVec[indexed[N]]
	oned.Find2D[N, indexed[N]](idx, perpAxis, &active, func(a, b indexed[N]) {
		cb(s.At(a.i), s.At(b.i))
	})
}

// handleChildren pairs the anchor node A's range against every descendant D
// reachable from v, recursing into D's children (skipping whichever
// grandchild A's cont provably cannot reach, when A and D share an axis).
func handleChildren[N rect.Num, T rect.Elem[N]](
	anchorCont rect.Range[N], anchorAxis rect.Axis,
	anchorRange pmut.Slice[N, T],
	v tree.VistrMut[N, T], dAxis rect.Axis, sorter tree.Sorter,
	cb func(a, b pmut.PMut[N, T]),
) {
	node, left, right, hasChildren := v.Next()

	pairRanges[N, T](anchorRange, anchorAxis, node.Range, dAxis, sorter, cb)

	if !hasChildren {
		return
	}

	nextAxis := dAxis.Next()
	if anchorAxis == dAxis && node.Div != nil {
		dv := *node.Div
		switch {
		case anchorCont.End < dv:
			handleChildren[N, T](anchorCont, anchorAxis, anchorRange, left, nextAxis, sorter, cb)
			return
		case anchorCont.Start > dv:
			handleChildren[N, T](anchorCont, anchorAxis, anchorRange, right, nextAxis, sorter, cb)
			return
		}
	}
	handleChildren[N, T](anchorCont, anchorAxis, anchorRange, left, nextAxis, sorter, cb)
	handleChildren[N, T](anchorCont, anchorAxis, anchorRange, right, nextAxis, sorter, cb)
}

// pairRanges emits every colliding pair between the anchor's range and one
// descendant node's range. When both share an axis, their ranges both
// straddle their own (same-axis) dividers and are each sorted by the
// perpendicular axis, so find_parallel_2d on that perpendicular axis
// suffices. When the axes differ, the descendant's range is sorted by the
// anchor's own axis (its perpendicular axis), so find_perp_2d applies
// directly with the anchor as the unsorted outer list.
func pairRanges[N rect.Num, T rect.Elem[N]](
	anchorRange pmut.Slice[N, T], anchorAxis rect.Axis,
	dRange pmut.Slice[N, T], dAxis rect.Axis,
	sorter tree.Sorter,
	cb func(a, b pmut.PMut[N, T]),
) {
	if anchorRange.Len() == 0 || dRange.Len() == 0 {
		return
	}
	if sorter == tree.Unsorted {
		for i := 0; i < anchorRange.Len(); i++ {
			a := anchorRange.At(i)
			for j := 0; j < dRange.Len(); j++ {
				b := dRange.At(j)
				if a.Rect().Intersects(b.Rect()) {
					cb(a, b)
				}
			}
		}
		return
	}

	aIdx := toIndexed[N, T](anchorRange)
	dIdx := toIndexed[N, T](dRange)

	if anchorAxis == dAxis {
		var activeA, activeD oned.PreVec[indexed[N]]
		oned.FindParallel2D[N, indexed[N]](aIdx, dIdx, anchorAxis.Next(), &activeA, &activeD, func(a, d indexed[N]) {
			cb(anchorRange.At(a.i), dRange.At(d.i))
		})
		return
	}

	oned.FindPerp2D[N, indexed[N]](aIdx, dIdx, anchorAxis, func(a, d indexed[N]) {
		cb(anchorRange.At(a.i), dRange.At(d.i))
	})
}
