package oned

import "github.com/katalvlaran/broccoli/rect"

// activeSelfPrunePeriod is how often FindParallel2D prunes the active list
// belonging to whichever side is advancing, independent of the other side's
// progress. Without this, an input where one slice is walked alone for a
// long stretch (all of A's elements sort before any of B's) lets that
// side's active list grow unbounded and degrades the whole call to O(n^2).
const activeSelfPrunePeriod = 100

// FindParallel2D merge-walks a and b, each already sorted ascending by
// start on axis, and calls cb once for every pair (one from a, one from b)
// whose rectangles intersect. It is the two-slice analogue of Find2D, used
// by the collision query's dual descent to pair an anchor node's elements
// against a same-axis descendant's elements.
//
// activeA and activeB are scratch space reused across calls.
func FindParallel2D[N rect.Num, T rect.Elem[N]](a, b []T, axis rect.Axis, activeA, activeB *PreVec[T], cb func(x, y T)) {
	actA := activeA.Take()
	actB := activeB.Take()

	ia, ib := 0, 0
	sinceA, sinceB := 0, 0

	for ia < len(a) || ib < len(b) {
		var fromA bool
		switch {
		case ib >= len(b):
			fromA = true
		case ia >= len(a):
			fromA = false
		default:
			fromA = start[N, T](a[ia], axis) <= start[N, T](b[ib], axis)
		}

		if fromA {
			cur := a[ia]
			ia++
			actB = pruneActive[N, T](actB, cur, axis)
			for _, other := range actB {
				if other.Rect().Intersects(cur.Rect()) {
					cb(cur, other)
				}
			}
			actA = append(actA, cur)
			sinceA++
			if sinceA >= activeSelfPrunePeriod {
				actA = pruneActive[N, T](actA, cur, axis)
				sinceA = 0
			}
		} else {
			cur := b[ib]
			ib++
			actA = pruneActive[N, T](actA, cur, axis)
			for _, other := range actA {
				if other.Rect().Intersects(cur.Rect()) {
					cb(other, cur)
				}
			}
			actB = append(actB, cur)
			sinceB++
			if sinceB >= activeSelfPrunePeriod {
				actB = pruneActive[N, T](actB, cur, axis)
				sinceB = 0
			}
		}
	}

	activeA.Save(actA)
	activeB.Save(actB)
}
