package oned

import "github.com/katalvlaran/broccoli/rect"

// PreVec loans out a zero-length slice with retained capacity across
// repeated Find2D/FindParallel2D calls, so the sweep's active list does not
// reallocate once it has grown to its steady-state size. A PreVec is not
// safe for concurrent use; callers keep one per goroutine.
type PreVec[T any] struct {
	buf []T
}

// Take returns the loaned buffer truncated to zero length, ready to be
// refilled.
func (p *PreVec[T]) Take() []T {
	if p.buf == nil {
		return nil
	}
	return p.buf[:0]
}

// Save retains b's backing array for the next Take.
func (p *PreVec[T]) Save(b []T) {
	p.buf = b
}

// pruneActive drops every entry of act whose projection on axis ends before
// cur starts; it is the "remove from active every a with a.end < cur.start"
// step shared by Find2D and FindParallel2D.
func pruneActive[N rect.Num, T rect.Elem[N]](act []T, cur T, axis rect.Axis) []T {
	threshold := start[N, T](cur, axis)
	write := 0
	for _, a := range act {
		if end[N, T](a, axis) >= threshold {
			act[write] = a
			write++
		}
	}
	return act[:write]
}

// Find2D runs the sweep-line algorithm over elems, which must already be
// sorted ascending by start on axis. For every pair whose projections on
// axis overlap, it verifies the full rectangle intersection (both axes)
// before invoking cb — the extra check is a no-op for pairs that are
// already guaranteed to overlap on the node's own axis (interior-node
// self-pairs, per I2) and is required for pairs that are not so guaranteed
// (leaf self-pairs).
//
// active is scratch space reused across calls; pass a fresh *PreVec per
// goroutine.
func Find2D[N rect.Num, T rect.Elem[N]](elems []T, axis rect.Axis, active *PreVec[T], cb func(a, b T)) {
	act := active.Take()
	for _, cur := range elems {
		act = pruneActive[N, T](act, cur, axis)
		for _, a := range act {
			if a.Rect().Intersects(cur.Rect()) {
				cb(a, cur)
			}
		}
		act = append(act, cur)
	}
	active.Save(act)
}
