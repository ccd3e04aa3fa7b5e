package tree

import "github.com/katalvlaran/broccoli/rect"

// ForAllIntersectRect calls cb once for every element whose Rect
// intersects query. It descends the tree using each interior node's Div to
// skip a whole child subtree whenever query cannot reach it on that node's
// axis: the left child holds only elements with end < Div, so it is
// skipped once query's start exceeds Div, and symmetrically for the right
// child.
func (t *Tree[N, T]) ForAllIntersectRect(query rect.Rectangle[N], cb func(T)) {
	forAllIntersect[N, T](t.Vistr(), rect.AxisX, query, cb)
}

func forAllIntersect[N rect.Num, T rect.Elem[N]](v Vistr[N, T], axis rect.Axis, query rect.Rectangle[N], cb func(T)) {
	node, left, right, hasChildren := v.Next()
	for _, e := range node.Range {
		if e.Rect().Intersects(query) {
			cb(e)
		}
	}
	if !hasChildren {
		return
	}
	next := axis.Next()
	if node.Div == nil {
		forAllIntersect[N, T](left, next, query, cb)
		forAllIntersect[N, T](right, next, query, cb)
		return
	}
	qr := query.Axis(axis)
	dv := *node.Div
	if qr.Start <= dv {
		forAllIntersect[N, T](left, next, query, cb)
	}
	if qr.End >= dv {
		forAllIntersect[N, T](right, next, query, cb)
	}
}

// ForAllInRect calls cb once for every element whose Rect lies fully
// inside query (not merely intersecting it). Pruning follows the same
// Div-based rule as ForAllIntersectRect — a subtree that cannot even
// intersect query certainly cannot be contained in it.
func (t *Tree[N, T]) ForAllInRect(query rect.Rectangle[N], cb func(T)) {
	forAllIn[N, T](t.Vistr(), rect.AxisX, query, cb)
}

func forAllIn[N rect.Num, T rect.Elem[N]](v Vistr[N, T], axis rect.Axis, query rect.Rectangle[N], cb func(T)) {
	node, left, right, hasChildren := v.Next()
	for _, e := range node.Range {
		if e.Rect().Within(query) {
			cb(e)
		}
	}
	if !hasChildren {
		return
	}
	next := axis.Next()
	if node.Div == nil {
		forAllIn[N, T](left, next, query, cb)
		forAllIn[N, T](right, next, query, cb)
		return
	}
	qr := query.Axis(axis)
	dv := *node.Div
	if qr.Start <= dv {
		forAllIn[N, T](left, next, query, cb)
	}
	if qr.End >= dv {
		forAllIn[N, T](right, next, query, cb)
	}
}

// ForAllNotInRect calls cb once for every element whose Rect does not
// intersect query. There is no sound Div-based prune for "definitely
// outside" (unlike the other two queries, the excluded region is not a
// single contiguous subtree), so this walks every node.
func (t *Tree[N, T]) ForAllNotInRect(query rect.Rectangle[N], cb func(T)) {
	v := t.Vistr()
	forAllNotIn[N, T](v, query, cb)
}

func forAllNotIn[N rect.Num, T rect.Elem[N]](v Vistr[N, T], query rect.Rectangle[N], cb func(T)) {
	node, left, right, hasChildren := v.Next()
	for _, e := range node.Range {
		if !e.Rect().Intersects(query) {
			cb(e)
		}
	}
	if !hasChildren {
		return
	}
	forAllNotIn[N, T](left, query, cb)
	forAllNotIn[N, T](right, query, cb)
}
