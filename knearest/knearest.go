package knearest

import (
	"github.com/katalvlaran/broccoli/rect"
	"github.com/katalvlaran/broccoli/tree"
)

// KNearest returns up to num groups of elements in t nearest to p, as judged
// by h, ordered nearest first, with ties sharing a group. num <= 0 returns
// an empty result without descending the tree.
func KNearest[N rect.Num, T rect.Elem[N]](t *tree.Tree[N, T], p rect.Point[N], num int, h Handler[N, T]) *KResult[N, T] {
	res := &KResult[N, T]{limit: num}
	if num <= 0 {
		return res
	}
	descend[N, T](t.Vistr(), rect.AxisX, p, h, res)
	return res
}

func descend[N rect.Num, T rect.Elem[N]](v tree.Vistr[N, T], axis rect.Axis, p rect.Point[N], h Handler[N, T], res *KResult[N, T]) {
	node, left, right, hasChildren := v.Next()

	if hasChildren {
		if node.Div != nil {
			dv := *node.Div
			near, far := left, right
			if !(p.Coord(axis) < dv) {
				near, far = right, left
			}
			descend[N, T](near, axis.Next(), p, h, res)
			if !res.full() || h.DistanceToLine(p, axis, dv) < res.worst() {
				descend[N, T](far, axis.Next(), p, h, res)
			}
		} else {
			descend[N, T](left, axis.Next(), p, h, res)
			descend[N, T](right, axis.Next(), p, h, res)
		}
	}

	for _, e := range node.Range {
		considerElement[N, T](p, e, h, res)
	}
}

func considerElement[N rect.Num, T rect.Elem[N]](p rect.Point[N], e T, h Handler[N, T], res *KResult[N, T]) {
	if res.full() {
		if broad, ok := h.DistanceToBroad(p, e); ok && broad > res.worst() {
			return
		}
	}
	res.insert(h.DistanceToFine(p, e), e)
}
