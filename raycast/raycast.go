package raycast

import (
	"github.com/katalvlaran/broccoli/rect"
	"github.com/katalvlaran/broccoli/tree"
)

// CastRay fires ray into t and returns the set of elements tied for the
// smallest hit magnitude, or a result with Hit()==false if nothing was
// struck.
func CastRay[N rect.Num, T rect.Elem[N]](t *tree.Tree[N, T], ray Ray[N], h Handler[N, T]) *CastResult[N, T] {
	res := &CastResult[N, T]{}
	descend[N, T](t.Vistr(), rect.AxisX, ray, h, res)
	return res
}

func descend[N rect.Num, T rect.Elem[N]](v tree.Vistr[N, T], axis rect.Axis, ray Ray[N], h Handler[N, T], res *CastResult[N, T]) {
	node, left, right, hasChildren := v.Next()

	if hasChildren {
		if node.Div != nil {
			dv := *node.Div
			near, far := left, right
			if !(ray.Origin.Coord(axis) < dv) {
				near, far = right, left
			}
			descend[N, T](near, axis.Next(), ray, h, res)
			if t, hit := h.CastToLine(ray, axis, dv); hit && (!res.hasHit || !(res.best < t)) {
				descend[N, T](far, axis.Next(), ray, h, res)
			}
		} else {
			descend[N, T](left, axis.Next(), ray, h, res)
			descend[N, T](right, axis.Next(), ray, h, res)
		}
	}

	for _, e := range node.Range {
		considerElement[N, T](ray, e, h, res)
	}
}

func considerElement[N rect.Num, T rect.Elem[N]](ray Ray[N], e T, h Handler[N, T], res *CastResult[N, T]) {
	if bt, hit := h.CastBroad(ray, e); !hit || (res.hasHit && res.best < bt) {
		return
	}
	if ft, hit := h.CastFine(ray, e); hit {
		res.consider(ft, e)
	}
}
