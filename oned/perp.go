package oned

import "github.com/katalvlaran/broccoli/rect"

// FindPerp2D pairs every element of outer against the elements of inner,
// where inner is sorted ascending by start on sortAxis (the axis along
// which outer's and inner's owning nodes differ — see colfind's dual
// descent). For each outer element y, it walks inner in order and stops as
// soon as sortAxis separates the two: once an inner element's start on
// sortAxis exceeds y's end on sortAxis, every later inner element (sorted
// ascending) is separated from y on that axis too, so the scan can break.
//
// Every candidate pair that survives the sortAxis check is still verified
// with a full rectangle intersection before cb is invoked, since overlap
// on sortAxis alone does not imply overlap on the other axis.
func FindPerp2D[N rect.Num, T rect.Elem[N]](outer, inner []T, sortAxis rect.Axis, cb func(x, y T)) {
	for _, y := range outer {
		yEnd := end[N, T](y, sortAxis)
		for _, d := range inner {
			if start[N, T](d, sortAxis) > yEnd {
				break
			}
			if y.Rect().Intersects(d.Rect()) {
				cb(y, d)
			}
		}
	}
}
