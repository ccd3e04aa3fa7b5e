package rect

import "cmp"

// Num is any totally ordered, copyable, trivially comparable coordinate
// type. Tree construction and the collision query use only <, <=, and ==
// on Num; arithmetic (distance, ray parameters) is left entirely to the
// caller's handler functions passed to the knearest and raycast packages.
//
// cmp.Ordered is the standard library's own vocabulary for "totally
// ordered"; no third-party constraints package improves on it, and
// golang.org/x/exp/constraints.Ordered is the predecessor cmp.Ordered
// superseded.
type Num interface {
	cmp.Ordered
}

// Axis selects one of the two coordinate axes. The tree alternates Axis by
// depth; the root's axis is fixed at AxisX.
type Axis uint8

const (
	// AxisX is the horizontal axis.
	AxisX Axis = iota
	// AxisY is the vertical axis.
	AxisY
)

// Next returns the other axis.
func (a Axis) Next() Axis {
	if a == AxisX {
		return AxisY
	}
	return AxisX
}

// String renders the axis as "x" or "y".
func (a Axis) String() string {
	if a == AxisX {
		return "x"
	}
	return "y"
}

// Range is a closed one-dimensional interval [Start, End]. A well-formed
// Range always has Start <= End. Nothing in the library checks this;
// callers that violate the contract get unspecified (but not unsafe)
// behavior from the tree.
type Range[N Num] struct {
	Start N
	End   N
}

// Contains reports whether v lies within the closed interval [r.Start, r.End].
func (r Range[N]) Contains(v N) bool {
	return r.Start <= v && v <= r.End
}

// Intersects reports whether r and o overlap, treating both as closed
// intervals (touching endpoints count as overlapping).
func (r Range[N]) Intersects(o Range[N]) bool {
	return r.Start <= o.End && o.Start <= r.End
}

// Point is a location in the plane, used by the k-nearest and ray-cast
// queries.
type Point[N Num] struct {
	X N
	Y N
}

// Coord returns the point's coordinate on the given axis.
func (p Point[N]) Coord(a Axis) N {
	if a == AxisX {
		return p.X
	}
	return p.Y
}

// Rectangle is an axis-aligned bounding box: a pair of closed Ranges, one
// per axis.
type Rectangle[N Num] struct {
	X Range[N]
	Y Range[N]
}

// NewRectangle builds a Rectangle from explicit per-axis bounds. It does not
// validate Start <= End; see Range's doc comment.
func NewRectangle[N Num](x0, x1, y0, y1 N) Rectangle[N] {
	return Rectangle[N]{X: Range[N]{Start: x0, End: x1}, Y: Range[N]{Start: y0, End: y1}}
}

// Axis returns the Range on the given axis.
func (r Rectangle[N]) Axis(a Axis) Range[N] {
	if a == AxisX {
		return r.X
	}
	return r.Y
}

// Intersects reports whether r and o overlap on both axes.
func (r Rectangle[N]) Intersects(o Rectangle[N]) bool {
	return r.X.Intersects(o.X) && r.Y.Intersects(o.Y)
}

// ContainsPoint reports whether p lies within r on both axes.
func (r Rectangle[N]) ContainsPoint(p Point[N]) bool {
	return r.X.Contains(p.X) && r.Y.Contains(p.Y)
}

// Within reports whether r is fully contained inside other, on both axes.
func (r Rectangle[N]) Within(other Rectangle[N]) bool {
	return other.X.Start <= r.X.Start && r.X.End <= other.X.End &&
		other.Y.Start <= r.Y.Start && r.Y.End <= other.Y.End
}

// Elem is the contract an element must satisfy to be stored in a Tree: a
// read-only accessor for its bounding Rectangle. The Rectangle returned by
// Rect must not change while the element lives inside a Tree — queries may
// mutate an element's other (payload) fields freely, but never its AABB.
type Elem[N Num] interface {
	Rect() Rectangle[N]
}
