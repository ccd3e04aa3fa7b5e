package raycast

import "github.com/katalvlaran/broccoli/rect"

// Ray is a half-line from Origin. Its per-axis direction is a sign only
// (Positive travels toward increasing coordinates on that axis); the actual
// parametrization of "distance along the ray" is entirely up to the
// Handler's cast primitives.
type Ray[N rect.Num] struct {
	Origin  rect.Point[N]
	Forward [2]bool // Forward[AxisX]/Forward[AxisY]: true = increasing coordinate
}

// Dir reports the ray's travel direction on the given axis.
func (r Ray[N]) Dir(a rect.Axis) bool { return r.Forward[a] }

// Handler supplies the cast primitives CastRay needs.
type Handler[N rect.Num, T rect.Elem[N]] interface {
	// CastToLine casts ray against the infinite line perpendicular to axis
	// at coordinate v, used only to decide whether a divider crossing can
	// be pruned.
	CastToLine(ray Ray[N], axis rect.Axis, v N) (t N, hit bool)
	// CastBroad casts ray against e's cheap bounding shape (e.g. its
	// AABB); hit=false means ray provably misses e and CastFine need not
	// be tried.
	CastBroad(ray Ray[N], e T) (t N, hit bool)
	// CastFine casts ray against e's true shape.
	CastFine(ray Ray[N], e T) (t N, hit bool)
}
