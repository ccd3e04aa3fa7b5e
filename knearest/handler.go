package knearest

import "github.com/katalvlaran/broccoli/rect"

// Handler supplies the distance primitives KNearest needs; it never touches
// tree internals directly.
type Handler[N rect.Num, T rect.Elem[N]] interface {
	// DistanceToLine returns the distance from p to the infinite line
	// perpendicular to axis at coordinate v. Used only to decide whether a
	// divider crossing can be pruned.
	DistanceToLine(p rect.Point[N], axis rect.Axis, v N) N
	// DistanceToBroad returns a cheap lower-bound distance estimate for e
	// (e.g. distance to its AABB), or ok=false to disable this
	// optimization for e.
	DistanceToBroad(p rect.Point[N], e T) (dist N, ok bool)
	// DistanceToFine returns the exact distance from p to e.
	DistanceToFine(p rect.Point[N], e T) N
}
