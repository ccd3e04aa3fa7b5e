package raycast

import "github.com/katalvlaran/broccoli/rect"

// CastResult is the outcome of CastRay: either no element was hit, or the
// set of elements tied for the smallest hit magnitude.
type CastResult[N rect.Num, T rect.Elem[N]] struct {
	hasHit bool
	best   N
	elems  []T
}

// Hit reports whether the ray struck anything.
func (r *CastResult[N, T]) Hit() bool { return r.hasHit }

// Magnitude returns the shared hit distance of Elements; ok is false if Hit
// is false.
func (r *CastResult[N, T]) Magnitude() (t N, ok bool) { return r.best, r.hasHit }

// Elements returns every element tied for the smallest hit magnitude, or
// nil if Hit is false.
func (r *CastResult[N, T]) Elements() []T { return r.elems }

func (r *CastResult[N, T]) consider(t N, e T) {
	switch {
	case !r.hasHit || t < r.best:
		r.hasHit = true
		r.best = t
		r.elems = []T{e}
	case t == r.best:
		r.elems = append(r.elems, e)
	}
}
