package naive

import (
	"github.com/katalvlaran/broccoli/raycast"
	"github.com/katalvlaran/broccoli/rect"
)

// CastRay is the linear-scan reference ray-cast: it considers every element
// in elements exactly once and returns the set tied for the smallest hit
// magnitude.
func CastRay[N rect.Num, T rect.Elem[N]](elements []T, ray raycast.Ray[N], h raycast.Handler[N, T]) (hit bool, magnitude N, elems []T) {
	for _, e := range elements {
		bt, ok := h.CastBroad(ray, e)
		if !ok || (hit && magnitude < bt) {
			continue
		}
		ft, ok2 := h.CastFine(ray, e)
		if !ok2 {
			continue
		}
		switch {
		case !hit || ft < magnitude:
			hit = true
			magnitude = ft
			elems = []T{e}
		case ft == magnitude:
			elems = append(elems, e)
		}
	}
	return hit, magnitude, elems
}
