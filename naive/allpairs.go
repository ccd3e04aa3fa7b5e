package naive

import "github.com/katalvlaran/broccoli/rect"

// FindCollidingPairs calls cb once for every unordered pair in elements
// whose AABBs intersect, by plain double loop.
func FindCollidingPairs[N rect.Num, T rect.Elem[N]](elements []T, cb func(a, b T)) {
	for i := 0; i < len(elements); i++ {
		for j := i + 1; j < len(elements); j++ {
			if elements[i].Rect().Intersects(elements[j].Rect()) {
				cb(elements[i], elements[j])
			}
		}
	}
}
