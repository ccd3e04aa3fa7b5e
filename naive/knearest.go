package naive

import (
	"github.com/katalvlaran/broccoli/knearest"
	"github.com/katalvlaran/broccoli/rect"
)

// Group mirrors knearest's candidate grouping: every element tied at Dist.
type Group[N rect.Num, T rect.Elem[N]] struct {
	Dist  N
	Elems []T
}

// KNearest is the linear-scan reference k-nearest: it considers every
// element in elements exactly once, using the same equal-distance grouping
// and worst-group eviction knearest.KNearest uses, but with no tree descent
// or pruning at all.
func KNearest[N rect.Num, T rect.Elem[N]](elements []T, p rect.Point[N], num int, h knearest.Handler[N, T]) []Group[N, T] {
	if num <= 0 {
		return nil
	}
	var groups []Group[N, T]
	full := func() bool { return len(groups) >= num }
	worst := func() N { return groups[len(groups)-1].Dist }
	insert := func(dist N, e T) {
		for i := range groups {
			switch {
			case groups[i].Dist == dist:
				groups[i].Elems = append(groups[i].Elems, e)
				return
			case dist < groups[i].Dist:
				groups = append(groups, Group[N, T]{})
				copy(groups[i+1:], groups[i:])
				groups[i] = Group[N, T]{Dist: dist, Elems: []T{e}}
				if len(groups) > num {
					groups = groups[:num]
				}
				return
			}
		}
		if full() {
			return
		}
		groups = append(groups, Group[N, T]{Dist: dist, Elems: []T{e}})
	}

	for _, e := range elements {
		if full() {
			if broad, ok := h.DistanceToBroad(p, e); ok && broad > worst() {
				continue
			}
		}
		insert(h.DistanceToFine(p, e), e)
	}
	return groups
}
