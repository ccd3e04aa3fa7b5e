package knearest

import "github.com/katalvlaran/broccoli/rect"

// group holds every element tied at the same distance from the query point.
type group[N rect.Num, T rect.Elem[N]] struct {
	dist  N
	elems []T
}

// KResult is the outcome of KNearest: up to num distinct distances, each
// with every element tied at that distance, ordered nearest first.
type KResult[N rect.Num, T rect.Elem[N]] struct {
	groups []group[N, T]
	limit  int
}

// IterGroups calls fn once per distinct distance, nearest first, with every
// element tied at that distance.
func (r *KResult[N, T]) IterGroups(fn func(dist N, elems []T)) {
	for _, g := range r.groups {
		fn(g.dist, g.elems)
	}
}

// Len returns the number of distinct distances in the result.
func (r *KResult[N, T]) Len() int { return len(r.groups) }

// TotalLen returns the total number of elements across every group.
func (r *KResult[N, T]) TotalLen() int {
	total := 0
	for _, g := range r.groups {
		total += len(g.elems)
	}
	return total
}

func (r *KResult[N, T]) full() bool {
	return r.limit > 0 && len(r.groups) >= r.limit
}

// worst must only be called when full reports true.
func (r *KResult[N, T]) worst() N {
	return r.groups[len(r.groups)-1].dist
}

// insert adds e at distance dist, merging into an existing group of equal
// distance, inserting a new group in sorted position, or — once limit
// distinct distances are already held — evicting the entire worst group if
// dist is strictly better than it.
func (r *KResult[N, T]) insert(dist N, e T) {
	for i := range r.groups {
		switch {
		case r.groups[i].dist == dist:
			r.groups[i].elems = append(r.groups[i].elems, e)
			return
		case dist < r.groups[i].dist:
			r.groups = append(r.groups, group[N, T]{})
			copy(r.groups[i+1:], r.groups[i:])
			r.groups[i] = group[N, T]{dist: dist, elems: []T{e}}
			r.trim()
			return
		}
	}
	if r.full() {
		return
	}
	r.groups = append(r.groups, group[N, T]{dist: dist, elems: []T{e}})
}

func (r *KResult[N, T]) trim() {
	if r.limit > 0 && len(r.groups) > r.limit {
		r.groups = r.groups[:r.limit]
	}
}
