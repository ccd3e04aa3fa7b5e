package pmut

import "github.com/katalvlaran/broccoli/rect"

// PMut is a protected mutable reference to a single element of type T. Its
// Rect accessor is read-only; Inner exposes the element for payload
// mutation only. Callers must not retain a PMut past the callback that
// received it — the tree may reuse or reorder the backing slice after the
// query returns.
type PMut[N rect.Num, T rect.Elem[N]] struct {
	ptr *T
}

// Of wraps p as a protected reference. Only the tree package (and this
// package's own Slice) should call Of directly; user code receives PMut
// values from query callbacks.
func Of[N rect.Num, T rect.Elem[N]](p *T) PMut[N, T] {
	return PMut[N, T]{ptr: p}
}

// Rect returns the element's bounding rectangle.
func (p PMut[N, T]) Rect() rect.Rectangle[N] {
	return (*p.ptr).Rect()
}

// Inner returns a mutable pointer to the wrapped element so its payload can
// be updated. Do not use Inner to replace the element's Rect; doing so
// violates the tree's partition invariants for the remainder of its
// lifetime (see rect.Elem's doc comment).
func (p PMut[N, T]) Inner() *T {
	return p.ptr
}

// Slice is a protected mutable view over a contiguous run of elements, such
// as one node's Range handed out by tree.VistrMut. Split produces two Slice
// values over non-overlapping sub-ranges of the same backing array, which
// Go's ordinary slice semantics already guarantee never alias.
type Slice[N rect.Num, T rect.Elem[N]] struct {
	s []T
}

// Wrap builds a Slice over s. The tree package is the sole source of Slice
// values built from overlapping or aliasing backing arrays; it never does
// so, by construction (see tree.Node's doc comment on Range).
func Wrap[N rect.Num, T rect.Elem[N]](s []T) Slice[N, T] {
	return Slice[N, T]{s: s}
}

// Len returns the number of elements in the slice.
func (p Slice[N, T]) Len() int { return len(p.s) }

// At returns a protected reference to the i'th element.
func (p Slice[N, T]) At(i int) PMut[N, T] { return PMut[N, T]{ptr: &p.s[i]} }

// Raw exposes the underlying slice directly, for code that operates on a
// whole range rather than one element at a time.
func (p Slice[N, T]) Raw() []T { return p.s }

// SplitFirst returns a protected reference to the first element and a
// Slice over the remainder, or ok=false if p is empty.
func (p Slice[N, T]) SplitFirst() (first PMut[N, T], rest Slice[N, T], ok bool) {
	if len(p.s) == 0 {
		return PMut[N, T]{}, Slice[N, T]{}, false
	}
	return PMut[N, T]{ptr: &p.s[0]}, Slice[N, T]{s: p.s[1:]}, true
}

// Split divides p into two disjoint, non-aliasing Slice values at index i:
// p.s[:i] and p.s[i:].
func (p Slice[N, T]) Split(i int) (left, right Slice[N, T]) {
	return Slice[N, T]{s: p.s[:i]}, Slice[N, T]{s: p.s[i:]}
}

// Iter calls fn once per element, in order, passing a protected reference.
func (p Slice[N, T]) Iter(fn func(PMut[N, T])) {
	for i := range p.s {
		fn(PMut[N, T]{ptr: &p.s[i]})
	}
}
