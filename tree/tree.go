package tree

import (
	"github.com/katalvlaran/broccoli/pmut"
	"github.com/katalvlaran/broccoli/rect"
)

// Tree is a built spatial index: a preorder array of Node, each owning a
// disjoint sub-slice of the buffer Build/BuildWith was given. A Tree is a
// plain value; there is nothing to close or release. Once it goes out of
// scope the caller's original buffer — left in its permuted order — is
// fully accessible again.
type Tree[N rect.Num, T rect.Elem[N]] struct {
	nodes  []Node[N, T]
	height int
	sorter Sorter
}

// Sorter reports whether this Tree's nodes honor I4 (sorted by start on the
// perpendicular axis). colfind uses this to choose between the sweep-based
// self-pairs check (Sorted) and a brute-force fallback (Unsorted).
func (t *Tree[N, T]) Sorter() Sorter { return t.sorter }

// Height returns the tree's height (h=1 means a single leaf node).
func (t *Tree[N, T]) Height() int { return t.height }

// Len returns the total number of elements stored in the tree.
func (t *Tree[N, T]) Len() int {
	if len(t.nodes) == 0 {
		return 0
	}
	return t.nodes[0].NumElem
}

// NumNodes returns the number of Node values in the tree (2^Height - 1).
func (t *Tree[N, T]) NumNodes() int { return len(t.nodes) }

// NodeAt returns a pointer to the node at preorder index pos, for callers
// that walk the preorder array by index arithmetic. The query packages in
// this module walk the tree through Vistr/VistrMut instead.
func (t *Tree[N, T]) NodeAt(pos int) *Node[N, T] { return &t.nodes[pos] }

// SubtreeSize returns how many Node slots a subtree rooted at depth
// occupies. LeftChild(pos) = pos+1; RightChild(pos, depth) = pos + 1 +
// SubtreeSize(depth+1).
func (t *Tree[N, T]) SubtreeSize(depth int) int { return subtreeSize(t.height, depth) }

// AxisAt returns the axis nodes at depth partition on: the root (depth 0)
// is always AxisX, alternating thereafter.
func (t *Tree[N, T]) AxisAt(depth int) rect.Axis {
	if depth%2 == 0 {
		return rect.AxisX
	}
	return rect.AxisY
}

// Vistr is a read-only preorder visitor over a Tree.
type Vistr[N rect.Num, T rect.Elem[N]] struct {
	nodes  []Node[N, T]
	depth  int
	height int
}

// Vistr returns a read-only visitor rooted at t's root.
func (t *Tree[N, T]) Vistr() Vistr[N, T] {
	return Vistr[N, T]{nodes: t.nodes, depth: 0, height: t.height}
}

// Next returns the current node and, if it has children, the two child
// visitors — the left subtree first, then the right. A leaf returns
// hasChildren=false.
func (v Vistr[N, T]) Next() (node *Node[N, T], left, right Vistr[N, T], hasChildren bool) {
	node = &v.nodes[0]
	if v.depth == v.height-1 {
		return node, Vistr[N, T]{}, Vistr[N, T]{}, false
	}
	leftSize := subtreeSize(v.height, v.depth+1)
	left = Vistr[N, T]{nodes: v.nodes[1 : 1+leftSize], depth: v.depth + 1, height: v.height}
	right = Vistr[N, T]{nodes: v.nodes[1+leftSize:], depth: v.depth + 1, height: v.height}
	return node, left, right, true
}

// NodeView is the protected counterpart of Node handed out by VistrMut: its
// Cont, Div, and NumElem are read-only copies, and Range is a protected
// pmut.Slice rather than a raw []T, so a caller can mutate element payloads
// but cannot reassign the node's backing slice.
type NodeView[N rect.Num, T rect.Elem[N]] struct {
	Cont    rect.Range[N]
	Div     *N
	NumElem int
	Range   pmut.Slice[N, T]
}

// VistrMut is the protected mutable counterpart of Vistr. Its Next splits
// the node array covering this subtree into the root node and the two
// child arrays purely by index arithmetic (the preorder layout guarantees
// they are disjoint), so both children can be visited with simultaneous
// mutable access and no dynamic aliasing check is needed.
type VistrMut[N rect.Num, T rect.Elem[N]] struct {
	nodes  []Node[N, T]
	depth  int
	height int
}

// VistrMut returns a protected mutable visitor rooted at t's root.
func (t *Tree[N, T]) VistrMut() VistrMut[N, T] {
	return VistrMut[N, T]{nodes: t.nodes, depth: 0, height: t.height}
}

// Next returns a NodeView over the current node and, if it has children,
// the two child visitors.
func (v VistrMut[N, T]) Next() (view NodeView[N, T], left, right VistrMut[N, T], hasChildren bool) {
	n := &v.nodes[0]
	view = NodeView[N, T]{Cont: n.Cont, Div: n.Div, NumElem: n.NumElem, Range: pmut.Wrap[N, T](n.Range)}
	if v.depth == v.height-1 {
		return view, VistrMut[N, T]{}, VistrMut[N, T]{}, false
	}
	leftSize := subtreeSize(v.height, v.depth+1)
	left = VistrMut[N, T]{nodes: v.nodes[1 : 1+leftSize], depth: v.depth + 1, height: v.height}
	right = VistrMut[N, T]{nodes: v.nodes[1+leftSize:], depth: v.depth + 1, height: v.height}
	return view, left, right, true
}
