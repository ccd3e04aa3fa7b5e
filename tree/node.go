package tree

import "github.com/katalvlaran/broccoli/rect"

// Node is one node of the preorder array a Tree stores. Range is a disjoint
// sub-slice of the buffer the Tree was built from; across every Node in a
// Tree, the Range slices partition that buffer exactly (no element belongs
// to two nodes, no element is missing).
//
// Div distinguishes the three node shapes invariant I2 describes:
//   - Div != nil: an interior node with a real divider. Every element in
//     Range straddles *Div on the node's axis (Range[i].start <= *Div <=
//     Range[i].end); the node's children hold the elements strictly to one
//     side.
//   - Div == nil, has children: an interior node whose incoming slice was
//     empty (both children are themselves empty in turn).
//   - Div == nil, no children (depth == tree height - 1): a leaf. Range
//     holds every element binned this deep regardless of where it falls
//     relative to any divider.
type Node[N rect.Num, T rect.Elem[N]] struct {
	Range []T
	Cont  rect.Range[N]
	Div   *N

	// NumElem is the total element count in this node's subtree (this
	// node's own Range plus every descendant's), a cheap population
	// summary; the root's value is what Tree.Len reports.
	NumElem int

	leaf bool
}

// IsLeaf reports whether n has no children, i.e. sits at the tree's
// maximum depth.
func (n *Node[N, T]) IsLeaf() bool {
	return n.leaf
}

// leaf is set by the builder; kept unexported so callers cannot construct a
// Node that disagrees with the array position it occupies.
func (n *Node[N, T]) setLeaf(v bool) { n.leaf = v }
