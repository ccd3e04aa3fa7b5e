package tree

import (
	"math/bits"

	"github.com/katalvlaran/broccoli/rect"
)

// NodeData is the per-node summary CollectNodeData records and Rebuild
// consumes: everything needed to reconstruct a Tree's shape from an
// already-partitioned buffer without repeating the partition/median/sort
// work. If the buffer's element AABBs have changed since CollectNodeData
// ran, the rebuilt tree's invariants are no longer guaranteed — Rebuild
// trusts its input completely.
type NodeData[N rect.Num] struct {
	RangeLen int
	Cont     rect.Range[N]
	Div      *N
}

// CollectNodeData returns t's shape in preorder, one NodeData per Node.
func CollectNodeData[N rect.Num, T rect.Elem[N]](t *Tree[N, T]) []NodeData[N] {
	out := make([]NodeData[N], len(t.nodes))
	for i, n := range t.nodes {
		out[i] = NodeData[N]{RangeLen: len(n.Range), Cont: n.Cont, Div: n.Div}
	}
	return out
}

// Rebuild reconstructs a Tree of the same shape CollectNodeData recorded,
// slicing buffer into each node's Range in preorder without re-partitioning
// or re-sorting. It returns ErrNodeDataMismatch if the RangeLens in data do
// not sum to len(buffer). Rebuild assumes buffer is already ordered the way
// a Sorted build leaves it, and the rebuilt Tree always reports Sorted:
// NodeData does not record whether the original tree was Unsorted.
func Rebuild[N rect.Num, T rect.Elem[N]](buffer []T, data []NodeData[N]) (Tree[N, T], error) {
	total := 0
	for _, d := range data {
		total += d.RangeLen
	}
	if total != len(buffer) {
		return Tree[N, T]{}, ErrNodeDataMismatch
	}

	height := heightFromNodeCount(len(data))
	nodes := make([]Node[N, T], len(data))
	offset := 0
	for i, d := range data {
		nodes[i] = Node[N, T]{
			Range: buffer[offset : offset+d.RangeLen],
			Cont:  d.Cont,
			Div:   d.Div,
		}
		offset += d.RangeLen
	}
	fillLeafFlags(nodes, 0, 0, height)
	recomputeNumElem(nodes, 0, 0, height)

	return Tree[N, T]{nodes: nodes, height: height, sorter: Sorted}, nil
}

func heightFromNodeCount(n int) int {
	if n <= 0 {
		return 0
	}
	// n == 2^h - 1  =>  h == bits.Len(uint(n+1)) - 1
	return bits.Len(uint(n+1)) - 1
}

func fillLeafFlags[N rect.Num, T rect.Elem[N]](nodes []Node[N, T], pos, depth, height int) {
	if depth == height-1 {
		nodes[pos].setLeaf(true)
		return
	}
	nodes[pos].setLeaf(false)
	leftPos := pos + 1
	rightPos := pos + 1 + subtreeSize(height, depth+1)
	fillLeafFlags(nodes, leftPos, depth+1, height)
	fillLeafFlags(nodes, rightPos, depth+1, height)
}

func recomputeNumElem[N rect.Num, T rect.Elem[N]](nodes []Node[N, T], pos, depth, height int) int {
	if depth == height-1 {
		nodes[pos].NumElem = len(nodes[pos].Range)
		return nodes[pos].NumElem
	}
	leftPos := pos + 1
	rightPos := pos + 1 + subtreeSize(height, depth+1)
	leftTotal := recomputeNumElem(nodes, leftPos, depth+1, height)
	rightTotal := recomputeNumElem(nodes, rightPos, depth+1, height)
	total := len(nodes[pos].Range) + leftTotal + rightTotal
	nodes[pos].NumElem = total
	return total
}
