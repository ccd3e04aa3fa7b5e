package tree

import (
	"sort"

	"github.com/katalvlaran/broccoli/oned"
	"github.com/katalvlaran/broccoli/rect"
)

// Build constructs a Tree over elements using default Options: height
// chosen automatically to target DefaultElementsPerLeaf elements per leaf,
// sequential construction, Sorted within-node layout. It never fails —
// BuildWith is the entry point for options that can be misconfigured.
//
// Build permutes elements in place; the returned Tree's nodes borrow
// sub-slices of it directly.
func Build[N rect.Num, T rect.Elem[N]](elements []T) Tree[N, T] {
	t, _ := BuildWith[N, T](elements)
	return t
}

// BuildWith constructs a Tree over elements with explicit Options. It
// returns ErrZeroHeight if WithHeight(0) (or a negative height) was
// supplied; every other Option is either applied or silently ignored if
// out of range (see each With* function's doc comment).
func BuildWith[N rect.Num, T rect.Elem[N]](elements []T, opts ...Option) (Tree[N, T], error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	var height int
	if cfg.height == nil {
		height = heightFor(len(elements), cfg.elementsPerLeaf)
	} else if *cfg.height < 1 {
		return Tree[N, T]{}, ErrZeroHeight
	} else {
		height = *cfg.height
	}

	nodeCount := pow2(height) - 1
	nodes := make([]Node[N, T], nodeCount)

	if cfg.parallel != nil {
		buildParallel[N, T](nodes, 0, elements, 0, height, rect.AxisX, cfg.sorter, cfg.parallel)
	} else {
		buildSeq[N, T](nodes, 0, elements, 0, height, rect.AxisX, cfg.sorter)
	}

	return Tree[N, T]{nodes: nodes, height: height, sorter: cfg.sorter}, nil
}

func pow2(n int) int {
	return 1 << uint(n)
}

// subtreeSize returns how many Node slots a subtree rooted at depth
// occupies in a complete tree of the given height.
func subtreeSize(height, depth int) int {
	if depth >= height {
		return 0
	}
	return pow2(height-depth) - 1
}

func contOf[N rect.Num, T rect.Elem[N]](s []T, axis rect.Axis) rect.Range[N] {
	if len(s) == 0 {
		var zero N
		return rect.Range[N]{Start: zero, End: zero}
	}
	r := s[0].Rect().Axis(axis)
	minStart, maxEnd := r.Start, r.End
	for _, e := range s[1:] {
		rr := e.Rect().Axis(axis)
		if rr.Start < minStart {
			minStart = rr.Start
		}
		if rr.End > maxEnd {
			maxEnd = rr.End
		}
	}
	return rect.Range[N]{Start: minStart, End: maxEnd}
}

func sortPerp[N rect.Num, T rect.Elem[N]](s []T, perp rect.Axis) {
	sort.Slice(s, func(i, j int) bool {
		return s[i].Rect().Axis(perp).Start < s[j].Rect().Axis(perp).Start
	})
}

// buildSeq fills nodes[pos:pos+subtreeSize(height,depth)] with the subtree
// built from elements, and returns the subtree's total element count. It
// handles a leaf case, an empty-interior case, and the three-way-binned
// median-partition case, emitted in preorder (middle node first, then the
// left subtree's nodes, then the right subtree's).
func buildSeq[N rect.Num, T rect.Elem[N]](nodes []Node[N, T], pos int, elements []T, depth, height int, axis rect.Axis, sorter Sorter) int {
	if depth == height-1 {
		if sorter == Sorted {
			sortPerp[N, T](elements, axis.Next())
		}
		nodes[pos] = Node[N, T]{
			Range:   elements,
			Cont:    contOf[N, T](elements, axis),
			NumElem: len(elements),
		}
		nodes[pos].setLeaf(true)
		return len(elements)
	}

	childSize := subtreeSize(height, depth+1)
	leftPos := pos + 1
	rightPos := pos + 1 + childSize
	perp := axis.Next()

	if len(elements) == 0 {
		nodes[pos] = Node[N, T]{Range: elements[:0]}
		nodes[pos].setLeaf(false)
		buildSeq[N, T](nodes, leftPos, elements[:0], depth+1, height, perp, sorter)
		buildSeq[N, T](nodes, rightPos, elements[:0], depth+1, height, perp, sorter)
		return 0
	}

	medianIdx := len(elements) / 2
	// NthElement cannot fail here: elements is non-empty and medianIdx is
	// in range by construction.
	_ = oned.NthElement[N, T](elements, medianIdx, axis)
	v := elements[medianIdx].Rect().Axis(axis).Start

	midCount, leftCount := oned.ThreeWayPartition[N, T](elements, axis, v)
	middle := elements[:midCount]
	left := elements[midCount : midCount+leftCount]
	right := elements[midCount+leftCount:]

	if sorter == Sorted {
		sortPerp[N, T](middle, perp)
	}

	nodes[pos] = Node[N, T]{
		Range: middle,
		Cont:  contOf[N, T](middle, axis),
		Div:   &v,
	}
	nodes[pos].setLeaf(false)

	leftTotal := buildSeq[N, T](nodes, leftPos, left, depth+1, height, perp, sorter)
	rightTotal := buildSeq[N, T](nodes, rightPos, right, depth+1, height, perp, sorter)

	total := midCount + leftTotal + rightTotal
	nodes[pos].NumElem = total
	return total
}

// buildParallel mirrors buildSeq, forking the left and right subtrees
// through cfg.Joiner at every depth strictly above cfg.SwitchHeight levels
// from the leaves. Each worker writes into its own disjoint index range of
// nodes (leftPos..rightPos and rightPos..end), computed the same way as
// the sequential case, so no locking is needed.
func buildParallel[N rect.Num, T rect.Elem[N]](nodes []Node[N, T], pos int, elements []T, depth, height int, axis rect.Axis, sorter Sorter, cfg *ParallelConfig) int {
	levelsAboveLeaves := height - 1 - depth
	if depth == height-1 || levelsAboveLeaves <= cfg.SwitchHeight {
		return buildSeq[N, T](nodes, pos, elements, depth, height, axis, sorter)
	}

	childSize := subtreeSize(height, depth+1)
	leftPos := pos + 1
	rightPos := pos + 1 + childSize
	perp := axis.Next()

	if len(elements) == 0 {
		nodes[pos] = Node[N, T]{Range: elements[:0]}
		nodes[pos].setLeaf(false)
		cfg.Joiner.Join(
			func() { buildParallel[N, T](nodes, leftPos, elements[:0], depth+1, height, perp, sorter, cfg) },
			func() { buildParallel[N, T](nodes, rightPos, elements[:0], depth+1, height, perp, sorter, cfg) },
		)
		return 0
	}

	medianIdx := len(elements) / 2
	_ = oned.NthElement[N, T](elements, medianIdx, axis)
	v := elements[medianIdx].Rect().Axis(axis).Start

	midCount, leftCount := oned.ThreeWayPartition[N, T](elements, axis, v)
	middle := elements[:midCount]
	left := elements[midCount : midCount+leftCount]
	right := elements[midCount+leftCount:]

	if sorter == Sorted {
		sortPerp[N, T](middle, perp)
	}

	nodes[pos] = Node[N, T]{
		Range: middle,
		Cont:  contOf[N, T](middle, axis),
		Div:   &v,
	}
	nodes[pos].setLeaf(false)

	var leftTotal, rightTotal int
	cfg.Joiner.Join(
		func() { leftTotal = buildParallel[N, T](nodes, leftPos, left, depth+1, height, perp, sorter, cfg) },
		func() { rightTotal = buildParallel[N, T](nodes, rightPos, right, depth+1, height, perp, sorter, cfg) },
	)

	total := midCount + leftTotal + rightTotal
	nodes[pos].NumElem = total
	return total
}
