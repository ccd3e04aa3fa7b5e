package colfind

import (
	"github.com/katalvlaran/broccoli/parallel"
	"github.com/katalvlaran/broccoli/pmut"
	"github.com/katalvlaran/broccoli/rect"
	"github.com/katalvlaran/broccoli/tree"
)

// FindCollidingPairsPar is the parallel counterpart of FindCollidingPairs: at
// every outer-recursion fork point strictly more than switchHeight levels
// above the leaves, the left and right subtrees are handed to j to run
// concurrently. cb may be invoked from multiple goroutines and must
// synchronize its own accumulation; see FindCollidingPairsParExt for a
// split/merge accumulator that removes that burden.
func FindCollidingPairsPar[N rect.Num, T rect.Elem[N]](t *tree.Tree[N, T], j parallel.Joiner, switchHeight int, cb func(a, b pmut.PMut[N, T])) {
	collideAndNextPar[N, T](t.VistrMut(), rect.AxisX, 0, t.Height(), t.Sorter(), j, switchHeight, cb)
}

func collideAndNextPar[N rect.Num, T rect.Elem[N]](
	v tree.VistrMut[N, T], axis rect.Axis, depth, height int, sorter tree.Sorter,
	j parallel.Joiner, switchHeight int, cb func(a, b pmut.PMut[N, T]),
) {
	node, left, right, hasChildren := v.Next()
	if hasChildren {
		handleChildren[N, T](node.Cont, axis, node.Range, left, axis.Next(), sorter, cb)
		handleChildren[N, T](node.Cont, axis, node.Range, right, axis.Next(), sorter, cb)
	}
	selfPairs[N, T](node.Range, axis.Next(), sorter, cb)
	if !hasChildren {
		return
	}

	if height-1-depth <= switchHeight {
		collideAndNext[N, T](left, axis.Next(), sorter, cb)
		collideAndNext[N, T](right, axis.Next(), sorter, cb)
		return
	}
	j.Join(
		func() { collideAndNextPar[N, T](left, axis.Next(), depth+1, height, sorter, j, switchHeight, cb) },
		func() { collideAndNextPar[N, T](right, axis.Next(), depth+1, height, sorter, j, switchHeight, cb) },
	)
}

// FindCollidingPairsParExt runs the parallel all-pairs query with an explicit
// accumulator rather than a shared mutable callback: split produces two
// fresh accumulators at every fork, collide folds one pair into the local
// accumulator, and on join merge folds both workers' accumulators into the
// one that was split.
// This gives deterministic per-pair attribution regardless of how the
// workers interleave.
func FindCollidingPairsParExt[N rect.Num, T rect.Elem[N], A any](
	t *tree.Tree[N, T], j parallel.Joiner, switchHeight int, initial A,
	split func(A) (A, A), merge func(A, A) A, collide func(A, pmut.PMut[N, T], pmut.PMut[N, T]) A,
) A {
	return collideAndNextParExt[N, T, A](t.VistrMut(), rect.AxisX, 0, t.Height(), t.Sorter(), j, switchHeight, initial, split, merge, collide)
}

func collideAndNextAcc[N rect.Num, T rect.Elem[N], A any](
	v tree.VistrMut[N, T], axis rect.Axis, sorter tree.Sorter, acc A,
	collide func(A, pmut.PMut[N, T], pmut.PMut[N, T]) A,
) A {
	node, left, right, hasChildren := v.Next()
	cb := func(a, b pmut.PMut[N, T]) { acc = collide(acc, a, b) }
	if hasChildren {
		handleChildren[N, T](node.Cont, axis, node.Range, left, axis.Next(), sorter, cb)
		handleChildren[N, T](node.Cont, axis, node.Range, right, axis.Next(), sorter, cb)
	}
	selfPairs[N, T](node.Range, axis.Next(), sorter, cb)
	if !hasChildren {
		return acc
	}
	acc = collideAndNextAcc[N, T, A](left, axis.Next(), sorter, acc, collide)
	acc = collideAndNextAcc[N, T, A](right, axis.Next(), sorter, acc, collide)
	return acc
}

func collideAndNextParExt[N rect.Num, T rect.Elem[N], A any](
	v tree.VistrMut[N, T], axis rect.Axis, depth, height int, sorter tree.Sorter,
	j parallel.Joiner, switchHeight int, acc A,
	split func(A) (A, A), merge func(A, A) A, collide func(A, pmut.PMut[N, T], pmut.PMut[N, T]) A,
) A {
	node, left, right, hasChildren := v.Next()
	cb := func(a, b pmut.PMut[N, T]) { acc = collide(acc, a, b) }
	if hasChildren {
		handleChildren[N, T](node.Cont, axis, node.Range, left, axis.Next(), sorter, cb)
		handleChildren[N, T](node.Cont, axis, node.Range, right, axis.Next(), sorter, cb)
	}
	selfPairs[N, T](node.Range, axis.Next(), sorter, cb)
	if !hasChildren {
		return acc
	}

	if height-1-depth <= switchHeight {
		acc = collideAndNextAcc[N, T, A](left, axis.Next(), sorter, acc, collide)
		acc = collideAndNextAcc[N, T, A](right, axis.Next(), sorter, acc, collide)
		return acc
	}

	accL, accR := split(acc)
	j.Join(
		func() {
			accL = collideAndNextParExt[N, T, A](left, axis.Next(), depth+1, height, sorter, j, switchHeight, accL, split, merge, collide)
		},
		func() {
			accR = collideAndNextParExt[N, T, A](right, axis.Next(), depth+1, height, sorter, j, switchHeight, accR, split, merge, collide)
		},
	)
	return merge(merge(acc, accL), accR)
}
