// Package broccoli is a two-dimensional broadphase collision engine.
//
// What is broccoli?
//
//	A hybrid spatial index for axis-aligned bounding boxes that blends a
//	KD-tree's recursive axis-alternating partitioning with sweep-and-prune's
//	one-dimensional intersection test. Given a mutable slice of elements,
//	each carrying a Rect, it builds a tree over those elements in place and
//	answers three families of query:
//
//	  - all-pairs collision detection (every intersecting pair, once each)
//	  - k-nearest search (branch-and-bound descent keyed on divider distance)
//	  - ray casting (branch-and-bound descent keyed on hit length)
//
// Why choose broccoli?
//
//   - Rebuild-per-frame — no incremental insert/delete, no persistence
//   - In-place — construction permutes the caller's slice, no copying
//   - Mutation-safe — callbacks get a protected reference to each element,
//     so they can freely mutate payload state without corrupting tree
//     invariants
//   - Pluggable parallelism — construction and collision queries accept a
//     Joiner so callers choose their own fork/join primitive
//
// Everything is organized by concern, one subpackage per component:
//
//	rect/      — Num, Range, Rectangle, Point, Axis, Elem
//	pmut/      — protected mutable references and slices
//	oned/      — one-dimensional partition and sweep primitives
//	tree/      — Node, Tree, Build/BuildWith, visitors, rect-pruned queries
//	colfind/   — all-pairs collision query (sequential and parallel)
//	knearest/  — k-nearest-neighbor query
//	raycast/   — ray-cast query
//	naive/     — O(n^2) oracle, used by tests only
//	parallel/  — Joiner fork/join contract
//	debug/     — tree dump for diagnostics
//
// A typical session builds a tree, runs one or more queries against it, and
// lets the tree fall out of scope; the caller's slice is left in its
// (permuted) final order and can be reused directly.
//
//	t := tree.Build[int64](elements)
//	colfind.FindCollidingPairs(&t, func(a, b pmut.PMut[int64, Box]) {
//	    // a and b are guaranteed to have intersecting Rects
//	})
package broccoli
