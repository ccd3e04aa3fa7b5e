// Package colfind implements the broadphase all-pairs collision query: a
// dual-descent traversal over a tree.Tree that enumerates every unordered
// pair of elements whose AABBs intersect, exactly once, with protected
// mutable access to both elements of each pair.
package colfind
