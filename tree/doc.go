// Package tree builds and stores the hybrid KD-tree / sweep-and-prune
// spatial index broccoli's queries run against.
//
// Build (or BuildWith, for non-default Options) permutes a caller-owned
// slice of elements in place and returns a Tree borrowing it: a single
// preorder array of Node values, each owning a disjoint sub-slice of the
// original buffer. The permutation is the load-bearing part of the design
// — every Node's Range is a real, aliasing-free sub-slice of the buffer
// the caller passed in, recovered via nothing more than index arithmetic
// over the preorder layout (see Vistr/VistrMut).
//
// A Tree has no background goroutines and does no I/O; it is a plain value
// safe to query repeatedly until its backing buffer is reused for the next
// frame's Build.
package tree
