// Package oned implements the one-dimensional primitives the tree builder
// and the collision query are built from: a three-way in-place partition
// around a divider, an unstable median (nth-element) selection, and three
// flavors of sweep-line intersection (single-list, two-list merge, and
// perpendicular scan).
//
// Every function here operates directly on a caller-owned []T and an axis
// accessor; none of it knows about Node or Tree. This keeps the
// performance-critical inner loops testable in isolation from tree shape.
package oned
