// Package knearest implements the tree's nearest-neighbor query: a
// branch-and-bound descent that returns up to num groups of elements
// ordered by a caller-supplied distance function, with elements tied at
// equal distance sharing a group.
package knearest
