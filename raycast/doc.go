// Package raycast implements the tree's ray-cast query: a branch-and-bound
// descent that returns the set of elements tied for the smallest hit
// length along a ray, driven by caller-supplied cast primitives.
package raycast
