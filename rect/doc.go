// Package rect defines the numeric and geometric vocabulary shared by every
// other broccoli package: the Num constraint, one-dimensional Range, the
// two-dimensional Rectangle built from a pair of Ranges, Axis, Point, and
// the Elem contract an element must satisfy to live inside a Tree.
//
// Nothing in this package allocates or mutates; every type here is a small
// value type intended to be copied freely.
package rect
