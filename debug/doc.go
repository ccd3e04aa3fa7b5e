// Package debug offers diagnostic dumps of a built tree.Tree, intended for
// use in tests and ad-hoc investigation rather than any fast path.
package debug
