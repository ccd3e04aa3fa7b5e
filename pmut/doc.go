// Package pmut implements the protected mutable reference: a thin wrapper
// over a pointer to an element that lets a caller mutate the element's
// payload without swapping it out from under the tree or replacing its
// slot in the owning slice.
//
// Go has no borrow checker, so PMut cannot physically prevent a determined
// caller from reaching through Inner and overwriting the element's Rect.
// The contract is documented, not enforced: callbacks may mutate whatever
// fields they like except the coordinates Rect reports — the engine never
// hands out a raw *T, only this protected reference. The tree package is
// the only place that constructs Slice values from its own node ranges, so
// a Slice is never built from two overlapping backing arrays.
package pmut
