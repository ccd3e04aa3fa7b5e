// Package parallel defines the fork/join contract broccoli's parallel tree
// construction and parallel collision query fork through, and ships two
// concrete Joiners: Sequential (a no-op fork, useful as a default and in
// tests) and Goroutine (backed by golang.org/x/sync/errgroup).
//
// The engine itself has no opinion on how — or whether — two independent
// closures actually run concurrently: fork/join is pluggable. Anything
// satisfying Joiner works, including a caller's own worker-pool or a third
// Joiner this package doesn't ship.
package parallel
