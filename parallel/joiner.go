package parallel

import "golang.org/x/sync/errgroup"

// Joiner runs two closures, possibly concurrently, and returns only once
// both have finished. Every fork point in the tree builder and in the
// parallel collision query is a synchronous join: there is no cancellation,
// no partial result, and no suspension beyond this one call.
type Joiner interface {
	Join(left, right func())
}

// Sequential runs left then right on the calling goroutine. BuildWith
// without WithParallel does not use a Joiner at all; it recurses
// sequentially on its own.
type Sequential struct{}

// Join implements Joiner by running both closures in order, synchronously.
func (Sequential) Join(left, right func()) {
	left()
	right()
}

// Goroutine forks right onto a new goroutine via errgroup and runs left on
// the caller, joining before returning. SwitchHeight bounds how many levels
// above the leaves it is still worth spawning a goroutine for; callers pass
// SwitchHeight through to BuildWith/FindCollidingPairsPar rather than to
// Goroutine itself, since the decision of *whether* to fork at a given
// depth belongs to the tree/colfind recursion, not the Joiner.
type Goroutine struct{}

// Join implements Joiner using an errgroup.Group: right runs on its own
// goroutine while left runs inline, and Join blocks until both return.
// errgroup swallows no panics and surfaces no errors here because neither
// closure returns one; Group.Wait's error result is always nil and is
// discarded.
func (Goroutine) Join(left, right func()) {
	var g errgroup.Group
	g.Go(func() error {
		right()
		return nil
	})
	left()
	_ = g.Wait()
}
