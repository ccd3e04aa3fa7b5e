package tree

import "errors"

// Sentinel errors returned by this package. Callers should branch on them
// with errors.Is, never by comparing message strings.
var (
	// ErrNodeDataMismatch is returned by Rebuild when the supplied NodeData
	// slice does not describe a tree whose per-node range lengths sum to the
	// length of the supplied buffer.
	ErrNodeDataMismatch = errors.New("tree: node data population does not match buffer length")

	// ErrZeroHeight is returned by BuildWith when WithHeight is given a
	// value below 1; height must be at least 1 (a single leaf).
	ErrZeroHeight = errors.New("tree: height override must be >= 1")
)
