// Package naive provides brute-force reference implementations of the
// collision, k-nearest, and ray-cast queries, operating directly on an
// element slice with no spatial index. These are never meant to be fast;
// their sole purpose is as a test oracle the tree-based implementations are
// checked against.
package naive
