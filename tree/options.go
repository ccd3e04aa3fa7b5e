package tree

import "github.com/katalvlaran/broccoli/parallel"

// DefaultElementsPerLeaf is the target population of each leaf node, used
// by the height heuristic when no WithHeight option is given.
const DefaultElementsPerLeaf = 32

// DefaultSwitchHeight is how many levels above the leaves parallel
// construction and parallel collision queries keep forking before falling
// back to sequential work, amortizing goroutine-spawn overhead.
const DefaultSwitchHeight = 5

// Sorter selects whether each node's Range is kept sorted by start on the
// perpendicular axis after construction (I4). Sorted is required for the
// collision query's sweep-based self-pairs check; Unsorted skips the sort
// at build time and trades build speed for an O(k^2) per-node fallback at
// query time (a plain KD-tree).
type Sorter uint8

const (
	// Sorted keeps each node's Range sorted — the default, required by
	// colfind's sweep-based self-pairs check.
	Sorted Sorter = iota
	// Unsorted skips the per-node sort; colfind must fall back to a
	// brute-force self-pairs check for any Tree built this way.
	Unsorted
)

// ParallelConfig turns on parallel construction. A nil Joiner is invalid;
// use WithParallel to build one together with a SwitchHeight.
type ParallelConfig struct {
	Joiner       parallel.Joiner
	SwitchHeight int
}

// config holds every tunable parameter for Build/BuildWith. Its zero value
// is not directly usable; defaultConfig populates it.
type config struct {
	height          *int // nil means "use the heuristic"; WithHeight always sets this, even to 0
	elementsPerLeaf int
	parallel        *ParallelConfig // nil means sequential
	sorter          Sorter
}

func defaultConfig() config {
	return config{
		elementsPerLeaf: DefaultElementsPerLeaf,
		sorter:          Sorted,
	}
}

// Option customizes BuildWith's behavior. Options apply left to right; a
// later Option overrides an earlier one that touches the same field.
type Option func(*config)

// WithHeight overrides the height heuristic with an explicit tree height.
// Height must be >= 1; BuildWith returns ErrZeroHeight otherwise.
func WithHeight(h int) Option {
	return func(c *config) { c.height = &h }
}

// WithElementsPerLeaf overrides the target leaf population the height
// heuristic aims for. It has no effect if WithHeight is also supplied.
func WithElementsPerLeaf(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.elementsPerLeaf = n
		}
	}
}

// WithParallel enables parallel construction using j, forking at every
// depth strictly above switchHeight levels from the leaves and falling
// back to sequential recursion at or below it.
func WithParallel(j parallel.Joiner, switchHeight int) Option {
	return func(c *config) {
		if j == nil {
			return
		}
		c.parallel = &ParallelConfig{Joiner: j, SwitchHeight: switchHeight}
	}
}

// WithUnsorted disables the perpendicular-axis sort within each node
// (I4), producing a plain KD-tree. colfind reads Tree.Sorter and uses a
// brute-force pair check for a Tree built this way.
func WithUnsorted() Option {
	return func(c *config) { c.sorter = Unsorted }
}

// heightFor computes the default height heuristic: h=1 for n <=
// elementsPerLeaf, else h = ceil(log2(n/elementsPerLeaf)) + 1. This targets
// roughly elementsPerLeaf elements per leaf.
func heightFor(n, elementsPerLeaf int) int {
	if elementsPerLeaf <= 0 {
		elementsPerLeaf = DefaultElementsPerLeaf
	}
	if n <= elementsPerLeaf {
		return 1
	}
	leaves := 1
	h := 1
	// leaves = 2^(h-1); grow h until elementsPerLeaf*leaves >= n (ceil(log2(n/elementsPerLeaf))).
	for elementsPerLeaf*leaves < n {
		leaves *= 2
		h++
	}
	return h
}
