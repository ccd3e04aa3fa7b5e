package colfind_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/broccoli/colfind"
	"github.com/katalvlaran/broccoli/naive"
	"github.com/katalvlaran/broccoli/parallel"
	"github.com/katalvlaran/broccoli/pmut"
	"github.com/katalvlaran/broccoli/rect"
	"github.com/katalvlaran/broccoli/tree"
)

type box struct {
	id int
	r  rect.Rectangle[int]
}

func (b box) Rect() rect.Rectangle[int] { return b.r }

func mkBox(id, x0, x1, y0, y1 int) box {
	return box{id: id, r: rect.NewRectangle[int](x0, x1, y0, y1)}
}

func randomBoxes(n int, seed int64) []box {
	rng := rand.New(rand.NewSource(seed))
	out := make([]box, n)
	for i := range out {
		x0 := rng.Intn(500)
		y0 := rng.Intn(500)
		out[i] = mkBox(i, x0, x0+rng.Intn(30)+1, y0, y0+rng.Intn(30)+1)
	}
	return out
}

type pairKey [2]int

func normPair(a, b int) pairKey {
	if a > b {
		a, b = b, a
	}
	return pairKey{a, b}
}

func pairSet(pairs []pairKey) map[pairKey]int {
	m := make(map[pairKey]int, len(pairs))
	for _, p := range pairs {
		m[p]++
	}
	return m
}

func naivePairs(elems []box) []pairKey {
	var want []pairKey
	naive.FindCollidingPairs[int, box](elems, func(a, b box) {
		want = append(want, normPair(a.id, b.id))
	})
	return want
}

func TestFindCollidingPairsMatchesNaive(t *testing.T) {
	for seed := int64(0); seed < 8; seed++ {
		elems := randomBoxes(300, seed)
		want := pairSet(naivePairs(elems))

		tr := tree.Build[int, box](append([]box(nil), elems...))
		var got []pairKey
		colfind.FindCollidingPairs[int, box](&tr, func(a, b pmut.PMut[int, box]) {
			got = append(got, normPair(a.Inner().id, b.Inner().id))
		})

		if gotSet := pairSet(got); !mapsEqual(gotSet, want) {
			t.Fatalf("seed %d: colfind pairs disagree with naive oracle (got %d pairs, want %d)", seed, len(got), len(want))
		}
	}
}

func TestFindCollidingPairsParMatchesNaive(t *testing.T) {
	elems := randomBoxes(400, 42)
	want := pairSet(naivePairs(elems))

	tr := tree.Build[int, box](append([]box(nil), elems...))
	var got []pairKey
	colfind.FindCollidingPairsPar[int, box](&tr, parallel.Sequential{}, tree.DefaultSwitchHeight, func(a, b pmut.PMut[int, box]) {
		got = append(got, normPair(a.Inner().id, b.Inner().id))
	})

	if gotSet := pairSet(got); !mapsEqual(gotSet, want) {
		t.Fatalf("colfind parallel pairs disagree with naive oracle (got %d pairs, want %d)", len(got), len(want))
	}
}

func TestFindCollidingPairsParExtAccumulatesAllPairs(t *testing.T) {
	elems := randomBoxes(200, 7)
	want := pairSet(naivePairs(elems))

	tr := tree.Build[int, box](append([]box(nil), elems...))

	split := func(acc []pairKey) ([]pairKey, []pairKey) { return nil, nil }
	merge := func(a, b []pairKey) []pairKey { return append(a, b...) }
	collide := func(acc []pairKey, a, b pmut.PMut[int, box]) []pairKey {
		return append(acc, normPair(a.Inner().id, b.Inner().id))
	}

	got := colfind.FindCollidingPairsParExt[int, box, []pairKey](&tr, parallel.Sequential{}, tree.DefaultSwitchHeight, nil, split, merge, collide)

	if gotSet := pairSet(got); !mapsEqual(gotSet, want) {
		t.Fatalf("colfind ext-accumulator pairs disagree with naive oracle (got %d pairs, want %d)", len(got), len(want))
	}
}

func TestFindCollidingPairsUnsortedTreeStillMatchesNaive(t *testing.T) {
	elems := randomBoxes(150, 99)
	want := pairSet(naivePairs(elems))

	tr, err := tree.BuildWith[int, box](append([]box(nil), elems...), tree.WithUnsorted())
	if err != nil {
		t.Fatalf("BuildWith: %v", err)
	}
	var got []pairKey
	colfind.FindCollidingPairs[int, box](&tr, func(a, b pmut.PMut[int, box]) {
		got = append(got, normPair(a.Inner().id, b.Inner().id))
	})

	if gotSet := pairSet(got); !mapsEqual(gotSet, want) {
		t.Fatalf("unsorted-tree pairs disagree with naive oracle (got %d pairs, want %d)", len(got), len(want))
	}
}

func TestFindCollidingPairsEmptyAndSingleton(t *testing.T) {
	tr := tree.Build[int, box](nil)
	colfind.FindCollidingPairs[int, box](&tr, func(a, b pmut.PMut[int, box]) {
		t.Fatalf("unexpected pair from empty tree")
	})

	single := tree.Build[int, box]([]box{mkBox(0, 0, 1, 0, 1)})
	colfind.FindCollidingPairs[int, box](&single, func(a, b pmut.PMut[int, box]) {
		t.Fatalf("unexpected pair from singleton tree")
	})
}

func mapsEqual(a, b map[pairKey]int) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		if b[k] != v {
			return false
		}
	}
	return true
}
