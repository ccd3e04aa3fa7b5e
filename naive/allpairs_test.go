package naive_test

import (
	"testing"

	"github.com/katalvlaran/broccoli/naive"
	"github.com/katalvlaran/broccoli/rect"
)

type box struct {
	id int
	r  rect.Rectangle[int]
}

func (b box) Rect() rect.Rectangle[int] { return b.r }

func TestFindCollidingPairsFindsOverlapsOnly(t *testing.T) {
	elems := []box{
		{id: 0, r: rect.NewRectangle[int](0, 5, 0, 5)},
		{id: 1, r: rect.NewRectangle[int](3, 8, 0, 5)},
		{id: 2, r: rect.NewRectangle[int](100, 105, 0, 5)},
	}

	var got [][2]int
	naive.FindCollidingPairs[int, box](elems, func(a, b box) {
		got = append(got, [2]int{a.id, b.id})
	})

	if len(got) != 1 || got[0] != [2]int{0, 1} {
		t.Fatalf("got %v, want exactly [{0 1}]", got)
	}
}

func TestFindCollidingPairsEmpty(t *testing.T) {
	var count int
	naive.FindCollidingPairs[int, box](nil, func(a, b box) { count++ })
	if count != 0 {
		t.Fatalf("expected no pairs from an empty slice, got %d", count)
	}
}
