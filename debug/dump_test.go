package debug_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/broccoli/debug"
	"github.com/katalvlaran/broccoli/rect"
	"github.com/katalvlaran/broccoli/tree"
)

type box struct {
	id int
	r  rect.Rectangle[int]
}

func (b box) Rect() rect.Rectangle[int] { return b.r }

func TestDumpRendersEveryNode(t *testing.T) {
	elems := make([]box, 40)
	for i := range elems {
		elems[i] = box{id: i, r: rect.NewRectangle[int](i, i+1, i, i+1)}
	}
	tr, err := tree.BuildWith[int, box](elems, tree.WithHeight(3))
	if err != nil {
		t.Fatalf("BuildWith: %v", err)
	}

	out := debug.Dump[int, box](&tr)
	if out == "" {
		t.Fatalf("Dump returned empty output")
	}
	if got := strings.Count(out, "NumElem:"); got != tr.NumNodes() {
		t.Fatalf("Dump printed %d node summaries, want %d", got, tr.NumNodes())
	}
}
