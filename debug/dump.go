package debug

import (
	"github.com/davecgh/go-spew/spew"

	"github.com/katalvlaran/broccoli/rect"
	"github.com/katalvlaran/broccoli/tree"
)

// nodeSummary is one line of a Dump: a node's shape, stripped of its
// element payloads (which may be arbitrarily large or uninteresting).
type nodeSummary[N rect.Num] struct {
	Depth   int
	Axis    rect.Axis
	IsLeaf  bool
	NumElem int
	RangeN  int
	Cont    rect.Range[N]
	Div     *N
}

var dumpConfig = &spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
}

// Dump renders t's shape — one nodeSummary per Node, in preorder — as a
// human-readable string. It never touches element payloads, so it is safe
// to call on trees holding large or unexported-field element types.
func Dump[N rect.Num, T rect.Elem[N]](t *tree.Tree[N, T]) string {
	var summaries []nodeSummary[N]
	var walk func(v tree.Vistr[N, T], depth int)
	walk = func(v tree.Vistr[N, T], depth int) {
		node, left, right, hasChildren := v.Next()
		summaries = append(summaries, nodeSummary[N]{
			Depth:   depth,
			Axis:    t.AxisAt(depth),
			IsLeaf:  node.IsLeaf(),
			NumElem: node.NumElem,
			RangeN:  len(node.Range),
			Cont:    node.Cont,
			Div:     node.Div,
		})
		if hasChildren {
			walk(left, depth+1)
			walk(right, depth+1)
		}
	}
	walk(t.Vistr(), 0)
	return dumpConfig.Sdump(summaries)
}
