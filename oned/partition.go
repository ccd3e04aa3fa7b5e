package oned

import (
	"github.com/katalvlaran/broccoli/rect"
)

func start[N rect.Num, T rect.Elem[N]](e T, axis rect.Axis) N {
	return e.Rect().Axis(axis).Start
}

func end[N rect.Num, T rect.Elem[N]](e T, axis rect.Axis) N {
	return e.Rect().Axis(axis).End
}

// NthElement rearranges s in place (unstably) so that s[k], were s fully
// sorted ascending by start-on-axis, would land at index k: every element
// before k has a start <= s[k]'s start, every element after has a start >=
// it. This is the median-selection primitive the tree builder uses to pick
// a divider in O(n) expected time instead of paying for a full O(n log n)
// sort.
//
// There is no suitable third-party partial-selection library in the
// ecosystem (sort.Slice and the slices package only offer full sorts), so
// this is a hand-rolled Hoare-style quickselect — exactly the kind of
// performance-critical inner loop that calls for a from-scratch
// implementation.
func NthElement[N rect.Num, T rect.Elem[N]](s []T, k int, axis rect.Axis) error {
	if len(s) == 0 {
		return ErrEmptySelection
	}
	if k < 0 || k >= len(s) {
		return ErrIndexOutOfRange
	}

	lo, hi := 0, len(s)-1
	for lo < hi {
		pivot := start[N, T](s[(lo+hi)/2], axis)
		i, j := lo, hi
		for i <= j {
			for start[N, T](s[i], axis) < pivot {
				i++
			}
			for start[N, T](s[j], axis) > pivot {
				j--
			}
			if i <= j {
				s[i], s[j] = s[j], s[i]
				i++
				j--
			}
		}
		if k <= j {
			hi = j
		} else if k >= i {
			lo = i
		} else {
			break
		}
	}
	return nil
}

// ThreeWayPartition rearranges s in place around the divider v on axis into
// three contiguous regions, in this physical order: middle, then left, then
// right.
//
//   - middle: elements whose [start,end] on axis straddles v (start<=v<=end)
//   - left:   elements whose end on axis is strictly < v
//   - right:  elements whose start on axis is strictly > v
//
// The element that produced v (start == v) always lands in middle, because
// start<=v<=end holds trivially for it (start==v and end>=start==v). This
// ordering — middle first — is what lets the tree builder emit nodes in
// preorder without a second rearranging pass: middle becomes this node's
// range, left and right become the two subtrees' input ranges, already
// contiguous in exactly that order.
//
// This is a three-way Dutch National Flag partition: classes are ranked
// middle=0, left=1, right=2, and the classic low/mid/high invariant sorts
// by that rank in a single O(n) pass.
func ThreeWayPartition[N rect.Num, T rect.Elem[N]](s []T, axis rect.Axis, v N) (midCount, leftCount int) {
	classify := func(e T) int {
		r := e.Rect().Axis(axis)
		switch {
		case r.Start <= v && v <= r.End:
			return 0 // middle
		case r.End < v:
			return 1 // left
		default:
			return 2 // right
		}
	}

	low, mid, high := 0, 0, len(s)-1
	for mid <= high {
		switch classify(s[mid]) {
		case 0:
			s[low], s[mid] = s[mid], s[low]
			low++
			mid++
		case 1:
			mid++
		default:
			s[mid], s[high] = s[high], s[mid]
			high--
		}
	}

	return low, mid - low
}
