package rect_test

import (
	"testing"

	"github.com/katalvlaran/broccoli/rect"
)

func TestAxisNext(t *testing.T) {
	if rect.AxisX.Next() != rect.AxisY {
		t.Fatalf("AxisX.Next() = %v, want AxisY", rect.AxisX.Next())
	}
	if rect.AxisY.Next() != rect.AxisX {
		t.Fatalf("AxisY.Next() = %v, want AxisX", rect.AxisY.Next())
	}
}

func TestRangeIntersects(t *testing.T) {
	cases := []struct {
		name string
		a, b rect.Range[int]
		want bool
	}{
		{"disjoint", rect.Range[int]{0, 5}, rect.Range[int]{6, 10}, false},
		{"touching", rect.Range[int]{0, 5}, rect.Range[int]{5, 10}, true},
		{"overlapping", rect.Range[int]{0, 5}, rect.Range[int]{3, 10}, true},
		{"contained", rect.Range[int]{0, 10}, rect.Range[int]{3, 4}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.want {
				t.Errorf("%v.Intersects(%v) = %v, want %v", tc.a, tc.b, got, tc.want)
			}
			if got := tc.b.Intersects(tc.a); got != tc.want {
				t.Errorf("Intersects must be symmetric: %v.Intersects(%v) = %v, want %v", tc.b, tc.a, got, tc.want)
			}
		})
	}
}

func TestRectangleIntersects(t *testing.T) {
	a := rect.NewRectangle[int](0, 10, 0, 10)
	b := rect.NewRectangle[int](10, 20, 0, 10)
	if !a.Intersects(b) {
		t.Fatalf("edge-touching rectangles must intersect")
	}

	c := rect.NewRectangle[int](11, 20, 0, 10)
	if a.Intersects(c) {
		t.Fatalf("disjoint rectangles must not intersect")
	}
}

func TestRectangleContainsPoint(t *testing.T) {
	r := rect.NewRectangle[int](0, 10, 0, 10)
	if !r.ContainsPoint(rect.Point[int]{X: 0, Y: 10}) {
		t.Fatalf("corner point should be contained (closed interval)")
	}
	if r.ContainsPoint(rect.Point[int]{X: 11, Y: 0}) {
		t.Fatalf("point outside x-range must not be contained")
	}
}

func TestRectangleWithin(t *testing.T) {
	outer := rect.NewRectangle[int](0, 10, 0, 10)
	inner := rect.NewRectangle[int](2, 8, 2, 8)
	if !inner.Within(outer) {
		t.Fatalf("inner should be fully contained within outer")
	}
	if outer.Within(inner) {
		t.Fatalf("outer should not be contained within the smaller inner")
	}
	edge := rect.NewRectangle[int](0, 10, 0, 10)
	if !edge.Within(outer) {
		t.Fatalf("identical rectangles should count as within (closed bounds)")
	}
	overhanging := rect.NewRectangle[int](-1, 5, 0, 5)
	if overhanging.Within(outer) {
		t.Fatalf("rectangle extending past outer's bound must not be within")
	}
}

func TestPointCoord(t *testing.T) {
	p := rect.Point[int]{X: 3, Y: 7}
	if p.Coord(rect.AxisX) != 3 {
		t.Fatalf("Coord(AxisX) = %d, want 3", p.Coord(rect.AxisX))
	}
	if p.Coord(rect.AxisY) != 7 {
		t.Fatalf("Coord(AxisY) = %d, want 7", p.Coord(rect.AxisY))
	}
}
