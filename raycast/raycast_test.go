package raycast_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/katalvlaran/broccoli/naive"
	"github.com/katalvlaran/broccoli/raycast"
	"github.com/katalvlaran/broccoli/rect"
	"github.com/katalvlaran/broccoli/tree"
)

type hbox struct {
	id int
	r  rect.Rectangle[int]
}

func (b hbox) Rect() rect.Rectangle[int] { return b.r }

func mkHBox(id, x0, x1, y0, y1 int) hbox {
	return hbox{id: id, r: rect.NewRectangle[int](x0, x1, y0, y1)}
}

func randomHBoxes(n int, seed int64) []hbox {
	rng := rand.New(rand.NewSource(seed))
	out := make([]hbox, n)
	for i := range out {
		x0 := rng.Intn(900)
		y0 := rng.Intn(900)
		out[i] = mkHBox(i, x0, x0+rng.Intn(20)+1, y0, y0+rng.Intn(20)+1)
	}
	return out
}

// xRayHandler models a horizontal ray at y = Origin.Y traveling along the X
// axis. It is exact (CastBroad and CastFine agree), which keeps the test
// oracle comparison unambiguous.
type xRayHandler struct{}

func (xRayHandler) CastToLine(ray raycast.Ray[int], axis rect.Axis, v int) (int, bool) {
	if axis == rect.AxisX {
		if ray.Forward[rect.AxisX] {
			if v >= ray.Origin.X {
				return v - ray.Origin.X, true
			}
			return 0, false
		}
		if v <= ray.Origin.X {
			return ray.Origin.X - v, true
		}
		return 0, false
	}
	if v == ray.Origin.Y {
		return 0, true
	}
	return 0, false
}

func (xRayHandler) CastBroad(ray raycast.Ray[int], e hbox) (int, bool) {
	if !e.r.Y.Contains(ray.Origin.Y) {
		return 0, false
	}
	if ray.Forward[rect.AxisX] {
		if e.r.X.End < ray.Origin.X {
			return 0, false
		}
		near := e.r.X.Start
		if near < ray.Origin.X {
			near = ray.Origin.X
		}
		return near - ray.Origin.X, true
	}
	if e.r.X.Start > ray.Origin.X {
		return 0, false
	}
	near := e.r.X.End
	if near > ray.Origin.X {
		near = ray.Origin.X
	}
	return ray.Origin.X - near, true
}

func (h xRayHandler) CastFine(ray raycast.Ray[int], e hbox) (int, bool) {
	return h.CastBroad(ray, e)
}

func idsOf(elems []hbox) []int {
	ids := make([]int, len(elems))
	for i, e := range elems {
		ids[i] = e.id
	}
	sort.Ints(ids)
	return ids
}

func TestCastRayMatchesNaive(t *testing.T) {
	h := xRayHandler{}
	for seed := int64(0); seed < 6; seed++ {
		elems := randomHBoxes(300, seed)
		ray := raycast.Ray[int]{Origin: rect.Point[int]{X: 0, Y: 450}, Forward: [2]bool{true, false}}

		tr := tree.Build[int, hbox](append([]hbox(nil), elems...))
		got := raycast.CastRay[int, hbox](&tr, ray, h)

		wantHit, wantMag, wantElems := naive.CastRay[int, hbox](elems, ray, h)

		if got.Hit() != wantHit {
			t.Fatalf("seed %d: Hit() = %v, want %v", seed, got.Hit(), wantHit)
		}
		if !wantHit {
			continue
		}
		gotMag, _ := got.Magnitude()
		if gotMag != wantMag {
			t.Fatalf("seed %d: Magnitude() = %d, want %d", seed, gotMag, wantMag)
		}
		if a, b := idsOf(got.Elements()), idsOf(wantElems); !intSlicesEqual(a, b) {
			t.Fatalf("seed %d: Elements() = %v, want %v", seed, a, b)
		}
	}
}

func TestCastRayNoHit(t *testing.T) {
	elems := []hbox{mkHBox(0, 10, 20, 10, 20)}
	tr := tree.Build[int, hbox](elems)
	ray := raycast.Ray[int]{Origin: rect.Point[int]{X: 0, Y: 500}, Forward: [2]bool{true, false}}

	got := raycast.CastRay[int, hbox](&tr, ray, xRayHandler{})
	if got.Hit() {
		t.Fatalf("expected no hit, got Hit()=true")
	}
}

func intSlicesEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
