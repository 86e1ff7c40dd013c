package splines

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestSegmentCount(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	cases := []struct {
		kind   Kind
		n      int
		closed bool
		want   int
	}{
		{CubicBezier, 4, false, 1},
		{CubicBezier, 5, false, 2},
		{CubicBezier, 7, false, 2},
		{CubicBezier, 4, true, 2},
		{CubicBezier, 6, true, 2},
		{CatmullRom, 1, false, 1},
		{CatmullRom, 4, false, 3},
		{CatmullRom, 4, true, 4},
		{CubicBSpline, 6, false, 5},
		{Hermite, 4, false, 1},
		{Hermite, 6, false, 2},
		{Hermite, 4, true, 2},
		{Hermite, 5, true, 2},
		{BiarcUncached, 4, false, 1},
		{BiarcCached, 8, false, 3},
	}
	for _, c := range cases {
		got := SegmentCount(c.kind, c.n, c.closed)
		if got != c.want {
			t.Errorf("SegmentCount(%s, n=%d, closed=%v) = %d, want %d",
				c.kind, c.n, c.closed, got, c.want)
		}
	}
}

func TestSegmentWindowClampsOpenEnds(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	// First segment of an open 4-point windowed spline borrows the first
	// point as its virtual predecessor.
	w := segmentWindow(CatmullRom, 4, false, 0)
	if w != (window{0, 0, 1, 2}) {
		t.Errorf("open window of segment 0 = %s, want [0,0,1,2]", w)
	}
	w = segmentWindow(CatmullRom, 4, false, 2)
	if w != (window{1, 2, 3, 3}) {
		t.Errorf("open window of segment 2 = %s, want [1,2,3,3]", w)
	}
}

func TestSegmentWindowWrapsClosed(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	w := segmentWindow(CatmullRom, 4, true, 3)
	if w != (window{2, 3, 0, 1}) {
		t.Errorf("closed window of segment 3 = %s, want [2,3,0,1]", w)
	}
	w = segmentWindow(CatmullRom, 4, true, 0)
	if w != (window{3, 0, 1, 2}) {
		t.Errorf("closed window of segment 0 = %s, want [3,0,1,2]", w)
	}
	// Bezier runs wrap back onto the first point.
	w = segmentWindow(CubicBezier, 6, true, 1)
	if w != (window{3, 4, 5, 0}) {
		t.Errorf("closed Bezier window of segment 1 = %s, want [3,4,5,0]", w)
	}
}

func TestLocate(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	cases := []struct {
		t    float64
		segs int
		seg  int
		u    float64
	}{
		{0, 3, 0, 0},
		{1, 3, 2, 1},
		{1.5, 3, 2, 1},  // overshoot clamps into the last segment
		{-0.5, 3, 0, 0}, // undershoot clamps into the first
		{0.5, 2, 1, 0},
		{0.75, 2, 1, 0.5},
		{0.25, 1, 0, 0.25},
	}
	for _, c := range cases {
		seg, u := locate(c.t, c.segs)
		if seg != c.seg || u != c.u {
			t.Errorf("locate(%g, %d) = (%d, %g), want (%d, %g)",
				c.t, c.segs, seg, u, c.seg, c.u)
		}
	}
}
