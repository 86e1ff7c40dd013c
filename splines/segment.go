package splines

import "fmt"

// window is the resolved control-point window of one segment: four
// indices into the control-point list.
type window struct {
	x0, x1, x2, x3 int
}

// SegmentCount computes the number of curve segments for a control-point
// list of length n, per the indexing rules of family k. The same formula
// drives both the segment parameterizer and the length table; they must
// never disagree.
func SegmentCount(k Kind, n int, closed bool) int {
	if !k.valid() {
		panic(badKind(k))
	}
	if n == 0 {
		return 0
	}
	switch {
	case k == CubicBezier:
		// Points are grouped in runs of 3, sharing endpoints. A closed
		// curve wraps one extra run back to the start.
		if closed {
			return ceilDiv(n, 3)
		}
		return maxInt(1, ceilDiv(n-1, 3))
	case k.IsTangential():
		// Points alternate point and tangent. Closing adjusts the
		// effective count by +1 or +2 depending on parity, so the
		// point/tangent alternation wraps cleanly.
		eff := n
		if closed {
			if n%2 == 0 {
				eff += 2
			} else {
				eff++
			}
		}
		pairs := (eff + 1) / 2
		return maxInt(1, pairs-1)
	default:
		// Four-point sliding window: one point before, the segment's two
		// endpoints, one point after.
		if closed {
			return n
		}
		return maxInt(1, n-1)
	}
}

// locate maps the global parameter t ∈ [0,1] onto (segment index, local
// parameter u ∈ [0,1]) by proportional indexing over segs segments.
func locate(t float64, segs int) (int, float64) {
	if segs <= 0 {
		panic("splines: cannot locate a segment on an empty spline")
	}
	if t <= 0 {
		return 0, 0
	}
	if t >= 1 {
		return segs - 1, 1
	}
	f := t * float64(segs)
	seg := int(f)
	if seg >= segs {
		seg = segs - 1
	}
	return seg, f - float64(seg)
}

// segmentWindow resolves the four control-point indices of segment seg.
// Closed curves wrap indices modulo the point count, open curves clamp
// at the ends. This is pure index arithmetic; off-by-one errors here
// silently corrupt the evaluated curve shape.
func segmentWindow(k Kind, n int, closed bool, seg int) window {
	if n == 0 {
		panic("splines: segment window of an empty control-point list")
	}
	var base int
	switch {
	case k == CubicBezier:
		base = seg * 3
	case k.IsTangential():
		base = seg * 2
	default:
		base = seg - 1
	}
	idx := func(i int) int {
		if closed {
			return ((i % n) + n) % n
		}
		if i < 0 {
			return 0
		}
		if i >= n {
			return n - 1
		}
		return i
	}
	return window{
		x0: idx(base),
		x1: idx(base + 1),
		x2: idx(base + 2),
		x3: idx(base + 3),
	}
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Debug Stringer for windows.
func (w window) String() string {
	return fmt.Sprintf("[%d,%d,%d,%d]", w.x0, w.x1, w.x2, w.x3)
}
