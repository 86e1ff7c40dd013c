package splines

import (
	"errors"
	"fmt"

	"github.com/this-is-bennyk/playnub"
)

// ErrNoKnots indicates evaluation of a spline without control points.
var ErrNoKnots = errors.New("spline has no knots")

// minRatio is the lower clamp for rational weights, avoiding the
// singularity of an all-negative basis.
const minRatio = -0.499

// Spline is a per-dimension curve façade. It owns an ordered control-point
// list with per-point rational weights and the family-specific parameters,
// and delegates numeric work to the spline kernel. Length tables and (for
// the cached biarc family) per-segment arc data are rebuilt lazily after
// any mutation.
//
// A Spline is owned by a single logical owner; it performs no internal
// synchronization.
type Spline[V Vector[V]] struct {
	kind             Kind
	points           []V
	ratios           []float64
	closed           bool
	relativeTangents bool
	extras           Extras

	dirty   bool
	lengths []float64 // cumulative arc length per segment
	biarcs  []biarcSegment
}

// New creates an empty spline of family k, to be extended by subsequent
// builder calls. Biarc families require 2D control points; requesting one
// for another dimension panics.
func New[V Vector[V]](k Kind) *Spline[V] {
	if !k.valid() {
		panic(badKind(k))
	}
	s := &Spline[V]{kind: k, dirty: true}
	if k.IsBiarc() {
		var probe V
		if _, ok := any(probe).(playnub.Vec2); !ok {
			panic("splines: biarc curves require 2D control points")
		}
	}
	if k == Cardinal {
		// Neutral scale, reproducing Catmull-Rom.
		s.extras.Tension = 0.5
	}
	return s
}

// New1 creates a one-dimensional spline of family k.
func New1(k Kind) *Spline[playnub.Scalar] { return New[playnub.Scalar](k) }

// New2 creates a two-dimensional spline of family k.
func New2(k Kind) *Spline[playnub.Vec2] { return New[playnub.Vec2](k) }

// New3 creates a three-dimensional spline of family k.
func New3(k Kind) *Spline[playnub.Vec3] { return New[playnub.Vec3](k) }

// New4 creates a four-dimensional spline of family k.
func New4(k Kind) *Spline[playnub.Vec4] { return New[playnub.Vec4](k) }

// === Builder / mutation ====================================================

// Knot appends a control point with a neutral rational weight.
// Part of builder functionality.
func (s *Spline[V]) Knot(p V) *Spline[V] {
	s.points = append(s.points, p)
	s.ratios = append(s.ratios, 1.0)
	s.dirty = true
	return s
}

// Close marks the spline as cyclic: it loops back to the first point.
// Part of builder functionality.
func (s *Spline[V]) Close() *Spline[V] {
	s.closed = true
	s.dirty = true
	return s
}

// SetClosed is a property setter for the cyclic flag.
func (s *Spline[V]) SetClosed(closed bool) {
	if s.closed != closed {
		s.closed = closed
		s.dirty = true
	}
}

// IsClosed is a predicate: does this spline loop back to its first point?
func (s *Spline[V]) IsClosed() bool {
	return s.closed
}

// N returns the control-point count.
func (s *Spline[V]) N() int {
	return len(s.points)
}

// Kind returns the spline family.
func (s *Spline[V]) Kind() Kind {
	return s.kind
}

// Point returns control point i.
func (s *Spline[V]) Point(i int) V {
	s.checkIndex(i)
	return s.points[i]
}

// SetPoint replaces control point i.
func (s *Spline[V]) SetPoint(i int, p V) {
	s.checkIndex(i)
	s.points[i] = p
	s.dirty = true
}

// InsertKnot inserts a control point before index i, with a neutral
// rational weight. i may equal N() to append.
func (s *Spline[V]) InsertKnot(i int, p V) {
	if i < 0 || i > len(s.points) {
		panic(fmt.Sprintf("splines: knot index %d out of range [0,%d]", i, len(s.points)))
	}
	s.points = append(s.points, p)
	copy(s.points[i+1:], s.points[i:])
	s.points[i] = p
	s.ratios = append(s.ratios, 1.0)
	copy(s.ratios[i+1:], s.ratios[i:])
	s.ratios[i] = 1.0
	s.dirty = true
}

// Ratio returns the rational weight of control point i.
func (s *Spline[V]) Ratio(i int) float64 {
	s.checkIndex(i)
	return s.ratios[i]
}

// SetRatio sets the rational weight of control point i. Weights are
// clamped to a minimum of -0.499 to avoid basis singularities.
func (s *Spline[V]) SetRatio(i int, w float64) {
	s.checkIndex(i)
	if w < minRatio {
		w = minRatio
	}
	s.ratios[i] = w
	s.dirty = true
}

// SetTension is a property setter. Cardinal reads it as its scale factor,
// Kochanek-Bartels as its tension.
func (s *Spline[V]) SetTension(t float64) {
	s.extras.Tension = t
	s.dirty = true
}

// SetBias is a property setter (Kochanek-Bartels only).
func (s *Spline[V]) SetBias(b float64) {
	s.extras.Bias = b
	s.dirty = true
}

// SetContinuity is a property setter (Kochanek-Bartels only).
func (s *Spline[V]) SetContinuity(c float64) {
	s.extras.Continuity = c
	s.dirty = true
}

// SetRelativeTangents selects how the tangential families (Hermite,
// biarc) read their tangent slots: when enabled, a tangent slot holds a
// position and the tangent vector is its offset from the adjacent point;
// when disabled (the default) the slot is the tangent vector itself.
func (s *Spline[V]) SetRelativeTangents(rel bool) {
	s.relativeTangents = rel
	s.dirty = true
}

func (s *Spline[V]) checkIndex(i int) {
	if i < 0 || i >= len(s.points) {
		panic(fmt.Sprintf("splines: knot index %d out of range [0,%d)", i, len(s.points)))
	}
}

// Validate checks whether the spline can be evaluated.
func (s *Spline[V]) Validate() error {
	if len(s.points) == 0 {
		return ErrNoKnots
	}
	return nil
}

// === Evaluation ============================================================

// SegmentCount returns the number of curve segments of this spline.
func (s *Spline[V]) SegmentCount() int {
	return SegmentCount(s.kind, len(s.points), s.closed)
}

// Position evaluates the curve point at global parameter t ∈ [0,1].
func (s *Spline[V]) Position(t float64) V {
	return s.evalTier(position, t)
}

// Velocity evaluates the first derivative at global parameter t, taken
// with respect to the local segment parameter.
func (s *Spline[V]) Velocity(t float64) V {
	return s.evalTier(velocity, t)
}

// Acceleration evaluates the second derivative at global parameter t.
func (s *Spline[V]) Acceleration(t float64) V {
	return s.evalTier(acceleration, t)
}

// Jerk evaluates the third derivative at global parameter t.
func (s *Spline[V]) Jerk(t float64) V {
	return s.evalTier(jerk, t)
}

func (s *Spline[V]) evalTier(d tier, t float64) V {
	if err := s.Validate(); err != nil {
		panic(err)
	}
	segs := s.SegmentCount()
	seg, u := locate(t, segs)
	if s.kind.IsBiarc() {
		b := s.biarcFor(seg)
		var r playnub.Vec2
		switch d {
		case position:
			r = b.position(u)
		case velocity:
			r = b.velocity(u)
		case acceleration:
			r = b.acceleration(u)
		case jerk:
			r = b.jerk(u)
		}
		return any(r).(V)
	}
	w := segmentWindow(s.kind, len(s.points), s.closed, seg)
	p0, p1, p2, p3 := s.windowPoints(w)
	if s.hasRatios() {
		weights := [4]float64{s.ratios[w.x0], s.ratios[w.x1], s.ratios[w.x2], s.ratios[w.x3]}
		return rational(s.kind, d, u, p0, p1, p2, p3, weights, s.extras)
	}
	return eval(s.kind, d, u, p0, p1, p2, p3, s.extras)
}

// windowPoints fetches the four control values of a window, resolving
// relative tangent slots for the tangential families.
func (s *Spline[V]) windowPoints(w window) (V, V, V, V) {
	p0 := s.points[w.x0]
	p1 := s.points[w.x1]
	p2 := s.points[w.x2]
	p3 := s.points[w.x3]
	if s.kind.IsTangential() && s.relativeTangents {
		p1 = p1.Sub(p0)
		p3 = p3.Sub(p2)
	}
	return p0, p1, p2, p3
}

func (s *Spline[V]) hasRatios() bool {
	for _, w := range s.ratios {
		if w != 1.0 {
			return true
		}
	}
	return false
}

// === Length ================================================================

// Length approximates the arc length of the curve over [0,t]. The global
// parameter is mapped to a segment via the cumulative length table, then
// refined by local quadrature (exact interpolation for biarcs).
func (s *Spline[V]) Length(t float64) float64 {
	if err := s.Validate(); err != nil {
		panic(err)
	}
	s.recache()
	if len(s.lengths) == 0 {
		return 0
	}
	segs := len(s.lengths)
	seg, u := locate(t, segs)
	base := 0.0
	if seg > 0 {
		base = s.lengths[seg-1]
	}
	segLen := s.lengths[seg] - base
	if s.kind.IsBiarc() {
		// Biarc position is parameterized by fractional arclength, so
		// length is linear in the local parameter and exact.
		return base + u*segLen
	}
	return base + quadrature(s.speedFunc(seg), u)
}

// TotalLength returns the arc length of the whole curve.
func (s *Spline[V]) TotalLength() float64 {
	return s.Length(1)
}

// speedFunc returns |dP/du| of segment seg as a function of the local
// parameter, for quadrature.
func (s *Spline[V]) speedFunc(seg int) func(u float64) float64 {
	w := segmentWindow(s.kind, len(s.points), s.closed, seg)
	p0, p1, p2, p3 := s.windowPoints(w)
	if s.hasRatios() {
		weights := [4]float64{s.ratios[w.x0], s.ratios[w.x1], s.ratios[w.x2], s.ratios[w.x3]}
		return func(u float64) float64 {
			return rational(s.kind, velocity, u, p0, p1, p2, p3, weights, s.extras).Length()
		}
	}
	return func(u float64) float64 {
		return eval(s.kind, velocity, u, p0, p1, p2, p3, s.extras).Length()
	}
}

// recache rebuilds the length table and, for the cached biarc family,
// the per-segment arc data. Called lazily before any cached read.
func (s *Spline[V]) recache() {
	if !s.dirty && s.lengths != nil {
		return
	}
	segs := s.SegmentCount()
	s.lengths = make([]float64, 0, segs)
	s.biarcs = nil
	if s.kind == BiarcCached {
		s.biarcs = make([]biarcSegment, 0, segs)
	}
	total := 0.0
	for seg := 0; seg < segs; seg++ {
		var l float64
		if s.kind.IsBiarc() {
			b := s.buildBiarc(seg)
			if s.kind == BiarcCached {
				s.biarcs = append(s.biarcs, b)
			}
			l = b.length
		} else {
			l = quadrature(s.speedFunc(seg), 1)
		}
		total += l
		s.lengths = append(s.lengths, total)
	}
	tracer().Debugf("recached %s spline: %d segments, total length %.6g",
		s.kind, segs, total)
	s.dirty = false
}

// === Biarc plumbing ========================================================

// biarcFor returns the biarc of segment seg, from the cache when the
// family is BiarcCached, computed on the fly otherwise.
func (s *Spline[V]) biarcFor(seg int) biarcSegment {
	if s.kind == BiarcCached {
		s.recache()
		return s.biarcs[seg]
	}
	return s.buildBiarc(seg)
}

func (s *Spline[V]) buildBiarc(seg int) biarcSegment {
	w := segmentWindow(s.kind, len(s.points), s.closed, seg)
	p0, t0, p1, t1 := s.windowPoints(w)
	return makeBiarc(
		any(p0).(playnub.Vec2),
		any(t0).(playnub.Vec2),
		any(p1).(playnub.Vec2),
		any(t1).(playnub.Vec2),
	)
}
