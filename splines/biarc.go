package splines

import (
	"math"

	"github.com/this-is-bennyk/playnub"
)

// biarcEps is the finite-difference step for biarc derivatives.
//
// TODO(derivatives): replace with the exact analytic derivatives of the
// arc-length parameterization; until then velocity/acceleration/jerk of
// biarc curves are approximations.
const biarcEps = 0.0001

// arc is one circular arc (or a degenerate line segment) of a biarc.
type arc struct {
	line     bool
	from, to playnub.Vec2 // endpoints, authoritative for the line case
	center   playnub.Vec2
	radius   float64
	start    float64 // start angle
	sweep    float64 // signed sweep angle, positive = counterclockwise
	length   float64
}

// makeArc constructs the unique circular arc from p to q that leaves p
// with direction tangent (unit length). A chord collinear with the
// tangent degenerates to a line segment.
func makeArc(p, tangent, q playnub.Vec2) arc {
	chord := q.Sub(p)
	clen := chord.Length()
	if playnub.Is0(clen) {
		return arc{line: true, from: p, to: q}
	}
	cross := tangent.Cross(chord)
	if playnub.Is0(cross / clen) {
		return arc{line: true, from: p, to: q, length: clen}
	}
	n := tangent.Perp()
	if cross < 0 {
		n = n.Scale(-1)
	}
	r := chord.Dot(chord) / (2 * n.Dot(chord))
	center := p.Add(n.Scale(r))
	start := math.Atan2(p.Y-center.Y, p.X-center.X)
	end := math.Atan2(q.Y-center.Y, q.X-center.X)
	sweep := end - start
	if cross > 0 {
		// counterclockwise, sweep in (0, 2π)
		for sweep <= 0 {
			sweep += 2 * math.Pi
		}
	} else {
		for sweep >= 0 {
			sweep -= 2 * math.Pi
		}
	}
	return arc{
		from:   p,
		to:     q,
		center: center,
		radius: r,
		start:  start,
		sweep:  sweep,
		length: r * math.Abs(sweep),
	}
}

// reversed returns the same arc traversed from to-end to from-end.
func (a arc) reversed() arc {
	b := a
	b.from, b.to = a.to, a.from
	if !a.line {
		b.start = a.start + a.sweep
		b.sweep = -a.sweep
	}
	return b
}

// at evaluates the arc at fraction s ∈ [0,1] of its own length.
func (a arc) at(s float64) playnub.Vec2 {
	if a.line {
		return a.from.Add(a.to.Sub(a.from).Scale(s))
	}
	ang := a.start + a.sweep*s
	return a.center.Add(playnub.V2(math.Cos(ang), math.Sin(ang)).Scale(a.radius))
}

// biarcSegment is one precomputed biarc: two circular arcs joined at a
// computed junction point.
type biarcSegment struct {
	a1, a2 arc
	length float64
}

// makeBiarc solves the biarc through p0 and p1 with tangent directions
// t0 and t1, choosing equal free parameters for both arcs. Parallel
// tangents fall back to the degenerate line or twin-semicircle solutions.
func makeBiarc(p0, t0, p1, t1 playnub.Vec2) biarcSegment {
	v := p1.Sub(p0)
	if playnub.Is0(v.Length()) {
		a := arc{line: true, from: p0, to: p1}
		return biarcSegment{a1: a, a2: a}
	}
	// Zero-length tangents degrade to the chord direction.
	if playnub.Is0(t0.Length()) {
		t0 = v
	}
	if playnub.Is0(t1.Length()) {
		t1 = v
	}
	t0 = t0.Normalized()
	t1 = t1.Normalized()

	tsum := t0.Add(t1)
	denom := 2 * (1 - t0.Dot(t1))
	vt := v.Dot(tsum)
	mid := p0.Add(p1).Scale(0.5)

	var junction playnub.Vec2
	switch {
	case playnub.Is0(denom) && playnub.Is0(vt):
		// Parallel tangents, chord perpendicular: two semicircles.
		junction = mid
	case playnub.Is0(denom):
		// Parallel tangents: the junction collapses onto the chord
		// midpoint (straight line when the chord is tangent-aligned).
		junction = mid
	default:
		disc := vt*vt + denom*v.Dot(v)
		d := (-vt + math.Sqrt(disc)) / denom
		junction = mid.Add(t0.Sub(t1).Scale(d / 2))
	}

	a1 := makeArc(p0, t0, junction)
	a2 := makeArc(p1, t1.Scale(-1), junction).reversed()
	tracer().Debugf("biarc %s -> %s junction %s, lengths %.4g + %.4g",
		p0, p1, junction, a1.length, a2.length)
	return biarcSegment{a1: a1, a2: a2, length: a1.length + a2.length}
}

// position reads the point at fraction u ∈ [0,1] of the biarc's total
// arc length (fractional arclength, not fractional curve parameter).
func (b biarcSegment) position(u float64) playnub.Vec2 {
	if b.length <= 0 {
		return b.a1.from
	}
	u = playnub.Clamp(u, 0, 1)
	s := u * b.length
	if s <= b.a1.length && b.a1.length > 0 {
		return b.a1.at(s / b.a1.length)
	}
	if b.a2.length <= 0 {
		return b.a2.to
	}
	return b.a2.at((s - b.a1.length) / b.a2.length)
}

// velocity approximates dP/du by central finite difference.
func (b biarcSegment) velocity(u float64) playnub.Vec2 {
	lo := math.Max(u-biarcEps, 0)
	hi := math.Min(u+biarcEps, 1)
	if hi <= lo {
		return playnub.Vec2{}
	}
	return b.position(hi).Sub(b.position(lo)).Scale(1 / (hi - lo))
}

// acceleration approximates d²P/du² by a second-difference stencil.
func (b biarcSegment) acceleration(u float64) playnub.Vec2 {
	c := playnub.Clamp(u, biarcEps, 1-biarcEps)
	p := b.position(c - biarcEps).Add(b.position(c + biarcEps)).Sub(b.position(c).Scale(2))
	return p.Scale(1 / (biarcEps * biarcEps))
}

// jerk approximates d³P/du³ by a third-difference stencil.
func (b biarcSegment) jerk(u float64) playnub.Vec2 {
	c := playnub.Clamp(u, 2*biarcEps, 1-2*biarcEps)
	p := b.position(c + 2*biarcEps).
		Sub(b.position(c + biarcEps).Scale(2)).
		Add(b.position(c - biarcEps).Scale(2)).
		Sub(b.position(c - 2*biarcEps))
	return p.Scale(1 / (2 * biarcEps * biarcEps * biarcEps))
}
