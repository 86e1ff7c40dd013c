package splines

import (
	"github.com/this-is-bennyk/playnub"
)

// Vector is the constraint shared by all control-point types. It is
// satisfied by playnub.Scalar, playnub.Vec2, playnub.Vec3 and playnub.Vec4.
type Vector[V any] interface {
	Add(V) V
	Sub(V) V
	Scale(float64) V
	Length() float64
}

// Extras carries the family-specific scalar parameters. Cardinal reads
// Tension as its scale factor (0.5 reproduces Catmull-Rom exactly);
// Kochanek-Bartels reads all three. The other families ignore Extras.
type Extras struct {
	Tension    float64
	Bias       float64
	Continuity float64
}

// A derivative tier of the basis functions.
type tier int

const (
	position tier = iota
	velocity
	acceleration
	jerk
)

// Position evaluates the basis of family k at local parameter u ∈ [0,1]
// over the four control values p0..p3. Biarc kinds are not evaluated here
// (they are two-dimensional only, see Spline); passing one panics.
func Position[V Vector[V]](k Kind, u float64, p0, p1, p2, p3 V, ex Extras) V {
	return eval(k, position, u, p0, p1, p2, p3, ex)
}

// Velocity evaluates the first derivative of the basis of family k with
// respect to the local parameter u.
func Velocity[V Vector[V]](k Kind, u float64, p0, p1, p2, p3 V, ex Extras) V {
	return eval(k, velocity, u, p0, p1, p2, p3, ex)
}

// Acceleration evaluates the second derivative of the basis of family k.
func Acceleration[V Vector[V]](k Kind, u float64, p0, p1, p2, p3 V, ex Extras) V {
	return eval(k, acceleration, u, p0, p1, p2, p3, ex)
}

// Jerk evaluates the third derivative of the basis of family k.
func Jerk[V Vector[V]](k Kind, u float64, p0, p1, p2, p3 V, ex Extras) V {
	return eval(k, jerk, u, p0, p1, p2, p3, ex)
}

func eval[V Vector[V]](k Kind, d tier, u float64, p0, p1, p2, p3 V, ex Extras) V {
	switch k {
	case Cardinal:
		return cardinal(d, u, p0, p1, p2, p3, ex.Tension)
	case CatmullRom:
		return cardinal(d, u, p0, p1, p2, p3, 0.5)
	case CubicBezier:
		return bezier(d, u, p0, p1, p2, p3)
	case CubicBSpline:
		// Remap the raw control points into virtual Bézier control points.
		// The remap is a linear transform of the inputs, so the same
		// virtual points feed every derivative tier.
		b0, b1, b2, b3 := bsplineToBezier(p0, p1, p2, p3)
		return bezier(d, u, b0, b1, b2, b3)
	case Hermite:
		// Tangential layout: p0,p2 are points, p1,p3 their tangents.
		return hermite(d, u, p0, p1, p2, p3)
	case KochanekBartels:
		t1, t2 := kbTangents(p0, p1, p2, p3, ex)
		return hermite(d, u, p1, t1, p2, t2)
	case BiarcUncached, BiarcCached:
		panic("splines: biarc evaluation requires 2D control points, use a Spline over playnub.Vec2")
	}
	panic(badKind(k))
}

// RationalPosition evaluates the ratio-weighted basis of family k. The
// control values are weighted by w0..w3, the same basis is evaluated on
// the weights alone to obtain the normalizing divisor, and the result is
// divided by it. A numerically zero divisor is substituted by 1.0.
func RationalPosition[V Vector[V]](k Kind, u float64, p0, p1, p2, p3 V, w [4]float64, ex Extras) V {
	return rational(k, position, u, p0, p1, p2, p3, w, ex)
}

// RationalVelocity is the ratio-weighted first derivative. See RationalPosition.
func RationalVelocity[V Vector[V]](k Kind, u float64, p0, p1, p2, p3 V, w [4]float64, ex Extras) V {
	return rational(k, velocity, u, p0, p1, p2, p3, w, ex)
}

// RationalAcceleration is the ratio-weighted second derivative. See RationalPosition.
func RationalAcceleration[V Vector[V]](k Kind, u float64, p0, p1, p2, p3 V, w [4]float64, ex Extras) V {
	return rational(k, acceleration, u, p0, p1, p2, p3, w, ex)
}

// RationalJerk is the ratio-weighted third derivative. See RationalPosition.
func RationalJerk[V Vector[V]](k Kind, u float64, p0, p1, p2, p3 V, w [4]float64, ex Extras) V {
	return rational(k, jerk, u, p0, p1, p2, p3, w, ex)
}

func rational[V Vector[V]](k Kind, d tier, u float64, p0, p1, p2, p3 V, w [4]float64, ex Extras) V {
	if !k.IsRational() {
		panic("splines: biarc curves have no rational form")
	}
	weighted := eval(k, d, u, p0.Scale(w[0]), p1.Scale(w[1]), p2.Scale(w[2]), p3.Scale(w[3]), ex)
	basis := eval(k, d, u, playnub.S(w[0]), playnub.S(w[1]), playnub.S(w[2]), playnub.S(w[3]), ex)
	div := basis.F()
	if playnub.Is0(div) {
		div = 1.0
	}
	return weighted.Scale(1 / div)
}

// === Basis functions =======================================================

// Hermite basis weights h00, h10, h01, h11 and their derivatives.
func hermiteBasis(d tier, u float64) (h00, h10, h01, h11 float64) {
	u2 := u * u
	u3 := u2 * u
	switch d {
	case position:
		return 2*u3 - 3*u2 + 1, u3 - 2*u2 + u, -2*u3 + 3*u2, u3 - u2
	case velocity:
		return 6*u2 - 6*u, 3*u2 - 4*u + 1, -6*u2 + 6*u, 3*u2 - 2*u
	case acceleration:
		return 12*u - 6, 6*u - 4, -12*u + 6, 6*u - 2
	case jerk:
		return 12, 6, -12, 6
	}
	panic("splines: unknown derivative tier")
}

func hermite[V Vector[V]](d tier, u float64, p1, t1, p2, t2 V) V {
	h00, h10, h01, h11 := hermiteBasis(d, u)
	return p1.Scale(h00).Add(t1.Scale(h10)).Add(p2.Scale(h01)).Add(t2.Scale(h11))
}

// Cardinal blend: a Hermite curve between p1 and p2 whose tangents are
// the neighbor differences scaled by s. s=0.5 is Catmull-Rom.
func cardinal[V Vector[V]](d tier, u float64, p0, p1, p2, p3 V, s float64) V {
	t1 := p2.Sub(p0).Scale(s)
	t2 := p3.Sub(p1).Scale(s)
	return hermite(d, u, p1, t1, p2, t2)
}

// Bernstein basis weights and their derivatives for a cubic Bézier.
func bezierBasis(d tier, u float64) (b0, b1, b2, b3 float64) {
	m := 1 - u
	switch d {
	case position:
		return m * m * m, 3 * m * m * u, 3 * m * u * u, u * u * u
	case velocity:
		return -3 * m * m, 3*m*m - 6*m*u, 6*m*u - 3*u*u, 3 * u * u
	case acceleration:
		return 6 * m, 6*u - 12*m, 6*m - 12*u, 6 * u
	case jerk:
		return -6, 18, -18, 6
	}
	panic("splines: unknown derivative tier")
}

func bezier[V Vector[V]](d tier, u float64, p0, p1, p2, p3 V) V {
	b0, b1, b2, b3 := bezierBasis(d, u)
	return p0.Scale(b0).Add(p1.Scale(b1)).Add(p2.Scale(b2)).Add(p3.Scale(b3))
}

// bsplineToBezier remaps four raw B-spline control points into the four
// virtual Bézier control points of the same segment, using the fixed
// 1/6, 1/3, 1/3, 1/6 weighted combinations.
func bsplineToBezier[V Vector[V]](p0, p1, p2, p3 V) (V, V, V, V) {
	b0 := p0.Scale(1.0 / 6.0).Add(p1.Scale(2.0 / 3.0)).Add(p2.Scale(1.0 / 6.0))
	b1 := p1.Scale(2.0 / 3.0).Add(p2.Scale(1.0 / 3.0))
	b2 := p1.Scale(1.0 / 3.0).Add(p2.Scale(2.0 / 3.0))
	b3 := p1.Scale(1.0 / 6.0).Add(p2.Scale(2.0 / 3.0)).Add(p3.Scale(1.0 / 6.0))
	return b0, b1, b2, b3
}

// kbTangents derives the two Kochanek-Bartels tangents of the segment
// p1..p2 from the neighboring points and the tension/bias/continuity
// triple. Tension shrinks or grows the tangents, bias skews them toward
// the previous or next segment, continuity controls how sharply the
// incoming and outgoing tangents differ at a knot.
func kbTangents[V Vector[V]](p0, p1, p2, p3 V, ex Extras) (V, V) {
	t, b, c := ex.Tension, ex.Bias, ex.Continuity
	d01 := p1.Sub(p0)
	d12 := p2.Sub(p1)
	d23 := p3.Sub(p2)
	out := d01.Scale((1 - t) * (1 + b) * (1 + c) / 2).
		Add(d12.Scale((1 - t) * (1 - b) * (1 - c) / 2))
	in := d12.Scale((1 - t) * (1 + b) * (1 - c) / 2).
		Add(d23.Scale((1 - t) * (1 - b) * (1 + c) / 2))
	return out, in
}
