package splines

import "fmt"

// Kind selects the spline family. It determines both the control-point
// indexing stride and which closed-form basis is evaluated.
type Kind int

// The supported spline families.
const (
	Cardinal Kind = iota
	CatmullRom
	CubicBezier
	CubicBSpline
	Hermite
	KochanekBartels
	BiarcUncached
	BiarcCached
)

// Pretty Stringer for spline kinds.
func (k Kind) String() string {
	switch k {
	case Cardinal:
		return "Cardinal"
	case CatmullRom:
		return "Catmull-Rom"
	case CubicBezier:
		return "Cubic Bezier"
	case CubicBSpline:
		return "Cubic B-Spline"
	case Hermite:
		return "Hermite"
	case KochanekBartels:
		return "Kochanek-Bartels"
	case BiarcUncached:
		return "Biarc (uncached)"
	case BiarcCached:
		return "Biarc (cached)"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// IsBiarc is a predicate: does k name one of the two biarc variants?
func (k Kind) IsBiarc() bool {
	return k == BiarcUncached || k == BiarcCached
}

// IsTangential is a predicate: does k alternate point and tangent slots?
func (k Kind) IsTangential() bool {
	return k == Hermite || k.IsBiarc()
}

// IsRational is a predicate: does k support per-point ratio weighting?
// Biarcs have no rational form.
func (k Kind) IsRational() bool {
	return !k.IsBiarc()
}

func (k Kind) valid() bool {
	return k >= Cardinal && k <= BiarcCached
}

// Families outside the enum are a contract violation, never a silent default.
func badKind(k Kind) string {
	return fmt.Sprintf("splines: unknown spline kind %d", int(k))
}
