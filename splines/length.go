package splines

// 5-point Gauss-Legendre quadrature coefficients on [-1,1], adapted from
// <https://pomax.github.io/bezierinfo/legendre-gauss.html>.
var gaussLegendre5 = [...][2]float64{
	{0.5688888888888889, 0.0000000000000000},
	{0.4786286704993665, -0.5384693101056831},
	{0.4786286704993665, 0.5384693101056831},
	{0.2369268850561891, -0.9061798459386640},
	{0.2369268850561891, 0.9061798459386640},
}

// quadrature approximates the integral of f over [0,upper] with 5-point
// Gauss-Legendre quadrature. With f = |velocity| this yields the arc
// length of one spline segment up to the local parameter upper.
func quadrature(f func(u float64) float64, upper float64) float64 {
	if upper <= 0 {
		return 0
	}
	half := upper / 2
	sum := 0.0
	for _, coeff := range gaussLegendre5 {
		w, x := coeff[0], coeff[1]
		sum += w * f(half*(x+1))
	}
	return sum * half
}
