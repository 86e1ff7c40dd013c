package playnub

import "math"

// Lerp interpolates linearly between a and b. t=0 returns a, t=1 returns b.
// t is not clamped.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// InverseLerp computes the fraction that n lies between a and b.
// Returns 0 if the interval collapses below ε.
func InverseLerp(a, b, n float64) float64 {
	if Is0(b - a) {
		return 0
	}
	return (n - a) / (b - a)
}

// Remap maps n from the interval [a1,b1] onto [a2,b2].
func Remap(n, a1, b1, a2, b2 float64) float64 {
	return Lerp(a2, b2, InverseLerp(a1, b1, n))
}

// SmoothStep is the classic cubic Hermite smoothing of t, clamped to [0,1].
func SmoothStep(t float64) float64 {
	t = Clamp(t, 0, 1)
	return t * t * (3 - 2*t)
}

// Decay moves a toward b with an exponential rate per second. Unlike a
// naive Lerp(a, b, rate*dt) it is independent of frame rate: iterating
// with many small dt steps converges to the same trajectory as few large
// ones.
func Decay(a, b, rate, dt float64) float64 {
	return b + (a-b)*math.Exp(-rate*dt)
}
