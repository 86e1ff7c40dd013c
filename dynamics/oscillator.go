// Package dynamics integrates damped harmonic oscillators, for
// spring-like motion toward a moving target.
/*

The integrator uses the exact exponential solution of the damped
oscillator per step instead of an explicit Euler scheme, so it stays
stable for any step size. A damping ratio of 1 gives the critically
damped spring commonly used for camera and UI motion: fastest approach
with no overshoot.

BSD License

Copyright (c) the playnub authors

All rights reserved.

Please refer to the license file for more information.
*/
package dynamics

import (
	"math"

	"github.com/npillmayer/schuko/tracing"
	"github.com/this-is-bennyk/playnub"
)

// tracer writes to trace with key 'playnub.dynamics'
func tracer() tracing.Trace {
	return tracing.Select("playnub.dynamics")
}

// Oscillator is a damped spring tracking a target value. Position and
// Velocity are the integrator's state; both may be read and written
// freely between steps.
type Oscillator struct {
	Position float64
	Velocity float64

	target  float64
	omega   float64 // angular frequency, rad/s
	damping float64 // damping ratio, 1 = critical
}

// NewOscillator creates an oscillator with the given natural frequency
// (Hz) and damping ratio. Frequency is clamped to a small positive
// minimum; a damping ratio below 0 is clamped to 0.
func NewOscillator(frequency, damping float64) *Oscillator {
	if frequency < 1e-6 {
		frequency = 1e-6
	}
	if damping < 0 {
		damping = 0
	}
	return &Oscillator{
		omega:   2 * math.Pi * frequency,
		damping: damping,
	}
}

// SetTarget moves the value the spring pulls toward.
func (o *Oscillator) SetTarget(x float64) {
	o.target = x
}

// Target returns the value the spring pulls toward.
func (o *Oscillator) Target() float64 {
	return o.target
}

// Snap teleports the oscillator onto its target and kills all velocity.
func (o *Oscillator) Snap() {
	o.Position = o.target
	o.Velocity = 0
}

// Update advances the oscillator by dt seconds and returns the new
// position. The exact per-regime solution is used, so large steps are
// safe.
func (o *Oscillator) Update(dt float64) float64 {
	if dt <= 0 {
		return o.Position
	}
	x := o.Position - o.target
	v := o.Velocity
	w := o.omega
	z := o.damping

	switch {
	case playnub.Is0(z - 1):
		// Critically damped: x(t) = (A + Bt)·e^(-ωt)
		e := math.Exp(-w * dt)
		b := v + w*x
		o.Position = o.target + (x+b*dt)*e
		o.Velocity = (b - w*(x+b*dt)) * e
	case z < 1:
		// Underdamped: decaying sinusoid at the damped frequency.
		wd := w * math.Sqrt(1-z*z)
		e := math.Exp(-z * w * dt)
		c := math.Cos(wd * dt)
		s := math.Sin(wd * dt)
		b := (v + z*w*x) / wd
		o.Position = o.target + e*(x*c+b*s)
		o.Velocity = -z*w*e*(x*c+b*s) + e*wd*(-x*s+b*c)
	default:
		// Overdamped: sum of two decaying exponentials.
		q := math.Sqrt(z*z - 1)
		r1 := -w * (z - q)
		r2 := -w * (z + q)
		a := (v - r2*x) / (r1 - r2)
		b := x - a
		e1 := math.Exp(r1 * dt)
		e2 := math.Exp(r2 * dt)
		o.Position = o.target + a*e1 + b*e2
		o.Velocity = a*r1*e1 + b*r2*e2
	}
	if playnub.Is0(o.Position-o.target) && playnub.Is0(o.Velocity) {
		tracer().Debugf("oscillator settled at %g", o.target)
		o.Snap()
	}
	return o.Position
}
