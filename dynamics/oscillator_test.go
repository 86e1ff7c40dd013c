package dynamics

import (
	"math"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestCriticalDampingConvergesWithoutOvershoot(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	o := NewOscillator(1, 1)
	o.SetTarget(1)
	prev := o.Position
	for i := 0; i < 600; i++ {
		p := o.Update(1.0 / 60.0)
		assert.LessOrEqual(t, p, 1.0+1e-9, "critical damping must not overshoot")
		assert.GreaterOrEqual(t, p, prev-1e-12, "approach must be monotone from rest")
		prev = p
	}
	assert.InDelta(t, 1.0, o.Position, 1e-6)
}

func TestUnderdampedOvershoots(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	o := NewOscillator(1, 0.2)
	o.SetTarget(1)
	max := 0.0
	for i := 0; i < 600; i++ {
		if p := o.Update(1.0 / 60.0); p > max {
			max = p
		}
	}
	assert.Greater(t, max, 1.05, "low damping should ring past the target")
	assert.InDelta(t, 1.0, o.Position, 1e-2)
}

func TestOverdampedIsMonotone(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	o := NewOscillator(1, 3)
	o.SetTarget(1)
	prev := o.Position
	for i := 0; i < 600; i++ {
		p := o.Update(1.0 / 60.0)
		assert.LessOrEqual(t, p, 1.0+1e-9)
		assert.GreaterOrEqual(t, p, prev-1e-12)
		prev = p
	}
}

func TestLargeStepIsStable(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	// The exact solution tolerates steps far beyond what explicit Euler
	// would survive.
	o := NewOscillator(5, 1)
	o.SetTarget(10)
	o.Update(100)
	assert.InDelta(t, 10.0, o.Position, 1e-6)
	assert.InDelta(t, 0.0, o.Velocity, 1e-6)
}

func TestStepIndependence(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	// Integrating the exact solution in one step or many must agree.
	one := NewOscillator(1, 1)
	one.SetTarget(1)
	one.Update(0.5)
	many := NewOscillator(1, 1)
	many.SetTarget(1)
	for i := 0; i < 50; i++ {
		many.Update(0.01)
	}
	assert.InDelta(t, one.Position, many.Position, 1e-9)
	assert.InDelta(t, one.Velocity, many.Velocity, 1e-9)
}

func TestSnap(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	o := NewOscillator(2, 0.5)
	o.SetTarget(7)
	o.Velocity = 3
	o.Snap()
	assert.Equal(t, 7.0, o.Position)
	assert.Equal(t, 0.0, o.Velocity)
	assert.Equal(t, 7.0, o.Target())
}

func TestNonPositiveStepIsNoOp(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	o := NewOscillator(1, 1)
	o.SetTarget(1)
	o.Update(0.5)
	p, v := o.Position, o.Velocity
	o.Update(0)
	o.Update(-1)
	assert.Equal(t, p, o.Position)
	assert.Equal(t, v, o.Velocity)
}

func TestUnderdampedFrequency(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	// An undamped unit-frequency spring displaced from its target returns
	// to the displaced side after one full period.
	o := NewOscillator(1, 0)
	o.SetTarget(1)
	o.Update(1)
	assert.InDelta(t, 0.0, o.Position, 1e-9)
	o.Update(math.Nextafter(0, 1)) // a zero-measure nudge keeps state put
	assert.InDelta(t, 0.0, o.Position, 1e-6)
}
