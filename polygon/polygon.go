// Package polygon implements 2D polygons: building, flattening splines
// into outlines, and boolean clipping.
/*

BSD License

Copyright (c) the playnub authors

All rights reserved.

Please refer to the license file for more information.
*/
package polygon

import (
	"fmt"
	"math"

	"github.com/npillmayer/schuko/tracing"
	"github.com/this-is-bennyk/playnub"
	"github.com/this-is-bennyk/playnub/splines"
)

// L traces to a tracer with key 'playnub.polygon'.
func L() tracing.Trace {
	return tracing.Select("playnub.polygon")
}

// Polygon is a sequence of 2D knots, optionally closed into a cycle.
// Clipping and area require a cycle.
type Polygon struct {
	points []playnub.Vec2
	cycle  bool
}

// NullPolygon creates an empty polygon, to be extended by subsequent
// builder calls.
func NullPolygon() *Polygon {
	return &Polygon{}
}

// Knot appends a corner point. Part of builder functionality.
func (pg *Polygon) Knot(p playnub.Vec2) *Polygon {
	pg.points = append(pg.points, p)
	return pg
}

// Cycle closes the polygon. Part of builder functionality.
func (pg *Polygon) Cycle() *Polygon {
	pg.cycle = true
	return pg
}

// Box creates a rectangular polygon from two opposite corners.
func Box(topleft, bottomright playnub.Vec2) *Polygon {
	return NullPolygon().
		Knot(topleft).
		Knot(playnub.V2(bottomright.X, topleft.Y)).
		Knot(bottomright).
		Knot(playnub.V2(topleft.X, bottomright.Y)).
		Cycle()
}

// FromSpline flattens a 2D spline façade into a polygon by sampling
// samples points at uniform parameter spacing. A closed spline yields a
// cyclic polygon. samples must be at least 2.
func FromSpline(s *splines.Spline[playnub.Vec2], samples int) *Polygon {
	if samples < 2 {
		panic(fmt.Sprintf("polygon: need at least 2 samples, got %d", samples))
	}
	pg := NullPolygon()
	if s.IsClosed() {
		// The sample at t=1 would coincide with t=0.
		for i := 0; i < samples; i++ {
			pg.Knot(s.Position(float64(i) / float64(samples)))
		}
		pg.Cycle()
		return pg
	}
	for i := 0; i < samples; i++ {
		pg.Knot(s.Position(float64(i) / float64(samples-1)))
	}
	return pg
}

// N returns the knot count.
func (pg *Polygon) N() int {
	return len(pg.points)
}

// Pt returns knot i.
func (pg *Polygon) Pt(i int) playnub.Vec2 {
	return pg.points[i]
}

// IsCycle is a predicate: is this polygon closed?
func (pg *Polygon) IsCycle() bool {
	return pg.cycle
}

// Area returns the unsigned area of a cyclic polygon (shoelace formula),
// 0 for open polygons.
func (pg *Polygon) Area() float64 {
	if !pg.cycle || len(pg.points) < 3 {
		return 0
	}
	sum := 0.0
	n := len(pg.points)
	for i := 0; i < n; i++ {
		p := pg.points[i]
		q := pg.points[(i+1)%n]
		sum += p.Cross(q)
	}
	return math.Abs(sum) / 2
}

// AsString returns a polygon as a (debugging) string, in one line.
func AsString(pg *Polygon) string {
	var s string
	for i, p := range pg.points {
		if i > 0 {
			s += " -- "
		}
		s += fmt.Sprintf("%s", p)
	}
	if pg.cycle {
		s += " -- cycle"
	}
	return s
}
