// Package splines evaluates parametric curves over eight spline families.
/*

The supported families are Cardinal, Catmull-Rom, cubic Bézier, cubic
B-spline, Hermite, Kochanek-Bartels, and biarcs (uncached and cached).
Evaluation works for one- to four-dimensional control points and yields
position, velocity, acceleration and jerk. All non-biarc families support
rational (per-point weighted) evaluation. Arc length is approximated by
5-point Gauss-Legendre quadrature of the velocity magnitude; biarc length
is exact.

The primary sources of information for the basis functions are:

   A Class of Local Interpolating Splines -- Edwin Catmull, Raphael Rom
   Computer Aided Geometric Design, Academic Press 1974

   Interpolating Splines with Local Tension, Continuity, and Bias Control
   Doris H. U. Kochanek, Richard H. Bartels
   SIGGRAPH '84

   The Biarc Approximation -- see e.g. Nutbourne & Martin,
   Differential Geometry Applied to Curve and Surface Design, 1988

Usage

Clients build a spline façade for the point dimension they need, append
knots in a builder manner, and evaluate at a global parameter t ∈ [0,1]:

   s := splines.New2(splines.CatmullRom).
       Knot(playnub.V2(0, 0)).
       Knot(playnub.V2(1, 2)).
       Knot(playnub.V2(3, 2)).
       Knot(playnub.V2(4, 0))
   p := s.Position(0.5)
   l := s.TotalLength()

The global parameter is distributed uniformly over the spline's segments.
Segment topology depends on the family: Bézier groups control points in
runs of three, the tangential families (Hermite, biarc) alternate point
and tangent slots in runs of two, and the remaining families slide a
four-point window along the control polygon.

Caveats

Biarc curves are two-dimensional only, and their velocity, acceleration
and jerk are finite-difference approximations of the arc-length
parameterized position. Callers should treat them with tolerance, not
equality.

BSD License

Copyright (c) the playnub authors

All rights reserved.

Please refer to the license file for more information.
*/
package splines

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'playnub.splines'
func tracer() tracing.Trace {
	return tracing.Select("playnub.splines")
}
