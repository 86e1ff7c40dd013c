package polygon

import (
	"errors"

	polyclip "github.com/akavel/polyclip-go"

	"github.com/this-is-bennyk/playnub"
)

// ErrOpenPolygon indicates a boolean operation on a non-cyclic polygon.
var ErrOpenPolygon = errors.New("polygon must be a cycle for clipping")

// Union returns the boolean union of two cyclic polygons, one polygon
// per resulting contour.
func Union(pg, other *Polygon) ([]*Polygon, error) {
	return clip(polyclip.UNION, pg, other)
}

// Intersect returns the boolean intersection of two cyclic polygons.
func Intersect(pg, other *Polygon) ([]*Polygon, error) {
	return clip(polyclip.INTERSECTION, pg, other)
}

// Subtract returns pg minus other, for cyclic polygons.
func Subtract(pg, other *Polygon) ([]*Polygon, error) {
	return clip(polyclip.DIFFERENCE, pg, other)
}

// Xor returns the symmetric difference of two cyclic polygons.
func Xor(pg, other *Polygon) ([]*Polygon, error) {
	return clip(polyclip.XOR, pg, other)
}

func clip(op polyclip.Op, pg, other *Polygon) ([]*Polygon, error) {
	if !pg.IsCycle() || !other.IsCycle() {
		return nil, ErrOpenPolygon
	}
	subject := toClipper(pg)
	clipping := toClipper(other)
	result := subject.Construct(op, clipping)
	L().Debugf("clip op %d: %d x %d knots -> %d contours",
		op, pg.N(), other.N(), len(result))
	out := make([]*Polygon, 0, len(result))
	for _, contour := range result {
		rpg := NullPolygon()
		for _, pt := range contour {
			rpg.Knot(playnub.V2(pt.X, pt.Y))
		}
		out = append(out, rpg.Cycle())
	}
	return out, nil
}

func toClipper(pg *Polygon) polyclip.Polygon {
	contour := make(polyclip.Contour, 0, pg.N())
	for _, p := range pg.points {
		contour = append(contour, polyclip.Point{X: p.X, Y: p.Y})
	}
	return polyclip.Polygon{contour}
}
