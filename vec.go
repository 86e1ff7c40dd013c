package playnub

import (
	"fmt"
	"math"
)

// === Scalar Data Type ======================================================

// Scalar is a 1-component value. It exists so that one-dimensional curves
// share the affine-combination methods of the vector types.
type Scalar float64

// S is a quick notation for constructing a scalar from a float.
func S(x float64) Scalar {
	return Scalar(x)
}

// F returns the scalar as a plain float.
func (s Scalar) F() float64 { return float64(s) }

// Add returns s + o.
func (s Scalar) Add(o Scalar) Scalar { return s + o }

// Sub returns s - o.
func (s Scalar) Sub(o Scalar) Scalar { return s - o }

// Scale returns s scaled by factor a.
func (s Scalar) Scale(a float64) Scalar { return Scalar(float64(s) * a) }

// Length returns the absolute value of s.
func (s Scalar) Length() float64 { return math.Abs(float64(s)) }

// Pretty Stringer for scalars.
func (s Scalar) String() string {
	return fmt.Sprintf("(%g)", float64(s))
}

// === Pair / Vector Data Types ==============================================

// Vec2 is a 2-component vector.
type Vec2 struct {
	X, Y float64
}

// V2 is a quick notation for constructing a 2D vector from floats.
func V2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Pretty Stringer for 2D vectors.
func (v Vec2) String() string {
	return fmt.Sprintf("(%g,%g)", v.X, v.Y)
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Scale returns a new vector scaled by factor a.
func (v Vec2) Scale(a float64) Vec2 { return Vec2{v.X * a, v.Y * a} }

// Dot is the dot product v·o.
func (v Vec2) Dot(o Vec2) float64 { return v.X*o.X + v.Y*o.Y }

// Cross is the 2D cross product (z-component of the 3D cross product).
func (v Vec2) Cross(o Vec2) float64 { return v.X*o.Y - v.Y*o.X }

// Length returns the Euclidean length of v.
func (v Vec2) Length() float64 { return math.Hypot(v.X, v.Y) }

// Perp returns v rotated counterclockwise by 90 degrees.
func (v Vec2) Perp() Vec2 { return Vec2{-v.Y, v.X} }

// Normalized returns v scaled to unit length, or the zero vector if v is
// shorter than ε.
func (v Vec2) Normalized() Vec2 {
	l := v.Length()
	if Is0(l) {
		return Vec2{}
	}
	return v.Scale(1 / l)
}

// Equal compares two vectors componentwise with ε tolerance.
func (v Vec2) Equal(o Vec2) bool {
	return Is0(v.X-o.X) && Is0(v.Y-o.Y)
}

// Vec3 is a 3-component vector.
type Vec3 struct {
	X, Y, Z float64
}

// V3 is a quick notation for constructing a 3D vector from floats.
func V3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Pretty Stringer for 3D vectors.
func (v Vec3) String() string {
	return fmt.Sprintf("(%g,%g,%g)", v.X, v.Y, v.Z)
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

// Scale returns a new vector scaled by factor a.
func (v Vec3) Scale(a float64) Vec3 { return Vec3{v.X * a, v.Y * a, v.Z * a} }

// Dot is the dot product v·o.
func (v Vec3) Dot(o Vec3) float64 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

// Length returns the Euclidean length of v.
func (v Vec3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Equal compares two vectors componentwise with ε tolerance.
func (v Vec3) Equal(o Vec3) bool {
	return Is0(v.X-o.X) && Is0(v.Y-o.Y) && Is0(v.Z-o.Z)
}

// Vec4 is a 4-component vector.
type Vec4 struct {
	X, Y, Z, W float64
}

// V4 is a quick notation for constructing a 4D vector from floats.
func V4(x, y, z, w float64) Vec4 {
	return Vec4{X: x, Y: y, Z: z, W: w}
}

// Pretty Stringer for 4D vectors.
func (v Vec4) String() string {
	return fmt.Sprintf("(%g,%g,%g,%g)", v.X, v.Y, v.Z, v.W)
}

// Add returns v + o.
func (v Vec4) Add(o Vec4) Vec4 {
	return Vec4{v.X + o.X, v.Y + o.Y, v.Z + o.Z, v.W + o.W}
}

// Sub returns v - o.
func (v Vec4) Sub(o Vec4) Vec4 {
	return Vec4{v.X - o.X, v.Y - o.Y, v.Z - o.Z, v.W - o.W}
}

// Scale returns a new vector scaled by factor a.
func (v Vec4) Scale(a float64) Vec4 {
	return Vec4{v.X * a, v.Y * a, v.Z * a, v.W * a}
}

// Dot is the dot product v·o.
func (v Vec4) Dot(o Vec4) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z + v.W*o.W
}

// Length returns the Euclidean length of v.
func (v Vec4) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z + v.W*v.W)
}

// Equal compares two vectors componentwise with ε tolerance.
func (v Vec4) Equal(o Vec4) bool {
	return Is0(v.X-o.X) && Is0(v.Y-o.Y) && Is0(v.Z-o.Z) && Is0(v.W-o.W)
}
