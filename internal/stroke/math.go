package stroke

import "github.com/chewxy/math32"

// Point is a 2D path point.
type Point struct {
	X, Y float32
}

// Add returns the point translated by v.
func (p Point) Add(v Vec2) Point {
	return Point{X: p.X + v.X, Y: p.Y + v.Y}
}

// Sub returns the vector from q to p.
func (p Point) Sub(q Point) Vec2 {
	return Vec2{X: p.X - q.X, Y: p.Y - q.Y}
}

// Vec2 represents a 2D displacement.
type Vec2 struct {
	X, Y float32
}

// Scale returns the vector scaled by s.
func (v Vec2) Scale(s float32) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Neg returns the negated vector.
func (v Vec2) Neg() Vec2 {
	return Vec2{X: -v.X, Y: -v.Y}
}

// Dot returns the dot product of two vectors.
func (v Vec2) Dot(w Vec2) float32 {
	return v.X*w.X + v.Y*w.Y
}

// Length returns the length of the vector.
func (v Vec2) Length() float32 {
	return math32.Hypot(v.X, v.Y)
}

// Ortho returns the left-hand normal of v (rotated 90 degrees
// counter-clockwise). The magnitude of v is preserved.
func (v Vec2) Ortho() Vec2 {
	return Vec2{X: -v.Y, Y: v.X}
}

// Vec3 is an emitted vertex position: the 2D point plus the stroke depth.
type Vec3 struct {
	X, Y, Z float32
}

// Cross returns the 2D cross product u.X*v.Y - u.Y*v.X.
// Positive values mean v is counter-clockwise from u (a left turn).
func Cross(u, v Vec2) float32 {
	return u.X*v.Y - u.Y*v.X
}

// Mat2 is a row-major 2x2 matrix.
type Mat2 [4]float32

// Rotation returns the counter-clockwise rotation by angle radians.
func Rotation(angle float32) Mat2 {
	sin, cos := math32.Sincos(angle)
	return Mat2{
		cos, -sin,
		sin, cos,
	}
}

// Apply returns m*v.
func (m Mat2) Apply(v Vec2) Vec2 {
	return Vec2{
		X: m[0]*v.X + m[1]*v.Y,
		Y: m[2]*v.X + m[3]*v.Y,
	}
}
