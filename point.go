package mesh2d

import (
	"github.com/chewxy/math32"

	"github.com/gogpu/mesh2d/internal/stroke"
)

// Point is a 2D path point.
type Point = stroke.Point

// Vec2 is a 2D displacement, the difference of two points.
type Vec2 = stroke.Vec2

// Vec3 is a mesh vertex position: a path-plane point plus the flat depth
// the mesh was generated at.
type Vec3 = stroke.Vec3

// Pt is a convenience function to create a Point.
func Pt(x, y float32) Point {
	return Point{X: x, Y: y}
}

// isFinite reports whether both coordinates of p are finite.
func isFinite(p Point) bool {
	return !math32.IsNaN(p.X) && !math32.IsNaN(p.Y) &&
		!math32.IsInf(p.X, 0) && !math32.IsInf(p.Y, 0)
}

// Box is an axis-aligned bounding box.
type Box struct {
	Min, Max Vec3
}

// Center returns the center of the box.
func (b Box) Center() Vec3 {
	return Vec3{
		X: 0.5 * (b.Min.X + b.Max.X),
		Y: 0.5 * (b.Min.Y + b.Max.Y),
		Z: 0.5 * (b.Min.Z + b.Max.Z),
	}
}

// Size returns the extent of the box along each axis.
func (b Box) Size() Vec3 {
	return Vec3{
		X: b.Max.X - b.Min.X,
		Y: b.Max.Y - b.Min.Y,
		Z: b.Max.Z - b.Min.Z,
	}
}

// Empty reports whether the box contains no points.
func (b Box) Empty() bool {
	return b.Min.X > b.Max.X || b.Min.Y > b.Max.Y || b.Min.Z > b.Max.Z
}

// emptyBox returns an inverted box that any point expands.
func emptyBox() Box {
	inf := math32.Inf(1)
	return Box{
		Min: Vec3{X: inf, Y: inf, Z: inf},
		Max: Vec3{X: -inf, Y: -inf, Z: -inf},
	}
}

func (b *Box) expand(v Vec3) {
	b.Min = Vec3{X: min(b.Min.X, v.X), Y: min(b.Min.Y, v.Y), Z: min(b.Min.Z, v.Z)}
	b.Max = Vec3{X: max(b.Max.X, v.X), Y: max(b.Max.Y, v.Y), Z: max(b.Max.Z, v.Z)}
}
