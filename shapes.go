package mesh2d

import (
	"math"

	"github.com/chewxy/math32"
)

// RectPath returns the closed outline of an axis-aligned rectangle:
// bottom-left, top-left, top-right, bottom-right.
func RectPath(center Point, size Vec2) []Point {
	hx, hy := 0.5*size.X, 0.5*size.Y
	return []Point{
		{X: center.X - hx, Y: center.Y - hy},
		{X: center.X - hx, Y: center.Y + hy},
		{X: center.X + hx, Y: center.Y + hy},
		{X: center.X + hx, Y: center.Y - hy},
	}
}

// CirclePath returns count points evenly spaced on a circle, starting on
// the positive X axis and running counter-clockwise.
func CirclePath(center Point, radius float32, count int) []Point {
	path := make([]Point, count)
	da := 2 * math.Pi / float32(count)
	for i := range path {
		sin, cos := math32.Sincos(da * float32(i))
		path[i] = Point{X: center.X + radius*cos, Y: center.Y + radius*sin}
	}
	return path
}

// SoftStarPath returns count points of a wavy ring whose radius swings
// between small and large eight times per revolution.
func SoftStarPath(center Point, small, large float32, count int) []Point {
	path := make([]Point, count)
	da := 2 * math.Pi / float32(count)
	dw := 16 * math.Pi / float32(count)
	delta := large - small
	for i := range path {
		r := small + delta*math32.Sin(dw*float32(i))
		sin, cos := math32.Sincos(da * float32(i))
		path[i] = Point{X: center.X + r*cos, Y: center.Y + r*sin}
	}
	return path
}

// StrokeForEdge strokes the straight segment from start to end, with the
// caps requested by style.
//
// Like StrokeByPath it does not validate its input. Use Stroke with a
// two-point path when start may equal end.
func StrokeForEdge(start, end Point, style StrokeStyle, z float32, opts ...BuildOption) Mesh {
	return StrokeByPath([]Point{start, end}, false, style, z, opts...)
}

// StrokeForRect strokes the outline of an axis-aligned rectangle.
//
// Like StrokeByPath it does not validate its input. Use Stroke with RectPath
// when the geometry may be degenerate.
func StrokeForRect(center Point, size Vec2, style StrokeStyle, z float32, opts ...BuildOption) Mesh {
	return StrokeByPath(RectPath(center, size), true, style, z, opts...)
}

// StrokeForCircle strokes a circle approximated by count points.
// A count below 3 uses style.PointCount.
//
// Like StrokeByPath it does not validate its input. Use Stroke with CirclePath
// when the geometry may be degenerate.
func StrokeForCircle(center Point, radius float32, count int, style StrokeStyle, z float32, opts ...BuildOption) Mesh {
	if count < 3 {
		count = style.PointCount
	}
	return StrokeByPath(CirclePath(center, radius, count), true, style, z, opts...)
}

// StrokeForSoftStar strokes a SoftStarPath of count points.
// A count below 3 uses style.PointCount.
//
// Like StrokeByPath it does not validate its input. Use Stroke with SoftStarPath
// when the geometry may be degenerate.
func StrokeForSoftStar(center Point, small, large float32, count int, style StrokeStyle, z float32, opts ...BuildOption) Mesh {
	if count < 3 {
		count = style.PointCount
	}
	return StrokeByPath(SoftStarPath(center, small, large, count), true, style, z, opts...)
}
