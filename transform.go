package mesh2d

import mt "github.com/rustyoz/Mtransform"

// TransformPath returns a copy of path with t applied to every point.
func TransformPath(path []Point, t mt.Transform) []Point {
	out := make([]Point, len(path))
	for i, p := range path {
		x, y := t.Apply(float64(p.X), float64(p.Y))
		out[i] = Point{X: float32(x), Y: float32(y)}
	}
	return out
}

// FitView returns the transform mapping box b into a w x h pixel image
// with the given margin, preserving aspect ratio and flipping Y so the
// mesh appears upright.
func FitView(b Box, w, h int, margin float64) mt.Transform {
	size := b.Size()
	sx := (float64(w) - 2*margin) / float64(max(size.X, 1e-6))
	sy := (float64(h) - 2*margin) / float64(max(size.Y, 1e-6))
	s := min(sx, sy)

	c := b.Center()
	return mt.Transform{
		{s, 0, float64(w)/2 - s*float64(c.X)},
		{0, -s, float64(h)/2 + s*float64(c.Y)},
		{0, 0, 1},
	}
}
