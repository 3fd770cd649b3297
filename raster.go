package mesh2d

import (
	"image"

	mt "github.com/rustyoz/Mtransform"
	"golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

// Rasterize renders the triangles of m into a w x h coverage mask.
// view maps mesh coordinates to pixel coordinates; see FitView.
//
// Overlapping triangles do not accumulate beyond full coverage, so the
// mask shows exactly the area the mesh covers. It is meant for previews
// and coverage checks, not as a substitute for a GPU pipeline.
func Rasterize(m Mesh, w, h int, view mt.Transform) *image.Alpha {
	dst := image.NewAlpha(image.Rect(0, 0, w, h))
	if len(m.Triangles) == 0 {
		return dst
	}

	z := vector.NewRasterizer(w, h)
	z.DrawOp = draw.Src
	addTriangles(z, m.Vertices, m.Triangles, view)
	z.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})
	return dst
}

// RasterizeColor paints cm over dst. Triangles take the color of their
// first vertex; runs of triangles sharing a color are painted together.
func RasterizeColor(dst *image.RGBA, cm ColorMesh, view mt.Transform) {
	b := dst.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())

	tris := cm.Triangles
	for len(tris) >= 3 {
		c := cm.Colors[tris[0]]
		n := 3
		for n+3 <= len(tris) && cm.Colors[tris[n]] == c {
			n += 3
		}

		z.Reset(b.Dx(), b.Dy())
		z.DrawOp = draw.Over
		addTriangles(z, cm.Vertices, tris[:n], view)
		z.Draw(dst, b, image.NewUniform(c.Color()), image.Point{})
		tris = tris[n:]
	}
}

func addTriangles(z *vector.Rasterizer, vertices []Vec3, triangles []uint32, view mt.Transform) {
	for i := 0; i+2 < len(triangles); i += 3 {
		for k := range 3 {
			v := vertices[triangles[i+k]]
			x, y := view.Apply(float64(v.X), float64(v.Y))
			if k == 0 {
				z.MoveTo(float32(x), float32(y))
			} else {
				z.LineTo(float32(x), float32(y))
			}
		}
		z.ClosePath()
	}
}
