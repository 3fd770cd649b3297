package mesh2d

import "github.com/gogpu/mesh2d/internal/stroke"

// StrokeByPath strokes path with round joins into a triangle mesh at
// depth z. A closed path has an implicit edge from its last point back to
// the first and never gets caps; an open path gets the caps style asks for.
//
// StrokeByPath is the unchecked fast path: path must satisfy ValidatePath
// and style must satisfy StrokeStyle.Validate, otherwise the output
// contains NaN vertices. Use Stroke to validate first.
func StrokeByPath(path []Point, closed bool, style StrokeStyle, z float32, opts ...BuildOption) Mesh {
	o := newBuildOptions(opts)
	if o.transform != nil {
		path = TransformPath(path, *o.transform)
	}
	return build(path, closed, style, z, o.reuse)
}

// Stroke validates style and path, then strokes the path like
// StrokeByPath. A transform option is applied before the path is checked.
func Stroke(path []Point, closed bool, style StrokeStyle, z float32, opts ...BuildOption) (Mesh, error) {
	if err := style.Validate(); err != nil {
		Logger().Warn("mesh2d: stroke style rejected", "err", err)
		return Mesh{}, err
	}

	o := newBuildOptions(opts)
	if o.transform != nil {
		path = TransformPath(path, *o.transform)
	}
	if err := ValidatePath(path, closed); err != nil {
		Logger().Warn("mesh2d: path rejected", "points", len(path), "closed", closed, "err", err)
		return Mesh{}, err
	}
	return build(path, closed, style, z, o.reuse), nil
}

func build(path []Point, closed bool, style StrokeStyle, z float32, reuse *Mesh) Mesh {
	b := stroke.NewBuilder(style.builderStyle(), z)
	if reuse != nil {
		b.UseBuffers(reuse.Vertices, reuse.Triangles)
	}
	b.Stroke(path, closed)
	vertices, triangles := b.Take()

	Logger().Debug("mesh2d: stroke built",
		"points", len(path),
		"closed", closed,
		"vertices", len(vertices),
		"triangles", len(triangles)/3,
		"skipped_joints", b.SkippedJoints(),
	)
	return Mesh{Vertices: vertices, Triangles: triangles}
}
