package mesh2d

import mt "github.com/rustyoz/Mtransform"

// BuildOption configures a single mesh build.
// Use functional options to customize how output is produced.
//
// Example:
//
//	// Reuse the storage of last frame's mesh
//	m = mesh2d.StrokeByPath(path, false, style, 0, mesh2d.WithReuse(&m))
type BuildOption func(*buildOptions)

// buildOptions holds optional configuration for a build.
type buildOptions struct {
	reuse     *Mesh
	transform *mt.Transform
}

func newBuildOptions(opts []BuildOption) buildOptions {
	var o buildOptions
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithReuse makes the build write into the storage of m instead of
// allocating new buffers. The returned mesh may share memory with m, so
// m must not be used afterwards; assign the result back to it.
func WithReuse(m *Mesh) BuildOption {
	return func(o *buildOptions) {
		o.reuse = m
	}
}

// WithTransform applies t to every path point before stroking. The stroke
// width is not transformed: the ribbon keeps its width in output space.
func WithTransform(t mt.Transform) BuildOption {
	return func(o *buildOptions) {
		o.transform = &t
	}
}
