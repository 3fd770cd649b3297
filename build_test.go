package mesh2d

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	mt "github.com/rustyoz/Mtransform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// checkMesh verifies that every index is in range, no triangle repeats a
// vertex, every vertex is finite and every triangle is clockwise (Y up).
func checkMesh(t *testing.T, m Mesh) {
	t.Helper()
	require.Zero(t, len(m.Triangles)%3, "index count not a multiple of 3")
	for _, v := range m.Vertices {
		require.True(t, isFinite(Point{X: v.X, Y: v.Y}), "non-finite vertex %v", v)
	}
	n := uint32(len(m.Vertices))
	for i := 0; i < len(m.Triangles); i += 3 {
		a, b, c := m.Triangles[i], m.Triangles[i+1], m.Triangles[i+2]
		require.Less(t, a, n)
		require.Less(t, b, n)
		require.Less(t, c, n)
		require.True(t, a != b && b != c && a != c, "triangle %d repeats a vertex", i/3)

		pa, pb, pc := m.Vertices[a], m.Vertices[b], m.Vertices[c]
		area := (pb.X-pa.X)*(pc.Y-pa.Y) - (pb.Y-pa.Y)*(pc.X-pa.X)
		require.Less(t, area, float32(0), "triangle %d is not clockwise", i/3)
	}
}

func TestStrokeOpenPath(t *testing.T) {
	style := DefaultStrokeStyle().WithWidth(1).WithMinSegmentStep(1).WithCaps(true, true)
	path := []Point{Pt(0, 0), Pt(4, 0), Pt(4, 4)}

	m, err := Stroke(path, false, style, 2)
	require.NoError(t, err)
	checkMesh(t, m)

	// 2 ribbons of 2 pieces (6 vertices, 4 triangles each), a right angle
	// joint (4 vertices, 4 triangles) and two caps (8 vertices, 8 triangles).
	assert.Equal(t, 6+6+4+8+8, m.VertexCount())
	assert.Equal(t, 4+4+4+8+8, m.TriangleCount())
	for _, v := range m.Vertices {
		assert.Equal(t, float32(2), v.Z)
	}

	b := m.Bounds()
	assert.InDelta(t, -0.5, b.Min.X, 1e-5)
	assert.InDelta(t, -0.5, b.Min.Y, 1e-5)
	assert.InDelta(t, 4.5, b.Max.X, 1e-5)
	assert.InDelta(t, 4.5, b.Max.Y, 1e-5)
}

func TestStrokeClosedPath(t *testing.T) {
	style := DefaultStrokeStyle().WithWidth(0.5).WithMinSegmentStep(10).WithCaps(true, true)
	path := []Point{Pt(0, 0), Pt(0, 2), Pt(4, 2), Pt(4, 0)}

	m, err := Stroke(path, true, style, 0)
	require.NoError(t, err)
	checkMesh(t, m)

	// Caps never apply to closed paths.
	assert.Equal(t, 32, m.VertexCount())
	assert.Equal(t, 24, m.TriangleCount())
}

func TestStrokeErrors(t *testing.T) {
	style := DefaultStrokeStyle()
	tests := []struct {
		name   string
		path   []Point
		closed bool
		style  StrokeStyle
		opts   []BuildOption
		want   error
	}{
		{"bad width", []Point{Pt(0, 0), Pt(1, 0)}, false, style.WithWidth(-1), nil, ErrInvalidWidth},
		{"one point", []Point{Pt(0, 0)}, false, style, nil, ErrPathTooShort},
		{"closed pair", []Point{Pt(0, 0), Pt(1, 0)}, true, style, nil, ErrPathTooShort},
		{"duplicate", []Point{Pt(0, 0), Pt(0, 0)}, false, style, nil, ErrDegenerateSegment},
		{"nan", []Point{Pt(0, 0), Pt(float32(math.NaN()), 0)}, false, style, nil, ErrNonFinitePoint},
		{"overflowing segment", []Point{Pt(-3e38, 0), Pt(3e38, 0)}, false, style, nil, ErrDegenerateSegment},
		{"angular step too fine", []Point{Pt(0, 0), Pt(1, 0)}, false, style.WithCaps(true, false).WithAngularStep(1e-30), nil, ErrInvalidAngularStep},
		{
			"collapsed by transform",
			[]Point{Pt(0, 0), Pt(1, 0)}, false, style,
			[]BuildOption{WithTransform(mt.Transform{{0, 0, 0}, {0, 0, 0}, {0, 0, 1}})},
			ErrDegenerateSegment,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Stroke(tt.path, tt.closed, tt.style, 0, tt.opts...)
			assert.ErrorIs(t, err, tt.want)
			assert.Zero(t, m.VertexCount())
		})
	}
}

func TestStrokeDeterministic(t *testing.T) {
	style := DefaultStrokeStyle().WithWidth(0.3).WithCaps(true, true)
	path := SoftStarPath(Pt(1, 2), 3, 4, 40)

	a := StrokeByPath(path, false, style, 0.5)
	b := StrokeByPath(path, false, style, 0.5)
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("StrokeByPath() not deterministic (-first +second):\n%s", diff)
	}
}

func TestStrokeWithReuse(t *testing.T) {
	style := DefaultStrokeStyle().WithWidth(0.5).WithCaps(true, true)
	path := []Point{Pt(0, 0), Pt(3, 1), Pt(5, -2), Pt(8, 0)}

	m := StrokeByPath(path, false, style, 0)
	want := m.Clone()
	first := &m.Vertices[0]

	m = StrokeByPath(path, false, style, 0, WithReuse(&m))
	assert.Same(t, first, &m.Vertices[0], "reused mesh should keep its storage")
	if diff := cmp.Diff(want, m); diff != "" {
		t.Errorf("reused build differs (-want +got):\n%s", diff)
	}
}

func TestStrokeWithTransform(t *testing.T) {
	style := DefaultStrokeStyle().WithWidth(1).WithMinSegmentStep(100)
	scale := mt.Transform{{2, 0, 0}, {0, 2, 0}, {0, 0, 1}}

	m, err := Stroke([]Point{Pt(0, 0), Pt(5, 0)}, false, style, 0, WithTransform(scale))
	require.NoError(t, err)

	b := m.Bounds()
	assert.InDelta(t, 10, b.Max.X, 1e-5)
	// Width is not scaled.
	assert.InDelta(t, 1, b.Size().Y, 1e-5)
}
