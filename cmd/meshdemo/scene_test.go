package main

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/mesh2d"
)

func TestDefaultSceneBuilds(t *testing.T) {
	style := mesh2d.DefaultStrokeStyle()
	for i, sh := range defaultScene().Shapes {
		m, err := sh.build(style)
		if err != nil {
			t.Fatalf("shape %d (%s): %v", i, sh.Kind, err)
		}
		if m.TriangleCount() == 0 {
			t.Errorf("shape %d (%s) produced no triangles", i, sh.Kind)
		}
		if _, err := mesh2d.ParseHex(sh.Color); err != nil {
			t.Errorf("shape %d color: %v", i, err)
		}
	}
}

func TestShapeBuildErrors(t *testing.T) {
	style := mesh2d.DefaultStrokeStyle()
	tests := []struct {
		name  string
		shape Shape
		want  error
	}{
		{"unknown kind", Shape{Kind: "hexagon"}, nil},
		{"edge one point", Shape{Kind: "edge", Points: [][2]float32{{0, 0}}}, nil},
		{"polyline repeated point", Shape{Kind: "polyline", Points: [][2]float32{{0, 0}, {0, 0}}}, mesh2d.ErrDegenerateSegment},
		{"edge coincident points", Shape{Kind: "edge", Points: [][2]float32{{1, 1}, {1, 1}}}, mesh2d.ErrDegenerateSegment},
		{"rect zero size", Shape{Kind: "rect", Center: [2]float32{1, 1}}, mesh2d.ErrDegenerateSegment},
		{"circle zero radius", Shape{Kind: "circle", Count: 16}, mesh2d.ErrDegenerateSegment},
		{"star zero radii", Shape{Kind: "star", Count: 32}, mesh2d.ErrDegenerateSegment},
		{"fill_rect zero size", Shape{Kind: "fill_rect"}, nil},
		{"fill_circle zero radius", Shape{Kind: "fill_circle"}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := tt.shape.build(style)
			if err == nil {
				t.Fatalf("build(%+v) succeeded with %d vertices, want error", tt.shape, m.VertexCount())
			}
			if tt.want != nil && !errors.Is(err, tt.want) {
				t.Errorf("build() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestShapeBuildFinite(t *testing.T) {
	style := mesh2d.DefaultStrokeStyle()
	for i, sh := range defaultScene().Shapes {
		m, err := sh.build(style)
		if err != nil {
			t.Fatalf("shape %d (%s): %v", i, sh.Kind, err)
		}
		b := m.Bounds()
		for _, v := range []float32{b.Min.X, b.Min.Y, b.Max.X, b.Max.Y} {
			if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
				t.Errorf("shape %d (%s) bounds %v not finite", i, sh.Kind, b)
				break
			}
		}
	}
}

func TestLoadScene(t *testing.T) {
	doc := `background: "#000"
shapes:
  - kind: circle
    color: "#fff"
    center: [1, 2]
    radius: 3
    count: 12
    width: 0.5
`
	path := filepath.Join(t.TempDir(), "scene.yaml")
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatal(err)
	}

	s, err := loadScene(path)
	if err != nil {
		t.Fatalf("loadScene() error = %v", err)
	}
	if len(s.Shapes) != 1 {
		t.Fatalf("got %d shapes, want 1", len(s.Shapes))
	}
	sh := s.Shapes[0]
	if sh.Kind != "circle" || sh.Center != [2]float32{1, 2} || sh.Count != 12 {
		t.Errorf("shape = %+v", sh)
	}
}
