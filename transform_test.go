package mesh2d

import (
	"math"
	"testing"

	mt "github.com/rustyoz/Mtransform"
)

func TestTransformPath(t *testing.T) {
	path := []Point{Pt(0, 0), Pt(1, 1), Pt(-2, 3)}

	got := TransformPath(path, mt.Identity())
	for i := range path {
		if got[i] != path[i] {
			t.Errorf("identity moved point %d: %v -> %v", i, path[i], got[i])
		}
	}

	affine := mt.Transform{{2, 0, 1}, {0, 3, -1}, {0, 0, 1}}
	got = TransformPath(path, affine)
	if want := Pt(3, 2); got[1] != want {
		t.Errorf("TransformPath()[1] = %v, want %v", got[1], want)
	}
	if path[1] != Pt(1, 1) {
		t.Error("TransformPath modified its input")
	}
}

func TestFitView(t *testing.T) {
	b := Box{Min: Vec3{X: 0, Y: 0}, Max: Vec3{X: 10, Y: 10}}
	view := FitView(b, 100, 100, 0)

	tests := []struct {
		in           Point
		wantX, wantY float64
	}{
		{Pt(0, 0), 0, 100},
		{Pt(10, 10), 100, 0},
		{Pt(5, 5), 50, 50},
	}
	for _, tt := range tests {
		x, y := view.Apply(float64(tt.in.X), float64(tt.in.Y))
		if math.Abs(x-tt.wantX) > 1e-9 || math.Abs(y-tt.wantY) > 1e-9 {
			t.Errorf("view(%v) = (%v, %v), want (%v, %v)", tt.in, x, y, tt.wantX, tt.wantY)
		}
	}
}

func TestFitViewKeepsAspect(t *testing.T) {
	b := Box{Min: Vec3{X: -1, Y: -1}, Max: Vec3{X: 1, Y: 1}}
	view := FitView(b, 200, 100, 10)

	x0, _ := view.Apply(-1, 0)
	x1, _ := view.Apply(1, 0)
	_, y0 := view.Apply(0, -1)
	_, y1 := view.Apply(0, 1)
	if w, h := x1-x0, y0-y1; math.Abs(w-h) > 1e-9 || math.Abs(h-80) > 1e-9 {
		t.Errorf("fitted box is %v x %v, want 80 x 80", w, h)
	}
}
