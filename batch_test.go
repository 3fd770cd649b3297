package mesh2d

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func batchJobs() []StrokeJob {
	style := DefaultStrokeStyle().WithWidth(0.2).WithCaps(true, true)
	return []StrokeJob{
		{Path: []Point{Pt(0, 0), Pt(3, 1), Pt(4, 4)}, Style: style},
		{Path: RectPath(Pt(1, 1), Vec2{X: 2, Y: 3}), Closed: true, Style: style, Z: 1},
		{Path: CirclePath(Pt(0, 0), 5, 24), Closed: true, Style: style.WithWidth(0.5), Z: 2},
		{Path: SoftStarPath(Pt(0, 0), 2, 3, 64), Closed: true, Style: style},
	}
}

func TestBatcherMatchesSequential(t *testing.T) {
	jobs := batchJobs()
	b := NewBatcher(3)
	defer b.Close()

	got, err := b.Stroke(context.Background(), jobs)
	require.NoError(t, err)
	require.Len(t, got, len(jobs))

	for i, j := range jobs {
		want := StrokeByPath(j.Path, j.Closed, j.Style, j.Z)
		if diff := cmp.Diff(want, got[i]); diff != "" {
			t.Errorf("job %d differs from sequential build (-want +got):\n%s", i, diff)
		}
	}
}

func TestBatcherErrors(t *testing.T) {
	jobs := batchJobs()
	jobs[1].Path = []Point{Pt(0, 0)}
	jobs[3].Style = jobs[3].Style.WithWidth(0)

	meshes, err := StrokeAll(context.Background(), jobs, 2)
	assert.ErrorIs(t, err, ErrPathTooShort)
	assert.ErrorIs(t, err, ErrInvalidWidth)
	assert.Contains(t, err.Error(), "job 1")

	assert.NotZero(t, meshes[0].TriangleCount())
	assert.Zero(t, meshes[1].TriangleCount())
	assert.NotZero(t, meshes[2].TriangleCount())
	assert.Zero(t, meshes[3].TriangleCount())
}

func TestBatcherCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	meshes, err := StrokeAll(ctx, batchJobs(), 2)
	assert.ErrorIs(t, err, context.Canceled)
	for i, m := range meshes {
		assert.Zero(t, m.VertexCount(), "job %d", i)
	}
}

func TestBatcherClosed(t *testing.T) {
	b := NewBatcher(2)
	b.Close()

	meshes, err := b.Stroke(context.Background(), batchJobs())
	require.NoError(t, err)
	assert.Len(t, meshes, 4)
}
