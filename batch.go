package mesh2d

import (
	"context"
	"errors"
	"fmt"

	"github.com/gogpu/mesh2d/internal/parallel"
)

// StrokeJob is one path of a batch.
type StrokeJob struct {
	Path   []Point
	Closed bool
	Style  StrokeStyle
	Z      float32
}

// Batcher strokes many independent paths concurrently on a fixed set of
// worker goroutines. Create it once and reuse it across frames.
type Batcher struct {
	pool *parallel.Pool
}

// NewBatcher starts a batcher with the given number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
func NewBatcher(workers int) *Batcher {
	return &Batcher{pool: parallel.NewPool(workers)}
}

// Close stops the workers. A closed batcher still works, sequentially.
func (b *Batcher) Close() {
	b.pool.Close()
}

// Stroke validates and strokes every job. The mesh at index i belongs to
// jobs[i]. Failed jobs leave an empty mesh and contribute to the returned
// error, which joins all failures. Jobs not yet started when ctx is done
// fail with ctx.Err().
func (b *Batcher) Stroke(ctx context.Context, jobs []StrokeJob) ([]Mesh, error) {
	meshes := make([]Mesh, len(jobs))
	errs := make([]error, len(jobs))

	b.pool.Run(len(jobs), func(i int) {
		if err := ctx.Err(); err != nil {
			errs[i] = fmt.Errorf("job %d: %w", i, err)
			return
		}
		j := jobs[i]
		m, err := Stroke(j.Path, j.Closed, j.Style, j.Z)
		if err != nil {
			errs[i] = fmt.Errorf("job %d: %w", i, err)
			return
		}
		meshes[i] = m
	})

	Logger().Debug("mesh2d: batch stroked", "jobs", len(jobs), "workers", b.pool.Workers())
	return meshes, errors.Join(errs...)
}

// StrokeAll strokes jobs on a temporary Batcher.
func StrokeAll(ctx context.Context, jobs []StrokeJob, workers int) ([]Mesh, error) {
	b := NewBatcher(workers)
	defer b.Close()
	return b.Stroke(ctx, jobs)
}
