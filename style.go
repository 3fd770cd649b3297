package mesh2d

import (
	"fmt"
	"math"

	"github.com/chewxy/math32"

	"github.com/gogpu/mesh2d/internal/stroke"
)

// DefaultAngularStep is the largest angle one join or cap triangle spans
// unless a style overrides it (pi/8, so a cap has 8 triangles and a right
// angle join has 4).
const DefaultAngularStep = stroke.DefaultAngularStep

// MinAngularStep is the smallest non-zero AngularStep a style accepts.
// It caps a half-circle cap at 1024 triangles.
const MinAngularStep = math.Pi / 1024

// StrokeStyle describes how a path is stroked.
//
// Build styles with NewStrokeStyle, or start from DefaultStrokeStyle and
// adjust them with the With methods, which return modified copies.
type StrokeStyle struct {
	// Width is the full stroke width. Must be positive.
	Width float32 `yaml:"width" toml:"width"`

	// MinSegmentStep is the lower bound of SegmentStep. Must be positive.
	MinSegmentStep float32 `yaml:"min_segment_step" toml:"min_segment_step"`

	// PointCount is the default number of points of circles and soft
	// stars stroked with this style. Must be at least 3.
	PointCount int `yaml:"point_count" toml:"point_count"`

	// StartCap and EndCap add round caps to the free ends of open paths.
	StartCap bool `yaml:"start_cap" toml:"start_cap"`
	EndCap   bool `yaml:"end_cap" toml:"end_cap"`

	// AngularStep overrides DefaultAngularStep when non-zero. It must lie
	// in [MinAngularStep, pi/2].
	AngularStep float32 `yaml:"angular_step,omitempty" toml:"angular_step,omitempty"`
}

// DefaultStrokeStyle returns a 0.1 wide style without caps.
func DefaultStrokeStyle() StrokeStyle {
	return StrokeStyle{
		Width:          0.1,
		MinSegmentStep: 0.1,
		PointCount:     16,
	}
}

// NewStrokeStyle returns the default style with the given width and
// minimum segment step, rejecting non-positive values.
func NewStrokeStyle(width, minSegmentStep float32) (StrokeStyle, error) {
	s := DefaultStrokeStyle().WithWidth(width).WithMinSegmentStep(minSegmentStep)
	if err := s.Validate(); err != nil {
		return StrokeStyle{}, err
	}
	return s, nil
}

// Validate reports the first invalid field of s.
func (s StrokeStyle) Validate() error {
	switch {
	case !(s.Width > 0) || math32.IsInf(s.Width, 1):
		return fmt.Errorf("%w: got %v", ErrInvalidWidth, s.Width)
	case !(s.MinSegmentStep > 0) || math32.IsInf(s.MinSegmentStep, 1):
		return fmt.Errorf("%w: got %v", ErrInvalidSegmentStep, s.MinSegmentStep)
	case s.PointCount < 3:
		return fmt.Errorf("%w: got %d", ErrInvalidPointCount, s.PointCount)
	case math32.IsNaN(s.AngularStep) || s.AngularStep < 0 || s.AngularStep > math.Pi/2,
		s.AngularStep > 0 && s.AngularStep < MinAngularStep:
		return fmt.Errorf("%w: got %v", ErrInvalidAngularStep, s.AngularStep)
	}
	return nil
}

// SegmentStep returns the longest ribbon piece a straight segment is cut
// into: max(2*Width, MinSegmentStep).
func (s StrokeStyle) SegmentStep() float32 {
	return max(2*s.Width, s.MinSegmentStep)
}

// WithWidth returns a copy of the style with the given width.
func (s StrokeStyle) WithWidth(w float32) StrokeStyle {
	s.Width = w
	return s
}

// WithMinSegmentStep returns a copy of the style with the given minimum
// segment step.
func (s StrokeStyle) WithMinSegmentStep(step float32) StrokeStyle {
	s.MinSegmentStep = step
	return s
}

// WithPointCount returns a copy of the style with the given point count.
func (s StrokeStyle) WithPointCount(n int) StrokeStyle {
	s.PointCount = n
	return s
}

// WithCaps returns a copy of the style with round caps toggled at the
// start and end of open paths.
func (s StrokeStyle) WithCaps(start, end bool) StrokeStyle {
	s.StartCap = start
	s.EndCap = end
	return s
}

// WithAngularStep returns a copy of the style whose joins and caps use
// triangles spanning at most step radians. Zero restores the default.
func (s StrokeStyle) WithAngularStep(step float32) StrokeStyle {
	s.AngularStep = step
	return s
}

func (s StrokeStyle) builderStyle() stroke.Style {
	return stroke.Style{
		Width:       s.Width,
		Step:        s.SegmentStep(),
		AngularStep: s.AngularStep,
		StartCap:    s.StartCap,
		EndCap:      s.EndCap,
	}
}
