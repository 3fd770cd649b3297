package mesh2d

import (
	"fmt"

	"github.com/chewxy/math32"
)

// ValidatePath reports whether path can be stroked: at least two points
// (three when closed), all finite, and every segment, including the wrap
// edge of a closed path, of non-zero finite length.
//
// StrokeByPath does not check its input; call ValidatePath first for
// untrusted paths, or use Stroke.
func ValidatePath(path []Point, closed bool) error {
	need := 2
	if closed {
		need = 3
	}
	if len(path) < need {
		return fmt.Errorf("%w: got %d points, need %d", ErrPathTooShort, len(path), need)
	}

	for i, p := range path {
		if !isFinite(p) {
			return fmt.Errorf("%w: point %d is %v", ErrNonFinitePoint, i, p)
		}
	}

	for i := 1; i < len(path); i++ {
		if !validLength(path[i-1], path[i]) {
			return fmt.Errorf("%w: points %d and %d at %v and %v", ErrDegenerateSegment, i-1, i, path[i-1], path[i])
		}
	}
	if last := len(path) - 1; closed && !validLength(path[last], path[0]) {
		return fmt.Errorf("%w: closing edge from point %d to 0", ErrDegenerateSegment, last)
	}
	return nil
}

// validLength reports whether the segment from a to b has a length that
// is neither zero nor beyond float32 range.
func validLength(a, b Point) bool {
	l := b.Sub(a).Length()
	return l != 0 && !math32.IsInf(l, 0)
}
