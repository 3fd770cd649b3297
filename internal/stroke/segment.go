package stroke

// Segment is one straight edge of a path.
type Segment struct {
	A, B Point

	// Direction is the unit vector from A to B.
	Direction Vec2

	// Length is the distance between A and B.
	Length float32
}

// NewSegment returns the segment from a to b.
// a and b must differ; a zero-length segment has a NaN direction.
func NewSegment(a, b Point) Segment {
	v := b.Sub(a)
	length := v.Length()
	return Segment{
		A:         a,
		B:         b,
		Direction: Vec2{X: v.X / length, Y: v.Y / length},
		Length:    length,
	}
}

// Ortho returns the unit left-hand normal of the segment.
func (s Segment) Ortho() Vec2 {
	return s.Direction.Ortho()
}
