package stroke

import (
	"math"
	"slices"

	"github.com/chewxy/math32"
)

// DefaultAngularStep is the largest angle a single join or cap triangle
// may span (22.5 degrees).
const DefaultAngularStep = math.Pi / 8

// CrossEpsilon is the threshold on |cross(ortho0, ortho1)| below which two
// consecutive segments count as colinear and their joint is skipped.
const CrossEpsilon = 1e-6

// Style holds the resolved stroke parameters used by a Builder.
type Style struct {
	// Width is the full stroke width. Ribbons are offset by Width/2.
	Width float32

	// Step is the maximum ribbon piece length along a segment.
	Step float32

	// AngularStep overrides DefaultAngularStep when positive.
	AngularStep float32

	StartCap bool
	EndCap   bool
}

// Edge holds the two vertex indices of a ribbon cross edge.
// Top is offset along the segment's left normal, Bottom against it.
type Edge struct {
	Top, Bottom uint32
}

// Builder accumulates the vertices and triangle indices of a stroke.
//
// The zero value is not usable; create builders with NewBuilder.
// A Builder is not safe for concurrent use, but independent builders
// share no state.
type Builder struct {
	vertices  []Vec3
	triangles []uint32

	z           float32
	halfWidth   float32
	step        float32
	angularStep float32
	capSteps    int
	startCap    bool
	endCap      bool

	skipped int
}

// NewBuilder creates a builder emitting vertices at depth z.
func NewBuilder(style Style, z float32) *Builder {
	b := &Builder{}
	b.Reset(style, z)
	return b
}

// Reset clears the builder state for reuse without releasing memory.
func (b *Builder) Reset(style Style, z float32) {
	b.vertices = b.vertices[:0]
	b.triangles = b.triangles[:0]
	b.z = z
	b.halfWidth = 0.5 * style.Width
	b.step = style.Step
	b.angularStep = style.AngularStep
	if b.angularStep <= 0 {
		b.angularStep = DefaultAngularStep
	}
	b.capSteps = int(math32.Round(math.Pi / b.angularStep))
	b.startCap = style.StartCap
	b.endCap = style.EndCap
	b.skipped = 0
}

// UseBuffers makes the builder append into the given storage.
// Both slices are truncated to zero length; their capacity is reused.
func (b *Builder) UseBuffers(vertices []Vec3, triangles []uint32) {
	b.vertices = vertices[:0]
	b.triangles = triangles[:0]
}

// Grow reserves room for a path of n points.
func (b *Builder) Grow(n int) {
	b.vertices = slices.Grow(b.vertices, 4*n)
	b.triangles = slices.Grow(b.triangles, 12*n)
}

// Vertices returns the vertices emitted so far.
func (b *Builder) Vertices() []Vec3 {
	return b.vertices
}

// Triangles returns the triangle indices emitted so far, three per triangle.
func (b *Builder) Triangles() []uint32 {
	return b.triangles
}

// SkippedJoints returns how many joints were dropped as colinear.
func (b *Builder) SkippedJoints() int {
	return b.skipped
}

// Take hands the accumulated buffers to the caller and detaches them from
// the builder, so later emission cannot alias the returned slices.
func (b *Builder) Take() ([]Vec3, []uint32) {
	vertices, triangles := b.vertices, b.triangles
	b.vertices, b.triangles = nil, nil
	return vertices, triangles
}

func (b *Builder) vertex(p Point) uint32 {
	i := uint32(len(b.vertices))
	b.vertices = append(b.vertices, Vec3{X: p.X, Y: p.Y, Z: b.z})
	return i
}

func (b *Builder) triangle(i0, i1, i2 uint32) {
	b.triangles = append(b.triangles, i0, i1, i2)
}

// Ribbon emits the quad strip covering seg and returns its start and end
// cross edges.
//
// The segment is cut into round(Length/Step) pieces (at least one) of
// equal length. Each piece contributes one new cross edge and two
// triangles.
func (b *Builder) Ribbon(seg Segment) (start, end Edge) {
	n := int(math32.Round(seg.Length / b.step))
	if n < 1 {
		n = 1
	}
	ds := seg.Length / float32(n)
	ortho := seg.Ortho().Scale(b.halfWidth)

	start = b.crossEdge(seg.A, ortho)
	prev := start
	for i := 1; i <= n; i++ {
		center := seg.B
		if i < n {
			center = seg.A.Add(seg.Direction.Scale(ds * float32(i)))
		}
		cur := b.crossEdge(center, ortho)
		b.triangle(prev.Bottom, prev.Top, cur.Top)
		b.triangle(prev.Bottom, cur.Top, cur.Bottom)
		prev = cur
	}
	return start, prev
}

func (b *Builder) crossEdge(center Point, ortho Vec2) Edge {
	top := b.vertex(center.Add(ortho))
	bottom := b.vertex(center.Add(ortho.Neg()))
	return Edge{Top: top, Bottom: bottom}
}

// Joint emits the round join between seg0 and seg1, which must share the
// point seg0.B. end is the end edge of seg0's ribbon and next is the start
// edge of seg1's ribbon.
//
// The fan fills the wedge on the convex side of the turn; the concave side
// is left to the overlapping ribbons. Near-colinear segments produce no
// geometry and Joint reports false.
func (b *Builder) Joint(seg0, seg1 Segment, end, next Edge) bool {
	v0 := seg0.Ortho()
	v1 := seg1.Ortho()
	cross := Cross(v0, v1)
	if math32.Abs(cross) < CrossEpsilon {
		b.skipped++
		return false
	}

	dot := min(max(v0.Dot(v1), -1), 1)
	angle := math32.Acos(dot)
	n := int(math32.Round(angle / b.angularStep))

	// A left turn opens the wedge below the path, a right turn above it.
	if cross > 0 {
		b.fan(seg0.B, v0.Scale(-b.halfWidth), 1, angle, n, end.Bottom, next.Bottom)
	} else {
		b.fan(seg0.B, v0.Scale(b.halfWidth), -1, angle, n, end.Top, next.Top)
	}
	return true
}

// Cap emits a semicircular cap centered on pivot. normal points from pivot
// to the existing vertex from; the rim sweeps counter-clockwise through
// pi radians and closes on the existing vertex to.
func (b *Builder) Cap(pivot Point, normal Vec2, from, to uint32) {
	b.fan(pivot, normal.Scale(b.halfWidth), 1, math.Pi, b.capSteps, from, to)
}

// fan emits a triangle fan around pivot. The rim starts at the existing
// vertex from (located at pivot+offset), advances by sign*angle/n per step
// and closes on the existing vertex to. n <= 1 emits a single triangle.
func (b *Builder) fan(pivot Point, offset Vec2, sign, angle float32, n int, from, to uint32) {
	center := b.vertex(pivot)
	prev := from
	if n > 1 {
		m := Rotation(sign * angle / float32(n))
		for i := 1; i < n; i++ {
			offset = m.Apply(offset)
			cur := b.vertex(pivot.Add(offset))
			b.fanTriangle(sign, prev, center, cur)
			prev = cur
		}
	}
	b.fanTriangle(sign, prev, center, to)
}

// fanTriangle keeps fans wound like ribbons whichever way they turn.
func (b *Builder) fanTriangle(sign float32, prev, center, cur uint32) {
	if sign > 0 {
		b.triangle(prev, center, cur)
	} else {
		b.triangle(prev, cur, center)
	}
}

// Open strokes an open path of at least two points.
func (b *Builder) Open(path []Point) {
	b.Grow(len(path))

	seg0 := NewSegment(path[0], path[1])
	start, end := b.Ribbon(seg0)
	if b.startCap {
		b.Cap(seg0.A, seg0.Ortho(), start.Top, start.Bottom)
	}

	for _, p := range path[2:] {
		seg1 := NewSegment(seg0.B, p)
		next, last := b.Ribbon(seg1)
		b.Joint(seg0, seg1, end, next)
		seg0, end = seg1, last
	}

	if b.endCap {
		b.Cap(seg0.B, seg0.Ortho().Neg(), end.Bottom, end.Top)
	}
}

// Closed strokes a closed path of at least three points. The wrap edge
// from the last point back to the first is implicit.
//
// The walk starts on the edge (path[n-2], path[n-1]) so that the final
// joint lands on that same edge and stitches to the very first ribbon,
// closing the loop without a seam.
func (b *Builder) Closed(path []Point) {
	n := len(path)
	b.Grow(n)

	seg0 := NewSegment(path[n-2], path[n-1])
	first, end := b.Ribbon(seg0)

	for i, p := range path {
		seg1 := NewSegment(seg0.B, p)
		next := first
		var last Edge
		if i+1 < n {
			next, last = b.Ribbon(seg1)
		}
		b.Joint(seg0, seg1, end, next)
		seg0, end = seg1, last
	}
}

// Stroke is shorthand for Open or Closed depending on closed.
func (b *Builder) Stroke(path []Point, closed bool) {
	if closed {
		b.Closed(path)
	} else {
		b.Open(path)
	}
}
