// Package stroke tessellates 2D polylines into triangle meshes.
//
// A stroke is emitted as one indexed triangle list built in a single pass
// over the path:
//   - every segment becomes a ribbon (quad strip) of half width r,
//     subdivided so no piece is longer than the style's segment step
//   - consecutive ribbons are stitched by a round join: a fan on the
//     convex side of the turn, pivoting on the shared path vertex
//   - free ends of open paths get an optional semicircular round cap
//
// # Index bookkeeping
//
// Every emitting method of [Builder] returns the indices of the boundary
// vertices it created (an [Edge]), and stitching methods take the indices
// they connect as arguments. Nothing is inferred from the current buffer
// length, so the pieces can be emitted in any order.
//
// # Winding
//
// All triangles share one orientation: (bottom, top, next top) along a
// ribbon, which is clockwise when Y points up and counter-clockwise in
// Y-down screen space.
//
// # Usage
//
//	b := stroke.NewBuilder(stroke.Style{Width: 2, Step: 4, EndCap: true}, 0)
//	b.Open([]stroke.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}})
//	vertices, triangles := b.Take()
//
// # Preconditions
//
// The builder does not validate its input. Open paths need at least two
// points, closed paths at least three, and consecutive points (including
// the wrap edge of closed paths) must differ. Violations produce NaN
// geometry rather than an error.
package stroke
