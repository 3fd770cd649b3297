package mesh2d

// FillRect returns a filled axis-aligned rectangle: the four corners of
// RectPath and two triangles.
func FillRect(center Point, size Vec2, z float32) Mesh {
	m := NewMesh(4)
	for _, p := range RectPath(center, size) {
		m.Vertices = append(m.Vertices, Vec3{X: p.X, Y: p.Y, Z: z})
	}
	m.Triangles = append(m.Triangles,
		0, 1, 2,
		0, 2, 3,
	)
	return m
}

// FillCircle returns a filled circle as a fan of count triangles. The rim
// vertices come first, in CirclePath order, followed by the center.
// count must be at least 3.
func FillCircle(center Point, radius float32, count int, z float32) Mesh {
	m := NewMesh(count + 1)
	for _, p := range CirclePath(center, radius, count) {
		m.Vertices = append(m.Vertices, Vec3{X: p.X, Y: p.Y, Z: z})
	}
	m.Vertices = append(m.Vertices, Vec3{X: center.X, Y: center.Y, Z: z})

	c := uint32(count)
	prev := c - 1
	for i := range c {
		m.Triangles = append(m.Triangles, c, i, prev)
		prev = i
	}
	return m
}
