package mesh2d

// TextureMesh is a Mesh with one texture coordinate per vertex.
type TextureMesh struct {
	Vertices  []Vec3
	UVs       []Vec2
	Triangles []uint32
}

// NewTextureMesh returns an empty texture mesh with room for the given
// number of vertices.
func NewTextureMesh(capacity int) TextureMesh {
	return TextureMesh{
		Vertices:  make([]Vec3, 0, capacity),
		UVs:       make([]Vec2, 0, capacity),
		Triangles: make([]uint32, 0, 3*capacity),
	}
}

// AddMesh appends m with planar texture coordinates (x/scale, y/scale),
// so a texture repeats every scale units of the path plane.
func (tm *TextureMesh) AddMesh(m Mesh, scale float32) {
	offset := uint32(len(tm.Vertices))
	inv := 1 / scale
	tm.Vertices = append(tm.Vertices, m.Vertices...)
	for _, v := range m.Vertices {
		tm.UVs = append(tm.UVs, Vec2{X: v.X * inv, Y: v.Y * inv})
	}
	for _, i := range m.Triangles {
		tm.Triangles = append(tm.Triangles, i+offset)
	}
}

// Append adds the geometry and texture coordinates of other to tm.
func (tm *TextureMesh) Append(other TextureMesh) {
	offset := uint32(len(tm.Vertices))
	tm.Vertices = append(tm.Vertices, other.Vertices...)
	tm.UVs = append(tm.UVs, other.UVs...)
	for _, i := range other.Triangles {
		tm.Triangles = append(tm.Triangles, i+offset)
	}
}

// Reset empties the mesh, keeping its storage.
func (tm *TextureMesh) Reset() {
	tm.Vertices = tm.Vertices[:0]
	tm.UVs = tm.UVs[:0]
	tm.Triangles = tm.Triangles[:0]
}

// AppendVertexBytes appends interleaved position and UV attributes, the
// layout described by TextureMesh.VertexLayout.
func (tm *TextureMesh) AppendVertexBytes(dst []byte) []byte {
	for i, v := range tm.Vertices {
		uv := tm.UVs[i]
		dst = appendVec3(dst, v)
		dst = appendFloats(dst, uv.X, uv.Y)
	}
	return dst
}

// AppendIndexBytes appends the triangle indices as little-endian uint32.
func (tm *TextureMesh) AppendIndexBytes(dst []byte) []byte {
	return appendIndices(dst, tm.Triangles)
}
