package mesh2d

// ColorMesh is a Mesh with one RGBA color per vertex.
type ColorMesh struct {
	Vertices  []Vec3
	Colors    []RGBA
	Triangles []uint32
}

// NewColorMesh returns an empty color mesh with room for the given number
// of vertices.
func NewColorMesh(capacity int) ColorMesh {
	return ColorMesh{
		Vertices:  make([]Vec3, 0, capacity),
		Colors:    make([]RGBA, 0, capacity),
		Triangles: make([]uint32, 0, 3*capacity),
	}
}

// AddMesh appends m painted in a single color.
func (cm *ColorMesh) AddMesh(m Mesh, c RGBA) {
	offset := uint32(len(cm.Vertices))
	cm.Vertices = append(cm.Vertices, m.Vertices...)
	for range m.Vertices {
		cm.Colors = append(cm.Colors, c)
	}
	for _, i := range m.Triangles {
		cm.Triangles = append(cm.Triangles, i+offset)
	}
}

// Append adds the geometry and colors of other to cm.
func (cm *ColorMesh) Append(other ColorMesh) {
	offset := uint32(len(cm.Vertices))
	cm.Vertices = append(cm.Vertices, other.Vertices...)
	cm.Colors = append(cm.Colors, other.Colors...)
	for _, i := range other.Triangles {
		cm.Triangles = append(cm.Triangles, i+offset)
	}
}

// Shift adds offset to every triangle index.
func (cm *ColorMesh) Shift(offset uint32) {
	for i := range cm.Triangles {
		cm.Triangles[i] += offset
	}
}

// ShiftZ moves every vertex along Z by dz.
func (cm *ColorMesh) ShiftZ(dz float32) {
	for i := range cm.Vertices {
		cm.Vertices[i].Z += dz
	}
}

// Mesh returns the geometry of cm without colors. The slices are shared.
func (cm *ColorMesh) Mesh() Mesh {
	return Mesh{Vertices: cm.Vertices, Triangles: cm.Triangles}
}

// Reset empties the mesh, keeping its storage.
func (cm *ColorMesh) Reset() {
	cm.Vertices = cm.Vertices[:0]
	cm.Colors = cm.Colors[:0]
	cm.Triangles = cm.Triangles[:0]
}

// AppendVertexBytes appends interleaved position and color attributes,
// the layout described by ColorMesh.VertexLayout.
func (cm *ColorMesh) AppendVertexBytes(dst []byte) []byte {
	for i, v := range cm.Vertices {
		c := cm.Colors[i]
		dst = appendVec3(dst, v)
		dst = appendFloats(dst, c.R, c.G, c.B, c.A)
	}
	return dst
}

// AppendIndexBytes appends the triangle indices as little-endian uint32.
func (cm *ColorMesh) AppendIndexBytes(dst []byte) []byte {
	return appendIndices(dst, cm.Triangles)
}
