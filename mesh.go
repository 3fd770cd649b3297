package mesh2d

import (
	"encoding/binary"
	"math"
)

// Mesh is an indexed triangle list.
//
// Triangles holds three vertex indices per triangle. All triangles
// produced by this package share one orientation: clockwise with Y up,
// counter-clockwise in Y-down screen space.
//
// A Mesh returned by a generator is owned by the caller.
type Mesh struct {
	Vertices  []Vec3
	Triangles []uint32
}

// NewMesh returns an empty mesh with room for the given number of
// vertices and 3*capacity indices.
func NewMesh(capacity int) Mesh {
	return Mesh{
		Vertices:  make([]Vec3, 0, capacity),
		Triangles: make([]uint32, 0, 3*capacity),
	}
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Triangles) / 3
}

// Append adds the geometry of other to m, offsetting its indices past
// the vertices already in m.
func (m *Mesh) Append(other Mesh) {
	offset := uint32(len(m.Vertices))
	m.Vertices = append(m.Vertices, other.Vertices...)
	for _, i := range other.Triangles {
		m.Triangles = append(m.Triangles, i+offset)
	}
}

// Shift adds offset to every triangle index, for meshes that will be
// placed after offset vertices of a larger buffer.
func (m *Mesh) Shift(offset uint32) {
	for i := range m.Triangles {
		m.Triangles[i] += offset
	}
}

// ShiftZ moves every vertex along Z by dz.
func (m *Mesh) ShiftZ(dz float32) {
	for i := range m.Vertices {
		m.Vertices[i].Z += dz
	}
}

// Bounds returns the bounding box of the vertices.
// The box of an empty mesh is Empty.
func (m *Mesh) Bounds() Box {
	b := emptyBox()
	for _, v := range m.Vertices {
		b.expand(v)
	}
	return b
}

// Clone returns a deep copy of m.
func (m *Mesh) Clone() Mesh {
	return Mesh{
		Vertices:  append([]Vec3(nil), m.Vertices...),
		Triangles: append([]uint32(nil), m.Triangles...),
	}
}

// Reset empties the mesh, keeping its storage.
func (m *Mesh) Reset() {
	m.Vertices = m.Vertices[:0]
	m.Triangles = m.Triangles[:0]
}

// AppendVertexBytes appends the positions as little-endian float32
// triples, the layout described by Mesh.VertexLayout.
func (m *Mesh) AppendVertexBytes(dst []byte) []byte {
	for _, v := range m.Vertices {
		dst = appendVec3(dst, v)
	}
	return dst
}

// AppendIndexBytes appends the triangle indices as little-endian uint32.
func (m *Mesh) AppendIndexBytes(dst []byte) []byte {
	return appendIndices(dst, m.Triangles)
}

func appendVec3(dst []byte, v Vec3) []byte {
	dst = binary.LittleEndian.AppendUint32(dst, math.Float32bits(v.X))
	dst = binary.LittleEndian.AppendUint32(dst, math.Float32bits(v.Y))
	return binary.LittleEndian.AppendUint32(dst, math.Float32bits(v.Z))
}

func appendFloats(dst []byte, fs ...float32) []byte {
	for _, f := range fs {
		dst = binary.LittleEndian.AppendUint32(dst, math.Float32bits(f))
	}
	return dst
}

func appendIndices(dst []byte, indices []uint32) []byte {
	for _, i := range indices {
		dst = binary.LittleEndian.AppendUint32(dst, i)
	}
	return dst
}
