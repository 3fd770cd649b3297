package mesh2d

import "github.com/gogpu/gputypes"

// Vertex strides in bytes of the AppendVertexBytes encodings.
const (
	PositionVertexStride = 12 // position: 3 x f32
	ColorVertexStride    = 28 // position: 3 x f32, color: 4 x f32
	TextureVertexStride  = 20 // position: 3 x f32, uv: 2 x f32
)

// IndexFormat is the index format of every AppendIndexBytes encoding.
const IndexFormat = gputypes.IndexFormatUint32

// VertexLayout returns the vertex buffer layout of Mesh.AppendVertexBytes.
func (m *Mesh) VertexLayout() []gputypes.VertexBufferLayout {
	return []gputypes.VertexBufferLayout{
		{
			ArrayStride: PositionVertexStride,
			StepMode:    gputypes.VertexStepModeVertex,
			Attributes: []gputypes.VertexAttribute{
				{Format: gputypes.VertexFormatFloat32x3, Offset: 0, ShaderLocation: 0}, // position
			},
		},
	}
}

// VertexLayout returns the vertex buffer layout of
// ColorMesh.AppendVertexBytes.
func (cm *ColorMesh) VertexLayout() []gputypes.VertexBufferLayout {
	return []gputypes.VertexBufferLayout{
		{
			ArrayStride: ColorVertexStride,
			StepMode:    gputypes.VertexStepModeVertex,
			Attributes: []gputypes.VertexAttribute{
				{Format: gputypes.VertexFormatFloat32x3, Offset: 0, ShaderLocation: 0},  // position
				{Format: gputypes.VertexFormatFloat32x4, Offset: 12, ShaderLocation: 1}, // color
			},
		},
	}
}

// VertexLayout returns the vertex buffer layout of
// TextureMesh.AppendVertexBytes.
func (tm *TextureMesh) VertexLayout() []gputypes.VertexBufferLayout {
	return []gputypes.VertexBufferLayout{
		{
			ArrayStride: TextureVertexStride,
			StepMode:    gputypes.VertexStepModeVertex,
			Attributes: []gputypes.VertexAttribute{
				{Format: gputypes.VertexFormatFloat32x3, Offset: 0, ShaderLocation: 0},  // position
				{Format: gputypes.VertexFormatFloat32x2, Offset: 12, ShaderLocation: 1}, // uv
			},
		},
	}
}

// PrimitiveState returns the primitive state matching the meshes of this
// package when rendered with Y up. Culling is disabled, so a projection
// that flips Y still draws every triangle.
func PrimitiveState() gputypes.PrimitiveState {
	return gputypes.PrimitiveState{
		Topology:  gputypes.PrimitiveTopologyTriangleList,
		FrontFace: gputypes.FrontFaceCW,
		CullMode:  gputypes.CullModeNone,
	}
}
