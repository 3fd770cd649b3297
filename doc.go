// Package mesh2d turns 2D polylines into triangle meshes ready for a GPU
// vertex and index buffer.
//
// # Overview
//
// A stroke is a ribbon of constant width following a path. mesh2d emits it
// as an indexed triangle list with round joins between segments and
// optional round caps at the free ends of open paths. No shader tricks
// are needed to draw it: upload the vertices, upload the indices, draw.
//
// # Quick Start
//
//	import "github.com/gogpu/mesh2d"
//
//	style := mesh2d.DefaultStrokeStyle().WithWidth(2).WithCaps(true, true)
//	path := []mesh2d.Point{mesh2d.Pt(0, 0), mesh2d.Pt(10, 0), mesh2d.Pt(10, 10)}
//
//	m, err := mesh2d.Stroke(path, false, style, 0)
//	if err != nil {
//		return err
//	}
//	vertices := m.AppendVertexBytes(nil)
//	indices := m.AppendIndexBytes(nil)
//
// Stroke validates its input; StrokeByPath skips validation for callers
// that already trust their paths.
//
// # Shapes
//
// StrokeForEdge, StrokeForRect, StrokeForCircle and StrokeForSoftStar
// stroke common outlines. FillRect and FillCircle produce solid shapes.
// ColorMesh and TextureMesh attach per-vertex colors or texture
// coordinates to any Mesh.
//
// # Coordinate System
//
// Paths live in a Y-up plane:
//   - Vertices carry the Z given to the generator, so meshes can be layered
//   - Triangles are clockwise with Y up (counter-clockwise in Y-down
//     screen space); PrimitiveState returns a matching pipeline state
//
// # Configuration
//
// Styles can be built in code or loaded from YAML or TOML with
// LoadStrokeStyle.
//
// # Logging
//
// The package is silent by default. SetLogger enables debug statistics
// for every build and warnings for rejected input.
package mesh2d

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
