package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/mesh2d"
)

// Scene is a list of shapes drawn back to front.
type Scene struct {
	Background string  `yaml:"background"`
	Shapes     []Shape `yaml:"shapes"`
}

// Shape describes one stroked or filled primitive.
//
// Kind is one of polyline, edge, rect, circle, star, fill_rect or
// fill_circle. Fields a kind does not use are ignored.
type Shape struct {
	Kind   string       `yaml:"kind"`
	Color  string       `yaml:"color"`
	Points [][2]float32 `yaml:"points"`
	Closed bool         `yaml:"closed"`
	Center [2]float32   `yaml:"center"`
	Size   [2]float32   `yaml:"size"`
	Radius float32      `yaml:"radius"`
	Inner  float32      `yaml:"inner"`
	Count  int          `yaml:"count"`
	Z      float32      `yaml:"z"`

	// Width overrides the style width when positive.
	Width float32 `yaml:"width"`
	Caps  bool    `yaml:"caps"`
}

func loadScene(path string) (Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scene{}, err
	}
	var s Scene
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return Scene{}, fmt.Errorf("parse scene %s: %w", path, err)
	}
	return s, nil
}

// defaultScene shows every generator once.
func defaultScene() Scene {
	return Scene{
		Background: "#1e2430",
		Shapes: []Shape{
			{Kind: "fill_rect", Color: "#2f3b52", Center: [2]float32{0, 0}, Size: [2]float32{9, 5}, Z: -1},
			{Kind: "polyline", Color: "#e06c75", Points: [][2]float32{{-4, -2}, {-2, 1}, {-1, -1}, {1, 2}, {3, -1.5}}, Width: 0.3, Caps: true},
			{Kind: "rect", Color: "#98c379", Center: [2]float32{-2.5, 0.5}, Size: [2]float32{2, 1.5}, Width: 0.15},
			{Kind: "circle", Color: "#61afef", Center: [2]float32{2.5, 1}, Radius: 1, Count: 32, Width: 0.12},
			{Kind: "star", Color: "#e5c07b", Center: [2]float32{0, 0}, Inner: 1.2, Radius: 1.5, Count: 96, Width: 0.08},
			{Kind: "fill_circle", Color: "#c678dd", Center: [2]float32{3, -1.5}, Radius: 0.5, Count: 24, Z: 1},
			{Kind: "edge", Color: "#abb2bf", Points: [][2]float32{{-4, -2.2}, {4, -2.2}}, Width: 0.05, Caps: true},
		},
	}
}

// build turns one shape into a mesh. Stroked shapes are validated, so a
// degenerate shape (coincident edge points, zero radius or size) fails
// instead of producing NaN vertices.
func (sh Shape) build(style mesh2d.StrokeStyle) (mesh2d.Mesh, error) {
	if sh.Width > 0 {
		style = style.WithWidth(sh.Width)
	}
	if sh.Caps {
		style = style.WithCaps(true, true)
	}
	center := mesh2d.Pt(sh.Center[0], sh.Center[1])
	size := mesh2d.Vec2{X: sh.Size[0], Y: sh.Size[1]}
	count := sh.Count
	if count < 3 {
		count = style.PointCount
	}

	var (
		path   []mesh2d.Point
		closed = true
	)
	switch sh.Kind {
	case "polyline":
		path = make([]mesh2d.Point, len(sh.Points))
		for i, p := range sh.Points {
			path[i] = mesh2d.Pt(p[0], p[1])
		}
		closed = sh.Closed
	case "edge":
		if len(sh.Points) != 2 {
			return mesh2d.Mesh{}, fmt.Errorf("edge needs 2 points, got %d", len(sh.Points))
		}
		a, b := sh.Points[0], sh.Points[1]
		path = []mesh2d.Point{mesh2d.Pt(a[0], a[1]), mesh2d.Pt(b[0], b[1])}
		closed = false
	case "rect":
		path = mesh2d.RectPath(center, size)
	case "circle":
		path = mesh2d.CirclePath(center, sh.Radius, count)
	case "star":
		path = mesh2d.SoftStarPath(center, sh.Inner, sh.Radius, count)
	case "fill_rect":
		if !(size.X > 0 && size.Y > 0) {
			return mesh2d.Mesh{}, fmt.Errorf("fill_rect needs a positive size, got %v", sh.Size)
		}
		return mesh2d.FillRect(center, size, sh.Z), nil
	case "fill_circle":
		if !(sh.Radius > 0) {
			return mesh2d.Mesh{}, fmt.Errorf("fill_circle needs a positive radius, got %v", sh.Radius)
		}
		return mesh2d.FillCircle(center, sh.Radius, count, sh.Z), nil
	default:
		return mesh2d.Mesh{}, fmt.Errorf("unknown shape kind %q", sh.Kind)
	}

	m, err := mesh2d.Stroke(path, closed, style, sh.Z)
	if err != nil {
		return mesh2d.Mesh{}, fmt.Errorf("stroke %s: %w", sh.Kind, err)
	}
	return m, nil
}
