// Command meshdemo strokes a scene of 2D shapes into triangle meshes and
// previews them as a PNG.
package main

import (
	"flag"
	"image"
	"image/png"
	"log"
	"log/slog"
	"os"

	"golang.org/x/image/draw"

	"github.com/gogpu/mesh2d"
)

func main() {
	var (
		width     = flag.Int("width", 800, "image width")
		height    = flag.Int("height", 600, "image height")
		output    = flag.String("output", "mesh.png", "output file")
		scenePath = flag.String("scene", "", "scene file (YAML); built-in scene if empty")
		stylePath = flag.String("style", "", "stroke style file (YAML or TOML)")
		wire      = flag.Bool("wire", false, "draw a coverage mask instead of colors")
		verbose   = flag.Bool("v", false, "log mesh statistics")
	)
	flag.Parse()

	if *verbose {
		mesh2d.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	style := mesh2d.DefaultStrokeStyle().WithPointCount(48)
	if *stylePath != "" {
		s, err := mesh2d.LoadStrokeStyle(*stylePath)
		if err != nil {
			log.Fatalf("Failed to load style: %v", err)
		}
		style = s
	}

	scene := defaultScene()
	if *scenePath != "" {
		s, err := loadScene(*scenePath)
		if err != nil {
			log.Fatalf("Failed to load scene: %v", err)
		}
		scene = s
	}

	cm := mesh2d.NewColorMesh(1024)
	for i, sh := range scene.Shapes {
		m, err := sh.build(style)
		if err != nil {
			log.Fatalf("Shape %d (%s): %v", i, sh.Kind, err)
		}
		c, err := mesh2d.ParseHex(sh.Color)
		if err != nil {
			c = mesh2d.RGB(1, 1, 1)
		}
		cm.AddMesh(m, c)
	}

	mesh := cm.Mesh()
	view := mesh2d.FitView(mesh.Bounds(), *width, *height, 20)

	var img image.Image
	if *wire {
		img = mesh2d.Rasterize(mesh, *width, *height, view)
	} else {
		rgba := image.NewRGBA(image.Rect(0, 0, *width, *height))
		if bg, err := mesh2d.ParseHex(scene.Background); err == nil {
			draw.Draw(rgba, rgba.Bounds(), image.NewUniform(bg.Color()), image.Point{}, draw.Src)
		}
		mesh2d.RasterizeColor(rgba, cm, view)
		img = rgba
	}

	if err := savePNG(*output, img); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Mesh saved to %s (%d vertices, %d triangles, %d vertex bytes)\n",
		*output, len(cm.Vertices), len(cm.Triangles)/3, len(cm.AppendVertexBytes(nil)))
}

func savePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
