package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/procmesh/internal/camera"
	"github.com/Faultbox/procmesh/internal/config"
	"github.com/Faultbox/procmesh/internal/export"
	"github.com/Faultbox/procmesh/internal/logger"
	"github.com/Faultbox/procmesh/pkg/math"
)

func cmdInfo(cfg *config.Config) error {
	m, err := generate(cfg)
	if err != nil {
		return err
	}

	b := m.Bounds
	fmt.Printf("Surface:    %s (up %s)\n", cfg.Mesh.Surface, cfg.Mesh.UpAxis)
	fmt.Printf("Resolution: %d\n", cfg.Mesh.Resolution)
	fmt.Printf("Vertices:   %d\n", m.VertexCount())
	fmt.Printf("Indices:    %d\n", len(m.Indices))
	fmt.Printf("Triangles:  %d (%d degenerate)\n", m.TriangleCount(), m.DegenerateTriangles())
	fmt.Printf("Bounds:     (%.4f, %.4f, %.4f) - (%.4f, %.4f, %.4f)\n",
		b.Min.X, b.Min.Y, b.Min.Z, b.Max.X, b.Max.Y, b.Max.Z)
	return nil
}

func cmdOBJ(cfg *config.Config, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: meshtool obj <out.obj>")
	}

	m, err := generate(cfg)
	if err != nil {
		return err
	}

	f, err := os.Create(args[0])
	if err != nil {
		return fmt.Errorf("creating %s: %w", args[0], err)
	}

	opts := export.OBJOptions{
		Precision: cfg.Export.Precision,
		Normals:   cfg.Export.Normals,
		UVs:       cfg.Export.UVs,
	}
	if err := export.WriteOBJ(f, m, opts); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", args[0], err)
	}
	if err := f.Close(); err != nil {
		return err
	}

	logger.Info("wrote obj",
		zap.String("path", args[0]),
		zap.Int("vertices", m.VertexCount()),
		zap.Int("triangles", m.TriangleCount()),
	)
	return nil
}

func cmdOrbit(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("orbit", flag.ContinueOnError)
	frames := fs.Int("frames", 60, "Number of 60 Hz frames to simulate")
	dx := fs.Float64("dx", 4, "Cursor movement per frame in X (pixels)")
	dy := fs.Float64("dy", 1, "Cursor movement per frame in Y (pixels)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	m, err := generate(cfg)
	if err != nil {
		return err
	}

	eye := cfg.Camera.Eye
	target := cfg.Camera.Target
	cam := camera.NewOrbitCamera(
		math.Vec3{X: eye.X, Y: eye.Y, Z: eye.Z},
		math.Vec3{X: target.X, Y: target.Y, Z: target.Z},
	)
	cam.Threshold = cfg.Camera.DragThreshold
	cam.FitToBounds(m.Bounds.Min, m.Bounds.Max)

	const dt = float32(1.0 / 60)

	var drag camera.DragState
	cursor := math.Vec2{}
	drag.Begin(cursor)
	rotated := 0
	for i := 0; i < *frames; i++ {
		cursor = cursor.Add(math.Vec2{X: float32(*dx), Y: float32(*dy)})
		if cam.HandleDrag(drag.Move(cursor), dt) {
			rotated++
		}
		p := cam.Position
		fmt.Printf("%4d  (%8.4f, %8.4f, %8.4f)\n", i, p.X, p.Y, p.Z)
	}
	drag.End()

	logger.Debug("orbit finished",
		zap.Int("frames", *frames),
		zap.Int("rotated", rotated),
		zap.Float32("distance", cam.Distance()),
	)
	return nil
}

func cmdInit(cfg *config.Config, args []string) error {
	var path string
	var err error
	if len(args) > 0 {
		path = args[0]
		err = cfg.SaveTo(path)
	} else {
		path, err = cfg.Save()
	}
	if err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println(path)
	return nil
}
