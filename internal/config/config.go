// Package config handles meshtool configuration loading and management.
package config

import (
	"fmt"

	"github.com/Faultbox/procmesh/pkg/procmesh"
)

// Config holds all meshtool settings.
type Config struct {
	Mesh    MeshConfig    `yaml:"mesh"`
	Camera  CameraConfig  `yaml:"camera"`
	Export  ExportConfig  `yaml:"export"`
	Logging LoggingConfig `yaml:"logging"`
}

// MeshConfig selects what gets generated.
type MeshConfig struct {
	Resolution int    `yaml:"resolution"`
	Surface    string `yaml:"surface"` // planar, uvsphere, triangulated
	UpAxis     string `yaml:"up_axis"` // y or z, planar only
	Workers    int    `yaml:"workers"` // >1 generates rings concurrently
}

// CameraConfig holds orbit camera settings.
type CameraConfig struct {
	Eye           Vec3Config `yaml:"eye"`
	Target        Vec3Config `yaml:"target"`
	DragThreshold float32    `yaml:"drag_threshold"`
}

// Vec3Config is a point written as a YAML mapping.
type Vec3Config struct {
	X float32 `yaml:"x"`
	Y float32 `yaml:"y"`
	Z float32 `yaml:"z"`
}

// ExportConfig holds mesh export settings.
type ExportConfig struct {
	Precision int  `yaml:"precision"` // decimal places for floats
	Normals   bool `yaml:"normals"`
	UVs       bool `yaml:"uvs"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Mesh: MeshConfig{
			Resolution: 16,
			Surface:    "planar",
			UpAxis:     "z",
			Workers:    1,
		},
		Camera: CameraConfig{
			Eye:           Vec3Config{X: 0, Y: 2, Z: 2},
			DragThreshold: 0.1,
		},
		Export: ExportConfig{
			Precision: 6,
			Normals:   true,
			UVs:       true,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// MeshOptions converts the mesh section into validated generator options.
func (c *Config) MeshOptions() (procmesh.Options, error) {
	kind, err := procmesh.ParseSurfaceKind(c.Mesh.Surface)
	if err != nil {
		return procmesh.Options{}, fmt.Errorf("mesh.surface: %w", err)
	}
	up, err := procmesh.ParseUpAxis(c.Mesh.UpAxis)
	if err != nil {
		return procmesh.Options{}, fmt.Errorf("mesh.up_axis: %w", err)
	}

	opts := procmesh.Options{
		Resolution: c.Mesh.Resolution,
		Surface:    kind,
		UpAxis:     up,
		Workers:    c.Mesh.Workers,
	}
	if err := opts.Validate(); err != nil {
		return procmesh.Options{}, fmt.Errorf("mesh: %w", err)
	}
	return opts, nil
}
