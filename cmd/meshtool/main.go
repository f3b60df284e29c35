// meshtool generates procedural grid meshes and inspects or exports them.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/procmesh/internal/config"
	"github.com/Faultbox/procmesh/internal/logger"
	"github.com/Faultbox/procmesh/pkg/procmesh"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	args := config.Args()
	if len(args) < 1 {
		printUsage()
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Sugar.Debugf("Config: %+v", cfg)

	command, rest := args[0], args[1:]
	switch command {
	case "info":
		err = cmdInfo(cfg)
	case "obj":
		err = cmdOBJ(cfg, rest)
	case "orbit":
		err = cmdOrbit(cfg, rest)
	case "init":
		err = cmdInit(cfg, rest)
	case "help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		logger.Error("command failed", zap.String("command", command), zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`meshtool - procedural grid mesh generator

Usage:
  meshtool [flags] <command> [options]

Commands:
  info                 Generate the mesh and print its statistics
  obj <out.obj>        Generate the mesh and write it as Wavefront OBJ
  orbit [-frames N]    Replay a mouse drag around the mesh and print the camera path
  init [path]          Write the default config (to the user config dir if no path)

Flags:
  -config <file>       Config file (default ./procmesh.yaml, then user config dir)
  -resolution <n>      Cells per side, at least 1
  -surface <kind>      planar, uvsphere or triangulated
  -up <axis>           y or z (planar only)
  -workers <n>         Generate rings on n goroutines
  -debug               Debug logging

Examples:
  meshtool -resolution 32 -surface uvsphere info
  meshtool -surface triangulated obj tris.obj`)
}

// generate builds the mesh described by cfg.
func generate(cfg *config.Config) (*procmesh.MeshData, error) {
	opts, err := cfg.MeshOptions()
	if err != nil {
		return nil, err
	}

	done := logger.Timed("generated mesh",
		zap.Stringer("surface", opts.Surface),
		zap.Int("resolution", opts.Resolution),
		zap.Int("workers", opts.Workers),
	)
	defer done()

	return procmesh.Generate(opts)
}
