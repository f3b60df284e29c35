package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagResolution = flag.Int("resolution", 0, "Grid resolution (cells per side)")
	flagSurface    = flag.String("surface", "", "Surface kind: planar, uvsphere, triangulated")
	flagUp         = flag.String("up", "", "Planar up axis: y or z")
	flagWorkers    = flag.Int("workers", 0, "Generate rings on N goroutines")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// Args returns the non-flag arguments left after ParseFlags.
func Args() []string {
	return flag.Args()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagResolution != 0 {
		cfg.Mesh.Resolution = *flagResolution
	}
	if *flagSurface != "" {
		cfg.Mesh.Surface = *flagSurface
	}
	if *flagUp != "" {
		cfg.Mesh.UpAxis = *flagUp
	}
	if *flagWorkers > 0 {
		cfg.Mesh.Workers = *flagWorkers
	}
}
