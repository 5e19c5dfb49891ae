package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "path to config file")
	flagDebug      = flag.Bool("debug", false, "enable debug logging")
	flagInput      = flag.String("input", "", "stroke sample file to read")
	flagOutput     = flag.String("output", "", "OBJ file to write")
	flagShape      = flag.String("shape", "", "silhouette shape override")
	flagHardEdges  = flag.Bool("hard", false, "emit hard-edge rings")
	flagStretchUV  = flag.Bool("stretch-uv", false, "use stretch UV assignment")
	flagWidth      = flag.Int("width", 0, "viewer window width")
	flagHeight     = flag.Int("height", 0, "viewer window height")
	flagFullscreen = flag.Bool("fullscreen", false, "viewer fullscreen mode")
)

// ParseFlags parses command-line flags. Call before Load.
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config file path, if one was given.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags overrides config values with any flags that were set.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagInput != "" {
		cfg.Export.Input = *flagInput
	}
	if *flagOutput != "" {
		cfg.Export.Path = *flagOutput
	}
	if *flagShape != "" {
		cfg.Brush.Shape = *flagShape
	}
	if *flagHardEdges {
		cfg.Brush.HardEdges = true
	}
	if *flagStretchUV {
		cfg.Brush.UVStyle = "stretch"
	}
	if *flagWidth > 0 {
		cfg.Viewer.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Viewer.Height = *flagHeight
	}
	if *flagFullscreen {
		cfg.Viewer.Fullscreen = true
	}
}
