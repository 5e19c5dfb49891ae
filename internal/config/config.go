// Package config handles stroke tool configuration loading and management.
package config

import (
	"fmt"

	"github.com/Faultbox/strokemesh/internal/capture"
	"github.com/Faultbox/strokemesh/pkg/tube"
)

// Config holds all tool settings.
type Config struct {
	Brush   BrushConfig   `yaml:"brush"`
	Capture CaptureConfig `yaml:"capture"`
	Viewer  ViewerConfig  `yaml:"viewer"`
	Export  ExportConfig  `yaml:"export"`
	Logging LoggingConfig `yaml:"logging"`
}

// BrushConfig holds the per-stroke brush parameters in file form.
type BrushConfig struct {
	CirclePoints    int        `yaml:"circle_points"`
	EndCaps         bool       `yaml:"end_caps"`
	HardEdges       bool       `yaml:"hard_edges"`
	UVStyle         string     `yaml:"uv_style"` // distance or stretch
	Shape           string     `yaml:"shape"`    // none, double_taper, sin, comet, taper, petal
	BaseRadius      float32    `yaml:"base_radius"`
	CapAspect       float32    `yaml:"cap_aspect"`
	TaperScale      float32    `yaml:"taper_scale"`
	PetalAmount     float32    `yaml:"petal_amount"`
	PetalExponent   float32    `yaml:"petal_exponent"`
	BreakAngleScale float32    `yaml:"break_angle_scale"`
	TileRate        float32    `yaml:"tile_rate"`
	AtlasRows       int        `yaml:"atlas_rows"`
	RadiusInUVZ     bool       `yaml:"radius_in_uv_z"`
	UnitScale       float32    `yaml:"unit_scale"`
	Preview         bool       `yaml:"preview"`
	Color           [4]float32 `yaml:"color"`
}

// CaptureConfig holds input smoothing and knot spawning settings.
type CaptureConfig struct {
	SpawnDistance float32 `yaml:"spawn_distance"`
	Smoothing     float32 `yaml:"smoothing"`
}

// ViewerConfig holds display settings for the interactive viewer.
type ViewerConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
}

// ExportConfig holds mesh export settings.
type ExportConfig struct {
	Input      string `yaml:"input"`
	Path       string `yaml:"path"`
	ObjectName string `yaml:"object_name"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	tc := tube.DefaultConfig()
	cc := capture.DefaultConfig()
	return &Config{
		Brush: BrushConfig{
			CirclePoints:    tc.CirclePoints,
			EndCaps:         tc.EndCaps,
			HardEdges:       tc.HardEdges,
			UVStyle:         "distance",
			Shape:           "none",
			BaseRadius:      tc.BaseRadius,
			CapAspect:       tc.CapAspect,
			TaperScale:      tc.TaperScale,
			PetalAmount:     tc.PetalAmount,
			PetalExponent:   tc.PetalExponent,
			BreakAngleScale: tc.BreakAngleScale,
			TileRate:        tc.TileRate,
			AtlasRows:       tc.AtlasRows,
			RadiusInUVZ:     tc.RadiusInUVZ,
			UnitScale:       tc.UnitScale,
			Preview:         tc.Preview,
			Color:           tc.Color,
		},
		Capture: CaptureConfig{
			SpawnDistance: cc.SpawnDistance,
			Smoothing:     cc.Smoothing,
		},
		Viewer: ViewerConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
		},
		Export: ExportConfig{
			Input:      "",
			Path:       "stroke.obj",
			ObjectName: "stroke",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// TubeConfig resolves the file-form brush settings into the immutable
// per-stroke configuration, parsing the enum strings.
func (b BrushConfig) TubeConfig() (tube.Config, error) {
	cfg := tube.Config{
		CirclePoints:    b.CirclePoints,
		EndCaps:         b.EndCaps,
		HardEdges:       b.HardEdges,
		BaseRadius:      b.BaseRadius,
		CapAspect:       b.CapAspect,
		TaperScale:      b.TaperScale,
		PetalAmount:     b.PetalAmount,
		PetalExponent:   b.PetalExponent,
		BreakAngleScale: b.BreakAngleScale,
		TileRate:        b.TileRate,
		AtlasRows:       b.AtlasRows,
		RadiusInUVZ:     b.RadiusInUVZ,
		UnitScale:       b.UnitScale,
		Preview:         b.Preview,
		Color:           b.Color,
	}

	switch b.UVStyle {
	case "", "distance":
		cfg.UVStyle = tube.UVDistance
	case "stretch":
		cfg.UVStyle = tube.UVStretch
	default:
		return tube.Config{}, fmt.Errorf("unknown uv_style %q", b.UVStyle)
	}

	switch b.Shape {
	case "", "none":
		cfg.Shape = tube.ShapeNone
	case "double_taper":
		cfg.Shape = tube.ShapeDoubleTaper
	case "sin":
		cfg.Shape = tube.ShapeSin
	case "comet":
		cfg.Shape = tube.ShapeComet
	case "taper":
		cfg.Shape = tube.ShapeTaper
	case "petal":
		cfg.Shape = tube.ShapePetal
	default:
		return tube.Config{}, fmt.Errorf("unknown shape %q", b.Shape)
	}

	return cfg, nil
}

// Resolve returns the capture parameters in their package form.
func (c CaptureConfig) Resolve() capture.Config {
	return capture.Config{
		SpawnDistance: c.SpawnDistance,
		Smoothing:     c.Smoothing,
	}
}
