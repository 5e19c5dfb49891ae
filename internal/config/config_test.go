package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Faultbox/strokemesh/pkg/tube"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Brush.CirclePoints != 8 {
		t.Errorf("Brush.CirclePoints = %d, want 8", cfg.Brush.CirclePoints)
	}
	if cfg.Brush.Shape != "none" {
		t.Errorf("Brush.Shape = %q, want \"none\"", cfg.Brush.Shape)
	}
	if cfg.Viewer.Width != 1280 || cfg.Viewer.Height != 720 {
		t.Errorf("Viewer size = %dx%d, want 1280x720", cfg.Viewer.Width, cfg.Viewer.Height)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want \"info\"", cfg.Logging.Level)
	}
}

func TestDefaultResolves(t *testing.T) {
	cfg := Default()

	tc, err := cfg.Brush.TubeConfig()
	if err != nil {
		t.Fatalf("TubeConfig() error: %v", err)
	}
	if err := tc.Validate(); err != nil {
		t.Errorf("default brush config invalid: %v", err)
	}
	if tc.UVStyle != tube.UVDistance {
		t.Errorf("UVStyle = %v, want UVDistance", tc.UVStyle)
	}
	if tc.Shape != tube.ShapeNone {
		t.Errorf("Shape = %v, want ShapeNone", tc.Shape)
	}
}

func TestTubeConfigEnums(t *testing.T) {
	tests := []struct {
		uvStyle string
		shape   string
		wantUV  tube.UVStyle
		wantSh  tube.Shape
		wantErr bool
	}{
		{"distance", "none", tube.UVDistance, tube.ShapeNone, false},
		{"stretch", "double_taper", tube.UVStretch, tube.ShapeDoubleTaper, false},
		{"", "", tube.UVDistance, tube.ShapeNone, false},
		{"distance", "petal", tube.UVDistance, tube.ShapePetal, false},
		{"distance", "comet", tube.UVDistance, tube.ShapeComet, false},
		{"spiral", "none", 0, 0, true},
		{"distance", "star", 0, 0, true},
	}

	base := Default().Brush
	for _, tt := range tests {
		b := base
		b.UVStyle = tt.uvStyle
		b.Shape = tt.shape

		tc, err := b.TubeConfig()
		if tt.wantErr {
			if err == nil {
				t.Errorf("TubeConfig(uv=%q shape=%q) expected error, got none", tt.uvStyle, tt.shape)
			}
			continue
		}
		if err != nil {
			t.Errorf("TubeConfig(uv=%q shape=%q) error: %v", tt.uvStyle, tt.shape, err)
			continue
		}
		if tc.UVStyle != tt.wantUV {
			t.Errorf("TubeConfig(uv=%q).UVStyle = %v, want %v", tt.uvStyle, tc.UVStyle, tt.wantUV)
		}
		if tc.Shape != tt.wantSh {
			t.Errorf("TubeConfig(shape=%q).Shape = %v, want %v", tt.shape, tc.Shape, tt.wantSh)
		}
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	content := `brush:
  circle_points: 16
  hard_edges: true
  shape: taper
viewer:
  width: 1920
  height: 1080
export:
  path: out/mesh.obj
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, path); err != nil {
		t.Fatalf("loadFromFile() error: %v", err)
	}

	if cfg.Brush.CirclePoints != 16 {
		t.Errorf("Brush.CirclePoints = %d, want 16", cfg.Brush.CirclePoints)
	}
	if !cfg.Brush.HardEdges {
		t.Error("Brush.HardEdges = false, want true")
	}
	if cfg.Brush.Shape != "taper" {
		t.Errorf("Brush.Shape = %q, want \"taper\"", cfg.Brush.Shape)
	}
	if cfg.Viewer.Width != 1920 {
		t.Errorf("Viewer.Width = %d, want 1920", cfg.Viewer.Width)
	}
	if cfg.Export.Path != "out/mesh.obj" {
		t.Errorf("Export.Path = %q, want \"out/mesh.obj\"", cfg.Export.Path)
	}
	// Unspecified values keep their defaults
	if cfg.Capture.SpawnDistance != 1.0 {
		t.Errorf("Capture.SpawnDistance = %v, want 1.0", cfg.Capture.SpawnDistance)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	cfg := Default()
	cfg.Brush.Shape = "petal"
	cfg.Brush.BaseRadius = 0.25
	cfg.Export.ObjectName = "petal_stroke"

	if err := SaveTo(cfg, path); err != nil {
		t.Fatalf("SaveTo() error: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("loadFromFile() error: %v", err)
	}

	if loaded.Brush.Shape != "petal" {
		t.Errorf("Brush.Shape = %q, want \"petal\"", loaded.Brush.Shape)
	}
	if loaded.Brush.BaseRadius != 0.25 {
		t.Errorf("Brush.BaseRadius = %v, want 0.25", loaded.Brush.BaseRadius)
	}
	if loaded.Export.ObjectName != "petal_stroke" {
		t.Errorf("Export.ObjectName = %q, want \"petal_stroke\"", loaded.Export.ObjectName)
	}
}
