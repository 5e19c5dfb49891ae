package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/strokemesh/internal/capture"
	"github.com/Faultbox/strokemesh/pkg/math"
)

// strokeFile is the on-disk form of a recorded stroke.
type strokeFile struct {
	Samples []sampleEntry `yaml:"samples"`
}

type sampleEntry struct {
	Pos      []float32 `yaml:"pos"`
	Pressure float32   `yaml:"pressure"`
	// Optional orientation hint as an axis/angle pair.
	Axis     []float32 `yaml:"axis"`
	AngleDeg float32   `yaml:"angle_deg"`
}

// readStrokeFile parses a YAML stroke recording into raw capture samples.
func readStrokeFile(path string) ([]capture.RawSample, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading stroke file: %w", err)
	}

	var file strokeFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing stroke file: %w", err)
	}
	if len(file.Samples) == 0 {
		return nil, fmt.Errorf("stroke file %s has no samples", path)
	}

	raws := make([]capture.RawSample, 0, len(file.Samples))
	for i, s := range file.Samples {
		if len(s.Pos) != 3 {
			return nil, fmt.Errorf("sample %d: pos must have 3 components, got %d", i, len(s.Pos))
		}
		raw := capture.RawSample{
			Position: math.Vec3{X: s.Pos[0], Y: s.Pos[1], Z: s.Pos[2]},
			Pressure: s.Pressure,
		}
		if raw.Pressure == 0 {
			raw.Pressure = 1
		}
		if len(s.Axis) == 3 {
			axis := math.Vec3{X: s.Axis[0], Y: s.Axis[1], Z: s.Axis[2]}
			raw.Orientation = math.QuatFromAxisAngle(axis, s.AngleDeg*degToRad)
		}
		raws = append(raws, raw)
	}
	return raws, nil
}

const degToRad = 3.14159265358979323846 / 180
