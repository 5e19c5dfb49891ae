package capture

import (
	"testing"

	"github.com/Faultbox/strokemesh/pkg/math"
)

func feedLine(s *Stroke, n int, step float32) {
	for i := 0; i < n; i++ {
		s.Feed(RawSample{
			Position: math.Vec3{Z: float32(i) * step},
			Pressure: 1,
		})
	}
}

func TestSpawnCadence(t *testing.T) {
	cfg := Config{SpawnDistance: 1, Smoothing: 0}
	s := New(cfg)

	feedLine(s, 11, 0.5) // 5 units of travel at zero smoothing
	// Sentinel + one locked knot per spawn distance + live tail.
	if got := s.Len(); got != 7 {
		t.Errorf("sample count = %d, want 7", got)
	}

	// Locked knots sit one spawn distance apart.
	for i := 1; i < s.Len()-1; i++ {
		want := float32(i)
		if got := s.At(i).Position.Z; got != want {
			t.Errorf("knot %d at Z=%v, want %v", i, got, want)
		}
	}
}

func TestSpawnProgress(t *testing.T) {
	cfg := Config{SpawnDistance: 1, Smoothing: 0}
	s := New(cfg)

	s.Feed(RawSample{Position: math.Vec3{}, Pressure: 1})
	if got := s.SpawnProgress(); got != 0 {
		t.Errorf("progress at anchor = %v, want 0", got)
	}

	s.Feed(RawSample{Position: math.Vec3{Z: 0.25}, Pressure: 1})
	if got := s.SpawnProgress(); got < 0.24 || got > 0.26 {
		t.Errorf("progress = %v, want ~0.25", got)
	}
}

func TestFirstChangedIndex(t *testing.T) {
	cfg := Config{SpawnDistance: 1, Smoothing: 0}
	s := New(cfg)

	first, changed := s.Feed(RawSample{Position: math.Vec3{}, Pressure: 1})
	if !changed || first != 0 {
		t.Errorf("first feed changed index = %d, want 0", first)
	}

	first, _ = s.Feed(RawSample{Position: math.Vec3{Z: 0.5}, Pressure: 1})
	if first != 1 {
		t.Errorf("tail move changed index = %d, want 1", first)
	}

	first, _ = s.Feed(RawSample{Position: math.Vec3{Z: 1.5}, Pressure: 1})
	if first != 1 {
		t.Errorf("spawn feed changed index = %d, want 1", first)
	}
	if s.Len() != 3 {
		t.Errorf("sample count after spawn = %d, want 3", s.Len())
	}
}

func TestSmoothingLags(t *testing.T) {
	s := New(Config{SpawnDistance: 10, Smoothing: 0.5})
	s.Feed(RawSample{Position: math.Vec3{}, Pressure: 0})
	s.Feed(RawSample{Position: math.Vec3{Z: 2}, Pressure: 1})

	tail := s.At(s.Len() - 1)
	if tail.Position.Z >= 2 || tail.Position.Z <= 0 {
		t.Errorf("smoothed Z = %v, want strictly between 0 and 2", tail.Position.Z)
	}
	if tail.Pressure >= 1 || tail.Pressure <= 0 {
		t.Errorf("smoothed pressure = %v, want strictly between 0 and 1", tail.Pressure)
	}
}
