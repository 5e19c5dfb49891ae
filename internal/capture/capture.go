// Package capture turns raw input samples into the smoothed, append-only
// knot stream feeding a tube generator. It owns the spawning cadence: a new
// knot is locked every SpawnDistance of smoothed travel, and the live tail
// knot keeps following the input until it locks.
package capture

import (
	"github.com/Faultbox/strokemesh/pkg/math"
	"github.com/Faultbox/strokemesh/pkg/tube"
)

// RawSample is one unsmoothed input event.
type RawSample struct {
	Position    math.Vec3
	Pressure    float32
	Orientation math.Quat
}

// Config holds capture parameters.
type Config struct {
	// SpawnDistance is the smoothed travel distance between locked knots,
	// in local units.
	SpawnDistance float32
	// Smoothing in [0,1) is the exponential smoothing strength; 0 passes
	// input through unchanged.
	Smoothing float32
}

// DefaultConfig returns capture parameters tuned for mouse input.
func DefaultConfig() Config {
	return Config{
		SpawnDistance: 1.0,
		Smoothing:     0.5,
	}
}

// Stroke accumulates the sample sequence for one stroke. It implements
// tube.SampleSource.
type Stroke struct {
	cfg Config

	samples  []tube.Sample
	pos      math.Vec3
	pressure float32
	orient   math.Quat
	anchor   math.Vec3
	started  bool
}

// New creates an empty stroke.
func New(cfg Config) *Stroke {
	return &Stroke{cfg: cfg}
}

// Len returns the sample count.
func (s *Stroke) Len() int {
	return len(s.samples)
}

// At returns sample i.
func (s *Stroke) At(i int) tube.Sample {
	return s.samples[i]
}

// SpawnProgress reports how far the live tail has traveled toward the next
// knot spawn, in [0,1].
func (s *Stroke) SpawnProgress() float32 {
	if !s.started {
		return 0
	}
	p := s.pos.Distance(s.anchor) / s.cfg.SpawnDistance
	if p > 1 {
		return 1
	}
	return p
}

// Feed consumes one raw input event and returns the index of the first
// changed sample. The caller forwards that index to Generator.Update.
func (s *Stroke) Feed(raw RawSample) (firstChanged int, changed bool) {
	orient := raw.Orientation
	if orient.IsZero() {
		orient = math.QuatIdentity()
	}

	if !s.started {
		s.started = true
		s.pos = raw.Position
		s.pressure = raw.Pressure
		s.orient = orient
		s.anchor = raw.Position
		// Sentinel knot plus the live tail.
		s.samples = append(s.samples, s.current(), s.current())
		return 0, true
	}

	blend := 1 - s.cfg.Smoothing
	s.pos = s.pos.Lerp(raw.Position, blend)
	s.pressure += (raw.Pressure - s.pressure) * blend
	s.orient = s.orient.Slerp(orient, blend)

	tail := len(s.samples) - 1
	s.samples[tail] = s.current()

	if s.pos.Distance(s.anchor) >= s.cfg.SpawnDistance {
		// Lock the tail and start a new one.
		s.anchor = s.pos
		s.samples = append(s.samples, s.current())
	}
	return tail, true
}

func (s *Stroke) current() tube.Sample {
	return tube.Sample{
		Position:    s.pos,
		Pressure:    s.pressure,
		Orientation: s.orient,
	}
}
