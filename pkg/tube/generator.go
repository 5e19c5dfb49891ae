package tube

import (
	"fmt"
	"math/rand"

	"github.com/Faultbox/strokemesh/pkg/math"
)

// Sample is one raw input sample as delivered by the capture/smoothing
// collaborator: an already-smoothed position and pressure plus the raw
// orientation hint of the input device.
type Sample struct {
	Position    math.Vec3
	Pressure    float32
	Orientation math.Quat
}

// SampleSource is the append-only, in-order sample sequence feeding one
// stroke. It is provided by the capture collaborator.
type SampleSource interface {
	Len() int
	At(i int) Sample
}

// Generator owns all geometry state for one stroke and turns sample changes
// into tube geometry. It is single-threaded: all work happens synchronously
// inside Update, driven by "knots changed starting at index K" notifications.
type Generator struct {
	cfg  Config
	src  SampleSource
	seed int64

	// SpawnProgress reports how far the most recent sub-knot motion has
	// progressed toward spawning the next knot, in [0,1]. Used by the
	// double-sided taper to blend across knot insertion. Nil means 0.
	SpawnProgress func() float32

	knots []Knot
	buf   Buffers
	// dirs caches the outward radial (or cap forward) unit direction per
	// vertex. Populated only when a silhouette shape is active; the
	// silhouette pass must not re-derive directions from normals.
	dirs []math.Vec3
}

// NewGenerator creates a generator for one stroke. The configuration is
// validated once here; a returned error means the instance must not be used.
func NewGenerator(cfg Config, src SampleSource, seed int64) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid brush configuration: %w", err)
	}
	g := &Generator{
		cfg:  cfg,
		src:  src,
		seed: seed,
	}
	g.buf.radiusInUVZ = cfg.RadiusInUVZ
	return g, nil
}

// Config returns the immutable stroke configuration.
func (g *Generator) Config() Config {
	return g.cfg
}

// Layout returns the vertex layout descriptor for consumers of the buffers.
func (g *Generator) Layout() VertexLayout {
	return g.cfg.Layout()
}

// Buffers returns the live geometry buffers. The buffers are a read-only
// snapshot between Update calls and may be resized by any call that grows
// the committed length.
func (g *Generator) Buffers() *Buffers {
	return &g.buf
}

// KnotCount returns the number of knots mirrored from the sample source.
func (g *Generator) KnotCount() int {
	return len(g.knots)
}

// KnotAt returns a copy of knot i.
func (g *Generator) KnotAt(i int) Knot {
	return g.knots[i]
}

// Update regenerates geometry for knots [start, end). Call it whenever new
// samples are appended or the smoothing of recent samples is revised. The
// call may also rewrite knot start-1's emitted range (its end cap and shared
// ring), but never mutates committed geometry before that.
func (g *Generator) Update(start int) {
	// Sync one knot back so the anchor a fresh segment hangs its back ring
	// and start cap on is always populated.
	g.syncKnots(start - 1)
	if len(g.knots) < 2 {
		return
	}
	if start < 1 {
		start = 1
	}
	if start >= len(g.knots) {
		return
	}

	// Frame the changed range. A break at the head of the range re-anchors
	// the recomputation one knot earlier.
	for g.frameKnots(start) && start > 1 {
		start--
	}

	// The previous knot's end cap and front-ring sharing depend on whether
	// the stroke continues past it, so emission restarts one knot early.
	if start > 1 && g.knots[start-1].HasGeometry() {
		start--
	}

	g.emitGeometry(start)
	if g.cfg.UVStyle == UVStretch {
		g.assignStretchUVs(start)
	}
	g.applySilhouette(start)
}

// syncKnots mirrors the sample source into the knot arena from index start
// on, appending records for new samples.
func (g *Generator) syncKnots(start int) {
	n := g.src.Len()
	for len(g.knots) < n {
		g.knots = append(g.knots, Knot{})
	}
	if start < 0 {
		start = 0
	}
	for i := start; i < n; i++ {
		s := g.src.At(i)
		g.knots[i].Pos = s.Position
		g.knots[i].Pressure = s.Pressure
	}
}

// radius returns the cross-section radius at the given knot.
func (g *Generator) radius(k *Knot) float32 {
	return g.cfg.BaseRadius * k.Pressure
}

// spawnProgress returns the injected spawn progress clamped to [0,1].
func (g *Generator) spawnProgress() float32 {
	if g.SpawnProgress == nil {
		return 0
	}
	p := g.SpawnProgress()
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// atlasRow picks a texture atlas row for the segment whose first vertex is
// vertIndex, deterministically from the per-stroke seed. This varies texture
// placement across repeated strokes without discontinuity within one stroke.
func (g *Generator) atlasRow(vertIndex int) int {
	if g.cfg.AtlasRows <= 1 {
		return 0
	}
	rng := rand.New(rand.NewSource(g.seed + int64(vertIndex)))
	return rng.Intn(g.cfg.AtlasRows)
}
