package tube

import "fmt"

// UVStyle selects how the longitudinal texture coordinate is assigned.
type UVStyle int

const (
	// UVDistance advances u by accumulated arc length, scaled by the tile
	// rate. Assigned inline during emission.
	UVDistance UVStyle = iota
	// UVStretch normalizes u to [0,1] across each contiguous geometry
	// segment in a second pass over the emitted vertices.
	UVStretch
)

// Shape selects the silhouette profile applied after emission.
type Shape int

const (
	ShapeNone Shape = iota
	ShapeDoubleTaper
	ShapeSin
	ShapeComet
	ShapeTaper
	ShapePetal
)

// maxKnotVerts bounds the vertex count any single knot may own. Checked once
// at generator construction against the worst case (back ring, front ring and
// both caps on one knot).
const maxKnotVerts = 1024

// Config holds the immutable per-stroke brush parameters.
type Config struct {
	// CirclePoints is the cross-section point count. Must exceed 2.
	CirclePoints int
	// EndCaps closes off open segment ends with triangle fans.
	EndCaps bool
	// HardEdges gives every cylinder face its own normal pair for faceted
	// shading. Soft edges share one normal per ring vertex.
	HardEdges bool
	UVStyle   UVStyle
	Shape     Shape

	// BaseRadius is the cross-section radius in local units at pressure 1.
	BaseRadius float32
	// CapAspect scales how far the cap tip extends past the ring center,
	// in units of the local radius.
	CapAspect float32
	// TaperScale scales the ShapeTaper profile.
	TaperScale float32
	// PetalAmount and PetalExponent parameterize the ShapePetal offset
	// along the stroke surface normal.
	PetalAmount   float32
	PetalExponent float32
	// BreakAngleScale multiplies the adaptive break-angle threshold.
	// Larger values tolerate sharper turns before inserting a strip break.
	BreakAngleScale float32
	// TileRate scales how fast u advances per unit of arc length.
	TileRate float32
	// AtlasRows is the texture atlas row count; each stroke segment picks
	// one row from the stroke seed.
	AtlasRows int
	// RadiusInUVZ packs the cross-section radius into a third UV component
	// instead of the separate radius channel.
	RadiusInUVZ bool
	// UnitScale converts input distances to local units; it scales the
	// minimum-motion threshold.
	UnitScale float32
	// Preview disables angle-based strip breaks while a stroke is still
	// being shaped live.
	Preview bool
	// Color is applied to every emitted vertex.
	Color [4]float32
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() Config {
	return Config{
		CirclePoints:    8,
		EndCaps:         true,
		HardEdges:       false,
		UVStyle:         UVDistance,
		Shape:           ShapeNone,
		BaseRadius:      0.5,
		CapAspect:       1.0,
		TaperScale:      1.0,
		PetalAmount:     0.5,
		PetalExponent:   2.0,
		BreakAngleScale: 1.5,
		TileRate:        1.0,
		AtlasRows:       1,
		RadiusInUVZ:     false,
		UnitScale:       10.0,
		Color:           [4]float32{1, 1, 1, 1},
	}
}

// Validate checks the configuration invariants that are fatal at stroke
// construction.
func (c Config) Validate() error {
	if c.CirclePoints <= 2 {
		return fmt.Errorf("tube: circle point count must exceed 2, got %d", c.CirclePoints)
	}
	if c.AtlasRows < 1 {
		return fmt.Errorf("tube: atlas row count must be at least 1, got %d", c.AtlasRows)
	}
	worst := 2 * c.ringSize()
	if c.EndCaps {
		worst += 2 * c.CirclePoints
	}
	if worst > maxKnotVerts {
		return fmt.Errorf("tube: per-knot vertex count %d exceeds limit %d", worst, maxKnotVerts)
	}
	return nil
}

// ringSize returns the vertex count of one cross-section ring.
func (c Config) ringSize() int {
	if c.HardEdges {
		return 2 * c.CirclePoints
	}
	// One extra vertex coincident with the first, so the UV seam wraps
	// cleanly.
	return c.CirclePoints + 1
}

// capVerts returns the vertex count of one cap, zero when caps are disabled.
func (c Config) capVerts() int {
	if !c.EndCaps {
		return 0
	}
	return c.CirclePoints
}

// VertexLayout describes which channels the generated buffers carry, for the
// rendering or storage consumer.
type VertexLayout struct {
	HasNormals     bool
	HasTangents    bool
	HasColors      bool
	UVComponents   int
	SeparateRadius bool
}

// Layout returns the vertex layout produced under this configuration.
func (c Config) Layout() VertexLayout {
	l := VertexLayout{
		HasNormals:   true,
		HasTangents:  true,
		HasColors:    true,
		UVComponents: 2,
	}
	if c.RadiusInUVZ {
		l.UVComponents = 3
	} else {
		l.SeparateRadius = true
	}
	return l
}
