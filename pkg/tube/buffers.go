package tube

import "github.com/Faultbox/strokemesh/pkg/math"

// Buffers is the shared set of indexable geometry arrays for one stroke.
// It is exclusively owned by one Generator; consumers must treat it as a
// read-only snapshot between generation calls.
type Buffers struct {
	Positions []math.Vec3
	Normals   []math.Vec3
	Tangents  []math.Vec3
	Colors    [][4]float32
	// UVs carries (u, v) and, when the radius-in-UV-Z flag is set, the
	// cross-section radius in Z.
	UVs []math.Vec3
	// Radii is the separate radius channel, populated only when the radius
	// is not packed into UV Z.
	Radii []float32
	// Indices is the triangle list, in groups of three.
	Indices []uint32

	radiusInUVZ bool
}

// vertex gathers one vertex worth of channel data for a buffer write.
type vertex struct {
	pos     math.Vec3
	normal  math.Vec3
	tangent math.Vec3
	color   [4]float32
	u, v    float32
	radius  float32
}

// VertexCount returns the committed vertex count.
func (b *Buffers) VertexCount() int {
	return len(b.Positions)
}

// TriangleCount returns the committed triangle count.
func (b *Buffers) TriangleCount() int {
	return len(b.Indices) / 3
}

// UV returns the plain 2D texture coordinate of vertex i, regardless of
// whether the radius channel is packed into UV Z.
func (b *Buffers) UV(i int) math.Vec2 {
	return math.Vec2{X: b.UVs[i].X, Y: b.UVs[i].Y}
}

// writeVertex writes vertex i: append if i is exactly the current length,
// overwrite in place otherwise. Knots near the append point are reconsidered
// repeatedly before being finalized, so the same index may be written many
// times.
func (b *Buffers) writeVertex(i int, vt vertex) {
	uv := math.Vec3{X: vt.u, Y: vt.v}
	if b.radiusInUVZ {
		uv.Z = vt.radius
	}
	if i == len(b.Positions) {
		b.Positions = append(b.Positions, vt.pos)
		b.Normals = append(b.Normals, vt.normal)
		b.Tangents = append(b.Tangents, vt.tangent)
		b.Colors = append(b.Colors, vt.color)
		b.UVs = append(b.UVs, uv)
		if !b.radiusInUVZ {
			b.Radii = append(b.Radii, vt.radius)
		}
		return
	}
	b.Positions[i] = vt.pos
	b.Normals[i] = vt.normal
	b.Tangents[i] = vt.tangent
	b.Colors[i] = vt.color
	b.UVs[i] = uv
	if !b.radiusInUVZ {
		b.Radii[i] = vt.radius
	}
}

// writeTriangle writes triangle t under the same append-or-overwrite rule.
func (b *Buffers) writeTriangle(t int, i0, i1, i2 uint32) {
	at := t * 3
	if at == len(b.Indices) {
		b.Indices = append(b.Indices, i0, i1, i2)
		return
	}
	b.Indices[at] = i0
	b.Indices[at+1] = i1
	b.Indices[at+2] = i2
}

// truncate shrinks the committed lengths to the live tail after a
// recomputation that emitted fewer vertices or triangles than before.
// Capacity is kept for the next append.
func (b *Buffers) truncate(verts, tris int) {
	if verts < len(b.Positions) {
		b.Positions = b.Positions[:verts]
		b.Normals = b.Normals[:verts]
		b.Tangents = b.Tangents[:verts]
		b.Colors = b.Colors[:verts]
		b.UVs = b.UVs[:verts]
		if !b.radiusInUVZ {
			b.Radii = b.Radii[:verts]
		}
	}
	if tris*3 < len(b.Indices) {
		b.Indices = b.Indices[:tris*3]
	}
}
