package tube

import (
	gomath "math"

	"github.com/Faultbox/strokemesh/pkg/math"
)

// emitGeometry emits or overwrites geometry for knots [start, end). Knot
// start-1 must already be fully emitted (or be the sentinel); everything
// strictly before its range is left untouched.
func (g *Generator) emitGeometry(start int) {
	for i := start; i < len(g.knots); i++ {
		prev := &g.knots[i-1]
		k := &g.knots[i]
		k.StartVert = prev.StartVert + prev.VertCount
		k.StartTri = prev.StartTri + prev.TriCount
		if !k.hasFrame() {
			k.VertCount = 0
			k.TriCount = 0
			continue
		}
		g.emitKnot(i)
	}

	last := &g.knots[len(g.knots)-1]
	verts := last.StartVert + last.VertCount
	tris := last.StartTri + last.TriCount
	g.buf.truncate(verts, tris)
	if verts < len(g.dirs) {
		g.dirs = g.dirs[:verts]
	}
}

// emitKnot builds the cross-section rings, optional caps and connecting
// triangles owned by knot i.
func (g *Generator) emitKnot(i int) {
	cfg := &g.cfg
	k := &g.knots[i]
	prev := &g.knots[i-1]

	ring := cfg.ringSize()
	segStart := !prev.HasGeometry()
	segEnd := i == len(g.knots)-1 || !g.knots[i+1].hasFrame()

	right := k.Frame.Right()
	up := k.Frame.Up()
	fwd := k.Frame.Forward()
	r0 := g.radius(prev)
	r1 := g.radius(k)

	v := k.StartVert
	t := k.StartTri

	var backStart, startCap int
	var u0 float32
	var row int
	if segStart {
		// The back circle sits at the previous knot; a fresh segment picks
		// its atlas row from the stroke seed.
		row = g.atlasRow(k.StartVert)
		backStart = v
		v = g.emitRing(v, prev.Pos, right, up, fwd, r0, 0, row)
		if cfg.EndCaps {
			startCap = v
			v = g.emitCap(v, prev.Pos, right, up, fwd.Neg(), r0, 0, row)
		}
	} else {
		// The back circle is the previous knot's front circle, shared by
		// index. Read u back out of the buffer so the parameterization
		// continues without recomputation.
		backStart = prev.StartVert + prev.VertCount - ring
		u0 = g.buf.UVs[backStart].X
		row = rowFromV(g.buf.UVs[backStart].Y, cfg.AtlasRows)
	}

	// Advance u by arc length at a rate inversely proportional to the local
	// circumference, so tiling density adapts to stroke thickness.
	u1 := u0
	if circ := 2 * gomath.Pi * float64(r1); circ > 0 {
		u1 += k.Length * cfg.TileRate / float32(circ)
	}

	frontStart := v
	v = g.emitRing(v, k.Pos, right, up, fwd, r1, u1, row)

	endCap := v
	if segEnd && cfg.EndCaps {
		v = g.emitCap(v, k.Pos, right, up, fwd, r1, u1, row)
	}

	// Triangles: back-cap fan, cylinder band, front-cap fan.
	if segStart && cfg.EndCaps {
		t = g.emitCapFan(t, backStart, startCap, true)
	}
	t = g.emitCylinder(t, backStart, frontStart)
	if segEnd && cfg.EndCaps {
		t = g.emitCapFan(t, frontStart, endCap, false)
	}

	k.VertCount = v - k.StartVert
	k.TriCount = t - k.StartTri
}

// emitRing emits one cross-section circle and returns the next free vertex
// index. Soft edges share one normal per vertex and duplicate only the seam
// vertex for UV wrap; hard edges duplicate every vertex so each face owns a
// normal pair.
func (g *Generator) emitRing(base int, center, right, up, fwd math.Vec3, radius, u float32, row int) int {
	cfg := &g.cfg
	C := cfg.CirclePoints
	rows := float32(cfg.AtlasRows)

	if !cfg.HardEdges {
		for j := 0; j <= C; j++ {
			// j == C coincides exactly with j == 0; the duplicate carries
			// the wrapped v coordinate.
			dir := ringDir(right, up, j%C, C)
			g.buf.writeVertex(base+j, vertex{
				pos:     center.Add(dir.Scale(radius)),
				normal:  dir,
				tangent: fwd,
				color:   cfg.Color,
				u:       u,
				v:       (float32(row) + float32(j)/float32(C)) / rows,
				radius:  radius,
			})
			g.writeDir(base+j, dir)
		}
		return base + C + 1
	}

	for face := 0; face < C; face++ {
		da := ringDir(right, up, face, C)
		db := ringDir(right, up, (face+1)%C, C)
		n := da.Add(db).Normalize()
		va := (float32(row) + float32(face)/float32(C)) / rows
		vb := (float32(row) + float32(face+1)/float32(C)) / rows
		g.buf.writeVertex(base+2*face, vertex{
			pos: center.Add(da.Scale(radius)), normal: n, tangent: fwd,
			color: cfg.Color, u: u, v: va, radius: radius,
		})
		g.writeDir(base+2*face, da)
		g.buf.writeVertex(base+2*face+1, vertex{
			pos: center.Add(db.Scale(radius)), normal: n, tangent: fwd,
			color: cfg.Color, u: u, v: vb, radius: radius,
		})
		g.writeDir(base+2*face+1, db)
	}
	return base + 2*C
}

// emitCap emits the cap vertices for one segment end: one vertex per circle
// point, all at the tip, each with the normal tangent to the midpoint
// between adjacent ring vertices. axis points out of the tube. The radius
// channel of cap vertices is always zero.
func (g *Generator) emitCap(base int, center, right, up, axis math.Vec3, radius, u float32, row int) int {
	cfg := &g.cfg
	C := cfg.CirclePoints
	rows := float32(cfg.AtlasRows)
	tip := center.Add(axis.Scale(radius * cfg.CapAspect))

	for j := 0; j < C; j++ {
		theta := 2 * gomath.Pi * (float64(j) + 0.5) / float64(C)
		dir := right.Scale(float32(gomath.Cos(theta))).Add(up.Scale(float32(gomath.Sin(theta))))
		g.buf.writeVertex(base+j, vertex{
			pos:     tip,
			normal:  dir,
			tangent: axis,
			color:   cfg.Color,
			u:       u,
			v:       (float32(row) + (float32(j)+0.5)/float32(C)) / rows,
			radius:  0,
		})
		g.writeDir(base+j, axis)
	}
	return base + C
}

// emitCylinder emits the quad band connecting the back and front circles and
// returns the next free triangle index. Winding keeps front faces outward.
func (g *Generator) emitCylinder(t, back, front int) int {
	cfg := &g.cfg
	C := cfg.CirclePoints
	b := uint32(back)
	f := uint32(front)

	if !cfg.HardEdges {
		for j := uint32(0); j < uint32(C); j++ {
			g.buf.writeTriangle(t, b+j, b+j+1, f+j)
			g.buf.writeTriangle(t+1, f+j, b+j+1, f+j+1)
			t += 2
		}
		return t
	}

	for j := uint32(0); j < uint32(C); j++ {
		g.buf.writeTriangle(t, b+2*j, b+2*j+1, f+2*j)
		g.buf.writeTriangle(t+1, f+2*j, b+2*j+1, f+2*j+1)
		t += 2
	}
	return t
}

// emitCapFan emits the triangle fan closing one segment end. start reverses
// the winding so the fan faces away from the tube. For hard edges, ring
// vertex j = i*2+1 pairs with ii = (j+1) % ringSize across the face seam.
func (g *Generator) emitCapFan(t, ringBase, capBase int, start bool) int {
	cfg := &g.cfg
	C := cfg.CirclePoints
	ring := uint32(cfg.ringSize())
	r := uint32(ringBase)
	c := uint32(capBase)

	for i := uint32(0); i < uint32(C); i++ {
		var a, b uint32
		if !cfg.HardEdges {
			a, b = r+i, r+i+1
		} else {
			j := i*2 + 1
			ii := (j + 1) % ring
			a, b = r+j, r+ii
		}
		if start {
			a, b = b, a
		}
		g.buf.writeTriangle(t, a, b, c+i)
		t++
	}
	return t
}

// writeDir records the displacement direction of vertex i under the same
// append-or-overwrite rule as the geometry buffers. Only maintained when a
// silhouette shape is active.
func (g *Generator) writeDir(i int, d math.Vec3) {
	if g.cfg.Shape == ShapeNone {
		return
	}
	if i == len(g.dirs) {
		g.dirs = append(g.dirs, d)
		return
	}
	g.dirs[i] = d
}

// ringDir returns the outward radial direction at circle point j of C.
func ringDir(right, up math.Vec3, j, C int) math.Vec3 {
	theta := 2 * gomath.Pi * float64(j) / float64(C)
	return right.Scale(float32(gomath.Cos(theta))).Add(up.Scale(float32(gomath.Sin(theta))))
}

// rowFromV recovers the atlas row from a ring vertex's v coordinate.
func rowFromV(v float32, rows int) int {
	if rows <= 1 {
		return 0
	}
	return int(v*float32(rows) + 0.5)
}
