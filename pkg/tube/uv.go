package tube

// assignStretchUVs recomputes the u coordinate of every vertex in the
// segments from the changed knot onward, normalizing each knot's position
// within its maximal contiguous geometry segment: u = indexInSegment /
// knotsInSegment. Changes cascade, so every later segment is rewritten too.
func (g *Generator) assignStretchUVs(start int) {
	if start < 1 {
		start = 1
	}
	// Walk backward to the first knot of the segment containing start.
	i := start
	for i > 1 && g.knots[i].HasGeometry() && g.knots[i-1].HasGeometry() {
		i--
	}

	for ; i < len(g.knots); i++ {
		if !g.knots[i].HasGeometry() {
			continue
		}
		end := i
		for end+1 < len(g.knots) && g.knots[end+1].HasGeometry() {
			end++
		}
		total := float32(end - i + 1)
		for j := i; j <= end; j++ {
			u := float32(j-i) / total
			k := &g.knots[j]
			for vi := k.StartVert; vi < k.StartVert+k.VertCount; vi++ {
				g.buf.UVs[vi].X = u
			}
		}
		i = end
	}
}
