// Package obj writes generated stroke geometry as Wavefront OBJ.
package obj

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/Faultbox/strokemesh/pkg/tube"
)

// Write writes the buffers as an OBJ object with the given name. Positions,
// normals and the first two UV components are exported; OBJ has no slot for
// the color or radius channels.
func Write(w io.Writer, name string, b *tube.Buffers) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "o %s\n", name)
	for _, p := range b.Positions {
		fmt.Fprintf(bw, "v %g %g %g\n", p.X, p.Y, p.Z)
	}
	for i := 0; i < b.VertexCount(); i++ {
		uv := b.UV(i)
		fmt.Fprintf(bw, "vt %g %g\n", uv.X, uv.Y)
	}
	for _, n := range b.Normals {
		fmt.Fprintf(bw, "vn %g %g %g\n", n.X, n.Y, n.Z)
	}
	for i := 0; i+2 < len(b.Indices); i += 3 {
		// OBJ indices are 1-based; vertex, UV and normal streams share
		// the same indexing here.
		a := b.Indices[i] + 1
		bb := b.Indices[i+1] + 1
		c := b.Indices[i+2] + 1
		fmt.Fprintf(bw, "f %d/%d/%d %d/%d/%d %d/%d/%d\n", a, a, a, bb, bb, bb, c, c, c)
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing obj: %w", err)
	}
	return nil
}

// WriteFile writes the buffers to path.
func WriteFile(path, name string, b *tube.Buffers) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	if err := Write(f, name, b); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}
