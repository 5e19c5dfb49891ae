package obj

import (
	"strings"
	"testing"

	"github.com/Faultbox/strokemesh/pkg/math"
	"github.com/Faultbox/strokemesh/pkg/tube"
)

func TestWrite(t *testing.T) {
	b := &tube.Buffers{
		Positions: []math.Vec3{{X: 0}, {X: 1}, {Y: 1}},
		Normals:   []math.Vec3{{Z: 1}, {Z: 1}, {Z: 1}},
		UVs:       []math.Vec3{{}, {X: 1}, {Y: 1}},
		Indices:   []uint32{0, 1, 2},
	}

	var sb strings.Builder
	if err := Write(&sb, "stroke", b); err != nil {
		t.Fatalf("Write() error: %v", err)
	}
	out := sb.String()

	for _, want := range []string{
		"o stroke\n",
		"v 0 0 0\n",
		"v 1 0 0\n",
		"vt 1 0\n",
		"vn 0 0 1\n",
		"f 1/1/1 2/2/2 3/3/3\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	if got := strings.Count(out, "\nv "); got != 3 {
		t.Errorf("vertex line count = %d, want 3", got)
	}
}
