// Package export writes generated meshes to files for inspection in
// external tools.
package export

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/Faultbox/procmesh/pkg/procmesh"
)

// OBJOptions controls which attributes WriteOBJ emits.
type OBJOptions struct {
	Precision int // decimal places, <0 for shortest exact form
	Normals   bool
	UVs       bool
}

// WriteOBJ writes m as a Wavefront OBJ document. Indices are 1-based and
// every face references the same index for position, UV and normal.
func WriteOBJ(w io.Writer, m *procmesh.MeshData, opts OBJOptions) error {
	bw := bufio.NewWriter(w)

	f := func(v float32) string {
		return strconv.FormatFloat(float64(v), 'f', opts.Precision, 32)
	}

	fmt.Fprintf(bw, "# %d vertices, %d triangles\n", m.VertexCount(), m.TriangleCount())
	for _, p := range m.Positions {
		fmt.Fprintf(bw, "v %s %s %s\n", f(p.X), f(p.Y), f(p.Z))
	}
	if opts.UVs {
		for _, uv := range m.UVs {
			fmt.Fprintf(bw, "vt %s %s\n", f(uv.X), f(uv.Y))
		}
	}
	if opts.Normals {
		for _, n := range m.Normals {
			fmt.Fprintf(bw, "vn %s %s %s\n", f(n.X), f(n.Y), f(n.Z))
		}
	}

	for k := range m.TriangleCount() {
		tri := m.Triangle(k)
		bw.WriteString("f")
		for _, idx := range tri {
			bw.WriteByte(' ')
			bw.WriteString(faceVertex(idx+1, opts))
		}
		bw.WriteByte('\n')
	}

	return bw.Flush()
}

func faceVertex(i uint32, opts OBJOptions) string {
	s := strconv.FormatUint(uint64(i), 10)
	switch {
	case opts.UVs && opts.Normals:
		return s + "/" + s + "/" + s
	case opts.UVs:
		return s + "/" + s
	case opts.Normals:
		return s + "//" + s
	default:
		return s
	}
}
