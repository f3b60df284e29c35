package export

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/procmesh/pkg/procmesh"
)

func countPrefix(lines []string, prefix string) int {
	n := 0
	for _, l := range lines {
		if strings.HasPrefix(l, prefix) {
			n++
		}
	}
	return n
}

func TestWriteOBJ_Counts(t *testing.T) {
	for _, r := range []int{1, 4, 9} {
		m := procmesh.GenerateGrid(r, procmesh.UVSphere)

		var buf bytes.Buffer
		require.NoError(t, WriteOBJ(&buf, m, OBJOptions{Precision: 5, Normals: true, UVs: true}))

		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		assert.Equal(t, (r+1)*(r+1), countPrefix(lines, "v "))
		assert.Equal(t, (r+1)*(r+1), countPrefix(lines, "vt "))
		assert.Equal(t, (r+1)*(r+1), countPrefix(lines, "vn "))
		assert.Equal(t, 2*r*r, countPrefix(lines, "f "))
	}
}

func TestWriteOBJ_PlanarResolutionOne(t *testing.T) {
	m := procmesh.GenerateGrid(1, procmesh.Planar)

	var buf bytes.Buffer
	require.NoError(t, WriteOBJ(&buf, m, OBJOptions{Precision: 1}))

	want := `# 4 vertices, 2 triangles
v -0.5 -0.5 0.0
v 0.5 -0.5 0.0
v -0.5 0.5 0.0
v 0.5 0.5 0.0
f 1 2 3
f 2 4 3
`
	assert.Equal(t, want, buf.String())
}

func TestFaceVertex(t *testing.T) {
	assert.Equal(t, "7/7/7", faceVertex(7, OBJOptions{UVs: true, Normals: true}))
	assert.Equal(t, "7/7", faceVertex(7, OBJOptions{UVs: true}))
	assert.Equal(t, "7//7", faceVertex(7, OBJOptions{Normals: true}))
	assert.Equal(t, "7", faceVertex(7, OBJOptions{}))
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteOBJ_PropagatesWriteError(t *testing.T) {
	m := procmesh.GenerateGrid(2, procmesh.Planar)
	assert.Error(t, WriteOBJ(failWriter{}, m, OBJOptions{Precision: 3}))
}
