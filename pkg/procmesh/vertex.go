// Package procmesh generates tessellated surface meshes (flat grid, UV sphere
// and brick-offset triangle grid) from a single resolution parameter.
//
// A mesh is built ring by ring: each ring is one row of resolution+1 vertices
// on a 2D lattice, mapped onto a surface, and stitched to the previous ring
// with two triangles per lattice cell.
package procmesh

import "github.com/Faultbox/procmesh/pkg/math"

// Vertex holds every attribute the generator produces for one lattice point.
type Vertex struct {
	Position  math.Vec3
	Normal    math.Vec3 // unit length, not renormalized
	Tangent   math.Vec4 // XYZ direction, W handedness (+1 or -1)
	TexCoord0 math.Vec2
}
