package procmesh

import "github.com/Faultbox/procmesh/pkg/math"

// MeshData is a generated mesh, de-interleaved into parallel attribute
// streams plus a triangle-list index buffer.
//
// All attribute streams have the same length. Each triple of Indices is one
// triangle, counter-clockwise seen from the vertex normals. The caller owns
// every slice; the generator keeps no reference after returning.
type MeshData struct {
	Positions []math.Vec3
	Normals   []math.Vec3
	Tangents  []math.Vec4
	UVs       []math.Vec2
	Indices   []uint32
	Bounds    Bounds
}

// Bounds holds the axis-aligned bounding box of the mesh positions.
type Bounds struct {
	Min math.Vec3
	Max math.Vec3
}

// Size returns the extent of the box along each axis.
func (b Bounds) Size() math.Vec3 {
	return b.Max.Sub(b.Min)
}

// newMeshData splits interleaved vertices into streams and computes bounds.
func newMeshData(vertices []Vertex, indices []uint32) *MeshData {
	m := &MeshData{
		Positions: make([]math.Vec3, len(vertices)),
		Normals:   make([]math.Vec3, len(vertices)),
		Tangents:  make([]math.Vec4, len(vertices)),
		UVs:       make([]math.Vec2, len(vertices)),
		Indices:   indices,
	}

	for i, v := range vertices {
		m.Positions[i] = v.Position
		m.Normals[i] = v.Normal
		m.Tangents[i] = v.Tangent
		m.UVs[i] = v.TexCoord0

		if i == 0 {
			m.Bounds = Bounds{Min: v.Position, Max: v.Position}
			continue
		}
		m.Bounds.Min = m.Bounds.Min.Min(v.Position)
		m.Bounds.Max = m.Bounds.Max.Max(v.Position)
	}

	return m
}

// VertexCount returns the number of vertices in every attribute stream.
func (m *MeshData) VertexCount() int {
	return len(m.Positions)
}

// TriangleCount returns the number of triangles in the index buffer.
func (m *MeshData) TriangleCount() int {
	return len(m.Indices) / 3
}

// Vertex re-interleaves the attributes of vertex i.
func (m *MeshData) Vertex(i int) Vertex {
	return Vertex{
		Position:  m.Positions[i],
		Normal:    m.Normals[i],
		Tangent:   m.Tangents[i],
		TexCoord0: m.UVs[i],
	}
}

// Triangle returns the vertex indices of triangle k.
func (m *MeshData) Triangle(k int) [3]uint32 {
	return [3]uint32{m.Indices[3*k], m.Indices[3*k+1], m.Indices[3*k+2]}
}

// DegenerateTriangles counts triangles with (near) zero area. UV spheres
// always have some at the poles.
func (m *MeshData) DegenerateTriangles() int {
	const eps = 1e-12

	n := 0
	for k := range m.TriangleCount() {
		t := m.Triangle(k)
		a := m.Positions[t[0]]
		e1 := m.Positions[t[1]].Sub(a)
		e2 := m.Positions[t[2]].Sub(a)
		c := e1.Cross(e2)
		if c.Dot(c) < eps {
			n++
		}
	}
	return n
}
