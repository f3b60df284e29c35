package procmesh

// GenerateRow writes ring i of an r-resolution grid into vertices and, for
// i > 0, the 6r indices that stitch ring i-1 to ring i.
//
// vertices must hold (r+1)^2 entries and indices 6r^2. Ring i only touches
// vertices[(r+1)i : (r+1)(i+1)] and indices[6r(i-1) : 6ri], so rings may be
// generated in any order or concurrently. Sizes are not checked here; a bad
// r or short buffer panics with an index out of range.
func GenerateRow(s Surface, i, r int, vertices []Vertex, indices []uint32) {
	vi := (r + 1) * i
	s.Row(i, r, vertices[vi:vi+r+1])

	// Ring 0 has nothing to connect to.
	if i == 0 {
		return
	}

	w := s.Winding(i, r)
	ti := 6 * r * (i - 1)
	for x := 1; x <= r; x++ {
		v := vi + x
		for k, off := range w {
			indices[ti+k] = uint32(v + off)
		}
		ti += 6
	}
}
