package math

// Vec4 is a 4D vector. Mesh tangents store the direction in XYZ and the
// bitangent handedness sign in W.
type Vec4 struct {
	X, Y, Z, W float32
}

// XYZ drops the W component.
func (v Vec4) XYZ() Vec3 {
	return Vec3{v.X, v.Y, v.Z}
}
