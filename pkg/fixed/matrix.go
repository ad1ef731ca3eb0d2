package fixed

// Matrix is a 3x3 rotation in row-major order plus a translation (32 bytes).
// Layout: [m0 m1 m2]
//
//	[m3 m4 m5]
//	[m6 m7 m8]
type Matrix struct {
	M   [9]Fixed16
	Pad int16
	T   Vector
}

// Identity returns an identity rotation with no translation.
func Identity() Matrix {
	return Matrix{M: [9]Fixed16{
		One, 0, 0,
		0, One, 0,
		0, 0, One,
	}}
}

// RotY returns a rotation around the vertical axis.
func RotY(angle Fixed32) Matrix {
	c, s := Fixed16(angle.Cos()), Fixed16(angle.Sin())
	return Matrix{M: [9]Fixed16{
		c, 0, s,
		0, One, 0,
		-s, 0, c,
	}}
}

// ApplyVec3 rotates v and adds the translation, like the GTE RTPS path.
func (m Matrix) ApplyVec3(v Vec3) Vec3 {
	x, y, z := int32(v.X), int32(v.Y), int32(v.Z)
	row := func(i int) Fixed32 {
		sum := int32(m.M[i])*x + int32(m.M[i+1])*y + int32(m.M[i+2])*z
		return Fixed32(sum >> FracBits)
	}

	return Vec3{
		X: row(0) + m.T.X,
		Y: row(3) + m.T.Y,
		Z: row(6) + m.T.Z,
	}
}

// ApplyVec2 applies the matrix to a point on the ground plane.
func (m Matrix) ApplyVec2(v Vec2) Vec2 {
	return m.ApplyVec3(Vec3{X: v.X, Z: v.Z}).XZ()
}
