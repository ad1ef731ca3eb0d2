package fixed

// SSVector is an unpadded short vector (6 bytes on disk).
type SSVector struct {
	X, Y, Z Fixed16
}

// Vec3 returns the vector widened to 32 bits.
func (v SSVector) Vec3() Vec3 {
	return Vec3{Fixed32(v.X), Fixed32(v.Y), Fixed32(v.Z)}
}

// Vector is a long vector as stored by the engine (12 bytes).
type Vector struct {
	X, Y, Z Fixed32
}

// Vec3 is a 3D vector with 32-bit components.
type Vec3 struct {
	X, Y, Z Fixed32
}

// Add returns v + other.
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Sub returns v - other.
func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// XZ returns the horizontal components.
func (v Vec3) XZ() Vec2 {
	return Vec2{v.X, v.Z}
}
