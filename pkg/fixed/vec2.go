package fixed

import "math"

// LenOverflow is returned by Vec2.Len when the squared length does not fit in 32 bits.
const LenOverflow = Fixed32(math.MaxInt32)

// Vec2 is a point on the horizontal plane.
type Vec2 struct {
	X, Z Fixed32
}

// NewVec2 builds a Vec2 from any pair of scalars.
func NewVec2[X, Z Scalar](x X, z Z) Vec2 {
	return Vec2{Fixed32(x), Fixed32(z)}
}

// Add returns v + other.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{v.X + other.X, v.Z + other.Z}
}

// Sub returns v - other.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{v.X - other.X, v.Z - other.Z}
}

// AddPair adds raw components.
func (v Vec2) AddPair(x, z Fixed32) Vec2 {
	return Vec2{v.X + x, v.Z + z}
}

// SubPair subtracts raw components.
func (v Vec2) SubPair(x, z Fixed32) Vec2 {
	return Vec2{v.X - x, v.Z - z}
}

// Mul scales both components by s.
func (v Vec2) Mul(s Fixed32) Vec2 {
	return Vec2{v.X.Mul(s), v.Z.Mul(s)}
}

// Neg returns -v.
func (v Vec2) Neg() Vec2 {
	return Vec2{-v.X, -v.Z}
}

// Shl shifts both components left.
func (v Vec2) Shl(n uint) Vec2 {
	return Vec2{v.X << n, v.Z << n}
}

// Shr shifts both components right.
func (v Vec2) Shr(n uint) Vec2 {
	return Vec2{v.X >> n, v.Z >> n}
}

// IsZero reports whether both components are zero.
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Z == 0
}

// SaturatingSub subtracts component-wise, clamping at the int32 bounds.
func (v Vec2) SaturatingSub(other Vec2) Vec2 {
	return Vec2{satSub(v.X, other.X), satSub(v.Z, other.Z)}
}

func satSub(a, b Fixed32) Fixed32 {
	d := int64(a) - int64(b)
	switch {
	case d > math.MaxInt32:
		return math.MaxInt32
	case d < math.MinInt32:
		return math.MinInt32
	}
	return Fixed32(d)
}

// Len returns the length of v.
// If x², z² or their sum overflows 32 bits, LenOverflow is returned.
func (v Vec2) Len() Fixed32 {
	x, z := int64(v.X), int64(v.Z)
	xx, zz := x*x, z*z
	if xx > math.MaxInt32 || zz > math.MaxInt32 || xx+zz > math.MaxInt32 {
		return LenOverflow
	}
	return Fixed32(Sqrt(int32(xx + zz)))
}

// RotateY rotates v around the vertical axis.
func (v Vec2) RotateY(angle Fixed32) Vec2 {
	return RotY(angle).ApplyVec2(v)
}

// AngleBetween returns the 12-bit heading from v towards other.
func (v Vec2) AngleBetween(other Vec2) Fixed32 {
	d := other.Sub(v)
	if !d.X.IsZero() {
		angle := int32(d.Z.Div(d.X).Atan())
		if d.X.IsNegative() {
			angle += 0x800
		}
		return Fixed32(-angle & 0xfff)
	}

	if d.Z.IsPositive() {
		return 0x400 + 0x800
	}
	return 0x400
}
