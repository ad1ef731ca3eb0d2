// Package fixed provides the 12-bit fractional fixed-point arithmetic used by the engine.
//
// Every operation reproduces the bit pattern of the original 32-bit integer path:
// additions wrap, multiplications widen then shift right by 12 and truncate, and
// divisions shift the dividend left by 12 in native width before dividing.
package fixed

import (
	"math"
	"math/bits"

	"golang.org/x/exp/constraints"
)

// FracBits is the number of fractional bits in every fixed-point type.
const FracBits = 12

// One is the raw representation of 1.0.
const One = 1 << FracBits

// Scalar is any of the fixed-point scalar types.
type Scalar interface {
	Fixed16 | UFixed16 | Fixed32
}

// Compare orders two scalars of possibly different widths.
// Values are promoted sign-aware, so a negative signed value is less than any unsigned value.
func Compare[A, B Scalar](a A, b B) int {
	x, y := int64(a), int64(b)
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	}
	return 0
}

// Equal reports whether two scalars of possibly different widths hold the same value.
// A negative signed value is never equal to an unsigned one.
func Equal[A, B Scalar](a A, b B) bool {
	return int64(a) == int64(b)
}

func toFloat32[T constraints.Integer](raw T) float32 {
	return float32(raw) / One
}

func toFloat64[T constraints.Integer](raw T) float64 {
	return float64(raw) / One
}

// saturate truncates toward zero and clamps to [lo, hi]; NaN maps to zero.
func saturate[T constraints.Integer](v float64, lo, hi T) T {
	switch {
	case math.IsNaN(v):
		return 0
	case v <= float64(lo):
		return lo
	case v >= float64(hi):
		return hi
	}
	return T(v)
}

func radians(turns float32) float32 {
	return turns * (2 * math.Pi)
}

func degrees(turns float32) float32 {
	return radians(turns) * 180 / math.Pi
}

// Fixed16 is a signed 16-bit fixed-point number with 12 fractional bits.
type Fixed16 int16

// Fixed16FromFloat converts a float to Fixed16, saturating at the type bounds.
func Fixed16FromFloat(f float32) Fixed16 {
	return saturate[Fixed16](float64(f*One), math.MinInt16, math.MaxInt16)
}

// Float32 returns the value as a float.
func (f Fixed16) Float32() float32 { return toFloat32(f) }

// Radians interprets the value as a fraction of a full turn.
func (f Fixed16) Radians() float32 { return radians(f.Float32()) }

// Degrees interprets the value as a fraction of a full turn.
func (f Fixed16) Degrees() float32 { return degrees(f.Float32()) }

// Add returns f + o with wraparound.
func (f Fixed16) Add(o Fixed16) Fixed16 { return f + o }

// Sub returns f - o with wraparound.
func (f Fixed16) Sub(o Fixed16) Fixed16 { return f - o }

// AddU adds an unsigned value in 32 bits and truncates back to 16.
func (f Fixed16) AddU(o UFixed16) Fixed16 { return Fixed16(int32(f) + int32(o)) }

// SubU subtracts an unsigned value in 32 bits and truncates back to 16.
func (f Fixed16) SubU(o UFixed16) Fixed16 { return Fixed16(int32(f) - int32(o)) }

// Mul returns f * o.
func (f Fixed16) Mul(o Fixed16) Fixed16 {
	return Fixed16((int64(f) * int64(o)) >> FracBits)
}

// Div returns f / o. The dividend is shifted in 16 bits, so large values lose their high bits.
// Panics if o is zero.
func (f Fixed16) Div(o Fixed16) Fixed16 {
	return (f << FracBits) / o
}

// Neg returns -f with wraparound.
func (f Fixed16) Neg() Fixed16 { return -f }

// Shl shifts the raw bits left.
func (f Fixed16) Shl(n uint) Fixed16 { return f << n }

// Shr shifts the raw bits right (arithmetic).
func (f Fixed16) Shr(n uint) Fixed16 { return f >> n }

// Abs returns |f|; the minimum value wraps to itself.
func (f Fixed16) Abs() Fixed16 {
	if f < 0 {
		return -f
	}
	return f
}

// UnsignedAbs returns |f| as an unsigned value.
func (f Fixed16) UnsignedAbs() UFixed16 {
	return UFixed16(abs32(int32(f)))
}

// To32 widens to Fixed32.
func (f Fixed16) To32() Fixed32 { return Fixed32(f) }

// IsZero reports whether f is zero.
func (f Fixed16) IsZero() bool { return f == 0 }

// IsPositive reports whether f > 0.
func (f Fixed16) IsPositive() bool { return f > 0 }

// IsNegative reports whether f < 0.
func (f Fixed16) IsNegative() bool { return f < 0 }

// Cmp compares f with another Fixed16.
func (f Fixed16) Cmp(o Fixed16) int { return Compare(f, o) }

// CmpU compares f with an unsigned value; negative values are always less.
func (f Fixed16) CmpU(o UFixed16) int { return Compare(f, o) }

// EqU reports whether f equals an unsigned value; negative values never do.
func (f Fixed16) EqU(o UFixed16) bool { return Equal(f, o) }

// UFixed16 is an unsigned 16-bit fixed-point number with 12 fractional bits.
type UFixed16 uint16

// UFixed16FromFloat converts a float to UFixed16, saturating at the type bounds.
func UFixed16FromFloat(f float32) UFixed16 {
	return saturate[UFixed16](float64(f*One), 0, math.MaxUint16)
}

// Float32 returns the value as a float.
func (u UFixed16) Float32() float32 { return toFloat32(u) }

// Add returns u + o with wraparound.
func (u UFixed16) Add(o UFixed16) UFixed16 { return u + o }

// Sub returns u - o with wraparound.
func (u UFixed16) Sub(o UFixed16) UFixed16 { return u - o }

// Mul returns u * o.
func (u UFixed16) Mul(o UFixed16) UFixed16 {
	return UFixed16((uint64(u) * uint64(o)) >> FracBits)
}

// Div returns u / o with the dividend shifted in 16 bits. Panics if o is zero.
func (u UFixed16) Div(o UFixed16) UFixed16 {
	return (u << FracBits) / o
}

// Neg reinterprets u as signed and negates it.
func (u UFixed16) Neg() Fixed16 { return -Fixed16(u) }

// Shl shifts the raw bits left.
func (u UFixed16) Shl(n uint) UFixed16 { return u << n }

// Shr shifts the raw bits right.
func (u UFixed16) Shr(n uint) UFixed16 { return u >> n }

// To32 widens to Fixed32.
func (u UFixed16) To32() Fixed32 { return Fixed32(u) }

// Cmp compares u with another unsigned value.
func (u UFixed16) Cmp(o UFixed16) int { return Compare(u, o) }

// CmpS compares u with a signed value; u is greater than any negative value.
func (u UFixed16) CmpS(o Fixed16) int { return Compare(u, o) }

// EqS reports whether u equals a signed value.
func (u UFixed16) EqS(o Fixed16) bool { return Equal(u, o) }

// Fixed32 is a signed 32-bit fixed-point number with 12 fractional bits.
type Fixed32 int32

// Fixed32FromFloat converts a float to Fixed32, saturating at the type bounds.
func Fixed32FromFloat(f float32) Fixed32 {
	return saturate[Fixed32](float64(f*One), math.MinInt32, math.MaxInt32)
}

// Float32 returns the value as a float.
func (f Fixed32) Float32() float32 { return toFloat32(f) }

// Float64 returns the value as a double.
func (f Fixed32) Float64() float64 { return toFloat64(f) }

// Radians interprets the value as a fraction of a full turn.
func (f Fixed32) Radians() float32 { return radians(f.Float32()) }

// Degrees interprets the value as a fraction of a full turn.
func (f Fixed32) Degrees() float32 { return degrees(f.Float32()) }

// Add returns f + o with wraparound.
func (f Fixed32) Add(o Fixed32) Fixed32 { return f + o }

// Sub returns f - o with wraparound.
func (f Fixed32) Sub(o Fixed32) Fixed32 { return f - o }

// Mul returns f * o.
func (f Fixed32) Mul(o Fixed32) Fixed32 {
	return Fixed32((int64(f) * int64(o)) >> FracBits)
}

// Div returns f / o. The dividend is shifted in 32 bits, so |f| >= 2^19 overflows.
// Panics if o is zero.
func (f Fixed32) Div(o Fixed32) Fixed32 {
	return (f << FracBits) / o
}

// Neg returns -f with wraparound.
func (f Fixed32) Neg() Fixed32 { return -f }

// Shl shifts the raw bits left.
func (f Fixed32) Shl(n uint) Fixed32 { return f << n }

// Shr shifts the raw bits right (arithmetic).
func (f Fixed32) Shr(n uint) Fixed32 { return f >> n }

// Mask returns the raw bits of f masked by m.
func (f Fixed32) Mask(m int32) int32 { return int32(f) & m }

// And returns f & o.
func (f Fixed32) And(o Fixed32) Fixed32 { return f & o }

// Abs returns |f|; the minimum value wraps to itself.
func (f Fixed32) Abs() Fixed32 {
	if f < 0 {
		return -f
	}
	return f
}

// Inc returns f plus one raw unit.
func (f Fixed32) Inc() Fixed32 { return f + 1 }

// Dec returns f minus one raw unit.
func (f Fixed32) Dec() Fixed32 { return f - 1 }

// IsZero reports whether f is zero.
func (f Fixed32) IsZero() bool { return f == 0 }

// IsPositive reports whether f > 0.
func (f Fixed32) IsPositive() bool { return f > 0 }

// IsNegative reports whether f < 0.
func (f Fixed32) IsNegative() bool { return f < 0 }

// Cmp compares f with another Fixed32.
func (f Fixed32) Cmp(o Fixed32) int { return Compare(f, o) }

// Sqrt returns the table-driven square root of f.
func (f Fixed32) Sqrt() Fixed32 {
	return Fixed32(Sqrt(int32(f << FracBits)))
}

// Sin returns the table-driven sine of a 12-bit circular angle (0x400 = 90°).
func (f Fixed32) Sin() Fixed32 {
	val := int32(f) & 0x7ff
	idx := val
	if val >= 0x400 {
		idx = int32(len(sineTable)) - (val - 0x400) - 1
	}

	s := Fixed32(sineTable[idx])
	if int32(f)&0x800 != 0 {
		return -s
	}
	return s
}

// Cos returns the sine of the angle advanced by a quarter turn.
func (f Fixed32) Cos() Fixed32 {
	return (f + 0x400).Sin()
}

// atanScale and atanPi convert radians to 12-bit angle units. The divisor is 3.14, not π.
const (
	atanScale = 2048.0
	atanPi    = 3.14
)

// Atan returns the arctangent of f as a 12-bit angle.
//
// The engine uses the x87 fpatan instruction; this is a float64 approximation whose
// result may differ from the original in the last unit.
func (f Fixed32) Atan() Fixed32 {
	angle := (math.Atan(f.Float64()) * atanScale) / atanPi
	return Fixed32(int32(angle))
}

// Atan2 returns the angle of the point (o, f) as a 12-bit angle. Same caveats as Atan.
func (f Fixed32) Atan2(o Fixed32) Fixed32 {
	angle := (math.Atan2(float64(f), float64(o)) * atanScale) / atanPi
	return Fixed32(int32(angle))
}

// Sqrt is the raw integer square root. val must be pre-shifted left by 12.
// Zero and negative inputs return zero.
func Sqrt(val int32) uint32 {
	if val <= 0 {
		return 0
	}

	zeros := uint32(bits.LeadingZeros32(uint32(val))) &^ 1
	var idx uint32
	if zeros < 0x18 {
		idx = uint32(val) >> (0x18 - zeros)
	} else {
		idx = uint32(val) << (zeros - 0x18)
	}

	return (uint32(sqrtTable[idx]) << ((0x1f - zeros) >> 1)) >> 12
}

func abs32(v int32) uint32 {
	if v < 0 {
		return uint32(-int64(v))
	}
	return uint32(v)
}
