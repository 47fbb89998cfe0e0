// math32 is a stand-in for the built-in math package, but the functions take and return float32s
// (if not all comparable numbers) instead of float64s, since trimesh stores all of its geometry
// in single precision.
// These are mostly just wrappers around chewxy/math32, which has optimized float32 implementations.
package math32

import (
	"math"

	"github.com/chewxy/math32"
)

// MaxFloat32 is the largest finite float32 value.
const MaxFloat32 = float32(math.MaxFloat32)

// Epsilon is the difference between 1 and the next larger float32 (the single-precision machine epsilon).
const Epsilon float32 = 1.1920929e-07

const Pi = math.Pi

// ToRadians is a helper function to easily convert degrees to radians.
func ToRadians(degrees float32) float32 {
	return math.Pi * degrees / 180
}

// ToDegrees is a helper function to easily convert radians to degrees for human readability.
func ToDegrees(radians float32) float32 {
	return radians / math.Pi * 180
}

// Min returns the minimum value out of two provided values.
func Min[number float32 | float64 | int | int32 | int64](x, y number) number {
	if x < y {
		return x
	}
	return y
}

// Max returns the maximum value out of two provided values.
func Max[number float32 | float64 | int | int32 | int64](x, y number) number {
	if x > y {
		return x
	}
	return y
}

// Clamp clamps a value to the minimum and maximum values provided.
func Clamp[number float32 | float64 | int | int32 | int64](value, min, max number) number {
	if value < min {
		return min
	} else if value > max {
		return max
	}
	return value
}

// Sign returns the sign of the value given. If it's greater than 0, it returns 1. If less than 0, it returns -1. Otherwise, it returns 0.
func Sign(f float32) float32 {
	if f > 0 {
		return 1
	} else if f < 0 {
		return -1
	}
	return 0
}

// IsNaN returns if the provided float32 is a NaN.
func IsNaN(x float32) bool {
	return x != x
}

// IsInf returns if the provided float32 (x) is Inf in the direction of the sign provided.
func IsInf(x float32, sign int) bool {
	return math32.IsInf(x, sign)
}

// Inf returns an infinite float32 in the direction of the sign provided.
func Inf(sign int) float32 {
	return math32.Inf(sign)
}

// Sqrt returns the square root of x.
func Sqrt(x float32) float32 {
	return math32.Sqrt(x)
}

// Abs returns the absolute value of x.
func Abs(x float32) float32 {
	return math32.Abs(x)
}

// Floor returns the greatest integer value less than or equal to x.
func Floor(x float32) float32 {
	return math32.Floor(x)
}

// Ceil returns the least integer value greater than or equal to x.
func Ceil(x float32) float32 {
	return math32.Ceil(x)
}

// Mod returns the floating-point remainder of x/y.
func Mod(x, y float32) float32 {
	return math32.Mod(x, y)
}

// Pow returns x raised to the power of y.
func Pow(x, y float32) float32 {
	return math32.Pow(x, y)
}

// Log2 returns the binary logarithm of x.
func Log2(x float32) float32 {
	return math32.Log2(x)
}

// Sin returns the sine of the radian argument x.
func Sin(x float32) float32 {
	return math32.Sin(x)
}

// Cos returns the cosine of the radian argument x.
func Cos(x float32) float32 {
	return math32.Cos(x)
}

// Atan2 returns the arc tangent of y/x, using the signs of the two to determine the quadrant of the return value.
func Atan2(y, x float32) float32 {
	return math32.Atan2(y, x)
}

// Copysign returns a value with the magnitude of f and the sign of sign.
func Copysign(f, sign float32) float32 {
	return math32.Copysign(f, sign)
}
