package trimesh

import (
	"github.com/solarlune/trimesh/math32"
)

// WorldRight represents a unit vector in the global direction of WorldRight on the right-handed OpenGL coordinate system (+X).
var WorldRight = NewVector3(1, 0, 0)

// WorldUp represents a unit vector in the global direction of WorldUp on the right-handed OpenGL coordinate system (+Y).
var WorldUp = NewVector3(0, 1, 0)

// WorldBackward represents a unit vector in the global direction of WorldBackward on the right-handed OpenGL coordinate system (+Z).
var WorldBackward = NewVector3(0, 0, 1)

// Vector3 represents a 3D vector in single precision, which is used for all geometry handled by trimesh
// (positions, directions, extents, barycenters).
// Any Vector3 functions that modify the calling Vector3 return copies of the modified Vector3, meaning you can do method-chaining easily.
// Vector3s are most efficient when copied (so try not to store pointers to them if possible, as dereferencing pointers
// can be more inefficient than directly acting on data, and storing pointers moves variables to heap).
type Vector3 struct {
	X float32 // The X (1st) component of the Vector3
	Y float32 // The Y (2nd) component of the Vector3
	Z float32 // The Z (3rd) component of the Vector3
}

// NewVector3 creates a new Vector3 with the specified x, y, and z components.
func NewVector3(x, y, z float32) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

// Add returns a copy of the calling Vector3, added together with the other Vector3 provided.
func (vec Vector3) Add(other Vector3) Vector3 {
	vec.X += other.X
	vec.Y += other.Y
	vec.Z += other.Z
	return vec
}

// Sub returns a copy of the calling Vector3, with the other Vector3 subtracted from it.
func (vec Vector3) Sub(other Vector3) Vector3 {
	vec.X -= other.X
	vec.Y -= other.Y
	vec.Z -= other.Z
	return vec
}

// Scale returns a copy of the calling Vector3, scaled by the scalar provided.
func (vec Vector3) Scale(scalar float32) Vector3 {
	vec.X *= scalar
	vec.Y *= scalar
	vec.Z *= scalar
	return vec
}

// Invert returns a copy of the calling Vector3 with all components negated.
func (vec Vector3) Invert() Vector3 {
	vec.X = -vec.X
	vec.Y = -vec.Y
	vec.Z = -vec.Z
	return vec
}

// Cross returns a new Vector3, indicating the cross product of the calling Vector3 and the provided other Vector3.
func (vec Vector3) Cross(other Vector3) Vector3 {

	ogVecY := vec.Y
	ogVecZ := vec.Z

	vec.Z = vec.X*other.Y - other.X*vec.Y
	vec.Y = ogVecZ*other.X - other.Z*vec.X
	vec.X = ogVecY*other.Z - other.Y*ogVecZ

	return vec

}

// Dot returns the dot product of the calling Vector3 and the provided other Vector3.
func (vec Vector3) Dot(other Vector3) float32 {
	return vec.X*other.X + vec.Y*other.Y + vec.Z*other.Z
}

// Magnitude returns the length of the Vector3.
func (vec Vector3) Magnitude() float32 {
	return math32.Sqrt(vec.X*vec.X + vec.Y*vec.Y + vec.Z*vec.Z)
}

// MagnitudeSquared returns the squared length of the Vector3; this is faster than Magnitude() as it avoids using math32.Sqrt().
func (vec Vector3) MagnitudeSquared() float32 {
	return vec.X*vec.X + vec.Y*vec.Y + vec.Z*vec.Z
}

// DistanceTo returns the distance from the calling Vector3 to the other Vector3 provided.
func (vec Vector3) DistanceTo(other Vector3) float32 {
	return other.Sub(vec).Magnitude()
}

// DistanceSquaredTo returns the squared distance from the calling Vector3 to the other Vector3 provided.
func (vec Vector3) DistanceSquaredTo(other Vector3) float32 {
	return other.Sub(vec).MagnitudeSquared()
}

// MultComp returns a copy of the calling Vector3, multiplied componentwise by the other Vector3.
func (vec Vector3) MultComp(other Vector3) Vector3 {
	vec.X *= other.X
	vec.Y *= other.Y
	vec.Z *= other.Z
	return vec
}

// Unit returns a copy of the Vector3, normalized (set to be of unit length).
// A Vector3 of near-zero magnitude is returned unmodified.
func (vec Vector3) Unit() Vector3 {
	l := vec.Magnitude()
	if l < 1e-8 {
		return vec
	}
	vec.X, vec.Y, vec.Z = vec.X/l, vec.Y/l, vec.Z/l
	return vec
}

// Abs returns a copy of the Vector3 with each component made nonnegative.
func (vec Vector3) Abs() Vector3 {
	vec.X = math32.Abs(vec.X)
	vec.Y = math32.Abs(vec.Y)
	vec.Z = math32.Abs(vec.Z)
	return vec
}

// Lerp linearly interpolates from the calling Vector3 to the other Vector3 by the percentage provided.
func (vec Vector3) Lerp(other Vector3, percentage float32) Vector3 {
	percentage = math32.Clamp(percentage, 0, 1)
	vec.X = vec.X + ((other.X - vec.X) * percentage)
	vec.Y = vec.Y + ((other.Y - vec.Y) * percentage)
	vec.Z = vec.Z + ((other.Z - vec.Z) * percentage)
	return vec
}

// Equals returns true if the two Vector3s are close enough in all values.
func (vec Vector3) Equals(other Vector3) bool {

	const eps = 1e-6

	if math32.Abs(vec.X-other.X) > eps || math32.Abs(vec.Y-other.Y) > eps || math32.Abs(vec.Z-other.Z) > eps {
		return false
	}

	return true

}

// Floats returns a [3]float32 array consisting of the Vector3's contents.
func (vec Vector3) Floats() [3]float32 {
	return [3]float32{vec.X, vec.Y, vec.Z}
}

// Axis returns the component of the Vector3 indexed by axis (0 = X, 1 = Y, 2 = Z).
func (vec Vector3) Axis(axis int) float32 {
	switch axis {
	case 0:
		return vec.X
	case 1:
		return vec.Y
	default:
		return vec.Z
	}
}

// Vector4 represents a 4D vector in single precision. trimesh uses Vector4s for planes, where
// X, Y, and Z hold the plane normal and W holds the plane distance term.
type Vector4 struct {
	X float32 // The X (1st) component of the Vector4
	Y float32 // The Y (2nd) component of the Vector4
	Z float32 // The Z (3rd) component of the Vector4
	W float32 // The W (4th) component of the Vector4
}

// NewVector4 creates a new Vector4 with the specified x, y, z, and w components.
func NewVector4(x, y, z, w float32) Vector4 {
	return Vector4{X: x, Y: y, Z: z, W: w}
}

// NewPlane creates a Vector4 plane from the normal provided and a distance term such that
// points on the plane satisfy dot(normal, point) + w == 0.
func NewPlane(normal Vector3, w float32) Vector4 {
	return Vector4{X: normal.X, Y: normal.Y, Z: normal.Z, W: w}
}

// XYZ returns the X, Y, and Z components of the Vector4 as a Vector3.
func (vec Vector4) XYZ() Vector3 {
	return Vector3{X: vec.X, Y: vec.Y, Z: vec.Z}
}

// Dot returns the dot product of the calling Vector4 and the provided other Vector4.
func (vec Vector4) Dot(other Vector4) float32 {
	return vec.X*other.X + vec.Y*other.Y + vec.Z*other.Z + vec.W*other.W
}

// DotPoint returns the dot product of the calling Vector4 with the point provided, extended to (x, y, z, 1).
// For a plane with a unit normal this is the signed distance of the point from the plane.
func (vec Vector4) DotPoint(point Vector3) float32 {
	return vec.X*point.X + vec.Y*point.Y + vec.Z*point.Z + vec.W
}

// Scale returns a copy of the calling Vector4, scaled by the scalar provided.
func (vec Vector4) Scale(scalar float32) Vector4 {
	vec.X *= scalar
	vec.Y *= scalar
	vec.Z *= scalar
	vec.W *= scalar
	return vec
}

// Vector2 represents a 2D vector in single precision, used for projections onto triangle planes.
type Vector2 struct {
	X float32 // The X (1st) component of the Vector2
	Y float32 // The Y (2nd) component of the Vector2
}

// NewVector2 creates a new Vector2 with the specified x and y components.
func NewVector2(x, y float32) Vector2 {
	return Vector2{X: x, Y: y}
}
