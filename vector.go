package tesseract

import (
	"math"
)

// VecX represents a unit vector pointing along +X (right).
var VecX = NewVector(1, 0, 0)

// VecY represents a unit vector pointing along +Y (upwards).
var VecY = NewVector(0, 1, 0)

// VecZ represents a unit vector pointing along +Z (backwards, towards the viewer).
var VecZ = NewVector(0, 0, 1)

// Vector represents a 3D Vector, used for projected hypercube vertices, camera positions and directions.
// Any Vector functions that modify the calling Vector return copies of the modified Vector, meaning you can do method-chaining easily.
type Vector struct {
	X float64 // The X (1st) component of the Vector
	Y float64 // The Y (2nd) component of the Vector
	Z float64 // The Z (3rd) component of the Vector
}

// NewVector creates a new Vector with the specified x, y, and z components.
func NewVector(x, y, z float64) Vector {
	return Vector{X: x, Y: y, Z: z}
}

// Add returns a copy of the calling vector, added together with the other Vector provided.
func (vec Vector) Add(other Vector) Vector {
	vec.X += other.X
	vec.Y += other.Y
	vec.Z += other.Z
	return vec
}

// Sub returns a copy of the calling Vector, with the other Vector subtracted from it.
func (vec Vector) Sub(other Vector) Vector {
	vec.X -= other.X
	vec.Y -= other.Y
	vec.Z -= other.Z
	return vec
}

// Cross returns a new Vector, indicating the cross product of the calling Vector and the provided Other Vector.
func (vec Vector) Cross(other Vector) Vector {

	ogVecY := vec.Y
	ogVecZ := vec.Z

	vec.Z = vec.X*other.Y - other.X*vec.Y
	vec.Y = ogVecZ*other.X - other.Z*vec.X
	vec.X = ogVecY*other.Z - other.Y*ogVecZ

	return vec

}

func (vec Vector) Invert() Vector {
	vec.X = -vec.X
	vec.Y = -vec.Y
	vec.Z = -vec.Z
	return vec
}

// Magnitude returns the length of the Vector.
func (vec Vector) Magnitude() float64 {
	return math.Sqrt(vec.X*vec.X + vec.Y*vec.Y + vec.Z*vec.Z)
}

// Unit returns a copy of the Vector, normalized (set to be of unit length).
func (vec Vector) Unit() Vector {
	l := vec.Magnitude()
	if l < 1e-8 {
		// If it's 0, then don't modify the vector
		return vec
	}
	vec.X, vec.Y, vec.Z = vec.X/l, vec.Y/l, vec.Z/l
	return vec
}

// Scale scales a Vector by the given scalar.
func (vec Vector) Scale(scalar float64) Vector {
	vec.X *= scalar
	vec.Y *= scalar
	vec.Z *= scalar
	return vec
}

// Dot returns the dot product of a Vector and another Vector.
func (vec Vector) Dot(other Vector) float64 {
	return vec.X*other.X + vec.Y*other.Y + vec.Z*other.Z
}

// Float32s returns the Vector's contents as float32s, which is what vertex buffers and glTF accessors want.
func (vec Vector) Float32s() [3]float32 {
	return [3]float32{float32(vec.X), float32(vec.Y), float32(vec.Z)}
}

// Equals returns true if the two Vectors are close enough in all values.
func (vec Vector) Equals(other Vector) bool {
	return vec.EqualsWithin(other, 1e-8)
}

// EqualsWithin returns true if every component of the two Vectors differs by no more than eps.
func (vec Vector) EqualsWithin(other Vector, eps float64) bool {

	if math.Abs(vec.X-other.X) > eps || math.Abs(vec.Y-other.Y) > eps || math.Abs(vec.Z-other.Z) > eps {
		return false
	}

	return true

}

// Vector4 represents a point in 4D space; hypercube corners are Vector4s with every component at +1 or -1.
type Vector4 struct {
	X float64 // The X (1st) component of the Vector4
	Y float64 // The Y (2nd) component of the Vector4
	Z float64 // The Z (3rd) component of the Vector4
	W float64 // The W (4th) component of the Vector4
}

// XYZ returns the first three components of the Vector4, dropping W.
func (vec Vector4) XYZ() Vector {
	return Vector{X: vec.X, Y: vec.Y, Z: vec.Z}
}

// Component returns the component at the given axis index (0 = X, 1 = Y, 2 = Z, 3 = W).
func (vec Vector4) Component(axis int) float64 {
	switch axis {
	case 0:
		return vec.X
	case 1:
		return vec.Y
	case 2:
		return vec.Z
	case 3:
		return vec.W
	}
	panic("tesseract: Vector4 axis index out of range")
}

// SetComponent returns a copy of the Vector4 with the component at the given axis index set to value.
func (vec Vector4) SetComponent(axis int, value float64) Vector4 {
	switch axis {
	case 0:
		vec.X = value
	case 1:
		vec.Y = value
	case 2:
		vec.Z = value
	case 3:
		vec.W = value
	default:
		panic("tesseract: Vector4 axis index out of range")
	}
	return vec
}

// Magnitude returns the length of the Vector4, including W.
func (vec Vector4) Magnitude() float64 {
	return math.Sqrt(vec.X*vec.X + vec.Y*vec.Y + vec.Z*vec.Z + vec.W*vec.W)
}

// Equals returns true if the two Vector4s are close enough in all values.
func (vec Vector4) Equals(other Vector4) bool {
	eps := 1e-8
	return math.Abs(vec.X-other.X) <= eps &&
		math.Abs(vec.Y-other.Y) <= eps &&
		math.Abs(vec.Z-other.Z) <= eps &&
		math.Abs(vec.W-other.W) <= eps
}
