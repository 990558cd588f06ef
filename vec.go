package shake

import (
	ebimath "github.com/edwinsyarief/ebi-math"
)

// A minimal 3-axis vector used for shake offsets and influences.
// The third axis is typically mapped to zoom, roll or z-translation,
// depending on what the game does with the offsets.
type Vec3 struct {
	X, Y, Z float64
}

// Shorthand constructor, e.g. shake.V3(1, 1, 0.1).
func V3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Returns {1, 1, 1}. The default value for influence vectors.
func Unit() Vec3 {
	return Vec3{X: 1, Y: 1, Z: 1}
}

// Component-wise addition.
func (self Vec3) Add(other Vec3) Vec3 {
	return Vec3{X: self.X + other.X, Y: self.Y + other.Y, Z: self.Z + other.Z}
}

// Scalar multiplication.
func (self Vec3) Scale(factor float64) Vec3 {
	return Vec3{X: self.X * factor, Y: self.Y * factor, Z: self.Z * factor}
}

// Component-wise (Hadamard) multiplication. This is how influence
// vectors are applied to the raw shake offset.
func (self Vec3) Mul(other Vec3) Vec3 {
	return Vec3{X: self.X * other.X, Y: self.Y * other.Y, Z: self.Z * other.Z}
}

// Drops the third axis and returns the X/Y components as an
// [ebimath.Vector], for feeding 2D cameras directly.
func (self Vec3) XY() ebimath.Vector {
	return ebimath.V(self.X, self.Y)
}
