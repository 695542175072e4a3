// Package math provides the float32 vector and matrix types shared by the
// sculpting core and the renderer.
package math

import "github.com/chewxy/math32"

// Vec2 is a 2D vector. Pointer positions in normalized device space use it.
type Vec2 struct {
	X, Y float32
}

// Add returns v + other.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{v.X + other.X, v.Y + other.Y}
}

// Sub returns v - other.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{v.X - other.X, v.Y - other.Y}
}

// Scale returns v * scalar.
func (v Vec2) Scale(s float32) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Length returns the magnitude.
func (v Vec2) Length() float32 {
	return math32.Hypot(v.X, v.Y)
}

// Clamp limits both components to [lo, hi].
func (v Vec2) Clamp(lo, hi float32) Vec2 {
	return Vec2{Clamp(v.X, lo, hi), Clamp(v.Y, lo, hi)}
}

// Finite returns x, or fallback when x is NaN or infinite.
func Finite(x, fallback float32) float32 {
	if math32.IsNaN(x) || math32.IsInf(x, 0) {
		return fallback
	}
	return x
}

// Clamp limits x to [lo, hi]. NaN passes through; use Finite first for
// values that come from outside.
func Clamp(x, lo, hi float32) float32 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
