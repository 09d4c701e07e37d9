// Package core provides fundamental types and utilities shared by the game
// logic and the platform drivers. It contains no platform dependencies
// (especially no Bubble Tea or ebiten) to keep game logic pure and testable.
package core

import "math"

// Rect represents an axis-aligned box in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Lerp interpolates linearly between a and b. t is not clamped.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// EaseOutCubic maps t in [0, 1] onto a curve that starts fast and settles
// at 1. Values outside [0, 1] are clamped.
func EaseOutCubic(t float64) float64 {
	t = ClampF(t, 0, 1)
	inv := 1 - t
	return 1 - inv*inv*inv
}

// EaseOutCubicIntegral returns the integral of EaseOutCubic over [0, t].
// Used to accumulate a quantity whose rate is eased over time.
func EaseOutCubicIntegral(t float64) float64 {
	t = ClampF(t, 0, 1)
	inv := 1 - t
	return t - (1-inv*inv*inv*inv)/4
}

// Finite reports whether v is neither NaN nor infinite.
func Finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
