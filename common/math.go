package common

import (
	"math"
)

// Identity resets a 4x4 matrix (flat slice) to the identity matrix.
// The matrix is stored in column-major order.
//
// Parameters:
//   - m: destination slice (must be at least 16 elements)
func Identity(m []float32) {
	for i := range m {
		m[i] = 0
	}
	m[0], m[5], m[10], m[15] = 1, 1, 1, 1
}

// Mul4 multiplies two 4x4 matrices and stores the result in out.
// All matrices are stored in column-major order (OpenGL/WebGPU convention).
// Result: out = a * b
//
// Parameters:
//   - out: destination slice (must be at least 16 elements)
//   - a: left-hand matrix (16 elements)
//   - b: right-hand matrix (16 elements)
func Mul4(out, a, b []float32) {
	var buf [16]float32
	for i := 0; i < 4; i++ { // column of B
		for j := 0; j < 4; j++ { // row of A
			sum := float32(0)
			for k := 0; k < 4; k++ {
				sum += a[k*4+j] * b[i*4+k]
			}
			buf[i*4+j] = sum
		}
	}
	copy(out, buf[:])
}

// Orthographic creates an orthographic projection matrix.
// Uses the WebGPU clip space convention with depth in [0, 1].
//
// Parameters:
//   - out: destination slice (must be at least 16 elements)
//   - left, right: horizontal extents of the view volume in world units
//   - bottom, top: vertical extents of the view volume in world units
//   - near, far: clipping plane distances (must differ)
func Orthographic(out []float32, left, right, bottom, top, near, far float32) {
	Identity(out)
	out[0] = 2.0 / (right - left)
	out[5] = 2.0 / (top - bottom)
	out[10] = 1.0 / (near - far)
	out[12] = (left + right) / (left - right)
	out[13] = (bottom + top) / (bottom - top)
	out[14] = near / (near - far)
}

// Clamp restricts v to the inclusive range [lo, hi].
//
// Parameters:
//   - v: value to clamp
//   - lo: lower bound
//   - hi: upper bound
//
// Returns:
//   - float32: v clamped to [lo, hi]
func Clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Saturate restricts v to the inclusive range [0, 1], matching the WGSL
// saturate() builtin.
//
// Parameters:
//   - v: value to clamp
//
// Returns:
//   - float32: v clamped to [0, 1]
func Saturate(v float32) float32 {
	return Clamp(v, 0, 1)
}

// Mix performs linear interpolation between a and b, matching the WGSL
// mix() builtin.
//
// Parameters:
//   - a: start value (returned when t = 0)
//   - b: end value (returned when t = 1)
//   - t: interpolation factor
//
// Returns:
//   - float32: a + (b-a)*t
func Mix(a, b, t float32) float32 {
	return a + (b-a)*t
}

// Step returns 0 if v < edge and 1 otherwise, matching the WGSL step()
// builtin. The threshold is hard with no interpolation.
//
// Parameters:
//   - edge: threshold value
//   - v: value to test
//
// Returns:
//   - float32: 0 or 1
func Step(edge, v float32) float32 {
	if v < edge {
		return 0
	}
	return 1
}

// Smoothstep performs Hermite interpolation between 0 and 1 as v moves
// across [edge0, edge1], matching the WGSL smoothstep() builtin. Values
// outside the band clamp to 0 or 1.
//
// Parameters:
//   - edge0: lower edge of the interpolation band
//   - edge1: upper edge of the interpolation band
//   - v: value to remap
//
// Returns:
//   - float32: the remapped value in [0, 1]
func Smoothstep(edge0, edge1, v float32) float32 {
	t := Saturate((v - edge0) / (edge1 - edge0))
	return t * t * (3 - 2*t)
}

// Fract returns the fractional part of v, matching the WGSL fract()
// builtin (v - floor(v), always in [0, 1)).
//
// Parameters:
//   - v: input value
//
// Returns:
//   - float32: the fractional part of v
func Fract(v float32) float32 {
	return v - Floor(v)
}

// Floor returns the largest integer value not greater than v.
//
// Parameters:
//   - v: input value
//
// Returns:
//   - float32: floor of v
func Floor(v float32) float32 {
	return float32(math.Floor(float64(v)))
}

// Pow raises base to the given exponent.
//
// Parameters:
//   - base: the base value
//   - exp: the exponent
//
// Returns:
//   - float32: base^exp
func Pow(base, exp float32) float32 {
	return float32(math.Pow(float64(base), float64(exp)))
}

// Snap rounds number to the nearest multiple of divisor. A zero divisor
// returns the number unchanged.
//
// Parameters:
//   - number: value to snap
//   - divisor: grid size to snap to
//
// Returns:
//   - float32: the snapped value
func Snap(number, divisor float32) float32 {
	if divisor == 0 {
		return number
	}
	return float32(math.Round(float64(number/divisor))) * divisor
}
