package ccsubdiv

import "math"

// Vector3 is a position or displacement in 3-space, stored as three
// 32-bit floats to match the on-disk mesh container format exactly.
type Vector3 struct {
	X, Y, Z float32
}

// Add returns the sum of two vectors.
func (v Vector3) Add(w Vector3) Vector3 {
	return Vector3{X: v.X + w.X, Y: v.Y + w.Y, Z: v.Z + w.Z}
}

// Sub returns the difference of two vectors.
func (v Vector3) Sub(w Vector3) Vector3 {
	return Vector3{X: v.X - w.X, Y: v.Y - w.Y, Z: v.Z - w.Z}
}

// Mul returns the vector scaled by a scalar.
func (v Vector3) Mul(s float32) Vector3 {
	return Vector3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Lerp performs linear interpolation between two vectors.
// t=0 returns v, t=1 returns w, intermediate values interpolate.
func (v Vector3) Lerp(w Vector3, t float32) Vector3 {
	return Vector3{
		X: v.X + (w.X-v.X)*t,
		Y: v.Y + (w.Y-v.Y)*t,
		Z: v.Z + (w.Z-v.Z)*t,
	}
}

// Approx returns true if two vectors are approximately equal within epsilon,
// using a relative tolerance so the comparison stays meaningful at any scale.
func (v Vector3) Approx(w Vector3, epsilon float32) bool {
	return approxEqual32(v.X, w.X, epsilon) &&
		approxEqual32(v.Y, w.Y, epsilon) &&
		approxEqual32(v.Z, w.Z, epsilon)
}

// Vector2 is a UV coordinate, stored as two 32-bit floats.
type Vector2 struct {
	U, V float32
}

// Add returns the sum of two UVs.
func (v Vector2) Add(w Vector2) Vector2 {
	return Vector2{U: v.U + w.U, V: v.V + w.V}
}

// Mul returns the UV scaled by a scalar.
func (v Vector2) Mul(s float32) Vector2 {
	return Vector2{U: v.U * s, V: v.V * s}
}

// Lerp performs linear interpolation between two UVs.
func (v Vector2) Lerp(w Vector2, t float32) Vector2 {
	return Vector2{
		U: v.U + (w.U-v.U)*t,
		V: v.V + (w.V-v.V)*t,
	}
}

// approxEqual32 reports whether a and b agree within a relative (or, near
// zero, absolute) tolerance of epsilon.
func approxEqual32(a, b, epsilon float32) bool {
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	scale := maxAbs32(a, b)
	if scale > 1 {
		return diff <= epsilon*scale
	}
	return diff <= epsilon
}

func maxAbs32(a, b float32) float32 {
	a = float32(math.Abs(float64(a)))
	b = float32(math.Abs(float64(b)))
	if a > b {
		return a
	}
	return b
}

// saturate clamps s to [0, 1].
func saturate(s float32) float32 {
	if s < 0 {
		return 0
	}
	if s > 1 {
		return 1
	}
	return s
}

// signf returns 1 if s > 0, else 0 — the DeRose "crease weight" of a
// non-negative sharpness value.
func signf(s float32) float32 {
	if s > 0 {
		return 1
	}
	return 0
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
