// internal/utils/math.go
package utils

import "math"

// Lerp performs standard linear interpolation.
func Lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// NormalizeDegrees maps any angle to [0, 360). NaN and infinities map to 0.
func NormalizeDegrees(deg float64) float64 {
	if math.IsNaN(deg) || math.IsInf(deg, 0) {
		return 0
	}
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	// -1e-15 + 360 rounds to 360
	if deg >= 360 {
		deg = 0
	}
	return deg
}

// WrapRange wraps v into (-limit, limit) the way JS `%` does for the hue
// offset: the sign of v is kept.
func WrapRange(v, limit float64) float64 {
	if limit <= 0 {
		return 0
	}
	return math.Mod(v, limit)
}

// Lemniscate returns the point at parameter t on Bernoulli's lemniscate with
// half-width a, centered on the origin. One period is 2π.
func Lemniscate(t, a float64) (x, y float64) {
	s, c := math.Sincos(t)
	d := 1 + s*s
	return a * c / d, a * s * c / d
}
