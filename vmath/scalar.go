package vmath

import "math"

const (
	degToRad = math.Pi / 180.0
	radToDeg = 180.0 / math.Pi
)

// DegToRad converts degrees to radians
func DegToRad(deg float64) float64 {
	return deg * degToRad
}

// RadToDeg converts radians to degrees
func RadToDeg(rad float64) float64 {
	return rad * radToDeg
}

// ClampF limits v to [lo, hi]
func ClampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// NearlyEqual reports |a-b| < eps
func NearlyEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}
