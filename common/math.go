package common

import "math"

// Sign returns 1 for positive values and -1 otherwise. Zero maps to -1 so
// that ties break toward the negative direction.
func Sign(v float64) float64 {
	if v > 0 {
		return 1
	}
	return -1
}

func Abs(v float64) float64 {
	return math.Abs(v)
}

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
