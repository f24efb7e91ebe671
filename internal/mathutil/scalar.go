package mathutil

import "math"

// Deg2Rad converts degrees to radians.
func Deg2Rad(d float64) float64 {
	return d * math.Pi / 180
}

// Sign returns -1, 0 or 1 matching the sign of v.
func Sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
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

// ClampAbs limits the magnitude of v to max, keeping its sign.
func ClampAbs(v, max float64) float64 {
	if math.Abs(v) > max {
		return Sign(v) * max
	}
	return v
}

// Lerp interpolates from a toward b by weight t.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Wrap maps v into [0, m). m must be positive.
func Wrap(v, m float64) float64 {
	w := math.Mod(v, m)
	if w < 0 {
		w += m
	}
	// -tiny + m can round up to exactly m
	if w >= m {
		w -= m
	}
	return w
}
