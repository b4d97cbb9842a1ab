package core

import "math"

// defaultEpsilon replaces non-positive tolerances in NearlyEqual.
const defaultEpsilon = 1e-12

// Clamp limits x to [lo, hi]. Reversed bounds are swapped.
func Clamp(x, lo, hi float64) float64 {
	if lo > hi {
		lo, hi = hi, lo
	}
	return math.Min(math.Max(x, lo), hi)
}

// NearlyEqual reports whether a and b agree within eps, either absolutely
// or relative to the larger magnitude. eps <= 0 selects 1e-12.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}
	d := math.Abs(a - b)
	return d <= eps || d <= eps*math.Max(math.Abs(a), math.Abs(b))
}

// IsFinite reports whether x is neither NaN nor an infinity.
func IsFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// AllFinite returns (-1, true) when every sample is finite, otherwise the
// index of the first NaN or infinity and false.
func AllFinite(samples []float64) (int, bool) {
	for i, x := range samples {
		if !IsFinite(x) {
			return i, false
		}
	}
	return -1, true
}

// DBToLinear maps an amplitude level in dB to a linear factor.
func DBToLinear(db float64) float64 {
	return math.Pow(10, db/20)
}

// LinearToDB maps a linear amplitude to dB: -Inf for 0, NaN below 0.
func LinearToDB(amp float64) float64 {
	switch {
	case amp < 0:
		return math.NaN()
	case amp == 0:
		return math.Inf(-1)
	}
	return 20 * math.Log10(amp)
}
