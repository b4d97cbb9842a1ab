package biquad

import "errors"

// ErrNonFinite is returned when filtering produces NaN or Inf.
var ErrNonFinite = errors.New("biquad: non-finite output")
