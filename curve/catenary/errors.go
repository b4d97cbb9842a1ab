package catenary

import "errors"

var (
	// ErrNoConvergence is returned when the iteration budget runs out or
	// the iterate diverges.
	ErrNoConvergence = errors.New("catenary: newton iteration did not converge")
	// ErrZeroDerivative is returned when f'(a) is zero or not finite.
	ErrZeroDerivative = errors.New("catenary: derivative vanished")
	// ErrCableTooShort is returned when the cable cannot reach both anchors.
	ErrCableTooShort = errors.New("catenary: cable shorter than anchor distance")
	// ErrTooFewPoints is returned by Trace for fewer than two points.
	ErrTooFewPoints = errors.New("catenary: trace needs at least two points")
)
