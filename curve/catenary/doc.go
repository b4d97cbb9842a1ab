// Package catenary fits the curve of a cable hanging between two anchors.
//
// The curve has the form
//
//	y(x) = alpha*cosh((x - xOffset)/alpha) + yOffset
//
// where alpha is the positive root of
//
//	f(a) = 2a*sinh(h/2a) - sqrt(L^2 - v^2)
//
// for horizontal span h, vertical span v and cable length L. The root is
// found by Newton-Raphson with the closed-form derivative
//
//	f'(a) = 2*sinh(h/2a) - (h/a)*cosh(h/2a)
//
// Anchors are ordered left to right before solving; [Curve.Flipped] reports
// whether they were swapped. With [YDown] the y axis points down, as in
// screen coordinates, and the curve sags toward +y.
//
// Iteration state is reported to an optional logrus logger.
package catenary
