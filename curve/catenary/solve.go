package catenary

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"
)

// Point is a 2-D position.
type Point struct {
	X, Y float64
}

// Problem holds the two anchors of a cable.
type Problem struct {
	Start, End Point
}

// Solve fits a catenary through p's anchors.
func Solve(p Problem, opts ...Option) (*Curve, error) {
	return solve(p, newConfig(opts...))
}

func solve(p Problem, cfg config) (*Curve, error) {
	start, end := p.Start, p.End
	flipped := start.X > end.X
	if flipped {
		start, end = end, start
	}

	sign := 1.0
	if cfg.axis == YDown {
		sign = -1
	}
	x0, y0 := start.X, sign*start.Y
	x1, y1 := end.X, sign*end.Y

	h := x1 - x0
	v := y1 - y0

	length := cfg.length
	if length == 0 {
		length = cfg.lengthScale * math.Hypot(h, v)
	}
	if chord := math.Hypot(h, v); !(length > chord) {
		return nil, fmt.Errorf("length %g, anchor distance %g: %w", length, chord, ErrCableTooShort)
	}

	alpha, iters, err := newton(h, math.Sqrt(length*length-v*v), cfg)
	if err != nil {
		return nil, err
	}

	xOff := x0 + 0.5*(h-alpha*math.Log((length+v)/(length-v)))
	yOff := y0 - alpha*math.Cosh((x0-xOff)/alpha)

	c := &Curve{
		alpha:      alpha,
		xOffset:    xOff,
		yOffset:    sign * yOff,
		sign:       sign,
		start:      start,
		end:        end,
		length:     length,
		iterations: iters,
		flipped:    flipped,
	}

	cfg.log.WithFields(logrus.Fields{
		"alpha":      c.alpha,
		"x_offset":   c.xOffset,
		"y_offset":   c.yOffset,
		"length":     c.length,
		"iterations": c.iterations,
		"flipped":    c.flipped,
	}).Info("catenary solved")

	return c, nil
}

// newton returns |a| for the root of 2a*sinh(h/2a) - target and the number
// of steps taken.
func newton(h, target float64, cfg config) (float64, int, error) {
	a := cfg.seed
	for iter := 0; ; iter++ {
		half := h / (2 * a)
		fa := 2*a*math.Sinh(half) - target
		if math.IsNaN(fa) || math.IsInf(fa, 0) {
			return 0, iter, fmt.Errorf("iteration %d: f(%g) = %v: %w", iter, a, fa, ErrNoConvergence)
		}
		if math.Abs(fa) < cfg.tolerance {
			return math.Abs(a), iter, nil
		}
		if iter == cfg.maxIter {
			return 0, iter, fmt.Errorf("after %d iterations |f(%g)| = %g >= %g: %w",
				iter, a, math.Abs(fa), cfg.tolerance, ErrNoConvergence)
		}

		df := 2*math.Sinh(half) - (h/a)*math.Cosh(half)
		cfg.log.WithFields(logrus.Fields{
			"iteration": iter,
			"a":         a,
			"f":         fa,
			"df":        df,
		}).Debug("newton step")

		if df == 0 || math.IsNaN(df) || math.IsInf(df, 0) {
			return 0, iter, fmt.Errorf("iteration %d: f'(%g) = %v: %w", iter, a, df, ErrZeroDerivative)
		}
		a -= fa / df
	}
}
