package catenary

import (
	"fmt"
	"math"
	"slices"
)

// Curve is a solved catenary. It is immutable and safe for concurrent use.
type Curve struct {
	alpha, xOffset, yOffset float64
	sign                    float64
	start, end              Point
	length                  float64
	iterations              int
	flipped                 bool
}

// Alpha returns the scale parameter, always > 0.
func (c *Curve) Alpha() float64 { return c.alpha }

// XOffset returns the x of the vertex.
func (c *Curve) XOffset() float64 { return c.xOffset }

// YOffset returns the additive term of the evaluator in the caller's axis
// convention.
func (c *Curve) YOffset() float64 { return c.yOffset }

// Length returns the cable length used for the fit.
func (c *Curve) Length() float64 { return c.length }

// Iterations returns the number of Newton steps taken.
func (c *Curve) Iterations() int { return c.iterations }

// Flipped reports whether the anchors were given right to left.
func (c *Curve) Flipped() bool { return c.flipped }

// Vertex returns the turning point of the curve. It lies between the
// anchors only when the cable sags below both of them.
func (c *Curve) Vertex() Point {
	return Point{X: c.xOffset, Y: c.Eval(c.xOffset)}
}

// Eval returns y at x.
func (c *Curve) Eval(x float64) float64 {
	return c.sign*c.alpha*math.Cosh((x-c.xOffset)/c.alpha) + c.yOffset
}

// Trace samples points evenly spaced positions from the left anchor to the
// right anchor. The result runs from Start to End of the original problem,
// so it is reversed when the anchors were flipped.
func (c *Curve) Trace(points int) ([]Point, error) {
	if points <= 1 {
		return nil, fmt.Errorf("points = %d: %w", points, ErrTooFewPoints)
	}

	h := c.end.X - c.start.X
	out := make([]Point, points)
	for i := range out {
		x := c.start.X + h*float64(i)/float64(points-1)
		out[i] = Point{X: x, Y: c.Eval(x)}
	}

	if c.flipped {
		slices.Reverse(out)
	}
	return out, nil
}
