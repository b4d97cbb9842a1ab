package biquad

// State holds the direct-form-I delay registers.
type State struct {
	X1, X2 float64 // x[n-1], x[n-2]
	Y1, Y2 float64 // y[n-1], y[n-2]
}

// ProcessSample filters x with c, advances the registers and returns y[n].
func (s *State) ProcessSample(c Coefficients, x float64) float64 {
	y := c.B0*x + c.B1*s.X1 + c.B2*s.X2 - c.A1*s.Y1 - c.A2*s.Y2
	s.X2, s.X1 = s.X1, x
	s.Y2, s.Y1 = s.Y1, y
	return y
}

// Reset clears the registers to zero.
func (s *State) Reset() {
	*s = State{}
}
