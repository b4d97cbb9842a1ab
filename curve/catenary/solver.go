package catenary

// Solver caches the last solved curve and re-solves only when the
// anchors change. It is not safe for concurrent use.
type Solver struct {
	cfg        config
	start, end Point
	curve      *Curve
}

// NewSolver returns a solver that applies opts to every solve.
func NewSolver(opts ...Option) *Solver {
	return &Solver{cfg: newConfig(opts...)}
}

// Solve returns the curve through start and end, reusing the cached one
// when both anchors are unchanged. A failed solve clears the cache.
func (s *Solver) Solve(start, end Point) (*Curve, error) {
	if s.curve != nil && start == s.start && end == s.end {
		return s.curve, nil
	}

	c, err := solve(Problem{Start: start, End: end}, s.cfg)
	if err != nil {
		s.curve = nil
		return nil, err
	}

	s.start, s.end, s.curve = start, end, c
	return c, nil
}

// Reset drops the cached curve.
func (s *Solver) Reset() {
	s.curve = nil
}
