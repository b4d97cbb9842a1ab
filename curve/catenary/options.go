package catenary

import (
	"io"
	"math"

	"github.com/sirupsen/logrus"
)

const (
	// DefaultSeed is the initial Newton iterate.
	DefaultSeed = 50.0
	// DefaultTolerance bounds |f(a)| at convergence.
	DefaultTolerance = 1e-3
	// DefaultMaxIterations is the Newton step budget.
	DefaultMaxIterations = 10
	// DefaultLengthScale multiplies the anchor distance to get the cable
	// length when no explicit length is set.
	DefaultLengthScale = 1.5
)

// Axis selects the direction of the y axis.
type Axis int

const (
	// YUp is the mathematical convention.
	YUp Axis = iota
	// YDown is the screen convention.
	YDown
)

func (a Axis) String() string {
	if a == YDown {
		return "y-down"
	}
	return "y-up"
}

type config struct {
	length      float64
	lengthScale float64
	seed        float64
	tolerance   float64
	maxIter     int
	axis        Axis
	log         logrus.FieldLogger
}

// Option configures a solve.
type Option func(*config)

// WithLength sets an explicit cable length. Values <= 0 select the scaled
// anchor distance.
func WithLength(length float64) Option {
	return func(c *config) {
		if length > 0 && !math.IsInf(length, 0) {
			c.length = length
		}
	}
}

// WithLengthScale sets the factor applied to the anchor distance when no
// explicit length is given. Values <= 0 are ignored.
func WithLengthScale(k float64) Option {
	return func(c *config) {
		if k > 0 && !math.IsInf(k, 0) {
			c.lengthScale = k
		}
	}
}

// WithSeed sets the initial iterate. Zero and non-finite values are ignored.
func WithSeed(a0 float64) Option {
	return func(c *config) {
		if a0 != 0 && !math.IsNaN(a0) && !math.IsInf(a0, 0) {
			c.seed = a0
		}
	}
}

// WithTolerance sets the convergence bound on |f(a)|. Values <= 0 are ignored.
func WithTolerance(eps float64) Option {
	return func(c *config) {
		if eps > 0 {
			c.tolerance = eps
		}
	}
}

// WithMaxIterations sets the Newton step budget. Values <= 0 are ignored.
func WithMaxIterations(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.maxIter = n
		}
	}
}

// WithAxis selects the y axis direction.
func WithAxis(a Axis) Option {
	return func(c *config) {
		c.axis = a
	}
}

// WithLogger routes iteration diagnostics to l. Nil is ignored.
func WithLogger(l logrus.FieldLogger) Option {
	return func(c *config) {
		if l != nil {
			c.log = l
		}
	}
}

func newConfig(opts ...Option) config {
	cfg := config{
		lengthScale: DefaultLengthScale,
		seed:        DefaultSeed,
		tolerance:   DefaultTolerance,
		maxIter:     DefaultMaxIterations,
		axis:        YUp,
		log:         discardLogger(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

func discardLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
