package infrastructure

// Readings of a healthy probe: 2.5 with 0.02 noise.
const (
	DefaultMean   = 2.5
	DefaultStdDev = 0.02
)

// NormalSource draws from the standard normal distribution.
type NormalSource interface {
	NormFloat64() float64
}

// GaussianSensor is a sensor implementation producing readings scattered normally
// around a mean, like a steady signal with measurement noise.
type GaussianSensor struct {
	mean   float64
	stddev float64
	source NormalSource
}

// Value returns mean + N(0, stddev).
func (s *GaussianSensor) Value() float64 {
	return s.mean + s.source.NormFloat64()*s.stddev
}

// NewGaussianSensor creates a GaussianSensor. A nil source uses the top-level math/rand/v2 generator.
func NewGaussianSensor(mean, stddev float64, source NormalSource) *GaussianSensor {
	if source == nil {
		source = GlobalRandom{}
	}
	return &GaussianSensor{mean: mean, stddev: stddev, source: source}
}
