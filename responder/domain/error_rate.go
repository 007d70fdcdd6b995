package domain

import (
	"errors"
	"math"
)

// ErrorRate is the probability of answering with an injected failure.
type ErrorRate float64

// NewErrorRate validates that rate is a probability.
func NewErrorRate(rate float64) (ErrorRate, error) {
	if math.IsNaN(rate) || rate < 0 || rate > 1 {
		return 0, errors.New("error rate must be between 0.0 and 1.0")
	}
	return ErrorRate(rate), nil
}
