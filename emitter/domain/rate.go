package domain

import (
	"errors"
	"math"
	"time"
)

// Rate is the number of frames emitted per second.
type Rate float64

// NewRate validates rate as a finite number greater than zero whose interval fits a time.Duration.
func NewRate(rate float64) (Rate, error) {
	if math.IsNaN(rate) || math.IsInf(rate, 0) || rate <= 0 {
		return 0, errors.New("rate must be a number greater than 0")
	}
	if float64(time.Second)/rate >= math.MaxInt64 {
		return 0, errors.New("rate is too low, the interval between frames overflows")
	}
	return Rate(rate), nil
}

// Interval is the nominal pause between two frames.
func (r Rate) Interval() time.Duration {
	return time.Duration(float64(time.Second) / float64(r))
}
