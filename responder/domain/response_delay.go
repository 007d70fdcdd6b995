package domain

import (
	"errors"
	"math"
	"time"
)

// ResponseDelay is the artificial latency added to every prediction.
type ResponseDelay time.Duration

// NewResponseDelay converts a delay given in seconds, rejecting negative values.
func NewResponseDelay(seconds float64) (ResponseDelay, error) {
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) {
		return 0, errors.New("delay must be a finite number of seconds")
	}
	if seconds < 0 {
		return 0, errors.New("delay must be non-negative")
	}
	return ResponseDelay(time.Duration(seconds * float64(time.Second))), nil
}

// Duration returns the delay as a time.Duration.
func (d ResponseDelay) Duration() time.Duration {
	return time.Duration(d)
}
