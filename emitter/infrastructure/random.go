package infrastructure

import "math/rand/v2"

// GlobalRandom draws from the goroutine-safe top-level math/rand/v2 source.
type GlobalRandom struct{}

// Float64 returns a number in [0.0, 1.0).
func (GlobalRandom) Float64() float64 {
	return rand.Float64()
}

// NormFloat64 returns a standard normal number.
func (GlobalRandom) NormFloat64() float64 {
	return rand.NormFloat64()
}
