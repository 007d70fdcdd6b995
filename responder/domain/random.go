package domain

// Random is the source of every random draw the responder makes.
// *rand.Rand from math/rand/v2 satisfies it.
type Random interface {
	// Float64 returns a number in [0.0, 1.0).
	Float64() float64
	// IntN returns a number in [0, n).
	IntN(n int) int
}
