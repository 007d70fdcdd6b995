package infrastructure

import "sync/atomic"

// SequenceCounter hands out frame sequence numbers starting at 1.
type SequenceCounter struct {
	last atomic.Int64
}

// Generate returns the next sequence number.
func (c *SequenceCounter) Generate() int64 {
	return c.last.Add(1)
}
