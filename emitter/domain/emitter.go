// Package domain provides the frame format and the emission loop of the serial emitter.
package domain

import (
	"context"
	"fmt"
	"io"
	"math"
	"time"
)

// Sensor is a data source of readings.
type Sensor interface {
	Value() float64
}

// Random draws uniform numbers in [0.0, 1.0).
type Random interface {
	Float64() float64
}

// SequenceGenerator returns the next frame sequence number.
type SequenceGenerator interface {
	Generate() int64
}

// Recorder is notified of every frame that reached the device.
type Recorder interface {
	ObserveFrame(frame Frame)
}

type noopRecorder struct{}

func (noopRecorder) ObserveFrame(Frame) {}

// Profile tunes corruption and pacing of the emitted stream.
type Profile struct {
	CorruptionProbability float64
	Jitter                time.Duration
}

// DefaultProfile corrupts one frame in a hundred and spreads waits by ±20ms.
func DefaultProfile() Profile {
	return Profile{
		CorruptionProbability: 0.01,
		Jitter:                20 * time.Millisecond,
	}
}

// FrameEmitter writes frames to a device at a jittered rate.
type FrameEmitter struct {
	interval time.Duration
	profile  Profile
	sensor   Sensor
	random   Random
	sequence SequenceGenerator
	recorder Recorder
	logger   Logger
	now      func() time.Time
}

// Next builds the frame of the next iteration. Every call consumes a sequence number,
// whether or not the frame ends up corrupted.
func (e *FrameEmitter) Next() Frame {
	frame := Frame{
		Sequence:  e.sequence.Generate(),
		Timestamp: e.now(),
		Value:     e.sensor.Value(),
	}
	if e.random.Float64() < e.profile.CorruptionProbability {
		frame.Corrupted = true
	}
	return frame
}

// Delay returns the wait before the next frame, never negative.
func (e *FrameEmitter) Delay() time.Duration {
	jitter := time.Duration((e.random.Float64()*2 - 1) * float64(e.profile.Jitter))
	if jitter > 0 && e.interval > math.MaxInt64-jitter {
		return math.MaxInt64
	}
	return max(e.interval+jitter, 0)
}

// Emit writes the next frame to w.
func (e *FrameEmitter) Emit(w io.Writer) (Frame, error) {
	frame := e.Next()
	if _, err := io.WriteString(w, frame.Line()); err != nil {
		return frame, fmt.Errorf("write frame %d: %w", frame.Sequence, err)
	}
	e.recorder.ObserveFrame(frame)
	if frame.Corrupted {
		e.logger.Info("frame %d sent corrupted", frame.Sequence)
	}
	return frame, nil
}

// Run emits frames to w until ctx is cancelled or a write fails.
// Cancellation is a clean stop and returns nil.
func (e *FrameEmitter) Run(ctx context.Context, w io.Writer) error {
	for {
		if ctx.Err() != nil {
			return nil
		}

		if _, err := e.Emit(w); err != nil {
			return err
		}

		timer := time.NewTimer(e.Delay())
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil
		case <-timer.C:
		}
	}
}

// WithClock replaces the wall clock used to stamp frames.
func (e *FrameEmitter) WithClock(now func() time.Time) *FrameEmitter {
	e.now = now
	return e
}

// NewFrameEmitter creates a FrameEmitter. A nil recorder discards observations.
func NewFrameEmitter(
	rate Rate,
	profile Profile,
	sensor Sensor,
	random Random,
	sequence SequenceGenerator,
	recorder Recorder,
	logger Logger,
) *FrameEmitter {
	if recorder == nil {
		recorder = noopRecorder{}
	}
	return &FrameEmitter{
		interval: rate.Interval(),
		profile:  profile,
		sensor:   sensor,
		random:   random,
		sequence: sequence,
		recorder: recorder,
		logger:   logger,
		now:      time.Now,
	}
}
