package domain

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRate(t *testing.T) {
	rate, err := NewRate(10)
	require.NoError(t, err)
	assert.Equal(t, 100*time.Millisecond, rate.Interval())

	rate, err = NewRate(0.5)
	require.NoError(t, err)
	assert.Equal(t, 2*time.Second, rate.Interval())

	for _, invalid := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		_, err := NewRate(invalid)
		assert.Error(t, err, "rate %v", invalid)
	}
}

func TestNewRate_IntervalMustFitDuration(t *testing.T) {
	_, err := NewRate(1e-10)
	assert.EqualError(t, err, "rate is too low, the interval between frames overflows")

	rate, err := NewRate(1e-9)
	require.NoError(t, err)
	assert.Positive(t, rate.Interval())

	emitter := NewFrameEmitter(rate, DefaultProfile(), constSensor(2.5), &scriptedRandom{floats: []float64{0.5}}, &counter{}, nil, &mockLogger{})
	assert.Greater(t, emitter.Delay(), 10*365*24*time.Hour)
}

func TestNewDeviceName(t *testing.T) {
	name, err := NewDeviceName("/dev/ttyUSB0")
	require.NoError(t, err)
	assert.Equal(t, DeviceName("/dev/ttyUSB0"), name)

	_, err = NewDeviceName("")
	assert.Error(t, err)
}

func TestSafeFunctionRun(t *testing.T) {
	t.Run("returns the function error", func(t *testing.T) {
		expected := errors.New("boom")
		err := SafeFunctionRun("emitting", func() error { return expected }, &mockLogger{})
		assert.ErrorIs(t, err, expected)
	})

	t.Run("converts a panic into an error", func(t *testing.T) {
		logger := &mockLogger{}
		err := SafeFunctionRun("emitting to COM3", func() error { panic("device gone") }, logger)

		assert.EqualError(t, err, "emitting to COM3 panicked: device gone")
		assert.Equal(t, []string{"emitting to COM3 panicked: device gone"}, logger.errors)
	})
}
