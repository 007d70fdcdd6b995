package domain

import (
	"context"
	"math"
	"math/rand/v2"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockLogger struct {
	mu        sync.Mutex
	infoCalls []string
}

func (m *mockLogger) Info(msg string, _ ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.infoCalls = append(m.infoCalls, msg)
}

func (m *mockLogger) Error(_ string, _ ...interface{}) {}

func (m *mockLogger) GetInfoCalls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string{}, m.infoCalls...)
}

// scriptedRandom replays fixed draws.
type scriptedRandom struct {
	floats []float64
	ints   []int
}

func (s *scriptedRandom) Float64() float64 {
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}

func (s *scriptedRandom) IntN(n int) int {
	v := s.ints[0] % n
	s.ints = s.ints[1:]
	return v
}

func seeded() *rand.Rand {
	return rand.New(rand.NewPCG(42, 1024))
}

func hasFourDecimals(v float64) bool {
	scaled := v * 10000
	return math.Abs(scaled-math.Round(scaled)) < 1e-6
}

func strPtr(s string) *string { return &s }

func TestPredictor_ErrorRateZero_AlwaysSucceeds(t *testing.T) {
	predictor := NewPredictor(NewConfig(0, 0), seeded(), &mockLogger{})
	req := &PredictionRequest{DatasetID: strPtr("abc123")}

	for i := 0; i < 2000; i++ {
		result, err := predictor.Predict(context.Background(), req)
		require.NoError(t, err)
		require.Equal(t, VariantSuccess, result.Variant)
		require.Nil(t, result.Failure)

		resp := result.Success
		assert.True(t, resp.Success)
		assert.Equal(t, "abc123", resp.DatasetID)
		assert.GreaterOrEqual(t, resp.Probability, 0.65)
		assert.LessOrEqual(t, resp.Probability, 0.95)
		assert.GreaterOrEqual(t, resp.Confidence, 0.85)
		assert.LessOrEqual(t, resp.Confidence, 0.99)
		assert.True(t, hasFourDecimals(resp.Probability), "probability %v", resp.Probability)
		assert.True(t, hasFourDecimals(resp.Confidence), "confidence %v", resp.Confidence)
		assert.GreaterOrEqual(t, resp.Metadata.ProcessingTimeMS, 800)
		assert.LessOrEqual(t, resp.Metadata.ProcessingTimeMS, 2500)
		assert.Equal(t, "1.0.0", resp.Metadata.ModelVersion)
	}
}

func TestPredictor_ErrorRateOne_AlwaysFails(t *testing.T) {
	predictor := NewPredictor(NewConfig(0, 1), seeded(), &mockLogger{})

	codes := map[string]bool{}
	for _, f := range DefaultFailures() {
		codes[f.Code] = true
	}

	seen := map[string]bool{}
	for i := 0; i < 500; i++ {
		result, err := predictor.Predict(context.Background(), &PredictionRequest{})
		require.NoError(t, err)
		require.Equal(t, VariantError, result.Variant)
		require.Nil(t, result.Success)

		assert.False(t, result.Failure.Success)
		assert.True(t, codes[result.Failure.Error.Code], "unexpected code %s", result.Failure.Error.Code)
		assert.NotEmpty(t, result.Failure.Error.Message)
		assert.NotEmpty(t, result.Failure.Error.Details)
		seen[result.Failure.Error.Code] = true
	}

	assert.Len(t, seen, len(codes), "every table entry should eventually be drawn")
}

func TestPredictor_ScriptedDraws(t *testing.T) {
	processedAt := time.Date(2024, 1, 1, 12, 0, 0, 0, time.FixedZone("CET", 3600))

	t.Run("success sample", func(t *testing.T) {
		random := &scriptedRandom{
			floats: []float64{0.5, 0.5, 0.5}, // decision, probability, confidence
			ints:   []int{100},
		}
		predictor := NewPredictor(NewConfig(0, 0.3), random, &mockLogger{}).
			WithClock(func() time.Time { return processedAt })

		result, err := predictor.Predict(context.Background(), &PredictionRequest{})
		require.NoError(t, err)
		require.Equal(t, VariantSuccess, result.Variant)

		assert.Equal(t, "unknown", result.Success.DatasetID)
		assert.Equal(t, 0.8, result.Success.Probability)
		assert.Equal(t, 0.92, result.Success.Confidence)
		assert.Equal(t, 900, result.Success.Metadata.ProcessingTimeMS)
		assert.Equal(t, "2024-01-01T11:00:00Z", result.Success.ProcessedAt)
		assert.Same(t, result.Success, result.Body())
	})

	t.Run("failure draw picks the indexed entry", func(t *testing.T) {
		random := &scriptedRandom{floats: []float64{0.1}, ints: []int{2}}
		predictor := NewPredictor(NewConfig(0, 0.3), random, &mockLogger{})

		result, err := predictor.Predict(context.Background(), &PredictionRequest{})
		require.NoError(t, err)
		require.Equal(t, VariantError, result.Variant)

		assert.Equal(t, "TIMEOUT", result.Failure.Error.Code)
		assert.Equal(t, "Processing timeout", result.Failure.Error.Message)
		assert.Equal(t, "Model took too long to respond", result.Failure.Error.Details)
		assert.Same(t, result.Failure, result.Body())
	})
}

func TestPredictor_CustomFixtures(t *testing.T) {
	config := NewConfig(0, 1)
	config.Failures = []Failure{{Code: "DEVICE_BUSY", Message: "busy"}}
	predictor := NewPredictor(config, seeded(), &mockLogger{})

	result, err := predictor.Predict(context.Background(), &PredictionRequest{})
	require.NoError(t, err)
	assert.Equal(t, "DEVICE_BUSY", result.Failure.Error.Code)

	config.Failures = nil
	predictor = NewPredictor(config, seeded(), &mockLogger{})
	result, err = predictor.Predict(context.Background(), &PredictionRequest{})
	require.NoError(t, err)
	assert.NotEmpty(t, result.Failure.Error.Code)
}

func TestPredictor_Delay(t *testing.T) {
	t.Run("waits for the configured delay", func(t *testing.T) {
		delay := ResponseDelay(50 * time.Millisecond)
		logger := &mockLogger{}
		predictor := NewPredictor(NewConfig(delay, 0), seeded(), logger)

		start := time.Now()
		_, err := predictor.Predict(context.Background(), &PredictionRequest{})
		elapsed := time.Since(start)

		require.NoError(t, err)
		assert.GreaterOrEqual(t, elapsed, delay.Duration())
		assert.Contains(t, logger.GetInfoCalls(), "simulating %s processing delay...")
	})

	t.Run("stops waiting when context is cancelled", func(t *testing.T) {
		predictor := NewPredictor(NewConfig(ResponseDelay(time.Hour), 0), seeded(), &mockLogger{})

		ctx, cancel := context.WithCancel(context.Background())
		time.AfterFunc(10*time.Millisecond, cancel)

		done := make(chan error, 1)
		go func() {
			_, err := predictor.Predict(ctx, &PredictionRequest{})
			done <- err
		}()

		select {
		case err := <-done:
			assert.ErrorIs(t, err, context.Canceled)
		case <-time.After(time.Second):
			t.Fatal("Predict did not return after context cancellation")
		}
	})
}
