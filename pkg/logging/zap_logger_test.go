package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLogger_FormatsMessages(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	logger := NewFromZap(zap.New(core))

	logger.Info("listening on %s", ":8000")
	logger.Error("write failed: %s", "broken pipe")

	entries := logs.AllUntimed()
	require.Len(t, entries, 2)

	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, "listening on :8000", entries[0].Message)
	assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
	assert.Equal(t, "write failed: broken pipe", entries[1].Message)
}

func TestNew(t *testing.T) {
	for _, jsonEncoding := range []bool{false, true} {
		logger, err := New("test", jsonEncoding)
		require.NoError(t, err)
		assert.NotNil(t, logger)
	}
}
