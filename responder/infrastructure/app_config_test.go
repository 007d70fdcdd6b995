package infrastructure

import (
	"flag"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	responderDomain "github.com/samoilenko/ebers_doubles/responder/domain"
)

func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("responder", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func TestGetFromCommandLineParameters_Defaults(t *testing.T) {
	config, err := GetFromCommandLineParameters(newFlagSet(), nil)
	require.NoError(t, err)

	assert.Equal(t, responderDomain.Port(8000), config.Port)
	assert.Zero(t, config.Delay.Duration())
	assert.Equal(t, responderDomain.ErrorRate(0), config.ErrorRate)
	assert.False(t, config.MetricsAddress.Enabled())
	assert.False(t, config.LogJSON)
}

func TestGetFromCommandLineParameters_Custom(t *testing.T) {
	config, err := GetFromCommandLineParameters(newFlagSet(), []string{
		"--port", "3000", "--delay", "1.5", "--error-rate=0.2", "--metrics-address", ":9100", "--log-json",
	})
	require.NoError(t, err)

	assert.Equal(t, responderDomain.Port(3000), config.Port)
	assert.Equal(t, 1500*time.Millisecond, config.Delay.Duration())
	assert.Equal(t, responderDomain.ErrorRate(0.2), config.ErrorRate)
	assert.True(t, config.MetricsAddress.Enabled())
	assert.True(t, config.LogJSON)
}

func TestGetFromCommandLineParameters_Invalid(t *testing.T) {
	tests := map[string][]string{
		"port too low":        {"--port", "0"},
		"port too high":       {"--port", "65536"},
		"negative delay":      {"--delay", "-1"},
		"error rate above 1":  {"--error-rate", "1.5"},
		"error rate below 0":  {"--error-rate", "-0.1"},
		"bad metrics address": {"--metrics-address", "nowhere"},
		"not a number":        {"--port", "eighty"},
	}

	for name, args := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := GetFromCommandLineParameters(newFlagSet(), args)
			assert.Error(t, err)
		})
	}
}
