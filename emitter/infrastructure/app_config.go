// Package infrastructure provides concrete implementations of the emitter domain contracts.
package infrastructure

import (
	"flag"

	emitterDomain "github.com/samoilenko/ebers_doubles/emitter/domain"
	"github.com/samoilenko/ebers_doubles/pkg/metrics"
)

// AppConfig holds all validated configuration parameters for the emitter application.
type AppConfig struct {
	Device         emitterDomain.DeviceName
	Rate           emitterDomain.Rate
	MetricsAddress metrics.ListenAddress
	LogJSON        bool
}

// GetFromCommandLineParameters registers the emitter flags on fs, parses args
// and returns validated configuration.
func GetFromCommandLineParameters(fs *flag.FlagSet, args []string) (*AppConfig, error) {
	rawDevice := fs.String("port", "COM3", "Serial device to write frames to")
	rawRate := fs.Float64("rate", 10.0, "Frames per second, greater than 0")
	rawMetricsAddress := fs.String("metrics-address", "", "Prometheus listener address (e.g. :9101), empty disables")
	logJSON := fs.Bool("log-json", false, "Write logs as JSON")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	device, err := emitterDomain.NewDeviceName(*rawDevice)
	if err != nil {
		return nil, err
	}

	rate, err := emitterDomain.NewRate(*rawRate)
	if err != nil {
		return nil, err
	}

	metricsAddress, err := metrics.NewListenAddress(*rawMetricsAddress)
	if err != nil {
		return nil, err
	}

	return &AppConfig{
		Device:         device,
		Rate:           rate,
		MetricsAddress: metricsAddress,
		LogJSON:        *logJSON,
	}, nil
}
