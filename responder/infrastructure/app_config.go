package infrastructure

import (
	"flag"

	"github.com/samoilenko/ebers_doubles/pkg/metrics"
	responderDomain "github.com/samoilenko/ebers_doubles/responder/domain"
)

// AppConfig holds all validated configuration parameters for the responder application.
type AppConfig struct {
	Port           responderDomain.Port
	Delay          responderDomain.ResponseDelay
	ErrorRate      responderDomain.ErrorRate
	MetricsAddress metrics.ListenAddress
	LogJSON        bool
}

// GetFromCommandLineParameters registers the responder flags on fs, parses args
// and returns validated configuration.
func GetFromCommandLineParameters(fs *flag.FlagSet, args []string) (*AppConfig, error) {
	rawPort := fs.Int("port", 8000, "Port to run the server on (1-65535)")
	rawDelay := fs.Float64("delay", 0, "Artificial delay in seconds for each response")
	rawErrorRate := fs.Float64("error-rate", 0, "Probability of returning an error (0.0-1.0)")
	rawMetricsAddress := fs.String("metrics-address", "", "Prometheus listener address (e.g. :9100), empty disables")
	logJSON := fs.Bool("log-json", false, "Write logs as JSON")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	port, err := responderDomain.NewPort(*rawPort)
	if err != nil {
		return nil, err
	}

	delay, err := responderDomain.NewResponseDelay(*rawDelay)
	if err != nil {
		return nil, err
	}

	errorRate, err := responderDomain.NewErrorRate(*rawErrorRate)
	if err != nil {
		return nil, err
	}

	metricsAddress, err := metrics.NewListenAddress(*rawMetricsAddress)
	if err != nil {
		return nil, err
	}

	return &AppConfig{
		Port:           port,
		Delay:          delay,
		ErrorRate:      errorRate,
		MetricsAddress: metricsAddress,
		LogJSON:        *logJSON,
	}, nil
}
