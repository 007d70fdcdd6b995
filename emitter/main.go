// Emitter writes synthetic sensor frames to a serial device so the client under test
// can be exercised without hardware. About one frame in a hundred is corrupted.
//
// Usage: emitter -port=/dev/ttyUSB0 -rate=10
//
// Flags:
//
//	-port: serial device to write to (default COM3)
//	-rate: frames per second, greater than 0 (default 10)
//	-metrics-address: optional Prometheus listener address (e.g. :9101)
//	-log-json: write logs as JSON
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"

	emitterDomain "github.com/samoilenko/ebers_doubles/emitter/domain"
	emitterInfrastructure "github.com/samoilenko/ebers_doubles/emitter/infrastructure"
	"github.com/samoilenko/ebers_doubles/pkg/logging"
	"github.com/samoilenko/ebers_doubles/pkg/metrics"
)

func endWithError(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n\n", err)
	flag.Usage()
	os.Exit(1)
}

func main() {
	ctx, finish := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer finish()

	config, err := emitterInfrastructure.GetFromCommandLineParameters(flag.CommandLine, os.Args[1:])
	if err != nil {
		endWithError(err)
	}

	logger, err := logging.New("emitter", config.LogJSON)
	if err != nil {
		endWithError(err)
	}

	registry := metrics.NewRegistry()
	frameMetrics := emitterInfrastructure.NewFrameMetrics(registry)

	wg := &sync.WaitGroup{}
	wg.Add(1)
	go func() {
		defer wg.Done()
		metrics.Serve(ctx, config.MetricsAddress, registry, logger)
	}()

	err = run(ctx, config, openSerialPort(logger), frameMetrics, logger)
	if err != nil {
		logger.Error("emitter stopped: %s", err.Error())
	}

	finish()
	wg.Wait()
	_ = logger.Sync()
	if err != nil {
		os.Exit(1)
	}
}

// portOpener opens the device frames are written to.
type portOpener func(emitterDomain.DeviceName) (io.WriteCloser, error)

// openSerialPort opens device as a serial line and lists the available ports when that fails.
func openSerialPort(logger emitterDomain.Logger) portOpener {
	return func(device emitterDomain.DeviceName) (io.WriteCloser, error) {
		port, err := emitterInfrastructure.OpenSerialPort(device)
		if err != nil {
			if available := emitterInfrastructure.AvailablePorts(); len(available) > 0 {
				logger.Info("available serial ports: %s", strings.Join(available, ", "))
			}
			return nil, err
		}
		return port, nil
	}
}

// run owns the port: it is closed on every return path, panics included.
func run(
	ctx context.Context,
	config *emitterInfrastructure.AppConfig,
	open portOpener,
	recorder emitterDomain.Recorder,
	logger emitterDomain.Logger,
) error {
	port, err := open(config.Device)
	if err != nil {
		return err
	}
	defer func() {
		if err := port.Close(); err != nil {
			logger.Error("close serial port %s: %s", config.Device, err.Error())
			return
		}
		logger.Info("serial port %s closed", config.Device)
	}()

	emitter := emitterDomain.NewFrameEmitter(
		config.Rate,
		emitterDomain.DefaultProfile(),
		emitterInfrastructure.NewGaussianSensor(emitterInfrastructure.DefaultMean, emitterInfrastructure.DefaultStdDev, nil),
		emitterInfrastructure.GlobalRandom{},
		&emitterInfrastructure.SequenceCounter{},
		recorder,
		logger,
	)

	logger.Info("writing frames to %s at %.1f Hz (%d 8N1)", config.Device, float64(config.Rate), emitterInfrastructure.BaudRate)
	return emitterDomain.SafeFunctionRun(fmt.Sprintf("emitting to %s", config.Device), func() error {
		return emitter.Run(ctx, port)
	}, logger)
}
