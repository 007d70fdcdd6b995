// Responder is a mock prediction API answering the client under test with
// randomized predictions, optional latency and injected failures.
//
// Usage: responder -port=8000 -delay=2 -error-rate=0.2
//
// Flags:
//
//	-port: port to listen on, 1-65535 (default 8000)
//	-delay: artificial delay in seconds added to every prediction (default 0)
//	-error-rate: probability of answering with an injected failure, 0.0-1.0 (default 0)
//	-metrics-address: optional Prometheus listener address (e.g. :9100)
//	-log-json: write logs as JSON
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/samoilenko/ebers_doubles/pkg/logging"
	"github.com/samoilenko/ebers_doubles/pkg/metrics"
	responderDomain "github.com/samoilenko/ebers_doubles/responder/domain"
	responderInfrastructure "github.com/samoilenko/ebers_doubles/responder/infrastructure"
)

func endWithError(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n\n", err)
	flag.Usage()
	os.Exit(1)
}

func main() {
	ctx, finish := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer finish()

	config, err := responderInfrastructure.GetFromCommandLineParameters(flag.CommandLine, os.Args[1:])
	if err != nil {
		endWithError(err)
	}

	logger, err := logging.New("responder", config.LogJSON)
	if err != nil {
		endWithError(err)
	}

	registry := metrics.NewRegistry()
	httpMetrics := responderInfrastructure.NewMetrics(registry)

	predictor := responderDomain.NewPredictor(
		responderDomain.NewConfig(config.Delay, config.ErrorRate),
		responderInfrastructure.GlobalRandom{},
		logger,
	)

	listener, err := net.Listen("tcp", config.Port.Address())
	if err != nil {
		logger.Error("listen error: %s", err.Error())
		_ = logger.Sync()
		os.Exit(1)
	}

	server := newServer(ctx, responderInfrastructure.NewHTTPHandler(predictor, logger, httpMetrics))

	wg := &sync.WaitGroup{}
	wg.Add(1)
	go func() {
		defer wg.Done()
		metrics.Serve(ctx, config.MetricsAddress, registry, logger)
	}()

	logger.Info("mock prediction API listening on http://localhost:%d", config.Port)
	logger.Info("endpoint: http://localhost:%d%s", config.Port, responderInfrastructure.PredictPath)
	logger.Info("response delay: %s, error rate: %.1f%%", config.Delay.Duration(), float64(config.ErrorRate)*100)
	logger.Info("client .env: PREDICTION_API_ENDPOINT=http://localhost:%d%s", config.Port, responderInfrastructure.PredictPath)

	err = serve(ctx, listener, server, logger)
	if err != nil {
		logger.Error("serve error: %s", err.Error())
	}

	finish()
	wg.Wait()
	logger.Info("server stopped")
	_ = logger.Sync()
	if err != nil {
		os.Exit(1)
	}
}

func newServer(ctx context.Context, handler http.Handler) *http.Server {
	return &http.Server{
		Handler:           h2c.NewHandler(handler, &http2.Server{}),
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}
}

// serve runs server on listener until ctx is cancelled. Shutdown closes the listener
// and waits up to five seconds for in-flight requests.
// Any error other than the shutdown itself is returned as is; the caller still owns ctx.
func serve(ctx context.Context, listener net.Listener, server *http.Server, logger responderDomain.Logger) error {
	shutdownDone := make(chan struct{})
	go func() {
		defer close(shutdownDone)
		<-ctx.Done()
		logger.Info("shutting down HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown error: %s", err.Error())
		}
	}()

	err := server.Serve(listener)
	if errors.Is(err, http.ErrServerClosed) {
		<-shutdownDone
		return nil
	}
	return err
}
