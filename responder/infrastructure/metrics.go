package infrastructure

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	responderDomain "github.com/samoilenko/ebers_doubles/responder/domain"
)

// Metrics holds the responder's Prometheus collectors.
type Metrics struct {
	responses   *prometheus.CounterVec
	duration    prometheus.Histogram
	predictions *prometheus.CounterVec
}

// ObserveResponse records one finished HTTP exchange.
func (m *Metrics) ObserveResponse(code int, elapsed time.Duration) {
	m.responses.WithLabelValues(strconv.Itoa(code)).Inc()
	m.duration.Observe(elapsed.Seconds())
}

// ObservePrediction records the variant a prediction request was answered with.
func (m *Metrics) ObservePrediction(variant responderDomain.Variant) {
	m.predictions.WithLabelValues(variant.String()).Inc()
}

// NewMetrics creates the responder collectors and registers them on registerer.
func NewMetrics(registerer prometheus.Registerer) *Metrics {
	m := &Metrics{
		responses: prometheus.NewCounterVec(
			prometheus.CounterOpts{Namespace: "responder", Subsystem: "http", Name: "responses_total", Help: "HTTP responses by status code."},
			[]string{"code"},
		),
		duration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: "responder",
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "Time from request arrival to response, queueing and artificial delay included.",
				Buckets:   []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1, 2, 5, 10, 30},
			},
		),
		predictions: prometheus.NewCounterVec(
			prometheus.CounterOpts{Namespace: "responder", Name: "predictions_total", Help: "Prediction answers by variant."},
			[]string{"variant"},
		),
	}
	registerer.MustRegister(m.responses, m.duration, m.predictions)
	return m
}
