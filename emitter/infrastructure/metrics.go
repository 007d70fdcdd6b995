package infrastructure

import (
	"github.com/prometheus/client_golang/prometheus"

	emitterDomain "github.com/samoilenko/ebers_doubles/emitter/domain"
)

// FrameMetrics counts frames that reached the serial device.
type FrameMetrics struct {
	frames *prometheus.CounterVec
}

// ObserveFrame implements emitterDomain.Recorder.
func (m *FrameMetrics) ObserveFrame(frame emitterDomain.Frame) {
	kind := "ok"
	if frame.Corrupted {
		kind = "corrupted"
	}
	m.frames.WithLabelValues(kind).Inc()
}

// NewFrameMetrics creates the emitter collectors and registers them on registerer.
func NewFrameMetrics(registerer prometheus.Registerer) *FrameMetrics {
	m := &FrameMetrics{
		frames: prometheus.NewCounterVec(
			prometheus.CounterOpts{Namespace: "emitter", Name: "frames_total", Help: "Frames written to the serial device by kind."},
			[]string{"kind"},
		),
	}
	registerer.MustRegister(m.frames)
	return m
}
