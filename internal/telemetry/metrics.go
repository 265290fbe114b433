package telemetry

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/tournevent/dhlexpress/pkg/express"
)

// Metrics holds the Prometheus collectors of the DHL Express adapters. It implements
// express.Recorder.
type Metrics struct {
	CallsTotal   *prometheus.CounterVec
	CallDuration *prometheus.HistogramVec
	CallErrors   *prometheus.CounterVec
}

var _ express.Recorder = (*Metrics)(nil)

// NewMetrics creates the collectors and registers them with reg. A nil reg uses the default
// registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		CallsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dhlexpress_calls_total",
				Help: "Total number of DHL Express calls by transport, operation, and outcome",
			},
			[]string{"transport", "operation", "outcome"},
		),
		CallDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "dhlexpress_call_duration_seconds",
				Help:    "DHL Express call duration in seconds by transport and operation",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"transport", "operation"},
		),
		CallErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dhlexpress_call_errors_total",
				Help: "Total failed DHL Express calls by transport and outcome",
			},
			[]string{"transport", "outcome"},
		),
	}
}

// ObserveCall records one adapter call.
func (m *Metrics) ObserveCall(transport, operation string, d time.Duration, err error) {
	outcome := express.Outcome(err)
	m.CallsTotal.WithLabelValues(transport, operation, outcome).Inc()
	m.CallDuration.WithLabelValues(transport, operation).Observe(d.Seconds())
	if err != nil {
		m.CallErrors.WithLabelValues(transport, outcome).Inc()
	}
}
