package actionkit

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Collector holds all Prometheus metrics for the dispatcher.
type Collector struct {
	// Invocation metrics
	InvocationsTotal    *prometheus.CounterVec
	InvocationDuration  *prometheus.HistogramVec
	InvocationsInFlight prometheus.Gauge

	// Permission metrics
	PermissionDenials *prometheus.CounterVec
}

// NewCollector creates a metrics collector with all metrics registered on
// reg. Pass prometheus.DefaultRegisterer to use the global registry.
func NewCollector(reg prometheus.Registerer) *Collector {
	factory := promauto.With(reg)
	return &Collector{
		InvocationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "actionkit",
				Name:      "invocations_total",
				Help:      "Total number of action invocations dispatched",
			},
			[]string{"service", "action", "outcome"},
		),
		InvocationDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "actionkit",
				Name:      "invocation_duration_seconds",
				Help:      "Action invocation duration in seconds",
				Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			},
			[]string{"service", "action"},
		),
		InvocationsInFlight: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: "actionkit",
				Name:      "invocations_in_flight",
				Help:      "Number of invocations currently being dispatched",
			},
		),
		PermissionDenials: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "actionkit",
				Name:      "permission_denials_total",
				Help:      "Total number of invocations aborted by the permission stage",
			},
			[]string{"service", "action"},
		),
	}
}
