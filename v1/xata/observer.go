package xata

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Observer tracks adapter operations as prometheus metrics: one
// counter and one duration histogram, both labeled by operation, table
// and outcome.
type Observer struct {
	operationsTotal   *prometheus.CounterVec
	operationDuration *prometheus.HistogramVec
}

// NewObserver creates an Observer and registers its collectors with
// the given registerer.
func NewObserver(reg prometheus.Registerer) *Observer {
	o := &Observer{
		operationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "xata_operations_total",
				Help: "Total number of xata adapter operations.",
			},
			[]string{"operation", "table", "status"},
		),
		operationDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "xata_operation_duration_seconds",
				Help:    "Duration of xata adapter operations.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation", "table", "status"},
		),
	}

	if reg != nil {
		reg.MustRegister(o.operationsTotal, o.operationDuration)
	}
	return o
}

// ObserveOperation records one finished operation.
func (o *Observer) ObserveOperation(operation, table string, duration time.Duration, err error) {
	if o == nil {
		return
	}

	status := "success"
	if err != nil {
		status = "error"
	}

	o.operationsTotal.WithLabelValues(operation, table, status).Inc()
	o.operationDuration.WithLabelValues(operation, table, status).Observe(duration.Seconds())
}
