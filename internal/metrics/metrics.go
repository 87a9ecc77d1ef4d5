package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Enumeration outcomes tracked by the observer.
const (
	Generated = "generated"
	Accepted  = "accepted"
	Rejected  = "rejected"
)

var Observer = &Metrics{
	mutex:      new(sync.RWMutex),
	prometheus: NewPrometheusMetrics(),
}

func init() {
	prometheus.MustRegister(Observer.prometheus.Matrices)
}

type Metrics struct {
	mutex      *sync.RWMutex
	prometheus Prometheus
}

func (m *Metrics) Increment(outcome string) {
	m.prometheus.Matrices.WithLabelValues(outcome).Inc()
}
