package metrics

import "github.com/prometheus/client_golang/prometheus"

type Prometheus struct {
	Matrices *prometheus.CounterVec
}

func NewPrometheusMetrics() Prometheus {
	return Prometheus{Matrices: prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "revmatrix",
			Name:      "matrices",
		}, []string{"outcome"}),
	}
}
