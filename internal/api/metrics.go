package api

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

// Métricas de requests salientes. Se labelan por método y status; el
// path no se usa como label para no explotar la cardinalidad con IDs.
var (
	requestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "bookly_client_requests_total",
		Help: "Requests HTTP salientes hacia el backend",
	}, []string{"method", "status"})

	requestDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "bookly_client_request_duration_seconds",
		Help:    "Duración de requests salientes",
		Buckets: prometheus.DefBuckets,
	})
)

// RegisterMetrics registra las métricas del cliente en el registry dado
// (default si es nil). Tolera doble registro.
func RegisterMetrics(reg prometheus.Registerer) error {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	for _, c := range []prometheus.Collector{requestsTotal, requestDuration} {
		if err := reg.Register(c); err != nil {
			if _, ok := err.(prometheus.AlreadyRegisteredError); !ok {
				return err
			}
		}
	}
	return nil
}

func observeRequest(method string, status int, seconds float64) {
	label := "error"
	if status > 0 {
		label = strconv.Itoa(status)
	}
	requestsTotal.WithLabelValues(method, label).Inc()
	requestDuration.Observe(seconds)
}
