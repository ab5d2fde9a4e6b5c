package api

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
)

func TestRegisterMetricsDobleRegistro(t *testing.T) {
	reg := prometheus.NewRegistry()
	if err := RegisterMetrics(reg); err != nil {
		t.Fatalf("primer registro: %v", err)
	}
	// registrar dos veces no es error
	if err := RegisterMetrics(reg); err != nil {
		t.Fatalf("segundo registro: %v", err)
	}
}
