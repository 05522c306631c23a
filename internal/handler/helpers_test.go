package handler

import (
	"github.com/prometheus/client_golang/prometheus"

	"penal-engine/internal/metrics"
)

func metricsCalculations(m *metrics.Metrics, source, outcome string) prometheus.Collector {
	return m.Calculations().WithLabelValues(source, outcome)
}
