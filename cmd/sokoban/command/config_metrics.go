package command

import (
	"github.com/pixil98/go-sokoban/internal/metrics"
)

// MetricsConfig exposes Prometheus metrics when Port is set.
type MetricsConfig struct {
	Port uint16 `json:"port"`
}

func (c *MetricsConfig) enabled() bool {
	return c.Port != 0
}

func (c *MetricsConfig) buildServer(m *metrics.Metrics) *metrics.Server {
	return metrics.NewServer(c.Port, m)
}
