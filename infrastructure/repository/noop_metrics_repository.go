package repository

import (
	"github.com/enoch85/ge-spot-sub001/domain/repository"
)

// NoOpMetricsRepository is a no-op implementation of MetricsRepository.
// Used when Prometheus is not configured.
type NoOpMetricsRepository struct{}

// NewNoOpMetricsRepository creates a new no-op metrics repository
func NewNoOpMetricsRepository() repository.MetricsRepository {
	return &NoOpMetricsRepository{}
}

// SendGauge does nothing
func (r *NoOpMetricsRepository) SendGauge(name string, value float64, labels map[string]string) error {
	return nil
}

// Close does nothing
func (r *NoOpMetricsRepository) Close() error {
	return nil
}
