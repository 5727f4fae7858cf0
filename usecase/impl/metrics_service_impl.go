package impl

import (
	"context"

	"github.com/enoch85/ge-spot-sub001/domain"
	"github.com/enoch85/ge-spot-sub001/domain/repository"
	usecase "github.com/enoch85/ge-spot-sub001/usecase/interface"
)

// MetricsServiceImpl implements the MetricsService interface on top of a
// MetricsRepository
type MetricsServiceImpl struct {
	metricsRepo repository.MetricsRepository
	logger      domain.Logger
}

// NewMetricsServiceImpl creates a new instance of MetricsServiceImpl
func NewMetricsServiceImpl(
	metricsRepo repository.MetricsRepository,
	logger domain.Logger,
) *MetricsServiceImpl {
	return &MetricsServiceImpl{
		metricsRepo: metricsRepo,
		logger:      logger,
	}
}

// RecordConversion publishes gauge metrics describing a conversion result
func (s *MetricsServiceImpl) RecordConversion(result *usecase.ConversionResult, source string) error {
	labels := map[string]string{
		"source":          source,
		"source_timezone": result.SourceTimezone,
		"today_day_kind":  result.TodayKind.String(),
	}

	gauges := map[string]float64{
		"gespot_today_interval_count":    float64(len(result.Set.Today())),
		"gespot_tomorrow_interval_count": float64(len(result.Set.Tomorrow())),
		"gespot_dropped_timestamp_count": float64(result.DroppedPoints),
	}

	for name, value := range gauges {
		if err := s.metricsRepo.SendGauge(name, value, labels); err != nil {
			s.logger.Warn(context.Background(), "Failed to send gauge metric",
				domain.NewField("metric", name),
				domain.NewField("error", err.Error()),
			)
			return err
		}
	}
	return nil
}

// Close releases metrics resources
func (s *MetricsServiceImpl) Close() error {
	return s.metricsRepo.Close()
}

// NoOpMetricsService is used when no metrics endpoint is configured
type NoOpMetricsService struct{}

// NewNoOpMetricsService creates a metrics service that discards everything
func NewNoOpMetricsService() *NoOpMetricsService {
	return &NoOpMetricsService{}
}

// RecordConversion does nothing
func (s *NoOpMetricsService) RecordConversion(_ *usecase.ConversionResult, _ string) error {
	return nil
}

// Close does nothing
func (s *NoOpMetricsService) Close() error {
	return nil
}
