package impl

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/enoch85/ge-spot-sub001/domain/entity"
	"github.com/enoch85/ge-spot-sub001/domain/valueobject"
	usecase "github.com/enoch85/ge-spot-sub001/usecase/interface"
)

func conversionResultFixture(t *testing.T) *usecase.ConversionResult {
	t.Helper()
	set := entity.NewNormalizedPriceSet()
	set.SetToday(mustLabel(t, 0, 0), 10.0)
	set.SetToday(mustLabel(t, 1, 0), 11.0)
	set.SetTomorrow(mustLabel(t, 0, 0), 12.0)

	return &usecase.ConversionResult{
		Set:            set,
		SourceTimezone: "Europe/Oslo",
		TodayKind:      valueobject.DayKindNormal,
		TomorrowKind:   valueobject.DayKindNormal,
		DroppedPoints:  3,
	}
}

func TestMetricsServiceImpl_RecordConversion(t *testing.T) {
	t.Run("sends one gauge per diagnostic", func(t *testing.T) {
		repo := newRecordingMetricsRepo()
		service := NewMetricsServiceImpl(repo, &testLogger{})

		err := service.RecordConversion(conversionResultFixture(t), "nordpool")

		require.NoError(t, err)
		assert.Equal(t, 2.0, repo.gauges["gespot_today_interval_count"])
		assert.Equal(t, 1.0, repo.gauges["gespot_tomorrow_interval_count"])
		assert.Equal(t, 3.0, repo.gauges["gespot_dropped_timestamp_count"])

		labels := repo.labels["gespot_today_interval_count"]
		assert.Equal(t, "nordpool", labels["source"])
		assert.Equal(t, "Europe/Oslo", labels["source_timezone"])
		assert.Equal(t, "normal", labels["today_day_kind"])
	})

	t.Run("surfaces repository failures", func(t *testing.T) {
		repo := newRecordingMetricsRepo()
		repo.err = errors.New("remote write unavailable")
		service := NewMetricsServiceImpl(repo, &testLogger{})

		err := service.RecordConversion(conversionResultFixture(t), "nordpool")

		assert.Error(t, err)
	})
}

func TestMetricsServiceImpl_Close(t *testing.T) {
	repo := newRecordingMetricsRepo()
	service := NewMetricsServiceImpl(repo, &testLogger{})

	require.NoError(t, service.Close())
	assert.True(t, repo.closed)
}

func TestNoOpMetricsService(t *testing.T) {
	service := NewNoOpMetricsService()

	assert.NoError(t, service.RecordConversion(conversionResultFixture(t), "nordpool"))
	assert.NoError(t, service.Close())
}
