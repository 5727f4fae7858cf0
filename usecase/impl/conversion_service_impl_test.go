package impl

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/enoch85/ge-spot-sub001/domain"
	"github.com/enoch85/ge-spot-sub001/domain/entity"
	"github.com/enoch85/ge-spot-sub001/domain/valueobject"
	usecase "github.com/enoch85/ge-spot-sub001/usecase/interface"
)

func newConversionService(targetTZ *time.Location, g valueobject.Granularity) *ConversionServiceImpl {
	logger := &testLogger{}
	resolver := newTestResolver()
	return NewConversionServiceImpl(
		NewTimestampServiceImpl(resolver, logger),
		NewTransitionServiceImpl(logger),
		NewResampleServiceImpl(logger),
		resolver,
		targetTZ,
		g,
		logger,
	)
}

// hourlyPrices builds a map of hourly ISO timestamps starting at start,
// priced by hour index
func hourlyPrices(start time.Time, hours int) map[string]float64 {
	prices := make(map[string]float64, hours)
	for i := 0; i < hours; i++ {
		key := start.Add(time.Duration(i) * time.Hour).Format(time.RFC3339)
		prices[key] = float64(i)
	}
	return prices
}

func TestConversionServiceImpl_Convert(t *testing.T) {
	stockholm := mustLoadLocation("Europe/Stockholm")

	t.Run("buckets a full UTC day into today labels", func(t *testing.T) {
		service := newConversionService(stockholm, valueobject.Granularity60)

		// Stockholm's June day runs 22:00Z of the previous day to 22:00Z.
		start := time.Date(2025, 6, 14, 22, 0, 0, 0, time.UTC)
		now := time.Date(2025, 6, 15, 10, 0, 0, 0, stockholm)

		set, err := service.Convert(hourlyPrices(start, 24), "UTC", usecase.ConvertOptions{Now: now})

		require.NoError(t, err)
		assert.Len(t, set.Today(), 24)
		assert.Empty(t, set.Tomorrow())

		first, ok := set.TodayPrice(mustLabel(t, 0, 0))
		assert.True(t, ok)
		assert.Equal(t, 0.0, first)

		noon, ok := set.TodayPrice(mustLabel(t, 12, 0))
		assert.True(t, ok)
		assert.Equal(t, 12.0, noon)
	})

	t.Run("fixed offset conversion is a pure label shift", func(t *testing.T) {
		// Etc/GMT-2 is a perpetual UTC+2 zone with no DST.
		target := mustLoadLocation("Etc/GMT-2")
		service := newConversionService(target, valueobject.Granularity60)

		start := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
		now := time.Date(2025, 6, 15, 12, 0, 0, 0, target)

		set, err := service.Convert(hourlyPrices(start, 22), "UTC", usecase.ConvertOptions{Now: now})

		require.NoError(t, err)
		assert.Len(t, set.Today(), 22)
		for i := 0; i < 22; i++ {
			price, ok := set.TodayPrice(mustLabel(t, i+2, 0))
			assert.True(t, ok)
			assert.Equal(t, float64(i), price)
		}
	})

	t.Run("splits entries across today and tomorrow", func(t *testing.T) {
		service := newConversionService(stockholm, valueobject.Granularity60)

		prices := map[string]float64{
			"2025-06-15T10:00:00Z": 1.0,
			"2025-06-16T10:00:00Z": 2.0,
			"2025-06-17T10:00:00Z": 3.0, // beyond tomorrow, dropped
			"2025-06-14T10:00:00Z": 4.0, // stale, dropped
		}
		now := time.Date(2025, 6, 15, 8, 0, 0, 0, stockholm)

		set, err := service.Convert(prices, "UTC", usecase.ConvertOptions{Now: now})

		require.NoError(t, err)
		assert.Len(t, set.Today(), 1)
		assert.Len(t, set.Tomorrow(), 1)

		today, _ := set.TodayPrice(mustLabel(t, 12, 0))
		assert.Equal(t, 1.0, today)
		tomorrow, _ := set.TomorrowPrice(mustLabel(t, 12, 0))
		assert.Equal(t, 2.0, tomorrow)
	})

	t.Run("later instant wins the fall-back duplicate label", func(t *testing.T) {
		service := newConversionService(stockholm, valueobject.Granularity60)

		// Both instants show 02:xx on the Stockholm wall clock on
		// 2025-10-26; processing is ordered by instant, so the standard
		// time pass overwrites the summer time pass.
		prices := map[string]float64{
			"2025-10-26T00:00:00Z": 12.0, // 02:00 CEST, first pass
			"2025-10-26T01:00:00Z": 13.0, // 02:00 CET, second pass
		}
		now := time.Date(2025, 10, 26, 12, 0, 0, 0, stockholm)

		set, err := service.Convert(prices, "UTC", usecase.ConvertOptions{Now: now})

		require.NoError(t, err)
		assert.Len(t, set.Today(), 1)
		price, ok := set.TodayPrice(mustLabel(t, 2, 0))
		assert.True(t, ok)
		assert.Equal(t, 13.0, price)
	})

	t.Run("offset-keyed entries across the Berlin fall-back", func(t *testing.T) {
		berlin := mustLoadLocation("Europe/Berlin")
		service := newConversionService(berlin, valueobject.Granularity60)

		prices := map[string]float64{
			"2025-10-26T00:00:00+02:00": 10.0,
			"2025-10-26T01:00:00+02:00": 11.0,
			"2025-10-26T02:00:00+02:00": 12.0,
			"2025-10-26T02:00:00+01:00": 13.0,
			"2025-10-26T03:00:00+01:00": 14.0,
		}
		now := time.Date(2025, 10, 26, 12, 0, 0, 0, berlin)

		set, err := service.Convert(prices, "Europe/Berlin", usecase.ConvertOptions{Now: now})

		require.NoError(t, err)
		assert.Len(t, set.Today(), 4)

		want := map[string]float64{
			"00:00": 10.0,
			"01:00": 11.0,
			"02:00": 13.0,
			"03:00": 14.0,
		}
		assert.Equal(t, want, set.Today())
	})

	t.Run("spring-forward day has no label for the missing hour", func(t *testing.T) {
		service := newConversionService(stockholm, valueobject.Granularity60)

		// The local day 2025-03-30 is 23 hours long, 23:00Z (00:00 CET) to
		// 22:00Z (00:00 CEST next day).
		start := time.Date(2025, 3, 29, 23, 0, 0, 0, time.UTC)
		now := time.Date(2025, 3, 30, 12, 0, 0, 0, stockholm)

		set, err := service.Convert(hourlyPrices(start, 23), "UTC", usecase.ConvertOptions{Now: now})

		require.NoError(t, err)
		assert.Len(t, set.Today(), 23)
		_, ok := set.TodayPrice(mustLabel(t, 2, 0))
		assert.False(t, ok)
	})

	t.Run("drops unparsable keys and keeps the rest", func(t *testing.T) {
		service := newConversionService(stockholm, valueobject.Granularity60)

		prices := map[string]float64{
			"2025-06-15T10:00:00Z": 1.0,
			"not a timestamp":      99.0,
		}
		now := time.Date(2025, 6, 15, 8, 0, 0, 0, stockholm)

		set, err := service.Convert(prices, "UTC", usecase.ConvertOptions{Now: now})

		require.NoError(t, err)
		assert.Len(t, set.Today(), 1)
	})

	t.Run("fails whole conversion on an unresolvable source timezone", func(t *testing.T) {
		service := newConversionService(stockholm, valueobject.Granularity60)

		set, err := service.Convert(map[string]float64{"2025-06-15T10:00:00Z": 1.0}, "Not/AZone", usecase.ConvertOptions{})

		assert.Nil(t, set)
		assert.True(t, domain.IsErrorCode(err, domain.ErrCodeInvalidTimezone))
	})

	t.Run("resolves an area code as source timezone", func(t *testing.T) {
		service := newConversionService(stockholm, valueobject.Granularity60)

		// Naive timestamp attached to SE3's zone, which is the target
		// zone, so the label matches the raw wall clock.
		prices := map[string]float64{"2025-06-15T10:00:00": 1.0}
		now := time.Date(2025, 6, 15, 8, 0, 0, 0, stockholm)

		set, err := service.Convert(prices, "SE3", usecase.ConvertOptions{Now: now})

		require.NoError(t, err)
		price, ok := set.TodayPrice(mustLabel(t, 10, 0))
		assert.True(t, ok)
		assert.Equal(t, 1.0, price)
	})
}

func TestConversionServiceImpl_ConvertDocument(t *testing.T) {
	stockholm := mustLoadLocation("Europe/Stockholm")

	t.Run("reports diagnostics for a complete day", func(t *testing.T) {
		service := newConversionService(stockholm, valueobject.Granularity60)

		start := time.Date(2025, 6, 14, 22, 0, 0, 0, time.UTC)
		doc, err := entity.NewPriceDocument("nordpool", "UTC", 60, hourlyPrices(start, 24))
		require.NoError(t, err)

		now := time.Date(2025, 6, 15, 10, 0, 0, 0, stockholm)
		result, err := service.ConvertDocument(doc, usecase.ConvertOptions{Now: now})

		require.NoError(t, err)
		assert.Equal(t, valueobject.DayKindNormal, result.TodayKind)
		assert.Equal(t, valueobject.DayKindNormal, result.TomorrowKind)
		assert.Equal(t, "UTC", result.SourceTimezone)
		assert.Equal(t, 0, result.DroppedPoints)
		assert.True(t, result.TodayComplete)
	})

	t.Run("expands hourly vendor data to the target quarter hours", func(t *testing.T) {
		service := newConversionService(stockholm, valueobject.Granularity15)

		doc, err := entity.NewPriceDocument("nordpool", "UTC", 60, map[string]float64{
			"2025-06-15T14:00:00Z": 50.0,
		})
		require.NoError(t, err)

		now := time.Date(2025, 6, 15, 10, 0, 0, 0, stockholm)
		result, err := service.ConvertDocument(doc, usecase.ConvertOptions{Now: now})

		require.NoError(t, err)
		assert.Len(t, result.Set.Today(), 4)
		for _, minute := range []int{0, 15, 30, 45} {
			price, ok := result.Set.TodayPrice(mustLabel(t, 16, minute))
			assert.True(t, ok)
			assert.Equal(t, 50.0, price)
		}
	})

	t.Run("counts the day kinds on a fall-back reference date", func(t *testing.T) {
		service := newConversionService(stockholm, valueobject.Granularity60)

		// The local day 2025-10-26 is 25 hours long, 22:00Z of the 25th to
		// 23:00Z of the 26th.
		start := time.Date(2025, 10, 25, 22, 0, 0, 0, time.UTC)
		doc, err := entity.NewPriceDocument("nordpool", "UTC", 60, hourlyPrices(start, 25))
		require.NoError(t, err)

		now := time.Date(2025, 10, 26, 12, 0, 0, 0, stockholm)
		result, err := service.ConvertDocument(doc, usecase.ConvertOptions{Now: now})

		require.NoError(t, err)
		assert.Equal(t, valueobject.DayKindFallBack, result.TodayKind)
		// 25 instants collapse onto 24 labels; the duplicate hour keeps one.
		assert.Len(t, result.Set.Today(), 24)
		assert.False(t, result.TodayComplete)
	})
}

func mustLabel(t *testing.T, hour, minute int) valueobject.IntervalLabel {
	t.Helper()
	label, err := valueobject.NewIntervalLabel(hour, minute)
	require.NoError(t, err)
	return label
}
