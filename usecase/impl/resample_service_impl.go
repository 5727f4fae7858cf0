package impl

import (
	"context"
	"time"

	"github.com/enoch85/ge-spot-sub001/domain"
	"github.com/enoch85/ge-spot-sub001/domain/valueobject"
)

// ResampleServiceImpl implements the ResampleService interface.
// Expansion duplicates the coarse price into every sub-interval;
// aggregation takes the arithmetic mean of the contributing points. Both
// directions are pure map transforms with no interpolation.
type ResampleServiceImpl struct {
	logger domain.Logger
}

// NewResampleServiceImpl creates a new instance of ResampleServiceImpl
func NewResampleServiceImpl(logger domain.Logger) *ResampleServiceImpl {
	return &ResampleServiceImpl{logger: logger}
}

// Resample converts an instant-keyed price map between granularities
func (s *ResampleServiceImpl) Resample(
	prices map[time.Time]float64,
	from, to valueobject.Granularity,
) (map[time.Time]float64, error) {
	if err := validateGranularities(from, to); err != nil {
		return nil, err
	}

	if from == to {
		out := make(map[time.Time]float64, len(prices))
		for t, p := range prices {
			out[t] = p
		}
		return out, nil
	}

	if to < from {
		return expandInstants(prices, from, to), nil
	}
	return aggregateInstants(prices, to), nil
}

// ResampleLabels converts an "HH:MM" label-keyed price map between
// granularities
func (s *ResampleServiceImpl) ResampleLabels(
	prices map[string]float64,
	from, to valueobject.Granularity,
) (map[string]float64, error) {
	if err := validateGranularities(from, to); err != nil {
		return nil, err
	}

	parsed := make(map[valueobject.IntervalLabel]float64, len(prices))
	for raw, price := range prices {
		label, err := valueobject.ParseIntervalLabel(raw)
		if err != nil {
			s.logger.Debug(context.Background(), "Skipped malformed interval label",
				domain.NewField("label", raw),
			)
			continue
		}
		parsed[label] = price
	}

	out := make(map[string]float64)
	if from == to {
		for label, price := range parsed {
			out[label.String()] = price
		}
		return out, nil
	}

	if to < from {
		for label, price := range parsed {
			for offset := 0; offset < from.Minutes(); offset += to.Minutes() {
				sub, err := valueobject.NewIntervalLabel(label.Hour(), label.Minute()+offset)
				if err != nil {
					continue
				}
				out[sub.String()] = price
			}
		}
		return out, nil
	}

	sums := make(map[valueobject.IntervalLabel]float64)
	counts := make(map[valueobject.IntervalLabel]int)
	for label, price := range parsed {
		bucket, err := valueobject.NewIntervalLabel(label.Hour(), (label.Minute()/to.Minutes())*to.Minutes())
		if err != nil {
			continue
		}
		sums[bucket] += price
		counts[bucket]++
	}
	for bucket, sum := range sums {
		out[bucket.String()] = sum / float64(counts[bucket])
	}
	return out, nil
}

func validateGranularities(from, to valueobject.Granularity) error {
	if !from.IsValid() {
		return domain.ErrInvalidConfiguration("source granularity", from.String())
	}
	if !to.IsValid() {
		return domain.ErrInvalidConfiguration("target granularity", to.String())
	}
	return nil
}

func expandInstants(
	prices map[time.Time]float64,
	from, to valueobject.Granularity,
) map[time.Time]float64 {
	out := make(map[time.Time]float64, len(prices)*from.Minutes()/to.Minutes())
	for t, price := range prices {
		for offset := 0; offset < from.Minutes(); offset += to.Minutes() {
			out[t.Add(time.Duration(offset)*time.Minute)] = price
		}
	}
	return out
}

func aggregateInstants(
	prices map[time.Time]float64,
	to valueobject.Granularity,
) map[time.Time]float64 {
	sums := make(map[time.Time]float64)
	counts := make(map[time.Time]int)
	for t, price := range prices {
		bucket := truncateToGranularity(t, to)
		sums[bucket] += price
		counts[bucket]++
	}

	out := make(map[time.Time]float64, len(sums))
	for bucket, sum := range sums {
		out[bucket] = sum / float64(counts[bucket])
	}
	return out
}

// truncateToGranularity rounds an instant down to the nearest boundary of
// its own wall clock, so the result stays aligned even in zones whose UTC
// offset is not a multiple of the granularity.
func truncateToGranularity(t time.Time, g valueobject.Granularity) time.Time {
	minute := (t.Minute() / g.Minutes()) * g.Minutes()
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), minute, 0, 0, t.Location())
}
