package usecase

import (
	"time"

	"github.com/enoch85/ge-spot-sub001/domain/valueobject"
)

// ResampleService converts price maps between sampling granularities.
// Coarser to finer expands each interval into identically-priced
// sub-intervals; finer to coarser aggregates by arithmetic mean. Buckets
// with no contributing points are omitted, never emitted as zero.
type ResampleService interface {
	// Resample converts an instant-keyed price map between granularities
	Resample(prices map[time.Time]float64, from, to valueobject.Granularity) (map[time.Time]float64, error)

	// ResampleLabels converts an "HH:MM" label-keyed price map between
	// granularities. Malformed labels are skipped with a diagnostic; the
	// call never fails for a partially malformed input.
	ResampleLabels(prices map[string]float64, from, to valueobject.Granularity) (map[string]float64, error)
}
