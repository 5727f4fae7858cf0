package usecase

import (
	"time"

	"github.com/enoch85/ge-spot-sub001/domain/entity"
	"github.com/enoch85/ge-spot-sub001/domain/valueobject"
)

// ConvertOptions carries the per-call inputs of a conversion
type ConvertOptions struct {
	// Now anchors the reference date ("today" in the target timezone).
	// Zero means the wall clock is read once at the call boundary.
	Now time.Time
}

// ConversionResult is the boundary-layer view of a conversion: the
// normalized set plus the diagnostics the adapter and metrics layers need
type ConversionResult struct {
	Set            *entity.NormalizedPriceSet
	SourceTimezone string
	TodayKind      valueobject.DayKind
	TomorrowKind   valueobject.DayKind
	DroppedPoints  int
	TodayComplete  bool
}

// ConversionService converts an instant-keyed price map from a source
// timezone into local-label-keyed today/tomorrow buckets in the target
// timezone configured at construction.
type ConversionService interface {
	// Convert parses every key of the price map in the resolved source
	// timezone, projects it into the target timezone and buckets it by
	// local date relative to the reference day. Unparsable entries are
	// dropped with a diagnostic; an unresolvable source timezone fails the
	// whole call with INVALID_TIMEZONE and no partial conversion.
	//
	// Entries are processed in ascending instant order, so when two
	// distinct instants project onto the same local label (the fall-back
	// duplicate hour) the later instant wins.
	Convert(prices map[string]float64, sourceTimezone string, opts ConvertOptions) (*entity.NormalizedPriceSet, error)

	// ConvertDocument converts a full vendor document, resampling from the
	// document's declared granularity to the configured target granularity
	// when they differ, and reports conversion diagnostics.
	ConvertDocument(doc *entity.PriceDocument, opts ConvertOptions) (*ConversionResult, error)
}
