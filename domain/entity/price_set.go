package entity

import (
	"sort"

	"github.com/enoch85/ge-spot-sub001/domain/valueobject"
)

// NormalizedPriceSet holds the result of a conversion: prices keyed by
// local interval label, split into a "today" and a "tomorrow" bucket in
// the target timezone. Labels are unique within a bucket; on a fall-back
// day the converter's overwrite policy decides which of the two source
// instants survives under the duplicated label.
type NormalizedPriceSet struct {
	today    map[string]float64
	tomorrow map[string]float64
}

// NewNormalizedPriceSet creates an empty price set
func NewNormalizedPriceSet() *NormalizedPriceSet {
	return &NormalizedPriceSet{
		today:    make(map[string]float64),
		tomorrow: make(map[string]float64),
	}
}

// SetToday stores a price under a label in the today bucket, overwriting
// any previous value
func (s *NormalizedPriceSet) SetToday(label valueobject.IntervalLabel, price float64) {
	s.today[label.String()] = price
}

// SetTomorrow stores a price under a label in the tomorrow bucket,
// overwriting any previous value
func (s *NormalizedPriceSet) SetTomorrow(label valueobject.IntervalLabel, price float64) {
	s.tomorrow[label.String()] = price
}

// Today returns the today bucket
func (s *NormalizedPriceSet) Today() map[string]float64 {
	return s.today
}

// Tomorrow returns the tomorrow bucket
func (s *NormalizedPriceSet) Tomorrow() map[string]float64 {
	return s.tomorrow
}

// TodayPrice looks up a price in the today bucket
func (s *NormalizedPriceSet) TodayPrice(label valueobject.IntervalLabel) (float64, bool) {
	price, ok := s.today[label.String()]
	return price, ok
}

// TomorrowPrice looks up a price in the tomorrow bucket
func (s *NormalizedPriceSet) TomorrowPrice(label valueobject.IntervalLabel) (float64, bool) {
	price, ok := s.tomorrow[label.String()]
	return price, ok
}

// TodayLabels returns the today bucket's labels in ascending order
func (s *NormalizedPriceSet) TodayLabels() []string {
	return sortedLabels(s.today)
}

// TomorrowLabels returns the tomorrow bucket's labels in ascending order
func (s *NormalizedPriceSet) TomorrowLabels() []string {
	return sortedLabels(s.tomorrow)
}

// ExpectedIntervals returns the interval count a full day of the given
// kind holds at the given granularity
func ExpectedIntervals(kind valueobject.DayKind, g valueobject.Granularity) int {
	return g.IntervalsPerDay(kind)
}

// IsCompleteFor reports whether the today bucket holds the full interval
// count expected for a day of the given kind. A shorter bucket means
// insufficient data, not invalid data.
func (s *NormalizedPriceSet) IsCompleteFor(kind valueobject.DayKind, g valueobject.Granularity) bool {
	return len(s.today) >= ExpectedIntervals(kind, g)
}

func sortedLabels(bucket map[string]float64) []string {
	labels := make([]string, 0, len(bucket))
	for label := range bucket {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}
