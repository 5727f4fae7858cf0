package valueobject

import (
	"fmt"
	"time"

	"github.com/enoch85/ge-spot-sub001/domain"
)

// Granularity represents the sampling period of a price series in minutes.
// Every supported value evenly divides 60, so intervals always align to
// clock hours.
type Granularity int

const (
	Granularity5  Granularity = 5
	Granularity15 Granularity = 15
	Granularity30 Granularity = 30
	Granularity60 Granularity = 60
)

// SupportedGranularities lists all valid granularities in ascending order.
var SupportedGranularities = []Granularity{
	Granularity5,
	Granularity15,
	Granularity30,
	Granularity60,
}

// ParseGranularity creates a Granularity from a minute count
func ParseGranularity(minutes int) (Granularity, error) {
	g := Granularity(minutes)
	if !g.IsValid() {
		return 0, domain.ErrInvalidConfiguration("granularity",
			fmt.Sprintf("%d minutes is not one of 5, 15, 30, 60", minutes))
	}
	return g, nil
}

// IsValid reports whether the granularity is one of the supported values
func (g Granularity) IsValid() bool {
	switch g {
	case Granularity5, Granularity15, Granularity30, Granularity60:
		return true
	}
	return false
}

// Minutes returns the interval length in minutes
func (g Granularity) Minutes() int {
	return int(g)
}

// Duration returns the interval length as a time.Duration
func (g Granularity) Duration() time.Duration {
	return time.Duration(g) * time.Minute
}

// IntervalsPerHour returns the number of intervals in one clock hour
func (g Granularity) IntervalsPerHour() int {
	return 60 / int(g)
}

// IntervalsPerDay returns the number of intervals in a local calendar day
// of the given kind. A spring-forward day loses one hour of intervals, a
// fall-back day gains one.
func (g Granularity) IntervalsPerDay(kind DayKind) int {
	return (24 + kind.Delta()) * g.IntervalsPerHour()
}

func (g Granularity) String() string {
	return fmt.Sprintf("%dm", int(g))
}
