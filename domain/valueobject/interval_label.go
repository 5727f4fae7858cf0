package valueobject

import (
	"fmt"
	"time"

	"github.com/enoch85/ge-spot-sub001/domain"
)

// IntervalLabel is a local wall-clock label of the form "HH:MM". It is
// meaningful only together with a timezone and a calendar date: the same
// label appears twice on a fall-back day and never on a spring-forward day.
type IntervalLabel struct {
	hour   int
	minute int
}

// NewIntervalLabel creates a label from an hour and minute pair
func NewIntervalLabel(hour, minute int) (IntervalLabel, error) {
	if hour < 0 || hour > 23 {
		return IntervalLabel{}, domain.ErrInvalidConfiguration("interval label",
			fmt.Sprintf("hour %d out of range", hour))
	}
	if minute < 0 || minute > 59 {
		return IntervalLabel{}, domain.ErrInvalidConfiguration("interval label",
			fmt.Sprintf("minute %d out of range", minute))
	}
	return IntervalLabel{hour: hour, minute: minute}, nil
}

// IntervalLabelFromTime derives the label of the interval containing t,
// rounding the minute down to the granularity boundary. The time's own
// location determines the wall clock used.
func IntervalLabelFromTime(t time.Time, g Granularity) IntervalLabel {
	minute := (t.Minute() / g.Minutes()) * g.Minutes()
	return IntervalLabel{hour: t.Hour(), minute: minute}
}

// ParseIntervalLabel parses an "HH:MM" string
func ParseIntervalLabel(s string) (IntervalLabel, error) {
	var hour, minute int
	if _, err := fmt.Sscanf(s, "%02d:%02d", &hour, &minute); err != nil || len(s) != 5 || s[2] != ':' {
		return IntervalLabel{}, domain.ErrUnparsableTimestamp(s)
	}
	return NewIntervalLabel(hour, minute)
}

// Hour returns the label's hour component
func (l IntervalLabel) Hour() int {
	return l.hour
}

// Minute returns the label's minute component
func (l IntervalLabel) Minute() int {
	return l.minute
}

// AddHours returns the label shifted by n hours, wrapping on the 24-hour
// clock. n may be negative.
func (l IntervalLabel) AddHours(n int) IntervalLabel {
	hour := ((l.hour+n)%24 + 24) % 24
	return IntervalLabel{hour: hour, minute: l.minute}
}

// Next returns the label one granularity interval later, wrapping at
// midnight
func (l IntervalLabel) Next(g Granularity) IntervalLabel {
	total := (l.hour*60 + l.minute + g.Minutes()) % (24 * 60)
	return IntervalLabel{hour: total / 60, minute: total % 60}
}

// Equals checks if two labels are equal
func (l IntervalLabel) Equals(other IntervalLabel) bool {
	return l.hour == other.hour && l.minute == other.minute
}

// String formats the label as "HH:MM"
func (l IntervalLabel) String() string {
	return fmt.Sprintf("%02d:%02d", l.hour, l.minute)
}
