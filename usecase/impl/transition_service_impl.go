package impl

import (
	"fmt"
	"time"

	"github.com/enoch85/ge-spot-sub001/domain"
	"github.com/enoch85/ge-spot-sub001/domain/valueobject"
)

// TransitionServiceImpl implements the TransitionService interface
type TransitionServiceImpl struct {
	logger domain.Logger
}

// NewTransitionServiceImpl creates a new instance of TransitionServiceImpl
func NewTransitionServiceImpl(logger domain.Logger) *TransitionServiceImpl {
	return &TransitionServiceImpl{logger: logger}
}

// Classify measures the wall-clock duration between the local midnights of
// the given day and the following day. Roughly 24h means a normal day,
// less means spring-forward, more means fall-back. The measurement comes
// from the zone's actual rule data, so transition dates need no table.
func (s *TransitionServiceImpl) Classify(year int, month time.Month, day int, loc *time.Location) valueobject.DayKind {
	start := time.Date(year, month, day, 0, 0, 0, 0, loc)
	end := time.Date(year, month, day+1, 0, 0, 0, 0, loc)

	switch d := end.Sub(start); {
	case d < 24*time.Hour:
		return valueobject.DayKindSpringForward
	case d > 24*time.Hour:
		return valueobject.DayKindFallBack
	default:
		return valueobject.DayKindNormal
	}
}

// DSTOffset returns the DST component of the zone offset at an instant.
// The standard offset is taken as the smaller of the zone's January and
// July offsets, which holds for both hemispheres.
func (s *TransitionServiceImpl) DSTOffset(t time.Time, loc *time.Location) time.Duration {
	_, current := t.In(loc).Zone()
	return time.Duration(current-standardOffset(t.Year(), loc)) * time.Second
}

// OffsetDescription renders the DST offset at an instant, e.g. "+1 hour"
func (s *TransitionServiceImpl) OffsetDescription(t time.Time, loc *time.Location) string {
	offset := s.DSTOffset(t, loc)
	if offset == 0 {
		return "none"
	}

	sign := "+"
	if offset < 0 {
		sign = "-"
		offset = -offset
	}

	hours := int(offset / time.Hour)
	minutes := int(offset % time.Hour / time.Minute)

	switch {
	case hours > 0 && minutes > 0:
		return fmt.Sprintf("%s%d hour%s %d minutes", sign, hours, plural(hours), minutes)
	case hours > 0:
		return fmt.Sprintf("%s%d hour%s", sign, hours, plural(hours))
	default:
		return fmt.Sprintf("%s%d minutes", sign, minutes)
	}
}

// standardOffset returns the zone's non-DST offset for a year, in seconds
func standardOffset(year int, loc *time.Location) int {
	_, jan := time.Date(year, time.January, 1, 12, 0, 0, 0, loc).Zone()
	_, jul := time.Date(year, time.July, 1, 12, 0, 0, 0, loc).Zone()
	if jul < jan {
		return jul
	}
	return jan
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
