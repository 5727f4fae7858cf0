package impl

import (
	"time"

	"github.com/enoch85/ge-spot-sub001/domain"
	"github.com/enoch85/ge-spot-sub001/domain/valueobject"
	usecase "github.com/enoch85/ge-spot-sub001/usecase/interface"
)

// IntervalServiceImpl implements the IntervalService interface. The two
// timezones, the reference mode and the granularity are fixed at
// construction; every operation is a pure function of the instant passed
// in.
type IntervalServiceImpl struct {
	systemTZ    *time.Location
	areaTZ      *time.Location
	mode        valueobject.ReferenceMode
	granularity valueobject.Granularity
	transition  usecase.TransitionService
	logger      domain.Logger
}

// NewIntervalServiceImpl creates a new instance of IntervalServiceImpl
func NewIntervalServiceImpl(
	systemTZ *time.Location,
	areaTZ *time.Location,
	mode valueobject.ReferenceMode,
	granularity valueobject.Granularity,
	transition usecase.TransitionService,
	logger domain.Logger,
) (*IntervalServiceImpl, error) {
	if !mode.IsValid() {
		return nil, domain.ErrInvalidConfiguration("reference mode", string(mode))
	}
	if !granularity.IsValid() {
		return nil, domain.ErrInvalidConfiguration("granularity", granularity.String())
	}

	return &IntervalServiceImpl{
		systemTZ:    systemTZ,
		areaTZ:      areaTZ,
		mode:        mode,
		granularity: granularity,
		transition:  transition,
		logger:      logger,
	}, nil
}

// CurrentLabel returns the label of the interval containing now
func (s *IntervalServiceImpl) CurrentLabel(now time.Time) valueobject.IntervalLabel {
	return s.LabelForInstant(now)
}

// NextLabel returns the label of the interval after the one containing
// now. The step is taken on the absolute timeline, so a spring-forward
// gap is skipped and the two halves of a fall-back repeated hour resolve
// to distinct labels.
func (s *IntervalServiceImpl) NextLabel(now time.Time) valueobject.IntervalLabel {
	return s.LabelForInstant(now.Add(s.granularity.Duration()))
}

// LabelForInstant returns the label an arbitrary instant falls under
func (s *IntervalServiceImpl) LabelForInstant(t time.Time) valueobject.IntervalLabel {
	if s.mode == valueobject.ReferenceModeLocalAreaTime {
		return s.labelInZone(t, s.areaTZ)
	}

	// Upstream price maps are indexed by area-local hour. When the system
	// and area zones differ, the system-local label is shifted backward by
	// the whole-hour offset difference so it still selects the right
	// entry.
	_, areaOffset := t.In(s.areaTZ).Zone()
	_, systemOffset := t.In(s.systemTZ).Zone()
	diffHours := (areaOffset - systemOffset) / 3600

	return s.labelInZone(t, s.systemTZ).AddHours(-diffHours)
}

// labelInZone rounds t down to the granularity boundary in the given zone
// and disambiguates the fall-back repeated hour: a nonzero DST offset
// marks the first occurrence, which keeps the literal label, while the
// second occurrence is advanced by one hour.
func (s *IntervalServiceImpl) labelInZone(t time.Time, loc *time.Location) valueobject.IntervalLabel {
	label := valueobject.IntervalLabelFromTime(t.In(loc), s.granularity)

	if s.transition.DSTOffset(t, loc) == 0 && s.inRepeatedHour(t, loc) {
		label = label.AddHours(1)
	}
	return label
}

// inRepeatedHour reports whether t lies in the second pass of a fall-back
// repeated hour: stepping one absolute hour back lands on the same wall
// clock.
func (s *IntervalServiceImpl) inRepeatedHour(t time.Time, loc *time.Location) bool {
	current := t.In(loc)
	earlier := t.Add(-time.Hour).In(loc)
	return current.Hour() == earlier.Hour() &&
		current.Minute() == earlier.Minute() &&
		current.YearDay() == earlier.YearDay()
}
