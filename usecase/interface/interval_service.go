package usecase

import (
	"time"

	"github.com/enoch85/ge-spot-sub001/domain/valueobject"
)

// IntervalService answers "which interval label is it now" for a fixed
// configuration of system timezone, area timezone, granularity and
// reference mode. "Now" is always an explicit parameter so DST-boundary
// behavior stays deterministic under test.
type IntervalService interface {
	// CurrentLabel returns the label of the interval containing now.
	// During the first occurrence of a fall-back repeated hour the literal
	// label is returned; during the second occurrence the label is
	// advanced by one hour so the two occurrences never collide.
	CurrentLabel(now time.Time) valueobject.IntervalLabel

	// NextLabel returns the label of the interval after the one containing
	// now. Labels inside a spring-forward gap are never produced; the
	// first valid label after the gap is returned instead.
	NextLabel(now time.Time) valueobject.IntervalLabel

	// LabelForInstant returns the label an arbitrary instant falls under,
	// subject to the same ambiguity handling as CurrentLabel
	LabelForInstant(t time.Time) valueobject.IntervalLabel
}
