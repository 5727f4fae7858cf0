package usecase

import (
	"time"

	"github.com/enoch85/ge-spot-sub001/domain/valueobject"
)

// TransitionService classifies calendar days by their DST behavior.
// Classification is computed from timezone-rule data, never from a fixed
// offset table, since transition dates vary by region and year.
type TransitionService interface {
	// Classify determines whether the local day starting at midnight of
	// the given date is a normal, spring-forward or fall-back day
	Classify(year int, month time.Month, day int, loc *time.Location) valueobject.DayKind

	// DSTOffset returns the DST component of the zone offset at an
	// instant: zero during standard time, typically one hour during
	// summer time
	DSTOffset(t time.Time, loc *time.Location) time.Duration

	// OffsetDescription renders the DST offset at an instant in a
	// human-readable form such as "+1 hour", for diagnostics only
	OffsetDescription(t time.Time, loc *time.Location) string
}
