package valueobject

import (
	"fmt"
	"strings"

	"github.com/enoch85/ge-spot-sub001/domain"
)

// ReferenceMode selects which timezone's wall clock defines "the current
// interval" when the system timezone and the price area's timezone differ.
type ReferenceMode string

const (
	// ReferenceModeHomeAssistantTime computes labels from the system's own
	// wall clock, compensated to line up with the area's interval boundaries
	ReferenceModeHomeAssistantTime ReferenceMode = "home_assistant_time"

	// ReferenceModeLocalAreaTime computes labels directly from the area's
	// wall clock
	ReferenceModeLocalAreaTime ReferenceMode = "local_area_time"
)

// ParseReferenceMode creates a ReferenceMode from its string form
func ParseReferenceMode(s string) (ReferenceMode, error) {
	switch ReferenceMode(strings.ToLower(strings.TrimSpace(s))) {
	case ReferenceModeHomeAssistantTime:
		return ReferenceModeHomeAssistantTime, nil
	case ReferenceModeLocalAreaTime:
		return ReferenceModeLocalAreaTime, nil
	}
	return "", domain.ErrInvalidConfiguration("reference mode",
		fmt.Sprintf("%q is not one of %q, %q", s, ReferenceModeHomeAssistantTime, ReferenceModeLocalAreaTime))
}

// IsValid reports whether the mode is one of the supported values
func (m ReferenceMode) IsValid() bool {
	return m == ReferenceModeHomeAssistantTime || m == ReferenceModeLocalAreaTime
}

func (m ReferenceMode) String() string {
	return string(m)
}
