package repository

import (
	"time"
)

// TimezoneResolver defines the single explicit resolution path from a
// caller-supplied identifier to a real timezone. An identifier may be an
// IANA name, a price-area code or a source name; resolution failures are
// typed errors, never a silent default.
type TimezoneResolver interface {
	// Resolve maps an identifier to a timezone or fails with an
	// INVALID_TIMEZONE domain error
	Resolve(identifier string) (*time.Location, error)

	// Info returns diagnostic information about a timezone at an instant
	Info(loc *time.Location, at time.Time) TimezoneInfo
}

// TimezoneInfo contains timezone information for logging and metrics
type TimezoneInfo struct {
	// Name is the timezone name (e.g., "Europe/Stockholm")
	Name string

	// Offset is the UTC offset in the format "+02:00" or "-05:00"
	Offset string

	// OffsetSeconds is the offset from UTC in seconds
	OffsetSeconds int

	// IsDST indicates whether daylight saving time is active at the instant
	IsDST bool
}
