package usecase

import (
	"time"
)

// TimestampService converts heterogeneous vendor timestamp representations
// into absolute instants. Accepted raw forms, tried in order with first
// match winning: an already-parsed time.Time, a 12-digit compact
// YYYYMMDDHHMM encoding, 13-digit epoch milliseconds, ISO-8601 with an
// explicit offset, ISO-8601 without an offset (attached to the source
// timezone), and a short list of legacy date/time formats.
type TimestampService interface {
	// Parse converts a raw timestamp using the declared source timezone
	// identifier. Fails with INVALID_TIMEZONE if the identifier cannot be
	// resolved and with UNPARSABLE_TIMESTAMP if no encoding matches.
	Parse(raw interface{}, sourceTimezone string) (time.Time, error)

	// ParseSafely is the tolerant variant for bulk call sites: an
	// unparsable timestamp yields (zero, false) instead of an error.
	// An unresolvable source timezone still fails loudly via Parse's
	// contract, so callers resolve it once up front.
	ParseSafely(raw interface{}, sourceTimezone string) (time.Time, bool)

	// ParseIn parses against an already-resolved location, skipping the
	// per-call timezone resolution
	ParseIn(raw interface{}, loc *time.Location) (time.Time, error)
}
