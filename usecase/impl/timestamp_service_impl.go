package impl

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/enoch85/ge-spot-sub001/domain"
	"github.com/enoch85/ge-spot-sub001/domain/repository"
)

// formatMatcher is a single timestamp encoding. Matchers are tried in
// order and the first match wins, replacing the nested string-sniffing
// conditionals of older spot-price integrations with a testable list.
type formatMatcher struct {
	name  string
	match func(raw string, loc *time.Location) (time.Time, bool)
}

// TimestampServiceImpl implements the TimestampService interface
type TimestampServiceImpl struct {
	resolver repository.TimezoneResolver
	logger   domain.Logger
	matchers []formatMatcher
}

// NewTimestampServiceImpl creates a new instance of TimestampServiceImpl
func NewTimestampServiceImpl(resolver repository.TimezoneResolver, logger domain.Logger) *TimestampServiceImpl {
	return &TimestampServiceImpl{
		resolver: resolver,
		logger:   logger,
		matchers: []formatMatcher{
			{name: "compact-yyyymmddhhmm", match: matchCompact},
			{name: "epoch-milliseconds", match: matchEpochMillis},
			{name: "iso-with-offset", match: matchISOOffset},
			{name: "iso-naive", match: matchISONaive},
			{name: "legacy", match: matchLegacy},
		},
	}
}

// Parse converts a raw timestamp using the declared source timezone
func (s *TimestampServiceImpl) Parse(raw interface{}, sourceTimezone string) (time.Time, error) {
	loc, err := s.resolver.Resolve(sourceTimezone)
	if err != nil {
		return time.Time{}, err
	}
	return s.ParseIn(raw, loc)
}

// ParseSafely converts a raw timestamp, returning false instead of an
// error when it cannot be done
func (s *TimestampServiceImpl) ParseSafely(raw interface{}, sourceTimezone string) (time.Time, bool) {
	t, err := s.Parse(raw, sourceTimezone)
	if err != nil {
		s.logger.Debug(context.Background(), "dropping unparsable timestamp",
			domain.NewField("raw", fmt.Sprintf("%v", raw)),
			domain.NewField("sourceTimezone", sourceTimezone),
			domain.NewField("error", err.Error()))
		return time.Time{}, false
	}
	return t, true
}

// ParseIn parses a raw timestamp against an already-resolved location
func (s *TimestampServiceImpl) ParseIn(raw interface{}, loc *time.Location) (time.Time, error) {
	// Already-instant values pass straight through.
	if t, ok := raw.(time.Time); ok {
		return t.In(loc), nil
	}

	str, ok := stringify(raw)
	if !ok {
		return time.Time{}, domain.ErrUnparsableTimestamp(raw)
	}

	for _, m := range s.matchers {
		if t, matched := m.match(str, loc); matched {
			return t, nil
		}
	}
	return time.Time{}, domain.ErrUnparsableTimestamp(raw)
}

// stringify normalizes the non-instant raw forms vendors hand over:
// strings as-is, integral numerics rendered in decimal.
func stringify(raw interface{}) (string, bool) {
	switch v := raw.(type) {
	case string:
		return v, true
	case int:
		return strconv.Itoa(v), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case float64:
		// JSON numbers decode as float64; only integral values can be
		// timestamp encodings.
		if v == float64(int64(v)) {
			return strconv.FormatInt(int64(v), 10), true
		}
		return "", false
	default:
		return "", false
	}
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, ch := range s {
		if ch < '0' || ch > '9' {
			return false
		}
	}
	return true
}

// matchCompact handles the 12-digit YYYYMMDDHHMM encoding some vendors
// publish, interpreted as wall-clock time in the source timezone.
func matchCompact(raw string, loc *time.Location) (time.Time, bool) {
	if len(raw) != 12 || !allDigits(raw) {
		return time.Time{}, false
	}
	t, err := time.ParseInLocation("200601021504", raw, loc)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// matchEpochMillis handles 13-digit millisecond epoch values, re-expressed
// in the source timezone for downstream bucketing.
func matchEpochMillis(raw string, loc *time.Location) (time.Time, bool) {
	if len(raw) != 13 || !allDigits(raw) {
		return time.Time{}, false
	}
	millis, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return time.Time{}, false
	}
	return time.UnixMilli(millis).In(loc), true
}

// matchISOOffset handles ISO-8601 with an explicit Z or numeric offset.
// The offset fixes the instant; it is then re-expressed, not
// re-interpreted, in the source timezone.
func matchISOOffset(raw string, loc *time.Location) (time.Time, bool) {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05Z0700", "2006-01-02T15:04Z07:00"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.In(loc), true
		}
	}
	return time.Time{}, false
}

// matchISONaive handles ISO-8601 without an offset by attaching the naive
// wall-clock value to the source timezone.
func matchISONaive(raw string, loc *time.Location) (time.Time, bool) {
	for _, layout := range []string{"2006-01-02T15:04:05", "2006-01-02T15:04"} {
		if t, err := time.ParseInLocation(layout, raw, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// matchLegacy handles the last-resort date/time formats seen in older
// vendor payloads.
func matchLegacy(raw string, loc *time.Location) (time.Time, bool) {
	for _, layout := range []string{"2006-01-02 15:04:05", "2006-01-02 15:04", "02.01.2006 15:04"} {
		if t, err := time.ParseInLocation(layout, raw, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
