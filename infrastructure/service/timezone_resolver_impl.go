package service

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/enoch85/ge-spot-sub001/domain"
	"github.com/enoch85/ge-spot-sub001/domain/repository"
)

// defaultAreaTimezones maps bidding-area codes to IANA names. Lookup file
// entries override these.
var defaultAreaTimezones = map[string]string{
	"SE1": "Europe/Stockholm",
	"SE2": "Europe/Stockholm",
	"SE3": "Europe/Stockholm",
	"SE4": "Europe/Stockholm",
	"DK1": "Europe/Copenhagen",
	"DK2": "Europe/Copenhagen",
	"NO1": "Europe/Oslo",
	"NO2": "Europe/Oslo",
	"NO3": "Europe/Oslo",
	"NO4": "Europe/Oslo",
	"NO5": "Europe/Oslo",
	"FI":  "Europe/Helsinki",
	"EE":  "Europe/Tallinn",
	"LV":  "Europe/Riga",
	"LT":  "Europe/Vilnius",
}

// defaultSourceTimezones maps vendor source names to the timezone their
// payloads are expressed in
var defaultSourceTimezones = map[string]string{
	"nordpool":          "Europe/Oslo",
	"entsoe":            "Europe/Brussels",
	"energidataservice": "Europe/Copenhagen",
	"stromligning":      "Europe/Copenhagen",
	"epex":              "Europe/Paris",
	"omie":              "Europe/Madrid",
	"comed":             "America/Chicago",
	"aemo":              "Australia/Sydney",
	"amber":             "Australia/Sydney",
}

// TimezoneResolverImpl implements the TimezoneResolver interface. An
// identifier is tried as an IANA name first, then against the area table,
// then against the source table. Resolved locations are cached.
type TimezoneResolverImpl struct {
	areas   map[string]string
	sources map[string]string
	logger  domain.Logger

	cacheMu sync.RWMutex
	cache   map[string]*time.Location
}

// NewTimezoneResolverImpl creates a resolver from the built-in tables
// merged with optional lookup-file overrides
func NewTimezoneResolverImpl(lookups *repository.LookupTables, logger domain.Logger) *TimezoneResolverImpl {
	areas := make(map[string]string, len(defaultAreaTimezones))
	for code, name := range defaultAreaTimezones {
		areas[code] = name
	}
	sources := make(map[string]string, len(defaultSourceTimezones))
	for source, name := range defaultSourceTimezones {
		sources[source] = name
	}

	if lookups != nil {
		for code, name := range lookups.Areas {
			areas[strings.ToUpper(code)] = name
		}
		for source, name := range lookups.Sources {
			sources[strings.ToLower(source)] = name
		}
	}

	return &TimezoneResolverImpl{
		areas:   areas,
		sources: sources,
		logger:  logger,
		cache:   make(map[string]*time.Location),
	}
}

// Resolve maps an identifier to a timezone
func (r *TimezoneResolverImpl) Resolve(identifier string) (*time.Location, error) {
	trimmed := strings.TrimSpace(identifier)
	if trimmed == "" {
		return nil, domain.ErrInvalidTimezone(identifier, "empty identifier")
	}
	// Some vendors emit a literal placeholder instead of omitting the
	// field.
	if strings.EqualFold(trimmed, "unknown") {
		return nil, domain.ErrInvalidTimezone(identifier, "placeholder identifier")
	}

	r.cacheMu.RLock()
	if loc, ok := r.cache[trimmed]; ok {
		r.cacheMu.RUnlock()
		return loc, nil
	}
	r.cacheMu.RUnlock()

	name := trimmed
	if alias, ok := r.areas[strings.ToUpper(trimmed)]; ok {
		name = alias
	} else if alias, ok := r.sources[strings.ToLower(trimmed)]; ok {
		name = alias
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		if name != trimmed {
			// The tables pointed at a zone the tzdata does not know;
			// surface the original identifier.
			return nil, domain.ErrInvalidTimezoneWithCause(identifier, err)
		}
		return nil, domain.ErrInvalidTimezone(identifier, "not an IANA name, area code or source name")
	}

	r.cacheMu.Lock()
	r.cache[trimmed] = loc
	r.cacheMu.Unlock()

	if name != trimmed {
		r.logger.Debug(context.Background(), "Resolved timezone alias",
			domain.NewField("identifier", trimmed),
			domain.NewField("timezone", loc.String()))
	}
	return loc, nil
}

// Info returns timezone information at an instant for logging and metrics
func (r *TimezoneResolverImpl) Info(loc *time.Location, at time.Time) repository.TimezoneInfo {
	local := at.In(loc)
	_, offset := local.Zone()

	sign := "+"
	abs := offset
	if abs < 0 {
		sign = "-"
		abs = -abs
	}
	hours := abs / 3600
	minutes := (abs % 3600) / 60

	return repository.TimezoneInfo{
		Name:          loc.String(),
		Offset:        fmt.Sprintf("%s%02d:%02d", sign, hours, minutes),
		OffsetSeconds: offset,
		IsDST:         local.IsDST(),
	}
}

// DetectSystemTimezone finds the host timezone for the default
// configuration. Detection order: time.Local, the TZ environment
// variable, the /etc/localtime symlink. Falls back to UTC.
func (r *TimezoneResolverImpl) DetectSystemTimezone() *time.Location {
	if time.Local != nil && time.Local.String() != "Local" {
		return time.Local
	}

	if tzEnv := os.Getenv("TZ"); tzEnv != "" {
		if loc, err := time.LoadLocation(tzEnv); err == nil {
			return loc
		}
		r.logger.Warn(context.Background(), "Failed to load timezone from TZ environment variable",
			domain.NewField("TZ", tzEnv))
	}

	if linkPath, err := os.Readlink("/etc/localtime"); err == nil {
		parts := strings.Split(linkPath, "/zoneinfo/")
		if len(parts) > 1 {
			if loc, err := time.LoadLocation(parts[1]); err == nil {
				return loc
			}
		}
	}

	r.logger.Warn(context.Background(), "Failed to detect system timezone, using UTC")
	return time.UTC
}
