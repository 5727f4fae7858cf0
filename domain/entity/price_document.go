package entity

import (
	"fmt"

	"github.com/enoch85/ge-spot-sub001/domain/valueobject"
)

// PriceDocument represents a vendor price payload at the engine boundary:
// a raw timestamp-keyed price map together with the timezone and
// granularity the vendor declared for it. The vendor-specific parsers that
// produce it live outside the engine.
type PriceDocument struct {
	source            string
	sourceTimezone    string
	sourceGranularity valueobject.Granularity
	prices            map[string]float64
}

// NewPriceDocument creates a PriceDocument with validation
func NewPriceDocument(
	source string,
	sourceTimezone string,
	granularityMinutes int,
	prices map[string]float64,
) (*PriceDocument, error) {
	if source == "" {
		return nil, fmt.Errorf("source name cannot be empty")
	}
	if sourceTimezone == "" {
		return nil, fmt.Errorf("source timezone cannot be empty")
	}
	granularity, err := valueobject.ParseGranularity(granularityMinutes)
	if err != nil {
		return nil, err
	}
	if len(prices) == 0 {
		return nil, fmt.Errorf("price map cannot be empty")
	}

	return &PriceDocument{
		source:            source,
		sourceTimezone:    sourceTimezone,
		sourceGranularity: granularity,
		prices:            prices,
	}, nil
}

// Source returns the vendor source name
func (d *PriceDocument) Source() string {
	return d.source
}

// SourceTimezone returns the declared source timezone identifier
func (d *PriceDocument) SourceTimezone() string {
	return d.sourceTimezone
}

// SourceGranularity returns the declared sampling granularity
func (d *PriceDocument) SourceGranularity() valueobject.Granularity {
	return d.sourceGranularity
}

// Prices returns the raw timestamp-keyed price map
func (d *PriceDocument) Prices() map[string]float64 {
	return d.prices
}
