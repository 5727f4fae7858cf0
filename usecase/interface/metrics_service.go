package usecase

// MetricsService pushes conversion diagnostics to an external metrics
// system when one is configured
type MetricsService interface {
	// RecordConversion publishes gauge metrics describing a conversion
	// result (bucket sizes, dropped points)
	RecordConversion(result *ConversionResult, source string) error

	// Close releases metrics resources
	Close() error
}
