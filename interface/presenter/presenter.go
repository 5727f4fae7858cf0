package presenter

import (
	"github.com/enoch85/ge-spot-sub001/domain/valueobject"
	usecase "github.com/enoch85/ge-spot-sub001/usecase/interface"
)

// ConversionReport bundles a conversion result with the context a
// rendering layer needs but the use case does not carry
type ConversionReport struct {
	Source         string
	TargetTimezone string
	Granularity    valueobject.Granularity
	Result         *usecase.ConversionResult

	// CurrentLabel and NextLabel are nil when interval resolution was not
	// requested alongside the conversion
	CurrentLabel *valueobject.IntervalLabel
	NextLabel    *valueobject.IntervalLabel
}

// ConsolePresenter handles terminal output formatting
type ConsolePresenter interface {
	PrintVersion()
	PrintError(err error)

	// Conversion output
	PrintConversion(report *ConversionReport) error

	// Interval resolution output
	PrintCurrentInterval(current, next valueobject.IntervalLabel) error
}

// JSONPresenter handles JSON output formatting
type JSONPresenter interface {
	PrintConversion(report *ConversionReport) error
	PrintCurrentInterval(current, next valueobject.IntervalLabel) error
}
