package presenter

import (
	"encoding/json"
	"io"
	"os"

	"github.com/enoch85/ge-spot-sub001/domain/valueobject"
)

// JSONPresenterImpl implements JSONPresenter for JSON output
type JSONPresenterImpl struct {
	writer  io.Writer
	encoder *json.Encoder
}

// NewJSONPresenter creates a new JSON presenter
func NewJSONPresenter() *JSONPresenterImpl {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	return &JSONPresenterImpl{
		writer:  os.Stdout,
		encoder: encoder,
	}
}

// PrintConversion prints a conversion report as JSON
func (p *JSONPresenterImpl) PrintConversion(report *ConversionReport) error {
	result := report.Result

	data := map[string]interface{}{
		"source":          report.Source,
		"sourceTimezone":  result.SourceTimezone,
		"targetTimezone":  report.TargetTimezone,
		"granularity":     report.Granularity.Minutes(),
		"today":           result.Set.Today(),
		"tomorrow":        result.Set.Tomorrow(),
		"todayDayKind":    result.TodayKind.String(),
		"tomorrowDayKind": result.TomorrowKind.String(),
		"todayComplete":   result.TodayComplete,
		"droppedPoints":   result.DroppedPoints,
	}

	if report.CurrentLabel != nil && report.NextLabel != nil {
		data["currentInterval"] = report.CurrentLabel.String()
		data["nextInterval"] = report.NextLabel.String()
	}

	return p.encoder.Encode(data)
}

// PrintCurrentInterval prints resolved interval labels as JSON
func (p *JSONPresenterImpl) PrintCurrentInterval(current, next valueobject.IntervalLabel) error {
	data := map[string]interface{}{
		"currentInterval": current.String(),
		"nextInterval":    next.String(),
	}
	return p.encoder.Encode(data)
}
