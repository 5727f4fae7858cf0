package cli

import (
	"encoding/json"
	"os"
	"time"

	"github.com/enoch85/ge-spot-sub001/domain"
	"github.com/enoch85/ge-spot-sub001/domain/entity"
	"github.com/enoch85/ge-spot-sub001/domain/valueobject"
	"github.com/enoch85/ge-spot-sub001/interface/presenter"
	usecase "github.com/enoch85/ge-spot-sub001/usecase/interface"
)

// CLIController handles command-line interface operations
type CLIController struct {
	conversionService usecase.ConversionService
	intervalService   usecase.IntervalService
	metricsService    usecase.MetricsService
	consolePresenter  presenter.ConsolePresenter
	jsonPresenter     presenter.JSONPresenter
	targetTimezone    string
	granularity       valueobject.Granularity
	jsonOutput        bool
}

// NewCLIController creates a new CLI controller
func NewCLIController(
	conversionService usecase.ConversionService,
	intervalService usecase.IntervalService,
	metricsService usecase.MetricsService,
	consolePresenter presenter.ConsolePresenter,
	jsonPresenter presenter.JSONPresenter,
	targetTimezone string,
	granularity valueobject.Granularity,
) *CLIController {
	return &CLIController{
		conversionService: conversionService,
		intervalService:   intervalService,
		metricsService:    metricsService,
		consolePresenter:  consolePresenter,
		jsonPresenter:     jsonPresenter,
		targetTimezone:    targetTimezone,
		granularity:       granularity,
	}
}

// SetJSONOutput selects the JSON presenter over the console presenter
func (c *CLIController) SetJSONOutput(enabled bool) {
	c.jsonOutput = enabled
}

// documentFile is the on-disk encoding of a vendor price document
type documentFile struct {
	Source             string             `json:"source"`
	SourceTimezone     string             `json:"source_timezone"`
	GranularityMinutes int                `json:"granularity_minutes"`
	Prices             map[string]float64 `json:"prices"`
}

// RunInterval resolves and prints the current and next interval labels
func (c *CLIController) RunInterval(now time.Time) error {
	if now.IsZero() {
		now = time.Now()
	}

	current := c.intervalService.CurrentLabel(now)
	next := c.intervalService.NextLabel(now)

	if c.jsonOutput {
		return c.jsonPresenter.PrintCurrentInterval(current, next)
	}
	return c.consolePresenter.PrintCurrentInterval(current, next)
}

// RunConvert reads a vendor price document from path, converts it into
// today/tomorrow buckets and prints the result
func (c *CLIController) RunConvert(path string, now time.Time) error {
	doc, err := c.loadDocument(path)
	if err != nil {
		return err
	}
	if now.IsZero() {
		now = time.Now()
	}

	result, err := c.conversionService.ConvertDocument(doc, usecase.ConvertOptions{Now: now})
	if err != nil {
		return err
	}

	if c.metricsService != nil {
		if err := c.metricsService.RecordConversion(result, doc.Source()); err != nil {
			c.consolePresenter.PrintError(err)
		}
	}

	current := c.intervalService.CurrentLabel(now)
	next := c.intervalService.NextLabel(now)

	report := &presenter.ConversionReport{
		Source:         doc.Source(),
		TargetTimezone: c.targetTimezone,
		Granularity:    c.granularity,
		Result:         result,
		CurrentLabel:   &current,
		NextLabel:      &next,
	}

	if c.jsonOutput {
		return c.jsonPresenter.PrintConversion(report)
	}
	return c.consolePresenter.PrintConversion(report)
}

func (c *CLIController) loadDocument(path string) (*entity.PriceDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, domain.ErrFileOperation("read", path, err)
	}

	var file documentFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, domain.ErrFileOperation("parse", path, err)
	}

	return entity.NewPriceDocument(file.Source, file.SourceTimezone, file.GranularityMinutes, file.Prices)
}
