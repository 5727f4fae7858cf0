package presenter

import (
	"fmt"
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/enoch85/ge-spot-sub001/domain/entity"
	"github.com/enoch85/ge-spot-sub001/domain/valueobject"
)

// ConsolePresenterImpl implements ConsolePresenter for terminal output
type ConsolePresenterImpl struct {
	writer io.Writer
}

// NewConsolePresenter creates a new console presenter
func NewConsolePresenter() *ConsolePresenterImpl {
	return &ConsolePresenterImpl{
		writer: os.Stdout,
	}
}

// PrintVersion prints version information
func (p *ConsolePresenterImpl) PrintVersion() {
	_, _ = fmt.Fprintln(p.writer, "gespot version 1.0.0")
}

// PrintError prints an error message
func (p *ConsolePresenterImpl) PrintError(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
}

// PrintConversion prints today/tomorrow price buckets with diagnostics
func (p *ConsolePresenterImpl) PrintConversion(report *ConversionReport) error {
	result := report.Result

	_, _ = fmt.Fprintf(p.writer, "Source: %s (%s)\n", report.Source, result.SourceTimezone)
	_, _ = fmt.Fprintf(p.writer, "Target: %s, %s intervals\n", report.TargetTimezone, report.Granularity)
	_, _ = fmt.Fprintln(p.writer)

	p.printDayTable(fmt.Sprintf("Today (%s)", result.TodayKind), result.Set, result.Set.TodayLabels(), true)

	if len(result.Set.TomorrowLabels()) > 0 {
		_, _ = fmt.Fprintln(p.writer)
		p.printDayTable(fmt.Sprintf("Tomorrow (%s)", result.TomorrowKind), result.Set, result.Set.TomorrowLabels(), false)
	}

	_, _ = fmt.Fprintln(p.writer)
	if !result.TodayComplete {
		_, _ = fmt.Fprintln(p.writer, "Warning: today is incomplete for the configured granularity")
	}
	if result.DroppedPoints > 0 {
		_, _ = fmt.Fprintf(p.writer, "Dropped: %d point(s)\n", result.DroppedPoints)
	}
	if report.CurrentLabel != nil && report.NextLabel != nil {
		_, _ = fmt.Fprintf(p.writer, "Current interval: %s (next: %s)\n", report.CurrentLabel, report.NextLabel)
	}

	return nil
}

// PrintCurrentInterval prints the resolved current and next interval labels
func (p *ConsolePresenterImpl) PrintCurrentInterval(current, next valueobject.IntervalLabel) error {
	t := table.NewWriter()
	t.SetOutputMirror(p.writer)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Interval", "Label"})
	t.AppendRow(table.Row{"current", current.String()})
	t.AppendRow(table.Row{"next", next.String()})
	t.Render()
	return nil
}

func (p *ConsolePresenterImpl) printDayTable(title string, set *entity.NormalizedPriceSet, labels []string, today bool) {
	t := table.NewWriter()
	t.SetOutputMirror(p.writer)
	t.SetStyle(table.StyleLight)
	t.SetTitle(title)
	t.AppendHeader(table.Row{"Interval", "Price"})

	for _, label := range labels {
		var price float64
		if today {
			price = set.Today()[label]
		} else {
			price = set.Tomorrow()[label]
		}
		t.AppendRow(table.Row{label, fmt.Sprintf("%.4f", price)})
	}

	t.AppendFooter(table.Row{"Intervals", len(labels)})
	t.Render()
}
